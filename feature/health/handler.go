package health

import (
	"spool-sync/core/logger"
	"spool-sync/feature/health/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/health")
	group.Get("/", h.HandleHealth)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/spoolman", h.HandleSpoolmanCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleHealth runs every dependency check.
// @Summary Run All Health Checks
// @Description Checks the report archive, the Spoolman service and the database schema.
// @Tags health
// @Produce json
// @Success 200 {object} Report "Healthy"
// @Failure 503 {object} Report "Unhealthy"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.CheckAll(c.UserContext())
	if !report.Healthy() {
		l.Warn("Health check failed", zap.Strings("errors", report.Errors))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the archive bucket.
// @Summary Check Storage
// @Description Checks that the archive bucket exists. Optionally creates it.
// @Tags health
// @Produce json
// @Param fix query boolean false "Create the bucket if missing"
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ctx := c.UserContext()

	report := h.service.CheckStorage(ctx)
	if report.Exists || c.Query("fix") != "true" || report.Status == checks.StatusDisabled {
		return c.JSON(report)
	}

	l.Info("Attempting to create archive bucket")
	if err := h.service.FixStorage(ctx); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to create bucket",
			"details": err.Error(),
		})
	}
	return c.JSON(h.service.CheckStorage(ctx))
}

// HandleSpoolmanCheck pings the inventory service.
// @Summary Check Spoolman
// @Tags health
// @Produce json
// @Success 200 {object} checks.SpoolmanReport "Spoolman Report"
// @Router /health/spoolman [get]
func (h *Handler) HandleSpoolmanCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckSpoolman(c.UserContext()))
}

// HandleSchemaCheck checks the database schema.
// @Summary Check Schema
// @Description Checks that the history tables match the models.
// @Tags health
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
