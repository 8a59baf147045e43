package spoolsync

import (
	"errors"
	"net/url"

	"spool-sync/core/lock"
	"spool-sync/core/logger"
	"spool-sync/core/reconcile"
	"spool-sync/feature/spoolsync/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for sync passes and printers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = models.SyncRun{}
	return &Handler{service: service}
}

// SyncRequest is the body of a sync request.
type SyncRequest struct {
	Trays  []reconcile.Tray `json:"trays"`
	DryRun bool             `json:"dry_run"`
}

// RegisterRoutes registers the spoolsync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	runs := app.Group("/sync")
	runs.Post("/:printer", h.HandleSync)
	runs.Get("/:printer/runs", h.HandleListRuns)
	runs.Get("/:printer/runs/:run/report", h.HandleGetReport)

	printers := app.Group("/printers")
	printers.Get("/", h.HandleListPrinters)
	printers.Post("/", h.HandleAddPrinter)
	printers.Get("/:name", h.HandleGetPrinter)
	printers.Delete("/:name", h.HandleRemovePrinter)
}

// HandleSync runs a reconciliation pass with the posted tray states.
// @Summary Sync Printer
// @Description Reconciles the posted AMS tray states of a printer with the Spoolman inventory.
// @Tags sync
// @Accept json
// @Produce json
// @Param printer path string true "Printer name"
// @Param request body SyncRequest true "Tray states"
// @Success 200 {object} PassReport "Pass Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Printer Not Found"
// @Failure 409 {object} map[string]string "Pass Already Running"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/{printer} [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	printer := pathParam(c, "printer")
	l := logger.WithRayID(h.service.logger, c)

	var req SyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	report, err := h.service.SyncPrinter(c.UserContext(), printer, req.Trays, PassOptions{Source: SourceHTTP, DryRun: req.DryRun})
	if err != nil {
		switch {
		case errors.Is(err, ErrPrinterNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, lock.ErrNotAcquired):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case report != nil:
			// The pass ran but did not complete cleanly; the report carries the details.
			l.Warn("Sync pass finished with errors", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(report)
		}
		l.Error("Sync pass failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleListRuns returns the run history of a printer.
// @Summary List Sync Runs
// @Description Returns the most recent sync runs of a printer, newest first.
// @Tags sync
// @Produce json
// @Param printer path string true "Printer name"
// @Param limit query int false "Maximum number of runs"
// @Success 200 {array} models.SyncRun "Runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/{printer}/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.Runs(c.UserContext(), pathParam(c, "printer"), c.QueryInt("limit", 0))
	if err != nil {
		l.Error("Listing runs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// HandleGetReport returns the archived report of a run.
// @Summary Get Archived Report
// @Description Downloads the archived pass report of a run from object storage.
// @Tags sync
// @Produce json
// @Param printer path string true "Printer name"
// @Param run path string true "Run ID"
// @Success 200 {object} PassReport "Pass Report"
// @Failure 404 {object} map[string]string "Archive Disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/{printer}/runs/{run}/report [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.ArchivedReport(c.UserContext(), pathParam(c, "printer"), pathParam(c, "run"))
	if errors.Is(err, ErrArchiveDisabled) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Loading archived report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleListPrinters returns every registered printer.
// @Summary List Printers
// @Tags printers
// @Produce json
// @Success 200 {array} models.Printer "Printers"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /printers [get]
func (h *Handler) HandleListPrinters(c *fiber.Ctx) error {
	printers, err := h.service.ListPrinters(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing printers failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(printers)
}

// HandleGetPrinter returns one printer.
// @Summary Get Printer
// @Tags printers
// @Produce json
// @Param name path string true "Printer name"
// @Success 200 {object} models.Printer "Printer"
// @Failure 404 {object} map[string]string "Printer Not Found"
// @Router /printers/{name} [get]
func (h *Handler) HandleGetPrinter(c *fiber.Ctx) error {
	printer, err := h.service.GetPrinter(c.UserContext(), pathParam(c, "name"))
	if errors.Is(err, ErrPrinterNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(printer)
}

// HandleAddPrinter registers a printer.
// @Summary Add Printer
// @Tags printers
// @Accept json
// @Produce json
// @Param request body PrinterRequest true "Printer"
// @Success 201 {object} models.Printer "Printer"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Printer Exists"
// @Router /printers [post]
func (h *Handler) HandleAddPrinter(c *fiber.Ctx) error {
	var req PrinterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	printer, err := h.service.AddPrinter(c.UserContext(), req)
	if errors.Is(err, ErrPrinterExists) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Adding printer failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(printer)
}

// HandleRemovePrinter unregisters a printer.
// @Summary Remove Printer
// @Tags printers
// @Param name path string true "Printer name"
// @Success 204 "Removed"
// @Failure 404 {object} map[string]string "Printer Not Found"
// @Router /printers/{name} [delete]
func (h *Handler) HandleRemovePrinter(c *fiber.Ctx) error {
	err := h.service.RemovePrinter(c.UserContext(), pathParam(c, "name"))
	if errors.Is(err, ErrPrinterNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Removing printer failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pathParam returns a decoded route parameter, so "My%20Printer" addresses
// the printer named "My Printer".
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
