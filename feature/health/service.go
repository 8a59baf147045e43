package health

import (
	"context"

	"spool-sync/core/storage"
	"spool-sync/feature/health/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report combines every dependency check.
type Report struct {
	Status   string                 `json:"status"`
	Storage  *checks.StorageReport  `json:"storage"`
	Spoolman *checks.SpoolmanReport `json:"spoolman"`
	Schema   *checks.SchemaReport   `json:"schema,omitempty"`
	Errors   []string               `json:"errors,omitempty"`
}

// Healthy reports whether every enabled dependency passed.
func (r *Report) Healthy() bool {
	return r.Status == checks.StatusOK
}

// Service handles dependency checks.
type Service struct {
	store    storage.Client
	bucket   string
	region   string
	spoolman checks.Pinger
	db       *gorm.DB
	models   []any
	logger   *zap.Logger
}

// NewService creates a new health service. store and db may be nil.
// models are the GORM models whose tables the schema check verifies.
func NewService(store storage.Client, bucket, region string, spoolman checks.Pinger, db *gorm.DB, models []any, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		bucket:   bucket,
		region:   region,
		spoolman: spoolman,
		db:       db,
		models:   models,
		logger:   logger,
	}
}

// CheckStorage checks the archive bucket.
func (s *Service) CheckStorage(ctx context.Context) *checks.StorageReport {
	return checks.CheckStorage(ctx, s.store, s.bucket)
}

// FixStorage creates the archive bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	return checks.FixStorage(ctx, s.store, s.bucket, s.region, s.logger)
}

// CheckSpoolman pings the inventory service.
func (s *Service) CheckSpoolman(ctx context.Context) *checks.SpoolmanReport {
	return checks.CheckSpoolman(ctx, s.spoolman)
}

// CheckSchema verifies the history tables.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, s.models...)
}

// CheckAll runs every check.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{
		Status:   checks.StatusOK,
		Storage:  s.CheckStorage(ctx),
		Spoolman: s.CheckSpoolman(ctx),
	}
	if report.Storage.Status == checks.StatusError || report.Spoolman.Status == checks.StatusError {
		report.Status = checks.StatusError
	}

	schema, err := s.CheckSchema()
	if err != nil {
		report.Status = checks.StatusError
		report.Errors = append(report.Errors, err.Error())
		return report
	}
	report.Schema = schema
	if !schema.Matched {
		report.Status = checks.StatusError
	}
	return report
}
