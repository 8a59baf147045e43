package spoolsync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"spool-sync/core/lock"
	"spool-sync/core/logger"
	"spool-sync/core/reconcile"
	"spool-sync/core/spoolman"
	"spool-sync/core/storage"
	"spool-sync/feature/spoolsync/models"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrArchiveDisabled is returned when reading archived reports without object storage.
var ErrArchiveDisabled = errors.New("report archive is not configured")

// actionFailed marks a tray whose synchronization returned an error.
const actionFailed reconcile.Action = "failed"

// Service runs reconciliation passes and manages printers.
type Service struct {
	repo   *Repository
	inv    reconcile.Inventory
	engine *reconcile.Engine
	locker lock.Locker
	store  storage.Client
	bucket string
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new spoolsync service. store may be nil when
// archiving is disabled.
func NewService(repo *Repository, inv reconcile.Inventory, locker lock.Locker, store storage.Client, bucket string, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		inv:    inv,
		engine: reconcile.NewEngine(inv, logger),
		locker: locker,
		store:  store,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
	}
}

// SyncPrinter runs one pass for the named printer: every tray is
// synchronized against a single inventory snapshot, then spools left at the
// printer's location without a matching tray are cleared. Tray failures are
// recorded in the report without aborting the pass. The run is persisted
// and, when configured, archived.
func (s *Service) SyncPrinter(ctx context.Context, printerName string, trays []reconcile.Tray, opts PassOptions) (*PassReport, error) {
	printer, err := s.repo.GetPrinter(ctx, printerName)
	if err != nil {
		return nil, err
	}

	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout())
	release, err := s.locker.Acquire(lockCtx, printer.Name)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to lock printer %s: %w", printer.Name, err)
	}
	defer release()

	report := &PassReport{
		RunID:     uuid.NewString(),
		Printer:   printer.Name,
		Source:    opts.Source,
		DryRun:    opts.DryRun,
		StartedAt: time.Now().UTC(),
		Trays:     make([]TrayOutcome, 0, len(trays)),
	}
	log := logger.WithRun(s.logger, printer.Name, report.RunID)
	log.Info("Sync pass started", zap.Int("trays", len(trays)), zap.Bool("dry_run", opts.DryRun))

	engine := s.engine
	if opts.DryRun {
		engine = reconcile.NewEngine(NewDryRunInventory(s.inv, log), log)
	}

	passErr := s.runPass(ctx, engine, printer, trays, report, log)
	report.FinishedAt = time.Now().UTC()
	if passErr != nil {
		report.Error = passErr.Error()
	}

	if err := s.repo.SaveRun(ctx, report.toRun()); err != nil {
		log.Error("Failed to record run", zap.Error(err))
		passErr = multierr.Append(passErr, err)
	}
	s.archive(ctx, report, log)

	created, updated, skipped, failed := report.Counts()
	log.Info("Sync pass finished",
		zap.Int("created", created),
		zap.Int("updated", updated),
		zap.Int("skipped", skipped),
		zap.Int("failed", failed),
		zap.Int("cleared", report.Cleared),
		zap.Duration("duration", report.FinishedAt.Sub(report.StartedAt)),
	)

	return report, passErr
}

func (s *Service) runPass(ctx context.Context, engine *reconcile.Engine, printer *models.Printer, trays []reconcile.Tray, report *PassReport, log *zap.Logger) error {
	snapshot, err := engine.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load spools: %w", err)
	}

	opts := reconcile.SyncOptions{
		DisableWeightSync: s.cfg.DisableWeightSync || printer.DisableWeightSync,
		Cached:            snapshot,
	}

	for _, tray := range trays {
		if err := ctx.Err(); err != nil {
			return err
		}

		outcome := TrayOutcome{AmsID: tray.AmsID, TrayID: tray.TrayID, Tag: tray.MatchKey()}
		res, err := engine.SyncTray(ctx, tray, printer.Name, opts)
		if err != nil {
			outcome.Action = actionFailed
			outcome.Error = err.Error()
			log.Warn("Tray sync failed",
				zap.Int("ams_id", tray.AmsID),
				zap.Int("tray_id", tray.TrayID),
				zap.Bool("removed_since_snapshot", spoolman.IsNotFound(err)),
				zap.Error(err),
			)
		} else {
			outcome.Action = res.Action
			if res.Spool != nil {
				outcome.SpoolID = res.Spool.ID
			}
		}
		report.Trays = append(report.Trays, outcome)
	}

	cleared, err := engine.ClearStaleLocations(ctx, printer.Name, reconcile.ActiveTags(trays), snapshot)
	report.Cleared = cleared
	if err != nil {
		return fmt.Errorf("failed to clear stale locations: %w", err)
	}
	return nil
}

func (s *Service) archive(ctx context.Context, report *PassReport, log *zap.Logger) {
	if !s.cfg.ArchiveReports || s.store == nil {
		return
	}
	name, err := archiveReport(ctx, s.store, s.bucket, report)
	if err != nil {
		log.Warn("Failed to archive report", zap.Error(err))
		return
	}
	log.Debug("Report archived", zap.String("object", name))
}

func (s *Service) lockTimeout() time.Duration {
	if s.cfg.LockTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.cfg.LockTimeoutSeconds) * time.Second
}

// Runs returns the most recent runs of a printer. A non-positive limit uses
// the configured default.
func (s *Service) Runs(ctx context.Context, printerName string, limit int) ([]models.SyncRun, error) {
	if limit <= 0 {
		limit = s.cfg.RunHistoryLimit
	}
	return s.repo.ListRuns(ctx, printerName, limit)
}

// ArchivedReport loads the archived report of a run.
func (s *Service) ArchivedReport(ctx context.Context, printerName, runID string) (*PassReport, error) {
	if s.store == nil {
		return nil, ErrArchiveDisabled
	}
	return LoadArchivedReport(ctx, s.store, s.bucket, printerName, runID)
}

// PrinterRequest is the input for registering a printer.
type PrinterRequest struct {
	Name              string `json:"name"`
	Host              string `json:"host"`
	Serial            string `json:"serial"`
	AccessCode        string `json:"access_code"`
	DisableWeightSync bool   `json:"disable_weight_sync"`
	// Disabled excludes the printer from the MQTT watcher.
	Disabled bool `json:"disabled"`
}

// Validate checks the request.
func (r PrinterRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("printer name is required")
	}
	if name != r.Name {
		return errors.New("printer name must not have surrounding whitespace")
	}
	// One printer's location prefix must never match another printer's locations.
	if strings.Contains(name, reconcile.LocationPrefix("")) {
		return fmt.Errorf("printer name must not contain %q", reconcile.LocationPrefix(""))
	}
	if r.Host != "" && (r.Serial == "" || r.AccessCode == "") {
		return errors.New("serial and access code are required when host is set")
	}
	return nil
}

// ListPrinters returns every registered printer.
func (s *Service) ListPrinters(ctx context.Context) ([]models.Printer, error) {
	return s.repo.ListPrinters(ctx)
}

// GetPrinter returns the named printer.
func (s *Service) GetPrinter(ctx context.Context, name string) (*models.Printer, error) {
	return s.repo.GetPrinter(ctx, name)
}

// AddPrinter registers a printer.
func (s *Service) AddPrinter(ctx context.Context, req PrinterRequest) (*models.Printer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	printer := &models.Printer{
		Name:              req.Name,
		Host:              req.Host,
		Serial:            req.Serial,
		AccessCode:        req.AccessCode,
		DisableWeightSync: req.DisableWeightSync,
		Enabled:           !req.Disabled,
	}
	if err := s.repo.CreatePrinter(ctx, printer); err != nil {
		return nil, err
	}
	s.logger.Info("Printer registered", zap.String("printer", printer.Name))
	return printer, nil
}

// RemovePrinter unregisters a printer.
func (s *Service) RemovePrinter(ctx context.Context, name string) error {
	if err := s.repo.DeletePrinter(ctx, name); err != nil {
		return err
	}
	s.logger.Info("Printer removed", zap.String("printer", name))
	return nil
}
