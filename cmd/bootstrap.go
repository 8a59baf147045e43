package cmd

import (
	"context"
	"fmt"

	"spool-sync/core/config"
	"spool-sync/core/database"
	"spool-sync/core/lock"
	"spool-sync/core/logger"
	"spool-sync/core/spoolman"
	"spool-sync/core/storage"
	"spool-sync/feature/health"
	"spool-sync/feature/spoolsync"
	"spool-sync/feature/spoolsync/models"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the dependencies shared by every command.
type runtime struct {
	cfg       *config.Config
	log       *zap.Logger
	db        *gorm.DB
	store     storage.Client
	spoolman  *spoolman.Client
	locker    lock.Locker
	closeLock func() error
}

// connectDatabase opens the configured database.
var connectDatabase = database.Connect

// bootstrap loads configuration and connects every dependency.
// Object storage is skipped when no endpoint is configured.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	return connect(ctx, cfg, logg)
}

// connect opens the database, storage and lock. Anything already opened is
// closed again when a later step fails.
func connect(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*runtime, error) {
	db, err := connectDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	rt := &runtime{cfg: cfg, log: logg, db: db}

	if err := spoolsync.NewRepository(db).Migrate(); err != nil {
		return nil, multierr.Append(err, rt.Close())
	}

	if cfg.Storage.Enabled() {
		rt.store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("failed to create storage client: %w", err), rt.Close())
		}
	}

	rt.locker, rt.closeLock, err = lock.New(ctx, cfg.Redis, logg)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("failed to initialize lock: %w", err), rt.Close())
	}

	rt.spoolman = spoolman.NewClient(cfg.Spoolman, logg)
	return rt, nil
}

func (r *runtime) syncService() *spoolsync.Service {
	return spoolsync.NewService(
		spoolsync.NewRepository(r.db),
		r.spoolman,
		r.locker,
		r.store,
		r.cfg.Storage.Bucket,
		r.cfg.Sync,
		r.log,
	)
}

func (r *runtime) healthService() *health.Service {
	return health.NewService(r.store, r.cfg.Storage.Bucket, r.cfg.Storage.Region, r.spoolman, r.db, models.All(), r.log)
}

// Close releases every connection.
func (r *runtime) Close() error {
	var errs error
	if r.closeLock != nil {
		errs = multierr.Append(errs, r.closeLock())
	}
	if sqlDB, err := r.db.DB(); err == nil {
		errs = multierr.Append(errs, sqlDB.Close())
	}
	_ = r.log.Sync()
	return errs
}
