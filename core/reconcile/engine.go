package reconcile

import (
	"context"
	"fmt"

	"spool-sync/core/spoolman"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Engine reconciles AMS trays with inventory spool records.
type Engine struct {
	inv       Inventory
	filaments *FilamentResolver
	logger    *zap.Logger
	fetches   singleflight.Group
}

// NewEngine creates a new engine backed by inv.
func NewEngine(inv Inventory, logger *zap.Logger) *Engine {
	return &Engine{
		inv:       inv,
		filaments: NewFilamentResolver(inv, DefaultVendor),
		logger:    logger,
	}
}

// SyncTray brings the inventory record of one tray in line with its
// physical state. Third-party trays are skipped without any lookup.
func (e *Engine) SyncTray(ctx context.Context, tray Tray, printerName string, opts SyncOptions) (Result, error) {
	if !tray.IsFirstParty() {
		return Result{Action: ActionSkipped}, nil
	}

	key := tray.MatchKey()
	if key == "" {
		e.logger.Debug("Skipping tray without tag",
			zap.String("printer", printerName),
			zap.Int("ams_id", tray.AmsID),
			zap.Int("tray_id", tray.TrayID),
		)
		return Result{Action: ActionSkipped}, nil
	}

	existing, err := e.FindByTag(ctx, key, opts.Cached)
	if err != nil {
		return Result{}, fmt.Errorf("failed to look up spool %s: %w", key, err)
	}

	location := FormatLocation(printerName, tray.AmsID)

	if existing != nil {
		update := spoolman.SpoolUpdate{Location: &location}
		if !opts.DisableWeightSync {
			update.RemainingWeight = e.remainingWeight(tray, printerName)
		}
		spool, err := e.inv.UpdateSpool(ctx, existing.ID, update)
		if err != nil {
			return Result{}, fmt.Errorf("failed to update spool %d: %w", existing.ID, err)
		}
		return Result{Action: ActionUpdated, Spool: spool}, nil
	}

	filament, err := e.filaments.FindOrCreate(ctx, tray)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve filament for %s: %w", key, err)
	}

	// A new record has no prior weight to protect, so DisableWeightSync
	// does not apply here.
	spool, err := e.inv.CreateSpool(ctx, spoolman.SpoolCreate{
		FilamentID:      filament.ID,
		RemainingWeight: e.remainingWeight(tray, printerName),
		InitialWeight:   float64(tray.TrayWeight),
		Location:        location,
		Extra:           map[string]string{TagExtraKey: EncodeTag(key)},
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to create spool for %s: %w", key, err)
	}
	return Result{Action: ActionCreated, Spool: spool}, nil
}

// remainingWeight returns nil when the printer does not know how much
// filament is left.
func (e *Engine) remainingWeight(tray Tray, printerName string) *float64 {
	if !ValidPercent(tray.Remain) {
		e.logger.Warn("Unknown remaining percentage, weight not synced",
			zap.String("printer", printerName),
			zap.Int("ams_id", tray.AmsID),
			zap.Int("tray_id", tray.TrayID),
			zap.Int("remain", tray.Remain),
		)
		return nil
	}
	w := ComputeRemaining(tray.Remain, tray.TrayWeight)
	return &w
}
