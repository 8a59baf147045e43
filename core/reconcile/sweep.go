package reconcile

import (
	"context"
	"fmt"

	"spool-sync/core/spoolman"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ClearStaleLocations unsets the location of every spool assigned to the
// printer whose tag is not in active. Spools without a decodable tag are
// left alone.
//
// The sweep is best-effort: a failed update is logged and the sweep moves
// on. The returned count covers only completed updates and the error
// aggregates every failure.
func (e *Engine) ClearStaleLocations(ctx context.Context, printerName string, active map[string]struct{}, cached Snapshot) (int, error) {
	candidates, err := e.FindByLocationPrefix(ctx, LocationPrefix(printerName), cached)
	if err != nil {
		return 0, fmt.Errorf("failed to list spools for %s: %w", printerName, err)
	}

	var (
		cleared int
		errs    error
	)
	for _, spool := range candidates {
		tag, ok := SpoolTag(spool)
		if !ok {
			continue
		}
		if _, loaded := active[tag]; loaded {
			continue
		}

		if _, err := e.inv.UpdateSpool(ctx, spool.ID, spoolman.SpoolUpdate{ClearLocation: true}); err != nil {
			e.logger.Warn("Failed to clear spool location",
				zap.String("printer", printerName),
				zap.Int("spool_id", spool.ID),
				zap.Error(err),
			)
			errs = multierr.Append(errs, fmt.Errorf("spool %d: %w", spool.ID, err))
			continue
		}
		e.logger.Info("Cleared location of removed spool",
			zap.String("printer", printerName),
			zap.Int("spool_id", spool.ID),
			zap.String("location", spool.Location),
		)
		cleared++
	}
	return cleared, errs
}
