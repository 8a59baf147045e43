package spoolsync

import (
	"context"
	"sync/atomic"

	"spool-sync/core/reconcile"
	"spool-sync/core/spoolman"

	"go.uber.org/zap"
)

// DryRunInventory reads from the wrapped inventory and logs every mutation
// instead of applying it. Created records get negative IDs.
type DryRunInventory struct {
	inv    reconcile.Inventory
	logger *zap.Logger
	nextID atomic.Int64
}

// NewDryRunInventory wraps inv.
func NewDryRunInventory(inv reconcile.Inventory, logger *zap.Logger) *DryRunInventory {
	return &DryRunInventory{inv: inv, logger: logger.With(zap.Bool("dry_run", true))}
}

func (d *DryRunInventory) fakeID() int {
	return -int(d.nextID.Add(1))
}

func (d *DryRunInventory) GetSpools(ctx context.Context) ([]spoolman.Spool, error) {
	return d.inv.GetSpools(ctx)
}

func (d *DryRunInventory) GetVendors(ctx context.Context) ([]spoolman.Vendor, error) {
	return d.inv.GetVendors(ctx)
}

func (d *DryRunInventory) GetFilaments(ctx context.Context) ([]spoolman.Filament, error) {
	return d.inv.GetFilaments(ctx)
}

func (d *DryRunInventory) CreateSpool(ctx context.Context, req spoolman.SpoolCreate) (*spoolman.Spool, error) {
	spool := &spoolman.Spool{
		ID:            d.fakeID(),
		InitialWeight: req.InitialWeight,
		Location:      req.Location,
		Extra:         req.Extra,
		Filament:      &spoolman.Filament{ID: req.FilamentID},
	}
	if req.RemainingWeight != nil {
		spool.RemainingWeight = *req.RemainingWeight
	}
	d.logger.Info("Would create spool",
		zap.Int("filament_id", req.FilamentID),
		zap.String("location", req.Location),
		zap.Any("extra", req.Extra),
	)
	return spool, nil
}

func (d *DryRunInventory) UpdateSpool(ctx context.Context, id int, update spoolman.SpoolUpdate) (*spoolman.Spool, error) {
	spool := &spoolman.Spool{ID: id}
	if update.Location != nil && !update.ClearLocation {
		spool.Location = *update.Location
	}
	fields := []zap.Field{zap.Int("spool_id", id), zap.Bool("clear_location", update.ClearLocation)}
	if update.Location != nil {
		fields = append(fields, zap.String("location", *update.Location))
		if printer, amsID, ok := reconcile.ParseLocation(*update.Location); ok {
			fields = append(fields, zap.String("printer", printer), zap.Int("ams_id", amsID))
		}
	}
	if update.RemainingWeight != nil {
		spool.RemainingWeight = *update.RemainingWeight
		fields = append(fields, zap.Float64("remaining_weight", *update.RemainingWeight))
	}
	d.logger.Info("Would update spool", fields...)
	return spool, nil
}

func (d *DryRunInventory) CreateVendor(ctx context.Context, req spoolman.VendorCreate) (*spoolman.Vendor, error) {
	d.logger.Info("Would create vendor", zap.String("name", req.Name))
	return &spoolman.Vendor{ID: d.fakeID(), Name: req.Name}, nil
}

func (d *DryRunInventory) CreateFilament(ctx context.Context, req spoolman.FilamentCreate) (*spoolman.Filament, error) {
	d.logger.Info("Would create filament",
		zap.String("name", req.Name),
		zap.String("material", req.Material),
		zap.String("color_hex", req.ColorHex),
	)
	return &spoolman.Filament{
		ID:            d.fakeID(),
		Name:          req.Name,
		Material:      req.Material,
		ColorHex:      req.ColorHex,
		ArticleNumber: req.ArticleNumber,
		Density:       req.Density,
		Diameter:      req.Diameter,
		Weight:        req.Weight,
	}, nil
}
