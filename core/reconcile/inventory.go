package reconcile

import (
	"context"

	"spool-sync/core/spoolman"
)

// Inventory defines the inventory operations the engine depends on.
// *spoolman.Client implements it.
type Inventory interface {
	// GetSpools returns the full, ordered spool collection.
	GetSpools(ctx context.Context) ([]spoolman.Spool, error)

	// CreateSpool creates a spool and returns it with its assigned ID.
	CreateSpool(ctx context.Context, req spoolman.SpoolCreate) (*spoolman.Spool, error)

	// UpdateSpool applies a partial update. Only set fields are mutated.
	UpdateSpool(ctx context.Context, id int, update spoolman.SpoolUpdate) (*spoolman.Spool, error)

	// GetVendors lists filament vendors.
	GetVendors(ctx context.Context) ([]spoolman.Vendor, error)

	// CreateVendor creates a filament vendor.
	CreateVendor(ctx context.Context, req spoolman.VendorCreate) (*spoolman.Vendor, error)

	// GetFilaments lists filament definitions.
	GetFilaments(ctx context.Context) ([]spoolman.Filament, error)

	// CreateFilament creates a filament definition.
	CreateFilament(ctx context.Context, req spoolman.FilamentCreate) (*spoolman.Filament, error)
}
