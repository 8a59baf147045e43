package mocks

import (
	"context"

	"spool-sync/core/spoolman"

	"github.com/stretchr/testify/mock"
)

// Inventory is a mock implementation of reconcile.Inventory
type Inventory struct {
	mock.Mock
}

func (m *Inventory) GetSpools(ctx context.Context) ([]spoolman.Spool, error) {
	args := m.Called(ctx)
	if spools, ok := args.Get(0).([]spoolman.Spool); ok {
		return spools, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Inventory) CreateSpool(ctx context.Context, req spoolman.SpoolCreate) (*spoolman.Spool, error) {
	args := m.Called(ctx, req)
	if spool, ok := args.Get(0).(*spoolman.Spool); ok {
		return spool, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Inventory) UpdateSpool(ctx context.Context, id int, update spoolman.SpoolUpdate) (*spoolman.Spool, error) {
	args := m.Called(ctx, id, update)
	if spool, ok := args.Get(0).(*spoolman.Spool); ok {
		return spool, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Inventory) GetVendors(ctx context.Context) ([]spoolman.Vendor, error) {
	args := m.Called(ctx)
	if vendors, ok := args.Get(0).([]spoolman.Vendor); ok {
		return vendors, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Inventory) CreateVendor(ctx context.Context, req spoolman.VendorCreate) (*spoolman.Vendor, error) {
	args := m.Called(ctx, req)
	if vendor, ok := args.Get(0).(*spoolman.Vendor); ok {
		return vendor, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Inventory) GetFilaments(ctx context.Context) ([]spoolman.Filament, error) {
	args := m.Called(ctx)
	if filaments, ok := args.Get(0).([]spoolman.Filament); ok {
		return filaments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Inventory) CreateFilament(ctx context.Context, req spoolman.FilamentCreate) (*spoolman.Filament, error) {
	args := m.Called(ctx, req)
	if filament, ok := args.Get(0).(*spoolman.Filament); ok {
		return filament, args.Error(1)
	}
	return nil, args.Error(1)
}
