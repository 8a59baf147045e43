package spoolsync_test

import (
	"context"
	"testing"

	"spool-sync/core/database"
	"spool-sync/core/lock"
	"spool-sync/core/reconcile"
	"spool-sync/core/reconcile/mocks"
	"spool-sync/core/spoolman"
	"spool-sync/core/storage"
	"spool-sync/feature/spoolsync"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testPrinter = "X1C"
	loadedUUID  = "A1B2C3D4E5F6A1B2C3D4E5F6A1B2C3D4"
	removedUUID = "FFFFEEEEDDDDCCCCBBBBAAAA99998888"
)

type testEnv struct {
	svc    *spoolsync.Service
	repo   *spoolsync.Repository
	inv    *mocks.Inventory
	locker *lock.MemoryLocker
}

func newTestEnv(t *testing.T, cfg spoolsync.Config, store storage.Client) *testEnv {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	repo := spoolsync.NewRepository(db)
	require.NoError(t, repo.Migrate())

	inv := new(mocks.Inventory)
	locker := lock.NewMemoryLocker()
	svc := spoolsync.NewService(repo, inv, locker, store, "reports", cfg, zap.NewNop())

	_, err = svc.AddPrinter(context.Background(), spoolsync.PrinterRequest{Name: testPrinter})
	require.NoError(t, err)

	return &testEnv{svc: svc, repo: repo, inv: inv, locker: locker}
}

func loadedTray() reconcile.Tray {
	return reconcile.Tray{
		AmsID:         0,
		TrayID:        1,
		TrayType:      "PLA",
		TraySubBrands: "PLA Basic",
		TrayColor:     "FF0000FF",
		Remain:        50,
		TrayUUID:      loadedUUID,
		TrayInfoIdx:   "GFA00",
		TrayWeight:    1000,
	}
}

func spoolAt(id int, uuid, location string) spoolman.Spool {
	return spoolman.Spool{
		ID:              id,
		RemainingWeight: 900,
		Location:        location,
		Extra:           map[string]string{reconcile.TagExtraKey: reconcile.EncodeTag(uuid)},
	}
}

func updateCalls(inv *mocks.Inventory) map[int]spoolman.SpoolUpdate {
	out := map[int]spoolman.SpoolUpdate{}
	for _, call := range inv.Calls {
		if call.Method == "UpdateSpool" {
			out[call.Arguments.Int(1)] = call.Arguments.Get(2).(spoolman.SpoolUpdate)
		}
	}
	return out
}
