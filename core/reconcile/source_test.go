package reconcile

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"spool-sync/core/reconcile/mocks"
	"spool-sync/core/spoolman"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// slowInventory blocks GetSpools until released or until the context passed
// to it ends.
type slowInventory struct {
	*mocks.Inventory
	release chan struct{}
	calls   atomic.Int32
}

func (s *slowInventory) GetSpools(ctx context.Context) ([]spoolman.Spool, error) {
	s.calls.Add(1)
	select {
	case <-s.release:
		return []spoolman.Spool{existingSpool()}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type snapshotResult struct {
	snap Snapshot
	err  error
}

func TestSnapshot_SharedFetchSurvivesCallerCancel(t *testing.T) {
	inv := &slowInventory{Inventory: new(mocks.Inventory), release: make(chan struct{})}
	engine := NewEngine(inv, zap.NewNop())

	ctxA, cancelA := context.WithCancel(context.Background())
	resA := make(chan snapshotResult, 1)
	go func() {
		snap, err := engine.Snapshot(ctxA)
		resA <- snapshotResult{snap, err}
	}()
	require.Eventually(t, func() bool { return inv.calls.Load() == 1 }, time.Second, time.Millisecond)

	resB := make(chan snapshotResult, 1)
	go func() {
		snap, err := engine.Snapshot(context.Background())
		resB <- snapshotResult{snap, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelA()
	a := <-resA
	assert.ErrorIs(t, a.err, context.Canceled)

	close(inv.release)
	b := <-resB
	require.NoError(t, b.err)
	require.Len(t, b.snap, 1)
	assert.Equal(t, 42, b.snap[0].ID)
	assert.Equal(t, int32(1), inv.calls.Load())
}
