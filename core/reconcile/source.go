package reconcile

import (
	"context"

	"spool-sync/core/spoolman"

	"golang.org/x/sync/singleflight"
)

// SpoolSource supplies the spool collection a lookup scans.
type SpoolSource interface {
	Spools(ctx context.Context) ([]spoolman.Spool, error)
}

// Snapshot is a pre-fetched, read-only spool collection shared by every
// call of one reconciliation pass. A nil Snapshot means "fetch fresh".
type Snapshot []spoolman.Spool

// Spools returns the snapshot itself. It never performs I/O.
func (s Snapshot) Spools(context.Context) ([]spoolman.Spool, error) {
	return s, nil
}

// liveSource fetches the current collection on every call. Concurrent
// callers share a single in-flight request.
type liveSource struct {
	inv Inventory
	sf  *singleflight.Group
}

const fetchKey = "spools"

// The shared fetch is detached from any one caller's cancellation; each
// caller stops waiting when its own context ends.
func (s liveSource) Spools(ctx context.Context) ([]spoolman.Spool, error) {
	ch := s.sf.DoChan(fetchKey, func() (interface{}, error) {
		return s.inv.GetSpools(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]spoolman.Spool), nil
	}
}

// source picks the snapshot when one is supplied.
func (e *Engine) source(cached Snapshot) SpoolSource {
	if cached != nil {
		return cached
	}
	return liveSource{inv: e.inv, sf: &e.fetches}
}

// Snapshot fetches the current spool collection for use as the cache of
// one reconciliation pass. The result is never nil, even when the
// inventory is empty.
func (e *Engine) Snapshot(ctx context.Context) (Snapshot, error) {
	spools, err := e.source(nil).Spools(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := make(Snapshot, len(spools))
	copy(snapshot, spools)
	return snapshot, nil
}
