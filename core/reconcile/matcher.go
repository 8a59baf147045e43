package reconcile

import (
	"context"
	"strings"

	"spool-sync/core/spoolman"
)

// FindByTag returns the first spool whose decoded tag equals tag, or nil.
// A blank tag never matches and does not touch the source.
func (e *Engine) FindByTag(ctx context.Context, tag string, cached Snapshot) (*spoolman.Spool, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, nil
	}

	spools, err := e.source(cached).Spools(ctx)
	if err != nil {
		return nil, err
	}

	for i := range spools {
		if stored, ok := SpoolTag(spools[i]); ok && stored == tag {
			spool := spools[i]
			return &spool, nil
		}
	}
	return nil, nil
}

// FindByLocationPrefix returns every spool whose location starts with
// prefix, in source order.
func (e *Engine) FindByLocationPrefix(ctx context.Context, prefix string, cached Snapshot) ([]spoolman.Spool, error) {
	spools, err := e.source(cached).Spools(ctx)
	if err != nil {
		return nil, err
	}

	var matched []spoolman.Spool
	for _, spool := range spools {
		if spool.Location != "" && strings.HasPrefix(spool.Location, prefix) {
			matched = append(matched, spool)
		}
	}
	return matched, nil
}
