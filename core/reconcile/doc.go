// Package reconcile keeps Spoolman spool records in sync with the trays an
// AMS unit reports.
//
// The engine answers three questions for every physical tray:
//   - does an inventory record with the tray's tag already exist?
//   - if not, which filament definition should a new record point at?
//   - if so, which of its mutable fields (location, remaining weight)
//     need to change?
//
// After all trays of a printer are processed, ClearStaleLocations sweeps
// the printer's assigned spools and unsets the location of any spool whose
// tag is no longer loaded.
//
// # Spool sources
//
// Every lookup reads spools from a SpoolSource. Passing a Snapshot makes
// the whole batch run against one in-memory view with no extra fetches;
// passing nil makes the engine fetch the current collection from the
// inventory. Concurrent fetches are collapsed into a single request.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(spoolmanClient, logger)
//	snapshot, err := engine.Snapshot(ctx)
//	for _, tray := range trays {
//	    res, err := engine.SyncTray(ctx, tray, "X1C", reconcile.SyncOptions{Cached: snapshot})
//	    ...
//	}
//	cleared, err := engine.ClearStaleLocations(ctx, "X1C", active, snapshot)
//
// The engine holds no locks. Callers must serialize passes for the same
// printer (see core/lock).
package reconcile
