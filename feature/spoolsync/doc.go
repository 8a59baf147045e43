// Package spoolsync orchestrates reconciliation passes between printers and
// the Spoolman inventory.
//
// A pass takes the current AMS tray states of one printer, synchronizes every
// tray against a single inventory snapshot, and then clears the location of
// spools that are no longer loaded in that printer. Passes for the same
// printer are serialized with a core/lock Locker.
//
// # Components
//
//   - Service: runs passes, records them in the database, archives reports.
//   - Repository: gorm persistence for printers and run history.
//   - DryRunInventory: reads through, logs mutations without applying them.
//   - Watcher: drives passes from live MQTT reports.
//   - Handler: HTTP endpoints.
//
// # HTTP Endpoints
//
//   - POST /sync/:printer : Runs a pass with the posted trays.
//   - GET /sync/:printer/runs : Lists recent runs (supports ?limit=).
//   - GET /sync/:printer/runs/:run/report : Returns an archived report.
//   - GET /printers, POST /printers, GET /printers/:name, DELETE /printers/:name
package spoolsync
