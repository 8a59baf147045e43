// Package health provides dependency checks for spool-sync.
//
// # Checks Provided
//
//   - Storage: the report archive bucket exists (skipped when archiving is off).
//   - Spoolman: the inventory service answers its health endpoint.
//   - Schema: the history tables match the GORM models (columns, types).
//
// # HTTP Endpoints
//
//   - GET /health : Runs all checks, 503 when any fails.
//   - GET /health/storage : Runs storage check (supports ?fix=true).
//   - GET /health/spoolman : Runs Spoolman check.
//   - GET /health/schema : Runs schema check.
package health
