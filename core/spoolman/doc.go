// Package spoolman provides a typed REST client for the Spoolman filament
// inventory service.
//
// Only the endpoints needed to keep AMS trays in sync are covered:
//   - Spools: list, create, partial update (PATCH)
//   - Filaments: list, create
//   - Vendors: list, create
//   - Health
//
// The client is built on resty and retries transient failures itself;
// callers never retry.
//
// # Usage
//
//	client := spoolman.NewClient(cfg.Spoolman, logger)
//	spools, err := client.GetSpools(ctx)
package spoolman
