// Package database handles database connections and schema inspection.
//
// It wraps GORM and supports two drivers: MySQL for shared deployments and
// SQLite for a single-node install (the default). The database stores the
// configured printers and the history of reconciliation runs.
//
// # Schema Inspection
//
// GetTableColumns lets the health check verify that the history tables
// match the models the service writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "sync_runs")
package database
