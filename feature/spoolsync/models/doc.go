// Package models defines the persisted records of the spoolsync feature:
// registered printers, sync runs and per-tray results.
package models
