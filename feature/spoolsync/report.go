package spoolsync

import (
	"time"

	"spool-sync/core/reconcile"
	"spool-sync/feature/spoolsync/models"
)

// Pass sources.
const (
	SourceHTTP = "http"
	SourceMQTT = "mqtt"
	SourceCLI  = "cli"
)

// PassOptions controls a single SyncPrinter call.
type PassOptions struct {
	// Source records what triggered the pass.
	Source string
	// DryRun computes the pass without mutating the inventory.
	DryRun bool
}

// TrayOutcome is the result of one tray within a pass.
type TrayOutcome struct {
	AmsID   int              `json:"ams_id"`
	TrayID  int              `json:"tray_id"`
	Tag     string           `json:"tag,omitempty"`
	Action  reconcile.Action `json:"action"`
	SpoolID int              `json:"spool_id,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// PassReport summarizes a reconciliation pass.
type PassReport struct {
	RunID      string        `json:"run_id"`
	Printer    string        `json:"printer"`
	Source     string        `json:"source"`
	DryRun     bool          `json:"dry_run"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Trays      []TrayOutcome `json:"trays"`
	Cleared    int           `json:"cleared"`
	Error      string        `json:"error,omitempty"`
}

// Counts returns the number of created, updated, skipped and failed trays.
func (r *PassReport) Counts() (created, updated, skipped, failed int) {
	for _, t := range r.Trays {
		switch {
		case t.Error != "":
			failed++
		case t.Action == reconcile.ActionCreated:
			created++
		case t.Action == reconcile.ActionUpdated:
			updated++
		default:
			skipped++
		}
	}
	return created, updated, skipped, failed
}

// toRun converts the report to its persisted form.
func (r *PassReport) toRun() *models.SyncRun {
	created, updated, skipped, failed := r.Counts()
	run := &models.SyncRun{
		RunID:       r.RunID,
		PrinterName: r.Printer,
		Source:      r.Source,
		DryRun:      r.DryRun,
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt,
		Created:     created,
		Updated:     updated,
		Skipped:     skipped,
		Failed:      failed,
		Cleared:     r.Cleared,
		Error:       r.Error,
	}
	for _, t := range r.Trays {
		run.Trays = append(run.Trays, models.TrayResult{
			AmsID:   t.AmsID,
			TrayID:  t.TrayID,
			Tag:     t.Tag,
			Action:  string(t.Action),
			SpoolID: t.SpoolID,
			Error:   t.Error,
		})
	}
	return run
}
