package models

import "time"

// Printer is a registered printer whose AMS trays are synchronized.
type Printer struct {
	ID     uint   `gorm:"column:id;primaryKey" json:"id"`
	Name   string `gorm:"column:name;size:128;uniqueIndex;not null" json:"name"`
	Host   string `gorm:"column:host;size:255" json:"host"`
	Serial string `gorm:"column:serial;size:64" json:"serial"`
	// AccessCode is the LAN access code. It is never serialized.
	AccessCode        string    `gorm:"column:access_code;size:64" json:"-"`
	DisableWeightSync bool      `gorm:"column:disable_weight_sync" json:"disable_weight_sync"`
	Enabled           bool      `gorm:"column:enabled" json:"enabled"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Printer) TableName() string {
	return "printers"
}

// SyncRun records one reconciliation pass for a printer.
type SyncRun struct {
	ID          uint         `gorm:"column:id;primaryKey" json:"id"`
	RunID       string       `gorm:"column:run_id;size:36;uniqueIndex" json:"run_id"`
	PrinterName string       `gorm:"column:printer_name;size:128;index" json:"printer_name"`
	Source      string       `gorm:"column:source;size:16" json:"source"`
	DryRun      bool         `gorm:"column:dry_run" json:"dry_run"`
	StartedAt   time.Time    `gorm:"column:started_at;index" json:"started_at"`
	FinishedAt  time.Time    `gorm:"column:finished_at" json:"finished_at"`
	Created     int          `gorm:"column:created" json:"created"`
	Updated     int          `gorm:"column:updated" json:"updated"`
	Skipped     int          `gorm:"column:skipped" json:"skipped"`
	Failed      int          `gorm:"column:failed" json:"failed"`
	Cleared     int          `gorm:"column:cleared" json:"cleared"`
	Error       string       `gorm:"column:error;type:text" json:"error,omitempty"`
	Trays       []TrayResult `gorm:"foreignKey:SyncRunID;constraint:OnDelete:CASCADE" json:"trays,omitempty"`
}

// TableName overrides the table name.
func (SyncRun) TableName() string {
	return "sync_runs"
}

// TrayResult is the outcome of one tray within a run.
type TrayResult struct {
	ID        uint   `gorm:"column:id;primaryKey" json:"-"`
	SyncRunID uint   `gorm:"column:sync_run_id;index" json:"-"`
	AmsID     int    `gorm:"column:ams_id" json:"ams_id"`
	TrayID    int    `gorm:"column:tray_id" json:"tray_id"`
	Tag       string `gorm:"column:tag;size:64" json:"tag,omitempty"`
	Action    string `gorm:"column:action;size:16" json:"action"`
	SpoolID   int    `gorm:"column:spool_id" json:"spool_id,omitempty"`
	Error     string `gorm:"column:error;type:text" json:"error,omitempty"`
}

// TableName overrides the table name.
func (TrayResult) TableName() string {
	return "tray_results"
}

// All returns every model managed by the feature, for migrations.
func All() []any {
	return []any{&Printer{}, &SyncRun{}, &TrayResult{}}
}
