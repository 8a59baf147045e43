package spoolsync

// Config holds settings for reconciliation passes.
type Config struct {
	// DisableWeightSync stops weight updates on existing spools for every printer.
	DisableWeightSync bool `mapstructure:"disable_weight_sync" default:"false"`
	// ArchiveReports uploads each pass report to object storage when configured.
	ArchiveReports bool `mapstructure:"archive_reports" default:"true"`
	// PollIntervalSeconds is how often the watcher requests a full report. Zero disables polling.
	PollIntervalSeconds int `mapstructure:"poll_interval_seconds" default:"300"`
	// LockTimeoutSeconds bounds how long a pass waits for the printer lock.
	LockTimeoutSeconds int `mapstructure:"lock_timeout_seconds" default:"30"`
	// RunHistoryLimit is the default number of runs returned by the history endpoint.
	RunHistoryLimit int `mapstructure:"run_history_limit" default:"20"`
}
