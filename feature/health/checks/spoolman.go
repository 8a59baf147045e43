package checks

import (
	"context"
	"time"
)

// Pinger reports whether a remote service is reachable.
// *spoolman.Client implements it.
type Pinger interface {
	Health(ctx context.Context) error
}

// SpoolmanReport is the result of the inventory service check.
type SpoolmanReport struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// CheckSpoolman pings the inventory service.
func CheckSpoolman(ctx context.Context, pinger Pinger) *SpoolmanReport {
	start := time.Now()
	err := pinger.Health(ctx)
	report := &SpoolmanReport{Status: StatusOK, LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		report.Status = StatusError
		report.Error = err.Error()
	}
	return report
}
