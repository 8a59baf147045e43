package checks

import (
	"context"
	"fmt"

	"spool-sync/core/storage"

	"go.uber.org/zap"
)

// Check statuses.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusDisabled = "disabled"
)

// StorageReport is the result of the report archive check.
type StorageReport struct {
	Bucket string `json:"bucket,omitempty"`
	Exists bool   `json:"exists"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckStorage verifies that the archive bucket exists. A nil client
// means archiving is disabled.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) *StorageReport {
	if client == nil {
		return &StorageReport{Status: StatusDisabled}
	}

	report := &StorageReport{Bucket: bucket, Status: StatusOK}
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		report.Status = StatusError
		report.Error = fmt.Sprintf("failed to check bucket existence: %v", err)
		return report
	}
	report.Exists = exists
	if !exists {
		report.Status = StatusError
		report.Error = fmt.Sprintf("bucket %s does not exist", bucket)
	}
	return report
}

// FixStorage creates the archive bucket when it is missing.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if client == nil {
		return fmt.Errorf("storage is not configured")
	}
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Archive bucket ready", zap.String("bucket", bucket))
	return nil
}
