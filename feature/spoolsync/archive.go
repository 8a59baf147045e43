package spoolsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"spool-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// ReportObjectName returns the object key a pass report is archived under.
func ReportObjectName(printerName, runID string) string {
	return path.Join("reports", printerName, runID+".json")
}

// archiveReport uploads the report as JSON to the bucket.
func archiveReport(ctx context.Context, client storage.Client, bucket string, report *PassReport) (string, error) {
	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report %s: %w", report.RunID, err)
	}

	name := ReportObjectName(report.Printer, report.RunID)
	_, err = client.PutObject(ctx, bucket, name, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", name, err)
	}
	return name, nil
}

// LoadArchivedReport downloads an archived pass report.
func LoadArchivedReport(ctx context.Context, client storage.Client, bucket, printerName, runID string) (*PassReport, error) {
	name := ReportObjectName(printerName, runID)
	obj, err := client.GetObject(ctx, bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get report %s: %w", name, err)
	}
	defer obj.Close()

	var report PassReport
	if err := json.NewDecoder(obj).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", name, err)
	}
	return &report, nil
}
