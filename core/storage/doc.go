// Package storage wraps the MinIO client used to archive reconciliation
// reports in S3-compatible object storage.
//
// The Client interface abstracts the provider so tests can use the mock in
// core/storage/mocks. Archiving is optional: an empty endpoint disables it.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
