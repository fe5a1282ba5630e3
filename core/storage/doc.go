// Package storage wraps the MinIO client behind the small Client interface
// used for implementation snapshots.
//
// Only the calls the application needs are exposed (bucket checks, object
// reads, writes and listings), which keeps core/storage/mocks easy to drive
// from tests. EnsureBucket creates the configured bucket on first start.
//
//	client, err := storage.NewClient(cfg.Storage)
//	created, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
