package checks

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"impl-tracker/core/storage"
	"impl-tracker/feature/implementation/store"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// RequiredFolders lists the snapshot folders that must exist in the bucket.
func RequiredFolders() []string {
	folders := make([]string, 0, len(store.SnapshotFolders))
	for _, folder := range store.SnapshotFolders {
		folders = append(folders, path.Join(store.SnapshotPrefix, folder))
	}
	return folders
}

// CheckStructure returns a list of missing folders.
func CheckStructure(ctx context.Context, client storage.Client, bucket string) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, folder := range RequiredFolders() {
		opts := minio.ListObjectsOptions{
			Prefix:    folder + "/",
			Recursive: false,
			MaxKeys:   1,
		}

		found := folderExists(ctx, client, bucket, opts)

		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// folderExists reports whether the listing yields any object. The listing is
// cancelled once the first object arrives.
func folderExists(ctx context.Context, client storage.Client, bucket string, opts minio.ListObjectsOptions) bool {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for range client.ListObjects(ctx, bucket, opts) {
		return true
	}
	return false
}

// FixStructure creates the missing folders as empty placeholder objects.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		_, err := client.PutObject(ctx, bucket, folder+"/", bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}
