package checks

import (
	"context"
	"fmt"
	"path"
	"strings"

	"impl-tracker/core/storage"
	"impl-tracker/feature/implementation/store"
	"impl-tracker/feature/objects/models"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// OrphanedSnapshots returns the keys of object snapshots whose object no
// longer exists in the documents table. Marker snapshots are not inspected.
func OrphanedSnapshots(ctx context.Context, client storage.Client, bucket string, db *gorm.DB) ([]string, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	// Stops the listing producers when returning before a channel is drained.
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var orphans []string
	for _, kind := range models.ObjectKinds {
		prefix := path.Join(store.SnapshotPrefix, string(kind)) + "/"

		keys := make(map[string]string)
		var ids []string
		for obj := range client.ListObjects(listCtx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
			}
			if !strings.HasSuffix(obj.Key, ".json") {
				continue
			}
			id := strings.TrimSuffix(strings.TrimPrefix(obj.Key, prefix), ".json")
			keys[id] = obj.Key
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			continue
		}

		var existing []string
		err := db.WithContext(ctx).
			Model(&store.Document{}).
			Where("kind = ? AND id IN ?", string(kind), ids).
			Pluck("id", &existing).Error
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s documents: %w", kind, err)
		}

		found := make(map[string]struct{}, len(existing))
		for _, id := range existing {
			found[id] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				orphans = append(orphans, keys[id])
			}
		}
	}

	return orphans, nil
}
