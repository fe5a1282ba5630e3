package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"impl-tracker/core/storage"
	"impl-tracker/feature/objects/models"

	"github.com/minio/minio-go/v7"
)

// SnapshotPrefix is the bucket folder holding all snapshots.
const SnapshotPrefix = "snapshots"

// SnapshotFolders lists the folders expected below SnapshotPrefix.
var SnapshotFolders = []string{"npc", "item", "skill", "dialog", "quest", "marker"}

// ObjectKey returns the bucket key of an object snapshot.
func ObjectKey(kind models.Kind, id string) string {
	return path.Join(SnapshotPrefix, string(kind), id+".json")
}

// MarkerKey returns the bucket key of a marker snapshot.
func MarkerKey(mapID string, kind models.MarkerKind, markerID string) string {
	return path.Join(SnapshotPrefix, string(models.KindMarker), mapID, string(kind), markerID+".json")
}

// Snapshots stores the implemented state of objects in the bucket.
type Snapshots struct {
	client storage.Client
	bucket string
}

// NewSnapshots creates a snapshot store in bucket.
func NewSnapshots(client storage.Client, bucket string) *Snapshots {
	return &Snapshots{client: client, bucket: bucket}
}

// Get returns the raw snapshot stored at key, or ErrNotFound.
func (s *Snapshots) Get(ctx context.Context, key string) ([]byte, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to get snapshot %s: %w", key, err)
	}
	defer reader.Close()

	// minio only reports a missing key on the first read.
	data, err := io.ReadAll(reader)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	return data, nil
}

// Put replaces the snapshot stored at key.
func (s *Snapshots) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to put snapshot %s: %w", key, err)
	}
	return nil
}

// Bucket returns the bucket the snapshots live in.
func (s *Snapshots) Bucket() string {
	return s.bucket
}

func isNoSuchKey(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || strings.EqualFold(code, "NotFound")
}
