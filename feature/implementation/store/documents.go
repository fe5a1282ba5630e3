package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"impl-tracker/feature/objects/models"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned when a document or snapshot does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrUnknownKind is returned for kinds the store does not hold.
	ErrUnknownKind = errors.New("store: unknown kind")
)

// DocumentsTable is the table holding the current state of all objects.
const DocumentsTable = "documents"

// Document is a stored object, keyed by kind and id.
type Document struct {
	Kind      string    `gorm:"column:kind;primaryKey;size:32" json:"kind"`
	ID        string    `gorm:"column:id;primaryKey;size:64" json:"id"`
	Name      string    `gorm:"column:name;size:255" json:"name"`
	Payload   []byte    `gorm:"column:payload;type:longblob" json:"payload"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName overrides the gorm table name.
func (Document) TableName() string { return DocumentsTable }

// storedKinds are the kinds accepted by Documents.
var storedKinds = map[models.Kind]struct{}{
	models.KindNpc:    {},
	models.KindItem:   {},
	models.KindSkill:  {},
	models.KindDialog: {},
	models.KindQuest:  {},
	models.KindMap:    {},
}

// CheckKind returns ErrUnknownKind when kind is not stored as a document.
func CheckKind(kind models.Kind) error {
	if _, ok := storedKinds[kind]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return nil
}

// Documents reads and writes the current state of objects.
type Documents struct {
	db *gorm.DB
	sf singleflight.Group
}

// NewDocuments creates a document store on top of db.
func NewDocuments(db *gorm.DB) *Documents {
	return &Documents{db: db}
}

// Migrate creates or updates the documents table.
func (d *Documents) Migrate() error {
	return d.db.AutoMigrate(&Document{})
}

// Get loads a document. Concurrent loads of the same key share one query,
// which is not cancelled by the caller that started it.
func (d *Documents) Get(ctx context.Context, kind models.Kind, id string) (*Document, error) {
	if err := CheckKind(kind); err != nil {
		return nil, err
	}

	key := string(kind) + "/" + id
	// The query is shared by every caller in the flight, so one caller
	// cancelling must not fail the others.
	shared := context.WithoutCancel(ctx)
	result, err, _ := d.sf.Do(key, func() (interface{}, error) {
		var doc Document
		err := d.db.WithContext(shared).
			Where("kind = ? AND id = ?", string(kind), id).
			Take(&doc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s %s: %w", kind, id, err)
		}
		return &doc, nil
	})
	if err != nil {
		return nil, err
	}

	// Callers sharing a flight must not see each other's mutations.
	doc := *result.(*Document)
	return &doc, nil
}

// Put inserts or replaces a document.
func (d *Documents) Put(ctx context.Context, doc *Document) error {
	if err := CheckKind(models.Kind(doc.Kind)); err != nil {
		return err
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now()
	}

	err := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(doc).Error
	if err != nil {
		return fmt.Errorf("failed to store %s %s: %w", doc.Kind, doc.ID, err)
	}
	return nil
}
