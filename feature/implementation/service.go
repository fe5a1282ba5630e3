package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"impl-tracker/core/compare"
	"impl-tracker/core/formatter"
	"impl-tracker/core/utils"
	"impl-tracker/feature/implementation/store"
	"impl-tracker/feature/objects/models"

	"go.uber.org/zap"
)

// ErrNotFound is returned when the current state of an object must be loaded
// and does not exist. A missing snapshot is never an error.
var ErrNotFound = errors.New("implementation: object not found")

// ErrInvalidPayload is returned when an imported document does not decode as its kind.
var ErrInvalidPayload = errors.New("implementation: invalid payload")

// DocumentStore holds the current state of objects.
type DocumentStore interface {
	Get(ctx context.Context, kind models.Kind, id string) (*store.Document, error)
	Put(ctx context.Context, doc *store.Document) error
}

// SnapshotStore holds the state of objects at the time they were marked implemented.
type SnapshotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// ResultFormatter turns difference trees into display text.
type ResultFormatter interface {
	FormatCompareResult(ctx context.Context, nodes []compare.Node) ([]formatter.Difference, error)
}

// Service compares objects against their snapshots.
type Service struct {
	documents DocumentStore
	snapshots SnapshotStore
	formatter ResultFormatter
	logger    *zap.Logger
}

// NewService creates a new implementation service.
func NewService(documents DocumentStore, snapshots SnapshotStore, f ResultFormatter, logger *zap.Logger) *Service {
	return &Service{
		documents: documents,
		snapshots: snapshots,
		formatter: f,
		logger:    logger,
	}
}

// CompareNpc compares an npc with its snapshot. A nil current is loaded from storage.
func (s *Service) CompareNpc(ctx context.Context, id string, current *models.Npc) (*compare.Result, error) {
	return compareObject(ctx, s, models.KindNpc, id, current)
}

// CompareItem compares an item with its snapshot. A nil current is loaded from storage.
func (s *Service) CompareItem(ctx context.Context, id string, current *models.Item) (*compare.Result, error) {
	return compareObject(ctx, s, models.KindItem, id, current)
}

// CompareSkill compares a skill with its snapshot. A nil current is loaded from storage.
func (s *Service) CompareSkill(ctx context.Context, id string, current *models.Skill) (*compare.Result, error) {
	return compareObject(ctx, s, models.KindSkill, id, current)
}

// CompareDialog compares a dialog with its snapshot. A nil current is loaded from storage.
func (s *Service) CompareDialog(ctx context.Context, id string, current *models.Dialog) (*compare.Result, error) {
	return compareObject(ctx, s, models.KindDialog, id, current)
}

// CompareQuest compares a quest with its snapshot. A nil current is loaded from storage.
func (s *Service) CompareQuest(ctx context.Context, id string, current *models.Quest) (*compare.Result, error) {
	return compareObject(ctx, s, models.KindQuest, id, current)
}

// Compare dispatches to the typed comparison of kind, loading the current state from storage.
func (s *Service) Compare(ctx context.Context, kind models.Kind, id string) (*compare.Result, error) {
	switch kind {
	case models.KindNpc:
		return s.CompareNpc(ctx, id, nil)
	case models.KindItem:
		return s.CompareItem(ctx, id, nil)
	case models.KindSkill:
		return s.CompareSkill(ctx, id, nil)
	case models.KindDialog:
		return s.CompareDialog(ctx, id, nil)
	case models.KindQuest:
		return s.CompareQuest(ctx, id, nil)
	default:
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownKind, kind)
	}
}

// CompareMarker compares a map marker with its snapshot. A nil current is
// looked up in the stored map. Comparing a marker against a snapshot of
// another variant fails with compare.ErrIncompatibleTypes.
func (s *Service) CompareMarker(ctx context.Context, mapID, markerID string, kind models.MarkerKind, current models.Marker) (*compare.Result, error) {
	if models.NewMarker(kind) == nil {
		return nil, fmt.Errorf("%w: marker kind %q", store.ErrUnknownKind, kind)
	}

	if !utils.IsNil(current) && current.MarkerKind() != kind {
		return nil, fmt.Errorf("%w: %s marker %s compared as %s marker",
			compare.ErrIncompatibleTypes, current.MarkerKind(), markerID, kind)
	}

	if utils.IsNil(current) {
		found, err := s.loadMarker(ctx, mapID, markerID, kind)
		if err != nil {
			return nil, err
		}
		current = found
	}
	s.warnDuplicates(string(kind)+" marker", markerID, current)

	data, err := s.snapshots.Get(ctx, store.MarkerKey(mapID, kind, markerID))
	if errors.Is(err, store.ErrNotFound) {
		return compare.Any(current, nil)
	}
	if err != nil {
		return nil, err
	}

	old := models.NewMarker(kind)
	if err := json.Unmarshal(data, old); err != nil {
		return nil, fmt.Errorf("failed to decode %s marker snapshot %s: %w", kind, markerID, err)
	}

	return compare.Any(current, old)
}

// FormatCompareResult resolves and formats a difference tree for display.
func (s *Service) FormatCompareResult(ctx context.Context, nodes []compare.Node) ([]formatter.Difference, error) {
	return s.formatter.FormatCompareResult(ctx, nodes)
}

// MarkImplemented stores the current state of an object as its snapshot.
func (s *Service) MarkImplemented(ctx context.Context, kind models.Kind, id string) error {
	if _, err := models.ParseKind(string(kind)); err != nil {
		return fmt.Errorf("%w: %q", store.ErrUnknownKind, kind)
	}

	doc, err := s.loadDocument(ctx, kind, id)
	if err != nil {
		return err
	}
	if err := s.snapshots.Put(ctx, store.ObjectKey(kind, id), doc.Payload); err != nil {
		return err
	}

	s.logger.Info("Marked object as implemented", zap.String("kind", string(kind)), zap.String("id", id))
	return nil
}

// MarkMarkerImplemented stores the current state of a map marker as its snapshot.
func (s *Service) MarkMarkerImplemented(ctx context.Context, mapID, markerID string, kind models.MarkerKind) error {
	if models.NewMarker(kind) == nil {
		return fmt.Errorf("%w: marker kind %q", store.ErrUnknownKind, kind)
	}

	marker, err := s.loadMarker(ctx, mapID, markerID, kind)
	if err != nil {
		return err
	}

	data, err := json.Marshal(marker)
	if err != nil {
		return fmt.Errorf("failed to encode %s marker %s: %w", kind, markerID, err)
	}
	if err := s.snapshots.Put(ctx, store.MarkerKey(mapID, kind, markerID), data); err != nil {
		return err
	}

	s.logger.Info("Marked marker as implemented",
		zap.String("map", mapID),
		zap.String("kind", string(kind)),
		zap.String("id", markerID),
	)
	return nil
}

// ImportDocument stores payload as the current state of an object or map.
// The payload must decode as the model of kind; its "name" field fills the
// name column used for item and skill name resolution.
func (s *Service) ImportDocument(ctx context.Context, kind models.Kind, id string, payload []byte) error {
	target, err := newDocumentModel(kind)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrInvalidPayload, kind, id, err)
	}

	var named struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(payload, &named); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrInvalidPayload, kind, id, err)
	}

	doc := &store.Document{Kind: string(kind), ID: id, Name: named.Name, Payload: payload}
	if err := s.documents.Put(ctx, doc); err != nil {
		return err
	}

	s.logger.Info("Imported document", zap.String("kind", string(kind)), zap.String("id", id))
	return nil
}

// IsImplemented reports whether a snapshot exists and matches the current state.
func (s *Service) IsImplemented(ctx context.Context, kind models.Kind, id string) (bool, error) {
	result, err := s.Compare(ctx, kind, id)
	if err != nil {
		return false, err
	}
	return result.Unchanged(), nil
}

// compareObject loads the missing sides of a comparison and compares them.
// T is the pointer type of the model, E its element type.
func compareObject[E any, T interface {
	*E
	compare.Comparable
}](ctx context.Context, s *Service, kind models.Kind, id string, current T) (*compare.Result, error) {
	if utils.IsNil(current) {
		doc, err := s.loadDocument(ctx, kind, id)
		if err != nil {
			return nil, err
		}
		current = T(new(E))
		if err := json.Unmarshal(doc.Payload, current); err != nil {
			return nil, fmt.Errorf("failed to decode %s %s: %w", kind, id, err)
		}
	}

	s.warnDuplicates(string(kind), id, current)

	data, err := s.snapshots.Get(ctx, store.ObjectKey(kind, id))
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Debug("No snapshot", zap.String("kind", string(kind)), zap.String("id", id))
		var none T
		return compare.Objects(current, none)
	}
	if err != nil {
		return nil, err
	}

	old := T(new(E))
	if err := json.Unmarshal(data, old); err != nil {
		return nil, fmt.Errorf("failed to decode %s snapshot %s: %w", kind, id, err)
	}

	return compare.Objects(current, old)
}

// warnDuplicates logs list entries sharing an id. Only the last of them takes
// part in the comparison.
func (s *Service) warnDuplicates(kind, id string, obj compare.Comparable) {
	for list, ids := range compare.FindDuplicates(obj) {
		s.logger.Warn("Duplicate list ids",
			zap.String("kind", kind),
			zap.String("id", id),
			zap.String("list", list),
			zap.Strings("ids", ids),
		)
	}
}

func newDocumentModel(kind models.Kind) (any, error) {
	switch kind {
	case models.KindNpc:
		return &models.Npc{}, nil
	case models.KindItem:
		return &models.Item{}, nil
	case models.KindSkill:
		return &models.Skill{}, nil
	case models.KindDialog:
		return &models.Dialog{}, nil
	case models.KindQuest:
		return &models.Quest{}, nil
	case models.KindMap:
		return &models.KartaMap{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownKind, kind)
	}
}

func (s *Service) loadDocument(ctx context.Context, kind models.Kind, id string) (*store.Document, error) {
	doc, err := s.documents.Get(ctx, kind, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Service) loadMarker(ctx context.Context, mapID, markerID string, kind models.MarkerKind) (models.Marker, error) {
	doc, err := s.loadDocument(ctx, models.KindMap, mapID)
	if err != nil {
		return nil, err
	}

	var m models.KartaMap
	if err := json.Unmarshal(doc.Payload, &m); err != nil {
		return nil, fmt.Errorf("failed to decode map %s: %w", mapID, err)
	}

	marker := m.FindMarker(kind, markerID)
	if marker == nil {
		return nil, fmt.Errorf("%w: %s marker %s on map %s", ErrNotFound, kind, markerID, mapID)
	}
	return marker, nil
}
