package store

import (
	"context"
	"fmt"

	"impl-tracker/core/compare"
	"impl-tracker/feature/objects/models"

	"gorm.io/gorm"
)

// resolveKinds maps resolve kinds to the document kind holding the names.
var resolveKinds = map[compare.ResolveKind]models.Kind{
	compare.ResolveItemName:  models.KindItem,
	compare.ResolveSkillName: models.KindSkill,
}

// NameResolver looks up display names of items and skills in the documents table.
type NameResolver struct {
	db *gorm.DB
}

// NewNameResolver creates a resolver on top of db.
func NewNameResolver(db *gorm.DB) *NameResolver {
	return &NameResolver{db: db}
}

// ResolveNames returns the names of the given ids in a single query. Ids that
// do not exist are absent from the result.
func (r *NameResolver) ResolveNames(ctx context.Context, kind compare.ResolveKind, ids []string) (map[string]string, error) {
	docKind, ok := resolveKinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: resolve kind %q", ErrUnknownKind, kind)
	}

	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []struct {
		ID   string
		Name string
	}
	err := r.db.WithContext(ctx).
		Model(&Document{}).
		Select("id", "name").
		Where("kind = ? AND id IN ?", string(docKind), ids).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s names: %w", docKind, err)
	}

	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
