package compare_test

import (
	"testing"

	"impl-tracker/core/compare"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_ClassifyKeepsDeclarationOrder(t *testing.T) {
	c := characterSchema.Classify()

	require.Len(t, c.ValueFields, 4)
	assert.Equal(t, "name", c.ValueFields[0].Name)
	assert.Equal(t, "CharacterName", c.ValueFields[0].LabelKey)
	assert.Equal(t, "title", c.ValueFields[1].Name)
	assert.Equal(t, "hp", c.ValueFields[2].Name)
	assert.Equal(t, "stats", c.ValueFields[3].Name)
	assert.Equal(t, compare.ResolveNone, c.ValueFields[3].Resolve)

	require.Len(t, c.ListFields, 1)
	assert.Equal(t, "inventory", c.ListFields[0].Name)
	assert.Equal(t, "CharacterInventory", c.ListFields[0].LabelKey)
}

func TestSchema_Deterministic(t *testing.T) {
	assert.Equal(t, characterSchema.Classify(), characterSchema.Classify())
	assert.Equal(t, "character", characterSchema.TypeName())
}

func TestSchema_Options(t *testing.T) {
	s := compare.NewSchema[*other]("opts").
		Value("name", func(o *other) any { return o.Name },
			compare.Label("L"), compare.Text("T"), compare.Resolve(compare.ResolveItemName))

	f := s.Classify().ValueFields[0]
	assert.Equal(t, "L", f.LabelKey)
	assert.Equal(t, "T", f.TextKey)
	assert.Equal(t, compare.ResolveItemName, f.Resolve)
}

func TestItems_PreservesNil(t *testing.T) {
	var none []*entry
	assert.Nil(t, compare.Items(none))
	assert.NotNil(t, compare.Items([]*entry{}))
	assert.Len(t, compare.Items([]*entry{{ID: "a"}}), 1)
}
