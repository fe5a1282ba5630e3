package compare_test

import (
	"testing"

	"impl-tracker/core/compare"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCharacter() *character {
	return &character{
		Name:  "Bob",
		Title: ptr("Smith"),
		HP:    10,
		Stats: &stats{HP: 5, Mana: ptr(3)},
		Inventory: []*entry{
			{ID: "a", Name: "Axe", Amount: 1},
			{ID: "b", Name: "Bow", Amount: 2},
		},
	}
}

func TestObjects_NoSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		current *character
	}{
		{"Populated", newCharacter()},
		{"Empty", &character{}},
		{"NilCurrent", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := compare.Objects(tt.current, nil)
			require.NoError(t, err)
			assert.False(t, result.SnapshotExists)
			assert.Empty(t, result.Differences)
			assert.False(t, result.Unchanged())
		})
	}
}

func TestObjects_Identity(t *testing.T) {
	result, err := compare.Objects(newCharacter(), newCharacter())
	require.NoError(t, err)
	assert.True(t, result.SnapshotExists)
	assert.Empty(t, result.Differences)
	assert.True(t, result.Unchanged())
}

func TestObjects_ScalarChange(t *testing.T) {
	current, old := newCharacter(), newCharacter()
	current.Name = "Bob"
	old.Name = "Bert"

	result, err := compare.Objects(current, old)
	require.NoError(t, err)
	require.Len(t, result.Differences, 1)

	node := result.Differences[0]
	assert.True(t, node.IsLeaf())
	assert.Equal(t, "name", node.Name.Value)
	assert.Equal(t, "CharacterName", node.LabelKey)
	assert.Equal(t, "Bob", node.NewValue.Value)
	assert.Equal(t, "Bert", node.OldValue.Value)
}

func TestObjects_IntegerScenario(t *testing.T) {
	current, old := newCharacter(), newCharacter()
	old.HP = 10
	current.HP = 20

	result, err := compare.Objects(current, old)
	require.NoError(t, err)
	require.Len(t, result.Differences, 1)
	assert.Equal(t, "hp", result.Differences[0].Name.Value)
	assert.Equal(t, "20", result.Differences[0].NewValue.Value)
	assert.Equal(t, "10", result.Differences[0].OldValue.Value)
}

func TestObjects_NullTransitions(t *testing.T) {
	t.Run("BecameNull", func(t *testing.T) {
		current, old := newCharacter(), newCharacter()
		current.Title = nil

		result, err := compare.Objects(current, old)
		require.NoError(t, err)
		require.Len(t, result.Differences, 1)
		node := result.Differences[0]
		assert.Nil(t, node.NewValue)
		require.NotNil(t, node.OldValue)
		assert.Equal(t, "Smith", node.OldValue.Value)
	})

	t.Run("LeftNull", func(t *testing.T) {
		current, old := newCharacter(), newCharacter()
		old.Title = nil

		result, err := compare.Objects(current, old)
		require.NoError(t, err)
		require.Len(t, result.Differences, 1)
		node := result.Differences[0]
		assert.Nil(t, node.OldValue)
		require.NotNil(t, node.NewValue)
		assert.Equal(t, "Smith", node.NewValue.Value)
	})

	t.Run("BothNull", func(t *testing.T) {
		current, old := newCharacter(), newCharacter()
		current.Title, old.Title = nil, nil

		result, err := compare.Objects(current, old)
		require.NoError(t, err)
		assert.Empty(t, result.Differences)
	})
}

func TestObjects_NestedComparable(t *testing.T) {
	t.Run("Changed", func(t *testing.T) {
		current, old := newCharacter(), newCharacter()
		current.Stats.HP = 6
		current.Stats.Mana = nil

		result, err := compare.Objects(current, old)
		require.NoError(t, err)
		require.Len(t, result.Differences, 1)

		parent := result.Differences[0]
		assert.Equal(t, "stats", parent.Name.Value)
		assert.Nil(t, parent.NewValue)
		assert.Nil(t, parent.OldValue)
		require.Len(t, parent.SubDifferences, 2)
		assert.Equal(t, "hp", parent.SubDifferences[0].Name.Value)
		assert.Equal(t, "6", parent.SubDifferences[0].NewValue.Value)
		assert.Equal(t, "mana", parent.SubDifferences[1].Name.Value)
		assert.Nil(t, parent.SubDifferences[1].NewValue)
		assert.Equal(t, "3", parent.SubDifferences[1].OldValue.Value)
	})

	t.Run("Unchanged", func(t *testing.T) {
		current, old := newCharacter(), newCharacter()
		current.Stats = &stats{HP: 5, Mana: ptr(3)}

		result, err := compare.Objects(current, old)
		require.NoError(t, err)
		assert.Empty(t, result.Differences)
	})
}

func TestObjects_EmissionOrder(t *testing.T) {
	current, old := newCharacter(), newCharacter()
	current.HP = 99
	current.Name = "Zed"
	current.Inventory = append(current.Inventory, &entry{ID: "c", Name: "Club"})

	result, err := compare.Objects(current, old)
	require.NoError(t, err)
	require.Len(t, result.Differences, 3)
	assert.Equal(t, "name", result.Differences[0].Name.Value)
	assert.Equal(t, "hp", result.Differences[1].Name.Value)
	assert.Equal(t, "inventory", result.Differences[2].Name.Value)
	assert.Equal(t, "CharacterInventory", result.Differences[2].LabelKey)
}

func TestObjects_UnregisteredFieldIgnored(t *testing.T) {
	current, old := newCharacter(), newCharacter()
	current.Scratch = "something"

	result, err := compare.Objects(current, old)
	require.NoError(t, err)
	assert.Empty(t, result.Differences)
}

func TestAny_IncompatibleTypes(t *testing.T) {
	_, err := compare.Any(newCharacter(), &other{Name: "x"})
	assert.ErrorIs(t, err, compare.ErrIncompatibleTypes)

	_, err = compare.Values(newCharacter(), &other{})
	assert.ErrorIs(t, err, compare.ErrIncompatibleTypes)
}

func TestAny_NilCurrentWithSnapshot(t *testing.T) {
	var current *character
	_, err := compare.Any(current, newCharacter())
	assert.ErrorIs(t, err, compare.ErrNoCurrent)
}

func TestObjects_DoesNotMutateInputs(t *testing.T) {
	current, old := newCharacter(), newCharacter()
	current.Name = "Changed"
	snapshot := *old

	_, err := compare.Objects(current, old)
	require.NoError(t, err)
	assert.Equal(t, snapshot, *old)
	assert.Equal(t, "Changed", current.Name)
}
