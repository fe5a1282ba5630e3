package models_test

import (
	"testing"

	"impl-tracker/core/compare"
	"impl-tracker/feature/objects/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNpc() *models.Npc {
	return &models.Npc{
		ID:        "npc-1",
		Name:      "Bob",
		Level:     3,
		Type:      "NpcTypeMerchant",
		Alignment: "neutral",
		Stats:     &models.NpcStats{MaxHealth: 10, Strength: 2},
		Inventory: []*models.InventoryEntry{{ItemID: "item-1", Quantity: 1}},
		Skills:    []*models.NpcSkill{{SkillID: "skill-1"}},
	}
}

func TestNpc_Compare(t *testing.T) {
	current, old := sampleNpc(), sampleNpc()
	current.Type = "NpcTypeGuard"
	current.ModifiedBy = "someone"
	current.Stats.MaxHealth = 20
	current.Inventory = append(current.Inventory, &models.InventoryEntry{ItemID: "item-2", Quantity: 3})
	current.Skills = []*models.NpcSkill{}

	result, err := compare.Objects(current, old)
	require.NoError(t, err)
	require.Len(t, result.Differences, 4)

	typeNode := result.Differences[0]
	assert.Equal(t, "Type", typeNode.Name.Value)
	assert.Equal(t, compare.ResolveLanguageKey, typeNode.NewValue.Resolve)
	assert.Equal(t, "NpcTypeGuard", typeNode.NewValue.Value)

	stats := result.Differences[1]
	assert.Equal(t, "Stats", stats.Name.Value)
	require.Len(t, stats.SubDifferences, 1)
	assert.Equal(t, "MaxHealth", stats.SubDifferences[0].Name.Value)

	inventory := result.Differences[2]
	assert.Equal(t, "CompareLabelInventory", inventory.LabelKey)
	require.Len(t, inventory.SubDifferences, 1)
	assert.Equal(t, compare.Value{Value: "item-2", Resolve: compare.ResolveItemName}, *inventory.SubDifferences[0].NewValue)

	skills := result.Differences[3]
	require.Len(t, skills.SubDifferences, 1)
	assert.Equal(t, compare.Value{Value: "skill-1", Resolve: compare.ResolveSkillName}, *skills.SubDifferences[0].OldValue)
}

func TestNpc_StatsAppear(t *testing.T) {
	current, old := sampleNpc(), sampleNpc()
	old.Stats = nil

	result, err := compare.Objects(current, old)
	require.NoError(t, err)
	require.Len(t, result.Differences, 1)
	assert.Equal(t, "HP 10, STR 2, DEX 0, INT 0", result.Differences[0].NewValue.Value)
	assert.Nil(t, result.Differences[0].OldValue)
}

func TestDialog_NestedLists(t *testing.T) {
	old := &models.Dialog{ID: "d", Steps: []*models.DialogStep{{
		ID:   "s1",
		Text: "Hello traveller",
		Options: []*models.DialogOption{
			{ID: "o1", Text: "Bye", NextStepID: ""},
		},
	}}}
	current := &models.Dialog{ID: "d", Steps: []*models.DialogStep{{
		ID:   "s1",
		Text: "Hello traveller",
		Options: []*models.DialogOption{
			{ID: "o1", Text: "Bye", NextStepID: "s2"},
		},
	}}}

	result, err := compare.Objects(current, old)
	require.NoError(t, err)
	require.Len(t, result.Differences, 1)

	steps := result.Differences[0]
	require.Len(t, steps.SubDifferences, 1)
	step := steps.SubDifferences[0]
	assert.Equal(t, "Hello traveller", step.Name.Value)
	require.Len(t, step.SubDifferences, 1)
	options := step.SubDifferences[0]
	assert.Equal(t, "Options", options.Name.Value)
	require.Len(t, options.SubDifferences, 1)
	assert.Equal(t, "NextStepId", options.SubDifferences[0].SubDifferences[0].Name.Value)
}

func TestQuest_OptionalReward(t *testing.T) {
	reward := "item-9"
	current := &models.Quest{ID: "q", Name: "Q", RewardItemID: &reward}
	old := &models.Quest{ID: "q", Name: "Q"}

	result, err := compare.Objects(current, old)
	require.NoError(t, err)
	require.Len(t, result.Differences, 1)
	assert.Equal(t, compare.Value{Value: "item-9", Resolve: compare.ResolveItemName}, *result.Differences[0].NewValue)
}

func TestKartaMap_FindMarker(t *testing.T) {
	m := &models.KartaMap{
		ID:          "map-1",
		NpcMarkers:  []*models.NpcMarker{{ID: "m1", NpcName: "Bob"}},
		NoteMarkers: []*models.NoteMarker{{ID: "m2", Name: "Note"}},
	}

	marker := m.FindMarker(models.MarkerNpc, "m1")
	require.NotNil(t, marker)
	assert.Equal(t, models.MarkerNpc, marker.MarkerKind())
	assert.Equal(t, "m1", marker.MarkerID())

	assert.Nil(t, m.FindMarker(models.MarkerNote, "m1"))
	assert.Nil(t, m.FindMarker(models.MarkerItem, "m2"))
	assert.NotNil(t, m.FindMarker(models.MarkerNote, "m2"))
}

func TestMarkers_DifferentVariantsIncompatible(t *testing.T) {
	_, err := compare.Any(&models.NpcMarker{ID: "m"}, &models.NoteMarker{ID: "m"})
	assert.ErrorIs(t, err, compare.ErrIncompatibleTypes)
}

func TestNewMarker(t *testing.T) {
	for _, kind := range models.MarkerKinds {
		m := models.NewMarker(kind)
		require.NotNil(t, m)
		assert.Equal(t, kind, m.MarkerKind())
	}
	assert.Nil(t, models.NewMarker("unknown"))
}

func TestParseKind(t *testing.T) {
	k, err := models.ParseKind("NPC")
	require.NoError(t, err)
	assert.Equal(t, models.KindNpc, k)

	_, err = models.ParseKind("marker")
	assert.Error(t, err)

	mk, err := models.ParseMarkerKind("note")
	require.NoError(t, err)
	assert.Equal(t, models.MarkerNote, mk)

	_, err = models.ParseMarkerKind("area")
	assert.Error(t, err)

	dk, err := models.ParseDocumentKind("Map")
	require.NoError(t, err)
	assert.Equal(t, models.KindMap, dk)

	_, err = models.ParseKind("map")
	assert.Error(t, err)
}
