package models

import (
	"fmt"

	"impl-tracker/core/compare"
)

// Npc is a non-player character.
type Npc struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Level     int               `json:"level"`
	Type      string            `json:"type"` // language key, e.g. NpcTypeMerchant
	Alignment string            `json:"alignment"`
	IsDead    bool              `json:"isDead"`
	Stats     *NpcStats         `json:"stats,omitempty"`
	Inventory []*InventoryEntry `json:"inventory"`
	Skills    []*NpcSkill       `json:"skills"`

	// ModifiedBy is bookkeeping and does not take part in comparison.
	ModifiedBy string `json:"modifiedBy,omitempty"`
}

var npcSchema = compare.NewSchema[*Npc]("npc").
	Value("Name", func(n *Npc) any { return n.Name }).
	Value("Level", func(n *Npc) any { return n.Level }).
	Value("Type", func(n *Npc) any { return n.Type }, compare.Resolve(compare.ResolveLanguageKey)).
	Value("Alignment", func(n *Npc) any { return n.Alignment }).
	Value("IsDead", func(n *Npc) any { return n.IsDead }).
	Value("Stats", func(n *Npc) any { return n.Stats }).
	List("Inventory", func(n *Npc) []compare.ListComparable { return compare.Items(n.Inventory) }, compare.Label("CompareLabelInventory")).
	List("Skills", func(n *Npc) []compare.ListComparable { return compare.Items(n.Skills) }, compare.Label("CompareLabelSkills"))

// CompareSchema implements compare.Comparable.
func (n *Npc) CompareSchema() compare.Classifier { return npcSchema }

// NpcStats holds the combat attributes of an npc.
type NpcStats struct {
	MaxHealth    int `json:"maxHealth"`
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
}

var npcStatsSchema = compare.NewSchema[*NpcStats]("npc_stats").
	Value("MaxHealth", func(s *NpcStats) any { return s.MaxHealth }).
	Value("Strength", func(s *NpcStats) any { return s.Strength }).
	Value("Dexterity", func(s *NpcStats) any { return s.Dexterity }).
	Value("Intelligence", func(s *NpcStats) any { return s.Intelligence })

func (s *NpcStats) CompareSchema() compare.Classifier { return npcStatsSchema }

func (s *NpcStats) String() string {
	return fmt.Sprintf("HP %d, STR %d, DEX %d, INT %d", s.MaxHealth, s.Strength, s.Dexterity, s.Intelligence)
}

// InventoryEntry is an item carried by an npc.
type InventoryEntry struct {
	ItemID     string `json:"itemId"`
	Quantity   int    `json:"quantity"`
	IsEquipped bool   `json:"isEquipped"`
}

var inventoryEntrySchema = compare.NewSchema[*InventoryEntry]("inventory_entry").
	Value("Quantity", func(e *InventoryEntry) any { return e.Quantity }).
	Value("IsEquipped", func(e *InventoryEntry) any { return e.IsEquipped })

func (e *InventoryEntry) CompareSchema() compare.Classifier { return inventoryEntrySchema }
func (e *InventoryEntry) ListID() string                     { return e.ItemID }
func (e *InventoryEntry) ListDisplayValue() compare.Value {
	return compare.Value{Value: e.ItemID, Resolve: compare.ResolveItemName}
}

// NpcSkill references a skill known by an npc.
type NpcSkill struct {
	SkillID string `json:"skillId"`
}

var npcSkillSchema = compare.NewSchema[*NpcSkill]("npc_skill")

func (s *NpcSkill) CompareSchema() compare.Classifier { return npcSkillSchema }
func (s *NpcSkill) ListID() string                     { return s.SkillID }
func (s *NpcSkill) ListDisplayValue() compare.Value {
	return compare.Value{Value: s.SkillID, Resolve: compare.ResolveSkillName}
}
