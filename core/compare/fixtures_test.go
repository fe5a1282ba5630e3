package compare_test

import (
	"impl-tracker/core/compare"
)

type stats struct {
	HP   int
	Mana *int
}

var statsSchema = compare.NewSchema[*stats]("stats").
	Value("hp", func(s *stats) any { return s.HP }).
	Value("mana", func(s *stats) any { return s.Mana })

func (s *stats) CompareSchema() compare.Classifier { return statsSchema }

type entry struct {
	ID     string
	Name   string
	Amount int
}

var entrySchema = compare.NewSchema[*entry]("entry").
	Value("amount", func(e *entry) any { return e.Amount })

func (e *entry) CompareSchema() compare.Classifier { return entrySchema }
func (e *entry) ListID() string                     { return e.ID }
func (e *entry) ListDisplayValue() compare.Value {
	return compare.Value{Value: e.Name, Resolve: compare.ResolveNone}
}

type character struct {
	Name      string
	Title     *string
	HP        int
	Stats     *stats
	Inventory []*entry
	Scratch   string // not registered
}

var characterSchema = compare.NewSchema[*character]("character").
	Value("name", func(c *character) any { return c.Name }, compare.Label("CharacterName")).
	Value("title", func(c *character) any { return c.Title }).
	Value("hp", func(c *character) any { return c.HP }).
	Value("stats", func(c *character) any { return c.Stats }).
	List("inventory", func(c *character) []compare.ListComparable { return compare.Items(c.Inventory) }, compare.Label("CharacterInventory"))

func (c *character) CompareSchema() compare.Classifier { return characterSchema }

type other struct{ Name string }

var otherSchema = compare.NewSchema[*other]("other").
	Value("name", func(o *other) any { return o.Name })

func (o *other) CompareSchema() compare.Classifier { return otherSchema }

func ptr[T any](v T) *T { return &v }
