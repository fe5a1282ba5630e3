package models

import "impl-tracker/core/compare"

// Item is an item definition.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Rarity      string          `json:"rarity"` // language key, e.g. ItemRarityRare
	Value       int             `json:"value"`
	Weight      float64         `json:"weight"`
	Properties  []*ItemProperty `json:"properties"`
}

var itemSchema = compare.NewSchema[*Item]("item").
	Value("Name", func(i *Item) any { return i.Name }).
	Value("Description", func(i *Item) any { return i.Description }, compare.Text("CompareDifferenceLongTextChanged")).
	Value("Rarity", func(i *Item) any { return i.Rarity }, compare.Resolve(compare.ResolveLanguageKey)).
	Value("Value", func(i *Item) any { return i.Value }).
	Value("Weight", func(i *Item) any { return i.Weight }).
	List("Properties", func(i *Item) []compare.ListComparable { return compare.Items(i.Properties) })

// CompareSchema implements compare.Comparable.
func (i *Item) CompareSchema() compare.Classifier { return itemSchema }

// ItemProperty is a named attribute of an item.
type ItemProperty struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var itemPropertySchema = compare.NewSchema[*ItemProperty]("item_property").
	Value("Name", func(p *ItemProperty) any { return p.Name }).
	Value("Description", func(p *ItemProperty) any { return p.Description })

func (p *ItemProperty) CompareSchema() compare.Classifier { return itemPropertySchema }
func (p *ItemProperty) ListID() string                     { return p.ID }
func (p *ItemProperty) ListDisplayValue() compare.Value {
	return compare.Value{Value: p.Name, Resolve: compare.ResolveNone}
}
