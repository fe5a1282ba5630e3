package formatter

import (
	"context"
	"errors"
	"fmt"

	"impl-tracker/core/compare"
	"impl-tracker/core/i18n"
)

// Localization keys used to render differences.
const (
	KeyFieldChanged  = "CompareDifferenceFieldChanged"
	KeyValueChanged  = "CompareDifferenceValueChanged"
	KeyBlank         = "CompareDifferenceBlank"
	KeyEntryAdded    = "CompareDifferenceEntryAdded"
	KeyEntryRemoved  = "CompareDifferenceEntryRemoved"
	KeyEntryChanged  = "CompareDifferenceEntryChanged"
	KeyItemDeleted   = "CompareDifferenceItemDeleted"
	KeySkillDeleted  = "CompareDifferenceSkillDeleted"
	PropertyNameBase = "PropertyName"
)

// batchedKinds lists the resolve kinds looked up through the NameResolver,
// together with the placeholder used when an id no longer exists.
var batchedKinds = []struct {
	kind       compare.ResolveKind
	deletedKey string
}{
	{compare.ResolveItemName, KeyItemDeleted},
	{compare.ResolveSkillName, KeySkillDeleted},
}

// NameResolver looks up display names for a batch of ids of one kind.
// Ids without a known name are simply absent from the returned map.
type NameResolver interface {
	ResolveNames(ctx context.Context, kind compare.ResolveKind, ids []string) (map[string]string, error)
}

// Difference is a display-ready difference.
type Difference struct {
	Label          string       `json:"label"`
	Text           string       `json:"text,omitempty"`
	SubDifferences []Difference `json:"subDifferences,omitempty"`
}

// Formatter turns difference trees into display text.
type Formatter struct {
	names NameResolver
	tr    i18n.Translator
}

// New creates a new formatter.
func New(names NameResolver, tr i18n.Translator) *Formatter {
	return &Formatter{names: names, tr: tr}
}

// FormatCompareResult resolves and formats nodes. If any lookup fails the
// whole call fails; partially resolved output is never returned.
func (f *Formatter) FormatCompareResult(ctx context.Context, nodes []compare.Node) ([]Difference, error) {
	resolved, err := f.Resolve(ctx, nodes)
	if err != nil {
		return nil, err
	}
	return f.Format(resolved)
}

// Resolve returns a copy of nodes in which every value carrying a resolve kind
// is replaced by its display text. Item and skill ids are looked up with one
// batched call per kind. The input tree is left untouched.
func (f *Formatter) Resolve(ctx context.Context, nodes []compare.Node) ([]compare.Node, error) {
	lookups := make(map[compare.ResolveKind]func(string) string, len(batchedKinds))

	for _, batch := range batchedKinds {
		ids := collectIDs(nodes, batch.kind)
		if len(ids) == 0 {
			continue
		}

		names, err := f.names.ResolveNames(ctx, batch.kind, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s values: %w", batch.kind, err)
		}
		deleted, err := f.translateOr(batch.deletedKey)
		if err != nil {
			return nil, err
		}

		lookups[batch.kind] = func(id string) string {
			if name, ok := names[id]; ok {
				return name
			}
			return deleted
		}
	}

	return cloneNodes(nodes, func(v *compare.Value) (*compare.Value, error) {
		switch v.Resolve {
		case compare.ResolveNone, "":
			return &compare.Value{Value: v.Value, Resolve: v.Resolve}, nil
		case compare.ResolveLanguageKey:
			text, err := f.translateOr(v.Value)
			if err != nil {
				return nil, err
			}
			return compare.NewValue(text, compare.ResolveNone), nil
		}

		lookup, ok := lookups[v.Resolve]
		if !ok {
			return nil, fmt.Errorf("unsupported resolve kind %q", v.Resolve)
		}
		return compare.NewValue(lookup(v.Value), compare.ResolveNone), nil
	})
}

// Format flattens resolved nodes into display differences.
func (f *Formatter) Format(nodes []compare.Node) ([]Difference, error) {
	out := make([]Difference, 0, len(nodes))
	for _, n := range nodes {
		d, err := f.formatNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (f *Formatter) formatNode(n compare.Node) (Difference, error) {
	var d Difference

	label, err := f.label(n)
	if err != nil {
		return d, err
	}

	switch {
	case n.Name != nil && n.IsLeaf():
		if d.Label, err = f.translateOr(KeyFieldChanged, label); err != nil {
			return d, err
		}
		if n.TextKey != "" {
			d.Text, err = f.translateOr(n.TextKey)
		} else {
			d.Text, err = f.valueChanged(n.OldValue, n.NewValue)
		}
	case n.Name == nil && n.NewValue == nil && n.OldValue != nil:
		d.Label, err = f.translateOr(KeyEntryRemoved, n.OldValue.Value)
	case n.Name == nil && n.NewValue != nil && n.OldValue == nil:
		d.Label, err = f.translateOr(KeyEntryAdded, n.NewValue.Value)
	case n.Name != nil && n.LabelKey == "":
		d.Label, err = f.translateOr(KeyEntryChanged, label)
	default:
		d.Label = label
	}
	if err != nil {
		return d, err
	}

	if len(n.SubDifferences) > 0 {
		if d.SubDifferences, err = f.Format(n.SubDifferences); err != nil {
			return d, err
		}
	}
	return d, nil
}

// label resolves the label of a node: the explicit label key if set, else the
// field name (localized through PropertyName<name> when such a key exists).
func (f *Formatter) label(n compare.Node) (string, error) {
	if n.LabelKey != "" {
		return f.translateOr(n.LabelKey)
	}
	if n.Name == nil {
		return "", nil
	}

	text, err := f.tr.Translate(PropertyNameBase + n.Name.Value)
	if errors.Is(err, i18n.ErrMissingTranslation) {
		return n.Name.Value, nil
	}
	return text, err
}

func (f *Formatter) valueChanged(oldValue, newValue *compare.Value) (string, error) {
	blank, err := f.translateOr(KeyBlank)
	if err != nil {
		return "", err
	}
	display := func(v *compare.Value) string {
		if v == nil || v.Value == "" {
			return blank
		}
		return v.Value
	}
	return f.translateOr(KeyValueChanged, display(oldValue), display(newValue))
}

// translateOr translates key and falls back to the raw key when no
// translation exists. Other translator failures are returned.
func (f *Formatter) translateOr(key string, args ...any) (string, error) {
	text, err := f.tr.Translate(key, args...)
	if errors.Is(err, i18n.ErrMissingTranslation) {
		return key, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to translate %s: %w", key, err)
	}
	return text, nil
}
