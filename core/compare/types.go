package compare

import "errors"

// ErrIncompatibleTypes is returned when the two sides of a comparison are not
// of the same registered type.
var ErrIncompatibleTypes = errors.New("compare: incompatible types")

// ResolveKind tells the formatting pipeline how to turn a raw value into display text.
type ResolveKind string

const (
	// ResolveNone passes the value through unchanged.
	ResolveNone ResolveKind = "none"
	// ResolveItemName treats the value as an item id.
	ResolveItemName ResolveKind = "item_name"
	// ResolveSkillName treats the value as a skill id.
	ResolveSkillName ResolveKind = "skill_name"
	// ResolveLanguageKey treats the value as a localization key.
	ResolveLanguageKey ResolveKind = "language_key"
)

// Value is a single side of a difference.
type Value struct {
	// Value is the raw (or, after resolution, display) text.
	Value string `json:"value"`

	// Resolve describes how Value must be resolved before display.
	Resolve ResolveKind `json:"resolve"`
}

// NewValue returns a pointer to a Value with the given text and resolve kind.
func NewValue(v string, kind ResolveKind) *Value {
	return &Value{Value: v, Resolve: kind}
}

// Node is one unit of detected change, possibly containing nested changes.
//
// A node without a Name and without SubDifferences is a list entry that was
// added (NewValue set) or removed (OldValue set).
type Node struct {
	// Name is the field name or, for changed list entries, the entry display value.
	Name *Value `json:"name,omitempty"`

	// NewValue is the value on the current side.
	NewValue *Value `json:"newValue,omitempty"`

	// OldValue is the value on the snapshot side.
	OldValue *Value `json:"oldValue,omitempty"`

	// LabelKey overrides the display label.
	LabelKey string `json:"labelKey,omitempty"`

	// TextKey overrides the display text of a leaf.
	TextKey string `json:"textKey,omitempty"`

	// SubDifferences holds nested differences.
	SubDifferences []Node `json:"subDifferences,omitempty"`
}

// IsLeaf reports whether the node has no nested differences.
func (n Node) IsLeaf() bool {
	return len(n.SubDifferences) == 0
}

// Result is the outcome of comparing an object against its snapshot.
type Result struct {
	// SnapshotExists is false when the object was never marked implemented.
	SnapshotExists bool `json:"snapshotExists"`

	// Differences lists top-level differences in schema order.
	Differences []Node `json:"differences"`
}

// Unchanged reports whether a snapshot exists and equals the current state.
func (r *Result) Unchanged() bool {
	return r.SnapshotExists && len(r.Differences) == 0
}

// Comparable is implemented by every object that can be diffed against a snapshot.
type Comparable interface {
	// CompareSchema returns the registered schema for the concrete type.
	CompareSchema() Classifier
}

// ListComparable is implemented by elements of list-valued fields.
type ListComparable interface {
	Comparable

	// ListID returns the stable identity used to match entries across versions.
	ListID() string

	// ListDisplayValue returns the human-readable representation of the entry.
	ListDisplayValue() Value
}
