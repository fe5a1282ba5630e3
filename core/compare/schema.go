package compare

// ValueField is a field compared by value or, for nested Comparable values, recursively.
type ValueField struct {
	// Name is the field name reported in difference nodes.
	Name string
	// LabelKey optionally overrides the display label.
	LabelKey string
	// TextKey optionally overrides the display text.
	TextKey string
	// Resolve is the resolve kind attached to the field's values.
	Resolve ResolveKind

	get func(Comparable) any
}

// ListField is a field holding an ordered list of ListComparable entries.
type ListField struct {
	// Name is the field name reported in difference nodes.
	Name string
	// LabelKey optionally overrides the display label.
	LabelKey string

	get func(Comparable) []ListComparable
}

// Classification is the comparison layout of a type: its value and list fields
// in declaration order.
type Classification struct {
	ValueFields []ValueField
	ListFields  []ListField
}

// Classifier exposes the comparison layout of a registered type.
type Classifier interface {
	// TypeName returns the registered name of the type.
	TypeName() string
	// Classify returns the fields that take part in comparison.
	Classify() Classification
}

// FieldOption customizes a registered field.
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	labelKey string
	textKey  string
	resolve  ResolveKind
}

// Label sets the localization key used as the field label.
func Label(key string) FieldOption {
	return func(o *fieldOptions) { o.labelKey = key }
}

// Text sets the localization key used as the text of a changed leaf.
func Text(key string) FieldOption {
	return func(o *fieldOptions) { o.textKey = key }
}

// Resolve sets how the field's values are resolved for display.
func Resolve(kind ResolveKind) FieldOption {
	return func(o *fieldOptions) { o.resolve = kind }
}

// Schema is the explicit comparison registration of type T.
//
// Schemas are built once, usually as package-level variables next to the type:
//
//	var npcSchema = compare.NewSchema[*Npc]("npc").
//	    Value("Name", func(n *Npc) any { return n.Name }).
//	    List("Inventory", func(n *Npc) []compare.ListComparable { return compare.Items(n.Inventory) })
type Schema[T Comparable] struct {
	name           string
	classification Classification
}

// NewSchema starts the registration of type T.
func NewSchema[T Comparable](name string) *Schema[T] {
	return &Schema[T]{name: name}
}

// Value registers a value-comparable field.
func (s *Schema[T]) Value(name string, get func(T) any, opts ...FieldOption) *Schema[T] {
	o := applyOptions(opts)
	s.classification.ValueFields = append(s.classification.ValueFields, ValueField{
		Name:     name,
		LabelKey: o.labelKey,
		TextKey:  o.textKey,
		Resolve:  o.resolve,
		get: func(c Comparable) any {
			return get(c.(T))
		},
	})
	return s
}

// List registers a list-comparable field.
func (s *Schema[T]) List(name string, get func(T) []ListComparable, opts ...FieldOption) *Schema[T] {
	o := applyOptions(opts)
	s.classification.ListFields = append(s.classification.ListFields, ListField{
		Name:     name,
		LabelKey: o.labelKey,
		get: func(c Comparable) []ListComparable {
			return get(c.(T))
		},
	})
	return s
}

// TypeName returns the registered name of the type.
func (s *Schema[T]) TypeName() string {
	return s.name
}

// Classify returns the registered fields in declaration order.
func (s *Schema[T]) Classify() Classification {
	return s.classification
}

// Items converts a typed slice into list entries. A nil slice stays nil so
// that an absent list is distinguishable from an empty one.
func Items[E ListComparable](items []E) []ListComparable {
	if items == nil {
		return nil
	}
	out := make([]ListComparable, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func applyOptions(opts []FieldOption) fieldOptions {
	o := fieldOptions{resolve: ResolveNone}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
