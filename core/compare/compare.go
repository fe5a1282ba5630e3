package compare

import (
	"errors"
	"fmt"
	"reflect"

	"impl-tracker/core/utils"
)

// ErrNoCurrent is returned when a snapshot is compared against a nil current object.
var ErrNoCurrent = errors.New("compare: current object is nil")

// Objects compares the current state of an object with its snapshot.
//
// A nil old value means no snapshot was ever taken: the result then reports
// SnapshotExists=false and no differences, regardless of current.
func Objects[T Comparable](current, old T) (*Result, error) {
	return Any(current, old)
}

// Any is the untyped form of Objects. Both sides must share the same schema,
// otherwise ErrIncompatibleTypes is returned.
func Any(current, old Comparable) (*Result, error) {
	if utils.IsNil(old) {
		return &Result{SnapshotExists: false, Differences: []Node{}}, nil
	}
	if utils.IsNil(current) {
		return nil, ErrNoCurrent
	}

	diffs, err := diffObjects(current, old)
	if err != nil {
		return nil, err
	}
	return &Result{SnapshotExists: true, Differences: diffs}, nil
}

// Values compares every value-comparable field of current and old.
func Values(current, old Comparable) ([]Node, error) {
	schema, err := sharedSchema(current, old)
	if err != nil {
		return nil, err
	}

	nodes := []Node{}
	for _, field := range schema.Classify().ValueFields {
		cv, ov := field.get(current), field.get(old)
		cNil, oNil := utils.IsNil(cv), utils.IsNil(ov)

		switch {
		case cNil && oNil:
			continue
		case cNil:
			nodes = append(nodes, fieldNode(field, nil, fieldValue(field, ov)))
			continue
		case oNil:
			nodes = append(nodes, fieldNode(field, fieldValue(field, cv), nil))
			continue
		}

		cc, cok := cv.(Comparable)
		oc, ook := ov.(Comparable)
		if cok && ook {
			subs, err := diffObjects(cc, oc)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
			if len(subs) > 0 {
				node := fieldNode(field, nil, nil)
				node.SubDifferences = subs
				nodes = append(nodes, node)
			}
			continue
		}

		if reflect.DeepEqual(cv, ov) {
			continue
		}
		nodes = append(nodes, fieldNode(field, fieldValue(field, cv), fieldValue(field, ov)))
	}

	return nodes, nil
}

// Lists reconciles every list-comparable field present on both sides.
func Lists(current, old Comparable) ([]Node, error) {
	schema, err := sharedSchema(current, old)
	if err != nil {
		return nil, err
	}

	nodes := []Node{}
	for _, field := range schema.Classify().ListFields {
		currentItems, oldItems := field.get(current), field.get(old)
		if currentItems == nil || oldItems == nil {
			continue
		}

		subs, err := Reconcile(currentItems, oldItems)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", field.Name, err)
		}
		if len(subs) == 0 {
			continue
		}

		nodes = append(nodes, Node{
			Name:           NewValue(field.Name, ResolveNone),
			LabelKey:       field.LabelKey,
			SubDifferences: subs,
		})
	}

	return nodes, nil
}

// diffObjects concatenates value and list differences of two non-nil objects.
func diffObjects(current, old Comparable) ([]Node, error) {
	values, err := Values(current, old)
	if err != nil {
		return nil, err
	}
	lists, err := Lists(current, old)
	if err != nil {
		return nil, err
	}
	return append(values, lists...), nil
}

func sharedSchema(current, old Comparable) (Classifier, error) {
	cur, prev := current.CompareSchema(), old.CompareSchema()
	if cur != prev {
		return nil, fmt.Errorf("%w: %s and %s", ErrIncompatibleTypes, cur.TypeName(), prev.TypeName())
	}
	return cur, nil
}

func fieldNode(field ValueField, newValue, oldValue *Value) Node {
	return Node{
		Name:     NewValue(field.Name, ResolveNone),
		NewValue: newValue,
		OldValue: oldValue,
		LabelKey: field.LabelKey,
		TextKey:  field.TextKey,
	}
}

func fieldValue(field ValueField, v any) *Value {
	if item, ok := v.(ListComparable); ok {
		dv := item.ListDisplayValue()
		return &dv
	}
	return NewValue(utils.ToString(v), field.Resolve)
}
