package compare

import (
	"fmt"

	"impl-tracker/core/utils"
)

// listIndex maps list ids to entries and keeps the order of first appearance.
type listIndex struct {
	items map[string]ListComparable
	order []string
}

// buildIndex indexes entries by ListID. When an id occurs more than once the
// last entry wins while the id keeps the position of its first occurrence.
// Nil entries (a JSON null inside a list) are skipped.
func buildIndex(items []ListComparable) listIndex {
	idx := listIndex{
		items: make(map[string]ListComparable, len(items)),
		order: make([]string, 0, len(items)),
	}
	for _, item := range items {
		if utils.IsNil(item) {
			continue
		}
		id := item.ListID()
		if _, exists := idx.items[id]; !exists {
			idx.order = append(idx.order, id)
		}
		idx.items[id] = item
	}
	return idx
}

// Reconcile matches list entries by identity and reports removed entries (in
// old order), then added entries (in current order), then entries present on
// both sides whose content changed (in current order).
func Reconcile(currentItems, oldItems []ListComparable) ([]Node, error) {
	current := buildIndex(currentItems)
	old := buildIndex(oldItems)

	var removed, added, changed []Node

	for _, id := range old.order {
		if _, ok := current.items[id]; ok {
			continue
		}
		dv := old.items[id].ListDisplayValue()
		removed = append(removed, Node{OldValue: &dv})
	}

	for _, id := range current.order {
		item := current.items[id]
		prev, ok := old.items[id]
		if !ok {
			dv := item.ListDisplayValue()
			added = append(added, Node{NewValue: &dv})
			continue
		}

		subs, err := diffObjects(item, prev)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", id, err)
		}
		if len(subs) == 0 {
			continue
		}
		dv := item.ListDisplayValue()
		changed = append(changed, Node{Name: &dv, SubDifferences: subs})
	}

	nodes := make([]Node, 0, len(removed)+len(added)+len(changed))
	nodes = append(nodes, removed...)
	nodes = append(nodes, added...)
	nodes = append(nodes, changed...)
	return nodes, nil
}

// DuplicateListIDs returns the ids that occur more than once in items, in order
// of their second occurrence. Reconcile tolerates duplicates, callers that
// want to flag them as data defects use this.
func DuplicateListIDs(items []ListComparable) []string {
	seen := make(map[string]int, len(items))
	var dups []string
	for _, item := range items {
		if utils.IsNil(item) {
			continue
		}
		id := item.ListID()
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
	}
	return dups
}

// FindDuplicates walks obj through its schema and returns the duplicated list
// ids of every list field, keyed by path (e.g. "Steps" or "Steps[s1].Options").
// Lists without duplicates are omitted.
func FindDuplicates(obj Comparable) map[string][]string {
	found := map[string][]string{}
	findDuplicates(obj, "", found)
	return found
}

func findDuplicates(obj Comparable, prefix string, found map[string][]string) {
	if utils.IsNil(obj) {
		return
	}
	schema := obj.CompareSchema().Classify()

	for _, field := range schema.ValueFields {
		if nested, ok := field.get(obj).(Comparable); ok {
			findDuplicates(nested, prefix+field.Name+".", found)
		}
	}

	for _, field := range schema.ListFields {
		items := field.get(obj)
		if dups := DuplicateListIDs(items); len(dups) > 0 {
			found[prefix+field.Name] = dups
		}
		for _, item := range items {
			if utils.IsNil(item) {
				continue
			}
			findDuplicates(item, fmt.Sprintf("%s%s[%s].", prefix, field.Name, item.ListID()), found)
		}
	}
}
