package formatter

import "impl-tracker/core/compare"

// collectIDs returns the distinct values of the given resolve kind found
// anywhere in the tree, in order of first appearance.
func collectIDs(nodes []compare.Node, kind compare.ResolveKind) []string {
	seen := make(map[string]struct{})
	var ids []string

	var visit func([]compare.Node)
	add := func(v *compare.Value) {
		if v == nil || v.Resolve != kind {
			return
		}
		if _, ok := seen[v.Value]; ok {
			return
		}
		seen[v.Value] = struct{}{}
		ids = append(ids, v.Value)
	}
	visit = func(nodes []compare.Node) {
		for _, n := range nodes {
			add(n.Name)
			add(n.NewValue)
			add(n.OldValue)
			visit(n.SubDifferences)
		}
	}

	visit(nodes)
	return ids
}

// cloneNodes deep-copies nodes, mapping every value through fn.
func cloneNodes(nodes []compare.Node, fn func(*compare.Value) (*compare.Value, error)) ([]compare.Node, error) {
	if nodes == nil {
		return nil, nil
	}

	mapValue := func(v *compare.Value) (*compare.Value, error) {
		if v == nil {
			return nil, nil
		}
		return fn(v)
	}

	out := make([]compare.Node, len(nodes))
	for i, n := range nodes {
		c := compare.Node{LabelKey: n.LabelKey, TextKey: n.TextKey}
		var err error
		if c.Name, err = mapValue(n.Name); err != nil {
			return nil, err
		}
		if c.NewValue, err = mapValue(n.NewValue); err != nil {
			return nil, err
		}
		if c.OldValue, err = mapValue(n.OldValue); err != nil {
			return nil, err
		}
		if c.SubDifferences, err = cloneNodes(n.SubDifferences, fn); err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
