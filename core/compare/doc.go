// Package compare provides a schema-driven difference engine that compares the
// current state of a design object against a previously captured snapshot.
//
// # Architecture
//
// The engine consists of three parts:
//
// 1. Schema: every comparable type registers, once, an ordered list of fields.
//    Value fields are compared by value (or recursively when both sides are
//    Comparable). List fields hold ListComparable entries.
//
// 2. Comparator: Objects / Any walk both versions field by field in declaration
//    order and build a tree of Node values.
//
// 3. Reconciler: list fields are matched by ListID rather than by position.
//    Entries are reported as removed, added, or (when present on both sides)
//    as a wrapper around their nested differences.
//
// The engine never mutates either side and performs no I/O. Turning raw values
// into display text is the job of the formatter package.
//
// # Usage Example
//
//	var itemSchema = compare.NewSchema[*Item]("item").
//	    Value("Name", func(i *Item) any { return i.Name }).
//	    List("Properties", func(i *Item) []compare.ListComparable { return compare.Items(i.Properties) })
//
//	func (i *Item) CompareSchema() compare.Classifier { return itemSchema }
//
//	result, err := compare.Objects(current, snapshot)
package compare
