// Package formatter turns difference trees produced by the compare package
// into human-readable text.
//
// Formatting runs in two phases:
//
//  1. Resolution: values tagged with an item or skill resolve kind are looked
//     up through a NameResolver with exactly one batched call per kind. Ids
//     that no longer exist are replaced with a localized "deleted" placeholder.
//     Language-key values are translated in-process.
//  2. Flattening: every node becomes a Difference with a label, an optional
//     text and nested sub-differences.
//
// Resolution produces a new tree; the comparator output is never modified.
//
// # Usage
//
//	f := formatter.New(names, catalog)
//	diffs, err := f.FormatCompareResult(ctx, result.Differences)
package formatter
