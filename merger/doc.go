// Package merger merges labeled tables by row or column name.
//
// Two or more inputs ([table.Input]: tables, vectors, or small arrays) are
// combined either side-by-side (column-wise, aligning entries by row label)
// or up-and-down (row-wise, aligning by column label). Alignment falls back
// to positional order when labels are absent, and column names that collide
// between inputs are disambiguated by prefixing the source table's identity:
// "Sales - Total".
//
// # Operations
//
//   - [MergeAll]: fold any number of inputs into one table
//   - [MergeTwo]: merge exactly two inputs, with the full set of
//     non-matching policies
//   - [MergeWithOptions]: functional-options wrapper over both
//
// All operations are pure and synchronous: they never mutate their inputs
// and are safe for concurrent use. Recoverable conditions are reported as
// structured [MergeWarning] records on the [MergeResult]; fatal conditions
// are typed errors from the taberrors package.
//
// # Ordering
//
// Under [KeepAll] the output keeps the left input's relative order and
// interleaves unmatched right-side labels between their matched neighbors.
// A label named "NET" is a summary by convention and is always moved to the
// last position.
package merger
