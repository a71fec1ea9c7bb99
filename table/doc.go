// Package table provides the labeled-table data model for tabletools.
//
// A [Table] is a 2-D grid of [Cell] values with optional ordered row and
// column labels and an optional identity name. Row-label presence and
// column-label presence are independent: either axis may be unlabeled.
// Inputs that are not yet 2-D are represented by [Vector] (one axis) and
// [Array] (up to three axes); all three types satisfy [Input], the argument
// type accepted by the merger package.
//
// Tables are treated as immutable values: every operation in this package
// returns a fresh table and never mutates its arguments.
//
// The package also provides the primitives the merge engine composes:
//
//   - [Join]: inner/left/right/full outer join of two tables on row labels
//   - [PadRows]: appending typed missing-value rows up to a target count
//   - [Bind]: positional column concatenation for label-free merging
package table
