// Package tabletools provides tools for merging labeled tabular datasets.
//
// tabletools aligns vectors, matrices, and small arrays by their row and
// column names rather than by position, merging any number of inputs either
// side-by-side (column-wise) or up-and-down (row-wise) and resolving column
// name collisions by prefixing each colliding name with its source table's
// identity.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - table: the labeled-table data model plus the join, padding, and
//     positional-bind primitives the merge engine is built on
//   - merger: the merge engine itself: input shaping, label reconciliation,
//     pairwise merging, and the N-way merge driver
//   - codec: reading and writing tables as YAML, JSON, or CSV
//
// Structured error types shared by all packages live in taberrors.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/tabletools
//
// # Quick Start
//
// Merge two labeled tables side by side, keeping all rows:
//
//	import (
//		"github.com/erraggy/tabletools/merger"
//		"github.com/erraggy/tabletools/table"
//	)
//
//	left := table.New("Sales", []string{"A", "B"}, []string{"x"}, [][]table.Cell{
//		{table.Number(1)},
//		{table.Number(2)},
//	})
//	right := table.New("Costs", []string{"B", "C"}, []string{"x"}, [][]table.Cell{
//		{table.Number(3)},
//		{table.Number(4)},
//	})
//	result, err := merger.MergeTwo(left, right, merger.SideBySide, merger.KeepAll, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Table.RowLabels) // [A B C]
//
// Merge any number of inputs with the driver:
//
//	result, err := merger.MergeAll(inputs, merger.SideBySide, merger.KeepAll)
//
// Read a table from disk:
//
//	import "github.com/erraggy/tabletools/codec"
//
//	t, err := codec.ReadTable("revenue.yaml")
//
// # Warnings
//
// Recoverable conditions (positional fallback when labels are absent,
// collapsing a 3-axis input to its first plane, disambiguating columns of an
// unnamed table) never fail the merge. They are returned as structured
// [merger.MergeWarning] records on the result so callers and tests can
// inspect them directly.
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/tabletools
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/tabletools
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package tabletools
