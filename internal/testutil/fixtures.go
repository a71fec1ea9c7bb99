// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/erraggy/tabletools/table"
)

// NewRegionTable creates a small named numeric table keyed by region.
// Rows: North, South; column: Sales.
func NewRegionTable() *table.Table {
	return table.New("Sales", []string{"North", "South"}, []string{"Sales"}, [][]table.Cell{
		{table.Number(120)},
		{table.Number(80)},
	})
}

// NewOverlappingRegionTable creates a named table that shares the South row
// with NewRegionTable and adds East. Rows: South, East; column: Costs.
func NewOverlappingRegionTable() *table.Table {
	return table.New("Costs", []string{"South", "East"}, []string{"Costs"}, [][]table.Cell{
		{table.Number(30)},
		{table.Number(55)},
	})
}

// NewUnlabeledColumn creates an unlabeled single-column numeric table.
func NewUnlabeledColumn(values ...float64) *table.Table {
	cells := make([][]table.Cell, len(values))
	for i, v := range values {
		cells[i] = []table.Cell{table.Number(v)}
	}
	return table.New("", nil, nil, cells)
}

// NewNamedVector creates a labeled vector with the given identity.
func NewNamedVector(name string, labels []string, values ...float64) *table.Vector {
	cells := make([]table.Cell, len(values))
	for i, v := range values {
		cells[i] = table.Number(v)
	}
	return &table.Vector{Name: name, Labels: labels, Cells: cells}
}

// Dump logs a full spew dump of v, useful when a table comparison fails and
// the assert diff is too terse to read.
func Dump(t *testing.T, label string, v any) {
	t.Helper()
	t.Logf("%s:\n%s", label, spew.Sdump(v))
}
