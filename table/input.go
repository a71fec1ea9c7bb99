package table

// Input is the union of value shapes the merger accepts: a 2-D *Table, a
// 1-D *Vector, or an N-axis *Array. The interface is sealed; the merger's
// shaping step normalizes every Input to a *Table.
type Input interface {
	isInput()
}

func (*Table) isInput()  {}
func (*Vector) isInput() {}
func (*Array) isInput()  {}

// Vector is a bare 1-D sequence of cells with optional element labels.
// StatName names the statistic the cells hold; when present it becomes the
// column label once the vector is promoted to a single-column table.
type Vector struct {
	Name     string
	StatName string
	Labels   []string
	Cells    []Cell
}

// Clone returns a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	out := &Vector{Name: v.Name, StatName: v.StatName}
	if v.Labels != nil {
		out.Labels = append([]string(nil), v.Labels...)
	}
	if v.Cells != nil {
		out.Cells = append([]Cell(nil), v.Cells...)
	}
	return out
}

// Array is an N-axis input. Cells are stored row-major over Dims; Labels
// holds one label slice per axis (entries may be nil for unlabeled axes).
// Arrays of more than 3 axes are rejected at merge time; a 3-axis array is
// collapsed to its first plane along the third axis.
type Array struct {
	Name   string
	Dims   []int
	Labels [][]string
	Cells  []Cell
}

// NumAxes returns the number of axes.
func (a *Array) NumAxes() int {
	return len(a.Dims)
}

// At returns the cell at the given per-axis indices. The number of indices
// must equal the number of axes.
func (a *Array) At(idx ...int) Cell {
	flat := 0
	for ax, i := range idx {
		flat = flat*a.Dims[ax] + i
	}
	return a.Cells[flat]
}

// AxisLabels returns the labels of axis ax, or nil if that axis is
// unlabeled.
func (a *Array) AxisLabels(ax int) []string {
	if ax >= len(a.Labels) {
		return nil
	}
	return a.Labels[ax]
}
