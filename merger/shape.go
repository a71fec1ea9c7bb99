package merger

import (
	"github.com/erraggy/tabletools/internal/stringutil"
	"github.com/erraggy/tabletools/taberrors"
	"github.com/erraggy/tabletools/table"
)

// shapeInput normalizes one input into a 2-D table oriented for the merge:
// after shaping, alignment is always on row labels, so an up-and-down merge
// transposes here and transposes back once the pair is merged.
//
// Vectors are promoted to a single column (with the statistic name as the
// column label when present). A vector's element labels are its only labeled
// axis and the merge aligns on them in either direction, so promoted vectors
// skip the transpose. A 3-axis array keeps only its first plane and warns
// that the remaining statistics were dropped; more than 3 axes is fatal.
// Row labels are trimmed so matching ignores surrounding whitespace.
func shapeInput(in table.Input, direction Direction, st *mergeState) (*table.Table, error) {
	var t *table.Table
	transpose := direction == UpAndDown
	switch v := in.(type) {
	case *table.Table:
		t = v.Clone()
	case *table.Vector:
		t = promoteVector(v)
		transpose = false
	case *table.Array:
		shaped, err := shapeArray(v, st)
		if err != nil {
			return nil, err
		}
		t = shaped
	default:
		return nil, &taberrors.ConfigError{Message: "unsupported input type"}
	}

	if transpose {
		t = t.Transpose()
	}
	t.RowLabels = stringutil.TrimAll(t.RowLabels)
	return t, nil
}

// promoteVector turns a bare 1-D sequence into a single-column table.
func promoteVector(v *table.Vector) *table.Table {
	cells := make([][]table.Cell, len(v.Cells))
	for i, c := range v.Cells {
		cells[i] = []table.Cell{c}
	}
	var colLabels []string
	if v.StatName != "" {
		colLabels = []string{v.StatName}
	}
	var rowLabels []string
	if v.Labels != nil {
		rowLabels = append([]string(nil), v.Labels...)
	}
	return table.New(v.Name, rowLabels, colLabels, cells)
}

// shapeArray reduces an N-axis array to a 2-D table.
func shapeArray(a *table.Array, st *mergeState) (*table.Table, error) {
	switch a.NumAxes() {
	case 0:
		return nil, &taberrors.ConfigError{Message: "array input has no axes"}
	case 1:
		cells := make([][]table.Cell, a.Dims[0])
		for i := 0; i < a.Dims[0]; i++ {
			cells[i] = []table.Cell{a.At(i)}
		}
		return table.New(a.Name, cloneLabels(a.AxisLabels(0)), nil, cells), nil
	case 2:
		rows, cols := a.Dims[0], a.Dims[1]
		cells := make([][]table.Cell, rows)
		for r := 0; r < rows; r++ {
			cells[r] = make([]table.Cell, cols)
			for c := 0; c < cols; c++ {
				cells[r][c] = a.At(r, c)
			}
		}
		return table.New(a.Name, cloneLabels(a.AxisLabels(0)), cloneLabels(a.AxisLabels(1)), cells), nil
	case 3:
		if a.Dims[2] > 1 {
			st.warn(NewPlaneCollapsedWarning(a.Name, a.Dims[2]-1, a.AxisLabels(2)))
		}
		rows, cols := a.Dims[0], a.Dims[1]
		cells := make([][]table.Cell, rows)
		for r := 0; r < rows; r++ {
			cells[r] = make([]table.Cell, cols)
			for c := 0; c < cols; c++ {
				cells[r][c] = a.At(r, c, 0)
			}
		}
		return table.New(a.Name, cloneLabels(a.AxisLabels(0)), cloneLabels(a.AxisLabels(1)), cells), nil
	default:
		return nil, &taberrors.TooManyDimensionsError{Table: a.Name, Axes: a.NumAxes()}
	}
}

func cloneLabels(labels []string) []string {
	if labels == nil {
		return nil
	}
	return append([]string(nil), labels...)
}
