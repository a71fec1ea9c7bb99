package table

// PadRows returns a copy of t extended to at least n rows. Appended cells
// are nulls of each column's declared kind; when the row axis is labeled,
// appended rows carry empty labels.
func PadRows(t *Table, n int) *Table {
	out := t.Clone()
	cols := out.NumCols()
	for out.NumRows() < n {
		row := make([]Cell, cols)
		for c := 0; c < cols; c++ {
			row[c] = NullOf(t.ColumnKind(c))
		}
		out.Cells = append(out.Cells, row)
		if out.RowLabels != nil {
			out.RowLabels = append(out.RowLabels, "")
		}
	}
	return out
}

// Bind concatenates two tables column-wise by position. Both tables must
// have the same row count; callers pad the shorter side first. Row labels
// come from the left table when it has them, otherwise from the right.
func Bind(left, right *Table) *Table {
	rows := left.NumRows()
	out := &Table{
		ColLabels: joinColLabels(left, right),
		Cells:     make([][]Cell, rows),
	}
	switch {
	case left.HasRowLabels():
		out.RowLabels = append([]string(nil), left.RowLabels...)
	case right.HasRowLabels():
		out.RowLabels = append([]string(nil), right.RowLabels...)
	}
	for r := 0; r < rows; r++ {
		row := make([]Cell, 0, left.NumCols()+right.NumCols())
		row = append(row, left.Cells[r]...)
		row = append(row, right.Cells[r]...)
		out.Cells[r] = row
	}
	return out
}
