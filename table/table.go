package table

// Table is a 2-D grid of cells with optional ordered row and column labels.
// A nil label slice means that axis is unlabeled; the two axes are
// independent. Name is the table's identity, used by the merger to build
// disambiguated column labels; an empty Name means the table is unnamed.
//
// Cells is row-major: Cells[r][c] is the value at row r, column c. All rows
// must have the same length.
type Table struct {
	Name      string
	RowLabels []string
	ColLabels []string
	Cells     [][]Cell
}

// New constructs a table. The label slices may be nil for an unlabeled axis.
func New(name string, rowLabels, colLabels []string, cells [][]Cell) *Table {
	return &Table{
		Name:      name,
		RowLabels: rowLabels,
		ColLabels: colLabels,
		Cells:     cells,
	}
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.Cells) > 0 {
		return len(t.Cells)
	}
	return len(t.RowLabels)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	if len(t.Cells) > 0 {
		return len(t.Cells[0])
	}
	return len(t.ColLabels)
}

// HasRowLabels reports whether the row axis is labeled.
func (t *Table) HasRowLabels() bool {
	return t.RowLabels != nil
}

// HasColLabels reports whether the column axis is labeled.
func (t *Table) HasColLabels() bool {
	return t.ColLabels != nil
}

// Cell returns the value at row r, column c.
func (t *Table) Cell(r, c int) Cell {
	return t.Cells[r][c]
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{Name: t.Name}
	if t.RowLabels != nil {
		out.RowLabels = append([]string(nil), t.RowLabels...)
	}
	if t.ColLabels != nil {
		out.ColLabels = append([]string(nil), t.ColLabels...)
	}
	if t.Cells != nil {
		out.Cells = make([][]Cell, len(t.Cells))
		for r, row := range t.Cells {
			out.Cells[r] = append([]Cell(nil), row...)
		}
	}
	return out
}

// Transpose returns a new table with rows and columns exchanged. Row labels
// become column labels and vice versa; the identity is preserved.
func (t *Table) Transpose() *Table {
	rows, cols := t.NumRows(), t.NumCols()
	out := &Table{Name: t.Name}
	if t.ColLabels != nil {
		out.RowLabels = append([]string(nil), t.ColLabels...)
	}
	if t.RowLabels != nil {
		out.ColLabels = append([]string(nil), t.RowLabels...)
	}
	if len(t.Cells) > 0 {
		out.Cells = make([][]Cell, cols)
		for c := 0; c < cols; c++ {
			out.Cells[c] = make([]Cell, rows)
			for r := 0; r < rows; r++ {
				out.Cells[c][r] = t.Cells[r][c]
			}
		}
	}
	return out
}

// ColumnKind returns the declared kind of column c: the kind of its first
// non-null cell, or KindNumber for an all-null or empty column.
func (t *Table) ColumnKind(c int) Kind {
	for r := range t.Cells {
		if !t.Cells[r][c].Null {
			return t.Cells[r][c].Kind
		}
	}
	return KindNumber
}

// UniformKind reports whether every non-null cell in the table shares one
// kind, and which kind that is. An empty or all-null table is not uniform.
func (t *Table) UniformKind() (Kind, bool) {
	var kind Kind
	seen := false
	for _, row := range t.Cells {
		for _, c := range row {
			if c.Null {
				continue
			}
			if !seen {
				kind = c.Kind
				seen = true
			} else if c.Kind != kind {
				return 0, false
			}
		}
	}
	return kind, seen
}

// Coerce returns a copy of the table with every null cell retyped to k,
// producing a uniformly typed grid. Non-null cells are left untouched.
func (t *Table) Coerce(k Kind) *Table {
	out := t.Clone()
	for r := range out.Cells {
		for c := range out.Cells[r] {
			if out.Cells[r][c].Null {
				out.Cells[r][c].Kind = k
			}
		}
	}
	return out
}
