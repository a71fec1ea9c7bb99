package table

import "fmt"

// JoinMode selects which row-label keys survive a join.
type JoinMode int

const (
	// JoinInner keeps only keys present in both tables.
	JoinInner JoinMode = iota
	// JoinLeft keeps every key of the left table.
	JoinLeft
	// JoinRight keeps every key of the right table.
	JoinRight
	// JoinFull keeps the union of both tables' keys.
	JoinFull
)

// String returns the string representation of the join mode.
func (m JoinMode) String() string {
	switch m {
	case JoinInner:
		return "inner"
	case JoinLeft:
		return "left"
	case JoinRight:
		return "right"
	case JoinFull:
		return "full"
	default:
		return "unknown"
	}
}

// Join combines two tables on their row labels. The output carries the
// left table's columns followed by the right table's columns; rows absent
// from one side are filled with null cells of each column's declared kind.
//
// Both tables must have row labels, and labels must be unique per side:
// a duplicate key is an error rather than a silently dropped row. The key
// order of the result is left-determined (inner/left/full) or
// right-determined (right); callers impose their own final ordering.
func Join(left, right *Table, mode JoinMode) (*Table, error) {
	if !left.HasRowLabels() || !right.HasRowLabels() {
		return nil, fmt.Errorf("table: join requires row labels on both tables")
	}
	leftIdx, err := rowIndex(left)
	if err != nil {
		return nil, err
	}
	rightIdx, err := rowIndex(right)
	if err != nil {
		return nil, err
	}

	var keys []string
	switch mode {
	case JoinInner:
		for _, k := range left.RowLabels {
			if _, ok := rightIdx[k]; ok {
				keys = append(keys, k)
			}
		}
	case JoinLeft:
		keys = append(keys, left.RowLabels...)
	case JoinRight:
		keys = append(keys, right.RowLabels...)
	case JoinFull:
		keys = append(keys, left.RowLabels...)
		for _, k := range right.RowLabels {
			if _, ok := leftIdx[k]; !ok {
				keys = append(keys, k)
			}
		}
	default:
		return nil, fmt.Errorf("table: unknown join mode: %d", mode)
	}

	leftCols, rightCols := left.NumCols(), right.NumCols()
	out := &Table{
		RowLabels: keys,
		ColLabels: joinColLabels(left, right),
		Cells:     make([][]Cell, len(keys)),
	}
	for i, k := range keys {
		row := make([]Cell, 0, leftCols+rightCols)
		row = appendRow(row, left, leftIdx, k, leftCols)
		row = appendRow(row, right, rightIdx, k, rightCols)
		out.Cells[i] = row
	}
	return out, nil
}

// rowIndex maps each row label to its row, rejecting duplicates.
func rowIndex(t *Table) (map[string]int, error) {
	idx := make(map[string]int, len(t.RowLabels))
	for i, k := range t.RowLabels {
		if _, ok := idx[k]; ok {
			return nil, fmt.Errorf("table: duplicate row label %q", k)
		}
		idx[k] = i
	}
	return idx, nil
}

// appendRow appends table t's cells for key k, or typed nulls when absent.
func appendRow(row []Cell, t *Table, idx map[string]int, k string, cols int) []Cell {
	if r, ok := idx[k]; ok && r < len(t.Cells) {
		return append(row, t.Cells[r]...)
	}
	for c := 0; c < cols; c++ {
		row = append(row, NullOf(t.ColumnKind(c)))
	}
	return row
}

// joinColLabels concatenates column labels, padding with empty strings when
// only one side is labeled. Both sides unlabeled yields an unlabeled axis.
func joinColLabels(left, right *Table) []string {
	if !left.HasColLabels() && !right.HasColLabels() {
		return nil
	}
	out := make([]string, 0, left.NumCols()+right.NumCols())
	out = append(out, paddedLabels(left)...)
	out = append(out, paddedLabels(right)...)
	return out
}

// paddedLabels returns a table's column labels, or empty strings when the
// axis is unlabeled.
func paddedLabels(t *Table) []string {
	if t.HasColLabels() {
		return t.ColLabels
	}
	return make([]string, t.NumCols())
}
