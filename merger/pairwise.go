package merger

import (
	"fmt"

	"github.com/erraggy/tabletools/internal/stringutil"
	"github.com/erraggy/tabletools/taberrors"
	"github.com/erraggy/tabletools/table"
)

// mergePair merges two shaped inputs. This is the engine the public
// operations and the N-way fold are built on: shaping, the positional
// fallback, label validation, column disambiguation, the join itself, and
// the output ordering all happen here.
func mergePair(left, right table.Input, direction Direction, nonMatching NonMatchingPolicy, disambig map[string]bool, st *mergeState) (*table.Table, error) {
	l, err := shapeInput(left, direction, st)
	if err != nil {
		return nil, err
	}
	r, err := shapeInput(right, direction, st)
	if err != nil {
		return nil, err
	}

	// Without labels on both sides there is nothing to align on: pad the
	// shorter table and bind columns positionally. Disambiguation, joining,
	// and reordering do not apply on this path.
	if !l.HasRowLabels() || !r.HasRowLabels() {
		axis := "row"
		if direction == UpAndDown {
			axis = "column"
		}
		st.warn(NewPositionalFallbackWarning(axis, l.NumRows(), r.NumRows()))
		n := max(l.NumRows(), r.NumRows())
		out := table.Bind(table.PadRows(l, n), table.PadRows(r, n))
		return finishPair(out, l, r, direction), nil
	}

	if nonMatching == MatchingOnly && !labelsOverlap(l.RowLabels, r.RowLabels) {
		return nil, &taberrors.NoOverlapError{
			Direction: string(direction),
			Suggested: string(direction.Opposite()),
		}
	}

	if err := validateLabels(l, "left"); err != nil {
		return nil, err
	}
	if err := validateLabels(r, "right"); err != nil {
		return nil, err
	}

	l, r = disambiguate(l, r, disambig, st)

	joined, err := table.Join(l, r, joinMode(nonMatching))
	if err != nil {
		return nil, fmt.Errorf("merger: %w", err)
	}

	order := outputOrder(l.RowLabels, r.RowLabels, nonMatching)
	out, err := reorderRows(joined, order)
	if err != nil {
		return nil, err
	}
	return finishPair(out, l, r, direction), nil
}

// finishPair restores the requested orientation and, when both inputs were
// uniformly typed the same way, coerces the result to a single-typed grid.
func finishPair(out, l, r *table.Table, direction Direction) *table.Table {
	if direction == UpAndDown {
		out = out.Transpose()
	}
	out.Name = ""
	if lk, ok := l.UniformKind(); ok {
		if rk, ok := r.UniformKind(); ok && lk == rk {
			out = out.Coerce(lk)
		}
	}
	return out
}

// labelsOverlap reports whether the two label sequences share any value.
func labelsOverlap(left, right []string) bool {
	set := make(map[string]bool, len(left))
	for _, l := range left {
		set[l] = true
	}
	for _, r := range right {
		if set[r] {
			return true
		}
	}
	return false
}

// validateLabels rejects unset and duplicated row labels on one side.
// Positional fallback only applies when labels are wholly absent; once a
// side has labels, every one of them must be set and unique.
func validateLabels(t *table.Table, side string) error {
	if missing := stringutil.Positions(t.RowLabels, ""); len(missing) > 0 {
		return &taberrors.MissingLabelError{Table: t.Name, Side: side, Positions: missing}
	}
	if dups := stringutil.Duplicates(t.RowLabels); len(dups) > 0 {
		recs := make([]taberrors.DuplicatedLabel, len(dups))
		for i, d := range dups {
			recs[i] = taberrors.DuplicatedLabel{Label: d, Positions: stringutil.Positions(t.RowLabels, d)}
		}
		return &taberrors.DuplicateLabelError{Table: t.Name, Side: side, Duplicates: recs}
	}
	return nil
}

// disambiguate rewrites colliding column labels as "<identity> - <label>".
// A label collides when both sides carry it, or when the surrounding N-way
// merge flagged it. The left side is always rewritten when it is named; an
// unnamed left table only earns a warning. The right side is rewritten only
// when it carries a name: an unnamed right table is the output of a nested
// merge and its labels were already disambiguated there.
func disambiguate(l, r *table.Table, disambig map[string]bool, st *mergeState) (*table.Table, *table.Table) {
	leftSet := labelSet(l.ColLabels)
	rightSet := labelSet(r.ColLabels)

	leftHits := collisions(l.ColLabels, rightSet, disambig)
	rightHits := collisions(r.ColLabels, leftSet, disambig)

	if len(leftHits) > 0 {
		if l.Name == "" {
			st.warn(NewUnnamedTableWarning("left", leftHits))
		} else {
			l = prefixLabels(l, leftHits)
			st.renamed += len(leftHits)
		}
	}
	if len(rightHits) > 0 && r.Name != "" {
		r = prefixLabels(r, rightHits)
		st.renamed += len(rightHits)
	}
	return l, r
}

func labelSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		if l != "" {
			set[l] = true
		}
	}
	return set
}

// collisions lists, in order, the labels present in other or flagged by the
// caller's disambiguation set.
func collisions(labels []string, other, disambig map[string]bool) []string {
	var out []string
	for _, l := range labels {
		if l == "" {
			continue
		}
		if other[l] || disambig[l] {
			out = append(out, l)
		}
	}
	return out
}

// prefixLabels rewrites the listed column labels as "<name> - <label>".
func prefixLabels(t *table.Table, hits []string) *table.Table {
	hit := make(map[string]bool, len(hits))
	for _, h := range hits {
		hit[h] = true
	}
	out := t.Clone()
	for i, l := range out.ColLabels {
		if hit[l] {
			out.ColLabels[i] = t.Name + " - " + l
		}
	}
	return out
}

// joinMode maps a non-matching policy onto the join primitive's modes.
func joinMode(nonMatching NonMatchingPolicy) table.JoinMode {
	switch nonMatching {
	case MatchingOnly:
		return table.JoinInner
	case KeepAllFromFirst:
		return table.JoinLeft
	case KeepAllFromSecond:
		return table.JoinRight
	default:
		return table.JoinFull
	}
}

// outputOrder determines the final row ordering for the merged pair.
func outputOrder(left, right []string, nonMatching NonMatchingPolicy) []string {
	switch nonMatching {
	case MatchingOnly:
		set := labelSet(right)
		var out []string
		for _, l := range left {
			if set[l] {
				out = append(out, l)
			}
		}
		return out
	case KeepAllFromFirst:
		return left
	case KeepAllFromSecond:
		return right
	default:
		return reconcileLabels(left, right)
	}
}

// reorderRows returns the joined table with its rows in the given label
// order. Every label in order must be present in the joined table.
func reorderRows(t *table.Table, order []string) (*table.Table, error) {
	idx := make(map[string]int, len(t.RowLabels))
	for i, l := range t.RowLabels {
		idx[l] = i
	}
	out := &table.Table{
		Name:      t.Name,
		RowLabels: make([]string, len(order)),
		Cells:     make([][]table.Cell, len(order)),
	}
	if t.HasColLabels() {
		out.ColLabels = append([]string(nil), t.ColLabels...)
	}
	for i, l := range order {
		r, ok := idx[l]
		if !ok {
			return nil, fmt.Errorf("merger: internal: ordered label %q absent from joined table", l)
		}
		out.RowLabels[i] = l
		out.Cells[i] = append([]table.Cell(nil), t.Cells[r]...)
	}
	return out, nil
}
