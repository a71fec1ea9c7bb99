package merger

import (
	"github.com/erraggy/tabletools/internal/maputil"
	"github.com/erraggy/tabletools/taberrors"
	"github.com/erraggy/tabletools/table"
)

// mergeAll folds mergePair over the input list, right-associatively: the
// last pair merges first and each earlier input merges against the
// accumulated (unnamed) result. An explicit loop rather than recursion
// keeps ownership of the duplicate-label set obvious and bounds the stack
// for large input lists.
func mergeAll(inputs []table.Input, direction Direction, nonMatching NonMatchingPolicy) (*MergeResult, error) {
	if len(inputs) == 0 {
		return nil, &taberrors.ConfigError{Message: "at least one input table is required"}
	}

	named := assignExternalNames(inputs)
	st := &mergeState{}

	if len(named) == 1 {
		out, err := shapeInput(named[0], direction, st)
		if err != nil {
			return nil, err
		}
		return st.result(out), nil
	}

	// Column names duplicated anywhere across the list must be
	// disambiguated even when the colliding inputs are not adjacent, so the
	// whole-list duplicate set rides along the fold. A plain pair needs no
	// lookahead: its collisions are visible directly.
	var disambig map[string]bool
	if len(named) > 2 {
		var err error
		disambig, err = duplicateColumnLabels(named, direction)
		if err != nil {
			return nil, err
		}
		if len(disambig) > 0 {
			mergerLogger.Debug("column labels duplicated across inputs", "labels", maputil.SortedKeys(disambig))
		}
	}

	acc := named[len(named)-1]
	for i := len(named) - 2; i >= 0; i-- {
		merged, err := mergePair(named[i], acc, direction, nonMatching, disambig, st)
		if err != nil {
			return nil, err
		}
		acc = merged
	}
	return st.result(acc.(*table.Table)), nil
}

// assignExternalNames lets a caller's own container naming double as the
// per-table column name: a bare single-column input that carries an
// identity but no column label adopts that identity as its column label.
func assignExternalNames(inputs []table.Input) []table.Input {
	out := make([]table.Input, len(inputs))
	for i, in := range inputs {
		switch v := in.(type) {
		case *table.Vector:
			if v.Name != "" && v.StatName == "" {
				named := v.Clone()
				named.StatName = v.Name
				out[i] = named
				continue
			}
		case *table.Table:
			if v.Name != "" && v.NumCols() == 1 && !v.HasColLabels() {
				named := v.Clone()
				named.ColLabels = []string{v.Name}
				out[i] = named
				continue
			}
		}
		out[i] = in
	}
	return out
}

// duplicateColumnLabels collects every disambiguation-axis label that
// occurs more than once across the shaped inputs. Shaping here is only for
// counting; its warnings are discarded so the fold does not report them
// twice.
func duplicateColumnLabels(inputs []table.Input, direction Direction) (map[string]bool, error) {
	counting := &mergeState{}
	counts := make(map[string]int)
	for _, in := range inputs {
		t, err := shapeInput(in, direction, counting)
		if err != nil {
			return nil, err
		}
		for _, l := range t.ColLabels {
			if l != "" {
				counts[l]++
			}
		}
	}
	dups := make(map[string]bool)
	for l, n := range counts {
		if n > 1 {
			dups[l] = true
		}
	}
	return dups, nil
}
