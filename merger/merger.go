package merger

import (
	"log/slog"

	"github.com/erraggy/tabletools/taberrors"
	"github.com/erraggy/tabletools/table"
)

// mergerLogger is used for warnings in merger functions.
// Tests can replace this with a discard logger to suppress expected warnings.
var mergerLogger = slog.Default()

// Direction selects which axis a merge aligns on.
type Direction string

const (
	// SideBySide joins column-wise, aligning entries by row label.
	SideBySide Direction = "side-by-side"
	// UpAndDown joins row-wise, aligning entries by column label.
	UpAndDown Direction = "up-and-down"
)

// Opposite returns the other merge direction.
func (d Direction) Opposite() Direction {
	if d == SideBySide {
		return UpAndDown
	}
	return SideBySide
}

// ValidDirections returns all valid direction strings.
func ValidDirections() []string {
	return []string{string(SideBySide), string(UpAndDown)}
}

// IsValidDirection checks if a direction string is valid.
func IsValidDirection(direction string) bool {
	switch Direction(direction) {
	case SideBySide, UpAndDown:
		return true
	default:
		return false
	}
}

// NonMatchingPolicy controls which non-matching labels survive a merge,
// mirroring outer/left/right/inner join semantics on the label union.
type NonMatchingPolicy string

const (
	// KeepAll keeps every label from both sides (full outer join).
	KeepAll NonMatchingPolicy = "keep-all"
	// KeepAllFromFirst keeps every label of the first table (left outer join).
	KeepAllFromFirst NonMatchingPolicy = "keep-all-first"
	// KeepAllFromSecond keeps every label of the second table (right outer join).
	KeepAllFromSecond NonMatchingPolicy = "keep-all-second"
	// MatchingOnly keeps only labels present on both sides (inner join).
	MatchingOnly NonMatchingPolicy = "matching-only"
)

// ValidPolicies returns all valid non-matching policy strings.
func ValidPolicies() []string {
	return []string{
		string(KeepAll),
		string(KeepAllFromFirst),
		string(KeepAllFromSecond),
		string(MatchingOnly),
	}
}

// IsValidPolicy checks if a non-matching policy string is valid.
func IsValidPolicy(policy string) bool {
	switch NonMatchingPolicy(policy) {
	case KeepAll, KeepAllFromFirst, KeepAllFromSecond, MatchingOnly:
		return true
	default:
		return false
	}
}

// MergeResult contains the merged table and metadata about the merge.
type MergeResult struct {
	// Table is the merged output.
	Table *table.Table
	// Warnings lists recoverable conditions encountered during the merge.
	Warnings []*MergeWarning
	// ColumnsRenamed counts column labels rewritten for disambiguation.
	ColumnsRenamed int
}

// mergeState accumulates warnings and counters across the steps of one
// merge invocation.
type mergeState struct {
	warnings []*MergeWarning
	renamed  int
}

func (st *mergeState) warn(w *MergeWarning) {
	st.warnings = append(st.warnings, w)
	mergerLogger.Warn(w.Message, "category", string(w.Category))
}

func (st *mergeState) result(t *table.Table) *MergeResult {
	return &MergeResult{
		Table:          t,
		Warnings:       st.warnings,
		ColumnsRenamed: st.renamed,
	}
}

// MergeTwo merges exactly two inputs. The disambig labels are column names
// known from surrounding context to need disambiguation even when they do
// not collide between this particular pair; MergeAll passes the duplicate
// set discovered across its whole input list.
//
// MergeTwo accepts every NonMatchingPolicy, including KeepAllFromFirst and
// KeepAllFromSecond.
func MergeTwo(left, right table.Input, direction Direction, nonMatching NonMatchingPolicy, disambig []string) (*MergeResult, error) {
	if !IsValidDirection(string(direction)) {
		return nil, &taberrors.ConfigError{Message: "invalid direction: " + string(direction)}
	}
	if !IsValidPolicy(string(nonMatching)) {
		return nil, &taberrors.ConfigError{Message: "invalid non-matching policy: " + string(nonMatching)}
	}

	set := make(map[string]bool, len(disambig))
	for _, d := range disambig {
		set[d] = true
	}
	st := &mergeState{}
	out, err := mergePair(left, right, direction, nonMatching, set, st)
	if err != nil {
		return nil, err
	}
	return st.result(out), nil
}

// MergeAll merges one or more inputs with an explicit right-associative
// fold: the last two inputs are merged first, and each earlier input is
// merged against the accumulated result. Column names duplicated anywhere
// across the input list are disambiguated even when the colliding inputs
// are not adjacent in the fold.
//
// A single input is shaped only (no join). MergeAll accepts KeepAll and
// MatchingOnly; the directional policies only make sense for a pair and are
// rejected here.
func MergeAll(inputs []table.Input, direction Direction, nonMatching NonMatchingPolicy) (*MergeResult, error) {
	if !IsValidDirection(string(direction)) {
		return nil, &taberrors.ConfigError{Message: "invalid direction: " + string(direction)}
	}
	if nonMatching != KeepAll && nonMatching != MatchingOnly {
		return nil, &taberrors.ConfigError{
			Message: "non-matching policy for a multi-table merge must be \"keep-all\" or \"matching-only\", got: " + string(nonMatching),
		}
	}
	return mergeAll(inputs, direction, nonMatching)
}
