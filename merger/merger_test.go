package merger

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/tabletools/internal/testutil"
	"github.com/erraggy/tabletools/taberrors"
	"github.com/erraggy/tabletools/table"
)

func TestMain(m *testing.M) {
	// Expected warnings would otherwise clutter the test output.
	mergerLogger = slog.New(slog.DiscardHandler)
	os.Exit(m.Run())
}

// singleCol builds a named one-column table from label/value pairs.
func singleCol(name, colLabel string, labels []string, values ...float64) *table.Table {
	cells := make([][]table.Cell, len(values))
	for i, v := range values {
		cells[i] = []table.Cell{table.Number(v)}
	}
	var cols []string
	if colLabel != "" {
		cols = []string{colLabel}
	}
	return table.New(name, labels, cols, cells)
}

func TestMergeTwoKeepAllOuterJoin(t *testing.T) {
	left := singleCol("L", "left", []string{"A", "B"}, 1, 2)
	right := singleCol("R", "right", []string{"B", "C"}, 3, 4)

	result, err := MergeTwo(left, right, SideBySide, KeepAll, nil)
	require.NoError(t, err)

	out := result.Table
	assert.Equal(t, []string{"A", "B", "C"}, out.RowLabels)
	assert.Equal(t, []string{"left", "right"}, out.ColLabels)

	// A: [1, NA]; B: [2, 3]; C: [NA, 4]
	assert.Equal(t, table.Number(1), out.Cell(0, 0))
	assert.True(t, out.Cell(0, 1).Null)
	assert.Equal(t, table.Number(2), out.Cell(1, 0))
	assert.Equal(t, table.Number(3), out.Cell(1, 1))
	assert.True(t, out.Cell(2, 0).Null)
	assert.Equal(t, table.Number(4), out.Cell(2, 1))

	assert.Empty(t, result.Warnings)
	assert.Zero(t, result.ColumnsRenamed)
}

func TestMergeTwoMatchingOnly(t *testing.T) {
	left := singleCol("L", "left", []string{"A", "B"}, 1, 2)
	right := singleCol("R", "right", []string{"B", "C"}, 3, 4)

	result, err := MergeTwo(left, right, SideBySide, MatchingOnly, nil)
	require.NoError(t, err)

	out := result.Table
	require.Equal(t, []string{"B"}, out.RowLabels)
	assert.Equal(t, table.Number(2), out.Cell(0, 0))
	assert.Equal(t, table.Number(3), out.Cell(0, 1))
}

func TestMergeTwoMatchingOnlyDisjointFails(t *testing.T) {
	left := singleCol("L", "", []string{"A", "B"}, 1, 2)
	right := singleCol("R", "", []string{"X", "Y"}, 3, 4)

	_, err := MergeTwo(left, right, SideBySide, MatchingOnly, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, taberrors.ErrNoOverlap))

	var overlapErr *taberrors.NoOverlapError
	require.True(t, errors.As(err, &overlapErr))
	assert.Equal(t, "up-and-down", overlapErr.Suggested, "error should suggest the opposite direction")
}

func TestMergeTwoKeepAllFromFirst(t *testing.T) {
	left := singleCol("L", "left", []string{"B", "A"}, 1, 2)
	right := singleCol("R", "right", []string{"A", "C"}, 3, 4)

	result, err := MergeTwo(left, right, SideBySide, KeepAllFromFirst, nil)
	require.NoError(t, err)

	out := result.Table
	assert.Equal(t, []string{"B", "A"}, out.RowLabels, "left's original order is kept")
	assert.True(t, out.Cell(0, 1).Null, "B has no right value")
	assert.Equal(t, table.Number(3), out.Cell(1, 1))
}

func TestMergeTwoKeepAllFromSecond(t *testing.T) {
	left := singleCol("L", "left", []string{"B", "A"}, 1, 2)
	right := singleCol("R", "right", []string{"A", "C"}, 3, 4)

	result, err := MergeTwo(left, right, SideBySide, KeepAllFromSecond, nil)
	require.NoError(t, err)

	out := result.Table
	assert.Equal(t, []string{"A", "C"}, out.RowLabels, "right's original order is kept")
	assert.Equal(t, table.Number(2), out.Cell(0, 0))
	assert.True(t, out.Cell(1, 0).Null, "C has no left value")
}

func TestMergeTwoDuplicateLabels(t *testing.T) {
	left := table.New("Sales", []string{"A", "B", "A"}, nil, [][]table.Cell{
		{table.Number(1)},
		{table.Number(2)},
		{table.Number(3)},
	})
	right := singleCol("R", "", []string{"A"}, 4)

	_, err := MergeTwo(left, right, SideBySide, KeepAll, nil)

	require.Error(t, err)
	var dupErr *taberrors.DuplicateLabelError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "Sales", dupErr.Table)
	assert.Equal(t, "left", dupErr.Side)
	require.Len(t, dupErr.Duplicates, 1)
	assert.Equal(t, "A", dupErr.Duplicates[0].Label)
	assert.Equal(t, []int{1, 3}, dupErr.Duplicates[0].Positions, "every duplicate position is listed")
}

func TestMergeTwoMissingLabels(t *testing.T) {
	left := singleCol("L", "", []string{"A"}, 1)
	right := table.New("Costs", []string{"A", "", "C", ""}, nil, [][]table.Cell{
		{table.Number(1)},
		{table.Number(2)},
		{table.Number(3)},
		{table.Number(4)},
	})

	_, err := MergeTwo(left, right, SideBySide, KeepAll, nil)

	require.Error(t, err)
	var missErr *taberrors.MissingLabelError
	require.True(t, errors.As(err, &missErr))
	assert.Equal(t, "Costs", missErr.Table)
	assert.Equal(t, "right", missErr.Side)
	assert.Equal(t, []int{2, 4}, missErr.Positions)
}

func TestMergeTwoPositionalFallback(t *testing.T) {
	unlabeled := testutil.NewUnlabeledColumn(10, 20)
	labeled := singleCol("R", "vals", []string{"P", "Q", "R"}, 1, 2, 3)

	result, err := MergeTwo(unlabeled, labeled, SideBySide, KeepAll, nil)
	require.NoError(t, err)

	out := result.Table
	require.Equal(t, 3, out.NumRows(), "shorter side is padded to the longer")
	assert.Equal(t, []string{"P", "Q", "R"}, out.RowLabels)
	assert.Equal(t, table.Number(10), out.Cell(0, 0))
	assert.Equal(t, table.Number(20), out.Cell(1, 0))
	assert.True(t, out.Cell(2, 0).Null, "padded entry is a typed missing value")
	assert.Equal(t, table.KindNumber, out.Cell(2, 0).Kind)

	require.Len(t, result.Warnings, 1)
	w := result.Warnings[0]
	assert.Equal(t, WarnPositionalFallback, w.Category)
	assert.Contains(t, w.Message, "index order")
	assert.Contains(t, w.Message, "row", "warning names the affected axis kind")
}

func TestMergeTwoPositionalFallbackNamesColumnAxisUpAndDown(t *testing.T) {
	unlabeled := &table.Vector{Cells: []table.Cell{table.Number(1)}}
	labeled := singleCol("R", "", []string{"P"}, 2)

	result, err := MergeTwo(unlabeled, labeled, UpAndDown, KeepAll, nil)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "column")
}

func TestMergeTwoDisambiguatesCollidingColumns(t *testing.T) {
	left := singleCol("Sales", "Total", []string{"A"}, 1)
	right := singleCol("Costs", "Total", []string{"A"}, 2)

	result, err := MergeTwo(left, right, SideBySide, KeepAll, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Sales - Total", "Costs - Total"}, result.Table.ColLabels)
	assert.Equal(t, 2, result.ColumnsRenamed)
	assert.Empty(t, result.Warnings)
}

func TestMergeTwoUnnamedLeftWarnsOnCollision(t *testing.T) {
	left := singleCol("", "Total", []string{"A"}, 1)
	right := singleCol("Costs", "Total", []string{"A"}, 2)

	result, err := MergeTwo(left, right, SideBySide, KeepAll, nil)
	require.NoError(t, err)

	// Left cannot be disambiguated without an identity; right still is.
	assert.Equal(t, []string{"Total", "Costs - Total"}, result.Table.ColLabels)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarnUnnamedTable, result.Warnings[0].Category)
	assert.Contains(t, result.Warnings[0].Message, `"Total"`)
}

func TestMergeTwoUnnamedRightAssumedPreDisambiguated(t *testing.T) {
	left := singleCol("Sales", "Total", []string{"A"}, 1)
	right := singleCol("", "Total", []string{"A"}, 2)

	result, err := MergeTwo(left, right, SideBySide, KeepAll, nil)
	require.NoError(t, err)

	// Only the named left side is rewritten; the unnamed right is treated
	// as the output of a nested merge and left alone, without a warning.
	assert.Equal(t, []string{"Sales - Total", "Total"}, result.Table.ColLabels)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 1, result.ColumnsRenamed)
}

func TestMergeTwoDisambiguationLabelsFromContext(t *testing.T) {
	// "Total" does not collide between this pair, but outer context says it
	// must be disambiguated anyway.
	left := singleCol("Sales", "Total", []string{"A"}, 1)
	right := singleCol("Costs", "Other", []string{"A"}, 2)

	result, err := MergeTwo(left, right, SideBySide, KeepAll, []string{"Total"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sales - Total", "Other"}, result.Table.ColLabels)
}

func TestMergeTwoTrimsRowLabelWhitespace(t *testing.T) {
	left := singleCol("L", "left", []string{" B ", "A"}, 1, 2)
	right := singleCol("R", "right", []string{"B"}, 3)

	result, err := MergeTwo(left, right, SideBySide, MatchingOnly, nil)
	require.NoError(t, err)

	require.Equal(t, []string{"B"}, result.Table.RowLabels)
	assert.Equal(t, table.Number(1), result.Table.Cell(0, 0))
	assert.Equal(t, table.Number(3), result.Table.Cell(0, 1))
}

func TestMergeTwoNetForcedLast(t *testing.T) {
	left := singleCol("L", "left", []string{"A", "NET"}, 1, 9)
	right := singleCol("R", "right", []string{"NET", "B"}, 8, 2)

	result, err := MergeTwo(left, right, SideBySide, KeepAll, nil)
	require.NoError(t, err)

	labels := result.Table.RowLabels
	require.NotEmpty(t, labels)
	assert.Equal(t, "NET", labels[len(labels)-1])
	assert.Equal(t, []string{"A", "B", "NET"}, labels)
}

func TestMergeTwoUpAndDown(t *testing.T) {
	// Up-and-down aligns on column labels and unions rows.
	left := table.New("L", []string{"r1"}, []string{"x", "y"}, [][]table.Cell{
		{table.Number(1), table.Number(2)},
	})
	right := table.New("R", []string{"r2"}, []string{"y", "z"}, [][]table.Cell{
		{table.Number(3), table.Number(4)},
	})

	result, err := MergeTwo(left, right, UpAndDown, KeepAll, nil)
	require.NoError(t, err)

	out := result.Table
	assert.Equal(t, []string{"x", "y", "z"}, out.ColLabels)
	assert.Equal(t, []string{"r1", "r2"}, out.RowLabels)
	assert.Equal(t, table.Number(2), out.Cell(0, 1))
	assert.Equal(t, table.Number(3), out.Cell(1, 1))
	assert.True(t, out.Cell(1, 0).Null, "r2 has no x value")
	assert.True(t, out.Cell(0, 2).Null, "r1 has no z value")
}

func TestMergeTwoVectorsUpAndDown(t *testing.T) {
	// A vector's element labels are its only labeled axis, so an up-and-down
	// merge stacks vectors as rows aligned on those labels.
	left := &table.Vector{
		Name:     "Sales",
		StatName: "Sales",
		Labels:   []string{"A", "B"},
		Cells:    []table.Cell{table.Number(1), table.Number(2)},
	}
	right := &table.Vector{
		Name:     "Costs",
		StatName: "Costs",
		Labels:   []string{"A", "B"},
		Cells:    []table.Cell{table.Number(3), table.Number(4)},
	}

	result, err := MergeTwo(left, right, UpAndDown, KeepAll, nil)
	require.NoError(t, err)

	out := result.Table
	require.Equal(t, 2, out.NumRows())
	require.Equal(t, 2, out.NumCols())
	assert.Equal(t, []string{"A", "B"}, out.ColLabels)
	assert.Equal(t, []string{"Sales", "Costs"}, out.RowLabels)
	assert.Equal(t, table.Number(1), out.Cell(0, 0))
	assert.Equal(t, table.Number(2), out.Cell(0, 1))
	assert.Equal(t, table.Number(3), out.Cell(1, 0))
	assert.Equal(t, table.Number(4), out.Cell(1, 1))
	assert.Empty(t, result.Warnings, "labeled vectors align by label, not position")
}

func TestMergeTwoVectorAgainstTableUpAndDown(t *testing.T) {
	v := &table.Vector{
		StatName: "Q3",
		Labels:   []string{"x", "y"},
		Cells:    []table.Cell{table.Number(5), table.Number(6)},
	}
	tbl := table.New("History", []string{"Q1", "Q2"}, []string{"y", "z"}, [][]table.Cell{
		{table.Number(1), table.Number(2)},
		{table.Number(3), table.Number(4)},
	})

	result, err := MergeTwo(v, tbl, UpAndDown, KeepAll, nil)
	require.NoError(t, err)

	out := result.Table
	assert.Equal(t, []string{"x", "y", "z"}, out.ColLabels)
	assert.Equal(t, []string{"Q3", "Q1", "Q2"}, out.RowLabels)
	assert.Equal(t, table.Number(6), out.Cell(0, 1))
	assert.Equal(t, table.Number(1), out.Cell(1, 1))
	assert.True(t, out.Cell(1, 0).Null, "Q1 has no x value")
	assert.True(t, out.Cell(0, 2).Null, "Q3 has no z value")
	assert.Empty(t, result.Warnings)
}

func TestMergeTwoUniformNumericCoercion(t *testing.T) {
	left := singleCol("L", "left", []string{"A"}, 1)
	right := singleCol("R", "right", []string{"B"}, 2)

	result, err := MergeTwo(left, right, SideBySide, KeepAll, nil)
	require.NoError(t, err)

	kind, ok := result.Table.UniformKind()
	if !ok {
		testutil.Dump(t, "merged table", result.Table)
	}
	require.True(t, ok, "uniformly numeric inputs produce a uniformly numeric result")
	assert.Equal(t, table.KindNumber, kind)
	for r := 0; r < result.Table.NumRows(); r++ {
		for c := 0; c < result.Table.NumCols(); c++ {
			assert.Equal(t, table.KindNumber, result.Table.Cell(r, c).Kind)
		}
	}
}

func TestMergeTwoRejectsFourAxes(t *testing.T) {
	arr := &table.Array{
		Name: "Hyper",
		Dims: []int{1, 1, 1, 2},
		Cells: []table.Cell{
			table.Number(1), table.Number(2),
		},
	}
	other := singleCol("R", "", []string{"A"}, 1)

	_, err := MergeTwo(arr, other, SideBySide, KeepAll, nil)

	require.Error(t, err)
	var dimErr *taberrors.TooManyDimensionsError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 4, dimErr.Axes)
	assert.Equal(t, "Hyper", dimErr.Table)
}

func TestMergeTwoDoesNotMutateInputs(t *testing.T) {
	left := singleCol("Sales", "Total", []string{" A "}, 1)
	right := singleCol("Costs", "Total", []string{"A"}, 2)
	leftBefore := left.Clone()
	rightBefore := right.Clone()

	_, err := MergeTwo(left, right, SideBySide, KeepAll, nil)
	require.NoError(t, err)

	assert.Equal(t, leftBefore, left)
	assert.Equal(t, rightBefore, right)
}

func TestMergeTwoDisjointKeepAllRowSetCommutes(t *testing.T) {
	a := singleCol("A", "a", []string{"P", "Q"}, 1, 2)
	b := singleCol("B", "b", []string{"X", "Y"}, 3, 4)

	ab, err := MergeTwo(a, b, SideBySide, KeepAll, nil)
	require.NoError(t, err)
	ba, err := MergeTwo(b, a, SideBySide, KeepAll, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, ab.Table.RowLabels, ba.Table.RowLabels,
		"full outer union of disjoint labels yields the same row set either way")
}

func TestMergeTwoInvalidEnums(t *testing.T) {
	left := singleCol("L", "", []string{"A"}, 1)
	right := singleCol("R", "", []string{"A"}, 2)

	_, err := MergeTwo(left, right, Direction("diagonal"), KeepAll, nil)
	assert.True(t, errors.Is(err, taberrors.ErrConfig))

	_, err = MergeTwo(left, right, SideBySide, NonMatchingPolicy("sometimes"), nil)
	assert.True(t, errors.Is(err, taberrors.ErrConfig))
}

func TestDirectionHelpers(t *testing.T) {
	assert.Equal(t, UpAndDown, SideBySide.Opposite())
	assert.Equal(t, SideBySide, UpAndDown.Opposite())
	assert.Equal(t, []string{"side-by-side", "up-and-down"}, ValidDirections())
	assert.True(t, IsValidDirection("side-by-side"))
	assert.False(t, IsValidDirection("sideways"))
}

func TestPolicyHelpers(t *testing.T) {
	assert.Len(t, ValidPolicies(), 4)
	for _, p := range ValidPolicies() {
		assert.True(t, IsValidPolicy(p), "policy %q should be valid", p)
	}
	assert.False(t, IsValidPolicy(""))
	assert.False(t, IsValidPolicy("keep-some"))
}
