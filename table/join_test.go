package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoColPair() (*Table, *Table) {
	left := New("L", []string{"A", "B"}, []string{"x"}, [][]Cell{
		{Number(1)},
		{Number(2)},
	})
	right := New("R", []string{"B", "C"}, []string{"y"}, [][]Cell{
		{Number(3)},
		{Number(4)},
	})
	return left, right
}

func TestJoinModes(t *testing.T) {
	tests := []struct {
		name     string
		mode     JoinMode
		wantKeys []string
	}{
		{name: "inner", mode: JoinInner, wantKeys: []string{"B"}},
		{name: "left", mode: JoinLeft, wantKeys: []string{"A", "B"}},
		{name: "right", mode: JoinRight, wantKeys: []string{"B", "C"}},
		{name: "full", mode: JoinFull, wantKeys: []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := twoColPair()
			out, err := Join(left, right, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeys, out.RowLabels)
			assert.Equal(t, []string{"x", "y"}, out.ColLabels)
		})
	}
}

func TestJoinFullFillsMissingRows(t *testing.T) {
	left, right := twoColPair()

	out, err := Join(left, right, JoinFull)
	require.NoError(t, err)

	require.Equal(t, 3, out.NumRows())
	// A: left value, right null
	assert.Equal(t, Number(1), out.Cell(0, 0))
	assert.True(t, out.Cell(0, 1).Null)
	assert.Equal(t, KindNumber, out.Cell(0, 1).Kind, "fill should match column kind")
	// B: both values
	assert.Equal(t, Number(2), out.Cell(1, 0))
	assert.Equal(t, Number(3), out.Cell(1, 1))
	// C: left null, right value
	assert.True(t, out.Cell(2, 0).Null)
	assert.Equal(t, Number(4), out.Cell(2, 1))
}

func TestJoinPreservesTextColumnKind(t *testing.T) {
	left := New("", []string{"A"}, []string{"label"}, [][]Cell{{Text("alpha")}})
	right := New("", []string{"B"}, []string{"note"}, [][]Cell{{Text("beta")}})

	out, err := Join(left, right, JoinFull)
	require.NoError(t, err)

	assert.Equal(t, KindText, out.Cell(0, 1).Kind)
	assert.Equal(t, KindText, out.Cell(1, 0).Kind)
}

func TestJoinDuplicateKeyRejected(t *testing.T) {
	left := New("", []string{"A", "A"}, nil, [][]Cell{{Number(1)}, {Number(2)}})
	right := New("", []string{"A"}, nil, [][]Cell{{Number(3)}})

	_, err := Join(left, right, JoinFull)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate row label "A"`)
}

func TestJoinRequiresRowLabels(t *testing.T) {
	labeled := New("", []string{"A"}, nil, [][]Cell{{Number(1)}})
	unlabeled := New("", nil, nil, [][]Cell{{Number(2)}})

	_, err := Join(labeled, unlabeled, JoinInner)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires row labels")
}

func TestJoinColLabelsPadded(t *testing.T) {
	left := New("", []string{"A"}, []string{"x"}, [][]Cell{{Number(1)}})
	right := New("", []string{"A"}, nil, [][]Cell{{Number(2)}})

	out, err := Join(left, right, JoinInner)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", ""}, out.ColLabels)
}

func TestJoinModeString(t *testing.T) {
	assert.Equal(t, "inner", JoinInner.String())
	assert.Equal(t, "left", JoinLeft.String())
	assert.Equal(t, "right", JoinRight.String())
	assert.Equal(t, "full", JoinFull.String())
	assert.Equal(t, "unknown", JoinMode(42).String())
}
