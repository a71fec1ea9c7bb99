package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileLabels(t *testing.T) {
	tests := []struct {
		name  string
		left  []string
		right []string
		want  []string
	}{
		{
			name:  "right duplicates left exactly",
			left:  []string{"A", "B", "C"},
			right: []string{"A", "B", "C"},
			want:  []string{"A", "B", "C"},
		},
		{
			name:  "right fully matched in different order",
			left:  []string{"A", "B", "C"},
			right: []string{"C", "A"},
			want:  []string{"A", "B", "C"},
		},
		{
			name:  "no overlap appends right after left",
			left:  []string{"A", "B"},
			right: []string{"X", "Y"},
			want:  []string{"A", "B", "X", "Y"},
		},
		{
			name:  "single trailing insertion",
			left:  []string{"A", "B"},
			right: []string{"B", "C"},
			want:  []string{"A", "B", "C"},
		},
		{
			name:  "trailing run lands before later left labels",
			left:  []string{"A", "B", "C"},
			right: []string{"B", "X"},
			want:  []string{"A", "B", "X", "C"},
		},
		{
			name:  "leading run goes before the first match",
			left:  []string{"B", "C"},
			right: []string{"A", "B"},
			want:  []string{"A", "B", "C"},
		},
		{
			name:  "interior run spreads between anchors",
			left:  []string{"A", "D"},
			right: []string{"A", "B", "C", "D"},
			want:  []string{"A", "B", "C", "D"},
		},
		{
			name:  "interleaves around shared anchors",
			left:  []string{"A", "C", "E"},
			right: []string{"A", "B", "C", "D", "E"},
			want:  []string{"A", "B", "C", "D", "E"},
		},
		{
			name:  "empty right returns left",
			left:  []string{"A", "B"},
			right: nil,
			want:  []string{"A", "B"},
		},
		{
			name:  "empty left returns right",
			left:  nil,
			right: []string{"A", "B"},
			want:  []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcileLabels(tt.left, tt.right))
		})
	}
}

func TestReconcileLabelsNetAlwaysLast(t *testing.T) {
	tests := []struct {
		name  string
		left  []string
		right []string
		want  []string
	}{
		{
			name:  "net matched in the middle",
			left:  []string{"A", "NET"},
			right: []string{"NET", "B"},
			want:  []string{"A", "B", "NET"},
		},
		{
			name:  "net only in left",
			left:  []string{"NET", "A"},
			right: []string{"A", "B"},
			want:  []string{"A", "B", "NET"},
		},
		{
			name:  "net only in right with no overlap",
			left:  []string{"A"},
			right: []string{"NET", "B"},
			want:  []string{"A", "B", "NET"},
		},
		{
			name:  "net already last stays put",
			left:  []string{"A", "B"},
			right: []string{"B", "NET"},
			want:  []string{"A", "B", "NET"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcileLabels(tt.left, tt.right))
		})
	}
}

func TestPositionLess(t *testing.T) {
	// 1/3 < 1/2 < 2/3 < 1
	assert.True(t, position{1, 3}.less(position{1, 2}))
	assert.True(t, position{1, 2}.less(position{2, 3}))
	assert.True(t, position{2, 3}.less(intPos(1)))
	assert.False(t, position{2, 4}.less(position{1, 2}), "equal rationals are not less")

	// Negative positions sort before zero: leading runs use (minMatch-1, minMatch).
	assert.True(t, position{-1, 2}.less(intPos(0)))

	// Cross-products exceed 32-bit range; the ordering stays exact.
	assert.True(t, position{99999, 100000}.less(position{100000, 100001}))
	assert.False(t, position{100000, 100001}.less(position{99999, 100000}))
}

func TestRightPositions(t *testing.T) {
	// left anchors at 0 and 1, two unmatched between: spread in (0, 1).
	got := rightPositions([]int{0, -1, -1, 1})

	assert.Equal(t, intPos(0), got[0])
	assert.Equal(t, position{1, 3}, got[1])
	assert.Equal(t, position{2, 3}, got[2])
	assert.Equal(t, intPos(1), got[3])
}

func TestMoveNetLast(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "NET"}, moveNetLast([]string{"A", "NET", "B"}))
	assert.Equal(t, []string{"A", "NET"}, moveNetLast([]string{"A", "NET"}))
	assert.Equal(t, []string{"A", "B"}, moveNetLast([]string{"A", "B"}))
}
