package table

// Kind identifies the value type a Cell holds. Values within one column are
// expected to share a kind; mixed columns only arise transiently when a
// table is transposed.
type Kind int

const (
	// KindNumber is a numeric cell value.
	KindNumber Kind = iota
	// KindText is a textual cell value.
	KindText
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Cell is one scalar table value: a number, a text string, or a typed
// missing-value marker. Null cells keep a Kind so that padding and joining
// preserve each column's declared type.
type Cell struct {
	Kind Kind
	Num  float64
	Str  string
	Null bool
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{Kind: KindNumber, Num: v}
}

// Text returns a textual cell.
func Text(s string) Cell {
	return Cell{Kind: KindText, Str: s}
}

// NullOf returns a missing-value cell of the given kind.
func NullOf(k Kind) Cell {
	return Cell{Kind: k, Null: true}
}

// Equal reports whether two cells hold the same value. Null cells are equal
// when their kinds match.
func (c Cell) Equal(other Cell) bool {
	if c.Kind != other.Kind || c.Null != other.Null {
		return false
	}
	if c.Null {
		return true
	}
	if c.Kind == KindNumber {
		return c.Num == other.Num
	}
	return c.Str == other.Str
}
