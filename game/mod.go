package game

// Color identifies one of the two players. NoColor marks an empty square.
type Color int8

const (
	NoColor Color = iota
	White
	Black
)

// Opponent returns the complement color.
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		panic("no opponent for an empty color")
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// ParseColor accepts the names produced by Color.String.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return NoColor, false
}

// Move is an opaque, comparable description of a transition between two boards.
type Move interface {
	String() string
}

// Board should be immutable - Play always returns a new copy.
// Moves must return the same order for the same board on every call.
type Board interface {
	Moves(player Color) []Move
	Win(player Color) bool
	Play(move Move) Board
}
