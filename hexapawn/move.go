package hexapawn

import "fmt"

// Square is a board coordinate. Row 0 is White's home row.
type Square struct {
	Row int
	Col int
}

// String uses algebraic names: columns are letters, rows start at 1.
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(s.Col), s.Row+1)
}

// Move moves the pawn on From to To, capturing whatever stands there.
type Move struct {
	From Square
	To   Square
}

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// IsCapture reports whether the move is a diagonal step.
func (m Move) IsCapture() bool {
	return m.From.Col != m.To.Col
}
