package hexapawn

import (
	"fmt"
	"strings"

	"github.com/10varun17/hex-a-pawn/game"
)

const (
	DefaultRows = 3
	DefaultCols = 3
	MinSize     = 3
)

// Board is a Hex-a-pawn position. White pawns start on row 0 and advance
// towards the last row, Black pawns start on the last row and advance
// towards row 0.
type Board struct {
	rows  int
	cols  int
	cells []game.Color // row-major, row 0 first
}

// NewBoard returns the starting position on a rows x cols board.
func NewBoard(rows, cols int) *Board {
	if rows < MinSize || cols < MinSize {
		panic(fmt.Sprintf("board must be at least %dx%d, got %dx%d", MinSize, MinSize, rows, cols))
	}
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]game.Color, rows*cols),
	}
	for col := 0; col < cols; col++ {
		b.set(Square{Row: 0, Col: col}, game.White)
		b.set(Square{Row: rows - 1, Col: col}, game.Black)
	}
	return b
}

// NewDefaultBoard returns the classic 3x3 starting position.
func NewDefaultBoard() *Board {
	return NewBoard(DefaultRows, DefaultCols)
}

// ParseBoard reads a layout like "bbb/.../www": rows separated by '/', the
// last row (Black's home) first, 'w' and 'b' for pawns and '.' for empty squares.
func ParseBoard(layout string) (*Board, error) {
	lines := strings.Split(strings.TrimSpace(layout), "/")
	rows := len(lines)
	cols := len(lines[0])
	if rows < MinSize || cols < MinSize {
		return nil, fmt.Errorf("board must be at least %dx%d, got %dx%d", MinSize, MinSize, rows, cols)
	}

	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]game.Color, rows*cols),
	}
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d squares, expected %d", i+1, len(line), cols)
		}
		row := rows - 1 - i
		for col, r := range line {
			switch r {
			case 'w', 'W':
				b.set(Square{Row: row, Col: col}, game.White)
			case 'b', 'B':
				b.set(Square{Row: row, Col: col}, game.Black)
			case '.':
			default:
				return nil, fmt.Errorf("unexpected square %q in row %d", r, i+1)
			}
		}
	}
	return b, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// At returns the color of the pawn on sq, NoColor if the square is empty.
func (b *Board) At(sq Square) game.Color {
	return b.cells[sq.Row*b.cols+sq.Col]
}

func (b *Board) set(sq Square, c game.Color) {
	b.cells[sq.Row*b.cols+sq.Col] = c
}

func (b *Board) contains(sq Square) bool {
	return sq.Row >= 0 && sq.Row < b.rows && sq.Col >= 0 && sq.Col < b.cols
}

// copy of the Board.
func (b *Board) copy() *Board {
	cells := make([]game.Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// direction is the row step of a pawn of the given color.
func direction(player game.Color) int {
	if player == game.White {
		return 1
	}
	return -1
}

// goalRow is the row a pawn of the given color has to reach.
func (b *Board) goalRow(player game.Color) int {
	if player == game.White {
		return b.rows - 1
	}
	return 0
}

// Count returns the number of pawns of the given color.
func (b *Board) Count(player game.Color) int {
	n := 0
	for _, c := range b.cells {
		if c == player {
			n++
		}
	}
	return n
}

// Moves lists the legal moves of player: for every pawn in row-major order,
// the forward step first, then captures to the left and to the right.
func (b *Board) Moves(player game.Color) []game.Move {
	opponent := player.Opponent()
	step := direction(player)

	moves := []game.Move{}
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			from := Square{Row: row, Col: col}
			if b.At(from) != player {
				continue
			}

			forward := Square{Row: row + step, Col: col}
			if b.contains(forward) && b.At(forward) == game.NoColor {
				moves = append(moves, Move{From: from, To: forward})
			}
			for _, dc := range []int{-1, 1} {
				target := Square{Row: row + step, Col: col + dc}
				if b.contains(target) && b.At(target) == opponent {
					moves = append(moves, Move{From: from, To: target})
				}
			}
		}
	}
	return moves
}

// Win reports whether player has won: the opponent lost every pawn, a pawn of
// player reached the far row, or the opponent cannot move.
func (b *Board) Win(player game.Color) bool {
	opponent := player.Opponent()
	if b.Count(opponent) == 0 {
		return true
	}
	goal := b.goalRow(player)
	for col := 0; col < b.cols; col++ {
		if b.At(Square{Row: goal, Col: col}) == player {
			return true
		}
	}
	return len(b.Moves(opponent)) == 0
}

// Play returns the board after move; the receiver is not modified.
func (b *Board) Play(move game.Move) game.Board {
	m, ok := move.(Move)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}
	if !b.contains(m.From) || !b.contains(m.To) {
		panic(fmt.Sprintf("move %s is off a %dx%d board", m, b.rows, b.cols))
	}
	pawn := b.At(m.From)
	if pawn == game.NoColor {
		panic(fmt.Sprintf("no pawn on %s", m.From))
	}

	next := b.copy()
	next.set(m.To, pawn)
	next.set(m.From, game.NoColor)
	return next
}

// String renders the board in the ParseBoard layout, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for row := b.rows - 1; row >= 0; row-- {
		for col := 0; col < b.cols; col++ {
			switch b.At(Square{Row: row, Col: col}) {
			case game.White:
				sb.WriteByte('w')
			case game.Black:
				sb.WriteByte('b')
			default:
				sb.WriteByte('.')
			}
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Layout is String with '/' separators, the format ParseBoard reads.
func (b *Board) Layout() string {
	return strings.ReplaceAll(b.String(), "\n", "/")
}
