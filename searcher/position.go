package searcher

import "github.com/10varun17/hex-a-pawn/game"

// Position is a board together with the player to move on it.
type Position struct {
	Board game.Board
	Mover game.Color
}

// LastMover is the player whose move produced the board.
func (p Position) LastMover() game.Color {
	return p.Mover.Opponent()
}

// Decided reports whether the last mover has already won.
func (p Position) Decided() bool {
	return p.Board.Win(p.LastMover())
}

// Play applies move and hands the turn to the opponent.
func (p Position) Play(move game.Move) Position {
	return Position{
		Board: p.Board.Play(move),
		Mover: p.LastMover(),
	}
}

// LegalMoves lists the mover's moves in the board's canonical order.
func (p Position) LegalMoves() []game.Move {
	return p.Board.Moves(p.Mover)
}
