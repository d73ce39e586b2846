package searcher

import (
	"fmt"

	"github.com/10varun17/hex-a-pawn/game"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return fmt.Sprintf("move%d", m.id)
}

// mockBoard is a scripted game: the i-th move leads to next[i], and winner
// is the player who has already won on this board.
type mockBoard struct {
	winner game.Color
	next   []mockBoard
	played *int
}

func (m mockBoard) Moves(player game.Color) []game.Move {
	moves := make([]game.Move, len(m.next))
	for i := range m.next {
		moves[i] = mockMove{id: i}
	}
	return moves
}

func (m mockBoard) Win(player game.Color) bool {
	return m.winner == player
}

func (m mockBoard) Play(move game.Move) game.Board {
	if m.played != nil {
		*m.played++
	}
	return m.next[move.(mockMove).id]
}

// open is an undecided board with the given continuations.
func open(next ...mockBoard) mockBoard {
	return mockBoard{next: next}
}

// won is a board already won by player.
func won(player game.Color, next ...mockBoard) mockBoard {
	return mockBoard{winner: player, next: next}
}
