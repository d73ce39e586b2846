package agent

import (
	"github.com/10varun17/hex-a-pawn/experiments/metrics"
	"github.com/10varun17/hex-a-pawn/game"
)

type Agent interface {
	// FindMove picks a move for player on board, or returns nil when the player
	// has no move to make. Metrics are empty for agents that do not search.
	FindMove(board game.Board, player game.Color) (game.Move, metrics.SearchMetric)
}

// RNG is the source used to break ties between equally good moves.
type RNG interface {
	Intn(n int) int
}
