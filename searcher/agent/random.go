package agent

import (
	"github.com/10varun17/hex-a-pawn/experiments/metrics"
	"github.com/10varun17/hex-a-pawn/game"

	"lukechampine.com/frand"
)

type randomAgent struct {
	rng RNG
}

// NewRandomAgent returns a baseline agent that plays any legal move.
func NewRandomAgent(rng RNG) Agent {
	if rng == nil {
		rng = frand.New()
	}
	return &randomAgent{rng: rng}
}

func (a *randomAgent) FindMove(board game.Board, player game.Color) (game.Move, metrics.SearchMetric) {
	moves := board.Moves(player)
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
