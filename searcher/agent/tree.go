package agent

import (
	"github.com/10varun17/hex-a-pawn/experiments/metrics"
	"github.com/10varun17/hex-a-pawn/game"
	"github.com/10varun17/hex-a-pawn/searcher"

	"lukechampine.com/frand"
)

type treeAgent struct {
	searcher *searcher.Searcher
	rng      RNG
}

// NewTreeAgent returns an agent that searches a full game tree every turn and
// breaks ties uniformly at random. A nil rng falls back to a fresh frand
// generator.
func NewTreeAgent(s *searcher.Searcher, rng RNG) Agent {
	if rng == nil {
		rng = frand.New()
	}
	return &treeAgent{searcher: s, rng: rng}
}

func (a *treeAgent) FindMove(board game.Board, player game.Color) (game.Move, metrics.SearchMetric) {
	best, metric := a.searcher.Search(board, player)
	if len(best) == 0 {
		return nil, metric
	}
	return best[a.rng.Intn(len(best))], metric
}
