package searcher

import (
	"github.com/10varun17/hex-a-pawn/experiments/metrics"
	"github.com/10varun17/hex-a-pawn/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// Searcher builds a fresh tree of a fixed depth for every decision. A
// Searcher with metrics must not be shared between goroutines.
type Searcher struct {
	depth   int
	metrics metrics.Collector
}

func NewSearcher(depth int, options ...Option) *Searcher {
	if depth < 1 {
		panic("search depth must be at least 1")
	}
	s := &Searcher{ // Default values
		depth:   depth,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// Search returns the moves of mover tied for the best score on board.
func (s *Searcher) Search(board game.Board, mover game.Color) ([]game.Move, metrics.SearchMetric) {
	s.metrics.Start(s.depth)
	root := build(Position{Board: board, Mover: mover}, s.depth, s.metrics)
	best, score := rank(root)
	metric := s.metrics.Complete()
	metric.Depth = s.depth
	metric.BestScore = score
	metric.Ties = len(best)

	log.Debug().
		Str("mover", mover.String()).
		Int("depth", s.depth).
		Int("moves", root.Len()).
		Int("ties", len(best)).
		Float64("score", score).
		Msg("tree-searched")

	return best, metric
}
