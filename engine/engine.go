package engine

import (
	"errors"

	"github.com/10varun17/hex-a-pawn/experiments/metrics"
	"github.com/10varun17/hex-a-pawn/game"
	"github.com/10varun17/hex-a-pawn/searcher/agent"
)

// MaxTurns caps a game in case the rules never produce a winner.
const MaxTurns = 1000

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
	ErrNoWinner    = errors.New("no winner within the turn limit")
)

type Player struct {
	Name  string
	Color game.Color
	Agent agent.Agent
}

func (p Player) String() string {
	return p.Name
}

type Runner interface {
	// Run plays until there's a winner or MaxTurns moves have been played
	Run() (winner Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
