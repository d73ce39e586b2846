package engine

import (
	"fmt"
	"time"

	"github.com/10varun17/hex-a-pawn/experiments/metrics"
	"github.com/10varun17/hex-a-pawn/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Engine struct {
	board   game.Board
	players [2]Player
	turn    int // Index of the player to move
	moves   int
	winner  *Player
}

// LocalEngine sets up a game on board where first moves first.
func LocalEngine(board game.Board, first, second Player) *Engine {
	if first.Color == second.Color {
		panic("players need different colors")
	}
	if first.Color == game.NoColor || second.Color == game.NoColor {
		panic("players need a color")
	}

	e := &Engine{
		board:   board,
		players: [2]Player{first, second},
	}
	// The board may already be decided in favour of the player who would have moved last
	if board.Win(second.Color) {
		e.winner = &e.players[1]
	}
	return e
}

func (e *Engine) Board() game.Board {
	return e.board
}

// ToMove returns the player whose turn it is.
func (e *Engine) ToMove() Player {
	return e.players[e.turn]
}

func (e *Engine) opponent() *Player {
	return &e.players[1-e.turn]
}

func (e *Engine) Winner() (Player, bool) {
	if e.winner == nil {
		return Player{}, false
	}
	return *e.winner, true
}

// Play applies move for the player to move.
func (e *Engine) Play(move game.Move) error {
	if e.winner != nil {
		return ErrGameOver
	}

	player := e.players[e.turn]
	if !slices.Contains(e.board.Moves(player.Color), move) {
		return fmt.Errorf("%w: %v for %s", ErrIllegalMove, move, player.Name)
	}

	e.board = e.board.Play(move)
	e.moves++
	e.turn = 1 - e.turn

	if e.board.Win(player.Color) {
		e.winner = e.opponent() // The player who just moved
	}
	return nil
}

// resign ends the game in favour of the opponent of the player to move.
func (e *Engine) resign() {
	e.winner = e.opponent()
}

// Run executes the entire game loop until a winner is found.
func (e *Engine) Run() (Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.ToMove().Name,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", e.ToMove().Name)

	for e.winner == nil && e.moves < MaxTurns {
		player := e.ToMove()

		move, search := player.Agent.FindMove(e.board, player.Color)
		if move == nil {
			log.Debug().Msgf("%s has no move", player.Name)
			e.resign()
			break
		}

		if err := e.Play(move); err != nil {
			return Player{}, gameMetric, moveMetrics, err
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.moves,
			Player:       player.Name,
			Move:         move.String(),
			SearchMetric: search,
		})
		log.Debug().Int("step", e.moves).Str("player", player.Name).Str("move", move.String()).Msg("played")
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.moves

	winner, ok := e.Winner()
	if !ok {
		log.Warn().Msgf("stopped after %d moves (no winner yet)", e.moves)
		return Player{}, gameMetric, moveMetrics, ErrNoWinner
	}
	gameMetric.Winner = winner.Name

	log.Debug().Msgf("game over after %d moves, winner: %s", e.moves, winner.Name)
	return winner, gameMetric, moveMetrics, nil
}
