package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/10varun17/hex-a-pawn/experiments/metrics"
	"github.com/10varun17/hex-a-pawn/game"

	"github.com/rs/zerolog/log"
)

type humanAgent struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewHumanAgent returns an agent that lists the legal moves on out and reads
// the chosen option index from in.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &humanAgent{scanner: scanner, out: out}
}

func (a *humanAgent) FindMove(board game.Board, player game.Color) (game.Move, metrics.SearchMetric) {
	moves := board.Moves(player)
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}
	}

	if s, ok := board.(fmt.Stringer); ok {
		fmt.Fprintf(a.out, "%s\n", s)
	}
	for i, move := range moves {
		fmt.Fprintf(a.out, "Option %d: %s\n", i, move)
	}

	for {
		fmt.Fprint(a.out, "Please select a move: ")
		if !a.scanner.Scan() {
			// Input closed, the player resigns
			log.Warn().Err(a.scanner.Err()).Msg("no more input from human player")
			return nil, metrics.SearchMetric{}
		}

		option, err := strconv.Atoi(a.scanner.Text())
		if err != nil {
			fmt.Fprintln(a.out, "Invalid input! Please select a valid input!")
			continue
		}
		if option < 0 || option >= len(moves) {
			fmt.Fprintln(a.out, "Invalid Move! Please enter a valid move!")
			continue
		}
		return moves[option], metrics.SearchMetric{}
	}
}
