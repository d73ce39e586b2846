package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/10varun17/hex-a-pawn/config"
	"github.com/10varun17/hex-a-pawn/engine"
	"github.com/10varun17/hex-a-pawn/experiments"
	"github.com/10varun17/hex-a-pawn/game"
	"github.com/10varun17/hex-a-pawn/hexapawn"
	"github.com/10varun17/hex-a-pawn/searcher"
	"github.com/10varun17/hex-a-pawn/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a config file (yaml, json or toml)")
	mode := flag.String("mode", "experiment", "One of experiment, baseline or play")
	color := flag.String("color", "white", "Color of the human player in play mode")
	first := flag.String("first", "white", "Color moving first in play mode")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	switch *mode {
	case "experiment":
		runExperiment(cfg, experiments.RunDepthExperiment)
	case "baseline":
		runExperiment(cfg, experiments.RunBaselineExperiment)
	case "play":
		if err := play(cfg, *color, *first); err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func runExperiment(cfg *config.Config, run func(*config.Config) ([]experiments.MatchupResult, error)) {
	results, err := run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	experiments.Report(os.Stdout, results)
}

// play runs one game between a human on stdin/stdout and a tree agent.
func play(cfg *config.Config, humanColor, firstColor string) error {
	human, ok := game.ParseColor(humanColor)
	if !ok {
		return fmt.Errorf("unknown color %q", humanColor)
	}
	starting, ok := game.ParseColor(firstColor)
	if !ok {
		return fmt.Errorf("unknown color %q", firstColor)
	}

	you := engine.Player{Name: "You", Color: human, Agent: agent.NewHumanAgent(os.Stdin, os.Stdout)}
	computer := engine.Player{
		Name:  fmt.Sprintf("DepthLimit%d", cfg.PlayDepth),
		Color: human.Opponent(),
		Agent: agent.NewTreeAgent(searcher.NewSearcher(cfg.PlayDepth, searcher.WithMetrics()), nil),
	}

	players := []engine.Player{you, computer}
	if computer.Color == starting {
		players[0], players[1] = players[1], players[0]
	}

	e := engine.LocalEngine(hexapawn.NewBoard(cfg.Rows, cfg.Cols), players[0], players[1])
	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Println(e.Board())
	fmt.Printf("%s won after %d moves!\n", winner.Name, gameMetric.TotalMoves)
	return nil
}
