package experiments

import (
	"fmt"
	"io"
	"time"

	"github.com/10varun17/hex-a-pawn/config"
	"github.com/10varun17/hex-a-pawn/engine"
	"github.com/10varun17/hex-a-pawn/experiments/metrics"
	"github.com/10varun17/hex-a-pawn/game"
	"github.com/10varun17/hex-a-pawn/hexapawn"
	"github.com/10varun17/hex-a-pawn/searcher"
	"github.com/10varun17/hex-a-pawn/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Matchup pairs two agents; First moves first in every game.
type Matchup struct {
	First  metrics.AgentConfig
	Second metrics.AgentConfig
}

type MatchupResult struct {
	Matchup
	Games int
	Wins  map[string]int // Agent name -> games won
}

type gameResult struct {
	winner      string
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
}

// RunDepthExperiment pits a deep searching agent against a shallow one, once
// with the deep agent moving first and once with the shallow agent moving first.
func RunDepthExperiment(cfg *config.Config) ([]MatchupResult, error) {
	strong := metrics.AgentConfig{ID: 1, Name: depthName(cfg.StrongDepth), Color: game.White.String(), Depth: cfg.StrongDepth}
	weak := metrics.AgentConfig{ID: 2, Name: depthName(cfg.WeakDepth), Color: game.Black.String(), Depth: cfg.WeakDepth}
	if strong.Name == weak.Name {
		strong.Name += "-" + strong.Color
		weak.Name += "-" + weak.Color
	}

	matchUps := []Matchup{
		{First: strong, Second: weak},
		{First: weak, Second: strong},
	}
	return runExperiment("depth", cfg, []metrics.AgentConfig{strong, weak}, matchUps)
}

// RunBaselineExperiment pits the deep searching agent against an agent playing
// uniformly random legal moves.
func RunBaselineExperiment(cfg *config.Config) ([]MatchupResult, error) {
	strong := metrics.AgentConfig{ID: 1, Name: depthName(cfg.StrongDepth), Color: game.White.String(), Depth: cfg.StrongDepth}
	baseline := metrics.AgentConfig{ID: 3, Name: "Random", Color: game.Black.String()}

	matchUps := []Matchup{
		{First: strong, Second: baseline},
		{First: baseline, Second: strong},
	}
	return runExperiment("baseline", cfg, []metrics.AgentConfig{strong, baseline}, matchUps)
}

func depthName(depth int) string {
	return fmt.Sprintf("DepthLimit%d", depth)
}

func runExperiment(name string, cfg *config.Config, configs []metrics.AgentConfig, matchUps []Matchup) ([]MatchupResult, error) {
	count := 0
	results := []MatchupResult{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	start := time.Now()

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d: %s moves first against %s...", mi+1, len(matchUps), matchUp.First.Name, matchUp.Second.Name)

		games, err := runGames(cfg, matchUp)
		if err != nil {
			return nil, fmt.Errorf("matchup %d: %w", mi+1, err)
		}

		result := MatchupResult{
			Matchup: matchUp,
			Games:   len(games),
			Wins:    map[string]int{matchUp.First.Name: 0, matchUp.Second.Name: 0},
		}
		for _, g := range games {
			result.Wins[g.winner]++
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     matchUp.First.ID,
				Agent2:     matchUp.Second.ID,
				GameMetric: g.gameMetric,
			})
			for _, mm := range g.moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}
		results = append(results, result)

		log.Info().
			Int("matchup", mi+1).
			Int(matchUp.First.Name, result.Wins[matchUp.First.Name]).
			Int(matchUp.Second.Name, result.Wins[matchUp.Second.Name]).
			Msg("completed matchup")
	}

	log.Info().Dur("duration", time.Since(start)).Msgf("completed %s experiment", name)

	// Store experiment records
	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSetup(metrics.Setup{
		Name:      name,
		Agents:    configs,
		Matchups:  matchupIDs(matchUps),
		Games:     cfg.Games,
		Board:     fmt.Sprintf("%dx%d", cfg.Rows, cfg.Cols),
		StartTime: start,
		EndTime:   time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to store setup: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return results, nil
}

func matchupIDs(matchUps []Matchup) [][]int {
	ids := make([][]int, len(matchUps))
	for i, m := range matchUps {
		ids[i] = []int{m.First.ID, m.Second.ID}
	}
	return ids
}

// runGames plays cfg.Games independent games, at most cfg.Goroutines at a time.
// Results keep the order of the games.
func runGames(cfg *config.Config, matchUp Matchup) ([]gameResult, error) {
	results := make([]gameResult, cfg.Games)

	var g errgroup.Group
	g.SetLimit(cfg.Goroutines)
	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			result, err := runGame(cfg, matchUp)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(cfg *config.Config, matchUp Matchup) (gameResult, error) {
	first, err := newPlayer(matchUp.First)
	if err != nil {
		return gameResult{}, err
	}
	second, err := newPlayer(matchUp.Second)
	if err != nil {
		return gameResult{}, err
	}

	e := engine.LocalEngine(hexapawn.NewBoard(cfg.Rows, cfg.Cols), first, second)
	winner, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return gameResult{}, err
	}
	return gameResult{winner: winner.Name, gameMetric: gameMetric, moveMetrics: moveMetrics}, nil
}

func newPlayer(agentConfig metrics.AgentConfig) (engine.Player, error) {
	color, ok := game.ParseColor(agentConfig.Color)
	if !ok {
		return engine.Player{}, fmt.Errorf("agent %s has unknown color %q", agentConfig.Name, agentConfig.Color)
	}
	return engine.Player{Name: agentConfig.Name, Color: color, Agent: newAgent(agentConfig)}, nil
}

// newAgent builds a fresh agent per game so games never share searchers or random sources.
func newAgent(agentConfig metrics.AgentConfig) agent.Agent {
	if agentConfig.Depth == 0 {
		return agent.NewRandomAgent(nil)
	}
	return agent.NewTreeAgent(searcher.NewSearcher(agentConfig.Depth, searcher.WithMetrics()), nil)
}

// Report prints the win counts of every matchup.
func Report(w io.Writer, results []MatchupResult) {
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Win counts when %s plays first (%d games):\n", result.First.Name, result.Games)
		names := []string{result.First.Name, result.Second.Name}
		slices.SortStableFunc(names, func(a, b string) int {
			return result.Wins[b] - result.Wins[a]
		})
		for _, name := range names {
			fmt.Fprintf(w, "%s win count: %d\n", name, result.Wins[name])
		}
	}
}
