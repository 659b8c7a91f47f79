package main

import (
	"fmt"
	"os"
	"time"

	"cardagent/engine"
	"cardagent/experiments"
	"cardagent/experiments/metrics"
	"cardagent/game"
	"cardagent/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var (
	flagActors  int
	flagBudget  time.Duration
	flagSeed    uint64
	flagOracle  bool
	flagVerbose bool
	flagConfig  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cardagent",
		Short: "A budgeted MCTS agent for open-hand card games",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if flagVerbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log every decision")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 1, "base random seed")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game between search agents and print the result",
		Run:   runPlay,
	}
	playCmd.Flags().IntVar(&flagActors, "actors", 3, "number of seats (2-5)")
	playCmd.Flags().DurationVar(&flagBudget, "budget", 500*time.Millisecond, "time budget per decision")
	playCmd.Flags().BoolVar(&flagOracle, "oracle", true, "give seat 0 the dominance oracle")

	experimentCmd := &cobra.Command{
		Use:   "experiment [oracle|budget]",
		Short: "Run a named experiment, or one described by --config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExperiment,
	}
	experimentCmd.Flags().StringVar(&flagConfig, "config", "", "YAML file seating agents at one table")

	rootCmd.AddCommand(playCmd, experimentCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	agents := make([]agent.Agent, flagActors)
	for i := range agents {
		config := metrics.AgentConfig{Duration: flagBudget, Oracle: flagOracle && i == 0}
		agents[i] = experiments.BuildAgent(config, flagSeed+uint64(i))
	}

	rng := rand.New(rand.NewSource(flagSeed))
	e := engine.NewLocalEngine(game.NewGameState(flagActors, rng), agents)
	winners, moves := e.Run()

	fmt.Printf("winners: %v after %d moves\n", winners, len(moves))
	for i := 0; i < flagActors; i++ {
		fmt.Printf("seat %d: %d points, %d puddings\n", i, e.State.Scores[i], e.State.Puddings[i])
	}
}

func runExperiment(cmd *cobra.Command, args []string) error {
	if flagConfig != "" {
		name := "config"
		if len(args) > 0 {
			name = args[0]
		}
		return experiments.RunConfigExperiment(name, flagConfig)
	}

	if len(args) == 0 {
		return fmt.Errorf("name an experiment or pass --config")
	}
	switch args[0] {
	case "oracle":
		experiments.RunOracleExperiment()
	case "budget":
		experiments.RunBudgetExperiment()
	default:
		return fmt.Errorf("unknown experiment %q", args[0])
	}
	return nil
}
