package experiments

import (
	"fmt"
	"time"

	"cardagent/engine"
	"cardagent/experiments/metrics"
	"cardagent/game"
	"cardagent/searcher"
	"cardagent/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	NumGames   = 30 // Per table
	TimeBudget = 50 * time.Millisecond
)

// RunOracleExperiment measures what dominance pruning is worth: a pruning
// agent against two identically budgeted agents without an oracle.
func RunOracleExperiment() {
	configs := []metrics.AgentConfig{
		{ID: 1, Duration: TimeBudget, Oracle: true, Seed: 1},
		{ID: 2, Duration: TimeBudget, Seed: 2},
		{ID: 3, Duration: TimeBudget, Seed: 3},
	}

	runExperiment("oracle", configs, [][]metrics.AgentConfig{configs})
}

// RunBudgetExperiment compares the three budget modes at roughly equal
// computational cost, each seated against a random baseline.
func RunBudgetExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 10}
	budgeted := []metrics.AgentConfig{
		{ID: 1, Duration: TimeBudget, Seed: 11},
		{ID: 2, Iterations: 500, Seed: 12},
		{ID: 3, CallBudget: 10000, Seed: 13},
	}

	tables := [][]metrics.AgentConfig{}
	for _, config := range budgeted {
		tables = append(tables, []metrics.AgentConfig{config, baseline, baseline})
	}

	runExperiment("budget", append(budgeted, baseline), tables)
}

// RunConfigExperiment seats the agents described in a YAML file at one table.
func RunConfigExperiment(name, path string) error {
	configs, err := metrics.LoadAgentConfigs(path)
	if err != nil {
		return err
	}
	runExperiment(name, configs, [][]metrics.AgentConfig{configs})
	return nil
}

func runExperiment(name string, configs []metrics.AgentConfig, tables [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ti, table := range tables {
		log.Info().Msgf("starting table %d of %d with agents %+v...", ti+1, len(tables), table)

		for i := 0; i < NumGames; i++ {
			count++
			gameRecord, moves := runGame(count, table)
			gameRecords = append(gameRecords, gameRecord)
			moveRecords = append(moveRecords, moves...)

			log.Info().Msgf("completed table %d of %d game %d of %d with winners %v",
				ti+1, len(tables), i+1, NumGames, gameRecord.Winners)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to store game records: %v", err))
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to store move records: %v", err))
	}
	log.Info().Msg("stored experiment records")
}

func runGame(id int, table []metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord) {
	agents := make([]agent.Agent, len(table))
	agentIDs := make([]int, len(table))
	for i, config := range table {
		// Offset per-game so repeated games are not replays
		agents[i] = BuildAgent(config, config.Seed+uint64(id))
		agentIDs[i] = config.ID
	}

	rng := rand.New(rand.NewSource(uint64(id)))
	state := game.NewGameState(len(table), rng)
	e := engine.NewLocalEngine(state, agents)

	start := time.Now()
	winners, moves := e.Run()

	record := metrics.GameRecord{
		ID:        id,
		Agents:    agentIDs,
		Winners:   actorsToInts(winners),
		Scores:    append([]int{}, e.State.Scores...),
		StartTime: start,
		Duration:  time.Since(start),
		Moves:     len(moves),
	}

	moveRecords := make([]metrics.MoveRecord, len(moves))
	for i, m := range moves {
		moveRecords[i] = metrics.MoveRecord{Game: id, MoveMetric: m}
	}
	return record, moveRecords
}

// BuildAgent turns an AgentConfig into a playable agent.
func BuildAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Kind == "random" {
		return agent.NewRandomAgent(seed)
	}

	options := []searcher.Option{
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
		searcher.WithEvaluationFn(game.EvaluateLead),
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	if config.CallBudget > 0 {
		options = append(options, searcher.WithCallBudget(config.CallBudget))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}
	if config.RolloutLength > 0 {
		options = append(options, searcher.WithRolloutLength(config.RolloutLength))
	}
	if config.Oracle {
		options = append(options, searcher.WithOracle(game.CardOracle{}))
	}
	return agent.NewSearchAgent(searcher.NewMCTS(options...))
}

func actorsToInts(actors []game.Actor) []int {
	ints := make([]int, len(actors))
	for i, a := range actors {
		ints[i] = int(a)
	}
	return ints
}
