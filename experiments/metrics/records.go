package metrics

import (
	"time"

	"cardagent/engine"
)

// AgentConfig describes one agent seat in an experiment. Exactly one of
// Duration, Iterations or CallBudget should be set for search agents.
type AgentConfig struct {
	ID            int           `yaml:"id"`
	Kind          string        `yaml:"kind"` // "search" (default) or "random"
	Duration      time.Duration `yaml:"duration"`
	Iterations    int           `yaml:"iterations"`
	CallBudget    int           `yaml:"call_budget"`
	Exploration   float64       `yaml:"exploration"`
	MaxDepth      int           `yaml:"max_depth"`
	RolloutLength int           `yaml:"rollout_length"`
	Oracle        bool          `yaml:"oracle"`
	Seed          uint64        `yaml:"seed"`
}

type GameRecord struct {
	ID        int
	Agents    []int // AgentConfig.ID per seat
	Winners   []int // Winning seats
	Scores    []int
	StartTime time.Time
	Duration  time.Duration
	Moves     int
}

type MoveRecord struct {
	Game int // GameRecord.ID
	engine.MoveMetric
}
