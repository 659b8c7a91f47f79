package metrics

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type experimentConfig struct {
	Agents []AgentConfig `yaml:"agents"`
}

// UnmarshalYAML accepts durations in time.ParseDuration notation ("100ms"),
// which the yaml decoder would otherwise reject as a malformed integer.
func (c *AgentConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		ID            int     `yaml:"id"`
		Kind          string  `yaml:"kind"`
		Duration      string  `yaml:"duration"`
		Iterations    int     `yaml:"iterations"`
		CallBudget    int     `yaml:"call_budget"`
		Exploration   float64 `yaml:"exploration"`
		MaxDepth      int     `yaml:"max_depth"`
		RolloutLength int     `yaml:"rollout_length"`
		Oracle        bool    `yaml:"oracle"`
		Seed          uint64  `yaml:"seed"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	*c = AgentConfig{
		ID:            raw.ID,
		Kind:          raw.Kind,
		Iterations:    raw.Iterations,
		CallBudget:    raw.CallBudget,
		Exploration:   raw.Exploration,
		MaxDepth:      raw.MaxDepth,
		RolloutLength: raw.RolloutLength,
		Oracle:        raw.Oracle,
		Seed:          raw.Seed,
	}
	if raw.Duration != "" {
		duration, err := time.ParseDuration(raw.Duration)
		if err != nil {
			return fmt.Errorf("failed to parse agent %d duration: %w", raw.ID, err)
		}
		c.Duration = duration
	}
	return nil
}

// LoadAgentConfigs reads one experiment table (one agent per seat, in seat
// order) from a YAML file.
func LoadAgentConfigs(path string) ([]AgentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config experimentConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if len(config.Agents) < 2 || len(config.Agents) > 5 {
		return nil, fmt.Errorf("config needs 2 to 5 agents, got %d", len(config.Agents))
	}
	return config.Agents, nil
}
