package engine

import (
	"cardagent/game"
	"cardagent/searcher"
)

// MaxMoves caps runaway games.
const MaxMoves = 10000

type Engine interface {
	// Run plays a game to the end and reports the winners and per-move
	// decision metrics.
	Run() (winners []game.Actor, moves []MoveMetric)
}

type MoveMetric struct {
	Step  int
	Actor game.Actor
	Move  game.Move
	searcher.DecisionMetric
}
