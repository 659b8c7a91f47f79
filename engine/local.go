package engine

import (
	"cardagent/game"
	"cardagent/searcher/agent"

	"github.com/rs/zerolog/log"
)

// LocalEngine runs a game between in-process agents, one per seat.
type LocalEngine struct {
	State  *game.GameState
	Agents []agent.Agent
}

func NewLocalEngine(state *game.GameState, agents []agent.Agent) *LocalEngine {
	if len(agents) != state.NumActors {
		panic("number of agents does not match number of actors")
	}
	return &LocalEngine{State: state, Agents: agents}
}

func (e *LocalEngine) Run() ([]game.Actor, []MoveMetric) {
	log.Info().Msgf("starting a %d-actor game", e.State.NumActors)

	moves := []MoveMetric{}
	for step := 1; !e.State.IsTerminal() && step <= MaxMoves; step++ {
		actor := e.State.CurrentActor()
		move, metric := e.Agents[actor].FindMove(e.State)
		e.State = e.State.Play(move).(*game.GameState)

		moves = append(moves, MoveMetric{
			Step:           step,
			Actor:          actor,
			Move:           move,
			DecisionMetric: metric,
		})
	}

	winners := e.State.Winners()
	log.Info().Msgf("game over after %d moves: winners=%v scores=%v puddings=%v",
		len(moves), winners, e.State.Scores, e.State.Puddings)
	return winners, moves
}
