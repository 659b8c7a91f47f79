package agent

import (
	"cardagent/game"
	"cardagent/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns a move for the state's current actor, plus decision
	// metrics when the agent collects them.
	FindMove(state game.State) (game.Move, searcher.DecisionMetric)
}

type searchAgent struct {
	mcts *searcher.MCTS
}

// NewSearchAgent wraps a searcher for game play.
func NewSearchAgent(mcts *searcher.MCTS) Agent {
	return searchAgent{mcts: mcts}
}

func (a searchAgent) FindMove(state game.State) (game.Move, searcher.DecisionMetric) {
	move := a.mcts.FindMove(state, state.LegalMoves())
	return move, a.mcts.LastDecision()
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent plays uniformly random legal moves; the baseline opponent
// for experiments.
func NewRandomAgent(seed uint64) Agent {
	return randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a randomAgent) FindMove(state game.State) (game.Move, searcher.DecisionMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves to choose from")
	}
	return moves[a.rng.Intn(len(moves))], searcher.DecisionMetric{}
}
