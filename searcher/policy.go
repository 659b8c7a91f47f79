package searcher

import (
	"math"

	"cardagent/game"
)

// Dominated moves score below anything statistics can produce, but above the
// comparison floor: a node whose every move is dominated still yields one.
const dominatedScore = -math.MaxFloat64 + 1

// noise adds a pseudo-random offset bounded by epsilon to break exact ties.
func noise(value, epsilon, r float64) float64 {
	return value + epsilon*r
}

// selectChild picks the child with the best paranoid UCB score. Only valid
// on a node with no pending edges.
func (m *MCTS) selectChild(n *node) *node {
	best := -1
	bestScore := 0.0
	for i := range n.edges {
		e := &n.edges[i]
		if e.status != materialized {
			panic("selection over a node with pending moves")
		}

		score := m.scoreEdge(n, e)
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 {
		panic("selection over a node with no moves")
	}
	return n.edges[best].child
}

// scoreEdge is the tree policy's scoring rule: mean value signed by the
// paranoid assumption, plus the exploration term, plus tie-break noise,
// overridden by the dominance sentinel for pruned moves.
func (m *MCTS) scoreEdge(n *node, e *edge) float64 {
	if m.pruned(n.state, e.move) {
		return dominatedScore
	}

	c := e.child
	mean := c.value / (float64(c.visits) + m.epsilon)
	explore := m.exploration *
		math.Sqrt(math.Log(float64(n.visits)+1)/(float64(c.visits)+m.epsilon))

	// Every actor but the searching one is assumed to minimize our value.
	// The sign applies to the mean only: exploration biases toward more
	// information no matter whose turn it is.
	signed := mean
	if n.state.CurrentActor() != m.perspective {
		signed = -mean
	}

	return noise(signed+explore, m.epsilon, m.rng.Float64())
}

// pruned asks the oracle for a no-gain verdict. The oracle is a partial
// function over the game's move vocabulary: if it panics on a move kind it
// does not recognize, the move is treated as not dominated.
func (m *MCTS) pruned(s game.State, mv game.Move) (noGain bool) {
	if m.oracle == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			noGain = false
		}
	}()
	return m.oracle.IsNoGain(s, mv)
}

// bestMove is the final recommendation from the root: the robust child by
// visit count, ignoring mean value, with the same tie-break noise.
func (m *MCTS) bestMove(root *node) game.Move {
	var best game.Move
	bestValue := 0.0
	for i := range root.edges {
		e := &root.edges[i]
		if e.status != materialized {
			continue
		}

		v := noise(float64(e.child.visits), m.epsilon, m.rng.Float64())
		if best == nil || v > bestValue {
			best = e.move
			bestValue = v
		}
	}
	if best == nil {
		panic("no move recommended: root has no materialized children")
	}
	return best
}
