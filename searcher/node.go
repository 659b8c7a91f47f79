package searcher

import (
	"cardagent/game"

	"golang.org/x/exp/rand"
)

// advances counts forward-model calls (state advances) during one decision.
// Every node of a tree shares the root's instance; it is the budget signal
// for the call-budget stopping mode.
type advances struct {
	calls int
}

type edgeStatus int

const (
	pending edgeStatus = iota
	materialized
)

// edge is one move slot of a node. The slot set is fixed when the node is
// built; a slot only ever goes from pending to materialized.
type edge struct {
	move   game.Move
	status edgeStatus
	child  *node
}

type node struct {
	state  game.State
	parent *node
	tally  *advances
	depth  int
	edges  []edge
	visits int
	value  float64
}

// newNode wraps a state the caller hands over for exclusive ownership. The
// edge set is computed here, once, from the state's legal moves.
func newNode(parent *node, state game.State, tally *advances) *node {
	n := &node{
		state:  state,
		parent: parent,
		tally:  tally,
	}
	if parent != nil {
		n.depth = parent.depth + 1
	}

	moves := state.LegalMoves()
	n.edges = make([]edge, len(moves))
	for i, move := range moves {
		n.edges[i] = edge{move: move}
	}
	return n
}

func (n *node) hasPending() bool {
	for i := range n.edges {
		if n.edges[i].status == pending {
			return true
		}
	}
	return false
}

// expand materializes one pending edge chosen uniformly at random, so first
// visits carry no move-ordering bias. The move applied to the state copy is
// itself a copy; the one stored on the edge is never played.
func (n *node) expand(rng *rand.Rand) *node {
	open := []int{}
	for i := range n.edges {
		if n.edges[i].status == pending {
			open = append(open, i)
		}
	}
	if len(open) == 0 {
		panic("expand on a fully expanded node")
	}

	i := open[rng.Intn(len(open))]
	next := n.state.Copy().Play(n.edges[i].move.Copy())
	n.tally.calls++

	child := newNode(n, next, n.tally)
	n.edges[i].status = materialized
	n.edges[i].child = child
	return child
}

// backUp adds one rollout's value to every node from here to the root
// inclusive.
func (n *node) backUp(value float64) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		cur.value += value
	}
}
