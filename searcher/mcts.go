package searcher

import (
	"fmt"
	"math"
	"time"

	"cardagent/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Default hyperparameters
const (
	Exploration   = math.Sqrt2           // UCB exploration constant K
	Epsilon       = 1e-6                 // Tie-break noise amplitude, also guards division by zero
	MaxTreeDepth  = 25                   // Nodes at this depth are rollout-only leaves
	RolloutLength = 20                   // Max moves per rollout
	SafetyMargin  = 5 * time.Millisecond // Time-budget early-stop floor
)

type Option func(m *MCTS)

// MCTS chooses moves by budget-bounded Monte Carlo tree search with a
// paranoid UCB tree policy. One instance serves one agent; it is not safe
// for concurrent decisions.
type MCTS struct {
	exploration float64
	epsilon     float64
	maxDepth    int
	rolloutLen  int
	margin      time.Duration

	// Budget, exactly one mode set
	duration   time.Duration
	iterations int
	callBudget int

	evaluate game.Evaluate
	oracle   game.Oracle
	rng      *rand.Rand
	metrics  Collector

	// Per decision
	perspective game.Actor
	root        *node
	last        DecisionMetric
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithCallBudget stops the search once the forward-model call count exceeds
// the budget. Zero is a valid budget: the first iteration still runs.
func WithCallBudget(calls int) Option {
	return func(m *MCTS) {
		if calls >= 0 {
			m.callBudget = calls
		}
	}
}

func WithExploration(k float64) Option {
	return func(m *MCTS) {
		if k > 0 {
			m.exploration = k
		}
	}
}

func WithEpsilon(epsilon float64) Option {
	return func(m *MCTS) {
		if epsilon > 0 {
			m.epsilon = epsilon
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

func WithRolloutLength(length int) Option {
	return func(m *MCTS) {
		if length > 0 {
			m.rolloutLen = length
		}
	}
}

// WithSafetyMargin tunes the fixed floor of the time-budget early stop.
func WithSafetyMargin(margin time.Duration) Option {
	return func(m *MCTS) {
		if margin > 0 {
			m.margin = margin
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithOracle(oracle game.Oracle) Option {
	return func(m *MCTS) {
		m.oracle = oracle
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: Exploration,
		epsilon:     Epsilon,
		maxDepth:    MaxTreeDepth,
		rolloutLen:  RolloutLength,
		margin:      SafetyMargin,
		callBudget:  -1,
		evaluate:    game.EvaluateResult,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}

	budgets := 0
	if m.duration > 0 {
		budgets++
	}
	if m.iterations > 0 {
		budgets++
	}
	if m.callBudget >= 0 {
		budgets++
	}
	if budgets != 1 {
		panic("Must specify exactly one of search duration, iterations or call budget")
	}
	return m
}

// FindMove runs one budgeted search from the given state and returns the
// recommended move. The tree is private to the call and discarded with it.
func (m *MCTS) FindMove(state game.State, legal []game.Move) game.Move {
	if len(legal) == 0 {
		panic("no legal moves to choose from")
	}

	m.perspective = state.CurrentActor()
	tally := &advances{}
	m.root = newNode(nil, state.Copy(), tally)

	m.metrics.Start()
	iterations := m.search(tally)
	m.last = m.metrics.Complete(iterations, tally.calls)

	move := m.bestMove(m.root)
	log.Debug().
		Int("iterations", iterations).
		Int("calls", tally.calls).
		Msgf("actor %d decided on %v", m.perspective, move)
	return move
}

// LastDecision reports the metrics of the most recent FindMove, if the
// searcher was built WithMetrics.
func (m *MCTS) LastDecision() DecisionMetric { return m.last }

func (m *MCTS) search(tally *advances) int {
	start := time.Now()
	iterations := 0
	for {
		frontier := m.treePolicy()
		value := m.rollOut(frontier)
		frontier.backUp(value)
		iterations++

		if m.exhausted(start, iterations, tally) {
			return iterations
		}
	}
}

// exhausted applies the budget mode's stopping rule. It runs after each
// iteration, so at least one iteration always completes.
func (m *MCTS) exhausted(start time.Time, iterations int, tally *advances) bool {
	switch {
	case m.duration > 0:
		elapsed := time.Since(start)
		average := elapsed / time.Duration(iterations)
		remaining := m.duration - elapsed
		// Stop early rather than let a slow final iteration overrun the
		// deadline. The double-sided rule is tunable via WithSafetyMargin.
		return remaining <= m.margin || remaining <= 2*average
	case m.iterations > 0:
		return iterations >= m.iterations
	default:
		return tally.calls > m.callBudget
	}
}

// treePolicy descends from the root until it can expand, and expands at most
// once per iteration.
func (m *MCTS) treePolicy() *node {
	cur := m.root
	for !cur.state.IsTerminal() && cur.depth < m.maxDepth {
		if cur.hasPending() {
			return cur.expand(m.rng)
		}
		cur = m.selectChild(cur)
	}
	return cur
}

// rollOut plays uniformly random moves from a copy of the node's state until
// the game ends or the rollout length is hit, then evaluates the final state
// from the searching actor's perspective.
func (m *MCTS) rollOut(n *node) float64 {
	state := n.state.Copy()
	for depth := 0; depth < m.rolloutLen && !state.IsTerminal(); depth++ {
		moves := state.LegalMoves()
		state = state.Play(moves[m.rng.Intn(len(moves))])
		n.tally.calls++
	}
	if state.IsTerminal() {
		m.metrics.AddFullPlayout()
	}

	value := m.evaluate(state, m.perspective)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("evaluator returned a non-finite value: %v", value))
	}
	return value
}
