package game

// Interfaces between the search engine and a concrete game. Any turn-based
// perfect-information game that implements State can be played by a searcher
// agent (i.e. searcher depends only on this file, the rest of the package is
// one such game).

// Actor identifies a seat at the table, 0-based in turn order.
type Actor int

// Move is one legal action at some state. Implementations must be comparable
// (moves key tree edges) and Copy must return a value that shares no mutable
// data with the receiver.
type Move interface {
	Copy() Move
}

// State is one position of the game. Play returns a successor and never
// mutates the receiver; the engine still copies before playing so that a
// node's state is aliased by nothing else.
type State interface {
	LegalMoves() []Move
	Play(Move) State
	IsTerminal() bool
	CurrentActor() Actor
	Copy() State
	// TerminalResult reports the outcome for an actor once IsTerminal is
	// true: +1 sole winner, 0 shared first place, -1 otherwise.
	TerminalResult(Actor) float64
}

// Evaluate scores a (possibly non-terminal) state from an actor's
// perspective. The result must be finite; the searcher treats NaN or Inf
// as a broken evaluator and panics.
type Evaluate func(State, Actor) float64

// Oracle marks moves that are provably not worth taking given public
// knowledge, whatever their statistics say. Absence of an oracle is
// equivalent to one that never prunes. An oracle that panics on a move kind
// it does not recognize is treated as declining to prune that move.
type Oracle interface {
	IsNoGain(State, Move) bool
}

// EvaluateResult is the fallback evaluator: the terminal result when the
// game is over, neutral otherwise.
func EvaluateResult(s State, a Actor) float64 {
	if s.IsTerminal() {
		return s.TerminalResult(a)
	}
	return 0
}
