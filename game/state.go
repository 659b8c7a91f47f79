package game

import (
	"cardagent/utils"

	"golang.org/x/exp/rand"
)

// Rounds is the number of drafting rounds per game.
const Rounds = 3

// GameState is a sequential open-hand variant of the Sushi Go drafting game:
// actors pick from their own hand in seat order, hands rotate one seat to the
// left after every actor has picked, and a round ends when the hands run out.
type GameState struct {
	NumActors int
	Hands     [][]Card
	Tableaus  [][]Card // picked cards in play order (order matters for wasabi)
	Scores    []int    // banked scores of completed rounds
	Puddings  []int    // puddings accumulated across rounds
	Round     int      // 1..Rounds, Rounds+1 once the game is over
	Turn      Actor
	deck      []Card // undealt cards, shuffled once at game start
}

// NewGameState deals a fresh game for 2 to 5 actors. All shuffling happens
// here; the state itself is deterministic afterwards.
func NewGameState(actors int, rng *rand.Rand) *GameState {
	if actors < 2 || actors > 5 {
		panic("sushi go needs 2 to 5 actors")
	}

	deck := newDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	gs := &GameState{
		NumActors: actors,
		Hands:     make([][]Card, actors),
		Tableaus:  make([][]Card, actors),
		Scores:    make([]int, actors),
		Puddings:  make([]int, actors),
		Round:     1,
		deck:      deck,
	}
	gs.deal()
	return gs
}

func (gs *GameState) deal() {
	size := handSize[gs.NumActors]
	for i := 0; i < gs.NumActors; i++ {
		gs.Hands[i] = append([]Card{}, gs.deck[:size]...)
		gs.deck = gs.deck[size:]
		gs.Tableaus[i] = []Card{}
	}
}

func (gs *GameState) Copy() State {
	hands := make([][]Card, gs.NumActors)
	tableaus := make([][]Card, gs.NumActors)
	for i := 0; i < gs.NumActors; i++ {
		hands[i] = append([]Card{}, gs.Hands[i]...)
		tableaus[i] = append([]Card{}, gs.Tableaus[i]...)
	}

	return &GameState{
		NumActors: gs.NumActors,
		Hands:     hands,
		Tableaus:  tableaus,
		Scores:    append([]int{}, gs.Scores...),
		Puddings:  append([]int{}, gs.Puddings...),
		Round:     gs.Round,
		Turn:      gs.Turn,
		deck:      append([]Card{}, gs.deck...),
	}
}

func (gs *GameState) CurrentActor() Actor { return gs.Turn }

func (gs *GameState) IsTerminal() bool { return gs.Round > Rounds }

func (gs *GameState) LegalMoves() []Move {
	if gs.IsTerminal() {
		return nil
	}

	hand := gs.Hands[gs.Turn]
	moves := []Move{}
	seen := map[CardType]bool{}
	for _, card := range hand {
		if seen[card.Type] {
			continue
		}
		seen[card.Type] = true
		moves = append(moves, Pick{Card: card})
	}

	if gs.hasChopsticks(gs.Turn) && len(hand) >= 2 {
		moves = append(moves, gs.pairMoves(hand)...)
	}
	return moves
}

// pairMoves enumerates the distinct unordered card type pairs of a hand,
// canonicalized so that no pair appears twice.
func (gs *GameState) pairMoves(hand []Card) []Move {
	moves := []Move{}
	seen := map[[2]CardType]bool{}
	for i := 0; i < len(hand); i++ {
		for j := i + 1; j < len(hand); j++ {
			first, second := hand[i], hand[j]
			if second.Type < first.Type {
				first, second = second, first
			}
			key := [2]CardType{first.Type, second.Type}
			if seen[key] {
				continue
			}
			seen[key] = true
			moves = append(moves, PickTwo{First: first, Second: second})
		}
	}
	return moves
}

func (gs *GameState) hasChopsticks(a Actor) bool {
	for _, card := range gs.Tableaus[a] {
		if card.Type == Chopsticks {
			return true
		}
	}
	return false
}

func (gs *GameState) Play(move Move) State {
	next := gs.Copy().(*GameState)
	actor := next.Turn

	switch m := move.(type) {
	case Pick:
		next.place(actor, m.Card)
	case PickTwo:
		next.place(actor, m.First)
		next.place(actor, m.Second)
		next.spendChopsticks(actor)
	default:
		panic("unknown move kind")
	}

	next.advance()
	return next
}

// place moves a card from an actor's hand into their tableau.
func (next *GameState) place(a Actor, card Card) {
	i := utils.FindIndex(next.Hands[a], card)
	if i < 0 {
		panic("move plays a card not in hand")
	}
	next.Hands[a] = append(next.Hands[a][:i], next.Hands[a][i+1:]...)
	next.Tableaus[a] = append(next.Tableaus[a], card)
	if card.Type == Pudding {
		next.Puddings[a]++
	}
}

// spendChopsticks returns the chopsticks card from the tableau to the hand,
// so it keeps circulating with the passed hand.
func (next *GameState) spendChopsticks(a Actor) {
	i := utils.FindIndex(next.Tableaus[a], Card{Type: Chopsticks})
	if i < 0 {
		panic("chopsticks move without chopsticks in tableau")
	}
	next.Tableaus[a] = append(next.Tableaus[a][:i], next.Tableaus[a][i+1:]...)
	next.Hands[a] = append(next.Hands[a], Card{Type: Chopsticks})
}

func (next *GameState) advance() {
	next.Turn++
	if int(next.Turn) < next.NumActors {
		return
	}
	next.Turn = 0

	// Full table cycle: everyone passes their hand one seat to the left.
	rotated := make([][]Card, next.NumActors)
	for i := 0; i < next.NumActors; i++ {
		rotated[i] = next.Hands[(i+1)%next.NumActors]
	}
	next.Hands = rotated

	for _, hand := range next.Hands {
		if len(hand) > 0 {
			return
		}
	}

	next.scoreRound()
	next.Round++
	if next.Round <= Rounds {
		next.deal()
	} else {
		next.scorePuddings()
	}
}

func (next *GameState) scoreRound() {
	for i := 0; i < next.NumActors; i++ {
		next.Scores[i] += scoreTableau(next.Tableaus[i])
	}

	icons := make([]int, next.NumActors)
	for i := 0; i < next.NumActors; i++ {
		icons[i] = next.MakiIcons(Actor(i))
	}
	for i, bonus := range makiBonuses(icons) {
		next.Scores[i] += bonus
	}
}

func (next *GameState) scorePuddings() {
	most, fewest := next.Puddings[0], next.Puddings[0]
	for _, n := range next.Puddings {
		most = max(most, n)
		fewest = min(fewest, n)
	}
	if most == fewest { // Everyone tied: split the prize, no penalty
		for i := range next.Scores {
			next.Scores[i] += 6 / next.NumActors
		}
		return
	}

	winners, losers := 0, 0
	for _, n := range next.Puddings {
		if n == most {
			winners++
		}
		if n == fewest {
			losers++
		}
	}
	for i, n := range next.Puddings {
		if n == most {
			next.Scores[i] += 6 / winners
		}
		// Two-player games skip the pudding penalty
		if n == fewest && next.NumActors > 2 {
			next.Scores[i] -= 6 / losers
		}
	}
}

// scoreTableau scores one actor's round tableau, excluding maki (scored as a
// table-wide race) and puddings (scored at game end).
func scoreTableau(tableau []Card) int {
	tempura, sashimi, dumplings, wasabi := 0, 0, 0, 0
	score := 0
	for _, c := range tableau {
		switch {
		case c.Type == Tempura:
			tempura++
		case c.Type == Sashimi:
			sashimi++
		case c.Type == Dumpling:
			dumplings++
		case c.Type == Wasabi:
			wasabi++
		case c.IsNigiri():
			value := c.NigiriValue()
			if wasabi > 0 {
				value *= 3
				wasabi--
			}
			score += value
		}
	}
	score += 5 * (tempura / 2)
	score += 10 * (sashimi / 3)
	score += dumplingScore(dumplings)
	return score
}

func dumplingScore(n int) int {
	values := []int{0, 1, 3, 6, 10, 15}
	if n >= len(values) {
		n = len(values) - 1
	}
	return values[n]
}

// makiBonuses awards 6 for the most maki icons and 3 for the second most,
// split among ties; a tie for first leaves no second prize.
func makiBonuses(icons []int) []int {
	bonuses := make([]int, len(icons))

	first, second := 0, 0
	for _, n := range icons {
		if n > first {
			first, second = n, first
		} else if n > second {
			second = n
		}
	}
	if first == 0 {
		return bonuses
	}

	firsts, seconds := 0, 0
	for _, n := range icons {
		if n == first {
			firsts++
		} else if n == second {
			seconds++
		}
	}
	for i, n := range icons {
		if n == first {
			bonuses[i] = 6 / firsts
		} else if n == second && firsts == 1 && second > 0 {
			bonuses[i] = 3 / seconds
		}
	}
	return bonuses
}

// MakiIcons is the actor's maki icon count in the current round's tableau.
func (gs *GameState) MakiIcons(a Actor) int {
	icons := 0
	for _, c := range gs.Tableaus[a] {
		icons += c.MakiIcons()
	}
	return icons
}

// CountInTableau counts cards of one type in an actor's current tableau.
func (gs *GameState) CountInTableau(a Actor, t CardType) int {
	count := 0
	for _, c := range gs.Tableaus[a] {
		if c.Type == t {
			count++
		}
	}
	return count
}

// UnusedWasabi counts wasabi cards not yet paired with a nigiri.
func (gs *GameState) UnusedWasabi(a Actor) int {
	wasabi := 0
	for _, c := range gs.Tableaus[a] {
		switch {
		case c.Type == Wasabi:
			wasabi++
		case c.IsNigiri() && wasabi > 0:
			wasabi--
		}
	}
	return wasabi
}

// Circulating returns every card still in a hand, i.e. the cards any actor
// may yet draft this round. Hands are open so this is public knowledge.
func (gs *GameState) Circulating() []Card {
	cards := []Card{}
	for _, hand := range gs.Hands {
		cards = append(cards, hand...)
	}
	return cards
}

// ProvisionalScore is the banked score plus the current tableau's set value,
// before maki bonuses and puddings.
func (gs *GameState) ProvisionalScore(a Actor) int {
	return gs.Scores[a] + scoreTableau(gs.Tableaus[a])
}

// Winners returns the actors sharing the best (score, puddings) outcome.
// Puddings break score ties, per the printed rules.
func (gs *GameState) Winners() []Actor {
	winners := []Actor{}
	bestScore, bestPuddings := 0, 0
	for i := 0; i < gs.NumActors; i++ {
		score, puddings := gs.Scores[i], gs.Puddings[i]
		switch {
		case len(winners) == 0 || score > bestScore || (score == bestScore && puddings > bestPuddings):
			winners = []Actor{Actor(i)}
			bestScore, bestPuddings = score, puddings
		case score == bestScore && puddings == bestPuddings:
			winners = append(winners, Actor(i))
		}
	}
	return winners
}

func (gs *GameState) TerminalResult(a Actor) float64 {
	winners := gs.Winners()
	for _, w := range winners {
		if w == a {
			if len(winners) == 1 {
				return 1
			}
			return 0
		}
	}
	return -1
}
