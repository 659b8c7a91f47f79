package game

// CardOracle marks picks that provably cannot gain the picking actor any
// points, given the cards still circulating in the open hands. It only
// understands single-card picks; other move kinds are left alone. Handing it
// a foreign state kind panics, which the searcher treats as "no verdict".
type CardOracle struct{}

func (CardOracle) IsNoGain(s State, m Move) bool {
	gs := s.(*GameState)
	pick, ok := m.(Pick)
	if !ok {
		return false
	}

	actor := gs.CurrentActor()
	circulating := gs.Circulating()

	switch pick.Card.Type {
	case MakiOne, MakiTwo, MakiThree:
		// Maki only score for the top two; chasing a lost race is wasted.
		return !canPlaceInMakiRace(gs, actor)

	case Wasabi:
		// Wasabi scores nothing unless a nigiri can still land on it.
		return !contains(circulating, EggNigiri) &&
			!contains(circulating, SalmonNigiri) &&
			!contains(circulating, SquidNigiri)

	case Tempura:
		// The last circulating tempura is dead weight unless someone holds
		// an unpaired one.
		if countType(circulating, Tempura) != 1 {
			return false
		}
		for i := 0; i < gs.NumActors; i++ {
			if gs.CountInTableau(Actor(i), Tempura)%2 == 1 {
				return false
			}
		}
		return true

	case Sashimi:
		remaining := countType(circulating, Sashimi)
		if remaining != 1 && remaining != 2 {
			return false
		}
		// With one or two sashimi left, pruning is safe only if no tableau
		// is close enough to complete a triple with them.
		for i := 0; i < gs.NumActors; i++ {
			partial := gs.CountInTableau(Actor(i), Sashimi) % 3
			if partial+remaining >= 3 {
				return false
			}
		}
		return true

	case Chopsticks:
		// Playing chopsticks from a two-card hand leaves no turn to use them.
		return len(gs.Hands[actor]) == 2
	}

	return false
}

// canPlaceInMakiRace reports whether the actor could still finish first or
// second in the maki race after taking every circulating maki icon.
func canPlaceInMakiRace(gs *GameState, a Actor) bool {
	available := 0
	for _, c := range gs.Circulating() {
		available += c.MakiIcons()
	}

	best := gs.MakiIcons(a) + available
	ahead := 0
	for i := 0; i < gs.NumActors; i++ {
		if Actor(i) != a && gs.MakiIcons(Actor(i)) > best {
			ahead++
		}
	}
	return ahead < 2
}
