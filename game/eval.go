package game

import "math"

// Weights for points that are likely but not yet banked.
const (
	singleTempuraValue = 2.5
	singleSashimiValue = 10.0 / 3.0
	doubleSashimiValue = 20.0 / 3.0
	wasabiSquidValue   = 6.0
	wasabiSalmonValue  = 4.0
	wasabiEggValue     = 2.0
	winningMakiValue   = 6
	runnerupMakiValue  = 3
	mostPuddingsValue  = 6
	leastPuddingsValue = -6
	modifierFactor     = 0.21
)

// EvaluateLead scores how far ahead of the best other actor the given actor
// is. Banked and tableau points count in full; unfinished sets (unpaired
// tempura, partial sashimi, unused wasabi, the maki and pudding races) count
// at a discount, gated on the needed cards still circulating.
func EvaluateLead(s State, a Actor) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		return EvaluateResult(s, a)
	}
	if gs.IsTerminal() {
		return gs.TerminalResult(a)
	}

	modifiers := roundModifiers(gs)

	mine := modifiedScore(gs, a, modifiers)
	bestOther := math.Inf(-1)
	maxScore := mine
	for i := 0; i < gs.NumActors; i++ {
		if Actor(i) == a {
			continue
		}
		score := modifiedScore(gs, Actor(i), modifiers)
		bestOther = math.Max(bestOther, score)
		maxScore = math.Max(maxScore, score)
	}

	// Dividing by the table-best score rewards bigger leads while keeping
	// the value relative to the current board.
	return (mine - bestOther) / math.Max(maxScore, 1)
}

func modifiedScore(gs *GameState, a Actor, modifiers []float64) float64 {
	return float64(gs.ProvisionalScore(a)) + modifierFactor*modifiers[a]
}

func roundModifiers(gs *GameState) []float64 {
	modifiers := make([]float64, gs.NumActors)
	circulating := gs.Circulating()

	for i := 0; i < gs.NumActors; i++ {
		a := Actor(i)
		hand := gs.Hands[a]

		// Unpaired tempura: worthless once no pair card remains, and not
		// worth a bonus when the pair card is already in this actor's hand.
		if gs.CountInTableau(a, Tempura)%2 == 1 {
			if !contains(hand, Tempura) && contains(circulating, Tempura) {
				modifiers[a] += singleTempuraValue
			}
		}

		switch gs.CountInTableau(a, Sashimi) % 3 {
		case 1:
			if countType(circulating, Sashimi) > 2 {
				modifiers[a] += singleSashimiValue
			}
		case 2:
			if !contains(hand, Sashimi) && contains(circulating, Sashimi) {
				modifiers[a] += doubleSashimiValue
			}
		}

		// Unused wasabi is worth the best nigiri still reachable. A nigiri
		// already in hand needs no credit, it will score on its own turn.
		if gs.UnusedWasabi(a) > 0 {
			switch {
			case contains(hand, SquidNigiri):
			case contains(circulating, SquidNigiri):
				modifiers[a] += wasabiSquidValue
			case contains(hand, SalmonNigiri):
			case contains(circulating, SalmonNigiri):
				modifiers[a] += wasabiSalmonValue
			case contains(hand, EggNigiri):
			case contains(circulating, EggNigiri):
				modifiers[a] += wasabiEggValue
			}
		}

		// Chopsticks are worth one point per picking turn left this round,
		// minus the last turn where they cannot be used.
		if gs.CountInTableau(a, Chopsticks) > 0 {
			modifiers[a] += float64(len(hand) - 1)
		}

		// Dumplings are credited at the best plate size still reachable.
		if dumplings := gs.CountInTableau(a, Dumpling); dumplings > 0 && dumplings < 5 {
			total := dumplings + countType(circulating, Dumpling)
			if total > 5 {
				total = 5
			}
			modifiers[a] += float64(dumplings * (dumplingScore(total) - dumplingScore(dumplings)))
		}
	}

	addMakiRace(gs, modifiers)
	addPuddingRace(gs, modifiers)
	return modifiers
}

func addMakiRace(gs *GameState, modifiers []float64) {
	icons := make([]int, gs.NumActors)
	for i := range icons {
		icons[i] = gs.MakiIcons(Actor(i))
	}

	winning, runnerup := 0, 0
	for _, n := range icons {
		if n > winning {
			winning, runnerup = n, winning
		} else if n > runnerup && n < winning {
			runnerup = n
		}
	}

	winners, runners := 0, 0
	for _, n := range icons {
		if n == winning {
			winners++
		} else if n == runnerup {
			runners++
		}
	}

	for i, n := range icons {
		if n == winning && winning > 0 {
			modifiers[i] += float64(winningMakiValue / winners)
		} else if n == runnerup && runnerup > 0 {
			modifiers[i] += float64(runnerupMakiValue / runners)
		}
	}
}

func addPuddingRace(gs *GameState, modifiers []float64) {
	most, fewest := gs.Puddings[0], gs.Puddings[0]
	for _, n := range gs.Puddings {
		most = max(most, n)
		fewest = min(fewest, n)
	}

	winners, losers := 0, 0
	for _, n := range gs.Puddings {
		if n == most {
			winners++
		}
		if n == fewest {
			losers++
		}
	}

	for i, n := range gs.Puddings {
		if n == most && most > 0 {
			modifiers[i] += float64(mostPuddingsValue / winners)
		}
		if n == fewest {
			modifiers[i] += float64(leastPuddingsValue / losers)
		}
	}
}

func contains(cards []Card, t CardType) bool {
	return countType(cards, t) > 0
}

func countType(cards []Card, t CardType) int {
	count := 0
	for _, c := range cards {
		if c.Type == t {
			count++
		}
	}
	return count
}
