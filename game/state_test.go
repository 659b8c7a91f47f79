package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/* spec:
- dealing: correct hand sizes per actor count, shuffled once, rounds redeal
- legal moves: one pick per distinct card type, chopsticks pairs, none when
  terminal
- play: hand -> tableau, pudding accounting, turn order, rotation after a
  full cycle, round scoring and redeal, pudding scoring at game end
- scoring: set values, maki race, pudding race, winners and tie-breaks
*/

func cards(types ...CardType) []Card {
	result := make([]Card, len(types))
	for i, t := range types {
		result[i] = Card{Type: t}
	}
	return result
}

// testState builds a mid-round state without dealing.
func testState(hands, tableaus [][]Card) *GameState {
	gs := &GameState{
		NumActors: len(hands),
		Hands:     hands,
		Tableaus:  tableaus,
		Scores:    make([]int, len(hands)),
		Puddings:  make([]int, len(hands)),
		Round:     1,
	}
	for i, tableau := range tableaus {
		gs.Puddings[i] = countType(tableau, Pudding)
	}
	return gs
}

func TestNewGameState(t *testing.T) {
	t.Run("deals the right hand size per actor count", func(t *testing.T) {
		for actors, size := range map[int]int{2: 10, 3: 9, 4: 8, 5: 7} {
			gs := NewGameState(actors, rand.New(rand.NewSource(1)))

			require.Len(t, gs.Hands, actors)
			for _, hand := range gs.Hands {
				require.Len(t, hand, size)
			}
			require.Len(t, gs.deck, 108-actors*size)
			require.Equal(t, 1, gs.Round)
			require.Equal(t, Actor(0), gs.CurrentActor())
			require.False(t, gs.IsTerminal())
		}
	})

	t.Run("rejects table sizes outside 2 to 5", func(t *testing.T) {
		require.Panics(t, func() { NewGameState(1, rand.New(rand.NewSource(1))) })
		require.Panics(t, func() { NewGameState(6, rand.New(rand.NewSource(1))) })
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("one pick per distinct card type", func(t *testing.T) {
		gs := testState(
			[][]Card{cards(Tempura, Tempura, Pudding), cards(Sashimi)},
			[][]Card{{}, {}},
		)

		moves := gs.LegalMoves()

		require.ElementsMatch(t, []Move{
			Pick{Card: Card{Type: Tempura}},
			Pick{Card: Card{Type: Pudding}},
		}, moves)
	})

	t.Run("chopsticks in the tableau unlock distinct pairs", func(t *testing.T) {
		gs := testState(
			[][]Card{cards(Tempura, Tempura, Pudding), cards(Sashimi)},
			[][]Card{cards(Chopsticks), {}},
		)

		moves := gs.LegalMoves()

		require.ElementsMatch(t, []Move{
			Pick{Card: Card{Type: Tempura}},
			Pick{Card: Card{Type: Pudding}},
			PickTwo{First: Card{Type: Tempura}, Second: Card{Type: Tempura}},
			PickTwo{First: Card{Type: Tempura}, Second: Card{Type: Pudding}},
		}, moves)
	})

	t.Run("no pairs from a one-card hand", func(t *testing.T) {
		gs := testState(
			[][]Card{cards(Tempura), cards(Sashimi)},
			[][]Card{cards(Chopsticks), {}},
		)

		require.ElementsMatch(t, []Move{Pick{Card: Card{Type: Tempura}}}, gs.LegalMoves())
	})

	t.Run("terminal states have no moves", func(t *testing.T) {
		gs := testState([][]Card{{}, {}}, [][]Card{{}, {}})
		gs.Round = Rounds + 1

		require.Nil(t, gs.LegalMoves())
	})
}

func TestPlay(t *testing.T) {
	t.Run("a pick moves the card from hand to tableau without touching the original", func(t *testing.T) {
		gs := testState(
			[][]Card{cards(Tempura, Pudding), cards(Sashimi, Sashimi)},
			[][]Card{{}, {}},
		)

		next := gs.Play(Pick{Card: Card{Type: Pudding}}).(*GameState)

		require.Equal(t, cards(Tempura), next.Hands[0])
		require.Equal(t, cards(Pudding), next.Tableaus[0])
		require.Equal(t, 1, next.Puddings[0])
		require.Equal(t, Actor(1), next.CurrentActor())

		require.Equal(t, cards(Tempura, Pudding), gs.Hands[0], "Play should not mutate the receiver")
		require.Equal(t, 0, gs.Puddings[0])
	})

	t.Run("hands rotate one seat left after a full cycle", func(t *testing.T) {
		gs := testState(
			[][]Card{cards(Tempura, Pudding), cards(Sashimi, Dumpling)},
			[][]Card{{}, {}},
		)

		next := gs.Play(Pick{Card: Card{Type: Tempura}}).(*GameState)
		next = next.Play(Pick{Card: Card{Type: Sashimi}}).(*GameState)

		require.Equal(t, Actor(0), next.CurrentActor())
		require.Equal(t, cards(Dumpling), next.Hands[0], "Seat 0 should now hold seat 1's leftover")
		require.Equal(t, cards(Pudding), next.Hands[1])
	})

	t.Run("chopsticks pick two and rejoin the passed hand", func(t *testing.T) {
		gs := testState(
			[][]Card{cards(Tempura, Tempura, Pudding), cards(Sashimi, Sashimi, Sashimi)},
			[][]Card{cards(Chopsticks), {}},
		)

		next := gs.Play(PickTwo{
			First:  Card{Type: Tempura},
			Second: Card{Type: Tempura},
		}).(*GameState)

		require.Equal(t, cards(Pudding, Chopsticks), next.Hands[0])
		require.Equal(t, cards(Tempura, Tempura), next.Tableaus[0])
	})

	t.Run("an empty table scores the round and redeals", func(t *testing.T) {
		gs := testState(
			[][]Card{cards(Tempura), cards(Sashimi)},
			[][]Card{cards(Tempura), cards(SquidNigiri)},
		)
		gs.deck = newDeck()[:40]

		next := gs.Play(Pick{Card: Card{Type: Tempura}}).(*GameState)
		next = next.Play(Pick{Card: Card{Type: Sashimi}}).(*GameState)

		require.Equal(t, 2, next.Round)
		require.Equal(t, 5, next.Scores[0], "A completed tempura pair banks 5")
		require.Equal(t, 3, next.Scores[1], "A lone squid nigiri banks 3")
		for _, hand := range next.Hands {
			require.Len(t, hand, handSize[2], "The next round should be dealt")
		}
		for _, tableau := range next.Tableaus {
			require.Empty(t, tableau)
		}
	})

	t.Run("the third round ends the game and scores puddings", func(t *testing.T) {
		gs := testState(
			[][]Card{cards(Pudding), cards(EggNigiri), cards(Dumpling)},
			[][]Card{{}, {}, {}},
		)
		gs.Round = Rounds
		gs.Puddings = []int{2, 0, 0}

		next := gs.Play(Pick{Card: Card{Type: Pudding}}).(*GameState)
		next = next.Play(Pick{Card: Card{Type: EggNigiri}}).(*GameState)
		next = next.Play(Pick{Card: Card{Type: Dumpling}}).(*GameState)

		require.True(t, next.IsTerminal())
		require.Equal(t, 6, next.Scores[0], "Most puddings is worth 6")
		require.Equal(t, -2, next.Scores[1], "Fewest puddings costs 3 each when two actors split the penalty")
		require.Equal(t, -2, next.Scores[2])
		require.Equal(t, []Actor{0}, next.Winners())
	})

	t.Run("unknown move kinds panic", func(t *testing.T) {
		gs := testState([][]Card{cards(Tempura), cards(Sashimi)}, [][]Card{{}, {}})

		require.Panics(t, func() { gs.Play(nil) })
		require.Panics(t, func() { gs.Play(Pick{Card: Card{Type: Chopsticks}}) })
	})
}

func TestScoreTableau(t *testing.T) {
	t.Run("set values", func(t *testing.T) {
		testcases := []struct {
			name    string
			tableau []Card
			want    int
		}{
			{"lone tempura scores nothing", cards(Tempura), 0},
			{"tempura pair", cards(Tempura, Tempura), 5},
			{"sashimi triple", cards(Sashimi, Sashimi, Sashimi), 10},
			{"two sashimi score nothing", cards(Sashimi, Sashimi), 0},
			{"three dumplings", cards(Dumpling, Dumpling, Dumpling), 6},
			{"six dumplings cap at fifteen", cards(Dumpling, Dumpling, Dumpling, Dumpling, Dumpling, Dumpling), 15},
			{"wasabi triples the next nigiri only", cards(Wasabi, SquidNigiri, EggNigiri), 10},
			{"nigiri before wasabi is not tripled", cards(SalmonNigiri, Wasabi), 2},
			{"chopsticks and maki score nothing here", cards(Chopsticks, MakiThree), 0},
		}

		for _, tc := range testcases {
			t.Run(tc.name, func(t *testing.T) {
				require.Equal(t, tc.want, scoreTableau(tc.tableau))
			})
		}
	})
}

func TestMakiBonuses(t *testing.T) {
	t.Run("most and second most split the prizes", func(t *testing.T) {
		require.Equal(t, []int{6, 3, 0}, makiBonuses([]int{5, 3, 1}))
	})

	t.Run("a tie for first splits six and leaves no second prize", func(t *testing.T) {
		require.Equal(t, []int{3, 3, 0}, makiBonuses([]int{4, 4, 2}))
	})

	t.Run("zero icons win nothing", func(t *testing.T) {
		require.Equal(t, []int{0, 0, 0}, makiBonuses([]int{0, 0, 0}))
	})
}

func TestWinners(t *testing.T) {
	t.Run("puddings break score ties", func(t *testing.T) {
		gs := testState([][]Card{{}, {}, {}}, [][]Card{{}, {}, {}})
		gs.Scores = []int{20, 20, 15}
		gs.Puddings = []int{1, 3, 5}

		require.Equal(t, []Actor{1}, gs.Winners())
	})

	t.Run("exact ties share the win", func(t *testing.T) {
		gs := testState([][]Card{{}, {}, {}}, [][]Card{{}, {}, {}})
		gs.Scores = []int{20, 20, 15}
		gs.Puddings = []int{2, 2, 5}
		gs.Round = Rounds + 1

		require.Equal(t, []Actor{0, 1}, gs.Winners())
		require.Equal(t, 0.0, gs.TerminalResult(0))
		require.Equal(t, 0.0, gs.TerminalResult(1))
		require.Equal(t, -1.0, gs.TerminalResult(2))
	})

	t.Run("a sole winner gets the full result", func(t *testing.T) {
		gs := testState([][]Card{{}, {}}, [][]Card{{}, {}})
		gs.Scores = []int{20, 10}
		gs.Round = Rounds + 1

		require.Equal(t, 1.0, gs.TerminalResult(0))
		require.Equal(t, -1.0, gs.TerminalResult(1))
	})
}

func TestFullGame(t *testing.T) {
	t.Run("playing any legal move to the end terminates within bounds", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		var state State = NewGameState(3, rng)

		moves := 0
		for !state.IsTerminal() {
			legal := state.LegalMoves()
			require.NotEmpty(t, legal, "Non-terminal states must offer a move")
			state = state.Play(legal[rng.Intn(len(legal))])
			moves++
			require.Less(t, moves, 1000, "The game must terminate")
		}

		gs := state.(*GameState)
		require.Equal(t, Rounds+1, gs.Round)
		require.NotEmpty(t, gs.Winners())
	})
}
