package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/* spec:
- maki picks pruned once the race cannot reach the top two
- wasabi pruned once no nigiri circulates
- the last tempura pruned unless someone holds an unpaired one
- one or two sashimi pruned unless they can complete someone's triple
- chopsticks pruned from a two-card hand
- pair picks and unknown kinds are never pruned; foreign states panic
*/

func TestCardOracle(t *testing.T) {
	oracle := CardOracle{}

	t.Run("maki picks are pruned once the race is lost", func(t *testing.T) {
		lost := testState(
			[][]Card{cards(MakiOne), cards(Pudding), cards(Pudding)},
			[][]Card{{}, cards(MakiThree, MakiThree, MakiThree), cards(MakiThree, MakiThree, MakiThree)},
		)
		require.True(t, oracle.IsNoGain(lost, Pick{Card: Card{Type: MakiOne}}))

		// A single leader leaves second place reachable
		open := testState(
			[][]Card{cards(MakiOne), cards(Pudding), cards(Pudding)},
			[][]Card{{}, cards(MakiThree, MakiThree, MakiThree), {}},
		)
		require.False(t, oracle.IsNoGain(open, Pick{Card: Card{Type: MakiOne}}))
	})

	t.Run("wasabi is pruned once no nigiri circulates", func(t *testing.T) {
		dead := testState(
			[][]Card{cards(Wasabi, Pudding), cards(Tempura)},
			[][]Card{{}, {}},
		)
		require.True(t, oracle.IsNoGain(dead, Pick{Card: Card{Type: Wasabi}}))

		live := testState(
			[][]Card{cards(Wasabi, Pudding), cards(EggNigiri)},
			[][]Card{{}, {}},
		)
		require.False(t, oracle.IsNoGain(live, Pick{Card: Card{Type: Wasabi}}))
	})

	t.Run("the last tempura is pruned unless someone holds an unpaired one", func(t *testing.T) {
		dead := testState(
			[][]Card{cards(Tempura, Pudding), cards(Sashimi)},
			[][]Card{{}, {}},
		)
		require.True(t, oracle.IsNoGain(dead, Pick{Card: Card{Type: Tempura}}))

		live := testState(
			[][]Card{cards(Tempura, Pudding), cards(Sashimi)},
			[][]Card{{}, cards(Tempura)},
		)
		require.False(t, oracle.IsNoGain(live, Pick{Card: Card{Type: Tempura}}))

		// Two circulating tempura can still pair with each other
		pair := testState(
			[][]Card{cards(Tempura, Pudding), cards(Tempura)},
			[][]Card{{}, {}},
		)
		require.False(t, oracle.IsNoGain(pair, Pick{Card: Card{Type: Tempura}}))
	})

	t.Run("stranded sashimi are pruned", func(t *testing.T) {
		dead := testState(
			[][]Card{cards(Sashimi, Pudding), cards(Tempura)},
			[][]Card{{}, {}},
		)
		require.True(t, oracle.IsNoGain(dead, Pick{Card: Card{Type: Sashimi}}))

		almostComplete := testState(
			[][]Card{cards(Sashimi, Pudding), cards(Tempura)},
			[][]Card{{}, cards(Sashimi, Sashimi)},
		)
		require.False(t, oracle.IsNoGain(almostComplete, Pick{Card: Card{Type: Sashimi}}))

		twoLeftOnePlaced := testState(
			[][]Card{cards(Sashimi, Pudding), cards(Sashimi)},
			[][]Card{cards(Sashimi), {}},
		)
		require.False(t, oracle.IsNoGain(twoLeftOnePlaced, Pick{Card: Card{Type: Sashimi}}))

		// Three or more circulating sashimi are never pruned
		plenty := testState(
			[][]Card{cards(Sashimi, Pudding), cards(Sashimi, Sashimi)},
			[][]Card{{}, {}},
		)
		require.False(t, oracle.IsNoGain(plenty, Pick{Card: Card{Type: Sashimi}}))
	})

	t.Run("chopsticks are pruned from a two-card hand", func(t *testing.T) {
		late := testState(
			[][]Card{cards(Chopsticks, Pudding), cards(Tempura, Tempura)},
			[][]Card{{}, {}},
		)
		require.True(t, oracle.IsNoGain(late, Pick{Card: Card{Type: Chopsticks}}))

		early := testState(
			[][]Card{cards(Chopsticks, Pudding, Tempura), cards(Tempura, Tempura, Sashimi)},
			[][]Card{{}, {}},
		)
		require.False(t, oracle.IsNoGain(early, Pick{Card: Card{Type: Chopsticks}}))
	})

	t.Run("pair picks and plain cards are left alone", func(t *testing.T) {
		gs := testState(
			[][]Card{cards(Tempura, Pudding), cards(Sashimi)},
			[][]Card{cards(Chopsticks), {}},
		)

		require.False(t, oracle.IsNoGain(gs, PickTwo{
			First:  Card{Type: Tempura},
			Second: Card{Type: Pudding},
		}))
		require.False(t, oracle.IsNoGain(gs, Pick{Card: Card{Type: Pudding}}))
	})

	t.Run("a foreign state kind panics, leaving the verdict to the caller", func(t *testing.T) {
		require.Panics(t, func() {
			oracle.IsNoGain(flatState{}, Pick{Card: Card{Type: Wasabi}})
		})
	})
}
