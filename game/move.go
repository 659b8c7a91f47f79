package game

import "fmt"

// Pick takes one card from the current actor's hand into their tableau.
type Pick struct {
	Card Card
}

func (p Pick) Copy() Move { return p }

func (p Pick) String() string { return fmt.Sprintf("pick %s", p.Card.Type) }

// PickTwo takes two cards in one turn by spending a chopsticks card already
// in the tableau; the chopsticks go back into the hand before it is passed
// on. Only legal while the hand holds at least two cards.
type PickTwo struct {
	First  Card
	Second Card
}

func (p PickTwo) Copy() Move { return p }

func (p PickTwo) String() string {
	return fmt.Sprintf("pick %s and %s with chopsticks", p.First.Type, p.Second.Type)
}
