package game

type CardType int

const (
	Tempura CardType = iota
	Sashimi
	Dumpling
	MakiOne
	MakiTwo
	MakiThree
	EggNigiri
	SalmonNigiri
	SquidNigiri
	Wasabi
	Chopsticks
	Pudding
)

func (t CardType) String() string {
	switch t {
	case Tempura:
		return "tempura"
	case Sashimi:
		return "sashimi"
	case Dumpling:
		return "dumpling"
	case MakiOne:
		return "maki-1"
	case MakiTwo:
		return "maki-2"
	case MakiThree:
		return "maki-3"
	case EggNigiri:
		return "egg-nigiri"
	case SalmonNigiri:
		return "salmon-nigiri"
	case SquidNigiri:
		return "squid-nigiri"
	case Wasabi:
		return "wasabi"
	case Chopsticks:
		return "chopsticks"
	case Pudding:
		return "pudding"
	}
	return "unknown"
}

type Card struct {
	Type CardType
}

// MakiIcons is the number of maki icons on the card, 0 for non-maki cards.
func (c Card) MakiIcons() int {
	switch c.Type {
	case MakiOne:
		return 1
	case MakiTwo:
		return 2
	case MakiThree:
		return 3
	}
	return 0
}

// IsNigiri reports whether the card scores on top of a wasabi.
func (c Card) IsNigiri() bool {
	switch c.Type {
	case EggNigiri, SalmonNigiri, SquidNigiri:
		return true
	}
	return false
}

// NigiriValue is the base value of a nigiri card, 0 for non-nigiri cards.
func (c Card) NigiriValue() int {
	switch c.Type {
	case EggNigiri:
		return 1
	case SalmonNigiri:
		return 2
	case SquidNigiri:
		return 3
	}
	return 0
}

// deckCounts is the standard 108-card deck composition.
var deckCounts = map[CardType]int{
	Tempura:      14,
	Sashimi:      14,
	Dumpling:     14,
	MakiTwo:      12,
	MakiThree:    8,
	MakiOne:      6,
	SalmonNigiri: 10,
	SquidNigiri:  5,
	EggNigiri:    5,
	Pudding:      10,
	Wasabi:       6,
	Chopsticks:   4,
}

func newDeck() []Card {
	deck := make([]Card, 0, 108)
	for t := Tempura; t <= Pudding; t++ {
		for i := 0; i < deckCounts[t]; i++ {
			deck = append(deck, Card{Type: t})
		}
	}
	return deck
}

// handSize is the number of cards dealt per actor each round, indexed by
// actor count.
var handSize = map[int]int{2: 10, 3: 9, 4: 8, 5: 7}
