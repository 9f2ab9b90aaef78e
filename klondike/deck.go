package klondike

import rand "math/rand/v2"

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// NewDeck returns all 52 cards face-down in a fixed base order
// (suits ascending, ranks ascending within each suit).
func NewDeck() []*Card {
	cards := make([]*Card, 0, DeckSize)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// ShuffledDeck returns a fresh deck shuffled with the provided RNG.
// The same RNG state always produces the same deal order.
func ShuffledDeck(rng *rand.Rand) []*Card {
	cards := NewDeck()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}
