package cards

import (
	"math/rand"
	"time"
)

// NewDeck40 creates the 40-card truco deck (standard deck without 8s, 9s and 10s)
func NewDeck40() Stack {
	var deck Stack
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	ranks := []Rank{Ace, Two, Three, Four, Five, Six, Seven, Queen, Jack, King}

	for _, suit := range suits {
		for _, rank := range ranks {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}

	return deck
}

// ShuffleDeck shuffles a deck of cards randomly
func ShuffleDeck(deck Stack) Stack {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return ShuffleDeckWith(r, deck)
}

// ShuffleDeckWith shuffles a deck using the provided source, so deals can be
// reproduced in tests
func ShuffleDeckWith(r *rand.Rand, deck Stack) Stack {
	shuffled := make(Stack, len(deck))
	copy(shuffled, deck)

	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

// DealCard deals the top card from the deck and returns the card and the remaining deck
func DealCard(deck Stack) (Card, Stack) {
	if len(deck) == 0 {
		return Card{}, nil
	}

	card := deck[0]
	return card, deck[1:]
}

// DealCards deals count cards and returns them with the remaining deck
func DealCards(deck Stack, count int) (Stack, Stack) {
	if count > len(deck) {
		count = len(deck)
	}

	dealt := make(Stack, count)
	copy(dealt, deck[:count])

	return dealt, deck[count:]
}
