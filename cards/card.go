package cards

import "fmt"

// CardFromString creates a card from a string representation
// e.g., "7♥" or "7h" or "7H" -> Card{Suit: Hearts, Rank: Seven}
// e.g., "F" -> the fold sentinel
func CardFromString(s string) (Card, error) {
	if s == "F" {
		return Folded(), nil
	}

	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	var suit Suit
	switch string(runes[len(runes)-1]) {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %s", string(runes[len(runes)-1]))
	}

	var rank Rank
	switch string(runes[:len(runes)-1]) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("invalid card rank: %s", string(runes[:len(runes)-1]))
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Rank represents a card rank in the 40-card truco deck (no 8, 9 or 10)
type Rank string

const (
	Ace   Rank = "A"
	King  Rank = "K"
	Jack  Rank = "J"
	Queen Rank = "Q"
	Seven Rank = "7"
	Six   Rank = "6"
	Five  Rank = "5"
	Four  Rank = "4"
	Three Rank = "3"
	Two   Rank = "2"
)

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// String returns the string representation of a card
func (c Card) String() string {
	if c.IsFold() {
		return "F"
	}
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsFold checks if the card is the fold sentinel
func (c Card) IsFold() bool {
	return c.Suit == "" && c.Rank == ""
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// Folded creates the fold sentinel a seat plays when it forfeits its turn
func Folded() Card {
	return Card{}
}
