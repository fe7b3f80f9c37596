package cards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		// Valid cards with different suit notations
		{"Four of Clubs Unicode", "4♣", Card{Suit: Clubs, Rank: Four}, false},
		{"Four of Clubs lowercase", "4c", Card{Suit: Clubs, Rank: Four}, false},
		{"Four of Clubs uppercase", "4C", Card{Suit: Clubs, Rank: Four}, false},
		{"Seven of Hearts Unicode", "7♥", Card{Suit: Hearts, Rank: Seven}, false},
		{"Seven of Hearts lowercase", "7h", Card{Suit: Hearts, Rank: Seven}, false},
		{"Ace of Spades Unicode", "A♠", Card{Suit: Spades, Rank: Ace}, false},
		{"Ace of Spades uppercase", "AS", Card{Suit: Spades, Rank: Ace}, false},
		{"Seven of Diamonds lowercase", "7d", Card{Suit: Diamonds, Rank: Seven}, false},
		{"Queen of Diamonds", "Qd", Card{Suit: Diamonds, Rank: Queen}, false},
		{"King of Hearts", "Kh", Card{Suit: Hearts, Rank: King}, false},
		{"Jack of Hearts", "Jh", Card{Suit: Hearts, Rank: Jack}, false},
		{"Three of Hearts", "3h", Card{Suit: Hearts, Rank: Three}, false},
		{"Two of Clubs", "2c", Card{Suit: Clubs, Rank: Two}, false},

		// Fold sentinel
		{"Fold sentinel", "F", Folded(), false},
		{"Lowercase fold", "f", Card{}, true}, // Only uppercase F is valid

		// Ranks removed from the 40-card deck
		{"Ten is not in the deck", "10S", Card{}, true},
		{"Nine is not in the deck", "9h", Card{}, true},
		{"Eight is not in the deck", "8c", Card{}, true},

		// Invalid inputs
		{"Too short input", "A", Card{}, true},
		{"Empty input", "", Card{}, true},
		{"Invalid suit", "7X", Card{}, true},
		{"Invalid rank", "1S", Card{}, true},
		{"Reverse order", "♠A", Card{}, true},
		{"Input with trailing space", "AS ", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CardFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err, "CardFromString(%q) should return an error", tt.input)
			} else {
				require.NoError(t, err, "CardFromString(%q) should not return an error", tt.input)
				require.Equal(t, tt.want, got, "CardFromString(%q) should return the correct card", tt.input)
			}
		})
	}
}

func TestFoldSentinel(t *testing.T) {
	fold := Folded()
	require.True(t, fold.IsFold())
	require.Equal(t, "F", fold.String())

	real := Card{Suit: Clubs, Rank: Four}
	require.False(t, real.IsFold())
	require.False(t, real.Equals(fold))
}
