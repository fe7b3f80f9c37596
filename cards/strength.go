package cards

// StrengthTable maps every card to its truco strength. It is built once and
// injected wherever cards need comparing, so regional variants can swap the
// hierarchy without touching game logic.
type StrengthTable map[Card]int

// Manilha strengths. The four manilhas outrank every plain card.
const (
	StrengthZap     = 14 // 4 of clubs
	StrengthCopas   = 13 // 7 of hearts
	StrengthEspadao = 12 // ace of spades
	StrengthOuros   = 11 // 7 of diamonds
)

// DefaultStrengthTable builds the Paulista hierarchy: the four manilhas on
// top, then 3, 2, A, K, J, Q, 7, 6, 5, 4 across the remaining suits.
func DefaultStrengthTable() StrengthTable {
	table := make(StrengthTable, 40)

	plain := map[Rank]int{
		Three: 10,
		Two:   9,
		Ace:   8,
		King:  7,
		Jack:  6,
		Queen: 5,
		Seven: 4,
		Six:   3,
		Five:  2,
		Four:  1,
	}

	for _, card := range NewDeck40() {
		table[card] = plain[card.Rank]
	}

	table[Card{Suit: Clubs, Rank: Four}] = StrengthZap
	table[Card{Suit: Hearts, Rank: Seven}] = StrengthCopas
	table[Card{Suit: Spades, Rank: Ace}] = StrengthEspadao
	table[Card{Suit: Diamonds, Rank: Seven}] = StrengthOuros

	return table
}

// Strength returns the strength of a card. The fold sentinel (and any card
// missing from the table) has strength 0 and loses to everything.
func (t StrengthTable) Strength(card Card) int {
	return t[card]
}

// IsManilha checks whether the card is one of the four elevated cards
func (t StrengthTable) IsManilha(card Card) bool {
	return t[card] >= StrengthOuros
}
