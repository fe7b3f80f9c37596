package cards

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack with the given cards
func NewStack(cards ...Card) Stack {
	return cards
}

// Contains checks if the stack holds the given card
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c.Equals(card) {
			return true
		}
	}
	return false
}

// RemoveAt removes the card at the given index and returns the shrunk stack
func (s Stack) RemoveAt(index int) Stack {
	out := make(Stack, 0, len(s)-1)
	out = append(out, s[:index]...)
	out = append(out, s[index+1:]...)
	return out
}
