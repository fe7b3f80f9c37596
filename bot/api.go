package bot

import "trucosrv/domain"

// WagerDecision is the bot's answer to a pending call or raise.
type WagerDecision int

const (
	WagerAccept WagerDecision = iota
	WagerRaise
	WagerSurrender
)

func (d WagerDecision) String() string {
	switch d {
	case WagerAccept:
		return "accept"
	case WagerRaise:
		return "raise"
	case WagerSurrender:
		return "surrender"
	}
	return "unknown"
}

// Brain is the interface that all bot strategies must implement. Internals
// are free to change wholesale; the engine only depends on these two calls.
type Brain interface {
	SelectCard(game *domain.Game, seat int) (cardIndex int, fold bool)
	DecideWager(game *domain.Game, seat int, proposedStake int) WagerDecision
}
