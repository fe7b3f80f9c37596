package domain

import "trucosrv/cards"

// Pure resolution helpers. Everything here works on explicit inputs and has
// no side effects, so rule variants can be exercised in isolation.

// RoundResult records the outcome of one round within a hand
type RoundResult struct {
	Number     int
	WinnerSeat int // -1 when the round was drawn
	WinnerTeam int // -1 when the draw stayed unresolved
	Draw       bool
}

// RoundWinner compares the strengths of all non-folded plays and returns the
// winning seat, or draw when two or more top cards tie.
func RoundWinner(table []PlayedCard, strengths cards.StrengthTable) (winnerSeat int, draw bool) {
	best := -1
	winnerSeat = -1

	for _, play := range table {
		if !play.Played || play.Card.IsFold() {
			continue
		}
		strength := strengths.Strength(play.Card)
		switch {
		case strength > best:
			best = strength
			winnerSeat = play.Seat
			draw = false
		case strength == best:
			draw = true
		}
	}

	if draw || winnerSeat == -1 {
		return -1, true
	}
	return winnerSeat, false
}

// IsHandComplete reports whether either team has won two rounds
func IsHandComplete(rounds []RoundResult) bool {
	var wins [2]int
	for _, r := range rounds {
		if r.WinnerTeam >= 0 {
			wins[r.WinnerTeam]++
		}
	}
	return wins[0] >= 2 || wins[1] >= 2
}

// ResolveDraw resolves a drawn round. A draw in round 2 or 3 goes to
// whichever team won round 1; a round-1 draw stays unresolved and the hand
// is decided by HandOutcome's first-blood rule.
func ResolveDraw(rounds []RoundResult, currentRound int) (team int, resolved bool) {
	if currentRound <= 1 {
		return -1, false
	}
	for _, r := range rounds {
		if r.Number == 1 && r.WinnerTeam >= 0 {
			return r.WinnerTeam, true
		}
	}
	return -1, false
}

// HandOutcome decides whether the hand is over and who takes it:
//   - two round wins take the hand outright
//   - after a drawn first round, the first decided round takes the hand
//   - three drawn rounds go to the team opposing the dealer
func HandOutcome(rounds []RoundResult, dealerSeat int) (team int, done bool) {
	var wins [2]int
	firstDrawn := false

	for _, r := range rounds {
		if r.WinnerTeam >= 0 {
			wins[r.WinnerTeam]++
		} else if r.Number == 1 {
			firstDrawn = true
		}
	}

	for t, w := range wins {
		if w >= 2 {
			return t, true
		}
	}

	if firstDrawn {
		for _, r := range rounds {
			if r.WinnerTeam >= 0 {
				return r.WinnerTeam, true
			}
		}
		if len(rounds) >= 3 {
			return 1 - TeamOfSeat(dealerSeat), true
		}
	}

	return -1, false
}
