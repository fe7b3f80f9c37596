package bot

import (
	"trucosrv/domain"
)

// StandardBrain is the default heuristic strategy: cheapest winning card,
// weakest discard, and a wager policy driven by average hand strength with a
// score-pressure bluff adjustment.
type StandardBrain struct {
	Tuning Tuning
}

// NewStandardBrain creates the default strategy with the shipped tuning
func NewStandardBrain() *StandardBrain {
	return &StandardBrain{Tuning: DefaultTuning}
}

// SelectCard picks the index of the card to play for the seat.
func (b *StandardBrain) SelectCard(game *domain.Game, seat int) (int, bool) {
	player := &game.Players[seat]
	if len(player.Hand) == 0 {
		return 0, false
	}
	if len(player.Hand) == 1 {
		return 0, false
	}

	bestOnTable, holderSeat := currentRoundBest(game)

	// Partner already holds the round: throw the weakest card away
	if holderSeat >= 0 && domain.TeamOfSeat(holderSeat) == domain.TeamOfSeat(seat) {
		return weakestIndex(game, player), false
	}

	// Take the round with the cheapest card that beats the table
	winIdx := -1
	winStrength := 0
	for i, card := range player.Hand {
		s := game.Strengths.Strength(card)
		if s > bestOnTable && (winIdx == -1 || s < winStrength) {
			winIdx = i
			winStrength = s
		}
	}
	if winIdx >= 0 {
		return winIdx, false
	}

	// Cannot win. Folding conceals the hand; only useful once the round has
	// an owner to lose to.
	idx := weakestIndex(game, player)
	if b.Tuning.FoldWhenBeaten && holderSeat >= 0 {
		return idx, true
	}
	return idx, false
}

// DecideWager answers a pending call or raise for the seat.
func (b *StandardBrain) DecideWager(game *domain.Game, seat int, proposedStake int) WagerDecision {
	strength := averageStrength(game, seat)

	raiseAt := b.Tuning.RaiseStrength
	surrenderAt := b.Tuning.SurrenderStrength

	// Score pressure: when the opponents are about to win, a quiet hand is a
	// lost hand, so the thresholds loosen into bluff range.
	opposing := 1 - domain.TeamOfSeat(seat)
	if game.Rules.WinningScore-game.Scores[opposing] <= b.Tuning.BluffPressure {
		raiseAt -= 2
		surrenderAt -= 2
	}

	// A won round in the bag makes the current stake safer to defend
	if roundWins(game, domain.TeamOfSeat(seat)) > 0 {
		surrenderAt -= 1
	}

	switch {
	case strength >= raiseAt && game.CanRaiseWager(seat) == nil:
		return WagerRaise
	case strength < surrenderAt && proposedStake > b.Tuning.SurrenderStakeFloor:
		return WagerSurrender
	default:
		return WagerAccept
	}
}

// ShouldOpenWager decides whether to call truco unprompted on the bot's turn
func (b *StandardBrain) ShouldOpenWager(game *domain.Game, seat int) bool {
	if game.CanRaiseWager(seat) != nil {
		return false
	}
	if game.Wager.Level != domain.WagerNone {
		return false
	}
	// Only open on a strong hand, and prefer late rounds where fewer cards
	// can still turn on us
	return averageStrength(game, seat) >= b.Tuning.RaiseStrength && game.RoundNumber >= 2
}

// currentRoundBest returns the strongest non-folded strength on the table
// and the seat holding it, or (0, -1) when nothing has been played.
func currentRoundBest(game *domain.Game) (best int, holderSeat int) {
	holderSeat = -1
	for _, slot := range game.Table {
		if !slot.Played || slot.Card.IsFold() {
			continue
		}
		if s := game.Strengths.Strength(slot.Card); s > best {
			best = s
			holderSeat = slot.Seat
		}
	}
	return best, holderSeat
}

func weakestIndex(game *domain.Game, player *domain.Player) int {
	idx := 0
	weakest := game.Strengths.Strength(player.Hand[0])
	for i, card := range player.Hand {
		if s := game.Strengths.Strength(card); s < weakest {
			weakest = s
			idx = i
		}
	}
	return idx
}

func averageStrength(game *domain.Game, seat int) float64 {
	hand := game.Players[seat].Hand
	if len(hand) == 0 {
		return 0
	}
	total := 0
	for _, card := range hand {
		total += game.Strengths.Strength(card)
	}
	return float64(total) / float64(len(hand))
}

func roundWins(game *domain.Game, team int) int {
	wins := 0
	for _, r := range game.Rounds {
		if r.WinnerTeam == team {
			wins++
		}
	}
	return wins
}
