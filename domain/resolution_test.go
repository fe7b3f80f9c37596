package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trucosrv/cards"
)

func playedTable(t *testing.T, shorthand [NumSeats]string) []PlayedCard {
	t.Helper()
	table := make([]PlayedCard, NumSeats)
	for seat, s := range shorthand {
		card, err := cards.CardFromString(s)
		require.NoError(t, err)
		table[seat] = PlayedCard{Seat: seat, Card: card, Played: true}
	}
	return table
}

func TestRoundWinner(t *testing.T) {
	strengths := cards.DefaultStrengthTable()

	t.Run("highest manilha wins with a fold in between", func(t *testing.T) {
		// Worked example: zap beats copas and espadão, the fold is excluded
		table := playedTable(t, [NumSeats]string{"4♣", "7♥", "F", "A♠"})

		seat, draw := RoundWinner(table, strengths)
		assert.False(t, draw)
		assert.Equal(t, 0, seat)
	})

	t.Run("plain rank beats lower plain rank", func(t *testing.T) {
		table := playedTable(t, [NumSeats]string{"K♦", "3♥", "Q♣", "6♠"})

		seat, draw := RoundWinner(table, strengths)
		assert.False(t, draw)
		assert.Equal(t, 1, seat)
	})

	t.Run("equal top strengths draw", func(t *testing.T) {
		table := playedTable(t, [NumSeats]string{"3♦", "3♥", "5♣", "6♠"})

		seat, draw := RoundWinner(table, strengths)
		assert.True(t, draw)
		assert.Equal(t, -1, seat)
	})

	t.Run("result is independent of seat order", func(t *testing.T) {
		table := playedTable(t, [NumSeats]string{"6♠", "F", "7♥", "4♣"})

		seat, draw := RoundWinner(table, strengths)
		assert.False(t, draw)
		assert.Equal(t, 3, seat)
	})

	t.Run("all folded is a draw", func(t *testing.T) {
		table := playedTable(t, [NumSeats]string{"F", "F", "F", "F"})

		_, draw := RoundWinner(table, strengths)
		assert.True(t, draw)
	})

	t.Run("folded top card does not tie", func(t *testing.T) {
		// Two folds and one real card: the real card wins alone
		table := playedTable(t, [NumSeats]string{"F", "4♦", "F", "F"})

		seat, draw := RoundWinner(table, strengths)
		assert.False(t, draw)
		assert.Equal(t, 1, seat)
	})
}

func TestIsHandComplete(t *testing.T) {
	won := func(number, team int) RoundResult {
		return RoundResult{Number: number, WinnerSeat: team, WinnerTeam: team}
	}
	drawn := func(number int) RoundResult {
		return RoundResult{Number: number, WinnerSeat: -1, WinnerTeam: NoTeam, Draw: true}
	}

	tests := []struct {
		name   string
		rounds []RoundResult
		want   bool
	}{
		{"no rounds", nil, false},
		{"one win each", []RoundResult{won(1, 0), won(2, 1)}, false},
		{"two straight wins", []RoundResult{won(1, 0), won(2, 0)}, true},
		{"split then decider", []RoundResult{won(1, 0), won(2, 1), won(3, 1)}, true},
		{"unresolved draw does not count", []RoundResult{drawn(1), won(2, 1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHandComplete(tt.rounds))
		})
	}
}

func TestResolveDraw(t *testing.T) {
	t.Run("round one draw stays unresolved", func(t *testing.T) {
		_, resolved := ResolveDraw(nil, 1)
		assert.False(t, resolved)
	})

	t.Run("later draw goes to round one winner", func(t *testing.T) {
		rounds := []RoundResult{{Number: 1, WinnerSeat: 1, WinnerTeam: 1}}

		team, resolved := ResolveDraw(rounds, 2)
		assert.True(t, resolved)
		assert.Equal(t, 1, team)
	})

	t.Run("later draw after drawn round one stays unresolved", func(t *testing.T) {
		rounds := []RoundResult{{Number: 1, WinnerSeat: -1, WinnerTeam: NoTeam, Draw: true}}

		_, resolved := ResolveDraw(rounds, 2)
		assert.False(t, resolved)
	})
}

func TestHandOutcome(t *testing.T) {
	won := func(number, team int) RoundResult {
		return RoundResult{Number: number, WinnerSeat: team, WinnerTeam: team}
	}
	drawn := func(number int) RoundResult {
		return RoundResult{Number: number, WinnerSeat: -1, WinnerTeam: NoTeam, Draw: true}
	}

	t.Run("two wins take the hand", func(t *testing.T) {
		team, done := HandOutcome([]RoundResult{won(1, 0), won(2, 0)}, 3)
		assert.True(t, done)
		assert.Equal(t, 0, team)
	})

	t.Run("split hand is not over", func(t *testing.T) {
		_, done := HandOutcome([]RoundResult{won(1, 0), won(2, 1)}, 3)
		assert.False(t, done)
	})

	t.Run("first blood after a drawn first round", func(t *testing.T) {
		team, done := HandOutcome([]RoundResult{drawn(1), won(2, 1)}, 3)
		assert.True(t, done)
		assert.Equal(t, 1, team)
	})

	t.Run("three draws go against the dealer", func(t *testing.T) {
		team, done := HandOutcome([]RoundResult{drawn(1), drawn(2), drawn(3)}, 3)
		assert.True(t, done)
		assert.Equal(t, 1-TeamOfSeat(3), team)
	})
}
