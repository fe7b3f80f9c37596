package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trucosrv/cards"
	"trucosrv/domain"
)

func newBotGame(t *testing.T) *domain.Game {
	t.Helper()
	var players [domain.NumSeats]domain.Player
	for i := 0; i < domain.NumSeats; i++ {
		players[i] = domain.NewPlayer(i, "bot-test", true)
	}
	g := domain.NewGame("bot-game", domain.DefaultRules(), cards.DefaultStrengthTable(), players)
	g.StartGame(3)
	return g
}

func giveHand(t *testing.T, g *domain.Game, seat int, shorthand ...string) {
	t.Helper()
	hand := make(cards.Stack, 0, len(shorthand))
	for _, s := range shorthand {
		card, err := cards.CardFromString(s)
		require.NoError(t, err)
		hand = append(hand, card)
	}
	g.Players[seat].Hand = hand
}

func TestSelectCardCheapestWinner(t *testing.T) {
	g := newBotGame(t)
	brain := NewStandardBrain()

	// Seat 0 led a king; the bot holds two cards that beat it and picks the
	// cheaper one (the three, not the zap)
	giveHand(t, g, 0, "K♦", "5♦", "6♦")
	require.NoError(t, g.PlayCard(0, 0, false))

	giveHand(t, g, 1, "4♣", "3♥", "5♥")
	idx, fold := brain.SelectCard(g, 1)

	assert.False(t, fold)
	assert.Equal(t, "3♥", g.Players[1].Hand[idx].String())
}

func TestSelectCardDiscardsUnderPartnerLead(t *testing.T) {
	g := newBotGame(t)
	brain := NewStandardBrain()

	// Seat 0 (partner of seat 2) holds the round with the zap
	giveHand(t, g, 0, "4♣", "5♦", "6♦")
	require.NoError(t, g.PlayCard(0, 0, false))
	giveHand(t, g, 1, "Q♦", "5♥", "6♥")
	require.NoError(t, g.PlayCard(1, 0, false))

	giveHand(t, g, 2, "3♠", "2♠", "4♦")
	idx, fold := brain.SelectCard(g, 2)

	assert.False(t, fold, "no reason to conceal under a winning partner")
	assert.Equal(t, "4♦", g.Players[2].Hand[idx].String(), "weakest card goes")
}

func TestSelectCardFoldsWhenBeaten(t *testing.T) {
	g := newBotGame(t)
	brain := NewStandardBrain()

	giveHand(t, g, 0, "7♥", "5♦", "6♦")
	require.NoError(t, g.PlayCard(0, 0, false))

	// Seat 1 cannot beat the copas and folds its weakest card
	giveHand(t, g, 1, "Q♦", "6♠", "5♥")
	idx, fold := brain.SelectCard(g, 1)

	assert.True(t, fold)
	assert.Equal(t, "5♥", g.Players[1].Hand[idx].String())
}

func TestSelectCardLeadsWhenTableEmpty(t *testing.T) {
	g := newBotGame(t)
	brain := NewStandardBrain()

	giveHand(t, g, 0, "Q♦", "6♠", "5♥")
	_, fold := brain.SelectCard(g, 0)

	assert.False(t, fold, "never fold when leading the round")
}

func TestDecideWagerByStrength(t *testing.T) {
	tests := []struct {
		name  string
		hand  []string
		stake int
		want  WagerDecision
	}{
		{"manilha heavy hand raises", []string{"4♣", "7♥", "3♦"}, 4, WagerRaise},
		{"middling hand accepts", []string{"K♦", "J♥", "2♦"}, 4, WagerAccept},
		{"weak hand surrenders a raised stake", []string{"4♦", "5♥", "6♠"}, 8, WagerSurrender},
		{"weak hand still accepts a cheap stake", []string{"4♦", "5♥", "6♠"}, 4, WagerAccept},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newBotGame(t)
			brain := NewStandardBrain()
			giveHand(t, g, 1, tt.hand...)

			// Seat 0 called; seat 1 must answer
			require.NoError(t, g.RaiseWager(0))
			got := brain.DecideWager(g, 1, tt.stake)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecideWagerBluffsUnderPressure(t *testing.T) {
	g := newBotGame(t)
	brain := NewStandardBrain()

	// Opponents at match point push the raise threshold down
	g.Scores[0] = 10
	giveHand(t, g, 1, "3♦", "2♥", "K♠")

	require.NoError(t, g.RaiseWager(0))
	got := brain.DecideWager(g, 1, 4)
	assert.Equal(t, WagerRaise, got)
}

func TestShouldOpenWager(t *testing.T) {
	g := newBotGame(t)
	brain := NewStandardBrain()

	giveHand(t, g, 0, "4♣", "7♥", "3♦")
	assert.False(t, brain.ShouldOpenWager(g, 0), "round one is too early")

	g.RoundNumber = 2
	assert.True(t, brain.ShouldOpenWager(g, 0))

	giveHand(t, g, 0, "4♦", "5♥", "6♠")
	assert.False(t, brain.ShouldOpenWager(g, 0), "weak hands stay quiet")
}
