package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trucosrv/cards"
	"trucosrv/domain/events"
)

// setHands replaces the dealt hands with fixed cards so play is deterministic
func setHands(t *testing.T, g *Game, hands [NumSeats][]string) {
	t.Helper()
	for seat, shorthand := range hands {
		hand := make(cards.Stack, 0, len(shorthand))
		for _, s := range shorthand {
			card, err := cards.CardFromString(s)
			require.NoError(t, err)
			hand = append(hand, card)
		}
		g.Players[seat].Hand = hand
	}
}

func TestStartGameDeals(t *testing.T) {
	g := newTestGame()

	assert.Equal(t, GameStatusActive, g.Status)
	assert.Equal(t, 1, g.HandNumber)
	assert.Equal(t, 1, g.RoundNumber)
	assert.Equal(t, 3, g.DealerSeat)
	assert.Equal(t, 0, g.FirstSeat)
	assert.Equal(t, 0, g.ActiveSeat())

	for i := range g.Players {
		assert.Len(t, g.Players[i].Hand, 3)
	}

	_, found := findEventOfType(g.Events, "GAME_STARTED")
	assert.True(t, found)
	_, found = findEventOfType(g.Events, "HAND_STARTED")
	assert.True(t, found)
}

func TestPlayCardValidation(t *testing.T) {
	t.Run("out of turn", func(t *testing.T) {
		g := newTestGame()
		err := g.PlayCard(2, 0, false)
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrKindOutOfTurn))
		assert.Len(t, g.Players[2].Hand, 3, "state must be unchanged")
	})

	t.Run("unknown seat", func(t *testing.T) {
		g := newTestGame()
		err := g.PlayCard(7, 0, false)
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrKindNotFound))
	})

	t.Run("card index out of range", func(t *testing.T) {
		g := newTestGame()
		err := g.PlayCard(0, 3, false)
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrKindInvalidIndex))
		assert.Len(t, g.Players[0].Hand, 3)
	})

	t.Run("ended game rejects plays", func(t *testing.T) {
		g := newTestGame()
		g.Status = GameStatusEnded
		err := g.PlayCard(0, 0, false)
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrKindAlreadyResolved))
	})
}

func TestPlayCardAdvancesTurn(t *testing.T) {
	g := newTestGame()

	require.NoError(t, g.PlayCard(0, 0, false))

	assert.True(t, g.Table[0].Played)
	assert.Len(t, g.Players[0].Hand, 2)
	assert.Equal(t, 1, g.ActiveSeat())

	event, found := findEventOfType(g.Events, "CARD_PLAYED")
	require.True(t, found)
	assert.Equal(t, 0, event.(events.CardPlayed).Seat)
}

func TestFoldPlaysSentinel(t *testing.T) {
	g := newTestGame()

	require.NoError(t, g.PlayCard(0, 1, true))

	assert.True(t, g.Table[0].Played)
	assert.True(t, g.Table[0].Card.IsFold())
	assert.Len(t, g.Players[0].Hand, 2, "the folded card still leaves the hand")
}

func TestRoundResolutionScoresWinner(t *testing.T) {
	g := newTestGame()
	setHands(t, g, [NumSeats][]string{
		{"4♣", "3♦", "2♦"},
		{"5♦", "6♦", "Q♦"},
		{"5♥", "6♥", "Q♥"},
		{"5♣", "6♣", "Q♣"},
	})

	for seat := 0; seat < NumSeats; seat++ {
		require.NoError(t, g.PlayCard(seat, 0, false))
	}

	// Seat 0's zap took the round for team 0 at stake 1
	require.Len(t, g.Rounds, 1)
	assert.Equal(t, 0, g.Rounds[0].WinnerTeam)
	assert.Equal(t, 1, g.Scores[0])
	assert.Equal(t, 0, g.Scores[1])

	// Table cleared, winner leads round 2
	for _, slot := range g.Table {
		assert.False(t, slot.Played)
	}
	assert.Equal(t, 2, g.RoundNumber)
	assert.Equal(t, 0, g.ActiveSeat())
}

func TestHandCompletionDealsNextHand(t *testing.T) {
	g := newTestGame()
	setHands(t, g, [NumSeats][]string{
		{"4♣", "3♦", "2♦"},
		{"5♦", "6♦", "Q♦"},
		{"5♥", "6♥", "Q♥"},
		{"5♣", "6♣", "Q♣"},
	})

	// Team 0 takes rounds 1 and 2
	for seat := 0; seat < NumSeats; seat++ {
		require.NoError(t, g.PlayCard(seat, 0, false))
	}
	for seat := 0; seat < NumSeats; seat++ {
		require.NoError(t, g.PlayCard(seat, 0, false))
	}

	event, found := findEventOfType(g.Events, "HAND_COMPLETED")
	require.True(t, found)
	assert.Equal(t, 0, event.(events.HandCompleted).WinnerTeam)

	// Cleanup: new hand dealt, dealer rotated, scores preserved
	assert.Equal(t, 2, g.HandNumber)
	assert.Equal(t, 1, g.RoundNumber)
	assert.Equal(t, 0, g.DealerSeat)
	assert.Equal(t, 1, g.FirstSeat)
	assert.Equal(t, 2, g.Scores[0])
	assert.Empty(t, g.Rounds)
	for i := range g.Players {
		assert.Len(t, g.Players[i].Hand, 3)
	}
}

func TestDrawnFirstRoundFirstBlood(t *testing.T) {
	g := newTestGame()
	setHands(t, g, [NumSeats][]string{
		{"3♦", "2♦", "4♥"},
		{"3♥", "Q♦", "4♠"},
		{"5♥", "6♥", "Q♥"},
		{"5♣", "6♣", "Q♣"},
	})

	// Round 1: two threes tie on top, nobody scores
	for seat := 0; seat < NumSeats; seat++ {
		require.NoError(t, g.PlayCard(seat, 0, false))
	}
	require.Len(t, g.Rounds, 1)
	assert.True(t, g.Rounds[0].Draw)
	assert.Equal(t, [2]int{0, 0}, g.Scores)
	assert.Equal(t, 0, g.ActiveSeat(), "drawn round keeps the previous leader")

	// Round 2: seat 0's two takes first blood and the hand
	for seat := 0; seat < NumSeats; seat++ {
		require.NoError(t, g.PlayCard(seat, 0, false))
	}

	event, found := findEventOfType(g.Events, "HAND_COMPLETED")
	require.True(t, found)
	assert.Equal(t, 0, event.(events.HandCompleted).WinnerTeam)
	assert.Equal(t, 1, g.Scores[0])
	assert.Equal(t, 2, g.HandNumber)
}

func TestLaterDrawGoesToRoundOneWinner(t *testing.T) {
	g := newTestGame()
	setHands(t, g, [NumSeats][]string{
		{"4♣", "3♦", "4♥"},
		{"5♦", "3♥", "4♠"},
		{"5♥", "6♥", "Q♥"},
		{"5♠", "6♣", "Q♣"},
	})

	// Round 1 to seat 0 (team 0); round 2 draws on the threes
	for seat := 0; seat < NumSeats; seat++ {
		require.NoError(t, g.PlayCard(seat, 0, false))
	}
	for seat := 0; seat < NumSeats; seat++ {
		require.NoError(t, g.PlayCard(seat, 0, false))
	}

	// The drawn round resolves to team 0, which also scores it and takes the hand
	event, found := findEventOfType(g.Events, "HAND_COMPLETED")
	require.True(t, found)
	assert.Equal(t, 0, event.(events.HandCompleted).WinnerTeam)
	assert.Equal(t, 2, g.Scores[0])
}

func TestGameCompletion(t *testing.T) {
	g := newTestGame()
	g.Scores = [2]int{11, 0}
	setHands(t, g, [NumSeats][]string{
		{"4♣", "3♦", "2♦"},
		{"5♦", "6♦", "Q♦"},
		{"5♥", "6♥", "Q♥"},
		{"5♣", "6♣", "Q♣"},
	})

	for seat := 0; seat < NumSeats; seat++ {
		require.NoError(t, g.PlayCard(seat, 0, false))
	}

	assert.Equal(t, GameStatusEnded, g.Status)
	assert.Equal(t, 0, g.WinnerTeam)
	assert.GreaterOrEqual(t, g.Scores[0], g.Rules.WinningScore)
	assert.Equal(t, -1, g.ActiveSeat())

	event, found := findEventOfType(g.Events, "GAME_ENDED")
	require.True(t, found)
	assert.Equal(t, 0, event.(events.GameEnded).WinnerTeam)

	// Terminal games accept no further plays
	err := g.PlayCard(1, 0, false)
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrKindAlreadyResolved))
}

func TestViewConcealsOtherHands(t *testing.T) {
	g := newTestGame()

	view := g.ViewFor(1)
	assert.Equal(t, 1, view.ViewerSeat)
	assert.Len(t, view.MyHand, 3)
	assert.False(t, view.MyTurn)

	for _, seat := range view.Seats {
		assert.Equal(t, 3, seat.CardCount)
	}

	spectator := g.ViewFor(-1)
	assert.Empty(t, spectator.MyHand)
}

func TestRegisteredHandlerSeesEveryEvent(t *testing.T) {
	g := newTestGame()

	var seen []string
	g.RegisterEventHandler(func(event events.Event) {
		seen = append(seen, event.Name())
	})

	require.NoError(t, g.PlayCard(0, 0, false))
	require.NoError(t, g.RaiseWager(1))

	assert.Equal(t, []string{"CARD_PLAYED", "WAGER_RAISED"}, seen)
}
