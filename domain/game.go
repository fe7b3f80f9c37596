package domain

import (
	"time"

	"github.com/sanity-io/litter"

	"trucosrv/cards"
	"trucosrv/domain/events"
)

// GameStatus is the lifecycle state of a game
type GameStatus string

const (
	GameStatusActive GameStatus = "active"
	GameStatusEnded  GameStatus = "ended"
)

// PlayedCard is one seat's slot on the table for the current round. It stays
// unset until the seat plays, and is cleared at round boundaries.
type PlayedCard struct {
	Seat   int
	Card   cards.Card
	Played bool
}

// EventHandler is a callback notified of every event the game emits
type EventHandler func(event events.Event)

// Game is the aggregate root for one truco match: four seated players in two
// teams, the table slots of the current round, the wager state and the
// cumulative scores. All mutation goes through its methods; every validation
// failure happens before any state change.
type Game struct {
	ID        string
	Status    GameStatus
	Rules     GameRules
	Strengths cards.StrengthTable

	Players [NumSeats]Player
	Table   [NumSeats]PlayedCard
	Wager   Wager
	Rounds  []RoundResult
	Deck    cards.Stack

	HandNumber  int
	RoundNumber int
	RoundLeader int
	DealerSeat  int
	FirstSeat   int
	Scores      [2]int
	WinnerTeam  int

	// events
	Events        []events.Event
	eventHandlers []EventHandler
}

// NewGame creates a game with the four given players seated. Call StartGame
// to deal the first hand.
func NewGame(id string, rules GameRules, strengths cards.StrengthTable, players [NumSeats]Player) *Game {
	g := &Game{
		ID:         id,
		Status:     GameStatusActive,
		Rules:      rules,
		Strengths:  strengths,
		Players:    players,
		WinnerTeam: NoTeam,
	}
	g.Wager.LastCallerTeam = NoTeam
	g.Wager.RespondingTeam = NoTeam
	return g
}

// RegisterEventHandler registers a callback invoked for every emitted event
func (g *Game) RegisterEventHandler(handler EventHandler) {
	g.eventHandlers = append(g.eventHandlers, handler)
}

// emitEvent appends the event to the game's log and notifies all handlers
func (g *Game) emitEvent(event events.Event) {
	g.Events = append(g.Events, event)

	for _, handler := range g.eventHandlers {
		handler(event)
	}
}

// StartGame assigns the dealer and deals the first hand
func (g *Game) StartGame(dealerSeat int) {
	playerIDs := make([]string, NumSeats)
	for i, p := range g.Players {
		playerIDs[i] = p.Name
	}

	g.emitEvent(events.GameStarted{
		GameID:     g.ID,
		PlayerIDs:  playerIDs,
		DealerSeat: dealerSeat,
		At:         time.Now(),
	})

	g.startHand(dealerSeat)
}

// ActiveSeat returns the seat whose turn it is, or -1 while the hand is
// being resolved or the game has ended.
func (g *Game) ActiveSeat() int {
	for i := range g.Players {
		if g.Players[i].IsActive {
			return i
		}
	}
	return -1
}

// PlayerAt returns the player at the given seat
func (g *Game) PlayerAt(seat int) (*Player, error) {
	if seat < 0 || seat >= NumSeats {
		return nil, newError(ErrKindNotFound, "seat %d does not exist", seat)
	}
	return &g.Players[seat], nil
}

// PlayCard plays (or folds) the card at cardIndex for the seat, advances the
// turn, and resolves the round when all four slots are filled. Invalid
// requests are rejected before any mutation.
func (g *Game) PlayCard(seat int, cardIndex int, fold bool) error {
	if g.Status != GameStatusActive {
		return newError(ErrKindAlreadyResolved, "game %s is not active", g.ID)
	}
	if seat < 0 || seat >= NumSeats {
		return newError(ErrKindNotFound, "seat %d does not exist", seat)
	}
	if g.Wager.ResponsePending() {
		return newError(ErrKindRuleViolation, "a wager is awaiting a response")
	}
	player := &g.Players[seat]
	if !player.IsActive {
		return newError(ErrKindOutOfTurn, "seat %d is not the active seat", seat)
	}
	if cardIndex < 0 || cardIndex >= len(player.Hand) {
		return newError(ErrKindInvalidIndex, "card index %d out of range for a hand of %d", cardIndex, len(player.Hand))
	}

	card := player.Hand[cardIndex]
	if fold {
		card = cards.Folded()
	}
	player.Hand = player.Hand.RemoveAt(cardIndex)
	g.Table[seat] = PlayedCard{Seat: seat, Card: card, Played: true}

	player.IsActive = false

	g.emitEvent(events.CardPlayed{
		GameID: g.ID,
		Seat:   seat,
		Card:   card,
		Folded: fold,
		At:     time.Now(),
	})

	if g.isRoundComplete() {
		g.resolveRound()
		return nil
	}

	g.Players[NextSeat(seat)].IsActive = true
	return nil
}

// ForceNewHand abandons the hand in progress and redeals without rotating
// the dealer. Scores and wager locks are preserved.
func (g *Game) ForceNewHand() error {
	if g.Status != GameStatusActive {
		return newError(ErrKindAlreadyResolved, "game %s is not active", g.ID)
	}
	g.startHand(g.DealerSeat)
	return nil
}

// Dump renders the full game state for debug logs
func (g *Game) Dump() string {
	return litter.Sdump(g)
}

func (g *Game) isRoundComplete() bool {
	for _, slot := range g.Table {
		if !slot.Played {
			return false
		}
	}
	return true
}

// resolveRound scores the finished round, then either opens the next round,
// completes the hand, or ends the game. Runs as part of the play that filled
// the last slot, so readers never observe a full table.
func (g *Game) resolveRound() {
	winnerSeat, draw := RoundWinner(g.Table[:], g.Strengths)

	result := RoundResult{
		Number:     g.RoundNumber,
		WinnerSeat: winnerSeat,
		WinnerTeam: NoTeam,
		Draw:       draw,
	}

	if !draw {
		result.WinnerTeam = TeamOfSeat(winnerSeat)
	} else if team, resolved := ResolveDraw(g.Rounds, g.RoundNumber); resolved {
		result.WinnerTeam = team
	}

	if result.WinnerTeam != NoTeam {
		g.Scores[result.WinnerTeam] += g.Wager.Stake
	}

	g.Rounds = append(g.Rounds, result)
	for i := range g.Table {
		g.Table[i] = PlayedCard{}
	}

	g.emitEvent(events.RoundCompleted{
		GameID:      g.ID,
		RoundNumber: result.Number,
		WinnerTeam:  result.WinnerTeam,
		Draw:        draw,
		At:          time.Now(),
	})

	if team, done := HandOutcome(g.Rounds, g.DealerSeat); done {
		g.finishHand(team, g.Wager.Stake, false)
		return
	}

	if g.checkGameEnd() {
		return
	}

	g.RoundNumber++
	if !draw {
		g.RoundLeader = winnerSeat
	}
	g.Players[g.RoundLeader].IsActive = true

	g.emitEvent(events.RoundStarted{
		GameID:      g.ID,
		RoundNumber: g.RoundNumber,
		FirstSeat:   g.RoundLeader,
		At:          time.Now(),
	})
}

// finishHand emits completion, checks for game end, and deals the next hand
// with the dealer rotated one seat.
func (g *Game) finishHand(winnerTeam int, points int, surrendered bool) {
	for i := range g.Players {
		g.Players[i].IsActive = false
	}

	g.emitEvent(events.HandCompleted{
		GameID:      g.ID,
		HandNumber:  g.HandNumber,
		WinnerTeam:  winnerTeam,
		PointsWon:   points,
		Surrendered: surrendered,
		At:          time.Now(),
	})

	if g.checkGameEnd() {
		return
	}

	g.startHand(NextSeat(g.DealerSeat))
}

// startHand clears all round-scoped state, re-applies the last-hand wager
// rule and deals three fresh cards to every seat. The seat left of the
// dealer acts first.
func (g *Game) startHand(dealerSeat int) {
	g.HandNumber++
	g.RoundNumber = 1
	g.Rounds = nil
	for i := range g.Table {
		g.Table[i] = PlayedCard{}
	}

	g.Wager = Wager{
		Level:          WagerNone,
		Stake:          g.Rules.OpeningStake,
		LastCallerTeam: NoTeam,
		RespondingTeam: NoTeam,
	}
	g.applyLastHandRule()

	g.DealerSeat = dealerSeat
	g.FirstSeat = NextSeat(dealerSeat)
	g.RoundLeader = g.FirstSeat

	g.Deck = cards.ShuffleDeck(cards.NewDeck40())
	for i := range g.Players {
		g.Players[i].ResetForNewHand()
		var hand cards.Stack
		hand, g.Deck = cards.DealCards(g.Deck, 3)
		g.Players[i].Hand = hand
		g.Players[i].IsDealer = i == dealerSeat
		g.Players[i].IsActive = i == g.FirstSeat
	}

	g.emitEvent(events.HandStarted{
		GameID:     g.ID,
		HandNumber: g.HandNumber,
		DealerSeat: g.DealerSeat,
		FirstSeat:  g.FirstSeat,
		Stake:      g.Wager.Stake,
		At:         time.Now(),
	})

	g.emitEvent(events.RoundStarted{
		GameID:      g.ID,
		RoundNumber: g.RoundNumber,
		FirstSeat:   g.FirstSeat,
		At:          time.Now(),
	})
}

// checkGameEnd transitions to GameStatusEnded once a team's cumulative score
// reaches the winning threshold. If both teams are at or above it, the
// higher score wins.
func (g *Game) checkGameEnd() bool {
	reached0 := g.Scores[0] >= g.Rules.WinningScore
	reached1 := g.Scores[1] >= g.Rules.WinningScore
	if !reached0 && !reached1 {
		return false
	}

	winner := 0
	if reached1 && (!reached0 || g.Scores[1] > g.Scores[0]) {
		winner = 1
	}

	g.Status = GameStatusEnded
	g.WinnerTeam = winner
	for i := range g.Players {
		g.Players[i].IsActive = false
	}

	g.emitEvent(events.GameEnded{
		GameID:      g.ID,
		WinnerTeam:  winner,
		FinalScores: g.Scores,
		At:          time.Now(),
	})

	return true
}

// event constructors shared with wager.go

func eventWagerRaised(g *Game, seat int) events.WagerRaised {
	return events.WagerRaised{
		GameID: g.ID,
		Seat:   seat,
		Team:   TeamOfSeat(seat),
		Stake:  g.Wager.Stake,
		At:     time.Now(),
	}
}

func eventWagerAccepted(g *Game, seat int) events.WagerAccepted {
	return events.WagerAccepted{
		GameID: g.ID,
		Seat:   seat,
		Team:   TeamOfSeat(seat),
		Stake:  g.Wager.Stake,
		At:     time.Now(),
	}
}

func eventHandFolded(g *Game, seat int, winner int, points int) events.HandFolded {
	return events.HandFolded{
		GameID:     g.ID,
		Seat:       seat,
		Team:       TeamOfSeat(seat),
		WinnerTeam: winner,
		PointsWon:  points,
		At:         time.Now(),
	}
}
