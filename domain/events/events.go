package events

import (
	"time"

	"trucosrv/cards"
)

// Event is the interface that all domain events must implement.
type Event interface {
	Name() string // Returns a unique name for the event type
}

// Game lifecycle events

type GameStarted struct {
	GameID     string
	PlayerIDs  []string
	DealerSeat int
	At         time.Time
}

func (g GameStarted) Name() string { return "GAME_STARTED" }

type GameEnded struct {
	GameID      string
	WinnerTeam  int
	FinalScores [2]int
	At          time.Time
}

func (g GameEnded) Name() string { return "GAME_ENDED" }

// Hand lifecycle events

type HandStarted struct {
	GameID     string
	HandNumber int
	DealerSeat int
	FirstSeat  int
	Stake      int
	At         time.Time
}

func (h HandStarted) Name() string { return "HAND_STARTED" }

type HandCompleted struct {
	GameID      string
	HandNumber  int
	WinnerTeam  int
	PointsWon   int
	Surrendered bool
	At          time.Time
}

func (h HandCompleted) Name() string { return "HAND_COMPLETED" }

// Round events

type RoundStarted struct {
	GameID      string
	RoundNumber int
	FirstSeat   int
	At          time.Time
}

func (r RoundStarted) Name() string { return "ROUND_STARTED" }

type RoundCompleted struct {
	GameID      string
	RoundNumber int
	WinnerTeam  int // -1 on a draw
	Draw        bool
	At          time.Time
}

func (r RoundCompleted) Name() string { return "ROUND_COMPLETED" }

// Turn and play events

type CardPlayed struct {
	GameID string
	Seat   int
	Card   cards.Card
	Folded bool
	At     time.Time
}

func (c CardPlayed) Name() string { return "CARD_PLAYED" }

type PlayerTurnStarted struct {
	GameID string
	Seat   int
	At     time.Time
}

func (p PlayerTurnStarted) Name() string { return "PLAYER_TURN_STARTED" }

// Wager events

type WagerRaised struct {
	GameID string
	Seat   int
	Team   int
	Stake  int
	At     time.Time
}

func (w WagerRaised) Name() string { return "WAGER_RAISED" }

type WagerAccepted struct {
	GameID string
	Seat   int
	Team   int
	Stake  int
	At     time.Time
}

func (w WagerAccepted) Name() string { return "WAGER_ACCEPTED" }

// HandFolded is emitted when a team surrenders the whole hand to a wager.
type HandFolded struct {
	GameID     string
	Seat       int
	Team       int
	WinnerTeam int
	PointsWon  int
	At         time.Time
}

func (h HandFolded) Name() string { return "HAND_FOLDED" }
