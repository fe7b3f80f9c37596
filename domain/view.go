package domain

import "trucosrv/cards"

// GameView is one player's view of a game. Other seats' hands are reduced to
// counts so concealed cards never leave the process.
type GameView struct {
	GameID      string
	Status      GameStatus
	ViewerSeat  int
	MyTurn      bool
	MyHand      cards.Stack
	Seats       []SeatView
	Table       [NumSeats]PlayedCard
	Scores      [2]int
	HandNumber  int
	RoundNumber int
	DealerSeat  int
	Stake       int
	WagerLevel  string
	WagerOnTeam int // team that must respond to a pending wager, NoTeam if none
	WinnerTeam  int
}

// SeatView is the public shape of a seat
type SeatView struct {
	Seat      int
	Name      string
	Team      int
	CardCount int
	IsDealer  bool
	IsActive  bool
	IsBot     bool
}

// ViewFor builds the view of the game as seen from the given seat. Passing a
// seat outside the table yields a spectator view with no hand.
func (g *Game) ViewFor(viewerSeat int) GameView {
	view := GameView{
		GameID:      g.ID,
		Status:      g.Status,
		ViewerSeat:  viewerSeat,
		Table:       g.Table,
		Scores:      g.Scores,
		HandNumber:  g.HandNumber,
		RoundNumber: g.RoundNumber,
		DealerSeat:  g.DealerSeat,
		Stake:       g.Wager.Stake,
		WagerLevel:  g.Wager.Level.String(),
		WagerOnTeam: g.Wager.RespondingTeam,
		WinnerTeam:  g.WinnerTeam,
	}

	for i := range g.Players {
		p := &g.Players[i]
		view.Seats = append(view.Seats, SeatView{
			Seat:      p.Seat,
			Name:      p.Name,
			Team:      p.Team(),
			CardCount: len(p.Hand),
			IsDealer:  p.IsDealer,
			IsActive:  p.IsActive,
			IsBot:     p.IsBot,
		})
	}

	if viewerSeat >= 0 && viewerSeat < NumSeats {
		hand := make(cards.Stack, len(g.Players[viewerSeat].Hand))
		copy(hand, g.Players[viewerSeat].Hand)
		view.MyHand = hand
		view.MyTurn = g.Players[viewerSeat].IsActive
	}

	return view
}
