package domain

import "trucosrv/cards"

// NumSeats is the fixed table size. Seats 0 and 2 form one team, 1 and 3 the
// other.
const NumSeats = 4

// Player represents a seat at the truco table
type Player struct {
	Seat     int
	Name     string
	Hand     cards.Stack
	IsDealer bool
	IsActive bool // true while it is this seat's turn
	IsBot    bool
}

// NewPlayer creates a player for the given seat
func NewPlayer(seat int, name string, isBot bool) Player {
	return Player{
		Seat:  seat,
		Name:  name,
		Hand:  make(cards.Stack, 0, 3),
		IsBot: isBot,
	}
}

// Team returns the player's team (0 or 1)
func (p *Player) Team() int {
	return TeamOfSeat(p.Seat)
}

// ResetForNewHand clears round-scoped player state
func (p *Player) ResetForNewHand() {
	p.Hand = p.Hand[:0]
	p.IsDealer = false
	p.IsActive = false
}

// TeamOfSeat returns the team a seat belongs to
func TeamOfSeat(seat int) int {
	return seat % 2
}

// NextSeat returns the seat acting after the given one, clockwise
func NextSeat(seat int) int {
	return (seat + 1) % NumSeats
}
