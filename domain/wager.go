package domain

// WagerLevel is a position on the stake ladder. Levels only move forward
// within a hand, so the stake is monotonically non-decreasing.
type WagerLevel int

const (
	WagerNone   WagerLevel = iota // unraised hand
	WagerFour                     // truco called
	WagerEight                    // first raise
	WagerTen                      // second raise
	WagerTwelve                   // third raise, terminal
)

func (l WagerLevel) String() string {
	switch l {
	case WagerNone:
		return "none"
	case WagerFour:
		return "truco"
	case WagerEight:
		return "eight"
	case WagerTen:
		return "ten"
	case WagerTwelve:
		return "twelve"
	}
	return "unknown"
}

// NoTeam marks the absence of a team in wager bookkeeping
const NoTeam = -1

// Wager is the betting state of the current hand
type Wager struct {
	Level           WagerLevel
	Stake           int
	LastCallerTeam  int  // team that made the last call/raise, NoTeam if none
	RespondingTeam  int  // team that must respond to a pending call, NoTeam if none
	RaisingDisabled bool // set by the last-hand rule
	CallingDisabled bool // set when both teams are at last hand
}

// ResponsePending reports whether a call is awaiting the opposing team
func (w Wager) ResponsePending() bool {
	return w.RespondingTeam != NoTeam
}

// CanRaiseWager checks whether the seat may call or raise right now. It
// returns nil when allowed, or the RuleError the mutation would fail with.
func (g *Game) CanRaiseWager(seat int) error {
	if g.Status != GameStatusActive {
		return newError(ErrKindAlreadyResolved, "game %s is not active", g.ID)
	}
	if seat < 0 || seat >= NumSeats {
		return newError(ErrKindNotFound, "seat %d does not exist", seat)
	}
	if g.Wager.CallingDisabled || g.Wager.RaisingDisabled {
		return newError(ErrKindRuleViolation, "wager is locked for this hand")
	}
	if g.Wager.Level >= g.Rules.MaxWagerLevel() {
		return newError(ErrKindRuleViolation, "stake is already at its maximum")
	}
	team := TeamOfSeat(seat)
	if g.Wager.LastCallerTeam == team {
		return newError(ErrKindRuleViolation, "team %d raised last and must wait for a response", team)
	}
	if g.Wager.ResponsePending() && g.Wager.RespondingTeam != team {
		return newError(ErrKindRuleViolation, "team %d is not the one responding", team)
	}
	return nil
}

// RaiseWager moves the wager one level up the ladder on behalf of the seat's
// team and hands the response over to the opponents.
func (g *Game) RaiseWager(seat int) error {
	if err := g.CanRaiseWager(seat); err != nil {
		return err
	}

	team := TeamOfSeat(seat)
	g.Wager.Level++
	g.Wager.Stake = g.Rules.StakeAt(g.Wager.Level)
	g.Wager.LastCallerTeam = team
	g.Wager.RespondingTeam = 1 - team

	g.emitEvent(eventWagerRaised(g, seat))
	return nil
}

// AcceptWager confirms the current stake. The accepting team gains the right
// to raise next, since the caller's team is now the last caller.
func (g *Game) AcceptWager(seat int) error {
	if g.Status != GameStatusActive {
		return newError(ErrKindAlreadyResolved, "game %s is not active", g.ID)
	}
	if seat < 0 || seat >= NumSeats {
		return newError(ErrKindNotFound, "seat %d does not exist", seat)
	}
	if !g.Wager.ResponsePending() {
		return newError(ErrKindRuleViolation, "no wager is awaiting a response")
	}
	team := TeamOfSeat(seat)
	if g.Wager.RespondingTeam != team {
		return newError(ErrKindRuleViolation, "team %d is not the one responding", team)
	}

	g.Wager.RespondingTeam = NoTeam

	g.emitEvent(eventWagerAccepted(g, seat))
	return nil
}

// SurrenderHand gives up the current hand. The opposing team is awarded the
// current stake (at least one point) and a fresh hand is dealt.
func (g *Game) SurrenderHand(seat int) error {
	if g.Status != GameStatusActive {
		return newError(ErrKindAlreadyResolved, "game %s is not active", g.ID)
	}
	if seat < 0 || seat >= NumSeats {
		return newError(ErrKindNotFound, "seat %d does not exist", seat)
	}
	if g.Wager.ResponsePending() && g.Wager.RespondingTeam != TeamOfSeat(seat) {
		return newError(ErrKindRuleViolation, "team %d is not the one responding", TeamOfSeat(seat))
	}

	team := TeamOfSeat(seat)
	winner := 1 - team
	points := g.Wager.Stake
	if points < 1 {
		points = 1
	}
	g.Scores[winner] += points

	g.emitEvent(eventHandFolded(g, seat, winner, points))
	g.finishHand(winner, points, true)
	return nil
}

// applyLastHandRule forces the wager state when one or both teams are within
// one winning hand of the game. Re-applied at the start of every hand, and
// idempotent for an unchanged score state.
func (g *Game) applyLastHandRule() {
	atLast := [2]bool{
		g.Scores[0] >= g.Rules.LastHandScore(),
		g.Scores[1] >= g.Rules.LastHandScore(),
	}

	switch {
	case atLast[0] && atLast[1]:
		// Plain, unraisable hand
		g.Wager.Level = WagerNone
		g.Wager.Stake = g.Rules.StakeAt(WagerNone)
		g.Wager.CallingDisabled = true
		g.Wager.RaisingDisabled = true
	case atLast[0] || atLast[1]:
		// Forced truco stake, no further raising
		g.Wager.Level = WagerFour
		g.Wager.Stake = g.Rules.StakeAt(WagerFour)
		g.Wager.RaisingDisabled = true
	}
}
