package game

import (
	"log"
	"math/rand"
	"time"

	"trucosrv/bot"
	"trucosrv/domain"
	devents "trucosrv/domain/events"
)

// Handler priorities: the flow handler announces turns before bots react to
// them.
const (
	priorityFlow = 10
	priorityBot  = 20
)

// registerHandlers wires the engine's reactive handlers into the broker.
// The flow handler turns committed plays into turn announcements; the bot
// handlers drive computer-controlled seats until a human seat is reached or
// the hand ends.
func (e *Engine) registerHandlers() {
	for _, name := range []string{"CARD_PLAYED", "HAND_STARTED", "WAGER_ACCEPTED", "HAND_FOLDED"} {
		e.broker.Subscribe(name, priorityFlow, e.handleFlowEvent)
	}
	e.broker.Subscribe("PLAYER_TURN_STARTED", priorityBot, e.handleBotTurn)
	e.broker.Subscribe("WAGER_RAISED", priorityBot, e.handleBotWagerResponse)
	e.broker.Subscribe("GAME_ENDED", priorityBot, e.handleGameEnded)
}

// handleGameEnded logs the final state of a finished game
func (e *Engine) handleGameEnded(event devents.Event) {
	ended, ok := event.(devents.GameEnded)
	if !ok {
		return
	}

	err := e.loopFor(ended.GameID).SubmitWait(func() error {
		g, err := e.store.Load(ended.GameID)
		if err != nil {
			return err
		}
		log.Printf("game %s ended, winner team %d\n%s", g.ID, g.WinnerTeam, g.Dump())
		return nil
	})
	if err != nil {
		log.Printf("game ended handler: %v", err)
	}
}

// handleFlowEvent announces whose turn it is after any event that can move
// the turn. Announcements are computed from committed state, so a duplicate
// trigger only re-announces the same seat and is absorbed by the bot
// handler's revalidation.
func (e *Engine) handleFlowEvent(event devents.Event) {
	gameID := devents.ExtractGameID(event)
	if gameID == "" {
		return
	}

	var seat int
	err := e.loopFor(gameID).SubmitWait(func() error {
		g, err := e.store.Load(gameID)
		if err != nil {
			return err
		}
		if g.Status != domain.GameStatusActive || g.Wager.ResponsePending() {
			seat = -1
			return nil
		}
		seat = g.ActiveSeat()
		return nil
	})
	if err != nil {
		log.Printf("flow handler: %v", err)
		return
	}
	if seat < 0 {
		return
	}

	e.broker.Publish(devents.PlayerTurnStarted{
		GameID: gameID,
		Seat:   seat,
		At:     time.Now(),
	})
}

// handleBotTurn lets the bot act when the announced seat is computer
// controlled. The thinking delay suspends outside the game loop and honors
// engine shutdown; the state is revalidated before mutating, so stale
// announcements are dropped silently.
func (e *Engine) handleBotTurn(event devents.Event) {
	turn, ok := event.(devents.PlayerTurnStarted)
	if !ok {
		return
	}

	isBot := false
	err := e.loopFor(turn.GameID).SubmitWait(func() error {
		g, err := e.store.Load(turn.GameID)
		if err != nil {
			return err
		}
		player, err := g.PlayerAt(turn.Seat)
		if err != nil {
			return err
		}
		isBot = player.IsBot
		return nil
	})
	if err != nil {
		log.Printf("bot turn handler: %v", err)
		return
	}
	if !isBot {
		return
	}

	if !e.think() {
		return
	}

	err = e.withGame(turn.GameID, func(g *domain.Game) error {
		if g.Status != domain.GameStatusActive || g.ActiveSeat() != turn.Seat || g.Wager.ResponsePending() {
			return nil // stale announcement
		}

		if opener, ok := e.brain.(interface {
			ShouldOpenWager(*domain.Game, int) bool
		}); ok && opener.ShouldOpenWager(g, turn.Seat) {
			return g.RaiseWager(turn.Seat)
		}

		cardIndex, fold := e.brain.SelectCard(g, turn.Seat)
		return g.PlayCard(turn.Seat, cardIndex, fold)
	})
	if err != nil {
		log.Printf("bot play failed on game %s seat %d: %v", turn.GameID, turn.Seat, err)
	}
}

// handleBotWagerResponse answers a call when the responding team is fully
// computer controlled. The lowest bot seat speaks for the team; a team with
// a human seat is left to respond through the transport.
func (e *Engine) handleBotWagerResponse(event devents.Event) {
	raised, ok := event.(devents.WagerRaised)
	if !ok {
		return
	}

	responder := -1
	err := e.loopFor(raised.GameID).SubmitWait(func() error {
		g, err := e.store.Load(raised.GameID)
		if err != nil {
			return err
		}
		if g.Status != domain.GameStatusActive || !g.Wager.ResponsePending() {
			return nil
		}
		team := g.Wager.RespondingTeam
		for seat := team; seat < domain.NumSeats; seat += 2 {
			if !g.Players[seat].IsBot {
				return nil // a human decides for this team
			}
		}
		responder = team
		return nil
	})
	if err != nil {
		log.Printf("bot wager handler: %v", err)
		return
	}
	if responder < 0 {
		return
	}

	if !e.think() {
		return
	}

	err = e.withGame(raised.GameID, func(g *domain.Game) error {
		if g.Status != domain.GameStatusActive || !g.Wager.ResponsePending() {
			return nil // already answered
		}
		if g.Wager.RespondingTeam != domain.TeamOfSeat(responder) {
			return nil
		}

		switch e.brain.DecideWager(g, responder, g.Wager.Stake) {
		case bot.WagerRaise:
			if g.CanRaiseWager(responder) == nil {
				return g.RaiseWager(responder)
			}
			return g.AcceptWager(responder)
		case bot.WagerSurrender:
			return g.SurrenderHand(responder)
		default:
			return g.AcceptWager(responder)
		}
	})
	if err != nil {
		log.Printf("bot wager response failed on game %s: %v", raised.GameID, err)
	}
}

// think pauses for the configured bot delay. Returns false when the engine
// shut down during the pause.
func (e *Engine) think() bool {
	if e.rules.BotThinkMax <= 0 {
		return e.ctx.Err() == nil
	}

	delay := e.rules.BotThinkMin
	if spread := e.rules.BotThinkMax - e.rules.BotThinkMin; spread > 0 {
		delay += time.Duration(rand.Int63n(int64(spread)))
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-e.ctx.Done():
		return false
	}
}
