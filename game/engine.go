package game

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"trucosrv/bot"
	"trucosrv/cards"
	"trucosrv/domain"
	devents "trucosrv/domain/events"
	"trucosrv/events"
	"trucosrv/store"
)

// Default names for the computer-controlled seats
var botNames = []string{"Tonho", "Maria", "Zezinho"}

// Engine owns the exposed game operations. Each game's state is mutated only
// on that game's Loop; emitted events are persisted to the event log and
// fanned out through the broker off the request path.
type Engine struct {
	store     store.GameStore
	broker    *events.Broker
	eventLog  events.EventLog
	brain     bot.Brain
	rules     domain.GameRules
	strengths cards.StrengthTable

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	loops map[string]*Loop
}

// NewEngine wires an engine and registers its flow and bot handlers on the
// broker.
func NewEngine(
	gameStore store.GameStore,
	broker *events.Broker,
	eventLog events.EventLog,
	brain bot.Brain,
	rules domain.GameRules,
	strengths cards.StrengthTable,
) *Engine {
	ctx, cancel := context.WithCancel(context.Background())

	e := &Engine{
		store:     gameStore,
		broker:    broker,
		eventLog:  eventLog,
		brain:     brain,
		rules:     rules,
		strengths: strengths,
		ctx:       ctx,
		cancel:    cancel,
		loops:     make(map[string]*Loop),
	}

	e.registerHandlers()
	return e
}

// Close tears down all game loops and waits for in-flight dispatches
func (e *Engine) Close() {
	e.cancel()

	e.mu.Lock()
	loops := make([]*Loop, 0, len(e.loops))
	for _, l := range e.loops {
		loops = append(loops, l)
	}
	e.mu.Unlock()

	for _, l := range loops {
		l.Stop()
	}
	e.wg.Wait()
}

// CreateGame starts a new game: the named human at seat 0, bots at the other
// three seats, dealer at seat 3 so the creator acts first.
func (e *Engine) CreateGame(playerName string) (domain.GameView, error) {
	id := uuid.NewString()

	var players [domain.NumSeats]domain.Player
	players[0] = domain.NewPlayer(0, playerName, false)
	for i := 1; i < domain.NumSeats; i++ {
		players[i] = domain.NewPlayer(i, botNames[i-1], true)
	}

	var view domain.GameView
	err := e.loopFor(id).SubmitWait(func() error {
		g := domain.NewGame(id, e.rules, e.strengths, players)
		before := len(g.Events)
		g.StartGame(domain.NumSeats - 1)

		if err := e.store.Save(g); err != nil {
			return err
		}
		e.dispatch(g.Events[before:])
		view = g.ViewFor(0)
		return nil
	})
	return view, err
}

// PlayCard plays or folds a card for the seat and returns that seat's view
// of the committed state.
func (e *Engine) PlayCard(gameID string, seat int, cardIndex int, fold bool) (domain.GameView, error) {
	var view domain.GameView
	err := e.withGame(gameID, func(g *domain.Game) error {
		if err := g.PlayCard(seat, cardIndex, fold); err != nil {
			return err
		}
		view = g.ViewFor(seat)
		return nil
	})
	return view, err
}

// RaiseWager calls or raises the wager on behalf of the seat's team
func (e *Engine) RaiseWager(gameID string, seat int) error {
	return e.withGame(gameID, func(g *domain.Game) error {
		return g.RaiseWager(seat)
	})
}

// AcceptWager accepts the pending call at the current stake
func (e *Engine) AcceptWager(gameID string, seat int) error {
	return e.withGame(gameID, func(g *domain.Game) error {
		return g.AcceptWager(seat)
	})
}

// SurrenderHand concedes the hand to the opposing team
func (e *Engine) SurrenderHand(gameID string, seat int) error {
	return e.withGame(gameID, func(g *domain.Game) error {
		return g.SurrenderHand(seat)
	})
}

// StartNewHand abandons the hand in progress and redeals
func (e *Engine) StartNewHand(gameID string) error {
	return e.withGame(gameID, func(g *domain.Game) error {
		return g.ForceNewHand()
	})
}

// View returns the seat's view of the committed game state. It runs on the
// game's loop, so it never observes a half-applied mutation.
func (e *Engine) View(gameID string, seat int) (domain.GameView, error) {
	var view domain.GameView
	err := e.loopFor(gameID).SubmitWait(func() error {
		g, err := e.store.Load(gameID)
		if err != nil {
			return asDomainErr(err, gameID)
		}
		view = g.ViewFor(seat)
		return nil
	})
	return view, err
}

// GameSummary is lobby-level metadata about a game
type GameSummary struct {
	ID         string
	Status     domain.GameStatus
	HandNumber int
	Scores     [2]int
}

// ListGames returns a committed snapshot of every stored game. Each summary
// is read on its game's loop.
func (e *Engine) ListGames() []GameSummary {
	var summaries []GameSummary
	for _, g := range e.store.List() {
		id := g.ID
		var summary GameSummary
		err := e.loopFor(id).SubmitWait(func() error {
			loaded, err := e.store.Load(id)
			if err != nil {
				return err
			}
			summary = GameSummary{
				ID:         loaded.ID,
				Status:     loaded.Status,
				HandNumber: loaded.HandNumber,
				Scores:     loaded.Scores,
			}
			return nil
		})
		if err != nil {
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// withGame runs one mutation on the game's loop: load, mutate, save, then
// hand the newly emitted events to the dispatcher. A failed mutation commits
// nothing and dispatches nothing.
func (e *Engine) withGame(gameID string, fn func(g *domain.Game) error) error {
	return e.loopFor(gameID).SubmitWait(func() error {
		g, err := e.store.Load(gameID)
		if err != nil {
			return asDomainErr(err, gameID)
		}

		before := len(g.Events)
		if err := fn(g); err != nil {
			return err
		}
		if err := e.store.Save(g); err != nil {
			return err
		}

		e.dispatch(g.Events[before:])
		return nil
	})
}

// dispatch records the batch in the event log and publishes it to the broker
// asynchronously, keeping handlers off the request path. Events within one
// batch are published in emission order.
func (e *Engine) dispatch(batch []devents.Event) {
	for _, event := range batch {
		if err := e.eventLog.Append(event); err != nil {
			log.Printf("failed to append %s to event log: %v", event.Name(), err)
		}
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		for _, event := range batch {
			select {
			case <-e.ctx.Done():
				return
			default:
			}
			e.broker.Publish(event)
		}
	}()
}

func (e *Engine) loopFor(gameID string) *Loop {
	e.mu.Lock()
	defer e.mu.Unlock()

	if l, ok := e.loops[gameID]; ok {
		return l
	}
	l := NewLoop(e.ctx, gameID)
	e.loops[gameID] = l
	return l
}

// asDomainErr converts store errors into the structured failures callers
// match on.
func asDomainErr(err error, gameID string) error {
	if errors.Is(err, store.ErrNotFound) {
		return &domain.RuleError{Kind: domain.ErrKindNotFound, Message: "game " + gameID + " not found"}
	}
	return err
}
