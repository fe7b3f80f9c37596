package game

import (
	"context"
	"errors"
	"sync"
)

// ErrLoopStopped is returned when an action is submitted to a stopped loop
var ErrLoopStopped = errors.New("game loop stopped")

type loopAction struct {
	fn    func() error
	reply chan error
}

// Loop serializes all mutations of one game. Every action — a human request
// or a bot reaction — runs on the loop's single goroutine, so at most one
// mutation per game is ever in flight.
type Loop struct {
	gameID  string
	actions chan loopAction
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewLoop creates and starts a loop for the given game
func NewLoop(parent context.Context, gameID string) *Loop {
	ctx, cancel := context.WithCancel(parent)

	loop := &Loop{
		gameID:  gameID,
		actions: make(chan loopAction, 64),
		ctx:     ctx,
		cancel:  cancel,
	}

	loop.wg.Add(1)
	go func() {
		defer loop.wg.Done()
		loop.run()
	}()

	return loop
}

func (l *Loop) run() {
	for {
		select {
		case <-l.ctx.Done():
			return
		case action := <-l.actions:
			err := action.fn()
			if action.reply != nil {
				action.reply <- err
			}
		}
	}
}

// Submit queues an action without waiting for it to run
func (l *Loop) Submit(fn func() error) error {
	select {
	case l.actions <- loopAction{fn: fn}:
		return nil
	case <-l.ctx.Done():
		return ErrLoopStopped
	}
}

// SubmitWait queues an action and blocks until it has run, returning its
// error. This is the request path: the caller observes the committed result.
func (l *Loop) SubmitWait(fn func() error) error {
	reply := make(chan error, 1)

	select {
	case l.actions <- loopAction{fn: fn, reply: reply}:
	case <-l.ctx.Done():
		return ErrLoopStopped
	}

	select {
	case err := <-reply:
		return err
	case <-l.ctx.Done():
		return ErrLoopStopped
	}
}

// Stop cancels the loop and waits for the in-flight action to finish
func (l *Loop) Stop() {
	l.cancel()
	l.wg.Wait()
}

// Done exposes the loop's cancellation, honored by suspension points such as
// the bot's thinking delay.
func (l *Loop) Done() <-chan struct{} {
	return l.ctx.Done()
}
