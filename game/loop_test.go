package game

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopSerializesActions(t *testing.T) {
	loop := NewLoop(context.Background(), "g1")
	defer loop.Stop()

	// Many goroutines hammer one counter through the loop; no mutation ever
	// overlaps, so no increment is lost.
	const workers = 20
	const perWorker = 50

	counter := 0
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				err := loop.SubmitWait(func() error {
					counter++
					return nil
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	final := 0
	require.NoError(t, loop.SubmitWait(func() error {
		final = counter
		return nil
	}))
	assert.Equal(t, workers*perWorker, final)
}

func TestSubmitWaitPropagatesError(t *testing.T) {
	loop := NewLoop(context.Background(), "g1")
	defer loop.Stop()

	boom := errors.New("boom")
	err := loop.SubmitWait(func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestStoppedLoopRejectsActions(t *testing.T) {
	loop := NewLoop(context.Background(), "g1")
	loop.Stop()

	err := loop.SubmitWait(func() error { return nil })
	assert.ErrorIs(t, err, ErrLoopStopped)
}

func TestLoopStopsWithParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(ctx, "g1")

	cancel()
	loop.wg.Wait()

	err := loop.SubmitWait(func() error { return nil })
	assert.ErrorIs(t, err, ErrLoopStopped)
}
