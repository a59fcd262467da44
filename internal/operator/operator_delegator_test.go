package operator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerview/dashboard-server/internal/storage"
)

type noopAction struct{}

func (noopAction) Perform(_ context.Context, _ *storage.Writer) error {
	return nil
}

func TestDelegatorProcessAfterStop(t *testing.T) {
	delegator := NewOperatorDelegator(nil, 2)
	delegator.Start()
	delegator.Stop()

	err := delegator.Process(context.Background(), noopAction{})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestDelegatorProcessRacingStop(t *testing.T) {
	delegator := NewOperatorDelegator(nil, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Hammer Process from many goroutines while Stop runs. Every call must
	// return cleanly; a send on the closed queue would panic.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := delegator.Process(ctx, noopAction{})
			if !errors.Is(err, ErrStopped) && !errors.Is(err, context.Canceled) {
				t.Errorf("unexpected Process error: %v", err)
			}
		}()
	}
	delegator.Stop()
	cancel()
	wg.Wait()
}

func TestDelegatorStopIsIdempotent(t *testing.T) {
	delegator := NewOperatorDelegator(nil, 1)
	delegator.Start()

	delegator.Stop()
	delegator.Stop()
}

func TestDelegatorProcessHonorsContext(t *testing.T) {
	// Workers never started, so the buffered enqueue succeeds and the
	// response only arrives via ctx cancellation.
	delegator := NewOperatorDelegator(nil, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := delegator.Process(ctx, noopAction{})
	assert.ErrorIs(t, err, context.Canceled)
}
