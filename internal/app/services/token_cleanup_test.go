package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeTokenCleaner struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeTokenCleaner) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return 1, nil
}

func (f *fakeTokenCleaner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestStartTokenCleanupInvokesStore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleaner := &fakeTokenCleaner{}
	StartTokenCleanup(ctx, cleaner, 2*time.Millisecond, zerolog.Nop())

	deadline := time.Now().Add(2 * time.Second)
	for cleaner.callCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("cleanup was never invoked")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStartTokenCleanupStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cleaner := &fakeTokenCleaner{}
	StartTokenCleanup(ctx, cleaner, 2*time.Millisecond, zerolog.Nop())
	cancel()

	// Give the loop time to observe the cancellation, then confirm the
	// call count has settled.
	time.Sleep(20 * time.Millisecond)
	settled := cleaner.callCount()
	time.Sleep(20 * time.Millisecond)
	if cleaner.callCount() != settled {
		t.Error("cleanup kept running after context cancellation")
	}
}
