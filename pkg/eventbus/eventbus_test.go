package eventbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go.uber.org/zap"
)

type testEvent struct{ name string }

func (e testEvent) Name() string { return e.name }

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := New(zap.NewNop())

	var mu sync.Mutex
	got := 0
	var wg sync.WaitGroup
	wg.Add(2)

	handler := func(ctx context.Context, ev Event) error {
		mu.Lock()
		got++
		mu.Unlock()
		wg.Done()
		return nil
	}
	bus.Subscribe("request.moved", handler)
	bus.Subscribe("request.moved", handler)
	bus.Subscribe("other.event", func(ctx context.Context, ev Event) error {
		t.Error("listener for a different event must not fire")
		return nil
	})

	bus.Publish(context.Background(), testEvent{name: "request.moved"})

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for listeners")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, got)
}
