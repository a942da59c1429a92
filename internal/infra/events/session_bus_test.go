package events

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) service.SessionEventBus {
	t.Helper()

	bus := NewSessionBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = bus.Close() })

	return bus
}

func collectEvents(bus service.SessionEventBus) (*sync.WaitGroup, func() []entity.SessionEvent, service.Subscription) {
	var mu sync.Mutex
	var events []entity.SessionEvent
	var wg sync.WaitGroup

	sub := bus.Subscribe(func(payload *service.SessionEventPayload) {
		mu.Lock()
		events = append(events, payload.Event)
		mu.Unlock()
		wg.Done()
	})

	snapshot := func() []entity.SessionEvent {
		mu.Lock()
		defer mu.Unlock()

		return append([]entity.SessionEvent(nil), events...)
	}

	return &wg, snapshot, sub
}

func TestSessionBus_DeliversInPublishOrder(t *testing.T) {
	bus := newTestBus(t)
	wg, snapshot, _ := collectEvents(bus)

	userID := uuid.New()
	wg.Add(2)
	bus.Publish(context.Background(), &service.SessionEventPayload{Event: entity.SessionEventSignedIn, UserID: &userID})
	bus.Publish(context.Background(), &service.SessionEventPayload{Event: entity.SessionEventSignedOut})

	waitTimeout(t, wg)
	assert.Equal(t, []entity.SessionEvent{entity.SessionEventSignedIn, entity.SessionEventSignedOut}, snapshot())
}

func TestSessionBus_MultipleSubscribers(t *testing.T) {
	bus := newTestBus(t)
	firstWg, firstEvents, _ := collectEvents(bus)
	secondWg, secondEvents, _ := collectEvents(bus)

	firstWg.Add(1)
	secondWg.Add(1)
	bus.Publish(context.Background(), &service.SessionEventPayload{Event: entity.SessionEventSignedOut})

	waitTimeout(t, firstWg)
	waitTimeout(t, secondWg)
	assert.Len(t, firstEvents(), 1)
	assert.Len(t, secondEvents(), 1)
}

func TestSessionBus_CancelStopsDelivery(t *testing.T) {
	bus := newTestBus(t)
	wg, snapshot, sub := collectEvents(bus)
	stillWg, stillEvents, _ := collectEvents(bus)

	sub.Cancel()
	// Cancelling twice must be safe.
	sub.Cancel()

	stillWg.Add(1)
	bus.Publish(context.Background(), &service.SessionEventPayload{Event: entity.SessionEventSignedIn})

	waitTimeout(t, stillWg)
	require.Len(t, stillEvents(), 1)
	assert.Empty(t, snapshot())
	_ = wg
}

func TestSessionBus_PublishAfterCloseIsNoop(t *testing.T) {
	bus := NewSessionBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, snapshot, _ := collectEvents(bus)

	require.NoError(t, bus.Close())
	bus.Publish(context.Background(), &service.SessionEventPayload{Event: entity.SessionEventSignedIn})

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, snapshot())
}

func waitTimeout(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event delivery")
	}
}
