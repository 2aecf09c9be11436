package trigger

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry(slog.New(slog.DiscardHandler))
}

func TestRegistry_ScheduleFiresHandler(t *testing.T) {
	registry := newTestRegistry()
	fired := make(chan int64, 1)
	registry.Bind(func(_ context.Context, alarmID int64) {
		fired <- alarmID
	})

	registry.Schedule(42, time.Now().Add(10*time.Millisecond))

	select {
	case id := <-fired:
		assert.Equal(t, int64(42), id)
	case <-time.After(time.Second):
		t.Fatal("trigger did not fire")
	}

	_, pending := registry.NextFireTime(42)
	assert.False(t, pending, "registration should be consumed after firing")
}

func TestRegistry_ScheduleReplacesExistingRegistration(t *testing.T) {
	registry := newTestRegistry()
	var fireCount atomic.Int32
	registry.Bind(func(_ context.Context, _ int64) {
		fireCount.Add(1)
	})

	// The first registration is far out; the second replaces it.
	registry.Schedule(7, time.Now().Add(time.Hour))
	registry.Schedule(7, time.Now().Add(10*time.Millisecond))

	require.Eventually(t, func() bool {
		return fireCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// Give the replaced timer a chance to misfire if it was not stopped.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), fireCount.Load())
}

func TestRegistry_CancelIsIdempotent(t *testing.T) {
	registry := newTestRegistry()
	registry.Bind(func(_ context.Context, _ int64) {
		t.Error("cancelled trigger must not fire")
	})

	registry.Schedule(9, time.Now().Add(20*time.Millisecond))
	registry.Cancel(9)
	registry.Cancel(9) // second cancel is a silent no-op

	_, pending := registry.NextFireTime(9)
	assert.False(t, pending)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistry_NextFireTime(t *testing.T) {
	registry := newTestRegistry()
	fireAt := time.Now().Add(time.Hour)

	registry.Schedule(3, fireAt)

	got, ok := registry.NextFireTime(3)
	require.True(t, ok)
	assert.Equal(t, fireAt, got)

	_, ok = registry.NextFireTime(4)
	assert.False(t, ok)
}

func TestRegistry_PastFireTimeFiresImmediately(t *testing.T) {
	registry := newTestRegistry()
	fired := make(chan struct{}, 1)
	registry.Bind(func(_ context.Context, _ int64) {
		fired <- struct{}{}
	})

	registry.Schedule(5, time.Now().Add(-time.Minute))

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("past-due trigger did not fire")
	}
}

func TestRegistry_ShutdownStopsAllTimers(t *testing.T) {
	registry := newTestRegistry()
	registry.Bind(func(_ context.Context, _ int64) {
		t.Error("trigger fired after shutdown")
	})

	registry.Schedule(1, time.Now().Add(20*time.Millisecond))
	registry.Schedule(2, time.Now().Add(20*time.Millisecond))
	registry.Shutdown()

	time.Sleep(50 * time.Millisecond)
}
