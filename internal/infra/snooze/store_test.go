package snooze

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_CountStartsAtZero(t *testing.T) {
	store := NewStore()

	assert.Equal(t, 0, store.Count(1))
}

func TestStore_IncrementAndReset(t *testing.T) {
	store := NewStore()

	assert.Equal(t, 1, store.Increment(1))
	assert.Equal(t, 2, store.Increment(1))
	assert.Equal(t, 2, store.Count(1))

	// Counters are independent per alarm ID.
	assert.Equal(t, 1, store.Increment(2))

	store.Reset(1)
	assert.Equal(t, 0, store.Count(1))
	assert.Equal(t, 1, store.Count(2))
}

func TestStore_ResetUnknownIDIsNoop(t *testing.T) {
	store := NewStore()

	store.Reset(99)
	assert.Equal(t, 0, store.Count(99))
}

func TestStore_ConcurrentIncrements(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Increment(5)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, store.Count(5))
}
