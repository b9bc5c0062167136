package view

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTracker_NewerRequestSupersedes(t *testing.T) {
	tracker := NewTracker(time.Minute)

	slow := tracker.Begin("session-1", ScopeNearby)
	fast := tracker.Begin("session-1", ScopeNearby)

	assert.False(t, tracker.IsCurrent(slow))
	assert.True(t, tracker.IsCurrent(fast))
}

func TestTracker_ScopesAndSessionsAreIndependent(t *testing.T) {
	tracker := NewTracker(time.Minute)

	area := tracker.Begin("session-1", ScopeArea)
	nearby := tracker.Begin("session-1", ScopeNearby)
	other := tracker.Begin("session-2", ScopeArea)

	assert.True(t, tracker.IsCurrent(area))
	assert.True(t, tracker.IsCurrent(nearby))
	assert.True(t, tracker.IsCurrent(other))
	assert.Equal(t, 3, tracker.Len())
}

func TestTracker_UntrackedAlwaysCurrent(t *testing.T) {
	tracker := NewTracker(time.Minute)

	first := tracker.Begin("", ScopeArea)
	second := tracker.Begin("", ScopeArea)

	assert.True(t, tracker.IsCurrent(first))
	assert.True(t, tracker.IsCurrent(second))
	assert.Equal(t, 0, tracker.Len())
}

func TestTracker_EvictsIdleSessions(t *testing.T) {
	tracker := NewTracker(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time { return now }

	tracker.Begin("idle", ScopeArea)
	now = now.Add(2 * time.Minute)
	tracker.Begin("active", ScopeArea)

	assert.Equal(t, 1, tracker.Len())
}

func TestTracker_Concurrent(t *testing.T) {
	tracker := NewTracker(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token := tracker.Begin("shared", ScopeNearby)
			_ = tracker.IsCurrent(token)
		}()
	}
	wg.Wait()

	last := tracker.Begin("shared", ScopeNearby)
	assert.True(t, tracker.IsCurrent(last))
}
