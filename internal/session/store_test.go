package session

import (
	"testing"
	"time"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(ttl time.Duration, clock utils.Clock) *Store {
	store := NewStore(ttl)
	store.clock = clock
	return store
}

func TestStore_PutGetDelete(t *testing.T) {
	store := NewStore(time.Hour)
	id := store.NewSessionId()

	require.NoError(t, store.Put(id, "k", []byte("v")))
	value, ok := store.Get(id, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), value)

	store.Delete(id, "k")
	_, ok = store.Get(id, "k")
	assert.False(t, ok)
}

func TestStore_UnknownSession(t *testing.T) {
	store := NewStore(time.Hour)

	assert.False(t, store.Exists("nope"))
	assert.ErrorIs(t, store.Put("nope", "k", []byte("v")), ErrNoSession)
	_, ok := store.Get("nope", "k")
	assert.False(t, ok)
}

func TestStore_SweepDropsIdleSessions(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)}
	store := newTestStore(30*time.Minute, clock)

	stale := store.NewSessionId()
	fresh := store.NewSessionId()

	var expired []string
	store.OnExpire(func(sessionId string) { expired = append(expired, sessionId) })

	// Only the fresh session is touched after the clock advances.
	clock.SetNow(clock.FixedNow.Add(29 * time.Minute))
	assert.True(t, store.Exists(fresh))

	clock.SetNow(clock.FixedNow.Add(2 * time.Minute))
	assert.Equal(t, 1, store.Sweep())

	assert.False(t, store.Exists(stale))
	assert.True(t, store.Exists(fresh))
	assert.Equal(t, []string{stale}, expired)
}

func TestStore_ExistsRefreshesIdleTimer(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)}
	store := newTestStore(30*time.Minute, clock)
	id := store.NewSessionId()

	clock.SetNow(clock.FixedNow.Add(20 * time.Minute))
	require.True(t, store.Exists(id))

	clock.SetNow(clock.FixedNow.Add(20 * time.Minute))
	assert.Equal(t, 0, store.Sweep())
	assert.True(t, store.Exists(id))
}
