package session

import (
	"errors"
	"sync"
	"time"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrNoSession = errors.New("no session in context")

// Store keeps per-session key/value buckets for the lifetime of a visitor
// session. Everything lives in memory: when a session expires or the process
// exits, its bookmarks, profile and onboarding flag are gone, which is the
// intended scope.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*bucket
	ttl      time.Duration
	clock    utils.Clock
	onExpire []func(sessionId string)
}

type bucket struct {
	values   map[string][]byte
	lastSeen time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*bucket),
		ttl:      ttl,
		clock:    utils.SystemClock{},
	}
}

// NewSessionId issues a fresh session identifier and registers its bucket.
func (s *Store) NewSessionId() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &bucket{values: make(map[string][]byte), lastSeen: s.clock.Now()}
	s.mu.Unlock()
	log.Debugf("created session %s", id)
	return id
}

// Exists reports whether the session is known and refreshes its idle timer.
func (s *Store) Exists(sessionId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.sessions[sessionId]
	if ok {
		b.lastSeen = s.clock.Now()
	}
	return ok
}

// Put stores value under key for the given session.
func (s *Store) Put(sessionId string, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.sessions[sessionId]
	if !ok {
		return ErrNoSession
	}
	b.values[key] = value
	b.lastSeen = s.clock.Now()
	return nil
}

// Get returns the value stored under key, or ok=false when the session or
// key is absent.
func (s *Store) Get(sessionId string, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.sessions[sessionId]
	if !ok {
		return nil, false
	}
	value, ok := b.values[key]
	return value, ok
}

// Delete removes key from the session. Deleting an absent key is a no-op.
func (s *Store) Delete(sessionId string, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.sessions[sessionId]; ok {
		delete(b.values, key)
	}
}

// OnExpire registers a callback invoked with the id of every session the
// sweeper drops.
func (s *Store) OnExpire(fn func(sessionId string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpire = append(s.onExpire, fn)
}

// Sweep drops sessions idle longer than the TTL and returns how many were
// removed. The app runs it on a timer.
func (s *Store) Sweep() int {
	now := s.clock.Now()
	s.mu.Lock()
	var expired []string
	for id, b := range s.sessions {
		if now.Sub(b.lastSeen) > s.ttl {
			expired = append(expired, id)
			delete(s.sessions, id)
		}
	}
	callbacks := make([]func(string), len(s.onExpire))
	copy(callbacks, s.onExpire)
	s.mu.Unlock()

	for _, id := range expired {
		for _, fn := range callbacks {
			fn(id)
		}
	}
	if len(expired) > 0 {
		log.Debugf("swept %d expired sessions", len(expired))
	}
	return len(expired)
}
