package bookmark

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/event_bus"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/session"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
	log "github.com/sirupsen/logrus"
)

const storageKey = "bookmarks:v1"

type BookmarkService interface {
	IsMember(ctx context.Context, eventId string) (bool, error)
	Add(ctx context.Context, eventId string) error
	Remove(ctx context.Context, eventId string) error
	Toggle(ctx context.Context, eventId string) (bool, error)
	Clear(ctx context.Context) error
	List(ctx context.Context) ([]event.Enriched, error)
}

// BookmarkServiceImpl tracks the event ids a visitor has marked, scoped to
// one session. The in-memory sets are authoritative; every mutation is
// mirrored to the session store, and a failed save is logged and swallowed
// so the visitor keeps a consistent view for the rest of the session.
type BookmarkServiceImpl struct {
	store        *session.Store
	eventService event.EventService
	bus          *event_bus.EventBus

	mu   sync.Mutex
	sets map[string]map[string]bool
}

func NewBookmarkService(store *session.Store, eventService event.EventService, bus *event_bus.EventBus) *BookmarkServiceImpl {
	s := &BookmarkServiceImpl{
		store:        store,
		eventService: eventService,
		bus:          bus,
		sets:         make(map[string]map[string]bool),
	}
	store.OnExpire(s.dropSession)
	return s
}

func (s *BookmarkServiceImpl) dropSession(sessionId string) {
	s.mu.Lock()
	delete(s.sets, sessionId)
	s.mu.Unlock()
}

// set returns the session's bookmark set, restoring it from the session
// store the first time the session is seen.
func (s *BookmarkServiceImpl) set(sessionId string) map[string]bool {
	if existing, ok := s.sets[sessionId]; ok {
		return existing
	}
	restored := make(map[string]bool)
	if raw, ok := s.store.Get(sessionId, storageKey); ok {
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			log.Warnf("corrupt bookmark data for session %s, starting empty: %v", sessionId, err)
		} else {
			for _, id := range ids {
				restored[id] = true
			}
		}
	}
	s.sets[sessionId] = restored
	return restored
}

// persist mirrors the set to the session store. Failures are deliberately
// swallowed: the in-memory set stays authoritative.
func (s *BookmarkServiceImpl) persist(sessionId string, set map[string]bool) {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	raw, err := json.Marshal(ids)
	if err == nil {
		err = s.store.Put(sessionId, storageKey, raw)
	}
	if err != nil {
		log.Warnf("failed to persist bookmarks for session %s: %v", sessionId, err)
	}
}

func (s *BookmarkServiceImpl) IsMember(ctx context.Context, eventId string) (bool, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current session: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(sessionId)[eventId], nil
}

// Add marks an event. Adding twice is the same as adding once.
func (s *BookmarkServiceImpl) Add(ctx context.Context, eventId string) error {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current session: %w", err)
	}
	s.mu.Lock()
	set := s.set(sessionId)
	added := !set[eventId]
	set[eventId] = true
	s.persist(sessionId, set)
	s.mu.Unlock()

	if added {
		s.publish(ctx, event_bus.BookmarkAdded, sessionId, eventId)
	}
	return nil
}

// Remove unmarks an event. Removing a non-member is a no-op.
func (s *BookmarkServiceImpl) Remove(ctx context.Context, eventId string) error {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current session: %w", err)
	}
	s.mu.Lock()
	set := s.set(sessionId)
	removed := set[eventId]
	delete(set, eventId)
	s.persist(sessionId, set)
	s.mu.Unlock()

	if removed {
		s.publish(ctx, event_bus.BookmarkRemoved, sessionId, eventId)
	}
	return nil
}

// Toggle flips membership and reports the new state.
func (s *BookmarkServiceImpl) Toggle(ctx context.Context, eventId string) (bool, error) {
	member, err := s.IsMember(ctx, eventId)
	if err != nil {
		return false, err
	}
	if member {
		return false, s.Remove(ctx, eventId)
	}
	return true, s.Add(ctx, eventId)
}

func (s *BookmarkServiceImpl) Clear(ctx context.Context) error {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current session: %w", err)
	}
	s.mu.Lock()
	s.sets[sessionId] = make(map[string]bool)
	s.persist(sessionId, s.sets[sessionId])
	s.mu.Unlock()
	return nil
}

// List resolves the bookmarked events against the catalog, soonest first.
// Ids that no longer resolve are skipped.
func (s *BookmarkServiceImpl) List(ctx context.Context) ([]event.Enriched, error) {
	sessionId, err := session.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current session: %w", err)
	}
	s.mu.Lock()
	set := s.set(sessionId)
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	events := make([]event.Enriched, 0, len(ids))
	for _, id := range ids {
		e, err := s.eventService.Get(ctx, id)
		if err != nil {
			log.Debugf("bookmarked event %s no longer in catalog", id)
			continue
		}
		events = append(events, e)
	}
	return event.Sort(events, event.SortDateAsc), nil
}

func (s *BookmarkServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, sessionId string, eventId string) {
	if s.bus == nil {
		return
	}
	err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, event_bus.BookmarkChanged{
		SessionId: sessionId,
		EventId:   eventId,
	}))
	if err != nil {
		log.Debugf("bookmark event publish failed: %v", err)
	}
}
