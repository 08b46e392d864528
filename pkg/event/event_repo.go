package event

import (
	"context"
	"sync"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/data"
	log "github.com/sirupsen/logrus"
)

type EventRepository interface {
	All(ctx context.Context) ([]Event, error)
	Reload() error
}

// EventRepositoryImpl reads the catalog from events.json in the data
// directory. Records are loaded once at startup and refreshed by the
// scheduled reload; the collection itself is never mutated.
type EventRepositoryImpl struct {
	dir string

	mu     sync.RWMutex
	events []Event
}

func NewEventRepo(dir string) (*EventRepositoryImpl, error) {
	r := &EventRepositoryImpl{dir: dir}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *EventRepositoryImpl) All(ctx context.Context) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events := make([]Event, len(r.events))
	copy(events, r.events)
	return events, nil
}

func (r *EventRepositoryImpl) Reload() error {
	var events []Event
	ok, err := data.LoadJSON(r.dir, "events.json", &events)
	if err != nil {
		return err
	}
	if !ok {
		log.Warn("events.json is missing, serving an empty catalog")
	}

	seen := make(map[ID]bool, len(events))
	for _, ev := range events {
		if seen[ev.Id] {
			log.Warnf("duplicate event id %q in events.json", ev.Id)
		}
		seen[ev.Id] = true
	}

	r.mu.Lock()
	r.events = events
	r.mu.Unlock()
	log.Infof("loaded %d events", len(events))
	return nil
}
