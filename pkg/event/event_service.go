package event

import (
	"context"
	"fmt"
	"sort"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/utils"
)

var ErrEventNotFound = fmt.Errorf("event not found")

// FacetOption is one selectable filter value with its record count.
type FacetOption struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Facets lists the category and department values present in the catalog.
type Facets struct {
	Categories  []FacetOption `json:"categories"`
	Departments []FacetOption `json:"departments"`
}

type EventService interface {
	List(ctx context.Context, filter Filter, key SortKey, limit int) ([]Enriched, error)
	Get(ctx context.Context, idOrSlug string) (Enriched, error)
	Upcoming(ctx context.Context, query string, department string, key UpcomingSortKey, limit int) ([]Enriched, error)
	Next(ctx context.Context) (*Enriched, error)
	Facets(ctx context.Context) (Facets, error)
	Countdown(e Enriched) string
}

// UpcomingSortKey is the reduced sort set of the upcoming-highlights view.
type UpcomingSortKey string

const (
	UpcomingByDate     UpcomingSortKey = "date"
	UpcomingByName     UpcomingSortKey = "name"
	UpcomingByCategory UpcomingSortKey = "category"
)

type EventServiceImpl struct {
	repo       EventRepository
	normalizer Normalizer
	clock      utils.Clock
}

func NewEventService(repo EventRepository, normalizer Normalizer) *EventServiceImpl {
	return &EventServiceImpl{repo, normalizer, utils.SystemClock{}}
}

func (s *EventServiceImpl) enriched(ctx context.Context) ([]Enriched, error) {
	events, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return s.normalizer.EnrichAll(events), nil
}

func (s *EventServiceImpl) List(ctx context.Context, filter Filter, key SortKey, limit int) ([]Enriched, error) {
	enriched, err := s.enriched(ctx)
	if err != nil {
		return nil, err
	}
	result := Sort(filter.Apply(enriched, s.clock.Now()), key)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Get looks an event up by id first, then by slug. A miss yields
// ErrEventNotFound rather than an empty record.
func (s *EventServiceImpl) Get(ctx context.Context, idOrSlug string) (Enriched, error) {
	enriched, err := s.enriched(ctx)
	if err != nil {
		return Enriched{}, err
	}
	for _, e := range enriched {
		if string(e.Id) == idOrSlug {
			return e, nil
		}
	}
	for _, e := range enriched {
		if e.Slug != "" && e.Slug == idOrSlug {
			return e, nil
		}
	}
	return Enriched{}, ErrEventNotFound
}

// Upcoming returns the soonest events matching a title search and an
// optional department, at least six and at most limit of them.
func (s *EventServiceImpl) Upcoming(ctx context.Context, query string, department string, key UpcomingSortKey, limit int) ([]Enriched, error) {
	enriched, err := s.enriched(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	list := Filter{Mode: ModeUpcoming, Department: department}.Apply(enriched, now)
	if q := normalizeQuery(query); q != "" {
		matched := list[:0]
		for _, e := range list {
			if containsFold(e.Title, q) {
				matched = append(matched, e)
			}
		}
		list = matched
	}

	switch key {
	case UpcomingByName:
		list = Sort(list, SortTitleAsc)
	case UpcomingByCategory:
		list = Sort(list, SortCategoryAsc)
	default:
		list = Sort(list, SortDateAsc)
	}

	if limit < 6 {
		limit = 6
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// Next returns the single soonest upcoming event, or nil when there is none.
func (s *EventServiceImpl) Next(ctx context.Context) (*Enriched, error) {
	upcoming, err := s.Upcoming(ctx, "", "", UpcomingByDate, 6)
	if err != nil {
		return nil, err
	}
	if len(upcoming) == 0 {
		return nil, nil
	}
	return &upcoming[0], nil
}

func (s *EventServiceImpl) Facets(ctx context.Context) (Facets, error) {
	enriched, err := s.enriched(ctx)
	if err != nil {
		return Facets{}, err
	}

	categories := make(map[string]int)
	departments := make(map[string]int)
	for _, e := range enriched {
		if e.Category != "" {
			categories[e.Category]++
		}
		department := e.Department
		if department == "" {
			department = "General"
		}
		departments[department]++
	}

	return Facets{
		Categories:  facetOptions(categories),
		Departments: facetOptions(departments),
	}, nil
}

// Countdown renders the time remaining until the event as "2d 4h 11m 9s".
func (s *EventServiceImpl) Countdown(e Enriched) string {
	if !e.HasWhen {
		return ""
	}
	diff := e.When.Sub(s.clock.Now())
	if diff <= 0 {
		return "Event started!"
	}
	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	minutes := int(diff.Minutes()) % 60
	seconds := int(diff.Seconds()) % 60
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}

func facetOptions(counts map[string]int) []FacetOption {
	options := make([]FacetOption, 0, len(counts))
	for name, count := range counts {
		options = append(options, FacetOption{Name: name, Count: count})
	}
	sort.Slice(options, func(i, j int) bool {
		return collator.CompareString(options[i].Name, options[j].Name) < 0
	})
	return options
}
