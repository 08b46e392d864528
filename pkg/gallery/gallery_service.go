package gallery

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GroupBy selects how the gallery clusters events.
type GroupBy string

const (
	GroupByYear     GroupBy = "year"
	GroupByCategory GroupBy = "category"
)

// Filter narrows the gallery. Year 0 and category "All"/"" mean no filter.
type Filter struct {
	Year     int
	Category string
	Query    string
}

// Group is one titled cluster of events.
type Group struct {
	Label string
	Items []event.Enriched
}

// YearOption is one academic-year choice, newest first.
type YearOption struct {
	Key   int    `json:"key"`
	Label string `json:"label"`
}

// Options are the filter choices derived from the catalog.
type Options struct {
	Years      []YearOption `json:"years"`
	Categories []string     `json:"categories"`
}

type GalleryService interface {
	Browse(ctx context.Context, filter Filter, groupBy GroupBy) ([]Group, error)
	Options(ctx context.Context) (Options, error)
}

type GalleryServiceImpl struct {
	repo       event.EventRepository
	normalizer event.Normalizer
}

func NewGalleryService(repo event.EventRepository, normalizer event.Normalizer) *GalleryServiceImpl {
	return &GalleryServiceImpl{repo, normalizer}
}

var collator = collate.New(language.English, collate.Loose)

func (s *GalleryServiceImpl) enriched(ctx context.Context) ([]event.Enriched, error) {
	events, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return s.normalizer.EnrichAll(events), nil
}

// Browse filters the catalog, orders it newest bucket first with titles
// ascending inside a bucket, and clusters it by academic year or category.
func (s *GalleryServiceImpl) Browse(ctx context.Context, filter Filter, groupBy GroupBy) ([]Group, error) {
	enriched, err := s.enriched(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	filtered := make([]event.Enriched, 0, len(enriched))
	for _, e := range enriched {
		if filter.Year != 0 && e.AcademicYear != filter.Year {
			continue
		}
		if filter.Category != "" && filter.Category != event.All && e.Category != filter.Category {
			continue
		}
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].AcademicYear != filtered[j].AcademicYear {
			return filtered[i].AcademicYear > filtered[j].AcademicYear
		}
		return collator.CompareString(filtered[i].Title, filtered[j].Title) < 0
	})

	if groupBy == GroupByCategory {
		return groupByCategory(filtered), nil
	}
	return groupByYear(filtered), nil
}

// matchesQuery searches the gallery's own fields: title, description,
// department and location.
func matchesQuery(e event.Enriched, query string) bool {
	for _, field := range []string{e.Title, e.Description, e.Department, e.Location} {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func groupByYear(events []event.Enriched) []Group {
	index := make(map[int]int)
	groups := make([]Group, 0)
	for _, e := range events {
		label := e.YearLabel
		if label == "" {
			label = "Undated"
		}
		i, ok := index[e.AcademicYear]
		if !ok {
			i = len(groups)
			index[e.AcademicYear] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Items = append(groups[i].Items, e)
	}
	// Input is already ordered newest bucket first, so groups are too.
	return groups
}

func groupByCategory(events []event.Enriched) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, e := range events {
		label := e.Category
		if label == "" {
			label = "General"
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Label: label})
		}
		groups[i].Items = append(groups[i].Items, e)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return collator.CompareString(groups[i].Label, groups[j].Label) < 0
	})
	return groups
}

// Options lists every academic year present (newest first) and every
// category (alphabetical).
func (s *GalleryServiceImpl) Options(ctx context.Context) (Options, error) {
	enriched, err := s.enriched(ctx)
	if err != nil {
		return Options{}, err
	}

	yearLabels := make(map[int]string)
	categories := make(map[string]bool)
	for _, e := range enriched {
		if e.AcademicYear != 0 {
			yearLabels[e.AcademicYear] = e.YearLabel
		}
		if e.Category != "" {
			categories[e.Category] = true
		}
	}

	options := Options{Years: make([]YearOption, 0, len(yearLabels)), Categories: make([]string, 0, len(categories))}
	for key, label := range yearLabels {
		options.Years = append(options.Years, YearOption{Key: key, Label: label})
	}
	sort.Slice(options.Years, func(i, j int) bool { return options.Years[i].Key > options.Years[j].Key })
	for category := range categories {
		options.Categories = append(options.Categories, category)
	}
	sort.Slice(options.Categories, func(i, j int) bool {
		return collator.CompareString(options.Categories[i], options.Categories[j]) < 0
	})
	return options, nil
}
