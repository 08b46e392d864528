package event

import (
	"strings"
	"time"
)

// Mode selects the temporal window of a query.
type Mode string

const (
	ModeAll      Mode = "all"
	ModeUpcoming Mode = "upcoming"
	ModePast     Mode = "past"
)

// All is the sentinel that bypasses the category and department predicates.
const All = "All"

// Filter is a conjunction of predicates over the enriched catalog. Zero
// values disable the corresponding predicate.
type Filter struct {
	Query        string
	Category     string
	Department   string
	Mode         Mode
	WithinDays   int
	AcademicYear int
}

// Apply returns the records for which every supplied predicate holds, in
// input order. Temporal predicates compare against the start of the current
// day so that events later today still count as upcoming.
func (f Filter) Apply(events []Enriched, now time.Time) []Enriched {
	today := startOfDay(now)
	query := strings.ToLower(strings.TrimSpace(f.Query))

	result := make([]Enriched, 0, len(events))
	for _, e := range events {
		if !bypass(f.Category) && e.Category != f.Category {
			continue
		}
		if !bypass(f.Department) && e.Department != f.Department {
			continue
		}
		if query != "" && !strings.Contains(e.SearchBlob, query) {
			continue
		}
		if !f.matchesWindow(e, today) {
			continue
		}
		if f.AcademicYear != 0 && e.AcademicYear != f.AcademicYear {
			continue
		}
		result = append(result, e)
	}
	return result
}

func (f Filter) matchesWindow(e Enriched, today time.Time) bool {
	switch f.Mode {
	case ModeUpcoming:
		if !e.HasWhen || e.When.Before(today) {
			return false
		}
	case ModePast:
		if e.HasWhen && !e.When.Before(today) {
			return false
		}
	}
	if f.WithinDays > 0 {
		if !e.HasWhen {
			return false
		}
		day := startOfDay(e.When)
		earliest := today.AddDate(0, 0, -f.WithinDays)
		if day.After(today) || day.Before(earliest) {
			return false
		}
	}
	return true
}

func bypass(value string) bool {
	return value == "" || value == All
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func containsFold(s string, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(s), loweredQuery)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
