package event

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey is one of the fixed comparators offered by the catalog.
type SortKey string

const (
	SortDateAsc     SortKey = "date-asc"
	SortDateDesc    SortKey = "date-desc"
	SortTitleAsc    SortKey = "title-asc"
	SortTitleDesc   SortKey = "title-desc"
	SortCategoryAsc SortKey = "category-asc"
)

var collator = collate.New(language.English, collate.Loose)

// Sort returns a new slice ordered by the given key using a stable sort.
// Records with unparseable dates sort before all valid dates ascending and
// after them descending.
func Sort(events []Enriched, key SortKey) []Enriched {
	sorted := make([]Enriched, len(events))
	copy(sorted, events)

	var less func(a, b Enriched) bool
	switch key {
	case SortDateAsc:
		less = func(a, b Enriched) bool { return compareWhen(a, b) < 0 }
	case SortDateDesc:
		less = func(a, b Enriched) bool { return compareWhen(a, b) > 0 }
	case SortTitleAsc:
		less = func(a, b Enriched) bool { return collator.CompareString(a.Title, b.Title) < 0 }
	case SortTitleDesc:
		less = func(a, b Enriched) bool { return collator.CompareString(a.Title, b.Title) > 0 }
	case SortCategoryAsc:
		less = func(a, b Enriched) bool {
			if c := collator.CompareString(a.Category, b.Category); c != 0 {
				return c < 0
			}
			return compareWhen(a, b) < 0
		}
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

// compareWhen orders by parsed date, treating unparseable dates as negative
// infinity.
func compareWhen(a, b Enriched) int {
	switch {
	case !a.HasWhen && !b.HasWhen:
		return 0
	case !a.HasWhen:
		return -1
	case !b.HasWhen:
		return 1
	case a.When.Before(b.When):
		return -1
	case a.When.After(b.When):
		return 1
	default:
		return 0
	}
}
