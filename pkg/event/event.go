package event

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ID tolerates both string and numeric identifiers in the data files.
type ID string

func (id *ID) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("event id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// Event is one raw catalog record as stored in events.json. All fields are
// optional except the id; absent fields stay empty and are handled downstream.
type Event struct {
	Id               ID     `json:"id"`
	Slug             string `json:"slug,omitempty"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	ShortDescription string `json:"shortDescription,omitempty"`
	LongDescription  string `json:"longDescription,omitempty"`
	Date             string `json:"date,omitempty"`
	StartTime        string `json:"startTime,omitempty"`
	EndTime          string `json:"endTime,omitempty"`
	Category         string `json:"category,omitempty"`
	Department       string `json:"department,omitempty"`
	Venue            string `json:"venue,omitempty"`
	Organizer        string `json:"organizer,omitempty"`
	Location         string `json:"location,omitempty"`
	Image1           string `json:"image1,omitempty"`
	Image2           string `json:"image2,omitempty"`
	Image3           string `json:"image3,omitempty"`
	Image4           string `json:"image4,omitempty"`
	Image            string `json:"image,omitempty"`
}

// Enriched carries the derived fields computed once per record. It is never
// persisted.
type Enriched struct {
	Event
	// When is the parsed event date-time. HasWhen is false when the raw date
	// did not parse; such records sort as the earliest possible date.
	When    time.Time
	HasWhen bool
	// Cover is the first non-empty image reference, or the placeholder.
	Cover  string
	Images []string
	// SearchBlob is the lowercase concatenation of the searchable fields.
	SearchBlob string
	// AcademicYear is the July–June bucket start year, YearLabel its
	// "2024–25" style label. Zero when the date is unparseable.
	AcademicYear int
	YearLabel    string
	// DisplayRange is the human date/time string, falling back to the raw
	// date when parsing fails.
	DisplayRange string
}

// Normalizer derives the enriched fields. The placeholder path is used when
// a record has no image references at all.
type Normalizer struct {
	Placeholder string
}

func (n Normalizer) Enrich(ev Event) Enriched {
	when, hasWhen := parseWhen(ev.Date, ev.StartTime)
	images := imageList(ev)
	cover := n.Placeholder
	if len(images) > 0 {
		cover = images[0]
	}
	e := Enriched{
		Event:        ev,
		When:         when,
		HasWhen:      hasWhen,
		Cover:        cover,
		Images:       images,
		SearchBlob:   searchBlob(ev),
		DisplayRange: displayRange(ev, when, hasWhen),
	}
	if hasWhen {
		e.AcademicYear, e.YearLabel = academicYear(when)
	}
	return e
}

func (n Normalizer) EnrichAll(events []Event) []Enriched {
	enriched := make([]Enriched, 0, len(events))
	for _, ev := range events {
		enriched = append(enriched, n.Enrich(ev))
	}
	return enriched
}

// parseWhen parses the textual date, tolerating both "-" and "/" separators,
// and combines it with the start time when one is present.
func parseWhen(date string, startTime string) (time.Time, bool) {
	normalized := strings.ReplaceAll(strings.TrimSpace(date), "/", "-")
	if normalized == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation("2006-1-2", normalized, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	if t, ok := parseClock(startTime); ok {
		return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), true
	}
	return day, true
}

func parseClock(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"15:04", "15:04:05", "3:04 PM", "3:04PM"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// imageList resolves the canonical image order: image1..image4, deduplicated,
// falling back to the single image field.
func imageList(ev Event) []string {
	var images []string
	seen := make(map[string]bool)
	for _, candidate := range []string{ev.Image1, ev.Image2, ev.Image3, ev.Image4} {
		if candidate != "" && !seen[candidate] {
			seen[candidate] = true
			images = append(images, candidate)
		}
	}
	if len(images) == 0 && ev.Image != "" {
		images = append(images, ev.Image)
	}
	return images
}

func searchBlob(ev Event) string {
	parts := make([]string, 0, 7)
	for _, part := range []string{
		ev.Title, ev.Description, ev.ShortDescription,
		ev.Department, ev.Category, ev.Venue, ev.Organizer,
	} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// academicYear buckets a date into the July–June academic year: dates from
// July onwards belong to the year they fall in, earlier dates to the
// previous one.
func academicYear(when time.Time) (int, string) {
	start := when.Year()
	if when.Month() < time.July {
		start--
	}
	return start, fmt.Sprintf("%d–%02d", start, (start+1)%100)
}

func displayRange(ev Event, when time.Time, hasWhen bool) string {
	if !hasWhen {
		return ev.Date
	}
	day := when.Format("02 Jan 2006")
	start, okStart := parseClock(ev.StartTime)
	end, okEnd := parseClock(ev.EndTime)
	switch {
	case okStart && okEnd:
		return fmt.Sprintf("%s, %s – %s", day, start.Format("3:04PM"), end.Format("3:04PM"))
	case okStart:
		return fmt.Sprintf("%s, %s", day, start.Format("3:04PM"))
	default:
		return day
	}
}
