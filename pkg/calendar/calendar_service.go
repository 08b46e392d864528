package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/data"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/utils"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
)

// palette cycles over per-day event markers within a month.
var palette = []string{
	"#FEBF08", "#FA6803", "#3B82F6", "#10B981", "#EC4899", "#8B5CF6",
	"#F59E0B", "#F43F5E", "#14B8A6", "#A855F7", "#22C55E", "#2563EB",
}

// Legend is one event marker in a month's legend.
type Legend struct {
	Title string `json:"title"`
	Day   int    `json:"day"`
	Color string `json:"color"`
}

// MonthView is one month of the year overview: its grid, its event legends,
// and the per-date marker colors keyed YYYY-MM-DD.
type MonthView struct {
	Month   time.Month        `json:"month"`
	Name    string            `json:"name"`
	Cells   [GridCells]int    `json:"cells"`
	Legends []Legend          `json:"legends"`
	Colors  map[string]string `json:"colors"`
}

// YearView is the full calendar page payload for one year.
type YearView struct {
	Year           int         `json:"year"`
	Months         []MonthView `json:"months"`
	MonthCounts    [12]int     `json:"monthCounts"`
	AvailableYears []int       `json:"availableYears"`
}

// TableMonth is one row group of the annual events table, loaded from
// calendar.json.
type TableMonth struct {
	Month string      `json:"month"`
	Items []TableItem `json:"items"`
}

type TableItem struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

type CalendarService interface {
	Year(ctx context.Context, year int) (YearView, error)
	Grid(year int, month time.Month) [GridCells]int
	Table(ctx context.Context) ([]TableMonth, error)
}

type CalendarServiceImpl struct {
	repo       event.EventRepository
	normalizer event.Normalizer
	dataDir    string
	clock      utils.Clock
}

func NewCalendarService(repo event.EventRepository, normalizer event.Normalizer, dataDir string) *CalendarServiceImpl {
	return &CalendarServiceImpl{repo, normalizer, dataDir, utils.SystemClock{}}
}

// Year builds the month-by-month overview for the given year. Month counts
// span the whole catalog; legends and markers only the selected year.
func (s *CalendarServiceImpl) Year(ctx context.Context, year int) (YearView, error) {
	events, err := s.repo.All(ctx)
	if err != nil {
		return YearView{}, fmt.Errorf("failed to load events: %w", err)
	}
	enriched := s.normalizer.EnrichAll(events)

	view := YearView{Year: year}

	years := make(map[int]bool)
	perMonth := make([][]Legend, 12)
	for _, e := range enriched {
		if !e.HasWhen {
			continue
		}
		view.MonthCounts[int(e.When.Month())-1]++
		years[e.When.Year()] = true
		if e.When.Year() == year {
			m := int(e.When.Month()) - 1
			perMonth[m] = append(perMonth[m], Legend{Title: e.Title, Day: e.When.Day()})
		}
	}
	years[s.clock.Now().Year()] = true
	for y := range years {
		view.AvailableYears = append(view.AvailableYears, y)
	}
	sort.Ints(view.AvailableYears)

	view.Months = make([]MonthView, 0, 12)
	for m := time.January; m <= time.December; m++ {
		legends := perMonth[int(m)-1]
		sort.SliceStable(legends, func(i, j int) bool { return legends[i].Day < legends[j].Day })
		colors := make(map[string]string, len(legends))
		for i := range legends {
			legends[i].Color = palette[i%len(palette)]
			key := fmt.Sprintf("%04d-%02d-%02d", year, int(m), legends[i].Day)
			colors[key] = legends[i].Color
		}
		if legends == nil {
			legends = []Legend{}
		}
		view.Months = append(view.Months, MonthView{
			Month:   m,
			Name:    m.String(),
			Cells:   MonthGrid(year, m),
			Legends: legends,
			Colors:  colors,
		})
	}
	return view, nil
}

func (s *CalendarServiceImpl) Grid(year int, month time.Month) [GridCells]int {
	return MonthGrid(year, month)
}

// Table returns the annual events table. A missing calendar.json degrades to
// an empty table.
func (s *CalendarServiceImpl) Table(ctx context.Context) ([]TableMonth, error) {
	var table []TableMonth
	if _, err := data.LoadJSON(s.dataDir, "calendar.json", &table); err != nil {
		return nil, err
	}
	if table == nil {
		table = []TableMonth{}
	}
	return table, nil
}
