package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/utils"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(events []event.Event, now time.Time) *CalendarServiceImpl {
	return &CalendarServiceImpl{
		repo:       &event.StubEventRepository{Events: events},
		normalizer: event.Normalizer{Placeholder: "/p.jpg"},
		dataDir:    missingDataDir,
		clock:      &utils.MockClock{FixedNow: now},
	}
}

const missingDataDir = "testdata-absent"

func TestCalendarService_Year(t *testing.T) {
	now := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.Local)
	service := newTestService([]event.Event{
		{Id: "1", Title: "Tech Symposium", Date: "2025-10-18"},
		{Id: "2", Title: "Robotics Workshop", Date: "2025-10-04"},
		{Id: "3", Title: "Homecoming", Date: "2024-11-23"},
		{Id: "4", Title: "Science Exhibition", Date: "TBA"},
	}, now)

	view, err := service.Year(context.Background(), 2025)
	require.NoError(t, err)

	assert.Equal(t, 2025, view.Year)
	require.Len(t, view.Months, 12)

	// Month counts span the whole catalog regardless of year.
	assert.Equal(t, 2, view.MonthCounts[int(time.October)-1])
	assert.Equal(t, 1, view.MonthCounts[int(time.November)-1])

	// Legends only cover the selected year, ordered by day, with colors
	// assigned from the palette.
	october := view.Months[int(time.October)-1]
	require.Len(t, october.Legends, 2)
	assert.Equal(t, "Robotics Workshop", october.Legends[0].Title)
	assert.Equal(t, 4, october.Legends[0].Day)
	assert.Equal(t, palette[0], october.Legends[0].Color)
	assert.Equal(t, palette[1], october.Legends[1].Color)
	assert.Equal(t, palette[0], october.Colors["2025-10-04"])

	november := view.Months[int(time.November)-1]
	assert.Empty(t, november.Legends)

	// Years present in the catalog plus the current year, ascending.
	assert.Equal(t, []int{2024, 2025}, view.AvailableYears)
}

func TestCalendarService_TableMissingFileIsEmpty(t *testing.T) {
	service := newTestService(nil, time.Now())

	table, err := service.Table(context.Background())
	require.NoError(t, err)
	assert.Empty(t, table)
	assert.NotNil(t, table)
}
