package calendar

import "time"

// GridCells is the fixed size of a month grid: 6 rows of 7 columns,
// Sunday-first.
const GridCells = 42

// MonthGrid lays one month out on a 42-cell grid. Cells before the first day
// of the month and after its last day hold zero; populated cells hold the
// day-of-month number. Purely a function of (year, month).
func MonthGrid(year int, month time.Month) [GridCells]int {
	var cells [GridCells]int
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	startDay := int(first.Weekday())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for d := 1; d <= daysInMonth; d++ {
		cells[startDay+d-1] = d
	}
	return cells
}
