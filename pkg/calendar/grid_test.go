package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthGrid_LeapFebruary(t *testing.T) {
	cells := MonthGrid(2024, time.February)

	// February 2024 starts on a Thursday: four leading blanks.
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0, cells[i], "cell %d should be empty", i)
	}
	assert.Equal(t, 1, cells[4])
	assert.Equal(t, 29, cells[4+28])

	populated := 0
	for _, day := range cells {
		if day != 0 {
			populated++
		}
	}
	assert.Equal(t, 29, populated)
	assert.Equal(t, 13, GridCells-populated)
}

func TestMonthGrid_AlwaysFortyTwoCells(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		cells := MonthGrid(2025, month)
		assert.Len(t, cells, GridCells)

		last := 0
		for _, day := range cells {
			if day != 0 {
				last = day
			}
		}
		expected := time.Date(2025, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
		assert.Equal(t, expected, last, "month %s", month)
	}
}

func TestMonthGrid_SundayFirst(t *testing.T) {
	// June 2025 starts on a Sunday, so day 1 lands in cell 0.
	cells := MonthGrid(2025, time.June)
	assert.Equal(t, 1, cells[0])
}
