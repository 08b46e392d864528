package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type StatsRenderer interface {
	RenderStats(stats StatsSummary) (string, error)
}

type CsvStatsRendererImpl struct {
}

func NewCsvStatsRenderer() *CsvStatsRendererImpl {
	return &CsvStatsRendererImpl{}
}

// RenderStats flattens the summary into a CSV document: a totals block, the
// twelve month rows, then the department rows.
func (t *CsvStatsRendererImpl) RenderStats(stats StatsSummary) (string, error) {
	data := make([][]string, 0, 6+len(stats.ByMonth)+len(stats.ByDepartment))
	data = append(data,
		[]string{"Metric", "Value"},
		[]string{"Total events", strconv.Itoa(stats.Totals.Events)},
		[]string{"Departments", strconv.Itoa(stats.Totals.Departments)},
		[]string{"Organizers", strconv.Itoa(stats.Totals.Organizers)},
		[]string{"Undated events", strconv.Itoa(stats.Undated)},
	)

	data = append(data, []string{"Month", "Events"})
	for _, row := range stats.ByMonth {
		data = append(data, []string{row.Month, strconv.Itoa(row.Count)})
	}

	data = append(data, []string{"Department", "Events"})
	for _, row := range stats.ByDepartment {
		data = append(data, []string{row.Department, strconv.Itoa(row.Count)})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
