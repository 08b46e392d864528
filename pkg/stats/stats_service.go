package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
)

type StatsService interface {
	Summary(ctx context.Context) (StatsSummary, error)
}

type StatsServiceImpl struct {
	repo       event.EventRepository
	normalizer event.Normalizer
}

func NewStatsService(repo event.EventRepository, normalizer event.Normalizer) *StatsServiceImpl {
	return &StatsServiceImpl{repo, normalizer}
}

// Summary counts the whole catalog: per calendar month, per department, and
// the headline totals. Events without a parseable date only show up in the
// undated counter and the event total.
func (s *StatsServiceImpl) Summary(ctx context.Context) (StatsSummary, error) {
	events, err := s.repo.All(ctx)
	if err != nil {
		return StatsSummary{}, fmt.Errorf("failed to load events: %w", err)
	}
	enriched := s.normalizer.EnrichAll(events)

	byMonth := make(map[time.Month]int)
	byDepartment := make(map[string]int)
	organizers := make(map[string]bool)
	undated := 0
	for _, e := range enriched {
		if e.HasWhen {
			byMonth[e.When.Month()]++
		} else {
			undated++
		}
		department := e.Department
		if department == "" {
			department = "General"
		}
		byDepartment[department]++
		if e.Organizer != "" {
			organizers[e.Organizer] = true
		}
	}

	summary := StatsSummary{
		Totals: Totals{
			Events:      len(enriched),
			Departments: len(byDepartment),
			Organizers:  len(organizers),
		},
		ByMonth:      make([]MonthCount, 0, 12),
		ByDepartment: make([]DepartmentCount, 0, len(byDepartment)),
		Undated:      undated,
	}
	for month := time.January; month <= time.December; month++ {
		summary.ByMonth = append(summary.ByMonth, MonthCount{
			Month: month.String(),
			Count: byMonth[month],
		})
	}
	for department, count := range byDepartment {
		summary.ByDepartment = append(summary.ByDepartment, DepartmentCount{
			Department: department,
			Count:      count,
		})
	}
	sort.Slice(summary.ByDepartment, func(i, j int) bool {
		a, b := summary.ByDepartment[i], summary.ByDepartment[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Department < b.Department
	})
	return summary, nil
}
