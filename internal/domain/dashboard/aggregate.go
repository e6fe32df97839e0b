package dashboard

import (
	"math"
	"sort"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
)

// Percentage returns round(present/total*100), or 0 when total is not positive.
func Percentage(present, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(present) / float64(total) * 100))
	return min(max(p, 0), 100)
}

// Summarize derives the dashboard summary from the two collections as of today.
// Per-employee counts only include records dated on or before today. It has no side effects
// and does not modify its arguments.
func Summarize(employees []employee.Employee, records []attendance.Attendance, today dateonly.Date) DashboardSummary {
	type tally struct{ present, total int }
	tallies := make(map[string]*tally, len(employees))
	for _, emp := range employees {
		tallies[emp.ID] = &tally{}
	}

	summary := DashboardSummary{
		TotalEmployees:         len(employees),
		TotalAttendanceRecords: len(records),
		TodayDate:              today,
		EmployeeStats:          make([]EmployeeStat, 0, len(employees)),
	}

	for _, rec := range records {
		if rec.Date.Equal(today) {
			switch rec.Status {
			case attendance.StatusPresent:
				summary.TodayPresent++
			case attendance.StatusAbsent:
				summary.TodayAbsent++
			}
		}

		if rec.Date.After(today) {
			continue
		}
		t, ok := tallies[rec.Employee]
		if !ok {
			continue
		}
		t.total++
		if rec.Status == attendance.StatusPresent {
			t.present++
		}
	}

	for _, emp := range employees {
		t := tallies[emp.ID]
		summary.EmployeeStats = append(summary.EmployeeStats, EmployeeStat{
			EmployeeID:           emp.EmployeeID,
			FullName:             emp.FullName,
			Department:           emp.Department,
			PresentDays:          t.present,
			TotalDays:            t.total,
			AttendancePercentage: Percentage(t.present, t.total),
		})
	}

	sort.SliceStable(summary.EmployeeStats, func(i, j int) bool {
		return summary.EmployeeStats[i].AttendancePercentage > summary.EmployeeStats[j].AttendancePercentage
	})

	return summary
}
