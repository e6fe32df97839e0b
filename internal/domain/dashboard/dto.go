package dashboard

import (
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
)

// ========== DASHBOARD SUMMARY ==========

// DashboardSummary is the body of GET /dashboard/.
type DashboardSummary struct {
	TotalEmployees         int            `json:"total_employees"`
	TotalAttendanceRecords int            `json:"total_attendance_records"`
	TodayPresent           int            `json:"today_present"`
	TodayAbsent            int            `json:"today_absent"`
	TodayDate              dateonly.Date  `json:"today_date"`
	EmployeeStats          []EmployeeStat `json:"employee_stats"`
}

// TopPerformer returns the first ranked employee with a non-zero attendance percentage.
func (s DashboardSummary) TopPerformer() (EmployeeStat, bool) {
	for _, stat := range s.EmployeeStats {
		if stat.AttendancePercentage > 0 {
			return stat, true
		}
	}
	return EmployeeStat{}, false
}

// ========== EMPLOYEE STAT ==========

// EmployeeStat is the attendance record of one employee up to the summary date.
type EmployeeStat struct {
	EmployeeID           string              `json:"employee_id"`
	FullName             string              `json:"full_name"`
	Department           employee.Department `json:"department"`
	PresentDays          int                 `json:"present_days"`
	TotalDays            int                 `json:"total_days"`
	AttendancePercentage int                 `json:"attendance_percentage"` // 0-100
}

// PercentageClass buckets an attendance percentage for display.
type PercentageClass string

const (
	PercentageExcellent PercentageClass = "excellent" // >= 80
	PercentageGood      PercentageClass = "good"      // >= 60
	PercentagePoor      PercentageClass = "poor"
)

func (s EmployeeStat) Class() PercentageClass {
	switch {
	case s.AttendancePercentage >= 80:
		return PercentageExcellent
	case s.AttendancePercentage >= 60:
		return PercentageGood
	default:
		return PercentagePoor
	}
}
