package dashboard

import (
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(handle, date string, status attendance.Status) attendance.Attendance {
	return attendance.Attendance{
		ID:       handle + "-" + date,
		Employee: handle,
		Date:     dateonly.MustParse(date),
		Status:   status,
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		present, total, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{5, 5, 100},
		{7, 8, 88},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Percentage(c.present, c.total), "Percentage(%d, %d)", c.present, c.total)
	}
}

func TestPercentage_AlwaysInRange(t *testing.T) {
	for total := 0; total <= 30; total++ {
		for present := 0; present <= total; present++ {
			p := Percentage(present, total)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
		}
	}
}

func TestSummarize(t *testing.T) {
	today := dateonly.MustParse("2024-01-05")
	employees := []employee.Employee{
		{ID: "h1", EmployeeID: "EMP001", FullName: "Ann Lee", Department: employee.DepartmentHR},
		{ID: "h2", EmployeeID: "EMP002", FullName: "Bo Chan", Department: employee.DepartmentIT},
		{ID: "h3", EmployeeID: "EMP003", FullName: "Cy Diaz", Department: employee.DepartmentSales},
	}
	records := []attendance.Attendance{
		record("h1", "2024-01-03", attendance.StatusPresent),
		record("h1", "2024-01-04", attendance.StatusAbsent),
		record("h1", "2024-01-05", attendance.StatusAbsent),
		record("h2", "2024-01-04", attendance.StatusPresent),
		record("h2", "2024-01-05", attendance.StatusPresent),
		record("h2", "2024-01-09", attendance.StatusAbsent), // after today
		record("gone", "2024-01-05", attendance.StatusPresent),
	}

	summary := Summarize(employees, records, today)

	assert.Equal(t, 3, summary.TotalEmployees)
	assert.Equal(t, 7, summary.TotalAttendanceRecords)
	assert.Equal(t, 2, summary.TodayPresent)
	assert.Equal(t, 1, summary.TodayAbsent)
	assert.True(t, summary.TodayDate.Equal(today))

	require.Len(t, summary.EmployeeStats, 3)
	assert.Equal(t, EmployeeStat{
		EmployeeID: "EMP002", FullName: "Bo Chan", Department: employee.DepartmentIT,
		PresentDays: 2, TotalDays: 2, AttendancePercentage: 100,
	}, summary.EmployeeStats[0])
	assert.Equal(t, EmployeeStat{
		EmployeeID: "EMP001", FullName: "Ann Lee", Department: employee.DepartmentHR,
		PresentDays: 1, TotalDays: 3, AttendancePercentage: 33,
	}, summary.EmployeeStats[1])
	assert.Equal(t, EmployeeStat{
		EmployeeID: "EMP003", FullName: "Cy Diaz", Department: employee.DepartmentSales,
		PresentDays: 0, TotalDays: 0, AttendancePercentage: 0,
	}, summary.EmployeeStats[2])

	top, ok := summary.TopPerformer()
	require.True(t, ok)
	assert.Equal(t, "EMP002", top.EmployeeID)
}

func TestSummarize_TiesKeepEmployeeOrder(t *testing.T) {
	today := dateonly.MustParse("2024-02-01")
	employees := []employee.Employee{
		{ID: "a", EmployeeID: "A"},
		{ID: "b", EmployeeID: "B"},
		{ID: "c", EmployeeID: "C"},
	}
	records := []attendance.Attendance{
		record("a", "2024-02-01", attendance.StatusPresent),
		record("b", "2024-02-01", attendance.StatusPresent),
		record("c", "2024-02-01", attendance.StatusPresent),
	}

	summary := Summarize(employees, records, today)
	var order []string
	for _, s := range summary.EmployeeStats {
		order = append(order, s.EmployeeID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, nil, dateonly.MustParse("2024-01-01"))

	assert.Zero(t, summary.TotalEmployees)
	assert.Zero(t, summary.TotalAttendanceRecords)
	assert.NotNil(t, summary.EmployeeStats)
	assert.Empty(t, summary.EmployeeStats)

	_, ok := summary.TopPerformer()
	assert.False(t, ok)
}

func TestSummarize_NoTopPerformerWhenAllAbsent(t *testing.T) {
	today := dateonly.MustParse("2024-03-10")
	employees := []employee.Employee{{ID: "a", EmployeeID: "A"}}
	records := []attendance.Attendance{record("a", "2024-03-10", attendance.StatusAbsent)}

	summary := Summarize(employees, records, today)
	require.Len(t, summary.EmployeeStats, 1)
	assert.Equal(t, 1, summary.EmployeeStats[0].TotalDays)
	assert.Equal(t, 0, summary.EmployeeStats[0].AttendancePercentage)

	_, ok := summary.TopPerformer()
	assert.False(t, ok)
}

func TestSummarize_Deterministic(t *testing.T) {
	today := dateonly.MustParse("2024-01-05")
	employees := []employee.Employee{
		{ID: "h1", EmployeeID: "EMP001"},
		{ID: "h2", EmployeeID: "EMP002"},
	}
	records := []attendance.Attendance{
		record("h1", "2024-01-05", attendance.StatusPresent),
		record("h2", "2024-01-04", attendance.StatusAbsent),
	}
	recordsCopy := append([]attendance.Attendance(nil), records...)

	first := Summarize(employees, records, today)
	second := Summarize(employees, records, today)

	assert.Equal(t, first, second)
	assert.Equal(t, recordsCopy, records)
}

func TestEmployeeStat_Class(t *testing.T) {
	assert.Equal(t, PercentageExcellent, EmployeeStat{AttendancePercentage: 80}.Class())
	assert.Equal(t, PercentageGood, EmployeeStat{AttendancePercentage: 60}.Class())
	assert.Equal(t, PercentageGood, EmployeeStat{AttendancePercentage: 79}.Class())
	assert.Equal(t, PercentagePoor, EmployeeStat{AttendancePercentage: 59}.Class())
	assert.Equal(t, PercentagePoor, EmployeeStat{}.Class())
}
