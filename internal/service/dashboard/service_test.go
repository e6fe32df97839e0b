package dashboard

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetDashboard(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "hris.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	employees := sqlite.NewEmployeeRepository(db)
	records := sqlite.NewAttendanceRepository(db)

	jane, err := employees.Create(ctx, employee.Employee{
		EmployeeID: "EMP100", FullName: "Jane Doe", Email: "jane@x.com", Department: employee.DepartmentIT,
	})
	require.NoError(t, err)
	_, err = employees.Create(ctx, employee.Employee{
		EmployeeID: "EMP101", FullName: "John Roe", Email: "john@x.com", Department: employee.DepartmentHR,
	})
	require.NoError(t, err)

	for date, status := range map[string]attendance.Status{
		"2024-01-04": attendance.StatusAbsent,
		"2024-01-05": attendance.StatusPresent,
	} {
		_, err := records.Create(ctx, attendance.Attendance{
			Employee: jane.ID, EmployeeID: jane.EmployeeID, EmployeeName: jane.FullName,
			Date: dateonly.MustParse(date), Status: status,
		})
		require.NoError(t, err)
	}

	svc := NewDashboardService(employees, records).(*DashboardServiceImpl)
	svc.today = func() dateonly.Date { return dateonly.MustParse("2024-01-05") }

	summary, err := svc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalEmployees)
	assert.Equal(t, 2, summary.TotalAttendanceRecords)
	assert.Equal(t, 1, summary.TodayPresent)
	assert.Equal(t, 0, summary.TodayAbsent)
	assert.Equal(t, "2024-01-05", summary.TodayDate.String())

	require.Len(t, summary.EmployeeStats, 2)
	assert.Equal(t, "EMP100", summary.EmployeeStats[0].EmployeeID)
	assert.Equal(t, 50, summary.EmployeeStats[0].AttendancePercentage)
	assert.Equal(t, "EMP101", summary.EmployeeStats[1].EmployeeID)
	assert.Equal(t, 0, summary.EmployeeStats[1].TotalDays)
}
