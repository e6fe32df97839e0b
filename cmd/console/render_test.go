package main

import (
	"bytes"
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", formatCount(0))
	assert.Equal(t, "999", formatCount(999))
	assert.Equal(t, "1,234,567", formatCount(1234567))
}

func TestRenderEmployees(t *testing.T) {
	var buf bytes.Buffer
	renderEmployees(&buf, []employee.Employee{
		{ID: "h1", EmployeeID: "EMP100", FullName: "jane doe", Email: "jane@x.com", Department: employee.DepartmentIT},
	})

	out := buf.String()
	assert.Contains(t, out, "(J)")
	assert.Contains(t, out, "EMP100")
	assert.Contains(t, out, "#f3e5f5/#7b1fa2")
	assert.Contains(t, out, "1 employees")
}

func TestRenderEmployees_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderEmployees(&buf, nil)
	assert.Equal(t, "No employees found\n", buf.String())
}

func TestRenderAttendance(t *testing.T) {
	var buf bytes.Buffer
	renderAttendance(&buf, []attendance.Attendance{
		{EmployeeID: "EMP100", EmployeeName: "Jane Doe", Date: dateonly.MustParse("2024-01-05"), Status: attendance.StatusPresent},
	})

	out := buf.String()
	assert.Contains(t, out, "2024-01-05")
	assert.Contains(t, out, "Present")
	assert.Contains(t, out, "1 records")
}

func TestRenderDashboard(t *testing.T) {
	var buf bytes.Buffer
	renderDashboard(&buf, dashboard.DashboardSummary{
		TotalEmployees:         2,
		TotalAttendanceRecords: 1500,
		TodayPresent:           1,
		TodayAbsent:            1,
		TodayDate:              dateonly.MustParse("2024-01-05"),
		EmployeeStats: []dashboard.EmployeeStat{
			{EmployeeID: "EMP100", FullName: "Jane Doe", Department: employee.DepartmentIT, PresentDays: 4, TotalDays: 5, AttendancePercentage: 80},
			{EmployeeID: "EMP101", FullName: "John Roe", Department: employee.DepartmentHR, PresentDays: 0, TotalDays: 5},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Dashboard for 2024-01-05")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "Top performer: Jane Doe (EMP100) 80%")
	assert.Contains(t, out, "80% (excellent)")
	assert.Contains(t, out, "0% (poor)")
}

func TestRenderDashboard_NoTopPerformer(t *testing.T) {
	var buf bytes.Buffer
	renderDashboard(&buf, dashboard.DashboardSummary{TodayDate: dateonly.MustParse("2024-01-05")})
	assert.NotContains(t, buf.String(), "Top performer")
}
