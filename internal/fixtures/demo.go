package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
)

// ==========================================
// DEMO EMPLOYEES
// ==========================================

// GetDemoEmployees returns one employee per department.
func GetDemoEmployees() []employee.CreateEmployeeRequest {
	return []employee.CreateEmployeeRequest{
		{EmployeeID: "EMP001", FullName: "Alya Putri", Email: "alya.putri@example.com", Department: string(employee.DepartmentHR)},
		{EmployeeID: "EMP002", FullName: "Budi Santoso", Email: "budi.santoso@example.com", Department: string(employee.DepartmentIT)},
		{EmployeeID: "EMP003", FullName: "Citra Lestari", Email: "citra.lestari@example.com", Department: string(employee.DepartmentFinance)},
		{EmployeeID: "EMP004", FullName: "Dimas Pratama", Email: "dimas.pratama@example.com", Department: string(employee.DepartmentMarketing)},
		{EmployeeID: "EMP005", FullName: "Eka Wijaya", Email: "eka.wijaya@example.com", Department: string(employee.DepartmentOperations)},
		{EmployeeID: "EMP006", FullName: "Fajar Nugroho", Email: "fajar.nugroho@example.com", Department: string(employee.DepartmentSales)},
	}
}

// ==========================================
// DEMO ATTENDANCE
// ==========================================

// DemoDays is how many days back from today demo attendance covers, today included.
const DemoDays = 7

// demoStatus spreads absences so the dashboard shows every percentage class.
func demoStatus(employeeIndex, day int) attendance.Status {
	if (employeeIndex+1)*(day+1)%(employeeIndex+3) == 0 {
		return attendance.StatusAbsent
	}
	return attendance.StatusPresent
}

// ==========================================
// SEEDING
// ==========================================

// SeededData counts what SeedDemo created. Rows that already existed are not counted.
type SeededData struct {
	Employees  int
	Attendance int
}

// SeedDemo creates the demo employees and their attendance for the DemoDays up to today. It
// goes through the services so every row is validated, and it can be run repeatedly.
func SeedDemo(ctx context.Context, employees employee.EmployeeService, records attendance.AttendanceService, today dateonly.Date) (SeededData, error) {
	var seeded SeededData

	existing, err := employees.ListEmployees(ctx)
	if err != nil {
		return seeded, fmt.Errorf("list employees: %w", err)
	}
	byEmployeeID := make(map[string]employee.Employee, len(existing))
	for _, e := range existing {
		byEmployeeID[e.EmployeeID] = e
	}

	for i, req := range GetDemoEmployees() {
		emp, ok := byEmployeeID[req.EmployeeID]
		if !ok {
			emp, err = employees.CreateEmployee(ctx, req)
			if err != nil {
				return seeded, fmt.Errorf("create employee %s: %w", req.EmployeeID, err)
			}
			seeded.Employees++
		}

		for day := 0; day < DemoDays; day++ {
			date := dateonly.FromTime(today.AddDate(0, 0, -day))
			_, err := records.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
				Employee: emp.ID,
				Date:     date.String(),
				Status:   string(demoStatus(i, day)),
			})
			if errors.Is(err, attendance.ErrAlreadyMarked) {
				continue
			}
			if err != nil {
				return seeded, fmt.Errorf("mark attendance %s %s: %w", req.EmployeeID, date, err)
			}
			seeded.Attendance++
		}
	}

	slog.Info("Demo data seeded", "employees", seeded.Employees, "attendance", seeded.Attendance)
	return seeded, nil
}
