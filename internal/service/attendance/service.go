package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.Employee)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.Attendance{}, attendance.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, err := dateonly.Parse(req.Date)
	if err != nil {
		return attendance.Attendance{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		Employee:     emp.ID,
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.FullName,
		Date:         date,
		Status:       attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.Attendance{}, err
	}

	slog.Info("Marked attendance", "employee_id", created.EmployeeID, "date", created.Date.String(), "status", created.Status)
	return created, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.FilterCriteria) ([]attendance.Attendance, error) {
	records, err := s.attendanceRepo.List(ctx, filter.Bounds())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}
