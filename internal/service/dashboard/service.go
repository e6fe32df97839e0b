package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	today          func() dateonly.Date
}

func NewDashboardService(employeeRepo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		today:          dateonly.Today,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardSummary, error) {
	var (
		employees []employee.Employee
		records   []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.List(gCtx, attendance.Bounds{})
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardSummary{}, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	return dashboard.Summarize(employees, records, s.today()), nil
}
