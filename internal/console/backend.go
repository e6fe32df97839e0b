package console

import (
	"context"

	"github.com/cmlabs-hris/hris-lite-go/internal/client"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
)

// Backend is the record-keeping API as seen by the console.
type Backend interface {
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
	ListAttendance(ctx context.Context, filter attendance.FilterCriteria) ([]attendance.Attendance, error)
	MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Attendance, error)
	GetDashboard(ctx context.Context) (dashboard.DashboardSummary, error)
}

type clientBackend struct {
	c *client.Client
}

// NewClientBackend adapts the HTTP client to Backend.
func NewClientBackend(c *client.Client) Backend {
	return &clientBackend{c: c}
}

func (b *clientBackend) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return b.c.Employees.List(ctx)
}

func (b *clientBackend) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	return b.c.Employees.Create(ctx, req)
}

func (b *clientBackend) DeleteEmployee(ctx context.Context, id string) error {
	return b.c.Employees.Delete(ctx, id)
}

func (b *clientBackend) ListAttendance(ctx context.Context, filter attendance.FilterCriteria) ([]attendance.Attendance, error) {
	return b.c.Attendance.List(ctx, filter)
}

func (b *clientBackend) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Attendance, error) {
	return b.c.Attendance.Mark(ctx, req)
}

func (b *clientBackend) GetDashboard(ctx context.Context) (dashboard.DashboardSummary, error) {
	return b.c.Dashboard.Get(ctx)
}
