package console

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/notify"
)

var errBackendDown = errors.New("connection refused")

// fakeBackend serves fixed collections. Hooks override single calls.
type fakeBackend struct {
	mu         sync.Mutex
	employees  []employee.Employee
	attendance []attendance.Attendance

	listEmployeesErr error
	listAttendance   func(ctx context.Context, filter attendance.FilterCriteria) ([]attendance.Attendance, error)
	createEmployee   func(req employee.CreateEmployeeRequest) (employee.Employee, error)
	deleteEmployee   func(ctx context.Context, id string) error
	markAttendance   func(req attendance.MarkAttendanceRequest) (attendance.Attendance, error)
	deleteCalls      int
}

func (f *fakeBackend) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listEmployeesErr != nil {
		return nil, f.listEmployeesErr
	}
	return append([]employee.Employee(nil), f.employees...), nil
}

func (f *fakeBackend) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if f.createEmployee != nil {
		return f.createEmployee(req)
	}
	emp := employee.Employee{ID: "h-" + req.EmployeeID, EmployeeID: req.EmployeeID, FullName: req.FullName}
	f.mu.Lock()
	f.employees = append(f.employees, emp)
	f.mu.Unlock()
	return emp, nil
}

func (f *fakeBackend) DeleteEmployee(ctx context.Context, id string) error {
	f.mu.Lock()
	f.deleteCalls++
	hook := f.deleteEmployee
	f.mu.Unlock()
	if hook != nil {
		return hook(ctx, id)
	}
	return nil
}

func (f *fakeBackend) ListAttendance(ctx context.Context, filter attendance.FilterCriteria) ([]attendance.Attendance, error) {
	if f.listAttendance != nil {
		return f.listAttendance(ctx, filter)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	bounds := filter.Bounds()
	out := []attendance.Attendance{}
	for _, rec := range f.attendance {
		if bounds.Match(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeBackend) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Attendance, error) {
	if f.markAttendance != nil {
		return f.markAttendance(req)
	}
	rec := attendance.Attendance{ID: "a-" + req.Date, Employee: req.Employee, Date: dateonly.MustParse(req.Date), Status: attendance.Status(req.Status)}
	f.mu.Lock()
	f.attendance = append(f.attendance, rec)
	f.mu.Unlock()
	return rec, nil
}

func (f *fakeBackend) GetDashboard(ctx context.Context) (dashboard.DashboardSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return dashboard.Summarize(f.employees, f.attendance, dateonly.MustParse("2024-01-05")), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConsole returns a console over backend and a function draining published notifications.
func newTestConsole(backend Backend) (*Console, func() []notify.Notification) {
	hub := notify.NewHub(discardLogger())
	ch, _ := hub.Subscribe()
	c := New(backend, Options{
		Logger: discardLogger(),
		Hub:    hub,
		Today:  func() dateonly.Date { return dateonly.MustParse("2024-01-05") },
	})
	drain := func() []notify.Notification {
		var out []notify.Notification
		for {
			select {
			case n := <-ch:
				out = append(out, n)
			default:
				return out
			}
		}
	}
	return c, drain
}

func messages(ns []notify.Notification) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.Message)
	}
	return out
}
