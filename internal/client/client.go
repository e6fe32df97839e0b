package client

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
)

// Client speaks the record-keeping API.
type Client struct {
	Transport  *Transport
	Employees  *EmployeeEndpoint
	Attendance *AttendanceEndpoint
	Dashboard  *DashboardEndpoint
}

// New initializes the API client
func New(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	t := NewTransport(baseURL, httpClient, logger)
	return &Client{
		Transport:  t,
		Employees:  &EmployeeEndpoint{transport: t},
		Attendance: &AttendanceEndpoint{transport: t},
		Dashboard:  &DashboardEndpoint{transport: t},
	}
}

type EmployeeEndpoint struct {
	transport *Transport
}

// List returns all employees ordered by employee_id.
func (e *EmployeeEndpoint) List(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	if err := e.transport.Do(ctx, http.MethodGet, "/employees/", nil, nil, &employees); err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	return employees, nil
}

func (e *EmployeeEndpoint) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var created employee.Employee
	if err := e.transport.Do(ctx, http.MethodPost, "/employees/", nil, req, &created); err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

func (e *EmployeeEndpoint) Delete(ctx context.Context, id string) error {
	return e.transport.Do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(id)+"/", nil, nil, nil)
}

type AttendanceEndpoint struct {
	transport *Transport
}

// List returns attendance records matching filter, newest first. Empty filter fields are not sent.
func (a *AttendanceEndpoint) List(ctx context.Context, filter attendance.FilterCriteria) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	if err := a.transport.Do(ctx, http.MethodGet, "/attendance/", filter.Query(), nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []attendance.Attendance{}
	}
	return records, nil
}

func (a *AttendanceEndpoint) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Attendance, error) {
	var created attendance.Attendance
	if err := a.transport.Do(ctx, http.MethodPost, "/attendance/", nil, req, &created); err != nil {
		return attendance.Attendance{}, err
	}
	return created, nil
}

type DashboardEndpoint struct {
	transport *Transport
}

func (d *DashboardEndpoint) Get(ctx context.Context) (dashboard.DashboardSummary, error) {
	var summary dashboard.DashboardSummary
	if err := d.transport.Do(ctx, http.MethodGet, "/dashboard/", nil, nil, &summary); err != nil {
		return dashboard.DashboardSummary{}, err
	}
	return summary, nil
}
