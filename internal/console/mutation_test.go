package console

import (
	"context"
	"fmt"
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutationCoordinator_CreateEmployee(t *testing.T) {
	backend := seededBackend()
	c, drain := newTestConsole(backend)

	draft := EmployeeDraft{EmployeeID: "EMP100", FullName: "Jane Doe", Email: "jane@x.com", Department: "IT"}
	created, err := c.Mutations.CreateEmployee(context.Background(), &draft)
	require.NoError(t, err)

	assert.Equal(t, "EMP100", created.EmployeeID)
	assert.Equal(t, EmployeeDraft{}, draft, "draft cleared")
	assert.Len(t, c.Store.Snapshot().Employees, 3, "store reloaded")
	assert.Equal(t, []string{MsgEmployeeAdded}, messages(drain()))
}

func TestMutationCoordinator_CreateEmployeeRejected(t *testing.T) {
	backend := seededBackend()
	backend.createEmployee = func(req employee.CreateEmployeeRequest) (employee.Employee, error) {
		return employee.Employee{}, fmt.Errorf("create: %w", errBackendDown)
	}
	c, drain := newTestConsole(backend)
	require.NoError(t, c.Store.Load(context.Background()))

	draft := EmployeeDraft{EmployeeID: "EMP001", FullName: "Dup", Email: "dup@x.com", Department: "HR"}
	_, err := c.Mutations.CreateEmployee(context.Background(), &draft)
	assert.ErrorIs(t, err, errBackendDown)

	assert.Equal(t, "EMP001", draft.EmployeeID, "draft kept for correction")
	assert.Len(t, c.Store.Snapshot().Employees, 2)
	assert.Equal(t, []string{MsgAddEmployeeFailed}, messages(drain()))
}

func TestMutationCoordinator_CreateAttendance(t *testing.T) {
	backend := seededBackend()
	c, drain := newTestConsole(backend)
	require.NoError(t, c.Filters.Apply(context.Background(), attendance.FilterCriteria{EmployeeID: "EMP001"}))
	drain()

	draft := AttendanceDraft{Employee: "h1", Date: "2024-01-03", Status: attendance.StatusAbsent}
	rec, err := c.Mutations.CreateAttendance(context.Background(), &draft)
	require.NoError(t, err)
	assert.Equal(t, "h1", rec.Employee)

	assert.Equal(t, AttendanceDraft{Date: "2024-01-05", Status: attendance.StatusPresent}, draft)
	assert.Equal(t, c.NewAttendanceDraft(), draft)
	assert.Equal(t, []string{MsgAttendanceMarked}, messages(drain()))

	// the fake stores no business key on new records, so the EMP001 filter still yields the seeded two
	st := c.Store.Snapshot()
	assert.Equal(t, "EMP001", st.Filter.EmployeeID, "filter honoured on refetch")
	assert.Len(t, st.Attendance, 2)
}

func TestMutationCoordinator_CreateAttendanceRejected(t *testing.T) {
	backend := seededBackend()
	backend.markAttendance = func(req attendance.MarkAttendanceRequest) (attendance.Attendance, error) {
		return attendance.Attendance{}, errBackendDown
	}
	c, drain := newTestConsole(backend)

	draft := AttendanceDraft{Employee: "h1", Date: "2024-01-05", Status: attendance.StatusPresent}
	_, err := c.Mutations.CreateAttendance(context.Background(), &draft)
	assert.ErrorIs(t, err, errBackendDown)
	assert.Equal(t, "h1", draft.Employee)
	assert.Equal(t, []string{MsgMarkAttendanceFailed}, messages(drain()))
}

func TestMutationCoordinator_DeleteEmployee(t *testing.T) {
	backend := seededBackend()
	backend.deleteEmployee = func(ctx context.Context, id string) error {
		backend.mu.Lock()
		defer backend.mu.Unlock()
		backend.employees = backend.employees[1:]
		return nil
	}
	c, drain := newTestConsole(backend)
	require.NoError(t, c.Store.Load(context.Background()))

	require.NoError(t, c.Mutations.DeleteEmployee(context.Background(), "h1"))

	_, ok := c.Store.EmployeeByHandle("h1")
	assert.False(t, ok)
	assert.Len(t, c.Store.Snapshot().Employees, 1)
	assert.Equal(t, []string{MsgEmployeeDeleted}, messages(drain()))
}

func TestMutationCoordinator_DeleteEmployeeFailure(t *testing.T) {
	backend := seededBackend()
	backend.deleteEmployee = func(ctx context.Context, id string) error { return errBackendDown }
	c, drain := newTestConsole(backend)
	require.NoError(t, c.Store.Load(context.Background()))

	assert.ErrorIs(t, c.Mutations.DeleteEmployee(context.Background(), "h1"), errBackendDown)
	assert.Len(t, c.Store.Snapshot().Employees, 2)
	assert.Equal(t, []string{MsgDeleteEmployeeFailed}, messages(drain()))
}

func TestConsole_RefreshDashboard(t *testing.T) {
	c, drain := newTestConsole(seededBackend())

	summary, err := c.RefreshDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalEmployees)
	assert.Empty(t, drain())

	require.NoError(t, c.Store.Load(context.Background()))
	assert.Equal(t, summary, c.LocalDashboard())
}
