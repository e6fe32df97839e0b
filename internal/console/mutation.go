package console

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/hris-lite-go/internal/client"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/dateonly"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/notify"
)

// EmployeeDraft is the add-employee form.
type EmployeeDraft struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

func (d EmployeeDraft) request() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeID: d.EmployeeID,
		FullName:   d.FullName,
		Email:      d.Email,
		Department: d.Department,
	}
}

// AttendanceDraft is the mark-attendance form. Employee is the employee handle.
type AttendanceDraft struct {
	Employee string
	Date     string
	Status   attendance.Status
}

// NewAttendanceDraft returns the initial form: no employee, today, Present.
func NewAttendanceDraft(today dateonly.Date) AttendanceDraft {
	return AttendanceDraft{Date: today.String(), Status: attendance.StatusPresent}
}

func (d AttendanceDraft) request() attendance.MarkAttendanceRequest {
	return attendance.MarkAttendanceRequest{
		Employee: d.Employee,
		Date:     d.Date,
		Status:   string(d.Status),
	}
}

// MutationCoordinator runs create and delete calls and refreshes the affected collections.
// Failures are published to the hub and returned; a rejected draft is left untouched.
type MutationCoordinator struct {
	backend Backend
	store   *Store
	hub     *notify.Hub
	logger  *slog.Logger
	today   func() dateonly.Date
}

func NewMutationCoordinator(backend Backend, store *Store, hub *notify.Hub, logger *slog.Logger, today func() dateonly.Date) *MutationCoordinator {
	if today == nil {
		today = dateonly.Today
	}
	return &MutationCoordinator{
		backend: backend,
		store:   store,
		hub:     hub,
		logger:  logger,
		today:   today,
	}
}

// CreateEmployee submits the draft. Rejections (duplicate employee_id included) match
// client.ErrValidationFailure and carry the server message.
func (m *MutationCoordinator) CreateEmployee(ctx context.Context, draft *EmployeeDraft) (employee.Employee, error) {
	created, err := m.backend.CreateEmployee(ctx, draft.request())
	if err != nil {
		m.hub.Error(client.Message(err, MsgAddEmployeeFailed))
		return employee.Employee{}, err
	}

	*draft = EmployeeDraft{}
	m.hub.Info(MsgEmployeeAdded)

	// A failed reload is already published by the store; the employee exists either way.
	if err := m.store.Load(ctx); err != nil {
		m.logger.Warn("reload after create employee failed", "error", err)
	}
	return created, nil
}

// CreateAttendance submits the draft and refetches attendance with the active filter.
func (m *MutationCoordinator) CreateAttendance(ctx context.Context, draft *AttendanceDraft) (attendance.Attendance, error) {
	created, err := m.backend.MarkAttendance(ctx, draft.request())
	if err != nil {
		m.hub.Error(client.Message(err, MsgMarkAttendanceFailed))
		return attendance.Attendance{}, err
	}

	*draft = NewAttendanceDraft(m.today())
	m.hub.Info(MsgAttendanceMarked)

	if err := m.store.refreshAttendance(ctx); err != nil {
		m.hub.Error(MsgFetchDataFailed)
		m.logger.Warn("refetch after mark attendance failed", "error", err)
	}
	return created, nil
}

// DeleteEmployee deletes the employee and reloads both collections.
func (m *MutationCoordinator) DeleteEmployee(ctx context.Context, id string) error {
	if err := m.backend.DeleteEmployee(ctx, id); err != nil {
		m.hub.Error(MsgDeleteEmployeeFailed)
		return err
	}

	m.store.removeEmployee(id)
	m.hub.Info(MsgEmployeeDeleted)

	if err := m.store.Load(ctx); err != nil {
		m.logger.Warn("reload after delete employee failed", "error", err)
	}
	return nil
}
