package console

import (
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

func TestState_TransitionsDoNotMutateReceiver(t *testing.T) {
	employees := []employee.Employee{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	base := State{}.SetEmployees(employees)

	removed := base.RemoveEmployee("b")
	assert.Len(t, base.Employees, 3)
	assert.Equal(t, []employee.Employee{{ID: "a"}, {ID: "c"}}, removed.Employees)

	employees[0].ID = "changed"
	assert.Equal(t, "a", base.Employees[0].ID, "SetEmployees copies its input")

	filtered := base.SetFilter(attendance.FilterCriteria{EmployeeID: "EMP1"})
	assert.True(t, base.Filter.IsEmpty())
	assert.Equal(t, "EMP1", filtered.Filter.EmployeeID)
}

func TestState_SetNilIsEmpty(t *testing.T) {
	st := State{}.SetEmployees(nil).SetAttendance(nil)
	assert.NotNil(t, st.Employees)
	assert.NotNil(t, st.Attendance)
	assert.Empty(t, st.Employees)
}

func TestState_RemoveUnknownEmployee(t *testing.T) {
	st := State{}.SetEmployees([]employee.Employee{{ID: "a"}})
	assert.Equal(t, st.Employees, st.RemoveEmployee("zzz").Employees)
}
