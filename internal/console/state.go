package console

import (
	"slices"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
)

// State is an immutable snapshot of the console data. Transitions return a new State and never
// modify the receiver's slices.
type State struct {
	Employees  []employee.Employee
	Attendance []attendance.Attendance
	Filter     attendance.FilterCriteria
}

func (s State) SetEmployees(employees []employee.Employee) State {
	s.Employees = cloneOrEmpty(employees)
	return s
}

func (s State) SetAttendance(records []attendance.Attendance) State {
	s.Attendance = cloneOrEmpty(records)
	return s
}

func (s State) SetFilter(filter attendance.FilterCriteria) State {
	s.Filter = filter
	return s
}

// RemoveEmployee drops the employee with the given handle. Attendance is left to the next fetch.
func (s State) RemoveEmployee(id string) State {
	s.Employees = slices.DeleteFunc(slices.Clone(s.Employees), func(e employee.Employee) bool {
		return e.ID == id
	})
	return s
}

func (s State) clone() State {
	s.Employees = slices.Clone(s.Employees)
	s.Attendance = slices.Clone(s.Attendance)
	return s
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
