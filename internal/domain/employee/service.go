package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns all employees ordered by employee_id
	ListEmployees(ctx context.Context) ([]Employee, error)

	// GetEmployee retrieves a single employee by handle
	GetEmployee(ctx context.Context, id string) (Employee, error)

	// CreateEmployee registers a new employee with a unique employee_id
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// DeleteEmployee removes an employee together with its attendance records
	DeleteEmployee(ctx context.Context, id string) error
}
