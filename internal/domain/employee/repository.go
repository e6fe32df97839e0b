package employee

import "context"

type EmployeeRepository interface {
	// List returns every employee ordered by business key.
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	// Create persists a new employee. A duplicate business key yields ErrEmployeeIDExists.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// Delete removes the employee and, by cascade, its attendance records.
	Delete(ctx context.Context, id string) error
}
