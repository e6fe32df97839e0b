package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, full_name, email, department, created_at
		FROM employees
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, &emp.CreatedAt)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	handle, err := uuid.Parse(id)
	if err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	query := `
		SELECT id, employee_id, full_name, email, department, created_at
		FROM employees
		WHERE id = $1
	`

	var found employee.Employee
	err = q.QueryRow(ctx, query, handle).
		Scan(&found.ID, &found.EmployeeID, &found.FullName, &found.Email, &found.Department, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return found, nil
}

// ExistsByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1)`, employeeID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("generate employee id: %w", err)
	}

	query := `
		INSERT INTO employees (id, employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, full_name, email, department, created_at
	`

	var created employee.Employee
	err = q.QueryRow(ctx, query,
		id, newEmployee.EmployeeID, newEmployee.FullName, newEmployee.Email, newEmployee.Department,
	).Scan(&created.ID, &created.EmployeeID, &created.FullName, &created.Email, &created.Department, &created.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Delete implements employee.EmployeeRepository. Attendance rows go with the employee via ON DELETE CASCADE.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	handle, err := uuid.Parse(id)
	if err != nil {
		return employee.ErrEmployeeNotFound
	}

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, handle)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
