package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/database"
	"github.com/google/uuid"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, employee_id, full_name, email, department, created_at`

func scanEmployee(row interface{ Scan(...any) error }) (employee.Employee, error) {
	var (
		emp       employee.Employee
		createdAt int64
	)
	if err := row.Scan(&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department, &createdAt); err != nil {
		return employee.Employee{}, err
	}
	emp.CreatedAt = fromMillis(createdAt)
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY employee_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	emp, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return emp, nil
}

// ExistsByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = ?)`, employeeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("generate employee id: %w", err)
	}
	now := time.Now().UTC().Truncate(time.Millisecond)

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO employees (id, employee_id, full_name, email, department, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id.String(), newEmployee.EmployeeID, newEmployee.FullName, newEmployee.Email,
		string(newEmployee.Department), toMillis(now), toMillis(now),
	)
	if err != nil {
		if database.IsSQLiteConstraint(err) {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	newEmployee.ID = id.String()
	newEmployee.CreatedAt = now
	return newEmployee, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Cascade explicitly; the FK clause only fires when foreign_keys is enabled on the connection.
	if _, err := tx.ExecContext(ctx, `DELETE FROM attendances WHERE employee_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete attendance of employee %s: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return employee.ErrEmployeeNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
