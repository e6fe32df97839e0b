package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check employee_id: %w", err)
	}
	if exists {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}

	// The repository still maps a racing duplicate to ErrEmployeeIDExists
	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: employee.Department(req.Department),
	})
	if err != nil {
		return employee.Employee{}, err
	}

	slog.Info("Created employee", "id", created.ID, "employee_id", created.EmployeeID)
	return created, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Deleted employee", "id", id)
	return nil
}
