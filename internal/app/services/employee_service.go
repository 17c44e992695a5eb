package services

import (
	"context"
	"fmt"

	"github.com/acme/hr-directory/internal/app/models"
	"github.com/acme/hr-directory/internal/app/models/dto"
)

// EmployeeService handles employee-related operations
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, input dto.EmployeeRequest) (models.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, input dto.EmployeeRequest) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

// EmployeeStore is the data access contract the employee service depends on.
// Repositories satisfy it; tests substitute a stub.
type EmployeeStore interface {
	GetAll(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, name string, departmentID *int64) (models.Employee, error)
	Update(ctx context.Context, id int64, name string, departmentID *int64) (models.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	employeeRepo EmployeeStore
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo EmployeeStore) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees retrieves all employees
func (s *employeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees: %w", err)
	}

	return employees, nil
}

// CreateEmployee creates a new employee. Referential integrity of
// department_id is left to the store's foreign key constraint.
func (s *employeeService) CreateEmployee(ctx context.Context, input dto.EmployeeRequest) (models.Employee, error) {
	employee, err := s.employeeRepo.Create(ctx, input.Name, input.DepartmentID)
	if err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}

// UpdateEmployee replaces an employee's mutable fields
func (s *employeeService) UpdateEmployee(ctx context.Context, id int64, input dto.EmployeeRequest) (models.Employee, error) {
	employee, err := s.employeeRepo.Update(ctx, id, input.Name, input.DepartmentID)
	if err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}

// DeleteEmployee removes an employee by ID
func (s *employeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}

	return nil
}
