package services

import (
	"context"
	"fmt"

	"github.com/acme/hr-directory/internal/app/models"
)

// DepartmentService handles department-related operations
type DepartmentService interface {
	ListDepartments(ctx context.Context) ([]models.Department, error)
}

// DepartmentStore is the data access contract the department service depends on.
type DepartmentStore interface {
	GetAll(ctx context.Context) ([]models.Department, error)
}

type departmentService struct {
	departmentRepo DepartmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo DepartmentStore) DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
	}
}

// ListDepartments retrieves all departments
func (s *departmentService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}

	return departments, nil
}
