package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acme/hr-directory/internal/app/models"
	"github.com/acme/hr-directory/internal/pkg/apperrors"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *pgxpool.Pool
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
	}
}

// GetAll retrieves all employees. An empty table yields an empty slice, not
// nil, so the JSON layer renders [] rather than null.
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]models.Employee, error) {
	query := `
		SELECT id, name, department_id, created_at, updated_at
		FROM employees
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.DepartmentID,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Create inserts a new employee. Timestamps are assigned by the store so
// created_at and updated_at carry the same clock value.
func (r *EmployeeRepository) Create(ctx context.Context, name string, departmentID *int64) (models.Employee, error) {
	query := `
		INSERT INTO employees (name, department_id)
		VALUES ($1, $2)
		RETURNING id, name, department_id, created_at, updated_at
	`

	var employee models.Employee
	err := r.db.QueryRow(ctx, query, name, departmentID).Scan(
		&employee.ID,
		&employee.Name,
		&employee.DepartmentID,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return models.Employee{}, fmt.Errorf("error creating employee: %w", err)
	}

	return employee, nil
}

// Update replaces an employee's name and department_id wholesale and
// refreshes updated_at. created_at is never touched.
func (r *EmployeeRepository) Update(ctx context.Context, id int64, name string, departmentID *int64) (models.Employee, error) {
	query := `
		UPDATE employees
		SET name = $1, department_id = $2, updated_at = now()
		WHERE id = $3
		RETURNING id, name, department_id, created_at, updated_at
	`

	var employee models.Employee
	err := r.db.QueryRow(ctx, query, name, departmentID, id).Scan(
		&employee.ID,
		&employee.Name,
		&employee.DepartmentID,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, apperrors.ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("error updating employee: %w", err)
	}

	return employee, nil
}

// Delete removes an employee by ID. Deleting an absent id is not an error;
// the affected-row count is deliberately ignored.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM employees WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}

	return nil
}
