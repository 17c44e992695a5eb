package models

import "time"

// Employee represents an employee row. DepartmentID is nullable; an employee
// may exist without a department assignment.
type Employee struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DepartmentID *int64    `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
