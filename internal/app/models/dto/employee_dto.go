package dto

// EmployeeRequest carries the request body for employee creation and update.
// Both operations replace name/department_id wholesale, so they share a shape.
type EmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	DepartmentID *int64 `json:"department_id"`
}
