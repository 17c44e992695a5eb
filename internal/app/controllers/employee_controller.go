package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acme/hr-directory/internal/app/models/dto"
	"github.com/acme/hr-directory/internal/app/services"
	"github.com/acme/hr-directory/internal/middleware"
)

// EmployeeController handles employee-related operations
type EmployeeController struct {
	employeeService services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// ListEmployees retrieves all employees
// @Summary List all employees
// @Description Retrieves every employee row. An empty table yields an empty array.
// @Tags employees
// @Produce json
// @Success 200 {array} models.Employee "Employees retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [get]
func (c *EmployeeController) ListEmployees(ctx *gin.Context) {
	employees, err := c.employeeService.ListEmployees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, employees)
}

// CreateEmployee handles employee creation
// @Summary Create a new employee
// @Description Creates an employee with the provided name and optional department
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.EmployeeRequest true "Employee information"
// @Success 201 {object} models.Employee "Employee created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var input dto.EmployeeRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	employee, err := c.employeeService.CreateEmployee(ctx, input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, employee)
}

// UpdateEmployee replaces an employee's name and department
// @Summary Update an employee
// @Description Replaces name and department_id wholesale and refreshes updated_at
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID" Format(int64)
// @Param request body dto.EmployeeRequest true "Employee information"
// @Success 200 {object} models.Employee "Employee updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [put]
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid employee ID"))
		return
	}

	var input dto.EmployeeRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	employee, err := c.employeeService.UpdateEmployee(ctx, id, input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, employee)
}

// DeleteEmployee removes an employee
// @Summary Delete an employee
// @Description Hard-deletes an employee. Deleting a non-existent id still returns 204.
// @Tags employees
// @Param id path int true "Employee ID" Format(int64)
// @Success 204 "Employee deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid employee ID"))
		return
	}

	if err := c.employeeService.DeleteEmployee(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
