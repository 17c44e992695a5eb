package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acme/hr-directory/internal/app/services"
	"github.com/acme/hr-directory/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// ListDepartments retrieves all departments
// @Summary List all departments
// @Description Retrieves every department row. Departments are seeded at startup and read-only here.
// @Tags departments
// @Produce json
// @Success 200 {array} models.Department "Departments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.ListDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, departments)
}
