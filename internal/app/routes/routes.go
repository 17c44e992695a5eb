package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/acme/hr-directory/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	employeeController *controllers.EmployeeController,
	departmentController *controllers.DepartmentController,
) {
	api := router.Group("/api")

	employees := api.Group("/employees")
	{
		employees.GET("", employeeController.ListEmployees)
		employees.POST("", employeeController.CreateEmployee)
		employees.PUT("/:id", employeeController.UpdateEmployee)
		employees.DELETE("/:id", employeeController.DeleteEmployee)
	}

	departments := api.Group("/departments")
	{
		departments.GET("", departmentController.ListDepartments)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
