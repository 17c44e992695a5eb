package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acme/hr-directory/internal/app/models/dto"
	"github.com/acme/hr-directory/internal/pkg/apperrors"
	"github.com/acme/hr-directory/internal/pkg/dberrors"
	"github.com/acme/hr-directory/internal/pkg/logger"
)

// HandleAPIError is the centralized failure translator. Every handler
// forwards its store-interaction errors here instead of mapping statuses
// ad hoc per route. Diagnostic detail stays in the server log; clients get a
// uniform {error} payload.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Employee not found"))
		return
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Department not found"))
		return
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
		return
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	default:
		logStoreFailure(c, err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}
}

// logStoreFailure records the failure's diagnostic detail server-side.
// Constraint violations are classified for the log only; the response stays
// a generic 500 either way.
func logStoreFailure(c *gin.Context, err error) {
	event := logger.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", GetRequestID(c))

	switch {
	case dberrors.IsForeignKeyViolation(err):
		event = event.Str("constraint", "foreign_key")
	case dberrors.IsNotNullViolation(err):
		event = event.Str("constraint", "not_null")
	case dberrors.IsUniqueViolation(err):
		event = event.Str("constraint", "unique")
	}

	event.Msg("request failed")
}
