package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrBadRequest       = errors.New("bad request")
)

// Employee errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

// Department errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
)
