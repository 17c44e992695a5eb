package dto

// ErrorResponse is the uniform error payload for every failure status.
type ErrorResponse struct {
	Error string `json:"error" example:"Employee not found"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
