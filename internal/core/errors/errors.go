package errors

const (
	HttpInternalError          = "internal_error"
	HttpInvalidJsonError       = "invalid_json"
	HttpInvalidRequestError    = "invalid_request"
	HttpNotFoundError          = "not_found"
	HttpUnauthorizedError      = "unauthorized"
	HttpAuthNotConfiguredError = "auth_not_configured"
)

// ErrorResponse is the error response body shared by all endpoints.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
