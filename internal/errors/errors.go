package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrFieldsRequired is returned when a required field is missing.
	ErrFieldsRequired = errors.New("all fields are required")
	// ErrInvalidRole is returned when a role is outside the known set.
	ErrInvalidRole = errors.New("invalid role")
	// ErrSessionNameRequired is returned when a session name is empty after trimming.
	ErrSessionNameRequired = errors.New("session name is required")
	// ErrSessionCodeRequired is returned when a check-in omits the session code.
	ErrSessionCodeRequired = errors.New("session code is required")
	// ErrDuplicateUser is returned when the username or email is already registered.
	ErrDuplicateUser = errors.New("username or email already registered")
	// ErrInvalidCredentials is returned on a failed login. Deliberately the same
	// for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when the bearer token is missing, malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAdminOnly is returned when a non-admin calls an admin operation.
	ErrAdminOnly = errors.New("admin role required")
	// ErrInstructorOnly is returned when a non-instructor calls an instructor operation.
	ErrInstructorOnly = errors.New("instructor role required")
	// ErrStudentOnly is returned when a non-student attempts a check-in.
	ErrStudentOnly = errors.New("student role required")
	// ErrUserNotFound is returned when no user matches the given external id.
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound is returned when a session is absent or not visible to
	// the caller. Non-owners get the same answer as "absent".
	ErrSessionNotFound = errors.New("session not found")
	// ErrAttendanceNotFound is returned when an attendance record is absent.
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy is reported as a generic internal error so persistence details
// never cross the boundary.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrFieldsRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "FIELDS_REQUIRED")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrSessionNameRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SESSION_NAME_REQUIRED")
	case errors.Is(err, ErrSessionCodeRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SESSION_CODE_REQUIRED")
	case errors.Is(err, ErrDuplicateUser):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_USER")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrAdminOnly), errors.Is(err, ErrInstructorOnly), errors.Is(err, ErrStudentOnly):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrSessionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SESSION_NOT_FOUND")
	case errors.Is(err, ErrAttendanceNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ATTENDANCE_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
