package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Lifecycle errors
	ErrInvalidState    = errors.New("operation not valid for current status")
	ErrVersionConflict = errors.New("record was modified concurrently")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrBadRequest       = errors.New("bad request")

	// External collaborator errors. Both are retryable at the caller's
	// discretion and never retried automatically.
	ErrOracleUnavailable = errors.New("decision oracle unavailable")
	ErrStoreUnavailable  = errors.New("document store unavailable")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Entity sentinels wrap the base categories so callers can match either the
// specific entity or the broad class.

// Student errors
var (
	ErrStudentNotFound      error = &CustomError{Err: ErrResourceNotFound, Message: "student not found"}
	ErrStudentAlreadyExists error = &CustomError{Err: ErrResourceAlreadyExists, Message: "student already exists"}
	ErrStudentHasAdmissions error = &CustomError{Err: ErrConflict, Message: "student has admission applications and cannot be deleted"}
)

// Admission errors
var (
	ErrAdmissionNotFound      error = &CustomError{Err: ErrResourceNotFound, Message: "admission application not found"}
	ErrAdmissionAlreadyExists error = &CustomError{Err: ErrResourceAlreadyExists, Message: "admission application already exists for this student and program"}
)

// Document errors
var (
	ErrDocumentNotFound error = &CustomError{Err: ErrResourceNotFound, Message: "document not found"}
)

// Loan errors
var (
	ErrLoanNotFound error = &CustomError{Err: ErrResourceNotFound, Message: "loan application not found"}
)

// Eligibility criteria errors
var (
	ErrCriteriaNotFound error = &CustomError{Err: ErrResourceNotFound, Message: "no eligibility criteria found for program"}
)

// NewNotFoundError creates a new custom error for a missing entity with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewInvalidStateError creates a new custom error for an operation addressed to
// an entity whose current status does not permit it
func NewInvalidStateError(message string) error {
	return &CustomError{
		Err:     ErrInvalidState,
		Message: message,
	}
}

// NewValidationError creates a new custom error for malformed input
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
