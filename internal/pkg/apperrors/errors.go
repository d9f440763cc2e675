package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Student errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrNISNAlreadyExists = errors.New("student with this NISN already exists")
	ErrNotHomeroomOwner  = errors.New("student is not in your homeroom class")
)

// Staff errors
var (
	ErrStaffNotFound      = errors.New("staff record not found")
	ErrNIPAlreadyExists   = errors.New("staff with this NIP already exists")
	ErrHomeroomTaken      = errors.New("class already has a homeroom teacher")
	ErrNoHomeroomAssigned = errors.New("no homeroom class assigned")
)

// Record errors
var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrNotRecordAuthor  = errors.New("record belongs to another staff member")
	ErrDateInFuture     = errors.New("date cannot be in the future")
	ErrEndBeforeStart   = errors.New("end date must be after start date")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Achievement errors
var (
	ErrAchievementNotFound     = errors.New("achievement not found")
	ErrAchievementVerified     = errors.New("verified achievement can only be changed by its verifier")
	ErrInvalidAchievementType  = errors.New("invalid achievement type")
	ErrInvalidAchievementLevel = errors.New("invalid achievement level")
)

// Subject errors
var (
	ErrSubjectNotFound    = errors.New("subject not found")
	ErrCodeAlreadyExists  = errors.New("subject with this code already exists")
	ErrNotSubjectAssignee = errors.New("subject is not assigned to you")
	ErrAlreadyAssigned    = errors.New("already assigned")
	ErrAlreadyEnrolled    = errors.New("student already enrolled")
)

// Document errors
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrStorageFailure   = errors.New("file storage operation failed")
)

// Extracurricular errors
var (
	ErrExtracurricularNotFound = errors.New("extracurricular not found")
	ErrClassNotFound           = errors.New("class not found")
	ErrWorkItemNotFound        = errors.New("work item not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
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

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches err or any of the errors in errList
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
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
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

// WithStatusMsg adds a user-friendly status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}
