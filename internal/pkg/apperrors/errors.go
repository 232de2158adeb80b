package apperrors

import "errors"

// Validation pipeline errors. These are the terminal reject reasons of the
// insert/update pipeline, checked in priority order: missing field, invalid
// type, invalid format, reference not found, duplicate.
var (
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidType       = errors.New("invalid field type")
	ErrInvalidFormat     = errors.New("invalid field format")
	ErrReferenceNotFound = errors.New("referenced record not found")
	ErrDuplicateEntry    = errors.New("duplicate entry")
)

// Resource errors
var (
	ErrRecordNotFound = errors.New("record not found")
)

// Entity errors
var (
	ErrClassNotFound     = errors.New("class not found")
	ErrSectionNotFound   = errors.New("section not found")
	ErrMeetingNotFound   = errors.New("meeting not found")
	ErrRoomNotFound      = errors.New("room not found")
	ErrRequisiteNotFound = errors.New("requisite not found")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// NewMissingFieldError creates a missing-field error naming the field.
func NewMissingFieldError(field string) error {
	return &CustomError{
		Err:     ErrMissingField,
		Message: "missing required field: " + field,
		Field:   field,
	}
}

// NewInvalidTypeError creates an invalid-type error naming the field.
func NewInvalidTypeError(field string) error {
	return &CustomError{
		Err:     ErrInvalidType,
		Message: "invalid datatype for " + field,
		Field:   field,
	}
}

// NewInvalidFormatError creates an invalid-format error naming the field.
func NewInvalidFormatError(field, want string) error {
	return &CustomError{
		Err:     ErrInvalidFormat,
		Message: "invalid format for " + field + ", expected " + want,
		Field:   field,
	}
}

// NewReferenceNotFoundError creates a dangling-reference error naming the field.
func NewReferenceNotFoundError(field string) error {
	return &CustomError{
		Err:     ErrReferenceNotFound,
		Message: field + " not found",
		Field:   field,
	}
}

// NewDuplicateError creates a duplicate-entry error for an entity's natural key.
func NewDuplicateError(message string) error {
	return &CustomError{
		Err:     ErrDuplicateEntry,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
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

// FieldOf extracts the offending field name when err carries one.
func FieldOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}
