package pkg

import "fmt"

// AppError is the application-level error carried between use cases and the
// HTTP layer. Code is a stable machine-readable kind; Message is the
// human-readable text returned to callers.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDomainError builds an AppError wrapping an underlying cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError with no underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// ToHTTPError renders the JSON error body: the human message under "error"
// plus the stable kind under "code".
func (e *AppError) ToHTTPError() map[string]any {
	return map[string]any{
		"error": e.Message,
		"code":  e.Code,
	}
}
