package pkgerror

import "errors"

type Code int

const (
	CodeInternal Code = iota
	CodeInvalidInput
	CodeNotFound
	CodeRateLimited
	CodeUnavailable
)

// BusinessError is an expected failure carrying a code the transport layer
// maps to a response status. It is not used for programming errors.
type BusinessError struct {
	Message string
	Code    Code
	Details map[string]any
}

func NewBusiness(message string, code Code) *BusinessError {
	return &BusinessError{Message: message, Code: code}
}

// WithDetails attaches extra fields rendered alongside the error message.
func (e *BusinessError) WithDetails(details map[string]any) *BusinessError {
	e.Details = details
	return e
}

func (e *BusinessError) Error() string {
	return e.Message
}

// CodeOf extracts the business code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return CodeInternal
}
