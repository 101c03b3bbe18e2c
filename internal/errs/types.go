package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// ValidationError is a user-correctable input problem. Its message is shown
// to the caller verbatim.
type ValidationError struct {
	ErrorMessage
}

// InternalError is an unexpected failure. Message is the generic text safe to
// return to callers; Cause is only logged.
type InternalError struct {
	ErrorMessage
	Operation string
	Cause     error
}

func (e *InternalError) Unwrap() error { return e.Cause }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewInternalError(operation, message string, cause error) *InternalError {
	return &InternalError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Cause:        cause,
	}
}
