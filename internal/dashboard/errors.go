package dashboard

// Code classifies service-level errors for the delivery surfaces.
type Code string

const (
	CodeValidation       Code = "VALIDATION"
	CodeInvalidDateRange Code = "INVALID_DATE_RANGE"
)

// CodedError is a user-reportable pipeline-blocking error.
type CodedError struct {
	Code    Code
	Message string
}

func (e *CodedError) Error() string { return e.Message }

func validationErr(msg string) *CodedError {
	return &CodedError{Code: CodeValidation, Message: msg}
}
