package shared

// DomainError is an error raised by domain or application logic. Code is a
// stable machine-readable identifier that handlers map onto HTTP statuses.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError builds a DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = NewDomainError("NOT_FOUND", "Resource not found")
