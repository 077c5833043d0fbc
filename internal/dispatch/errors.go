package dispatch

import "fmt"

// Kind classifies a dispatch failure.
type Kind string

const (
	// KindInvalidRequest marks requests for unknown resources.
	KindInvalidRequest Kind = "invalid-request"
	// KindInvalidParams marks missing or mistyped tool arguments.
	KindInvalidParams Kind = "invalid-params"
	// KindMethodNotFound marks dispatch to an unknown operation.
	KindMethodNotFound Kind = "method-not-found"
	// KindInternal marks remote or serialization failures.
	KindInternal Kind = "internal-error"
)

// Error is a classified dispatch failure. Internal errors carry the
// underlying cause, reachable through Unwrap.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func invalidParams(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidParams, Message: fmt.Sprintf(format, args...)}
}

func invalidRequest(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

func methodNotFound(name string) *Error {
	return &Error{Kind: KindMethodNotFound, Message: fmt.Sprintf("unknown operation %q", name)}
}

func internalErr(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}
