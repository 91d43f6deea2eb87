// Package errors carries the error taxonomy shared by the pipeline and the API.
// Import it as perr so the name never shadows the stdlib package.
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// Code classifies an error for wire payloads and HTTP mapping.
// Numeric values ride the wire, so existing entries keep their slot.
type Code uint16

const (
	// CodeUnknown covers anything not classified below
	CodeUnknown Code = iota

	// CodePanic marks a recovered panic
	CodePanic

	// CodeUnavailable marks transient failures worth retrying
	CodeUnavailable

	// CodeTooManyRequests marks rate limiting
	CodeTooManyRequests

	// CodeConflict marks edit conflicts other than duplicate key
	CodeConflict

	// CodeUnauthorized marks missing or bad credentials
	CodeUnauthorized

	// CodeForbidden marks callers the key does not admit
	CodeForbidden

	// CodeInvalidArgument marks bad input parameters
	CodeInvalidArgument

	// CodeValidation marks payloads that failed validate tags
	CodeValidation

	// CodeJSON marks bodies that did not decode
	CodeJSON

	// CodeNotFound marks missing resources
	CodeNotFound

	// CodeDuplicateKey marks unique constraint violations
	CodeDuplicateKey

	// CodeDB marks other database failures
	CodeDB

	// CodeIO marks file open/read/write failures during batch stages
	CodeIO
)

// StatusOf maps a code to its HTTP status
func StatusOf(c Code) int {
	switch c {
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeValidation, CodeJSON:
		return http.StatusBadRequest
	case CodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeDuplicateKey:
		return http.StatusConflict
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		// Unknown, Panic, DB and IO all surface as a plain 500
		return http.StatusInternalServerError
	}
}

// ErrNotFound is the sentinel for empty lookups; compare with errors.Is
var ErrNotFound = New(CodeNotFound, "not found")

// Error pairs a machine code with a developer-facing message. field names
// the offending input when validation raised it, cause holds whatever got
// wrapped.
type Error struct {
	cause error
	text  string
	code  Code
	field string
}

// Wire is the shape an error takes inside a response body
type Wire struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.text, e.cause)
	}
	return e.text
}

// Unwrap exposes the cause to errors.Is / errors.As
func (e *Error) Unwrap() error { return e.cause }

// Code returns the machine code
func (e *Error) Code() Code { return e.code }

// Field returns the offending field name, empty when not set
func (e *Error) Field() string { return e.field }

// ToWire renders the error for a response body. The cause stays out of
// the wire form; only the message written at wrap time goes to callers.
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.text, Field: e.field} }

// WireFrom renders any error. Foreign errors become Unknown and keep
// their Error() text as the message; nil yields the zero Wire.
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	e, ok := As(err)
	if !ok {
		return Wire{Code: CodeUnknown, Message: err.Error()}
	}
	return e.ToWire()
}

// As digs through the chain for one of ours
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// Root walks Unwrap to the deepest cause
func Root(err error) error {
	for {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// CodeOf returns the code carried by err, Unknown for foreign errors
func CodeOf(err error) Code {
	e, ok := As(err)
	if !ok {
		return CodeUnknown
	}
	return e.code
}

// IsCode reports whether err carries the given code
func IsCode(err error, code Code) bool { return CodeOf(err) == code }

// HTTPStatus maps any error to the status its code calls for
func HTTPStatus(err error) int { return StatusOf(CodeOf(err)) }

// Constructors

// New builds an *Error from a code and message
func New(code Code, msg string) error { return &Error{code: code, text: msg} }

// Newf builds an *Error with a formatted message
func Newf(code Code, format string, a ...any) error {
	return &Error{code: code, text: fmt.Sprintf(format, a...)}
}

// Wrap keeps cause in the chain under a new code and message
func Wrap(cause error, code Code, msg string) error {
	return &Error{code: code, text: msg, cause: cause}
}

// Wrapf is Wrap with a formatted message
func Wrapf(cause error, code Code, format string, a ...any) error {
	return &Error{code: code, text: fmt.Sprintf(format, a...), cause: cause}
}

// WithField returns a copy carrying field; foreign errors pass through
// untouched. The copy keeps shared errors immutable.
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// Per-code sugar for the codes call sites actually raise

// NotFoundf builds a NotFound error
func NotFoundf(format string, a ...any) error { return Newf(CodeNotFound, format, a...) }

// InvalidArgf builds an InvalidArgument error
func InvalidArgf(format string, a ...any) error { return Newf(CodeInvalidArgument, format, a...) }

// IOf builds an IO error; stage runners treat these as fatal
func IOf(format string, a ...any) error { return Newf(CodeIO, format, a...) }

// JSONErrf builds a JSON decode error
func JSONErrf(format string, a ...any) error { return Newf(CodeJSON, format, a...) }

// PanicErrf builds a Panic error for recover paths
func PanicErrf(format string, a ...any) error { return Newf(CodePanic, format, a...) }

// Unauthorizedf builds an Unauthorized error
func Unauthorizedf(format string, a ...any) error { return Newf(CodeUnauthorized, format, a...) }

// Retryable reports whether a retry could plausibly succeed.
// Backed by the Postgres classification in pg.go.
func Retryable(err error) bool { return IsRetryable(err) }
