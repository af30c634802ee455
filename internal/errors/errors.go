package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error is a coded error. Message is safe to show a user; Meta is for logs.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error formats as "CODE: message" with ": cause" appended when wrapped
func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && t.Code == e.Code
}

// WithMeta sets key on the receiver's metadata and returns the receiver
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds message to err. The code and a copy of the metadata carry over
// from the nearest *Error in the chain; anything else becomes CodeInternal.
func Wrap(err error, message string) *Error {
	return wrap(err, "", message)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return wrap(err, "", fmt.Sprintf(format, args...))
}

// WrapWithCode is Wrap with the code forced to code
func WrapWithCode(err error, code Code, message string) *Error {
	return wrap(err, code, message)
}

// WrapWithCodef is WrapWithCode with a formatted message
func WrapWithCodef(err error, code Code, format string, args ...any) *Error {
	return wrap(err, code, fmt.Sprintf(format, args...))
}

func wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	out := &Error{Code: CodeInternal, Message: message, Cause: err}
	if inner, ok := coded(err); ok {
		out.Code = inner.Code
		out.Meta = maps.Clone(inner.Meta)
	}
	if code != "" {
		out.Code = code
	}
	return out
}

// Constructors for the codes in codes.go

func NotFound(message string) *Error { return New(CodeNotFound, message) }
func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }

func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

func Unavailable(message string) *Error { return New(CodeUnavailable, message) }
func Unavailablef(format string, args ...any) *Error { return Newf(CodeUnavailable, format, args...) }

func Canceled(message string) *Error { return New(CodeCanceled, message) }
func DeadlineExceeded(message string) *Error { return New(CodeDeadlineExceeded, message) }
