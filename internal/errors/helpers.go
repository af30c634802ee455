package errors

import (
	"errors"
)

// As is a wrapper around errors.As for *Error targets
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// coded returns the outermost *Error in err's chain
func coded(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// GetCode returns err's code. A nil error is CodeOK and an error without a
// code is CodeInternal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := coded(err); ok {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost coded error, if any
func GetMeta(err error) map[string]any {
	if e, ok := coded(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage returns the outermost message without the code prefix or
// cause. This is the text shown in HTTP error bodies.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := coded(err); ok {
		return e.Message
	}
	return err.Error()
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// Code predicates, false for nil errors

func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }
func IsFailedPrecondition(err error) bool { return HasCode(err, CodeFailedPrecondition) }
func IsInternal(err error) bool { return HasCode(err, CodeInternal) }
func IsUnavailable(err error) bool { return HasCode(err, CodeUnavailable) }
func IsCanceled(err error) bool { return HasCode(err, CodeCanceled) }
func IsDeadlineExceeded(err error) bool { return HasCode(err, CodeDeadlineExceeded) }
