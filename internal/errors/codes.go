package errors

import "net/http"

// Code classifies an error for callers and for HTTP responses
type Code string

// Codes used by xwsbot. The dispatcher picks the user notice from the code
// and the stage that failed, so adding a code here means deciding how it
// reads to a Discord user.
const (
	CodeOK Code = "OK"
	// CodeCanceled: the bot is shutting down or the caller gave up. No notice.
	CodeCanceled Code = "CANCELED"
	// CodeInvalidArgument: bad config, bad input, or a conversion service
	// body that is not an XWS document.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeDeadlineExceeded: the conversion service did not answer in time.
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	// CodeNotFound: a reference record or a data directory does not exist.
	CodeNotFound Code = "NOT_FOUND"
	// CodeFailedPrecondition: the squad is missing its faction or pilots.
	// Meta "missing" names which.
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	// CodeInternal: a stored record will not decode, a panic, or any error
	// that carries no code.
	CodeInternal Code = "INTERNAL"
	// CodeUnavailable: Redis, Discord or the conversion service failed.
	CodeUnavailable Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus maps the code onto the reference API's responses
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeCanceled:
		return http.StatusRequestTimeout
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case CodeNotFound:
		return http.StatusNotFound
	case CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
