package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusUnavailable    = http.StatusServiceUnavailable
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrInvalidID      = errors.New("Identifier must be a 24 character hex string")
	ErrNotFound       = errors.New("Resource not found")
	ErrConflict       = errors.New("Conflicting record found")
	ErrUnavailable    = errors.New("Service temporarily unavailable")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrClient:         ErrStatusClient,
	ErrInvalidID:      ErrStatusClient,
	ErrNotFound:       ErrStatusNotFound,
	ErrConflict:       ErrStatusConflict,
	ErrUnavailable:    ErrStatusUnavailable,
}

// GetErrorStatusCode maps err, or any sentinel it wraps, to an HTTP status.
// Unknown errors are reported as 500.
func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for sentinel, errStatusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return errStatusCode
		}
	}

	return errorMap[ErrInternalServer]
}

// PublicError returns the sentinel a client may see for err. Errors that do not
// wrap a known sentinel are hidden behind ErrInternalServer.
func PublicError(err error) error {
	for sentinel := range errorMap {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	return ErrInternalServer
}
