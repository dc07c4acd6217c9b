package response

import (
	"net/http"

	"github.com/alimikegami/toy-town/pkg/errs"
	"github.com/labstack/echo/v4"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ValidationError names a rejected request field and the rule it broke.
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

// WriteSuccessResponse answers 200 with data, which may be nil.
func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// WriteErrorResponse renders err in the error envelope. Only sentinel errors
// from pkg/errs reach the client verbatim; anything else is reported as an
// internal server error.
func WriteErrorResponse(c echo.Context, err error, details interface{}) error {
	return WriteStatusResponse(c, errs.GetErrorStatusCode(err), errs.PublicError(err).Error(), details)
}

// WriteValidationErrorResponse answers 400 listing the offending fields.
func WriteValidationErrorResponse(c echo.Context, details []ValidationError) error {
	return WriteErrorResponse(c, errs.ErrClient, details)
}

// WriteStatusResponse writes the error envelope with an explicit status, for
// errors raised by echo itself.
func WriteStatusResponse(c echo.Context, statusCode int, message string, details interface{}) error {
	return c.JSON(statusCode, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Errors:  details,
	})
}
