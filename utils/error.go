package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

// The service layer fails with exactly one of these kinds; handlers map them
// to HTTP statuses. Anything else is treated as an internal failure.

// InvalidInputError signals a caller-fixable bad argument (malformed interval,
// non-positive page size, blank required field).
type InvalidInputError struct{ Msg string }

func (e InvalidInputError) Error() string { return e.Msg }

// NotFoundError signals that a referenced user, item, booking or request
// does not exist.
type NotFoundError struct{ Msg string }

func (e NotFoundError) Error() string { return e.Msg }

// ForbiddenError signals an authenticated-but-unauthorized action.
type ForbiddenError struct{ Msg string }

func (e ForbiddenError) Error() string { return e.Msg }

// ConflictError signals a business-rule violation depending on concurrent
// state: overlap, already-decided, not-available, duplicate email.
type ConflictError struct{ Msg string }

func (e ConflictError) Error() string { return e.Msg }

func InvalidInput(msg string) error { return InvalidInputError{Msg: msg} }
func NotFound(msg string) error     { return NotFoundError{Msg: msg} }
func Forbidden(msg string) error    { return ForbiddenError{Msg: msg} }
func Conflict(msg string) error     { return ConflictError{Msg: msg} }

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var cf ConflictError
	return errors.As(err, &cf)
}

// HTTPStatus maps an error kind to its HTTP status code.
func HTTPStatus(err error) int {
	var (
		ii InvalidInputError
		nf NotFoundError
		fb ForbiddenError
		cf ConflictError
	)
	switch {
	case errors.As(err, &ii):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &fb):
		return http.StatusForbidden
	case errors.As(err, &cf):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes the response for a service-layer error. Internal
// failures are logged and surfaced opaquely.
func HandleError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		GetLogger().Error("internal error", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(status, ErrorResponse{Message: "internal error"})
		return
	}
	c.JSON(status, ErrorResponse{Message: err.Error()})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
