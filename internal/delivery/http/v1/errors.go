package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-tracker/internal/services"
)

var (
	errInvalidRequestBody = errors.New("invalid request body")
	errAmbiguousMatchKey  = errors.New("empId and project cannot be combined")
)

type apiError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Field   string `json:"field,omitempty"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, err)
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newFieldError(field, message string) apiError {
	err := newBadRequestError(message)
	err.Field = field
	return err
}

// newServiceError renders an error returned by the task service.
func newServiceError(err error) apiError {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return newFieldError(validationErr.Field, validationErr.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		return newNotFoundError(services.ErrTaskNotFound.Error())
	default:
		return newStatusTextError(http.StatusInternalServerError)
	}
}
