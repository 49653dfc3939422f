package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Business error codes shared by use cases and handlers.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeInvalidArgument = "invalid_argument"
	CodeInvalidState    = "invalid_state"
	CodeConflict        = "conflict"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// WriteBusiness maps a use-case error to the HTTP response. Non-business
// errors become a 500 with the fallback code.
func WriteBusiness(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, fallbackCode, fallbackMessage)
		return
	}

	msg := be.Message
	if msg == "" {
		msg = fallbackMessage
	}

	switch be.Code {
	case CodeUnauthenticated:
		Write(c, http.StatusUnauthorized, be.Code, msg)
	case CodeForbidden:
		Write(c, http.StatusForbidden, be.Code, msg)
	case CodeNotFound:
		Write(c, http.StatusNotFound, be.Code, msg)
	case CodeConflict:
		Write(c, http.StatusConflict, be.Code, msg)
	default:
		Write(c, http.StatusBadRequest, be.Code, msg)
	}
}
