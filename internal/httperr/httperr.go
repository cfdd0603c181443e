package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError writes err using its business kind. Internal causes are never leaked.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) || be.Kind == KindInternal {
		code := "internal_error"
		if be.Code != "" {
			code = be.Code
		}
		Internal(c, code, "Something went wrong.")
		return
	}

	message := be.Message
	if message == "" {
		message = be.Code
	}
	Write(c, be.StatusCode(), be.Code, message)
}
