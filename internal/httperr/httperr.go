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

// Codes that map to 404 instead of the default 400.
var notFoundCodes = map[string]bool{
	"doctor_not_found":      true,
	"appointment_not_found": true,
	"queue_entry_not_found": true,
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

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteError maps an engine failure onto the wire. Business errors keep
// their code and message; anything else becomes an opaque 500.
func WriteError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		status := http.StatusBadRequest
		if notFoundCodes[be.Code] {
			status = http.StatusNotFound
		}
		Write(c, status, be.Code, be.Message)
		return
	}

	Internal(c, "internal_error", "Something went wrong.")
}
