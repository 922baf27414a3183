package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kherrera/devfolio/internal/utils"
)

// APIError is the wire shape of every non-2xx response: a machine-readable
// code plus a safe message. Internal causes are logged via c.Errors, never
// returned to the caller.
type APIError struct {
	Error   utils.Code `json:"error"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		_ = c.Error(err) // picked up by the request logger
	}

	var ae *utils.AppError
	if errors.As(err, &ae) {
		msg := ae.Message
		if status >= http.StatusInternalServerError {
			msg = http.StatusText(status)
		}
		c.JSON(status, APIError{Error: ae.Code, Message: msg})
		return
	}

	c.JSON(status, APIError{
		Error:   utils.CodeInternal,
		Message: http.StatusText(status),
	})
}
