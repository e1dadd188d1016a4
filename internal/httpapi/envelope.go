package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/errs"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *apiError `json:"error,omitempty"`
	RequestID string    `json:"requestId"`
}

func respond(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{
		Success:   true,
		Data:      data,
		RequestID: c.GetString(ctxRequestID),
	})
}

// fail maps the error's kind to a status and writes the error envelope.
// Fatal and transient errors are logged here; expected errors are not.
func fail(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	code := errs.CodeOf(err)
	msg := err.Error()
	if kind == errs.Fatal {
		msg = "internal error"
	}
	if kind == errs.Fatal || kind == errs.Transient {
		log, _ := c.Get(ctxLogger)
		if l, ok := log.(*zap.Logger); ok {
			l.Error("request failed",
				zap.String("path", c.FullPath()),
				zap.String("code", code),
				zap.Error(err))
		}
	}
	c.AbortWithStatusJSON(kind.HTTPStatus(), envelope{
		Success:   false,
		Error:     &apiError{Code: code, Message: msg},
		RequestID: c.GetString(ctxRequestID),
	})
}

func failValidation(c *gin.Context, message string) {
	fail(c, errs.E(errs.Validation, "BAD_REQUEST", message))
}
