package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// HandleServiceError maps service errors to HTTP responses. Validation,
// uniqueness and reference errors carry their message to the client; anything
// unexpected is logged and hidden behind a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrConflict):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrForeignKey):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String("trace_id", traceIDFrom(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled service error", zap.Error(err), zap.String("trace_id", traceIDFrom(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
