package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-api-boilerplate/pkg/apperr"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	TraceID   string      `json:"trace_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// ErrorBody is the structured error payload rendered for application
// errors.
type ErrorBody struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// Success writes a success envelope and returns it.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		TraceID:   ctx.GetString("trace_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	}
	ctx.JSON(status, resp)
	return resp
}

// Error writes an error envelope and returns it.
func Error[T any](ctx *gin.Context, status int, message string, errBody interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		TraceID:   ctx.GetString("trace_id"),
		Success:   false,
		Message:   message,
		Error:     errBody,
	}
	ctx.JSON(status, resp)
	return resp
}

// AppError renders a structured application error, attaching the
// request's trace id when the error carries none.
func AppError(ctx *gin.Context, e *apperr.Error) APIResponse[any] {
	traceID := e.TraceID
	if traceID == "" {
		traceID = ctx.GetString("trace_id")
	}
	resp := APIResponse[any]{
		Status:    e.Status,
		Timestamp: time.Now(),
		TraceID:   traceID,
		Success:   false,
		Message:   e.Message,
		Error:     ErrorBody{Code: string(e.Code), Details: e.Details},
	}
	ctx.JSON(e.Status, resp)
	return resp
}
