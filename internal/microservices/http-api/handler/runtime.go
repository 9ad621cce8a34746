package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bookworm/internal/microservices/http-api/dto"

	"github.com/gin-gonic/gin"
)

const defaultRequestTimeout = 5 * time.Second

// Runtime carries what every handler needs besides its service.
type Runtime struct {
	Logger         *slog.Logger
	RequestTimeout time.Duration
}

func (rt Runtime) logger() *slog.Logger {
	if rt.Logger == nil {
		return slog.Default()
	}
	return rt.Logger
}

// ctx bounds a store round trip by the request timeout
func (rt Runtime) ctx(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := rt.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// serverError logs err and answers 500 without leaking its text.
func (rt Runtime) serverError(c *gin.Context, op string, err error) {
	rt.logger().Error("request_failed",
		"op", op,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err.Error(),
	)
	c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Server error"})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: message})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.MessageResponse{Message: message})
}
