package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the store answers.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping Pinger
	rt   Runtime
}

func NewHealthHandler(ping Pinger, rt Runtime) *HealthHandler {
	return &HealthHandler{ping: ping, rt: rt}
}

func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
	rg.GET("/check-conn", h.CheckConn)
}

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "BookWorm server")
}

// GET /check-conn
func (h *HealthHandler) CheckConn(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.rt.serverError(c, "health.ping", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
}
