package handler

import (
	"net/http"

	"bookworm/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	svc service.StatsService
	rt  Runtime
}

func NewStatsHandler(svc service.StatsService, rt Runtime) *StatsHandler {
	return &StatsHandler{svc: svc, rt: rt}
}

func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user/stats/:email", h.Reader)
	rg.GET("/admin/stats/:email", h.Admin)
}

// Reader returns the reader dashboard
// GET /user/stats/:email
func (h *StatsHandler) Reader(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	stats, err := h.svc.ReaderStats(ctx, c.Param("email"))
	if err != nil {
		h.rt.serverError(c, "stats.reader", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Admin returns the admin/author dashboard
// GET /admin/stats/:email
func (h *StatsHandler) Admin(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	stats, err := h.svc.AdminStats(ctx, c.Param("email"))
	if err != nil {
		h.rt.serverError(c, "stats.admin", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
