package handler

import (
	"errors"
	"net/http"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type TutorialHandler struct {
	svc service.TutorialService
	rt  Runtime
}

func NewTutorialHandler(svc service.TutorialService, rt Runtime) *TutorialHandler {
	return &TutorialHandler{svc: svc, rt: rt}
}

func (h *TutorialHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tutorials := rg.Group("/tutorials")
	{
		tutorials.GET("", h.List)
		tutorials.POST("", h.Create)
		tutorials.PUT("/:id", h.Update)
		tutorials.DELETE("/:id", h.Delete)
	}
}

// GET /tutorials?authorEmail=
func (h *TutorialHandler) List(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	list, err := h.svc.List(ctx, c.Query("authorEmail"))
	if err != nil {
		h.rt.serverError(c, "tutorial.list", err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /tutorials
func (h *TutorialHandler) Create(c *gin.Context) {
	var in dto.CreateTutorialDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Title and a valid videoUrl are required")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	tutorial := in.ToModel()
	if err := h.svc.Create(ctx, &tutorial); err != nil {
		h.rt.serverError(c, "tutorial.create", err)
		return
	}

	c.JSON(http.StatusCreated, tutorial)
}

// PUT /tutorials/:id
func (h *TutorialHandler) Update(c *gin.Context) {
	var in dto.UpdateTutorialDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid tutorial")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	err := h.svc.Update(ctx, c.Param("id"), in)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		badRequest(c, "Nothing to update")
		return
	case errors.Is(err, service.ErrNotFound):
		notFound(c, "Tutorial not found")
		return
	case err != nil:
		h.rt.serverError(c, "tutorial.update", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Tutorial updated successfully"})
}

// DELETE /tutorials/:id
func (h *TutorialHandler) Delete(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Tutorial not found")
			return
		}
		h.rt.serverError(c, "tutorial.delete", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Tutorial deleted successfully"})
}
