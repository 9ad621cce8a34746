package handler

import (
	"errors"
	"net/http"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	svc service.CategoryService
	rt  Runtime
}

func NewCategoryHandler(svc service.CategoryService, rt Runtime) *CategoryHandler {
	return &CategoryHandler{svc: svc, rt: rt}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.POST("", h.Create)
		categories.PUT("/:id", h.Rename)
		categories.DELETE("/:id", h.Delete)
	}
}

// GET /categories?authorEmail=
func (h *CategoryHandler) List(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	list, err := h.svc.List(ctx, c.Query("authorEmail"))
	if err != nil {
		h.rt.serverError(c, "category.list", err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var in dto.CreateCategoryDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Category name is required")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	category := in.ToModel()
	if err := h.svc.Create(ctx, &category); err != nil {
		h.writeError(c, "category.create", err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// PUT /categories/:id
func (h *CategoryHandler) Rename(c *gin.Context) {
	var in dto.UpdateCategoryDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Category name is required")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	if err := h.svc.Rename(ctx, c.Param("id"), in.Name); err != nil {
		h.writeError(c, "category.rename", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category updated successfully"})
}

// DELETE /categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		h.writeError(c, "category.delete", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully"})
}

func (h *CategoryHandler) writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrCategoryExists):
		badRequest(c, err.Error())
	case errors.Is(err, service.ErrMissingFields):
		badRequest(c, "Category name is required")
	case errors.Is(err, service.ErrNotFound):
		notFound(c, "Category not found")
	default:
		h.rt.serverError(c, op, err)
	}
}
