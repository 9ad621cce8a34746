package handler

import (
	"net/http"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type LibraryHandler struct {
	svc service.LibraryService
	rt  Runtime
}

func NewLibraryHandler(svc service.LibraryService, rt Runtime) *LibraryHandler {
	return &LibraryHandler{svc: svc, rt: rt}
}

func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/my-library", h.Add)
	rg.GET("/my-library/:email", h.List)
	rg.DELETE("/my-library/remove/:id", h.Remove)
}

// Add shelves a book or re-shelves it in place
// POST /my-library
func (h *LibraryHandler) Add(c *gin.Context) {
	var req dto.AddToLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid library entry")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	result, err := h.svc.Add(ctx, req)
	if err != nil {
		h.rt.serverError(c, "library.add", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// List returns a user's shelf, most recently added first
// GET /my-library/:email
func (h *LibraryHandler) List(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	entries, err := h.svc.List(ctx, c.Param("email"))
	if err != nil {
		h.rt.serverError(c, "library.list", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Remove deletes one entry by id and succeeds even when nothing matched
// DELETE /my-library/remove/:id
func (h *LibraryHandler) Remove(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	result, err := h.svc.Remove(ctx, c.Param("id"))
	if err != nil {
		h.rt.serverError(c, "library.remove", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
