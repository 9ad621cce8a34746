package handler

import (
	"errors"
	"net/http"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	svc service.BookService
	rt  Runtime
}

func NewBookHandler(svc service.BookService, rt Runtime) *BookHandler {
	return &BookHandler{svc: svc, rt: rt}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.GET("", h.List)
		books.GET("/:id", h.Get)
		books.POST("", h.Create)
		books.PUT("/:id", h.Update)
		books.DELETE("/:id", h.Delete)
	}
}

// List pages through books
// GET /books?page=1&limit=12&genre=&search=&authorEmail=&sort=newest
func (h *BookHandler) List(c *gin.Context) {
	var filters dto.BookFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		badRequest(c, "Invalid query")
		return
	}
	filters.Normalize()

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	list, total, err := h.svc.List(ctx, filters)
	if err != nil {
		h.rt.serverError(c, "book.list", err)
		return
	}

	c.JSON(http.StatusOK, dto.BookListResponse{
		Data:       list,
		Pagination: dto.NewPagination(filters.Page, filters.Limit, total),
	})
}

// GET /books/:id
func (h *BookHandler) Get(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	book, err := h.svc.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Book not found")
			return
		}
		h.rt.serverError(c, "book.get", err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var in dto.CreateBookDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Title, author and authorEmail are required")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	book := in.ToModel()
	if err := h.svc.Create(ctx, &book); err != nil {
		h.rt.serverError(c, "book.create", err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

// PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	var in dto.UpdateBookDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid book")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	book, err := h.svc.Update(ctx, c.Param("id"), in)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		badRequest(c, "Nothing to update")
		return
	case errors.Is(err, service.ErrNotFound):
		notFound(c, "Book not found")
		return
	case err != nil:
		h.rt.serverError(c, "book.update", err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Book not found")
			return
		}
		h.rt.serverError(c, "book.delete", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Book deleted successfully"})
}
