package handler

import (
	"errors"
	"net/http"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc service.ReviewService
	rt  Runtime
}

func NewReviewHandler(svc service.ReviewService, rt Runtime) *ReviewHandler {
	return &ReviewHandler{svc: svc, rt: rt}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	{
		reviews.POST("", h.Create)
		reviews.GET("/book/:bookId", h.ListForBook)       // approved only
		reviews.GET("/author/:email", h.ListForAuthor)    // ?status=pending|approved
		reviews.GET("/reviewer/:email", h.ListByReviewer) // everything the user wrote
		reviews.PATCH("/approve/:id", h.Approve)
		reviews.DELETE("/:id", h.Delete)
	}
}

// POST /reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var in dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "bookId, reviewerEmail and rating are required")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	review := in.ToModel()
	if err := h.svc.Create(ctx, &review); err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			badRequest(c, err.Error())
			return
		}
		h.rt.serverError(c, "review.create", err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GET /reviews/book/:bookId
func (h *ReviewHandler) ListForBook(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	list, err := h.svc.ListApprovedForBook(ctx, c.Param("bookId"))
	if err != nil {
		h.rt.serverError(c, "review.list_book", err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /reviews/author/:email
func (h *ReviewHandler) ListForAuthor(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	list, err := h.svc.ListForAuthor(ctx, c.Param("email"), c.Query("status"))
	if err != nil {
		h.rt.serverError(c, "review.list_author", err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /reviews/reviewer/:email
func (h *ReviewHandler) ListByReviewer(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	list, err := h.svc.ListByReviewer(ctx, c.Param("email"))
	if err != nil {
		h.rt.serverError(c, "review.list_reviewer", err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// PATCH /reviews/approve/:id
func (h *ReviewHandler) Approve(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	if err := h.svc.Approve(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Review not found")
			return
		}
		h.rt.serverError(c, "review.approve", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Review approved"})
}

// DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Review not found")
			return
		}
		h.rt.serverError(c, "review.delete", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Review deleted successfully"})
}
