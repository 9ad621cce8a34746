package handler

import (
	"errors"
	"net/http"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc service.UserService
	rt  Runtime
}

func NewUserHandler(svc service.UserService, rt Runtime) *UserHandler {
	return &UserHandler{svc: svc, rt: rt}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.PUT("/update-name", h.UpdateName)
	rg.PUT("/update-photo", h.UpdatePhoto)
	rg.GET("/users", h.List)
	rg.GET("/users/:email", h.Get)
	rg.PATCH("/users/role/:email", h.UpdateRole)
}

// POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Name, email and password are required")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	user, err := h.svc.Register(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			badRequest(c, err.Error())
			return
		}
		h.rt.serverError(c, "user.register", err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Registered successfully",
		User:    dto.FromModelToUserResponse(user),
	})
}

// POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email and password are required")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	user, err := h.svc.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		notFound(c, err.Error())
		return
	case errors.Is(err, service.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: err.Error()})
		return
	case err != nil:
		h.rt.serverError(c, "user.login", err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login success",
		User:    dto.FromModelToUserResponse(user),
	})
}

// PUT /update-name
func (h *UserHandler) UpdateName(c *gin.Context) {
	var req dto.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Name == "" {
		badRequest(c, "Email and Name are required")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	if err := h.svc.UpdateName(ctx, req.Email, req.Name); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "User not found or name unchanged")
			return
		}
		h.rt.serverError(c, "user.update_name", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Name updated successfully"})
}

// PUT /update-photo
func (h *UserHandler) UpdatePhoto(c *gin.Context) {
	var req dto.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Image == "" {
		badRequest(c, "Email and Image URL are required")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	if err := h.svc.UpdatePhoto(ctx, req.Email, req.Image); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "User not found or image unchanged")
			return
		}
		h.rt.serverError(c, "user.update_photo", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Photo updated successfully"})
}

// PATCH /users/role/:email
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Role must be one of user, author, admin")
		return
	}

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	if err := h.svc.UpdateRole(ctx, c.Param("email"), req.Role); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "User not found or role unchanged")
			return
		}
		h.rt.serverError(c, "user.update_role", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Role updated successfully"})
}

// GET /users/:email
func (h *UserHandler) Get(c *gin.Context) {
	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	user, err := h.svc.Get(ctx, c.Param("email"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			notFound(c, err.Error())
			return
		}
		h.rt.serverError(c, "user.get", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

// GET /users?page=1&limit=12
func (h *UserHandler) List(c *gin.Context) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		badRequest(c, "Invalid pagination")
		return
	}
	page.Normalize()

	ctx, cancel := h.rt.ctx(c)
	defer cancel()

	users, total, err := h.svc.List(ctx, page)
	if err != nil {
		h.rt.serverError(c, "user.list", err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.FromModelToUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       resp,
		"pagination": dto.NewPagination(page.Page, page.Limit, total),
	})
}
