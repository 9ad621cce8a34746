package dto

import (
	"time"

	"bookworm/internal/microservices/http-api/models"
)

// RegisterRequest: payload for POST /register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Image    string `json:"image"`
}

// LoginRequest: payload for POST /login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateNameRequest: payload for PUT /update-name
type UpdateNameRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UpdatePhotoRequest: payload for PUT /update-photo
type UpdatePhotoRequest struct {
	Email string `json:"email"`
	Image string `json:"image"`
}

// UpdateRoleRequest: payload for PATCH /users/role/:email
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user author admin"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromModelToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
