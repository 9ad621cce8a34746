package service

import (
	"context"
	"strings"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/models"
	"bookworm/internal/microservices/http-api/repository"
)

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	UpdateName(ctx context.Context, email, name string) error
	UpdatePhoto(ctx context.Context, email, image string) error
	UpdateRole(ctx context.Context, email, role string) error
	Get(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, page dto.PageQuery) ([]models.User, int64, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register stores a new user. Passwords are kept as given; login compares them verbatim.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	email := strings.TrimSpace(req.Email)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	user := &models.User{
		Name:     req.Name,
		Email:    email,
		Password: req.Password,
		Role:     models.RoleUser,
		Image:    req.Image,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Password != password {
		return nil, ErrWrongPassword
	}
	return user, nil
}

func (s *userService) UpdateName(ctx context.Context, email, name string) error {
	return s.updateField(ctx, email, "name", name)
}

func (s *userService) UpdatePhoto(ctx context.Context, email, image string) error {
	return s.updateField(ctx, email, "image", image)
}

func (s *userService) UpdateRole(ctx context.Context, email, role string) error {
	return s.updateField(ctx, email, "role", role)
}

// updateField reports ErrNotFound both for an unknown email and for an unchanged value.
func (s *userService) updateField(ctx context.Context, email, column, value string) error {
	if email == "" || value == "" {
		return ErrMissingFields
	}
	modified, err := s.userRepo.UpdateField(ctx, email, column, value)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *userService) Get(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, page dto.PageQuery) ([]models.User, int64, error) {
	page.Normalize()
	return s.userRepo.List(ctx, page.Limit, page.Offset())
}
