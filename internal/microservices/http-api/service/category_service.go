package service

import (
	"context"
	"strings"

	"bookworm/internal/microservices/http-api/models"
	"bookworm/internal/microservices/http-api/repository"
)

type CategoryService interface {
	List(ctx context.Context, authorEmail string) ([]models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context, authorEmail string) ([]models.Category, error) {
	list, err := s.repo.List(ctx, authorEmail)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Category{}
	}
	return list, nil
}

func (s *categoryService) Create(ctx context.Context, c *models.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrMissingFields
	}

	exists, err := s.repo.ExistsByName(ctx, c.Name, "")
	if err != nil {
		return err
	}
	if exists {
		return ErrCategoryExists
	}

	return s.repo.Create(ctx, c)
}

func (s *categoryService) Rename(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMissingFields
	}

	exists, err := s.repo.ExistsByName(ctx, name, id)
	if err != nil {
		return err
	}
	if exists {
		return ErrCategoryExists
	}

	affected, err := s.repo.Rename(ctx, id, name)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
