package service

import (
	"context"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/models"
	"bookworm/internal/microservices/http-api/repository"
)

type TutorialService interface {
	List(ctx context.Context, authorEmail string) ([]models.Tutorial, error)
	Create(ctx context.Context, t *models.Tutorial) error
	Update(ctx context.Context, id string, in dto.UpdateTutorialDTO) error
	Delete(ctx context.Context, id string) error
}

type tutorialService struct {
	repo repository.TutorialRepository
}

func NewTutorialService(repo repository.TutorialRepository) TutorialService {
	return &tutorialService{repo: repo}
}

func (s *tutorialService) List(ctx context.Context, authorEmail string) ([]models.Tutorial, error) {
	list, err := s.repo.List(ctx, authorEmail)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Tutorial{}
	}
	return list, nil
}

func (s *tutorialService) Create(ctx context.Context, t *models.Tutorial) error {
	return s.repo.Create(ctx, t)
}

func (s *tutorialService) Update(ctx context.Context, id string, in dto.UpdateTutorialDTO) error {
	updates := in.Updates()
	if len(updates) == 0 {
		return ErrMissingFields
	}
	affected, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *tutorialService) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
