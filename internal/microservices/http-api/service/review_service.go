package service

import (
	"context"

	"bookworm/internal/microservices/http-api/models"
	"bookworm/internal/microservices/http-api/repository"
)

type ReviewService interface {
	Create(ctx context.Context, review *models.Review) error
	ListApprovedForBook(ctx context.Context, bookID string) ([]models.Review, error)
	ListForAuthor(ctx context.Context, authorEmail, status string) ([]models.Review, error)
	ListByReviewer(ctx context.Context, reviewerEmail string) ([]models.Review, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

// Create stores the review as pending regardless of the status sent by the client.
func (s *reviewService) Create(ctx context.Context, review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}
	review.Status = models.ReviewPending
	return s.repo.Create(ctx, review)
}

func (s *reviewService) ListApprovedForBook(ctx context.Context, bookID string) ([]models.Review, error) {
	return nonNil(s.repo.ListByBook(ctx, bookID, models.ReviewApproved))
}

func (s *reviewService) ListForAuthor(ctx context.Context, authorEmail, status string) ([]models.Review, error) {
	return nonNil(s.repo.ListByAuthor(ctx, authorEmail, status))
}

func (s *reviewService) ListByReviewer(ctx context.Context, reviewerEmail string) ([]models.Review, error) {
	return nonNil(s.repo.ListByReviewer(ctx, reviewerEmail))
}

func (s *reviewService) Approve(ctx context.Context, id string) error {
	affected, err := s.repo.SetStatus(ctx, id, models.ReviewApproved)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nonNil(list []models.Review, err error) ([]models.Review, error) {
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Review{}
	}
	return list, nil
}
