package repository

import (
	"context"
	"fmt"

	"bookworm/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByBook(ctx context.Context, bookID, status string) ([]models.Review, error)
	ListByAuthor(ctx context.Context, authorEmail, status string) ([]models.Review, error)
	ListByReviewer(ctx context.Context, reviewerEmail string) ([]models.Review, error)
	SetStatus(ctx context.Context, id, status string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) list(ctx context.Context, column, value, status string) ([]models.Review, error) {
	var reviews []models.Review
	query := r.db.WithContext(ctx).Where(column+" = ?", value)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews by %s: %w", column, err)
	}
	return reviews, nil
}

// An empty status matches every status.
func (r *reviewRepository) ListByBook(ctx context.Context, bookID, status string) ([]models.Review, error) {
	return r.list(ctx, "book_id", bookID, status)
}

func (r *reviewRepository) ListByAuthor(ctx context.Context, authorEmail, status string) ([]models.Review, error) {
	return r.list(ctx, "author_email", authorEmail, status)
}

func (r *reviewRepository) ListByReviewer(ctx context.Context, reviewerEmail string) ([]models.Review, error) {
	return r.list(ctx, "reviewer_email", reviewerEmail, "")
}

func (r *reviewRepository) SetStatus(ctx context.Context, id, status string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return 0, fmt.Errorf("update review status: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete review: %w", result.Error)
	}
	return result.RowsAffected, nil
}
