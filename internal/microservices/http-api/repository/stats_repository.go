package repository

import (
	"context"
	"fmt"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// StatsRepository holds the counting and aggregation queries behind the dashboards.
type StatsRepository interface {
	CountLibraryByShelf(ctx context.Context, userEmail, shelf string) (int64, error)
	ReviewAggregateByReviewer(ctx context.Context, reviewerEmail string) (dto.ReviewAggregate, error)

	CountBooksByAuthor(ctx context.Context, authorEmail string) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountCategoriesByAuthor(ctx context.Context, authorEmail string) (int64, error)
	CountReviewsByAuthor(ctx context.Context, authorEmail string) (int64, error)
	CountTutorialsByAuthor(ctx context.Context, authorEmail string) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) count(ctx context.Context, model interface{}, query string, args ...interface{}) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) CountLibraryByShelf(ctx context.Context, userEmail, shelf string) (int64, error) {
	count, err := r.count(ctx, &models.LibraryEntry{}, "user_email = ? AND shelf = ?", userEmail, shelf)
	if err != nil {
		return 0, fmt.Errorf("count library shelf %q: %w", shelf, err)
	}
	return count, nil
}

// ReviewAggregateByReviewer averages the ratings of every review the user wrote.
// With no matching rows both fields are 0.
func (r *statsRepository) ReviewAggregateByReviewer(ctx context.Context, reviewerEmail string) (dto.ReviewAggregate, error) {
	var agg dto.ReviewAggregate

	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS total_reviews").
		Where("reviewer_email = ?", reviewerEmail).
		Scan(&agg).Error
	if err != nil {
		return dto.ReviewAggregate{}, fmt.Errorf("aggregate reviews: %w", err)
	}

	return agg, nil
}

func (r *statsRepository) CountBooksByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	count, err := r.count(ctx, &models.Book{}, "author_email = ?", authorEmail)
	if err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return count, nil
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	count, err := r.count(ctx, &models.User{}, "")
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (r *statsRepository) CountCategoriesByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	count, err := r.count(ctx, &models.Category{}, "author_email = ?", authorEmail)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}

func (r *statsRepository) CountReviewsByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	count, err := r.count(ctx, &models.Review{}, "author_email = ?", authorEmail)
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return count, nil
}

func (r *statsRepository) CountTutorialsByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	count, err := r.count(ctx, &models.Tutorial{}, "author_email = ?", authorEmail)
	if err != nil {
		return 0, fmt.Errorf("count tutorials: %w", err)
	}
	return count, nil
}
