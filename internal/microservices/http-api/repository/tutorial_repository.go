package repository

import (
	"context"
	"fmt"

	"bookworm/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type TutorialRepository interface {
	List(ctx context.Context, authorEmail string) ([]models.Tutorial, error)
	Create(ctx context.Context, t *models.Tutorial) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type tutorialRepository struct {
	db *gorm.DB
}

func NewTutorialRepository(db *gorm.DB) TutorialRepository {
	return &tutorialRepository{db: db}
}

func (r *tutorialRepository) List(ctx context.Context, authorEmail string) ([]models.Tutorial, error) {
	var list []models.Tutorial
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if authorEmail != "" {
		query = query.Where("author_email = ?", authorEmail)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list tutorials: %w", err)
	}
	return list, nil
}

func (r *tutorialRepository) Create(ctx context.Context, t *models.Tutorial) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create tutorial: %w", err)
	}
	return nil
}

func (r *tutorialRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Tutorial{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("update tutorial: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *tutorialRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Tutorial{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete tutorial: %w", result.Error)
	}
	return result.RowsAffected, nil
}
