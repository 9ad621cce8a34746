package repository

import (
	"context"
	"fmt"

	"bookworm/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	List(ctx context.Context, authorEmail string) ([]models.Category, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, c *models.Category) error
	Rename(ctx context.Context, id, name string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context, authorEmail string) ([]models.Category, error) {
	var list []models.Category
	query := r.db.WithContext(ctx).Order("name ASC")
	if authorEmail != "" {
		query = query.Where("author_email = ?", authorEmail)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// ExistsByName compares names ignoring case. excludeID skips the category being renamed.
func (r *categoryRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}
	return count > 0, nil
}

func (r *categoryRepository) Create(ctx context.Context, c *models.Category) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *categoryRepository) Rename(ctx context.Context, id, name string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return 0, fmt.Errorf("rename category: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete category: %w", result.Error)
	}
	return result.RowsAffected, nil
}
