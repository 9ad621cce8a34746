package repository

import (
	"context"
	"errors"
	"fmt"

	"bookworm/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, int64, error)
	UpdateField(ctx context.Context, email, column string, value interface{}) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByEmail returns nil, nil when no user has the email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

// UpdateField sets one column on the user with the given email and reports rows modified.
// Writing the value already stored counts as unmodified.
func (r *userRepository) UpdateField(ctx context.Context, email, column string, value interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ? AND "+column+" <> ?", email, value).
		Update(column, value)
	if result.Error != nil {
		return 0, fmt.Errorf("update user %s: %w", column, result.Error)
	}
	return result.RowsAffected, nil
}
