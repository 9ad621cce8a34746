package repository

import (
	"context"
	"fmt"
	"strings"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	Search(ctx context.Context, filters dto.BookFilters) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

var bookSortOrders = map[string]string{
	"newest": "created_at DESC",
	"oldest": "created_at ASC",
	"title":  "title ASC",
}

// Search filters by genre, author email and a case-insensitive search over title and author.
// Each whitespace separated token must match title or author.
func (r *bookRepository) Search(ctx context.Context, filters dto.BookFilters) ([]models.Book, int64, error) {
	var list []models.Book
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Book{})
	if filters.Genre != "" {
		query = query.Where("genre = ?", filters.Genre)
	}
	if filters.AuthorEmail != "" {
		query = query.Where("author_email = ?", filters.AuthorEmail)
	}
	for _, t := range strings.Fields(filters.Search) {
		p := "%" + strings.ToLower(t) + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(author) LIKE ?)", p, p)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	order, ok := bookSortOrders[filters.Sort]
	if !ok {
		order = bookSortOrders["newest"]
	}

	if err := query.
		Order(order).
		Limit(filters.Limit).
		Offset(filters.Offset()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("search books: %w", err)
	}

	return list, total, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *bookRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Book{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("update book: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *bookRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Book{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete book: %w", result.Error)
	}
	return result.RowsAffected, nil
}
