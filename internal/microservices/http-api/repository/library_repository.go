package repository

import (
	"context"
	"fmt"

	"bookworm/internal/microservices/http-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// libraryOverwriteColumns are replaced when an entry for the same (book_id, user_email) exists.
// progress and added_at keep the values from the first insert.
var libraryOverwriteColumns = []string{"shelf", "title", "image", "author", "author_email", "total_pages"}

type LibraryRepository interface {
	Upsert(ctx context.Context, entry *models.LibraryEntry) (bool, error)
	ListByUser(ctx context.Context, userEmail string) ([]models.LibraryEntry, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

// Upsert inserts entry or, when one already exists for the same book and user, overwrites the
// snapshot columns in a single INSERT ... ON CONFLICT statement. entry is refreshed from the
// stored row. The returned bool is true when a new row was inserted.
func (r *libraryRepository) Upsert(ctx context.Context, entry *models.LibraryEntry) (bool, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	candidateID := entry.ID

	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "book_id"}, {Name: "user_email"}},
				DoUpdates: clause.AssignmentColumns(libraryOverwriteColumns),
			},
			clause.Returning{},
		).
		Create(entry).Error
	if err != nil {
		return false, fmt.Errorf("upsert library entry: %w", err)
	}

	// on conflict RETURNING yields the existing row, so the id only survives an insert
	return entry.ID == candidateID, nil
}

func (r *libraryRepository) ListByUser(ctx context.Context, userEmail string) ([]models.LibraryEntry, error) {
	var entries []models.LibraryEntry

	if err := r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("added_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list library: %w", err)
	}

	return entries, nil
}

// DeleteByID removes at most one entry. A miss is not an error; the count is 0.
func (r *libraryRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.LibraryEntry{})

	if result.Error != nil {
		return 0, fmt.Errorf("remove from library: %w", result.Error)
	}

	return result.RowsAffected, nil
}
