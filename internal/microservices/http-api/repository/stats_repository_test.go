package repository

import (
	"context"
	"testing"
	"time"

	"bookworm/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedStats(t *testing.T, db *gorm.DB) {
	t.Helper()
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	rows := []interface{}{
		&models.User{Name: "A", Email: "a@x.com", Password: "p"},
		&models.User{Name: "B", Email: "b@x.com", Password: "p"},
		&models.User{Name: "Author", Email: "author@x.com", Password: "p", Role: models.RoleAuthor},

		&models.Book{Title: "One", Author: "Au", AuthorEmail: "author@x.com"},
		&models.Book{Title: "Two", Author: "Au", AuthorEmail: "author@x.com"},
		&models.Book{Title: "Other", Author: "Ot", AuthorEmail: "other@x.com"},

		&models.Category{Name: "Fantasy", AuthorEmail: "author@x.com"},

		&models.Tutorial{Title: "Intro", VideoURL: "https://v.test/1", AuthorEmail: "author@x.com"},
		&models.Tutorial{Title: "Deep", VideoURL: "https://v.test/2", AuthorEmail: "author@x.com"},

		&models.Review{BookID: "b1", AuthorEmail: "author@x.com", ReviewerEmail: "a@x.com", Rating: 4},
		&models.Review{BookID: "b2", AuthorEmail: "author@x.com", ReviewerEmail: "a@x.com", Rating: 5},
		&models.Review{BookID: "b3", AuthorEmail: "other@x.com", ReviewerEmail: "a@x.com", Rating: 4},

		&models.LibraryEntry{BookID: "b1", UserEmail: "a@x.com", Shelf: models.ShelfRead, AddedAt: now},
		&models.LibraryEntry{BookID: "b2", UserEmail: "a@x.com", Shelf: models.ShelfRead, AddedAt: now},
		&models.LibraryEntry{BookID: "b3", UserEmail: "a@x.com", Shelf: models.ShelfCurrentlyReading, AddedAt: now},
		&models.LibraryEntry{BookID: "b4", UserEmail: "a@x.com", Shelf: models.ShelfWantToRead, AddedAt: now},
		&models.LibraryEntry{BookID: "b1", UserEmail: "b@x.com", Shelf: models.ShelfRead, AddedAt: now},
	}
	for _, row := range rows {
		require.NoError(t, db.Create(row).Error)
	}
}

func TestStatsRepository_ReaderQueries(t *testing.T) {
	db := newTestDB(t)
	seedStats(t, db)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	read, err := repo.CountLibraryByShelf(ctx, "a@x.com", models.ShelfRead)
	require.NoError(t, err)
	assert.Equal(t, int64(2), read)

	inProgress, err := repo.CountLibraryByShelf(ctx, "a@x.com", models.ShelfCurrentlyReading)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inProgress)

	agg, err := repo.ReviewAggregateByReviewer(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), agg.TotalReviews)
	assert.InDelta(t, 13.0/3.0, agg.AvgRating, 1e-9)
}

func TestStatsRepository_ReviewAggregateWithoutReviews(t *testing.T) {
	repo := NewStatsRepository(newTestDB(t))

	agg, err := repo.ReviewAggregateByReviewer(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), agg.TotalReviews)
	assert.Equal(t, 0.0, agg.AvgRating)
}

func TestStatsRepository_AdminCounts(t *testing.T) {
	db := newTestDB(t)
	seedStats(t, db)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	books, err := repo.CountBooksByAuthor(ctx, "author@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), books)

	users, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), users)

	categories, err := repo.CountCategoriesByAuthor(ctx, "author@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), categories)

	reviews, err := repo.CountReviewsByAuthor(ctx, "author@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), reviews)

	tutorials, err := repo.CountTutorialsByAuthor(ctx, "author@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), tutorials)
}
