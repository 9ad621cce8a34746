package service

import (
	"context"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/models"

	"github.com/stretchr/testify/mock"
)

// MockLibraryRepository mocks the LibraryRepository interface
type MockLibraryRepository struct {
	mock.Mock
}

func (m *MockLibraryRepository) Upsert(ctx context.Context, entry *models.LibraryEntry) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}

func (m *MockLibraryRepository) ListByUser(ctx context.Context, userEmail string) ([]models.LibraryEntry, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LibraryEntry), args.Error(1)
}

func (m *MockLibraryRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockStatsRepository mocks the StatsRepository interface
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountLibraryByShelf(ctx context.Context, userEmail, shelf string) (int64, error) {
	args := m.Called(ctx, userEmail, shelf)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) ReviewAggregateByReviewer(ctx context.Context, reviewerEmail string) (dto.ReviewAggregate, error) {
	args := m.Called(ctx, reviewerEmail)
	return args.Get(0).(dto.ReviewAggregate), args.Error(1)
}

func (m *MockStatsRepository) CountBooksByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	args := m.Called(ctx, authorEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountCategoriesByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	args := m.Called(ctx, authorEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountReviewsByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	args := m.Called(ctx, authorEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountTutorialsByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	args := m.Called(ctx, authorEmail)
	return args.Get(0).(int64), args.Error(1)
}

// MockStatsCache mocks the AdminStatsCache interface
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, authorEmail string) (*dto.AdminStats, error) {
	args := m.Called(ctx, authorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AdminStats), args.Error(1)
}

func (m *MockStatsCache) Set(ctx context.Context, authorEmail string, stats *dto.AdminStats) error {
	args := m.Called(ctx, authorEmail, stats)
	return args.Error(0)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) UpdateField(ctx context.Context, email, column string, value interface{}) (int64, error) {
	args := m.Called(ctx, email, column, value)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepository mocks the CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context, authorEmail string) ([]models.Category, error) {
	args := m.Called(ctx, authorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *models.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Rename(ctx context.Context, id, name string) (int64, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) ListByBook(ctx context.Context, bookID, status string) ([]models.Review, error) {
	args := m.Called(ctx, bookID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByAuthor(ctx context.Context, authorEmail, status string) ([]models.Review, error) {
	args := m.Called(ctx, authorEmail, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByReviewer(ctx context.Context, reviewerEmail string) ([]models.Review, error) {
	args := m.Called(ctx, reviewerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) SetStatus(ctx context.Context, id, status string) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockBookRepository mocks the BookRepository interface
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Search(ctx context.Context, filters dto.BookFilters) ([]models.Book, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Book), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) Create(ctx context.Context, book *models.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
