package service

import (
	"context"
	"errors"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/models"
	"bookworm/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

type BookService interface {
	List(ctx context.Context, filters dto.BookFilters) ([]models.Book, int64, error)
	Get(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, id string, in dto.UpdateBookDTO) (*models.Book, error)
	Delete(ctx context.Context, id string) error
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) List(ctx context.Context, filters dto.BookFilters) ([]models.Book, int64, error) {
	filters.Normalize()
	list, total, err := s.repo.Search(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	if list == nil {
		list = []models.Book{}
	}
	return list, total, nil
}

func (s *bookService) Get(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *bookService) Create(ctx context.Context, book *models.Book) error {
	return s.repo.Create(ctx, book)
}

func (s *bookService) Update(ctx context.Context, id string, in dto.UpdateBookDTO) (*models.Book, error) {
	updates := in.Updates()
	if len(updates) == 0 {
		return nil, ErrMissingFields
	}

	affected, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.Get(ctx, id)
}

func (s *bookService) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
