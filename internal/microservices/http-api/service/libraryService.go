package service

import (
	"context"
	"time"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/models"
	"bookworm/internal/microservices/http-api/repository"
)

type LibraryService interface {
	Add(ctx context.Context, req dto.AddToLibraryRequest) (*dto.UpdateResult, error)
	List(ctx context.Context, userEmail string) ([]models.LibraryEntry, error)
	Remove(ctx context.Context, id string) (*dto.DeleteResult, error)
}

type libraryService struct {
	repo repository.LibraryRepository
	now  func() time.Time
}

func NewLibraryService(repo repository.LibraryRepository) LibraryService {
	return &libraryService{
		repo: repo,
		now:  time.Now,
	}
}

// Add shelves a book for a user, or re-shelves it when the pair already exists.
// The write is a single upsert in the store; there is no lookup beforehand.
func (s *libraryService) Add(ctx context.Context, req dto.AddToLibraryRequest) (*dto.UpdateResult, error) {
	entry := req.ToModel(s.now().UTC())

	inserted, err := s.repo.Upsert(ctx, &entry)
	if err != nil {
		return nil, err
	}

	if inserted {
		return &dto.UpdateResult{
			Acknowledged:  true,
			UpsertedCount: 1,
			UpsertedID:    entry.ID,
		}, nil
	}
	return &dto.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  1,
		ModifiedCount: 1,
	}, nil
}

func (s *libraryService) List(ctx context.Context, userEmail string) ([]models.LibraryEntry, error) {
	entries, err := s.repo.ListByUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.LibraryEntry{}
	}
	return entries, nil
}

func (s *libraryService) Remove(ctx context.Context, id string) (*dto.DeleteResult, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
