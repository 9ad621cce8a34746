package service

import (
	"context"
	"log/slog"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/models"
	"bookworm/internal/microservices/http-api/repository"

	"golang.org/x/sync/errgroup"
)

// AdminStatsCache stores finished admin snapshots. Get returns nil, nil on a miss.
type AdminStatsCache interface {
	Get(ctx context.Context, authorEmail string) (*dto.AdminStats, error)
	Set(ctx context.Context, authorEmail string, stats *dto.AdminStats) error
}

type StatsService interface {
	ReaderStats(ctx context.Context, userEmail string) (*dto.ReaderStats, error)
	AdminStats(ctx context.Context, authorEmail string) (*dto.AdminStats, error)
}

type statsService struct {
	repo   repository.StatsRepository
	cache  AdminStatsCache
	logger *slog.Logger
}

// NewStatsService builds the dashboard service. cache may be nil.
func NewStatsService(repo repository.StatsRepository, cache AdminStatsCache, logger *slog.Logger) StatsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &statsService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *statsService) ReaderStats(ctx context.Context, userEmail string) (*dto.ReaderStats, error) {
	totalRead, err := s.repo.CountLibraryByShelf(ctx, userEmail, models.ShelfRead)
	if err != nil {
		return nil, err
	}

	inProgress, err := s.repo.CountLibraryByShelf(ctx, userEmail, models.ShelfCurrentlyReading)
	if err != nil {
		return nil, err
	}

	agg, err := s.repo.ReviewAggregateByReviewer(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	return &dto.ReaderStats{
		TotalRead:    totalRead,
		InProgress:   inProgress,
		AvgRating:    dto.AverageRating{Value: agg.AvgRating, Count: agg.TotalReviews},
		TotalReviews: agg.TotalReviews,
	}, nil
}

// AdminStats runs the five counts concurrently and waits for all of them. The first failure
// cancels the rest and is returned; there is no partial snapshot.
func (s *statsService) AdminStats(ctx context.Context, authorEmail string) (*dto.AdminStats, error) {
	if cached := s.cachedAdminStats(ctx, authorEmail); cached != nil {
		return cached, nil
	}

	var stats dto.AdminStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalBooks, err = s.repo.CountBooksByAuthor(gctx, authorEmail)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalUsers, err = s.repo.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalCategories, err = s.repo.CountCategoriesByAuthor(gctx, authorEmail)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalReviews, err = s.repo.CountReviewsByAuthor(gctx, authorEmail)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalTutorials, err = s.repo.CountTutorialsByAuthor(gctx, authorEmail)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, authorEmail, &stats); err != nil {
			s.logger.Warn("stats_cache_set_failed", "author_email", authorEmail, "error", err.Error())
		}
	}

	return &stats, nil
}

func (s *statsService) cachedAdminStats(ctx context.Context, authorEmail string) *dto.AdminStats {
	if s.cache == nil {
		return nil
	}
	stats, err := s.cache.Get(ctx, authorEmail)
	if err != nil {
		s.logger.Warn("stats_cache_get_failed", "author_email", authorEmail, "error", err.Error())
		return nil
	}
	return stats
}
