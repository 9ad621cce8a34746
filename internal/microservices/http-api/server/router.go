package server

import (
	"context"
	"log/slog"
	"time"

	"bookworm/internal/microservices/http-api/handler"
	"bookworm/internal/microservices/http-api/middleware"
	"bookworm/internal/microservices/http-api/repository"
	"bookworm/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Options holds the shared resources the router is built from. Cache may be nil.
type Options struct {
	DB             *gorm.DB
	Cache          service.AdminStatsCache
	Logger         *slog.Logger
	RequestTimeout time.Duration
	CORSOrigins    []string
	Ping           handler.Pinger
}

// routeRegistrar is implemented by every handler
type routeRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	if len(opts.CORSOrigins) > 0 {
		r.Use(middleware.CORS(opts.CORSOrigins))
	}

	rt := handler.Runtime{Logger: logger, RequestTimeout: opts.RequestTimeout}

	// Repositories
	userRepo := repository.NewUserRepository(opts.DB)
	bookRepo := repository.NewBookRepository(opts.DB)
	categoryRepo := repository.NewCategoryRepository(opts.DB)
	tutorialRepo := repository.NewTutorialRepository(opts.DB)
	reviewRepo := repository.NewReviewRepository(opts.DB)
	libraryRepo := repository.NewLibraryRepository(opts.DB)
	statsRepo := repository.NewStatsRepository(opts.DB)

	// Services
	userService := service.NewUserService(userRepo)
	bookService := service.NewBookService(bookRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	tutorialService := service.NewTutorialService(tutorialRepo)
	reviewService := service.NewReviewService(reviewRepo)
	libraryService := service.NewLibraryService(libraryRepo)
	statsService := service.NewStatsService(statsRepo, opts.Cache, logger)

	ping := opts.Ping
	if ping == nil {
		ping = func(ctx context.Context) error {
			sqlDB, err := opts.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}

	handlers := []routeRegistrar{
		handler.NewHealthHandler(ping, rt),
		handler.NewUserHandler(userService, rt),
		handler.NewBookHandler(bookService, rt),
		handler.NewCategoryHandler(categoryService, rt),
		handler.NewTutorialHandler(tutorialService, rt),
		handler.NewReviewHandler(reviewService, rt),
		handler.NewLibraryHandler(libraryService, rt),
		handler.NewStatsHandler(statsService, rt),
	}

	root := r.Group("")
	for _, h := range handlers {
		h.RegisterRoutes(root)
	}

	return r
}
