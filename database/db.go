package database

import (
	"context"
	"fmt"
	"log/slog" // use slog for structured logging
	"time"

	"bookworm/internal/config"
	"bookworm/internal/microservices/http-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the postgres pool described by cfg.DatabaseURL and hands it to gorm.
// The returned handle is safe for concurrent use and is shared by every repository.
func Connect(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	connConfig, err := pgx.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	sqlDB := stdlib.OpenDB(*connConfig)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify the connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		// close the db handle if ping fails to avoid resource leak
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), GormConfig(cfg.LogLevel))
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.DBAutoMigrate {
		if err := Migrate(db); err != nil {
			sqlDB.Close()
			return nil, err
		}
		log.Info("database_migrated")
	}

	log.Info("database_connected", "host", connConfig.Host, "database", connConfig.Database)
	return db, nil
}

// GormConfig maps the application log level onto gorm's SQL logger.
func GormConfig(logLevel string) *gorm.Config {
	level := logger.Warn
	switch logLevel {
	case "debug":
		level = logger.Info
	case "error":
		level = logger.Error
	}
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	}
}

// Migrate creates or updates the tables for every collection.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Category{},
		&models.Tutorial{},
		&models.Review{},
		&models.LibraryEntry{},
	); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Ping checks the store is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
