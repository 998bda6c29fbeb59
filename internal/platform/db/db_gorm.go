// Package db opens the PostgreSQL connection used by every repository.
package db

import (
	"fmt"
	"log/slog"
	"time"

	authentity "bookmarks_backend/internal/feature/auth/domain/entity"
	bookmarkentity "bookmarks_backend/internal/feature/bookmark/domain/entity"
	"bookmarks_backend/internal/platform/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// connectTimeout bounds the startup retry loop.
const connectTimeout = 60 * time.Second

// Open connects to PostgreSQL, retrying until connectTimeout elapses.
// When cfg.RunMigrations is set it also runs GORM auto-migration for the
// User and Bookmark tables.
func Open(cfg config.Config) (*gorm.DB, error) {
	dsn := cfg.DSN()

	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		conn, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", connectTimeout, err)
		}
		slog.Warn("DB connect failed, retrying...", "error", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := conn.AutoMigrate(
			&authentity.User{},
			&bookmarkentity.Bookmark{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return conn, nil
}
