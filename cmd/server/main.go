package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"bookmarks_backend/internal/app/router"
	authadapters "bookmarks_backend/internal/feature/auth/adapters"
	authhandler "bookmarks_backend/internal/feature/auth/transport/handler"
	authusecase "bookmarks_backend/internal/feature/auth/usecase"
	bookmarkadapters "bookmarks_backend/internal/feature/bookmark/adapters"
	bookmarkhandler "bookmarks_backend/internal/feature/bookmark/transport/handler"
	bookmarkusecase "bookmarks_backend/internal/feature/bookmark/usecase"
	userhandler "bookmarks_backend/internal/feature/user/transport/handler"
	userusecase "bookmarks_backend/internal/feature/user/usecase"
	"bookmarks_backend/internal/platform/cache"
	"bookmarks_backend/internal/platform/config"
	platformdb "bookmarks_backend/internal/platform/db"
	"bookmarks_backend/internal/platform/hash"
	jwtmw "bookmarks_backend/internal/platform/jwt"
	platformredis "bookmarks_backend/internal/platform/redis"
)

func main() {
	// .env はローカル開発用。無ければ環境変数のみで動く
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db, err := platformdb.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewClient(cfg); err != nil {
		slog.Warn("redis unavailable, running without cache", "error", err)
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	bookmarkRepo := bookmarkadapters.NewBookmarkPostgres(db)

	// Redisキャッシュでラップ
	cachedBookmarkRepo := cache.NewCachingBookmarkRepository(rdb, 0, bookmarkRepo, "bookmarks")

	// Usecase
	hasher := hash.NewHasher()
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, tokens)
	userUC := userusecase.NewUserUsecase(userRepo)
	bookmarkUC := bookmarkusecase.NewBookmarkUsecase(cachedBookmarkRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := userhandler.NewUserHandler(userUC)
	bookmarkH := bookmarkhandler.NewBookmarkHandler(bookmarkUC)

	// ルータ生成
	r := router.NewRouter(cfg.JWTSecret, authH, userH, bookmarkH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
