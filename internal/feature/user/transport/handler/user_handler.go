// Package handler はuserフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookmarks_backend/internal/feature/auth/domain/entity"
	authusecase "bookmarks_backend/internal/feature/auth/usecase"
	"bookmarks_backend/internal/feature/user/transport/http/dto"
	"bookmarks_backend/internal/feature/user/usecase"
	jwtmw "bookmarks_backend/internal/platform/jwt"
)

// UserUsecase はプロフィール操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	Me(ctx context.Context, userID uint) (*entity.User, error)
	Edit(ctx context.Context, userID uint, in usecase.EditUserInput) (*entity.User, error)
}

// UserHandler はプロフィール操作のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Me はGET /users/meを処理し、呼び出し元自身のプロフィールを返します。
// レスポンスにパスワードハッシュは含まれません。
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	user, err := h.users.Me(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to load user", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(user))
}

// Edit はPATCH /usersを処理し、呼び出し元のプロフィールを部分更新します。
// - バリデーションエラー時は400を返却
// - メールアドレス重複時は403を返却
// - 成功時は更新済みプロフィールを200で返却
func (h *UserHandler) Edit(c *gin.Context) {
	userID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req dto.EditUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("edit user validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.Edit(c.Request.Context(), userID, usecase.EditUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, authusecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusForbidden, gin.H{"error": "credentials taken"})
			return
		}
		slog.Error("failed to edit user", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(user))
}
