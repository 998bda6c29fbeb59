// Package handler はbookmarkフィーチャーのHTTPハンドラーを提供します。
// すべてのルートはJWTミドルウェアの背後にあり、解決済みの呼び出し元IDで
// 所有者スコープの操作を行います。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookmarks_backend/internal/feature/bookmark/domain/entity"
	"bookmarks_backend/internal/feature/bookmark/transport/http/dto"
	"bookmarks_backend/internal/feature/bookmark/usecase"
	jwtmw "bookmarks_backend/internal/platform/jwt"
)

// BookmarkUsecase はブックマーク操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type BookmarkUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Bookmark, error)
	Create(ctx context.Context, userID uint, title, link string, description *string) (*entity.Bookmark, error)
	GetByID(ctx context.Context, userID, bookmarkID uint) (*entity.Bookmark, error)
	Edit(ctx context.Context, userID, bookmarkID uint, in usecase.EditBookmarkInput) (*entity.Bookmark, error)
	Delete(ctx context.Context, userID, bookmarkID uint) error
}

// BookmarkHandler はブックマーク操作のHTTPリクエストを処理します。
type BookmarkHandler struct {
	bookmarks BookmarkUsecase
}

// NewBookmarkHandler はBookmarkHandlerの新しいインスタンスを生成します。
func NewBookmarkHandler(bookmarks BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

// List はGET /bookmarksを処理します。
// 呼び出し元が所有するブックマークを200で返します。空の配列も正常な結果です。
func (h *BookmarkHandler) List(c *gin.Context) {
	userID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	bookmarks, err := h.bookmarks.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list bookmarks", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]dto.BookmarkResp, 0, len(bookmarks))
	for i := range bookmarks {
		out = append(out, dto.FromEntity(&bookmarks[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create はPOST /bookmarksを処理します。
// - リクエストJSONをCreateBookmarkReqにバインド、バリデーションエラー時は400を返却
// - 成功時は採番されたIDを含むレコードを201で返却
func (h *BookmarkHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req dto.CreateBookmarkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create bookmark validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	b, err := h.bookmarks.Create(c.Request.Context(), userID, req.Title, req.Link, req.Description)
	if err != nil {
		slog.Error("failed to create bookmark", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, dto.FromEntity(b))
}

// GetByID はGET /bookmarks/:idを処理します。
// レコードが存在しない場合と他ユーザー所有の場合は、どちらも同じ404になります。
func (h *BookmarkHandler) GetByID(c *gin.Context) {
	userID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	bookmarkID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark id"})
		return
	}

	b, err := h.bookmarks.GetByID(c.Request.Context(), userID, bookmarkID)
	if err != nil {
		if errors.Is(err, usecase.ErrBookmarkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bookmark not found"})
			return
		}
		slog.Error("failed to get bookmark", "error", err, "user_id", userID, "bookmark_id", bookmarkID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(b))
}

// Edit はPATCH /bookmarks/:idを処理します。
// 所有権の不一致または未検出は403を返します（既存コントラクト互換）。
func (h *BookmarkHandler) Edit(c *gin.Context) {
	userID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	bookmarkID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark id"})
		return
	}

	var req dto.EditBookmarkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("edit bookmark validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	b, err := h.bookmarks.Edit(c.Request.Context(), userID, bookmarkID, usecase.EditBookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrAccessDenied) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access to resource denied"})
			return
		}
		slog.Error("failed to edit bookmark", "error", err, "user_id", userID, "bookmark_id", bookmarkID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(b))
}

// Delete はDELETE /bookmarks/:idを処理します。
// 成功時は204を空ボディで返します。
func (h *BookmarkHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	bookmarkID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark id"})
		return
	}

	if err := h.bookmarks.Delete(c.Request.Context(), userID, bookmarkID); err != nil {
		if errors.Is(err, usecase.ErrAccessDenied) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access to resource denied"})
			return
		}
		slog.Error("failed to delete bookmark", "error", err, "user_id", userID, "bookmark_id", bookmarkID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID は:idパスパラメータを数値IDに変換します。
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
