// Package adapters はbookmarkフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bookmarks_backend/internal/feature/bookmark/domain/entity"
	"bookmarks_backend/internal/feature/bookmark/usecase"
)

// bookmarkPostgres はBookmarkRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type bookmarkPostgres struct {
	db *gorm.DB
}

// bookmarkPostgresがBookmarkRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.BookmarkRepository = (*bookmarkPostgres)(nil)

// NewBookmarkPostgres は指定されたgorm.DB接続でbookmarkPostgresの新しいインスタンスを生成します。
func NewBookmarkPostgres(db *gorm.DB) *bookmarkPostgres {
	return &bookmarkPostgres{db: db}
}

// ListByUser は指定ユーザーのブックマークをID昇順（挿入順）で返します。
func (r *bookmarkPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.Bookmark, error) {
	var bookmarks []entity.Bookmark
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Create はブックマークをデータベースに追加します。
func (r *bookmarkPostgres) Create(ctx context.Context, b *entity.Bookmark) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// FindFirst はIDと所有者の両方に一致するブックマークを取得します。
// 一致しない場合、usecase.ErrBookmarkNotFoundを返します。
func (r *bookmarkPostgres) FindFirst(ctx context.Context, id, userID uint) (*entity.Bookmark, error) {
	var b entity.Bookmark
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrBookmarkNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByID は所有者を問わずIDでブックマークを取得します。
// 存在しない場合、usecase.ErrBookmarkNotFoundを返します。
func (r *bookmarkPostgres) FindByID(ctx context.Context, id uint) (*entity.Bookmark, error) {
	var b entity.Bookmark
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrBookmarkNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Update はブックマークを単一ステートメントで保存します。
func (r *bookmarkPostgres) Update(ctx context.Context, b *entity.Bookmark) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Delete はブックマークを単一ステートメントで削除します。
func (r *bookmarkPostgres) Delete(ctx context.Context, b *entity.Bookmark) error {
	return r.db.WithContext(ctx).Delete(b).Error
}
