// Package usecase はbookmarkフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"bookmarks_backend/internal/feature/bookmark/domain/entity"
)

// BookmarkRepository はブックマークエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type BookmarkRepository interface {
	// ListByUser は指定ユーザーが所有するすべてのブックマークを挿入順で返します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Bookmark, error)

	// Create は新しいブックマークをストレージに永続化し、採番されたIDを書き戻します。
	Create(ctx context.Context, b *entity.Bookmark) error

	// FindFirst はIDと所有者の両方に一致するブックマークを取得します。
	// 一致しない場合、ErrBookmarkNotFoundを返します。
	FindFirst(ctx context.Context, id, userID uint) (*entity.Bookmark, error)

	// FindByID は所有者を問わずIDでブックマークを取得します。
	// 存在しない場合、ErrBookmarkNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Bookmark, error)

	// Update はブックマークを保存します。
	Update(ctx context.Context, b *entity.Bookmark) error

	// Delete はブックマークを完全に削除します。
	Delete(ctx context.Context, b *entity.Bookmark) error
}

// EditBookmarkInput は部分更新の入力です。nilのフィールドは変更されません。
type EditBookmarkInput struct {
	Title       *string
	Link        *string
	Description *string
}

// BookmarkUsecase は所有者スコープのブックマーク操作を実装します。
// すべての読み取り・変更は呼び出し元の所有レコードに限定されます。
type BookmarkUsecase struct {
	bookmarks BookmarkRepository
}

// NewBookmarkUsecase はBookmarkUsecaseの新しいインスタンスを生成します。
func NewBookmarkUsecase(bookmarks BookmarkRepository) *BookmarkUsecase {
	return &BookmarkUsecase{bookmarks: bookmarks}
}

// List は呼び出し元が所有するブックマークを挿入順で返します。
// 空のスライスは正常な結果です。
func (u *BookmarkUsecase) List(ctx context.Context, userID uint) ([]entity.Bookmark, error) {
	return u.bookmarks.ListByUser(ctx, userID)
}

// Create は呼び出し元を所有者として新しいブックマークを作成し、
// 採番されたIDを含む保存済みレコードを返します。
func (u *BookmarkUsecase) Create(ctx context.Context, userID uint, title, link string, description *string) (*entity.Bookmark, error) {
	b := &entity.Bookmark{
		UserID:      userID,
		Title:       title,
		Link:        link,
		Description: description,
	}
	if err := u.bookmarks.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByID はIDと所有者でブックマークを取得します。
// 存在しない場合と他ユーザー所有の場合は同じErrBookmarkNotFoundになります
// （他ユーザーのレコードの存在を漏らさない）。
func (u *BookmarkUsecase) GetByID(ctx context.Context, userID, bookmarkID uint) (*entity.Bookmark, error) {
	return u.bookmarks.FindFirst(ctx, bookmarkID, userID)
}

// Edit はfetch-then-check-then-updateの手順で部分更新を行います。
// 取得直後のレコードで所有権を再検証し、不一致または未検出はErrAccessDeniedを返します。
// nilでないフィールドのみ変更されます。
func (u *BookmarkUsecase) Edit(ctx context.Context, userID, bookmarkID uint, in EditBookmarkInput) (*entity.Bookmark, error) {
	b, err := u.bookmarks.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, ErrBookmarkNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrAccessDenied
	}

	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Link != nil {
		b.Link = *in.Link
	}
	if in.Description != nil {
		b.Description = in.Description
	}

	if err := u.bookmarks.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete はfetch-then-check-then-deleteの手順でブックマークを削除します。
// 不一致または未検出はErrAccessDeniedを返します。削除は取り消せません。
func (u *BookmarkUsecase) Delete(ctx context.Context, userID, bookmarkID uint) error {
	b, err := u.bookmarks.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, ErrBookmarkNotFound) {
			return ErrAccessDenied
		}
		return err
	}
	if b.UserID != userID {
		return ErrAccessDenied
	}

	return u.bookmarks.Delete(ctx, b)
}
