// Package usecase はuserフィーチャー（プロフィール参照・編集）のビジネスロジックを実装します。
package usecase

import (
	"context"

	"bookmarks_backend/internal/feature/auth/domain/entity"
)

// UserRepository はプロフィール操作に必要な永続化層を抽象化します。
// 認証フィーチャーのリポジトリ実装がこのインターフェースも満たします。
type UserRepository interface {
	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update はユーザーを保存します。メールアドレスが他のユーザーと
	// 重複する場合はエラーを返します。
	Update(ctx context.Context, u *entity.User) error
}

// EditUserInput は部分更新の入力です。nilのフィールドは変更されません。
type EditUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserUsecase はプロフィール操作を実装します。
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase はUserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// Me は呼び出し元自身のユーザーレコードを返します。
func (u *UserUsecase) Me(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// Edit は呼び出し元のプロフィールを部分更新します。
// nilでないフィールドのみ変更されます。
func (u *UserUsecase) Edit(ctx context.Context, userID uint, in EditUserInput) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = in.FirstName
	}
	if in.LastName != nil {
		user.LastName = in.LastName
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
