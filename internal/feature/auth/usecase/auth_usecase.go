// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"bookmarks_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// PasswordHasher はパスワードのハッシュ化と検証を抽象化します。
type PasswordHasher interface {
	// Hash は平文パスワードからソルト付きハッシュを生成します。
	Hash(password string) (string, error)

	// Verify は保存済みハッシュと平文パスワードを定数時間で比較します。
	// パスワード不一致は(false, nil)、保存ハッシュの破損はエラーを返します。
	Verify(encoded, password string) (bool, error)
}

// TokenGenerator はアクセストークン生成のインターフェースを定義します。
type TokenGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// AuthUsecase は認証ビジネスロジックを実装します。
type AuthUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenGenerator

	// dummyHash はユーザー未検出時のタイミング攻撃緩和に使用します。
	// FindByEmailの結果に関わらず常にハッシュ検証を実行するためのものです。
	dummyHash string
}

// NewAuthUsecase はAuthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenGenerator) *AuthUsecase {
	dummy, err := hasher.Hash("timing-equalizer")
	if err != nil {
		dummy = ""
	}
	return &AuthUsecase{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummy,
	}
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録し、アクセストークンを返します。
// メールアドレスが既に使用されている場合はErrEmailAlreadyExistsを返します。
// 失敗時に部分的な書き込みは発生しません。
func (u *AuthUsecase) Signup(ctx context.Context, email, password string) (string, error) {
	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Login はユーザーを認証し、成功時にアクセストークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもハッシュ検証を実行します。
// ユーザー未検出とパスワード不一致はどちらもErrInvalidCredentialsになります。
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, findErr := u.users.FindByEmail(ctx, email)

	// ユーザー未検出でも常に検証を実行する
	encoded := u.dummyHash
	if findErr == nil {
		encoded = user.Password
	}
	ok, verifyErr := u.hasher.Verify(encoded, password)

	if findErr != nil {
		if errors.Is(findErr, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", findErr
	}
	if verifyErr != nil {
		// 保存ハッシュの破損は認証失敗ではなく整合性エラー
		return "", fmt.Errorf("failed to verify stored hash: %w", verifyErr)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
