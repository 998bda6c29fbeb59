// Package dto はuserフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"bookmarks_backend/internal/feature/auth/domain/entity"
)

// UserResp はユーザーの外部表現です。
// パスワードハッシュのフィールドを持たないため、ハッシュが外部に
// シリアライズされることはありません。
type UserResp struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// FromEntity はドメインエンティティをレスポンスDTOに変換します。
func FromEntity(u *entity.User) UserResp {
	return UserResp{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}
