package dto

import "bookmarks_backend/internal/feature/bookmark/domain/entity"

// BookmarkResp はブックマークの外部表現です。
// descriptionが未設定の場合はnullとしてシリアライズされます。
type BookmarkResp struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	Description *string `json:"description"`
}

// FromEntity はドメインエンティティをレスポンスDTOに変換します。
func FromEntity(b *entity.Bookmark) BookmarkResp {
	return BookmarkResp{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Link:        b.Link,
		Description: b.Description,
	}
}
