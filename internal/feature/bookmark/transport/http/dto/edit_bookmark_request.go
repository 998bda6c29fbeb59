package dto

// EditBookmarkReq はPATCH /bookmarks/:idの部分更新ボディを表します。
// 省略されたフィールドは変更されません。
type EditBookmarkReq struct {
	Title       *string `json:"title"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
}
