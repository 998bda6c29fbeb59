// Package dto はbookmarkフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateBookmarkReq はPOST /bookmarksのリクエストボディを表します。
type CreateBookmarkReq struct {
	Title       string  `json:"title" binding:"required"`
	Link        string  `json:"link" binding:"required"`
	Description *string `json:"description"`
}
