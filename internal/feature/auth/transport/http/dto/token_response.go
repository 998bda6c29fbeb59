package dto

// TokenResponse は認証成功時に返されるアクセストークンを表します。
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
