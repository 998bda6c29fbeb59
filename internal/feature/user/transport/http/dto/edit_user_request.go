package dto

// EditUserReq はPATCH /usersの部分更新ボディを表します。
// 省略されたフィールドは変更されません。
type EditUserReq struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}
