package dto

// VerifyReq は/verifyエンドポイントのリクエストボディを表します。
type VerifyReq struct {
	Token string `json:"token" binding:"required"`
}

// RenameReq は/me/nameエンドポイントのリクエストボディを表します。
// 空白のみの名前はドメイン層で拒否されるため、ここでは存在チェックのみ行います。
type RenameReq struct {
	Name string `json:"name" binding:"required"`
}
