package api

// swagger:model api.RegisterResponse
type RegisterResponse struct {
	Message string `json:"message" example:"註冊成功"`
	UserID  int    `json:"userId" example:"1"`
}
