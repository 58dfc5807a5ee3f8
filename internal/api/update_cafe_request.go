package api

// UpdateCafeRequest 經緯度不可直接修改，地址變更時由伺服器重新地理編碼
// swagger:model api.UpdateCafeRequest
type UpdateCafeRequest struct {
	Title       string  `json:"title" validate:"required" example:"木子鳥咖啡"`
	Description *string `json:"description" example:"安靜、適合工作"`
	Address     string  `json:"address" validate:"required" example:"台北市大安區復興南路一段"`
}
