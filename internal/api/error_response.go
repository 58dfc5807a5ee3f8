// File: internal/api/error_response.go
package api

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	// message 錯誤描述
	Message string `json:"message" example:"找不到該地點"`
}
