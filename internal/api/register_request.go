package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required" example:"alice@example.com"`
	Password string  `json:"password" validate:"required" example:"Secret123!"`
	Name     *string `json:"name,omitempty" example:"Alice"`
}
