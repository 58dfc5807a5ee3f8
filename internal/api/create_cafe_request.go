package api

// CreateCafeRequest 經緯度以指標表示，0 也是合法座標
// swagger:model api.CreateCafeRequest
type CreateCafeRequest struct {
	Title         string   `json:"title" validate:"required" example:"木子鳥咖啡"`
	Description   *string  `json:"description" example:"安靜、適合工作"`
	Address       string   `json:"address" validate:"required" example:"台北市大安區復興南路一段"`
	Latitude      *float64 `json:"latitude" validate:"required" example:"25.0418"`
	Longitude     *float64 `json:"longitude" validate:"required" example:"121.5436"`
	Category      *string  `json:"category" example:"工作友善"`
	ImageURL      *string  `json:"imageUrl" example:"https://example.com/cafe.jpg"`
	GoogleMapsURL *string  `json:"googleMapsUrl" example:"https://maps.google.com/?q=25.0418,121.5436"`
}
