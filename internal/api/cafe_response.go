// File: internal/api/cafe_response.go
package api

import (
	"time"

	"cafe-map/internal/model"
)

// swagger:model api.AuthorResponse
type AuthorResponse struct {
	ID   int     `json:"id" example:"1"`
	Name *string `json:"name" example:"官方推薦"`
}

// swagger:model api.CafeResponse
type CafeResponse struct {
	ID            int            `json:"id" example:"1"`
	Title         string         `json:"title" example:"木子鳥咖啡"`
	Description   *string        `json:"description"`
	Address       string         `json:"address" example:"台北市大安區復興南路一段"`
	Latitude      float64        `json:"latitude" example:"25.0418"`
	Longitude     float64        `json:"longitude" example:"121.5436"`
	Category      *string        `json:"category"`
	ImageURL      *string        `json:"imageUrl"`
	GoogleMapsURL *string        `json:"googleMapsUrl"`
	AuthorID      int            `json:"authorId" example:"1"`
	Author        AuthorResponse `json:"author"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func NewCafeResponse(c *model.Cafe) CafeResponse {
	return CafeResponse{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Address:       c.Address,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
		Category:      c.Category,
		ImageURL:      c.ImageURL,
		GoogleMapsURL: c.GoogleMapsURL,
		AuthorID:      c.AuthorID,
		Author:        AuthorResponse{ID: c.Author.ID, Name: c.Author.Name},
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// NewCafeListResponse 空集合輸出 [] 而非 null
func NewCafeListResponse(cafes []model.Cafe) []CafeResponse {
	out := make([]CafeResponse, 0, len(cafes))
	for i := range cafes {
		out = append(out, NewCafeResponse(&cafes[i]))
	}
	return out
}
