// File: internal/model/cafe.go
package model

import "time"

// Author 是咖啡廳擁有者的公開摘要
type Author struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}

type Cafe struct {
	ID            int       `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Description   *string   `db:"description" json:"description"`
	Address       string    `db:"address" json:"address"`
	Latitude      float64   `db:"latitude" json:"latitude"`
	Longitude     float64   `db:"longitude" json:"longitude"`
	Category      *string   `db:"category" json:"category"`
	ImageURL      *string   `db:"image_url" json:"imageUrl"`
	GoogleMapsURL *string   `db:"google_maps_url" json:"googleMapsUrl"`
	AuthorID      int       `db:"author_id" json:"authorId"`
	Author        Author    `db:"-" json:"author"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}
