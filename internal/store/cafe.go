package store

import (
	"context"
	"fmt"

	"cafe-map/internal/database"
	"cafe-map/internal/model"

	"github.com/jackc/pgx/v5"
)

// cafeColumns 搭配 "c" (cafes) 與 "u" (users) 別名使用
const cafeColumns = `c.id, c.title, c.description, c.address, c.latitude, c.longitude,
	c.category, c.image_url, c.google_maps_url, c.author_id, c.created_at, c.updated_at,
	u.name`

func scanCafe(row pgx.Row) (*model.Cafe, error) {
	c := &model.Cafe{}
	if err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Address,
		&c.Latitude,
		&c.Longitude,
		&c.Category,
		&c.ImageURL,
		&c.GoogleMapsURL,
		&c.AuthorID,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.Author.Name,
	); err != nil {
		return nil, err
	}
	c.Author.ID = c.AuthorID
	return c, nil
}

func ListCafes(ctx context.Context, db database.DB) ([]model.Cafe, error) {
	rows, err := db.Query(ctx,
		`SELECT `+cafeColumns+`
		 FROM cafes c JOIN users u ON u.id = c.author_id
		 ORDER BY c.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCafes: %w", err)
	}
	defer rows.Close()

	cafes := []model.Cafe{}
	for rows.Next() {
		c, err := scanCafe(rows)
		if err != nil {
			return nil, fmt.Errorf("ListCafes: %w", err)
		}
		cafes = append(cafes, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCafes: %w", err)
	}
	return cafes, nil
}

func GetCafeByID(ctx context.Context, db database.DB, id int) (*model.Cafe, error) {
	row := db.QueryRow(ctx,
		`SELECT `+cafeColumns+`
		 FROM cafes c JOIN users u ON u.id = c.author_id
		 WHERE c.id = $1`,
		id,
	)
	c, err := scanCafe(row)
	if err != nil {
		return nil, fmt.Errorf("GetCafeByID: %w", notFoundOr(err))
	}
	return c, nil
}

func CreateCafe(ctx context.Context, db database.DB, in *model.Cafe) (*model.Cafe, error) {
	row := db.QueryRow(ctx,
		`WITH c AS (
			INSERT INTO cafes (title, description, address, latitude, longitude,
			                   category, image_url, google_maps_url, author_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		 )
		 SELECT `+cafeColumns+`
		 FROM c JOIN users u ON u.id = c.author_id`,
		in.Title,
		in.Description,
		in.Address,
		in.Latitude,
		in.Longitude,
		in.Category,
		in.ImageURL,
		in.GoogleMapsURL,
		in.AuthorID,
	)
	c, err := scanCafe(row)
	if err != nil {
		return nil, fmt.Errorf("CreateCafe: %w", err)
	}
	return c, nil
}

// UpdateCafe 寫入可編輯欄位 (title、description、address、經緯度)，擁有者與建立時間不變
func UpdateCafe(ctx context.Context, db database.DB, in *model.Cafe) (*model.Cafe, error) {
	row := db.QueryRow(ctx,
		`WITH c AS (
			UPDATE cafes
			SET title = $1, description = $2, address = $3,
			    latitude = $4, longitude = $5, updated_at = now()
			WHERE id = $6
			RETURNING *
		 )
		 SELECT `+cafeColumns+`
		 FROM c JOIN users u ON u.id = c.author_id`,
		in.Title,
		in.Description,
		in.Address,
		in.Latitude,
		in.Longitude,
		in.ID,
	)
	c, err := scanCafe(row)
	if err != nil {
		return nil, fmt.Errorf("UpdateCafe: %w", notFoundOr(err))
	}
	return c, nil
}

func DeleteCafe(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM cafes WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteCafe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteCafe: %w", ErrNotFound)
	}
	return nil
}
