package store

import (
	"context"
	"fmt"

	"cafe-map/internal/database"
	"cafe-map/internal/model"
)

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", notFoundOr(err))
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Email,
		u.Name,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// DeleteAllUsers 清空 users，僅供 seed 使用 (cafes 以 ON DELETE CASCADE 一併刪除)
func DeleteAllUsers(ctx context.Context, db database.DB) error {
	if _, err := db.Exec(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("DeleteAllUsers: %w", err)
	}
	return nil
}
