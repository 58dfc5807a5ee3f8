// File: internal/service/account.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"cafe-map/internal/database"
	"cafe-map/internal/model"
	"cafe-map/internal/store"

	"golang.org/x/crypto/bcrypt"
)

var (
	getUserByEmail = store.GetUserByEmail
	createUser     = store.CreateUser
)

// dummyHash 讓查無使用者時仍執行一次 bcrypt 比對，使兩種登入失敗耗時相近
var dummyHash = sync.OnceValue(func() string {
	h, _ := bcrypt.GenerateFromPassword([]byte("cafe-map"), bcrypt.DefaultCost)
	return string(h)
})

// RegisterUser 建立新使用者；email 保留原樣 (大小寫敏感)
func RegisterUser(ctx context.Context, db database.DB, email, password string, name *string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	if _, err := getUserByEmail(ctx, db, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if name != nil && strings.TrimSpace(*name) == "" {
		name = nil
	}
	user, err := createUser(ctx, db, &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		// 兩個請求同時註冊同一 email 時由 unique index 擋下
		if store.IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

// AuthenticateUser 根據使用者結構和明文密碼驗證
func AuthenticateUser(user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// VerifyCredentials 驗證 email 與密碼。查無使用者與密碼錯誤皆回傳 ErrInvalidCredentials。
func VerifyCredentials(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := getUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = ComparePassword(dummyHash(), password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := AuthenticateUser(*user, password); err != nil {
		return nil, err
	}
	return user, nil
}
