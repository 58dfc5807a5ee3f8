// File: internal/handler/auth/auth.go
package auth

import (
	"time"

	"cafe-map/internal/service"
)

// 測試時可覆寫
var (
	registerUser      = service.RegisterUser
	verifyCredentials = service.VerifyCredentials
)

const (
	msgRequired   = "Email和密碼為必填"
	msgDuplicate  = "此Email已註冊"
	msgRegistered = "註冊成功"
	msgLoggedIn   = "登入成功"

	msgInvalidCredentials = "Email或密碼錯誤"
)

// TokenIssuer 由 service.TokenService 實作
type TokenIssuer interface {
	Issue(userID int, email string) (string, time.Time, error)
}
