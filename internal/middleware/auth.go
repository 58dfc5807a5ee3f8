// File: internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"cafe-map/internal/logging"
	"cafe-map/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

const (
	msgMissingToken = "未提供存取令牌"
	msgInvalidToken = "存取令牌無效或已過期"
)

// TokenVerifier 由 service.TokenService 實作，測試時可替換
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

func extractClaims(c echo.Context, v TokenVerifier) (*service.Claims, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, msgMissingToken)
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, msgMissingToken)
	}
	claims, err := v.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		// 細節只寫進 log，回應維持一致
		logging.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
		return nil, echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer token，成功後把 *service.Claims 放進 context
func RequireAuth(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, v)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// CurrentUser 取出 RequireAuth 放入的身分
func CurrentUser(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.Claims)
	return claims, ok && claims != nil
}
