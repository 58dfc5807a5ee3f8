// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"cafe-map/internal/api"
	"cafe-map/internal/database"
	"cafe-map/internal/handler"
	"cafe-map/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 email/password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 查無帳號與密碼錯誤回傳相同的 401 訊息
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tokens TokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgRequired})
		}
		// 再驗證結構化參數 (go-playground/validator)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgRequired})
		}

		user, err := verifyCredentials(c.Request().Context(), db, req.Email, req.Password)
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgRequired})
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: msgInvalidCredentials})
		case err != nil:
			return handler.Internal(c, err, "login failed")
		}

		token, exp, err := tokens.Issue(user.ID, user.Email)
		if err != nil {
			return handler.Internal(c, err, "issue token failed")
		}

		return c.JSON(http.StatusOK, api.LoginResponse{Message: msgLoggedIn, Token: token, ExpiresAt: exp})
	}
}
