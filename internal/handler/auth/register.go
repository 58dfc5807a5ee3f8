// File: internal/handler/auth/register.go
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

// RegisterHandler 建立新帳號
// @Summary     註冊使用者
// @Description 以 email 與密碼建立帳號，密碼以 bcrypt 雜湊保存
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.RegisterResponse
// @Failure     400  {object} api.ErrorResponse "欄位缺漏或 email 已註冊"
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgRequired})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgRequired})
		}

		user, err := registerUser(c.Request().Context(), db, req.Email, req.Password, req.Name)
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgRequired})
		case errors.Is(err, service.ErrDuplicateEmail):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgDuplicate})
		case err != nil:
			return handler.Internal(c, err, "register failed")
		}

		return c.JSON(http.StatusCreated, api.RegisterResponse{Message: msgRegistered, UserID: user.ID})
	}
}
