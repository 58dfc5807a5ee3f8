// File: internal/handler/cafes/cafes.go
package cafes

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"cafe-map/internal/api"
	"cafe-map/internal/handler"
	"cafe-map/internal/model"
	"cafe-map/internal/service"

	"github.com/labstack/echo/v4"
)

// Service 由 *service.CafeService 實作
type Service interface {
	List(ctx context.Context) ([]model.Cafe, error)
	Create(ctx context.Context, ownerID int, in service.CreateCafeInput) (*model.Cafe, error)
	Update(ctx context.Context, requesterID, cafeID int, in service.UpdateCafeInput) (*model.Cafe, error)
	Delete(ctx context.Context, requesterID, cafeID int) error
}

const (
	msgCreateRequired = "標題、地址、經緯度為必填"
	msgUpdateRequired = "標題和地址為必填項"
	msgInvalidID      = "無效的地點 ID"
	msgNotFound       = "找不到該地點"
	msgForbidUpdate   = "權限不足，無法修改此地點"
	msgForbidDelete   = "權限不足，無法刪除此地點"
	msgUnauthorized   = "未提供存取令牌"
)

func parseID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: msgUnauthorized})
}

// writeError 依 service sentinel error 決定狀態碼
func writeError(c echo.Context, err error, op, validationMsg, forbiddenMsg string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: validationMsg})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: msgNotFound})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: forbiddenMsg})
	}
	return handler.Internal(c, err, op)
}
