// File: internal/handler/cafes/update.go
package cafes

import (
	"net/http"

	"cafe-map/internal/api"
	"cafe-map/internal/middleware"
	"cafe-map/internal/service"

	"github.com/labstack/echo/v4"
)

// UpdateHandler 修改咖啡廳 (僅擁有者)
// @Summary     Update a cafe
// @Description 地址字串變更時重新地理編碼；編碼失敗仍保存新地址並保留舊座標
// @Tags        cafes
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "咖啡廳 ID"
// @Param       body body     api.UpdateCafeRequest true "可修改欄位"
// @Success     200  {object} api.CafeResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /cafes/{id} [put]
func UpdateHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			return unauthorized(c)
		}

		id, ok := parseID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgInvalidID})
		}

		var req api.UpdateCafeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgUpdateRequired})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgUpdateRequired})
		}

		cafe, err := svc.Update(c.Request().Context(), claims.UserID, id, service.UpdateCafeInput{
			Title:       req.Title,
			Description: req.Description,
			Address:     req.Address,
		})
		if err != nil {
			return writeError(c, err, "update cafe failed", msgUpdateRequired, msgForbidUpdate)
		}
		return c.JSON(http.StatusOK, api.NewCafeResponse(cafe))
	}
}
