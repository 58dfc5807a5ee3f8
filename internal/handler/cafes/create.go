// File: internal/handler/cafes/create.go
package cafes

import (
	"net/http"

	"cafe-map/internal/api"
	"cafe-map/internal/middleware"
	"cafe-map/internal/service"

	"github.com/labstack/echo/v4"
)

// CreateHandler 新增咖啡廳地點，擁有者為 token 內的使用者
// @Summary     Create a cafe
// @Description 經緯度由呼叫端提供，新增時不呼叫地理編碼
// @Tags        cafes
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateCafeRequest true "咖啡廳資料"
// @Success     201  {object} api.CafeResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /cafes [post]
func CreateHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			return unauthorized(c)
		}

		var req api.CreateCafeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgCreateRequired})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgCreateRequired})
		}

		cafe, err := svc.Create(c.Request().Context(), claims.UserID, service.CreateCafeInput{
			Title:         req.Title,
			Description:   req.Description,
			Address:       req.Address,
			Latitude:      req.Latitude,
			Longitude:     req.Longitude,
			Category:      req.Category,
			ImageURL:      req.ImageURL,
			GoogleMapsURL: req.GoogleMapsURL,
		})
		if err != nil {
			return writeError(c, err, "create cafe failed", msgCreateRequired, msgForbidUpdate)
		}
		return c.JSON(http.StatusCreated, api.NewCafeResponse(cafe))
	}
}
