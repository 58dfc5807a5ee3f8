package cafes

import (
	"net/http"

	"cafe-map/internal/api"
	"cafe-map/internal/handler"

	"github.com/labstack/echo/v4"
)

// ListHandler 取得所有咖啡廳地點 (公開)
// @Summary     List cafes
// @Description 回傳全部咖啡廳，每筆附上建立者 {id, name}
// @Tags        cafes
// @Produce     json
// @Success     200 {array}  api.CafeResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /cafes [get]
func ListHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.List(c.Request().Context())
		if err != nil {
			return handler.Internal(c, err, "list cafes failed")
		}
		return c.JSON(http.StatusOK, api.NewCafeListResponse(list))
	}
}
