package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const banner = "後端伺服器已成功運行"

// RootHandler 存活檢查，不碰任何外部資源
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, banner)
	}
}
