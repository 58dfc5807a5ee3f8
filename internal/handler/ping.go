// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"cafe-map/internal/api"
	"cafe-map/internal/cache"
	"cafe-map/internal/database"
	"cafe-map/internal/logging"

	"github.com/labstack/echo/v4"
)

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 (若有設定) Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			logging.Error().Err(err).Msg("database ping failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		// 未設定 REDIS_ADDR 時 cch 為 nil
		if cch != nil {
			if err := cache.Probe(ctx, cch); err != nil {
				logging.Error().Err(err).Msg("cache probe failed")
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, api.PingResponse{Message: "pong"})
	}
}
