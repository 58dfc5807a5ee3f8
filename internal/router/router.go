// File: internal/router/router.go
package router

import (
	"cafe-map/internal/cache"
	"cafe-map/internal/database"
	"cafe-map/internal/handler"
	"cafe-map/internal/handler/auth"
	"cafe-map/internal/handler/cafes"
	"cafe-map/internal/metrics"
	"cafe-map/internal/middleware"
	"cafe-map/internal/service"

	"github.com/labstack/echo/v4"
)

// Tokens 同時負責簽發與驗證，*service.TokenService 即為實作
type Tokens interface {
	auth.TokenIssuer
	middleware.TokenVerifier
}

var _ Tokens = (*service.TokenService)(nil)

// Deps 路由所需的相依；Cache 可為 nil
type Deps struct {
	DB     database.DB
	Cache  cache.Cache
	Tokens Tokens
	Cafes  cafes.Service
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	e.GET("/", handler.RootHandler())
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(d.DB))
	api.POST("/auth/login", auth.LoginHandler(d.DB, d.Tokens))

	// 咖啡廳：瀏覽公開，寫入需登入；擁有者檢查在 service 層
	requireAuth := middleware.RequireAuth(d.Tokens)
	apiCafes := api.Group("/cafes")
	apiCafes.GET("", cafes.ListHandler(d.Cafes))
	apiCafes.POST("", cafes.CreateHandler(d.Cafes), requireAuth)
	apiCafes.PUT("/:id", cafes.UpdateHandler(d.Cafes), requireAuth)
	apiCafes.DELETE("/:id", cafes.DeleteHandler(d.Cafes), requireAuth)
}
