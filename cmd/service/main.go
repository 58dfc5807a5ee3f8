// File: cmd/service/main.go
// @title        Cafe Map API
// @version      1.0
// @description  咖啡廳地圖後端 API：註冊登入、瀏覽與管理咖啡廳地點
// @host         localhost:3000
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafe-map/internal/cache"
	"cafe-map/internal/config"
	"cafe-map/internal/database"
	"cafe-map/internal/geocode"
	"cafe-map/internal/handler"
	"cafe-map/internal/logging"
	"cafe-map/internal/metrics"
	"cafe-map/internal/router"
	"cafe-map/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "cafe-map/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

const shutdownTimeout = 10 * time.Second

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = serve
	exitFunc        = os.Exit
)

// serve 啟動 echo，收到 SIGINT/SIGTERM 後優雅關閉
func serve(e *echo.Echo, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newEcho 建立 echo 實例、中介層與全部路由
func newEcho(cfg *config.Config, db database.DB, cch cache.Cache) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.JSONSerializer = handler.JSONSerializer{}
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := logging.Info()
			if v.Error != nil {
				ev = logging.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(metrics.Middleware())

	router.Setup(e, router.Deps{
		DB:     db,
		Cache:  cch,
		Tokens: service.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL),
		Cafes:  service.NewCafeService(db, newGeocoder(cfg.Geocode)),
	})

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e
}

// newGeocoder 熔斷器需以 GEOCODE_BREAKER 明確開啟
func newGeocoder(cfg config.GeocodeConfig) geocode.Geocoder {
	client := geocode.NewClient(geocode.Config{
		URL:     cfg.URL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
	if !cfg.Breaker {
		return client
	}
	return geocode.NewBreaker(client, geocode.DefaultBreakerSettings())
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if cfg.Geocode.APIKey == "" {
		logging.Warn().Msg("GOOGLE_MAPS_SERVER_KEY 未設定，地址變更將無法更新座標")
	}

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	var cch cache.Cache
	if cfg.CacheEnabled() {
		cch, err = newRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer func() {
			if err := cch.Close(); err != nil {
				logging.Warn().Err(err).Msg("關閉 Redis 連線失敗")
			}
		}()
	}

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	e := newEcho(cfg, db, cch)
	logging.Info().Str("addr", cfg.Addr()).Msg("伺服器啟動")
	return startServer(e, cfg.Addr())
}

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("service exited")
		exitFunc(1)
	}
}
