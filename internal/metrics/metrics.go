// Package metrics 集中定義 Prometheus 指標
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Geocode outcome labels
const (
	GeocodeOK        = "ok"
	GeocodeNoResults = "no_results"
	GeocodeFailed    = "failed"
	GeocodeRejected  = "rejected"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cafemap_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cafemap_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// GeocodeLookups 只在地址變更時遞增
	GeocodeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cafemap_geocode_lookups_total",
			Help: "Geocoding lookups triggered by cafe address changes, by outcome",
		},
		[]string{"outcome"},
	)

	GeocodeBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cafemap_geocode_breaker_state",
			Help: "Geocoding circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

// Middleware 記錄每個請求的次數與延遲，route 使用 echo 的路由樣板避免高基數
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			var he *echo.HTTPError
			if err != nil {
				status = http.StatusInternalServerError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler 回傳 /metrics 端點
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
