package geocode

import (
	"context"
	"errors"
	"time"

	"cafe-map/internal/logging"
	"cafe-map/internal/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
)

// StatusZeroResults 供應商找不到地址時的 status，不視為供應商故障
const StatusZeroResults = "ZERO_RESULTS"

// BreakerSettings 熔斷器參數
type BreakerSettings struct {
	// ConsecutiveFailures 連續失敗幾次後開啟熔斷
	ConsecutiveFailures uint32
	// OpenTimeout 開啟後多久進入 half-open
	OpenTimeout time.Duration
}

// DefaultBreakerSettings 連續 5 次失敗開啟，1 分鐘後試探
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{ConsecutiveFailures: 5, OpenTimeout: time.Minute}
}

// Breaker 以熔斷器包裝 Geocoder。熔斷開啟時立即回傳錯誤，呼叫端照常視為地理編碼失敗。
type Breaker struct {
	next Geocoder
	cb   *gobreaker.CircuitBreaker[Location]
}

func NewBreaker(next Geocoder, s BreakerSettings) *Breaker {
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = DefaultBreakerSettings().ConsecutiveFailures
	}
	cb := gobreaker.NewCircuitBreaker[Location](gobreaker.Settings{
		Name:        "geocode",
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.ConsecutiveFailures
		},
		IsSuccessful: isProviderHealthy,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("geocode breaker state change")
			metrics.GeocodeBreakerState.Set(stateValue(to))
		},
	})
	return &Breaker{next: next, cb: cb}
}

func (b *Breaker) Geocode(ctx context.Context, address string) (Location, error) {
	return b.cb.Execute(func() (Location, error) {
		return b.next.Geocode(ctx, address)
	})
}

// State 目前熔斷狀態
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// IsRejected 判斷錯誤是否來自熔斷器本身
func IsRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// isProviderHealthy 查無結果代表地址問題，呼叫端取消或逾時也不是供應商的問題，都不累計為失敗
func isProviderHealthy(err error) bool {
	if err == nil || errors.Is(err, ErrNoResults) {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var se *StatusError
	return errors.As(err, &se) && se.Status == StatusZeroResults
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
