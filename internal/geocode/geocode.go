// Package geocode 將地址文字轉換為經緯度 (Google Geocoding API)
package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

// DefaultURL Google Geocoding JSON 端點
const DefaultURL = "https://maps.googleapis.com/maps/api/geocode/json"

// StatusOK 是供應商回應中唯一代表成功的 status
const StatusOK = "OK"

// ErrNoResults 供應商回應 OK 但沒有任何結果
var ErrNoResults = errors.New("geocode: no results")

// Location 經緯度
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocoder 查詢地址對應的座標
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Location, error)
}

// StatusError 表示 HTTP 非 200 或供應商 status 非 OK
type StatusError struct {
	HTTPStatus int
	Status     string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("geocode: unexpected HTTP status %d", e.HTTPStatus)
	}
	if e.Message != "" {
		return fmt.Sprintf("geocode: status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("geocode: status %s", e.Status)
}

type response struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location Location `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Config 建立 Client 所需設定；Timeout 為 0 表示不設逾時
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client 呼叫 Google Geocoding API，不重試
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.URL
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Geocode 以 {address, key} 查詢，回傳第一筆結果的座標
func (c *Client) Geocode(ctx context.Context, address string) (Location, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Location{}, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, &StatusError{HTTPStatus: resp.StatusCode}
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Location{}, fmt.Errorf("geocode: decode response: %w", err)
	}
	if body.Status != StatusOK {
		return Location{}, &StatusError{HTTPStatus: resp.StatusCode, Status: body.Status, Message: body.ErrorMessage}
	}
	if len(body.Results) == 0 {
		return Location{}, ErrNoResults
	}
	return body.Results[0].Geometry.Location, nil
}
