// File: internal/handler/errors.go
package handler

import (
	"errors"
	"net/http"

	"cafe-map/internal/api"
	"cafe-map/internal/logging"

	"github.com/labstack/echo/v4"
)

// MsgInternal 對外統一的 500 訊息，細節只寫 log
const MsgInternal = "伺服器內部錯誤"

// Internal 記錄錯誤並回傳通用 500
func Internal(c echo.Context, err error, msg string) error {
	logging.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg(msg)
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: MsgInternal})
}

// HTTPErrorHandler 讓框架錯誤 (路由 404、405、middleware 401) 也輸出 {message}
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := MsgInternal
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
		if he.Internal != nil {
			logging.Debug().Err(he.Internal).Int("status", code).Msg("http error")
		}
	} else {
		logging.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, api.ErrorResponse{Message: msg})
	}
	if werr != nil {
		logging.Error().Err(werr).Msg("write error response")
	}
}
