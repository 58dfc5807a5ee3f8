package cafes

import (
	"net/http"

	"cafe-map/internal/api"
	"cafe-map/internal/middleware"

	"github.com/labstack/echo/v4"
)

// DeleteHandler 永久刪除咖啡廳 (僅擁有者)
// @Summary     Delete a cafe
// @Tags        cafes
// @Param       id path int true "咖啡廳 ID"
// @Success     204
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /cafes/{id} [delete]
func DeleteHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			return unauthorized(c)
		}

		id, ok := parseID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgInvalidID})
		}

		if err := svc.Delete(c.Request().Context(), claims.UserID, id); err != nil {
			return writeError(c, err, "delete cafe failed", msgInvalidID, msgForbidDelete)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
