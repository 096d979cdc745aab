package auth

import (
	"net/http"

	"dealerhub/internal/api"
	"dealerhub/internal/cache"
	"dealerhub/internal/middleware"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 清除 session 狀態
// @Summary     登出使用者
// @Description 無條件清除 session；即使沒有有效 session 也回傳成功
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.AuthResponse
// @Router      /auth/logout [post]
// @Router      /auth/logout [get]
func LogoutHandler(cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
			endSession(c.Request().Context(), cch, cookie.Value)
		}
		clearSessionCookie(c)
		return c.JSON(http.StatusOK, api.AuthResponse{UserName: ""})
	}
}
