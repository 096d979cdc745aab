package middleware

import (
	"net/http"

	"dealerhub/internal/cache"
	"dealerhub/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextUserKey 存放目前登入使用者名稱的 context key
const ContextUserKey = "user"

// SessionCookieName session token 的 cookie 名稱
const SessionCookieName = "session_token"

// sessionUser 從 cookie 解析 session token 並確認 Redis 紀錄仍有效
func sessionUser(c echo.Context, cch cache.Cache) (string, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	username, err := service.SessionUser(c.Request().Context(), cch, cookie.Value)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	return username, nil
}

// RequireAuth 擋下沒有有效 session 的請求
func RequireAuth(cch cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, err := sessionUser(c, cch)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, username)
			return next(c)
		}
	}
}
