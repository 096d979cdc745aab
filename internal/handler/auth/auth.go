package auth

import (
	"net/http"
	"time"

	"dealerhub/internal/middleware"
	"dealerhub/internal/service"
	"dealerhub/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByName   = store.GetUserByName
	createUser      = store.CreateUser
	hashPassword    = service.HashPassword
	comparePassword = service.ComparePassword
	startSession    = service.StartSession
	endSession      = service.EndSession
)

// setSessionCookie 將 session token 寫入 HttpOnly cookie
func setSessionCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie 使 session cookie 立即過期
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
