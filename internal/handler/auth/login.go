package auth

import (
	"net/http"

	"dealerhub/internal/api"
	"dealerhub/internal/cache"
	"dealerhub/internal/database"
	"dealerhub/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 驗證帳號密碼並建立 session
// @Summary     登入使用者
// @Description 驗證 userName 與 password，成功時建立 session 並設定 cookie
// @Description 驗證失敗時回傳不帶 status 欄位的回應，不視為錯誤
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// 查無使用者與密碼錯誤回應相同，不洩漏帳號是否存在
		user, err := getUserByName(c.Request().Context(), db, req.UserName)
		if err != nil {
			return c.JSON(http.StatusOK, api.AuthResponse{UserName: req.UserName})
		}
		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusOK, api.AuthResponse{UserName: req.UserName})
		}

		token, err := startSession(c.Request().Context(), cch, user.Username, service.SessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to start session"})
		}
		setSessionCookie(c, token, service.SessionTTL)

		return c.JSON(http.StatusOK, api.AuthResponse{
			UserName: user.Username,
			Status:   api.StatusAuthenticated,
		})
	}
}
