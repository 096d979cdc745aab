package auth

import (
	"errors"
	"net/http"

	"dealerhub/internal/api"
	"dealerhub/internal/cache"
	"dealerhub/internal/database"
	"dealerhub/internal/model"
	"dealerhub/internal/service"
	"dealerhub/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立新帳號並立即登入
// @Summary     註冊使用者
// @Description 建立新帳號；username 重複時回傳 error: "Already Registered"
// @Description 重複偵測交由資料庫唯一約束，併發註冊不會產生重複帳號
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RegisterRequest true "註冊資料"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.UserName,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusOK, api.AuthResponse{
					UserName: req.UserName,
					Error:    api.ErrAlreadyRegistered,
				})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
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
