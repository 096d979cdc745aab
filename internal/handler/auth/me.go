package auth

import (
	"net/http"

	"dealerhub/internal/api"
	"dealerhub/internal/database"
	"dealerhub/internal/middleware"

	"github.com/labstack/echo/v4"
)

// MeHandler 回傳目前 session 的使用者資料
// @Summary     取得當前使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/me [get]
func MeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		username, ok := c.Get(middleware.ContextUserKey).(string)
		if !ok || username == "" {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing session"})
		}
		user, err := getUserByName(c.Request().Context(), db, username)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.UserResponse{
			ID:        user.ID,
			UserName:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		})
	}
}
