// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dealerhub/internal/cache"
	"dealerhub/internal/database"
	"dealerhub/internal/gateway"
	"dealerhub/internal/handler"
	"dealerhub/internal/handler/auth"
	"dealerhub/internal/handler/cars"
	"dealerhub/internal/handler/dealers"
	"dealerhub/internal/middleware"
	"dealerhub/internal/sentiment"
	"dealerhub/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, gw *gateway.Client, analyzer sentiment.Analyzer, wp worker.Pool) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, cch))

	// session 認證
	api.POST("/auth/login", auth.LoginHandler(db, cch))
	api.POST("/auth/logout", auth.LogoutHandler(cch))
	// 登出連結是 GET，表單是 POST，兩者皆收
	api.GET("/auth/logout", auth.LogoutHandler(cch))
	api.POST("/auth/register", auth.RegisterHandler(db, cch))
	api.GET("/auth/me", auth.MeHandler(db), middleware.RequireAuth(cch))

	// 車款 catalog（首次存取時載入種子資料）
	api.GET("/cars", cars.ListCarsHandler(db))

	// dealer service 轉送
	api.GET("/dealers", dealers.ListDealersHandler(gw))
	api.GET("/dealers/state/:state", dealers.ListDealersHandler(gw))
	api.GET("/dealers/:id", dealers.GetDealerHandler(gw))
	api.GET("/dealers/:id/reviews", dealers.ListReviewsHandler(gw, analyzer, wp))
	api.POST("/reviews", dealers.AddReviewHandler(gw))

	// Prometheus 指標
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
