// File: cmd/service/main.go
// @title        DealerHub API
// @version      1.0
// @description  車商評論網站的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"context"
	"log"
	"os"

	"dealerhub/internal/cache"
	"dealerhub/internal/config"
	"dealerhub/internal/database"
	"dealerhub/internal/gateway"
	"dealerhub/internal/router"
	"dealerhub/internal/sentiment"
	"dealerhub/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "dealerhub/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer redis.Close()

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	gw := gateway.NewClient(cfg.DealerGatewayURL, cfg.UpstreamTimeout)
	analyzer := sentiment.NewClient(cfg.SentimentAnalyzerURL, cfg.UpstreamTimeout)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, redis, gw, analyzer, wp)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
