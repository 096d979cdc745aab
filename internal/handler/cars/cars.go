package cars

import (
	"net/http"

	"dealerhub/internal/api"
	"dealerhub/internal/catalog"
	"dealerhub/internal/database"
	"dealerhub/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	ensureCatalog  = catalog.Ensure
	listCarEntries = store.ListCarEntries
)

// ListCarsHandler 回傳所有車款品牌與型號
// @Summary     取得車款清單
// @Description catalog 為空時先從內嵌 fixture 載入再查詢
// @Tags        cars
// @Produce     json
// @Success     200 {object} api.CarsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /cars [get]
func ListCarsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := ensureCatalog(ctx, db); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		entries, err := listCarEntries(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.CarsResponse{CarModels: entries})
	}
}
