package dealers

import (
	"net/http"
	"strconv"

	"dealerhub/internal/api"
	"dealerhub/internal/gateway"

	"github.com/labstack/echo/v4"
)

// parseDealerID 解析路徑中的 dealer id；0 或非數字視為無效
func parseDealerID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListDealersHandler 回傳所有經銷商，或依州別過濾
// @Summary     取得經銷商清單
// @Description 無 state 參數時回傳全部；有 state 時轉呼叫 by-state 端點
// @Tags        dealers
// @Produce     json
// @Param       state path string false "州別"
// @Success     200 {object} api.DealersResponse
// @Failure     500 {object} api.StatusResponse
// @Router      /dealers [get]
func ListDealersHandler(gw *gateway.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		state := c.Param("state")

		var (
			list []gateway.Dealer
			err  error
		)
		if state == "" {
			list, err = gw.ListDealers(ctx)
		} else {
			list, err = gw.ListDealersByState(ctx, state)
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError,
				api.StatusResponse{Status: http.StatusInternalServerError, Message: api.MsgFetchDealersFailed})
		}
		if list == nil {
			list = []gateway.Dealer{}
		}
		return c.JSON(http.StatusOK, api.DealersResponse{Status: http.StatusOK, Dealers: list})
	}
}

// GetDealerHandler 回傳單一經銷商
// @Summary     取得經銷商詳情
// @Tags        dealers
// @Produce     json
// @Param       id path int true "經銷商 ID"
// @Success     200 {object} api.DealerResponse
// @Failure     400 {object} api.StatusResponse
// @Failure     500 {object} api.StatusResponse
// @Router      /dealers/{id} [get]
func GetDealerHandler(gw *gateway.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseDealerID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest,
				api.StatusResponse{Status: http.StatusBadRequest, Message: api.MsgBadRequest})
		}
		dealer, err := gw.GetDealer(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError,
				api.StatusResponse{Status: http.StatusInternalServerError, Message: api.MsgFetchDealerFailed})
		}
		return c.JSON(http.StatusOK, api.DealerResponse{Status: http.StatusOK, Dealer: dealer})
	}
}
