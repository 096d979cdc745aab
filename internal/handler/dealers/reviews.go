package dealers

import (
	"io"
	"net/http"

	"dealerhub/internal/api"
	"dealerhub/internal/gateway"
	"dealerhub/internal/sentiment"
	"dealerhub/internal/service"
	"dealerhub/internal/worker"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// ListReviewsHandler 回傳經銷商評論並為每則標注 sentiment
// @Summary     取得經銷商評論
// @Description 個別評論分類失敗時 sentiment 為 null，不影響其餘評論
// @Tags        dealers
// @Produce     json
// @Param       id path int true "經銷商 ID"
// @Success     200 {object} api.ReviewsResponse
// @Failure     400 {object} api.StatusResponse
// @Failure     500 {object} api.StatusResponse
// @Router      /dealers/{id}/reviews [get]
func ListReviewsHandler(gw *gateway.Client, analyzer sentiment.Analyzer, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseDealerID(c)
		if !ok {
			return c.JSON(http.StatusBadRequest,
				api.StatusResponse{Status: http.StatusBadRequest, Message: api.MsgBadRequest})
		}

		ctx := c.Request().Context()
		reviews, err := gw.ListReviews(ctx, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError,
				api.StatusResponse{Status: http.StatusInternalServerError, Message: api.MsgFetchReviewsFailed})
		}

		service.AnnotateReviews(ctx, wp, analyzer, reviews)

		if reviews == nil {
			reviews = []gateway.Review{}
		}
		return c.JSON(http.StatusOK, api.ReviewsResponse{Status: http.StatusOK, Reviews: reviews})
	}
}

// AddReviewHandler 將評論轉送至 dealer service
// @Summary     新增評論
// @Description 任何失敗一律回傳同一則錯誤訊息，不區分失敗原因
// @Tags        dealers
// @Accept      json
// @Produce     json
// @Success     200 {object} api.StatusResponse
// @Failure     400 {object} api.StatusResponse
// @Router      /reviews [post]
func AddReviewHandler(gw *gateway.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil || !json.Valid(body) {
			return c.JSON(http.StatusBadRequest,
				api.StatusResponse{Status: http.StatusBadRequest, Message: api.MsgPostReviewFailed})
		}
		if err := gw.PostReview(c.Request().Context(), body); err != nil {
			return c.JSON(http.StatusBadRequest,
				api.StatusResponse{Status: http.StatusBadRequest, Message: api.MsgPostReviewFailed})
		}
		return c.JSON(http.StatusOK, api.StatusResponse{Status: http.StatusOK})
	}
}
