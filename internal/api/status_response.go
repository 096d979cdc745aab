package api

// StatusResponse 為 dealer gateway 相關端點的狀態信封
// Message 僅在錯誤時出現
// swagger:model api.StatusResponse
type StatusResponse struct {
	Status  int    `json:"status" example:"200"`
	Message string `json:"message,omitempty" example:"Bad Request"`
}

// MsgBadRequest 缺少或無效 dealer id 的錯誤訊息
const MsgBadRequest = "Bad Request"

// MsgPostReviewFailed 評論送出失敗的統一訊息（不區分失敗原因）
const MsgPostReviewFailed = "Error in posting review"

// dealer gateway 上游失敗的統一訊息
const (
	MsgFetchDealersFailed = "Error fetching dealers"
	MsgFetchDealerFailed  = "Error fetching dealer"
	MsgFetchReviewsFailed = "Error fetching reviews"
)
