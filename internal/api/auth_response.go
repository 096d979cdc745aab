package api

// AuthResponse 為 login/logout/register 的統一回應
// 成功時帶 status: "Authenticated"；註冊衝突時帶 error: "Already Registered"
// swagger:model api.AuthResponse
type AuthResponse struct {
	UserName string `json:"userName" example:"alice"`
	Status   string `json:"status,omitempty" example:"Authenticated"`
	Error    string `json:"error,omitempty" example:"Already Registered"`
}

// StatusAuthenticated 登入成功的狀態字串
const StatusAuthenticated = "Authenticated"

// ErrAlreadyRegistered 重複註冊的錯誤字串
const ErrAlreadyRegistered = "Already Registered"
