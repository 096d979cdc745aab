package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	UserName string `json:"userName" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
