package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	UserName  string `json:"userName" validate:"required" example:"alice"`
	Password  string `json:"password" validate:"required" example:"Secret123!"`
	FirstName string `json:"firstName" example:"Alice"`
	LastName  string `json:"lastName" example:"Liddell"`
	Email     string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
}
