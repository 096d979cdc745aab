package api

import "time"

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	UserName  string    `json:"userName" example:"alice"`
	FirstName string    `json:"firstName" example:"Alice"`
	LastName  string    `json:"lastName" example:"Liddell"`
	Email     string    `json:"email" example:"alice@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}
