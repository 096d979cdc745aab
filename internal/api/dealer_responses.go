package api

import "dealerhub/internal/gateway"

// swagger:model api.DealersResponse
type DealersResponse struct {
	Status  int              `json:"status" example:"200"`
	Dealers []gateway.Dealer `json:"dealers"`
}

// swagger:model api.DealerResponse
type DealerResponse struct {
	Status int             `json:"status" example:"200"`
	Dealer *gateway.Dealer `json:"dealer"`
}

// swagger:model api.ReviewsResponse
type ReviewsResponse struct {
	Status  int              `json:"status" example:"200"`
	Reviews []gateway.Review `json:"reviews"`
}
