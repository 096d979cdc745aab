package api

import "dealerhub/internal/model"

// swagger:model api.CarsResponse
type CarsResponse struct {
	CarModels []model.CarEntry `json:"CarModels"`
}
