package vehiclescntrl

import "github.com/chup1x/carmodels/internal/domain"

type getModelsRequest struct {
	MakeID string `params:"makeID" validate:"required"`
	Year   string `params:"year" validate:"required"`
}

type getMakesResponse struct {
	VehicleTypes []string `json:"vehicle_types"`
	Years        []int    `json:"years"`
}

type getModelsResponse struct {
	MakeID string                `json:"make_id"`
	Year   string                `json:"year"`
	Models []domain.VehicleModel `json:"models"`
}

type errorResponse struct {
	Error string `json:"error"`
}
