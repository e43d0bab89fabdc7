package request

import (
	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"
)

type CreateEstimateRequest struct {
	ClaimNumber      string  `json:"claim_number" binding:"required"`
	InsuredName      string  `json:"insured_name"`
	RegionID         string  `json:"region_id" binding:"required"`
	CarrierProfileID *string `json:"carrier_profile_id"`
}

func (r CreateEstimateRequest) ToInput() usecase.CreateEstimateInput {
	return usecase.CreateEstimateInput{
		ClaimNumber:      r.ClaimNumber,
		InsuredName:      r.InsuredName,
		RegionID:         r.RegionID,
		CarrierProfileID: r.CarrierProfileID,
	}
}

type UpdateStatusRequest struct {
	Status entities.EstimateStatus `json:"status" binding:"required,estimate_status"`
}
