package request

import (
	"encoding/json"

	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"

	"github.com/shopspring/decimal"
)

type CoverageRequest struct {
	Type        entities.CoverageType `json:"type" binding:"required,coverage_type"`
	Name        string                `json:"name"`
	PolicyLimit decimal.Decimal       `json:"policy_limit" binding:"decimal_nonneg"`
	Deductible  decimal.Decimal       `json:"deductible" binding:"decimal_nonneg"`
}

func (r CoverageRequest) ToInput() usecase.CoverageInput {
	return usecase.CoverageInput{Type: r.Type, Name: r.Name, PolicyLimit: r.PolicyLimit, Deductible: r.Deductible}
}

// ClaimPaymentCreateRequest is the body of the coverage payment route.
//
// `mp_payload` is forwarded to Mercado Pago as-is, after the amount and external reference are set
// from the estimate. A bare Mercado Pago body without the envelope is accepted too.
type ClaimPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
