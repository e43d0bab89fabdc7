package response

import (
	"time"

	"claimscope/internal/domain/entities"
)

type ClaimPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	EstimateID  string    `json:"estimate_id"`
	CoverageID  string    `json:"coverage_id"`
	Amount      string    `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromClaimPayment(p entities.ClaimPayment) ClaimPaymentResponse {
	return ClaimPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		EstimateID:   p.EstimateID,
		CoverageID:   p.CoverageID,
		Amount:       money(p.Amount),
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromClaimPayments(ps []entities.ClaimPayment) []ClaimPaymentResponse {
	out := make([]ClaimPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromClaimPayment(p))
	}
	return out
}
