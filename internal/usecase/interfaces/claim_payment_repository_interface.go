package interfaces

import (
	"context"

	"claimscope/internal/domain/entities"
)

// IClaimPaymentRepository abstracts DynamoDB persistence for ClaimPayment.

type IClaimPaymentRepository interface {
	Create(ctx context.Context, p entities.ClaimPayment) (entities.ClaimPayment, error)
	GetByID(ctx context.Context, id string) (entities.ClaimPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.ClaimPayment, error)
}
