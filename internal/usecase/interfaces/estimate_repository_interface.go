package interfaces

import (
	"context"

	"claimscope/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for the estimate tree.
//
// The whole tree is one document:
//   - GetByID returns an empty Estimate (ID == "") when nothing is stored under id
//   - Save replaces the stored tree and returns an empty Estimate when it no longer exists
//   - Delete reports whether something was removed

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) (bool, error)
}
