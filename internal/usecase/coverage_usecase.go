package usecase

import (
	"context"
	"fmt"

	"claimscope/internal/domain/entities"
	"claimscope/internal/domain/rollup"
	"claimscope/internal/infrastructure/logger"
	"claimscope/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CoverageInput struct {
	Type        entities.CoverageType
	Name        string
	PolicyLimit decimal.Decimal
	Deductible  decimal.Decimal
}

type ICoverageUseCase interface {
	CreateCoverage(ctx context.Context, estimateID string, in CoverageInput) (MutationResult, error)
	UpdateLineItemCoverage(ctx context.Context, estimateID, lineItemID string, coverageID *string) (MutationResult, error)
	GetLineItemsByCoverage(ctx context.Context, estimateID string) (rollup.CoverageAllocation, error)
}

type CoverageUseCase struct {
	store estimateStore
}

var _ ICoverageUseCase = (*CoverageUseCase)(nil)

func NewCoverageUseCase(repo interfaces.IEstimateRepository) *CoverageUseCase {
	return &CoverageUseCase{store: newEstimateStore(repo)}
}

func (u *CoverageUseCase) CreateCoverage(ctx context.Context, estimateID string, in CoverageInput) (MutationResult, error) {
	if !in.Type.Valid() {
		return MutationResult{}, entities.NewValidationError("type", fmt.Sprintf("unknown coverage type %q", in.Type))
	}
	if in.PolicyLimit.IsNegative() {
		return MutationResult{}, entities.NewValidationError("policy_limit", "must not be negative")
	}
	if in.Deductible.IsNegative() {
		return MutationResult{}, entities.NewValidationError("deductible", "must not be negative")
	}
	name := trimmed(in.Name)
	if name == "" {
		name = string(in.Type)
	}

	return u.store.mutate(ctx, estimateID, "create-coverage", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		c := entities.Coverage{
			ID:          uuid.NewString(),
			Type:        in.Type,
			Name:        name,
			PolicyLimit: in.PolicyLimit,
			Deductible:  in.Deductible,
		}
		est.Coverages = append(est.Coverages, c)
		return c.ID, nil, nil
	})
}

// UpdateLineItemCoverage moves a line item to another coverage, or to unassigned when coverageID
// is nil. The item's financials are left untouched.
func (u *CoverageUseCase) UpdateLineItemCoverage(ctx context.Context, estimateID, lineItemID string, coverageID *string) (MutationResult, error) {
	return u.store.mutate(ctx, estimateID, "update-line-item-coverage", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		_, li, err := est.FindLineItem(trimmed(lineItemID))
		if err != nil {
			return "", nil, err
		}
		ref, err := resolveCoverageRef(est, coverageID)
		if err != nil {
			return "", nil, err
		}
		li.CoverageID = ref
		li.UpdatedAt = u.store.now()
		return li.ID, nil, nil
	})
}

// GetLineItemsByCoverage groups the estimate's line items by coverage and checks the buckets add
// up to the estimate totals.
func (u *CoverageUseCase) GetLineItemsByCoverage(ctx context.Context, estimateID string) (rollup.CoverageAllocation, error) {
	est, err := u.store.load(ctx, estimateID)
	if err != nil {
		return rollup.CoverageAllocation{}, err
	}
	return allocate(ctx, &est)
}

func allocate(ctx context.Context, est *entities.Estimate) (rollup.CoverageAllocation, error) {
	totals := rollup.Rollup(est)
	alloc := rollup.AllocateByCoverage(*est)
	if err := alloc.Reconcile(totals); err != nil {
		logger.Errorf(ctx, "[coverage][usecase] reconcile failed estimate_id=%s err=%v", est.ID, err)
		return rollup.CoverageAllocation{}, err
	}
	return alloc, nil
}
