package usecase

import (
	"context"
	"errors"
	"fmt"

	"claimscope/internal/domain/dimension"
	"claimscope/internal/domain/entities"
	"claimscope/internal/domain/pricing"
	"claimscope/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemInput describes a new line item. Quantity is ignored when the item is driven by a zone
// dimension. Without an explicit DepreciationPct, Age and LifeExpectancy suggest one.
type LineItemInput struct {
	Code            string
	Description     string
	Quantity        decimal.Decimal
	DepreciationPct *decimal.Decimal
	Age             *int
	LifeExpectancy  *int
	Recoverable     bool
	CoverageID      *string
}

// LineItemUpdate changes only the non-nil fields. Setting Quantity detaches the item from the
// zone dimension it followed. Age and LifeExpectancy re-suggest the depreciation only when both
// are known and the percentage was never entered explicitly.
type LineItemUpdate struct {
	Description     *string
	Quantity        *decimal.Decimal
	UnitPrice       *decimal.Decimal
	TaxRate         *decimal.Decimal
	DepreciationPct *decimal.Decimal
	Age             *int
	LifeExpectancy  *int
	Recoverable     *bool
}

type ILineItemUseCase interface {
	AddLineItem(ctx context.Context, estimateID, zoneID string, in LineItemInput) (MutationResult, error)
	AddLineItemFromDimension(ctx context.Context, estimateID, zoneID string, key entities.DimensionKey, in LineItemInput) (MutationResult, error)
	UpdateLineItem(ctx context.Context, estimateID, lineItemID string, in LineItemUpdate) (MutationResult, error)
	DeleteLineItem(ctx context.Context, estimateID, lineItemID string) (MutationResult, error)
}

type LineItemUseCase struct {
	store   estimateStore
	catalog interfaces.ICatalogResolver
}

var _ ILineItemUseCase = (*LineItemUseCase)(nil)

func NewLineItemUseCase(repo interfaces.IEstimateRepository, catalog interfaces.ICatalogResolver) *LineItemUseCase {
	return &LineItemUseCase{store: newEstimateStore(repo), catalog: catalog}
}

// AddLineItem prices a catalog code with a user supplied quantity and appends it to the zone.
func (u *LineItemUseCase) AddLineItem(ctx context.Context, estimateID, zoneID string, in LineItemInput) (MutationResult, error) {
	if !in.Quantity.IsPositive() {
		return MutationResult{}, entities.NewValidationError("quantity", "must be greater than zero")
	}
	return u.add(ctx, estimateID, zoneID, nil, in)
}

// AddLineItemFromDimension takes the quantity from a derived dimension of the zone; the item
// follows that dimension on every later re-derivation.
func (u *LineItemUseCase) AddLineItemFromDimension(ctx context.Context, estimateID, zoneID string, key entities.DimensionKey, in LineItemInput) (MutationResult, error) {
	if key == "" {
		return MutationResult{}, entities.NewValidationError("dimension_key", "is required")
	}
	return u.add(ctx, estimateID, zoneID, &key, in)
}

func (u *LineItemUseCase) add(ctx context.Context, estimateID, zoneID string, key *entities.DimensionKey, in LineItemInput) (MutationResult, error) {
	code := trimmed(in.Code)
	if code == "" {
		return MutationResult{}, entities.NewValidationError("code", "is required")
	}
	if u.catalog == nil {
		return MutationResult{}, errors.New("catalog resolver not configured")
	}
	depPct, err := depreciationFor(in.DepreciationPct, in.Age, in.LifeExpectancy)
	if err != nil {
		return MutationResult{}, err
	}

	return u.store.mutate(ctx, estimateID, "add-line-item", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		z, err := est.FindZone(trimmed(zoneID))
		if err != nil {
			return "", nil, err
		}
		coverageID, err := resolveCoverageRef(est, in.CoverageID)
		if err != nil {
			return "", nil, err
		}

		quantity := in.Quantity
		if key != nil {
			if !dimension.Applies(z.Type, *key) {
				return "", nil, entities.NewValidationError("dimension_key", fmt.Sprintf("%s is not derived for %s zones", *key, z.Type))
			}
			v, ok := z.Derived[*key]
			if !ok || !v.IsPositive() {
				return "", nil, entities.NewValidationError("dimension_key", fmt.Sprintf("zone has no measured %s", *key))
			}
			quantity = v
		}

		price, err := resolvePrice(ctx, u.catalog, est, code)
		if err != nil {
			return "", nil, err
		}

		now := u.store.now()
		li := entities.LineItem{
			ID:                   uuid.NewString(),
			Code:                 code,
			Description:          trimmed(in.Description),
			Quantity:             quantity,
			DepreciationPct:      depPct,
			DepreciationExplicit: in.DepreciationPct != nil,
			Age:                  in.Age,
			LifeExpectancy:       in.LifeExpectancy,
			Recoverable:          in.Recoverable,
			CoverageID:           coverageID,
			DimensionKey:         key,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		applyCatalogPrice(&li, price)

		// Garbage never reaches the zone: the item is priced before it is appended.
		fin, err := pricing.Price(pricing.InputFromLineItem(li))
		if err != nil {
			return "", nil, err
		}
		li.Financials = fin
		z.LineItems = append(z.LineItems, li)
		return li.ID, z.Warnings, nil
	})
}

func (u *LineItemUseCase) UpdateLineItem(ctx context.Context, estimateID, lineItemID string, in LineItemUpdate) (MutationResult, error) {
	return u.store.mutate(ctx, estimateID, "update-line-item", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		z, li, err := est.FindLineItem(trimmed(lineItemID))
		if err != nil {
			return "", nil, err
		}
		if in.Description != nil {
			li.Description = trimmed(*in.Description)
		}
		if in.Quantity != nil {
			li.Quantity = *in.Quantity
			li.DimensionKey = nil
		}
		if in.UnitPrice != nil {
			li.UnitPrice = *in.UnitPrice
		}
		if in.TaxRate != nil {
			li.TaxRate = *in.TaxRate
		}
		if in.Age != nil {
			li.Age = in.Age
		}
		if in.LifeExpectancy != nil {
			li.LifeExpectancy = in.LifeExpectancy
		}
		if in.Recoverable != nil {
			li.Recoverable = *in.Recoverable
		}
		switch {
		case in.DepreciationPct != nil:
			li.DepreciationPct = *in.DepreciationPct
			li.DepreciationExplicit = true
		case (in.Age != nil || in.LifeExpectancy != nil) && !li.DepreciationExplicit && li.Age != nil && li.LifeExpectancy != nil:
			pct, err := pricing.SuggestDepreciationPct(*li.Age, *li.LifeExpectancy)
			if err != nil {
				return "", nil, err
			}
			li.DepreciationPct = pct
		}
		if err := pricing.Apply(li); err != nil {
			return "", nil, err
		}
		li.UpdatedAt = u.store.now()
		return li.ID, z.Warnings, nil
	})
}

func (u *LineItemUseCase) DeleteLineItem(ctx context.Context, estimateID, lineItemID string) (MutationResult, error) {
	return u.store.mutate(ctx, estimateID, "delete-line-item", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		z, err := est.RemoveLineItem(trimmed(lineItemID))
		if err != nil {
			return "", nil, err
		}
		return "", z.Warnings, nil
	})
}

// depreciationFor picks the explicit percentage, else the straight-line suggestion, else zero.
func depreciationFor(explicit *decimal.Decimal, age, life *int) (decimal.Decimal, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if age != nil && life != nil {
		return pricing.SuggestDepreciationPct(*age, *life)
	}
	return decimal.Zero, nil
}

// resolveCoverageRef validates an optional coverage reference against the estimate.
func resolveCoverageRef(est *entities.Estimate, coverageID *string) (*string, error) {
	if coverageID == nil || trimmed(*coverageID) == "" {
		return nil, nil
	}
	id := trimmed(*coverageID)
	if _, err := est.FindCoverage(id); err != nil {
		return nil, err
	}
	return &id, nil
}
