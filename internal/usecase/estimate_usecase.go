package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"claimscope/internal/domain/entities"
	"claimscope/internal/domain/rollup"
	"claimscope/internal/infrastructure/logger"
	"claimscope/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const repriceConcurrency = 8

// CreateEstimateInput holds the header fields of a new estimate.
type CreateEstimateInput struct {
	ClaimNumber      string
	InsuredName      string
	RegionID         string
	CarrierProfileID *string
}

// IEstimateUseCase exposes estimate level operations.
type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error)
	GetEstimateHierarchy(ctx context.Context, estimateID string) (entities.Estimate, error)
	RecalculateEstimate(ctx context.Context, estimateID string) (MutationResult, error)
	UpdateStatus(ctx context.Context, estimateID string, status entities.EstimateStatus) (entities.Estimate, error)
	DeleteEstimate(ctx context.Context, estimateID string) error
	RepriceEstimate(ctx context.Context, estimateID string) (MutationResult, error)
}

type EstimateUseCase struct {
	store   estimateStore
	catalog interfaces.ICatalogResolver
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, catalog interfaces.ICatalogResolver) *EstimateUseCase {
	return &EstimateUseCase{store: newEstimateStore(repo), catalog: catalog}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error) {
	in.ClaimNumber = trimmed(in.ClaimNumber)
	in.RegionID = trimmed(in.RegionID)
	if in.ClaimNumber == "" {
		return entities.Estimate{}, entities.NewValidationError("claim_number", "is required")
	}
	if in.RegionID == "" {
		return entities.Estimate{}, entities.NewValidationError("region_id", "is required")
	}
	if in.CarrierProfileID != nil && trimmed(*in.CarrierProfileID) == "" {
		in.CarrierProfileID = nil
	}

	now := u.store.now()
	e := entities.Estimate{
		ID:               uuid.NewString(),
		ClaimNumber:      in.ClaimNumber,
		InsuredName:      trimmed(in.InsuredName),
		RegionID:         in.RegionID,
		CarrierProfileID: in.CarrierProfileID,
		Status:           entities.EstimateStatusDraft,
		Structures:       []entities.Structure{},
		Coverages:        []entities.Coverage{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := u.store.repo.Create(ctx, e)
	if err != nil {
		logger.Errorf(ctx, "[estimate][usecase] create failed claim_number=%s err=%v", in.ClaimNumber, err)
		return entities.Estimate{}, err
	}
	logger.Infof(ctx, "[estimate][usecase] create success estimate_id=%s claim_number=%s", created.ID, created.ClaimNumber)
	return created, nil
}

// GetEstimateHierarchy returns the full tree with totals recomputed on every level.
func (u *EstimateUseCase) GetEstimateHierarchy(ctx context.Context, estimateID string) (entities.Estimate, error) {
	est, err := u.store.load(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	rollup.Rollup(&est)
	return est, nil
}

// RecalculateEstimate re-derives every zone, reprices every item and rolls the tree up again.
// Running it twice in a row yields identical totals.
func (u *EstimateUseCase) RecalculateEstimate(ctx context.Context, estimateID string) (MutationResult, error) {
	return u.store.mutate(ctx, estimateID, "recalculate", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		var all []entities.ConsistencyWarning
		var ferr error
		est.WalkZones(func(z *entities.Zone) bool {
			warnings, err := refreshZone(z)
			if err != nil {
				ferr = fmt.Errorf("zone %s: %w", z.ID, err)
				return false
			}
			all = append(all, warnings...)
			return true
		})
		return est.ID, all, ferr
	})
}

func (u *EstimateUseCase) UpdateStatus(ctx context.Context, estimateID string, status entities.EstimateStatus) (entities.Estimate, error) {
	if !status.Valid() {
		return entities.Estimate{}, entities.NewValidationError("status", fmt.Sprintf("unknown estimate status %q", status))
	}
	res, err := u.store.mutate(ctx, estimateID, "update-status", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		est.Status = status
		return est.ID, nil, nil
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return res.Estimate, nil
}

func (u *EstimateUseCase) DeleteEstimate(ctx context.Context, estimateID string) error {
	estimateID = trimmed(estimateID)
	if estimateID == "" {
		return ErrInvalidEstimateID
	}
	deleted, err := u.store.repo.Delete(ctx, estimateID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEstimateNotFound
	}
	logger.Infof(ctx, "[estimate][usecase] delete success estimate_id=%s", estimateID)
	return nil
}

// RepriceEstimate refreshes unit price, unit and tax rate of every line item from the catalog.
// Codes are resolved concurrently; results are applied to the snapshot afterwards.
func (u *EstimateUseCase) RepriceEstimate(ctx context.Context, estimateID string) (MutationResult, error) {
	if u.catalog == nil {
		return MutationResult{}, errors.New("catalog resolver not configured")
	}
	return u.store.mutate(ctx, estimateID, "reprice", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		codes := map[string]struct{}{}
		for _, li := range est.LineItems() {
			codes[li.Code] = struct{}{}
		}

		var mu sync.Mutex
		prices := make(map[string]entities.CatalogPrice, len(codes))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(repriceConcurrency)
		for code := range codes {
			g.Go(func() error {
				p, err := resolvePrice(gctx, u.catalog, est, code)
				if err != nil {
					return err
				}
				mu.Lock()
				prices[code] = p
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return "", nil, err
		}

		var all []entities.ConsistencyWarning
		var ferr error
		est.WalkZones(func(z *entities.Zone) bool {
			for i := range z.LineItems {
				applyCatalogPrice(&z.LineItems[i], prices[z.LineItems[i].Code])
			}
			if err := repriceZone(z); err != nil {
				ferr = fmt.Errorf("zone %s: %w", z.ID, err)
				return false
			}
			all = append(all, z.Warnings...)
			return true
		})
		logger.Infof(ctx, "[estimate][usecase] reprice resolved estimate_id=%s codes=%d", est.ID, len(prices))
		return est.ID, all, ferr
	})
}

// resolvePrice looks a code up for the estimate's region and carrier.
func resolvePrice(ctx context.Context, catalog interfaces.ICatalogResolver, est *entities.Estimate, code string) (entities.CatalogPrice, error) {
	p, err := catalog.ResolvePrice(ctx, code, est.RegionID, est.CarrierProfileID)
	if err != nil {
		if errors.Is(err, interfaces.ErrCatalogItemNotFound) {
			return entities.CatalogPrice{}, entities.NewNotFoundError(entities.KindCatalogItem, code)
		}
		return entities.CatalogPrice{}, err
	}
	return p, nil
}

func applyCatalogPrice(li *entities.LineItem, p entities.CatalogPrice) {
	li.UnitPrice = p.UnitPrice
	li.TaxRate = p.TaxRate
	if p.Unit != "" {
		li.Unit = p.Unit
	}
	if li.Description == "" {
		li.Description = p.Description
	}
}
