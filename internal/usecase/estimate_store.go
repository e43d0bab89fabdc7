package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"claimscope/internal/domain/dimension"
	"claimscope/internal/domain/entities"
	"claimscope/internal/domain/pricing"
	"claimscope/internal/domain/rollup"
	"claimscope/internal/infrastructure/logger"
	"claimscope/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// MutationResult is returned by every write on the estimate tree.
//
// Estimate is the saved tree with refreshed totals, NodeID the node created or changed (empty for
// deletes) and Warnings the consistency warnings of the zones touched by the change.
type MutationResult struct {
	Estimate entities.Estimate
	NodeID   string
	Warnings []entities.ConsistencyWarning
}

// estimateStore runs read-modify-write cycles on a private copy of the stored tree.
// Nothing is saved when the change fails, so callers never observe a partial write.
type estimateStore struct {
	repo interfaces.IEstimateRepository
	now  func() time.Time
}

func newEstimateStore(repo interfaces.IEstimateRepository) estimateStore {
	return estimateStore{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s estimateStore) load(ctx context.Context, estimateID string) (entities.Estimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	est, err := s.repo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if est.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return est.Clone(), nil
}

// mutate applies fn to a snapshot, rolls the totals up and saves the result.
func (s estimateStore) mutate(ctx context.Context, estimateID string, op string, fn func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error)) (MutationResult, error) {
	est, err := s.load(ctx, estimateID)
	if err != nil {
		return MutationResult{}, err
	}

	nodeID, warnings, err := fn(&est)
	if err != nil {
		logger.Warnf(ctx, "[estimate][usecase] %s rejected estimate_id=%s err=%v", op, est.ID, err)
		return MutationResult{}, err
	}

	rollup.Rollup(&est)
	est.UpdatedAt = s.now()

	saved, err := s.repo.Save(ctx, est)
	if err != nil {
		logger.Errorf(ctx, "[estimate][usecase] %s save failed estimate_id=%s err=%v", op, est.ID, err)
		return MutationResult{}, err
	}
	if saved.ID == "" {
		return MutationResult{}, ErrEstimateNotFound
	}
	logger.Infof(ctx, "[estimate][usecase] %s success estimate_id=%s node_id=%s rcv=%s", op, saved.ID, nodeID, saved.Totals.RCV.StringFixed(2))
	return MutationResult{Estimate: saved, NodeID: nodeID, Warnings: warnings}, nil
}

// refreshZone re-derives the zone dimensions, re-derives the quantity of every dimension driven
// line item and reprices all items of the zone.
//
// A zone without any measurement yet stays pending with no derived values. Openings or subrooms
// recorded on it are kept but flagged, since nothing is deducted or added until it is measured.
func refreshZone(z *entities.Zone) ([]entities.ConsistencyWarning, error) {
	switch {
	case z.Measured():
		derived, warnings, err := dimension.Derive(*z)
		if err != nil {
			return nil, err
		}
		z.Derived = derived
		z.Warnings = warnings
	case len(z.MissingWalls) > 0 || len(z.Subrooms) > 0:
		z.Derived = entities.DerivedDimensions{}
		z.Warnings = []entities.ConsistencyWarning{{
			Code:    entities.WarningZoneNotMeasured,
			Message: fmt.Sprintf("zone has %d openings and %d subrooms but no measurements; they apply once it is measured", len(z.MissingWalls), len(z.Subrooms)),
			ZoneID:  z.ID,
			Excess:  decimal.Zero,
		}}
	default:
		z.Derived = entities.DerivedDimensions{}
		z.Warnings = nil
	}
	if err := repriceZone(z); err != nil {
		return nil, err
	}
	return z.Warnings, nil
}

func repriceZone(z *entities.Zone) error {
	for i := range z.LineItems {
		li := &z.LineItems[i]
		if li.DimensionKey != nil {
			v, ok := z.Derived[*li.DimensionKey]
			if !ok {
				v = decimal.Zero
			}
			li.Quantity = v
		}
		if err := pricing.Apply(li); err != nil {
			return err
		}
	}
	return nil
}

func trimmed(s string) string { return strings.TrimSpace(s) }
