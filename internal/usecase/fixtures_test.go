package usecase

import (
	"context"
	"testing"

	"claimscope/internal/domain/entities"
	"claimscope/internal/domain/pricing"
	mock_interfaces "claimscope/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func decp(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

func strp(s string) *string { return &s }

// fixtureEstimate is a draft estimate with one measured 10x12x8 room (zone-1), one unmeasured
// elevation (zone-2) and a dwelling coverage.
func fixtureEstimate() entities.Estimate {
	est := entities.Estimate{
		ID:          "est-1",
		ClaimNumber: "CLM-1",
		RegionID:    "region-1",
		Status:      entities.EstimateStatusDraft,
		Coverages:   []entities.Coverage{{ID: "cov-dwelling", Type: entities.CoverageTypeDwelling, Name: "Dwelling"}},
		Structures: []entities.Structure{{
			ID:   "st-1",
			Name: "Main Building",
			Areas: []entities.Area{
				{ID: "ar-int", Name: "Interior", Kind: entities.AreaKindInterior, Zones: []entities.Zone{{
					ID:         "zone-1",
					Name:       "Kitchen",
					Type:       entities.ZoneTypeRoom,
					Status:     entities.ZoneStatusPending,
					Dimensions: entities.RawDimensions{Length: decp("10"), Width: decp("12"), Height: decp("8")},
				}}},
				{ID: "ar-ext", Name: "Exterior", Kind: entities.AreaKindExterior, Zones: []entities.Zone{{
					ID:     "zone-2",
					Name:   "Front Elevation",
					Type:   entities.ZoneTypeElevation,
					Status: entities.ZoneStatusPending,
				}}},
			},
		}},
	}
	for _, id := range []string{"zone-1", "zone-2"} {
		z, _ := est.FindZone(id)
		if _, err := refreshZone(z); err != nil {
			panic(err)
		}
	}
	return est
}

// stubRepo serves est from GetByID and records what Save receives.
type stubRepo struct {
	*mock_interfaces.MockIEstimateRepository
	saved *entities.Estimate
}

func newStubRepo(t *testing.T, est entities.Estimate) *stubRepo {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := &stubRepo{MockIEstimateRepository: mock_interfaces.NewMockIEstimateRepository(ctrl)}
	repo.EXPECT().GetByID(gomock.Any(), est.ID).Return(est, nil).AnyTimes()
	return repo
}

// expectSave allows one Save and keeps the saved tree for assertions.
func (r *stubRepo) expectSave() {
	r.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
		func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
			r.saved = &e
			return e, nil
		},
	)
}

func mustZone(t *testing.T, est entities.Estimate, id string) entities.Zone {
	t.Helper()
	z, err := est.FindZone(id)
	if err != nil {
		t.Fatalf("zone %s: %v", id, err)
	}
	return *z
}

func derived(t *testing.T, z entities.Zone, key entities.DimensionKey) string {
	t.Helper()
	v, ok := z.Derived[key]
	if !ok {
		t.Fatalf("zone %s has no %s", z.ID, key)
	}
	return v.String()
}

func pricedLineItem(t *testing.T, id, qty, price, tax, dep string, coverageID *string) entities.LineItem {
	t.Helper()
	li := entities.LineItem{
		ID:              id,
		Code:            "CODE-" + id,
		Quantity:        dec(qty),
		Unit:            "SF",
		UnitPrice:       dec(price),
		TaxRate:         dec(tax),
		DepreciationPct: dec(dep),
		CoverageID:      coverageID,
	}
	if err := pricing.Apply(&li); err != nil {
		t.Fatalf("price %s: %v", id, err)
	}
	return li
}
