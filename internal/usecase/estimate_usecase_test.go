package usecase

import (
	"context"
	"errors"
	"testing"

	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase/interfaces"
	mock_interfaces "claimscope/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_CreateEstimate(t *testing.T) {
	t.Run("claim number required", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{ClaimNumber: "  ", RegionID: "r"})
		var ve *entities.ValidationError
		if !errors.As(err, &ve) || ve.Field != "claim_number" {
			t.Fatalf("expected claim_number validation error, got %v", err)
		}
	})

	t.Run("region required", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{ClaimNumber: "CLM-1"})
		var ve *entities.ValidationError
		if !errors.As(err, &ve) || ve.Field != "region_id" {
			t.Fatalf("expected region_id validation error, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{ClaimNumber: "CLM-1", RegionID: "r"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.ClaimNumber != "CLM-1" || e.Status != entities.EstimateStatusDraft || e.CarrierProfileID != nil {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return e, nil
			},
		)

		res, err := uc.CreateEstimate(context.Background(), CreateEstimateInput{ClaimNumber: " CLM-1 ", RegionID: "r", CarrierProfileID: strp(" ")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestEstimateUseCase_GetEstimateHierarchy(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.GetEstimateHierarchy(context.Background(), " ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimate{}, nil)

		_, err := uc.GetEstimateHierarchy(context.Background(), "missing")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("stale stored totals are recomputed", func(t *testing.T) {
		est := fixtureEstimate()
		z, _ := est.FindZone("zone-1")
		z.LineItems = append(z.LineItems, pricedLineItem(t, "li-1", "100", "2.50", "0.08", "20", nil))
		est.Totals.RCV = dec("1")

		repo := newStubRepo(t, est)
		uc := NewEstimateUseCase(repo, nil)
		got, err := uc.GetEstimateHierarchy(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Totals.RCV.StringFixed(2) != "270.00" || got.Structures[0].Areas[0].Totals.RCV.StringFixed(2) != "270.00" {
			t.Fatalf("unexpected totals: %+v", got.Totals)
		}
	})
}

func TestEstimateUseCase_RecalculateEstimate(t *testing.T) {
	est := fixtureEstimate()
	z, _ := est.FindZone("zone-1")
	key := entities.DimWallArea
	li := pricedLineItem(t, "li-1", "352", "1", "0", "0", nil)
	li.DimensionKey = &key
	z.LineItems = append(z.LineItems, li)
	// a wall added without re-deriving, as an older writer could have stored it
	z.MissingWalls = append(z.MissingWalls, entities.MissingWall{ID: "mw-1", Type: entities.OpeningTypeDoorway, Width: dec("3"), Height: dec("7"), Quantity: 1})

	repo := newStubRepo(t, est)
	uc := NewEstimateUseCase(repo, nil)

	repo.expectSave()
	first, err := uc.RecalculateEstimate(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := derived(t, mustZone(t, first.Estimate, "zone-1"), entities.DimWallArea); got != "331" {
		t.Fatalf("expected wall area 331, got %s", got)
	}
	if first.Estimate.Totals.RCV.StringFixed(2) != "331.00" {
		t.Fatalf("expected dimension driven item to follow wall area, got %s", first.Estimate.Totals.RCV)
	}

	// second run starts from what the first one saved
	repo2 := newStubRepo(t, *repo.saved)
	uc2 := NewEstimateUseCase(repo2, nil)
	repo2.expectSave()
	second, err := uc2.RecalculateEstimate(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Estimate.Totals.Equal(second.Estimate.Totals) {
		t.Fatalf("recalculate is not idempotent: %+v vs %+v", first.Estimate.Totals, second.Estimate.Totals)
	}
}

func TestEstimateUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "est-1", "paid")
		var ve *entities.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("approve", func(t *testing.T) {
		repo := newStubRepo(t, fixtureEstimate())
		uc := NewEstimateUseCase(repo, nil)
		repo.expectSave()
		got, err := uc.UpdateStatus(context.Background(), "est-1", entities.EstimateStatusApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EstimateStatusApproved {
			t.Fatalf("unexpected status %s", got.Status)
		}
	})

	t.Run("estimate deleted before save", func(t *testing.T) {
		repo := newStubRepo(t, fixtureEstimate())
		uc := NewEstimateUseCase(repo, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, nil)
		_, err := uc.UpdateStatus(context.Background(), "est-1", entities.EstimateStatusClosed)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}

func TestEstimateUseCase_DeleteEstimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := NewEstimateUseCase(repo, nil)

	repo.EXPECT().Delete(gomock.Any(), "est-1").Return(true, nil)
	if err := uc.DeleteEstimate(context.Background(), " est-1 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().Delete(gomock.Any(), "est-2").Return(false, nil)
	if err := uc.DeleteEstimate(context.Background(), "est-2"); !errors.Is(err, ErrEstimateNotFound) {
		t.Fatalf("expected ErrEstimateNotFound, got %v", err)
	}
}

func TestEstimateUseCase_RepriceEstimate(t *testing.T) {
	withItems := func() entities.Estimate {
		est := fixtureEstimate()
		z, _ := est.FindZone("zone-1")
		z.LineItems = append(z.LineItems,
			pricedLineItem(t, "li-1", "100", "2.00", "0", "20", nil),
			pricedLineItem(t, "li-2", "10", "5.00", "0", "0", nil),
		)
		z.LineItems[0].Code = "DRY-HANG"
		z.LineItems[1].Code = "PAINT"
		return est
	}

	t.Run("applies resolved prices", func(t *testing.T) {
		repo := newStubRepo(t, withItems())
		catalog := mock_interfaces.NewMockICatalogResolver(gomock.NewController(t))
		uc := NewEstimateUseCase(repo, catalog)

		catalog.EXPECT().ResolvePrice(gomock.Any(), "DRY-HANG", "region-1", nil).Return(entities.CatalogPrice{UnitPrice: dec("2.50"), TaxRate: dec("0.08"), Unit: "SF"}, nil)
		catalog.EXPECT().ResolvePrice(gomock.Any(), "PAINT", "region-1", nil).Return(entities.CatalogPrice{UnitPrice: dec("10"), Unit: "SF"}, nil)
		repo.expectSave()

		res, err := uc.RepriceEstimate(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 270 for the drywall plus 100 for paint
		if res.Estimate.Totals.RCV.StringFixed(2) != "370.00" || res.Estimate.Totals.ACV.StringFixed(2) != "316.00" {
			t.Fatalf("unexpected totals: %+v", res.Estimate.Totals)
		}
	})

	t.Run("unknown code leaves estimate untouched", func(t *testing.T) {
		repo := newStubRepo(t, withItems())
		catalog := mock_interfaces.NewMockICatalogResolver(gomock.NewController(t))
		uc := NewEstimateUseCase(repo, catalog)

		catalog.EXPECT().ResolvePrice(gomock.Any(), gomock.Any(), "region-1", nil).Return(entities.CatalogPrice{}, interfaces.ErrCatalogItemNotFound).MinTimes(1).MaxTimes(2)

		_, err := uc.RepriceEstimate(context.Background(), "est-1")
		var nf *entities.NotFoundError
		if !errors.As(err, &nf) || nf.Kind != entities.KindCatalogItem {
			t.Fatalf("expected catalog item not found, got %v", err)
		}
		if repo.saved != nil {
			t.Fatalf("nothing must be saved on failure")
		}
	})
}
