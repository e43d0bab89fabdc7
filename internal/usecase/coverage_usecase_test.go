package usecase

import (
	"context"
	"errors"
	"testing"

	"claimscope/internal/domain/entities"
)

func TestCoverageUseCase_CreateCoverage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := newStubRepo(t, fixtureEstimate())
		uc := NewCoverageUseCase(repo)
		repo.expectSave()

		res, err := uc.CreateCoverage(context.Background(), "est-1", CoverageInput{Type: entities.CoverageTypeContents, PolicyLimit: dec("5000"), Deductible: dec("500")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c, err := res.Estimate.FindCoverage(res.NodeID)
		if err != nil {
			t.Fatalf("coverage not stored: %v", err)
		}
		if c.Name != "contents" || !c.Deductible.Equal(dec("500")) {
			t.Fatalf("unexpected coverage: %+v", c)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc := NewCoverageUseCase(nil)
		_, err := uc.CreateCoverage(context.Background(), "est-1", CoverageInput{Type: "flood"})
		var ve *entities.ValidationError
		if !errors.As(err, &ve) || ve.Field != "type" {
			t.Fatalf("expected type validation error, got %v", err)
		}
	})

	t.Run("negative deductible", func(t *testing.T) {
		uc := NewCoverageUseCase(nil)
		_, err := uc.CreateCoverage(context.Background(), "est-1", CoverageInput{Type: entities.CoverageTypeDwelling, Deductible: dec("-1")})
		var ve *entities.ValidationError
		if !errors.As(err, &ve) || ve.Field != "deductible" {
			t.Fatalf("expected deductible validation error, got %v", err)
		}
	})
}

func TestCoverageUseCase_UpdateLineItemCoverage(t *testing.T) {
	est := withItems(t, pricedLineItem(t, "li-1", "100", "2.50", "0.08", "20", strp("cov-dwelling")))

	t.Run("unassign", func(t *testing.T) {
		repo := newStubRepo(t, est)
		uc := NewCoverageUseCase(repo)
		repo.expectSave()

		res, err := uc.UpdateLineItemCoverage(context.Background(), "est-1", "li-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, li, _ := res.Estimate.FindLineItem("li-1")
		if li.CoverageID != nil || li.Financials.RCV.StringFixed(2) != "270.00" {
			t.Fatalf("unexpected line item: %+v", li)
		}
	})

	t.Run("unknown coverage", func(t *testing.T) {
		repo := newStubRepo(t, est)
		uc := NewCoverageUseCase(repo)
		_, err := uc.UpdateLineItemCoverage(context.Background(), "est-1", "li-1", strp("cov-x"))
		var nf *entities.NotFoundError
		if !errors.As(err, &nf) || nf.Kind != entities.KindCoverage {
			t.Fatalf("expected coverage not found, got %v", err)
		}
	})
}

func TestCoverageUseCase_GetLineItemsByCoverage(t *testing.T) {
	est := withItems(t,
		pricedLineItem(t, "li-1", "100", "2.50", "0.08", "20", strp("cov-dwelling")),
		pricedLineItem(t, "li-2", "10", "10", "0", "0", nil),
	)
	est.Coverages[0].Deductible = dec("50")
	repo := newStubRepo(t, est)
	uc := NewCoverageUseCase(repo)

	alloc, err := uc.GetLineItemsByCoverage(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dwelling := alloc.Buckets["cov-dwelling"]
	if dwelling == nil || len(dwelling.Items) != 1 || dwelling.Totals.RCV.StringFixed(2) != "270.00" {
		t.Fatalf("unexpected dwelling bucket: %+v", dwelling)
	}
	if dwelling.Payable.StringFixed(2) != "166.00" {
		t.Fatalf("expected payable 216 - 50, got %s", dwelling.Payable)
	}
	if len(alloc.Unassigned.Items) != 1 || alloc.Unassigned.Totals.RCV.StringFixed(2) != "100.00" {
		t.Fatalf("unexpected unassigned bucket: %+v", alloc.Unassigned)
	}
	if alloc.Total().RCV.StringFixed(2) != "370.00" {
		t.Fatalf("expected 370 total, got %s", alloc.Total().RCV)
	}
	if dwelling.Items[0].ZoneName != "Kitchen" || dwelling.Items[0].StructureID != "st-1" {
		t.Fatalf("unexpected item ref: %+v", dwelling.Items[0])
	}
}
