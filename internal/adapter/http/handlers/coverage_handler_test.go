package handlers

import (
	"net/http"
	"testing"

	"claimscope/internal/adapter/http/handlers/mocks"
	"claimscope/internal/domain/entities"
	"claimscope/internal/domain/rollup"
	"claimscope/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCoverageHandler_CreateCoverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICoverageUseCase(ctrl)
	h := NewCoverageHandler(uc)

	r := newRouter(t)
	r.POST("/v1/estimates/:estimate_id/coverages", h.CreateCoverage)

	if w := serve(r, http.MethodPost, "/v1/estimates/est-1/coverages", `{"type":"flood"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown type, got %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/v1/estimates/est-1/coverages", `{"type":"dwelling","deductible":-1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative deductible, got %d", w.Code)
	}

	uc.EXPECT().CreateCoverage(gomock.Any(), "est-1", gomock.Any()).Return(sampleMutation("cov-1"), nil)
	if w := serve(r, http.MethodPost, "/v1/estimates/est-1/coverages", `{"type":"dwelling","policy_limit":"250000","deductible":"1000"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCoverageHandler_UpdateLineItemCoverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICoverageUseCase(ctrl)
	h := NewCoverageHandler(uc)

	r := newRouter(t)
	r.PATCH("/v1/estimates/:estimate_id/line-items/:line_item_id/coverage", h.UpdateLineItemCoverage)

	cov := "cov-1"
	uc.EXPECT().UpdateLineItemCoverage(gomock.Any(), "est-1", "li-1", &cov).Return(sampleMutation("li-1"), nil)
	uc.EXPECT().UpdateLineItemCoverage(gomock.Any(), "est-1", "li-1", gomock.Nil()).Return(sampleMutation("li-1"), nil)

	if w := serve(r, http.MethodPatch, "/v1/estimates/est-1/line-items/li-1/coverage", `{"coverage_id":"cov-1"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodPatch, "/v1/estimates/est-1/line-items/li-1/coverage", `{"coverage_id":null}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCoverageHandler_GetLineItemsByCoverage(t *testing.T) {
	t.Run("allocation mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICoverageUseCase(ctrl)
		h := NewCoverageHandler(uc)

		r := newRouter(t)
		r.GET("/v1/estimates/:estimate_id/coverages/line-items", h.GetLineItemsByCoverage)

		uc.EXPECT().GetLineItemsByCoverage(gomock.Any(), "est-1").Return(rollup.CoverageAllocation{}, rollup.ErrAllocationMismatch)

		w := serve(r, http.MethodGet, "/v1/estimates/est-1/coverages/line-items", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICoverageUseCase(ctrl)
		h := NewCoverageHandler(uc)

		r := newRouter(t)
		r.GET("/v1/estimates/:estimate_id/coverages/line-items", h.GetLineItemsByCoverage)

		est := sampleEstimate()
		cov := "cov-1"
		est.Coverages = []entities.Coverage{{ID: cov, Type: entities.CoverageTypeDwelling, Name: "Dwelling"}}
		est.Structures[0].Areas[0].Zones[0].LineItems = []entities.LineItem{{
			ID:         "li-1",
			CoverageID: &cov,
			Financials: entities.FinancialResult{RCV: decimal.NewFromInt(270), ACV: decimal.NewFromInt(216)},
		}}
		uc.EXPECT().GetLineItemsByCoverage(gomock.Any(), "est-1").Return(rollup.AllocateByCoverage(est), nil)

		w := serve(r, http.MethodGet, "/v1/estimates/est-1/coverages/line-items", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		buckets := body["coverages"].([]any)
		if len(buckets) != 1 || buckets[0].(map[string]any)["payable"] != "216.00" {
			t.Fatalf("unexpected buckets: %s", w.Body.String())
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICoverageUseCase(ctrl)
		h := NewCoverageHandler(uc)

		r := newRouter(t)
		r.GET("/v1/estimates/:estimate_id/coverages/line-items", h.GetLineItemsByCoverage)

		uc.EXPECT().GetLineItemsByCoverage(gomock.Any(), "est-9").Return(rollup.CoverageAllocation{}, usecase.ErrEstimateNotFound)

		if w := serve(r, http.MethodGet, "/v1/estimates/est-9/coverages/line-items", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
