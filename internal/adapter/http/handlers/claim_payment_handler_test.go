package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"claimscope/internal/adapter/http/handlers/mocks"
	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestClaimPaymentHandler_IssueCoveragePayment(t *testing.T) {
	const path = "/v1/estimates/est-1/coverages/cov-1/payments"

	newHandler := func(t *testing.T, mockMode bool) (*gin.Engine, *mocks.MockIClaimPaymentUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClaimPaymentUseCase(ctrl)
		h := NewClaimPaymentHandler(uc, mockMode)
		r := newRouter(t)
		r.POST("/v1/estimates/:estimate_id/coverages/:coverage_id/payments", h.IssueCoveragePayment)
		return r, uc
	}

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newHandler(t, false)

		w := serve(r, http.MethodPost, path, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty payload", func(t *testing.T) {
		r, uc := newHandler(t, true)

		uc.EXPECT().IssueCoveragePayment(gomock.Any(), "est-1", "cov-1", json.RawMessage("{}")).
			Return(entities.ClaimPayment{ID: "pay-1", Status: entities.PaymentStatusApproved}, nil)

		if w := serve(r, http.MethodPost, path, "{"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("null envelope", func(t *testing.T) {
		r, _ := newHandler(t, false)

		if w := serve(r, http.MethodPost, path, `{"mp_payload":null}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("read failure", func(t *testing.T) {
		r, _ := newHandler(t, false)

		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped errors", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{usecase.ErrEstimateNotApproved, http.StatusConflict, "ESTIMATE_NOT_APPROVED"},
			{usecase.ErrNothingPayable, http.StatusConflict, "NOTHING_PAYABLE"},
			{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED"},
			{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest, "PAYMENT_PROVIDER_INVALID_USERS"},
			{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
			{entities.NewNotFoundError(entities.KindCoverage, "cov-1"), http.StatusNotFound, "COVERAGE_NOT_FOUND"},
		}
		for _, tc := range cases {
			r, uc := newHandler(t, false)
			uc.EXPECT().IssueCoveragePayment(gomock.Any(), "est-1", "cov-1", gomock.Any()).Return(entities.ClaimPayment{}, tc.err)

			w := serve(r, http.MethodPost, path, `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)
			if w.Code != tc.status {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
			}
			if body := decodeBody(t, w); body["code"] != tc.code {
				t.Fatalf("%v: unexpected body %s", tc.err, w.Body.String())
			}
		}
	})

	t.Run("success unwraps the envelope", func(t *testing.T) {
		r, uc := newHandler(t, false)

		now := time.Now().UTC()
		uc.EXPECT().IssueCoveragePayment(gomock.Any(), "est-1", "cov-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, payload json.RawMessage) (entities.ClaimPayment, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil || body["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.ClaimPayment{
					ID:         "pay-1",
					EstimateID: "est-1",
					CoverageID: "cov-1",
					Amount:     decimal.NewFromInt(166),
					Date:       now,
					Status:     entities.PaymentStatusApproved,
				}, nil
			})

		w := serve(r, http.MethodPost, path, `{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["payment_id"] != "pay-1" || body["amount"] != "166.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestClaimPaymentHandler_ListAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClaimPaymentUseCase(ctrl)
	h := NewClaimPaymentHandler(uc, false)

	r := newRouter(t)
	r.GET("/v1/estimates/:estimate_id/payments", h.ListPayments)
	r.GET("/v1/payments/:payment_id", h.GetPayment)

	uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.ClaimPayment{
		{ID: "pay-1", EstimateID: "est-1", Status: entities.PaymentStatusDenied},
		{ID: "pay-2", EstimateID: "est-1", Status: entities.PaymentStatusApproved},
	}, nil)
	uc.EXPECT().ListByEstimateID(gomock.Any(), "est-2").Return(nil, nil)
	uc.EXPECT().GetByID(gomock.Any(), "pay-9").Return(entities.ClaimPayment{}, usecase.ErrClaimPaymentNotFound)

	w := serve(r, http.MethodGet, "/v1/estimates/est-1/payments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 2 {
		t.Fatalf("unexpected list: %s", w.Body.String())
	}

	w = serve(r, http.MethodGet, "/v1/estimates/est-2/payments", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodGet, "/v1/payments/pay-9", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
