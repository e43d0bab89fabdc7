package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"claimscope/internal/adapter/http/handlers"
	"claimscope/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	estimates := mocks.NewMockIEstimateUseCase(ctrl)
	return NewRouter(Handlers{
		Estimate:     handlers.NewEstimateHandler(estimates),
		Hierarchy:    handlers.NewHierarchyHandler(mocks.NewMockIHierarchyUseCase(ctrl)),
		LineItem:     handlers.NewLineItemHandler(mocks.NewMockILineItemUseCase(ctrl)),
		Coverage:     handlers.NewCoverageHandler(mocks.NewMockICoverageUseCase(ctrl)),
		ClaimPayment: handlers.NewClaimPaymentHandler(mocks.NewMockIClaimPaymentUseCase(ctrl), false),
		Export:       handlers.NewExportHandler(estimates),
	})
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	r := newTestRouter(t)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"GET /v1/ping",
		"POST /v1/estimates",
		"GET /v1/estimates/:estimate_id",
		"DELETE /v1/estimates/:estimate_id",
		"PATCH /v1/estimates/:estimate_id/status",
		"POST /v1/estimates/:estimate_id/recalculate",
		"POST /v1/estimates/:estimate_id/reprice",
		"POST /v1/estimates/:estimate_id/initialize",
		"GET /v1/estimates/:estimate_id/export.xlsx",
		"POST /v1/estimates/:estimate_id/structures",
		"PATCH /v1/estimates/:estimate_id/structures/:structure_id",
		"DELETE /v1/estimates/:estimate_id/structures/:structure_id",
		"POST /v1/estimates/:estimate_id/structures/:structure_id/areas",
		"DELETE /v1/estimates/:estimate_id/areas/:area_id",
		"POST /v1/estimates/:estimate_id/areas/:area_id/zones",
		"PATCH /v1/estimates/:estimate_id/zones/:zone_id",
		"DELETE /v1/estimates/:estimate_id/zones/:zone_id",
		"POST /v1/estimates/:estimate_id/zones/:zone_id/recalculate",
		"POST /v1/estimates/:estimate_id/zones/:zone_id/missing-walls",
		"DELETE /v1/estimates/:estimate_id/missing-walls/:missing_wall_id",
		"POST /v1/estimates/:estimate_id/zones/:zone_id/subrooms",
		"DELETE /v1/estimates/:estimate_id/subrooms/:subroom_id",
		"POST /v1/estimates/:estimate_id/zones/:zone_id/line-items",
		"POST /v1/estimates/:estimate_id/zones/:zone_id/line-items/from-dimension",
		"PATCH /v1/estimates/:estimate_id/line-items/:line_item_id",
		"DELETE /v1/estimates/:estimate_id/line-items/:line_item_id",
		"PATCH /v1/estimates/:estimate_id/line-items/:line_item_id/coverage",
		"POST /v1/estimates/:estimate_id/coverages",
		"GET /v1/estimates/:estimate_id/coverages/line-items",
		"POST /v1/estimates/:estimate_id/coverages/:coverage_id/payments",
		"GET /v1/estimates/:estimate_id/payments",
		"GET /v1/payments/:payment_id",
		"GET /swagger/*any",
	}
	for _, route := range want {
		if !registered[route] {
			t.Fatalf("route %s not registered", route)
		}
	}
}

func TestPingAndRequestID(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get(HeaderRequestID) != "req-42" {
		t.Fatalf("request id not echoed: %q", w.Header().Get(HeaderRequestID))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Header().Get(HeaderRequestID) == "" {
		t.Fatalf("expected a generated request id")
	}
}
