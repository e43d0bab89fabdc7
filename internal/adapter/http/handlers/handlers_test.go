package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	request "claimscope/internal/adapter/http/dto/request"
	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := request.RegisterValidators(); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	return gin.New()
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func sampleEstimate() entities.Estimate {
	length, width, height := decimal.NewFromInt(10), decimal.NewFromInt(12), decimal.NewFromInt(8)
	return entities.Estimate{
		ID:          "est-1",
		ClaimNumber: "CLM-1",
		RegionID:    "default",
		Status:      entities.EstimateStatusDraft,
		Structures: []entities.Structure{{
			ID:   "st-1",
			Name: "Main Building",
			Areas: []entities.Area{{
				ID:   "ar-1",
				Name: "Interior",
				Kind: entities.AreaKindInterior,
				Zones: []entities.Zone{{
					ID:         "zone-1",
					Name:       "Kitchen",
					Type:       entities.ZoneTypeRoom,
					Status:     entities.ZoneStatusMeasured,
					Dimensions: entities.RawDimensions{Length: &length, Width: &width, Height: &height},
					Derived:    entities.DerivedDimensions{entities.DimWallArea: decimal.NewFromInt(352)},
				}},
			}},
		}},
	}
}

func sampleMutation(nodeID string) usecase.MutationResult {
	return usecase.MutationResult{Estimate: sampleEstimate(), NodeID: nodeID}
}
