package handlers

import (
	"context"
	"net/http"
	"testing"

	"claimscope/internal/adapter/http/handlers/mocks"
	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestHierarchyHandler_InitializeHierarchy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIHierarchyUseCase(ctrl)
	h := NewHierarchyHandler(uc)

	r := newRouter(t)
	r.POST("/v1/estimates/:estimate_id/initialize", h.InitializeHierarchy)

	uc.EXPECT().InitializeHierarchy(gomock.Any(), "est-1", usecase.InitializeHierarchyInput{IncludeInterior: true}).
		Return(sampleMutation("st-1"), nil)
	uc.EXPECT().InitializeHierarchy(gomock.Any(), "est-1", usecase.InitializeHierarchyInput{}).
		Return(usecase.MutationResult{}, entities.NewValidationError("include", "at least one area must be enabled"))

	w := serve(r, http.MethodPost, "/v1/estimates/est-1/initialize", `{"include_interior":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodPost, "/v1/estimates/est-1/initialize", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if details := body["details"].(map[string]any); details["field"] != "include" {
		t.Fatalf("unexpected details: %s", w.Body.String())
	}
}

func TestHierarchyHandler_Structures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIHierarchyUseCase(ctrl)
	h := NewHierarchyHandler(uc)

	r := newRouter(t)
	r.POST("/v1/estimates/:estimate_id/structures", h.CreateStructure)
	r.PATCH("/v1/estimates/:estimate_id/structures/:structure_id", h.UpdateStructure)
	r.DELETE("/v1/estimates/:estimate_id/structures/:structure_id", h.DeleteStructure)
	r.POST("/v1/estimates/:estimate_id/structures/:structure_id/areas", h.CreateArea)
	r.DELETE("/v1/estimates/:estimate_id/areas/:area_id", h.DeleteArea)

	t.Run("create requires a name", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/estimates/est-1/structures", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create, rename and delete", func(t *testing.T) {
		uc.EXPECT().CreateStructure(gomock.Any(), "est-1", "Garage").Return(sampleMutation("st-2"), nil)
		uc.EXPECT().UpdateStructure(gomock.Any(), "est-1", "st-2", "Detached Garage").Return(sampleMutation("st-2"), nil)
		uc.EXPECT().DeleteStructure(gomock.Any(), "est-1", "st-9").Return(usecase.MutationResult{}, entities.NewNotFoundError(entities.KindStructure, "st-9"))

		if w := serve(r, http.MethodPost, "/v1/estimates/est-1/structures", `{"name":"Garage"}`); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w := serve(r, http.MethodPatch, "/v1/estimates/est-1/structures/st-2", `{"name":"Detached Garage"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		w := serve(r, http.MethodDelete, "/v1/estimates/est-1/structures/st-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "STRUCTURE_NOT_FOUND" || body["message"] != "Structure not found" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("areas", func(t *testing.T) {
		uc.EXPECT().CreateArea(gomock.Any(), "est-1", "st-1", "Basement", entities.AreaKindInterior).Return(sampleMutation("ar-2"), nil)
		uc.EXPECT().DeleteArea(gomock.Any(), "est-1", "ar-2").Return(sampleMutation(""), nil)

		if w := serve(r, http.MethodPost, "/v1/estimates/est-1/structures/st-1/areas", `{"name":"Basement","kind":"attic"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown kind, got %d", w.Code)
		}
		if w := serve(r, http.MethodPost, "/v1/estimates/est-1/structures/st-1/areas", `{"name":"Basement","kind":"interior"}`); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w := serve(r, http.MethodDelete, "/v1/estimates/est-1/areas/ar-2", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestHierarchyHandler_Zones(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIHierarchyUseCase(ctrl)
	h := NewHierarchyHandler(uc)

	r := newRouter(t)
	r.POST("/v1/estimates/:estimate_id/areas/:area_id/zones", h.CreateZone)
	r.PATCH("/v1/estimates/:estimate_id/zones/:zone_id", h.UpdateZone)
	r.DELETE("/v1/estimates/:estimate_id/zones/:zone_id", h.DeleteZone)
	r.POST("/v1/estimates/:estimate_id/zones/:zone_id/recalculate", h.RecalcZoneDimensions)

	t.Run("create rejects negative dimensions", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/estimates/est-1/areas/ar-1/zones", `{"name":"Den","type":"room","dimensions":{"length":-1}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		details := decodeBody(t, w)["details"].([]any)
		if details[0].(map[string]any)["field"] != "dimensions.length" {
			t.Fatalf("unexpected details: %s", w.Body.String())
		}
	})

	t.Run("create forwards geometry", func(t *testing.T) {
		uc.EXPECT().CreateZone(gomock.Any(), "est-1", "ar-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, in usecase.ZoneInput) (usecase.MutationResult, error) {
				if in.Name != "Den" || in.Type != entities.ZoneTypeRoom {
					t.Fatalf("unexpected zone input: %+v", in)
				}
				if in.Dimensions.Length == nil || in.Dimensions.Length.String() != "10.5" || in.Dimensions.Height != nil {
					t.Fatalf("unexpected dimensions: %+v", in.Dimensions)
				}
				return sampleMutation("zone-9"), nil
			})

		w := serve(r, http.MethodPost, "/v1/estimates/est-1/areas/ar-1/zones", `{"name":"Den","type":"room","dimensions":{"length":"10.5","width":12}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if body := decodeBody(t, w); body["node_id"] != "zone-9" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("patch only sends present fields", func(t *testing.T) {
		uc.EXPECT().UpdateZone(gomock.Any(), "est-1", "zone-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, in usecase.ZoneUpdate) (usecase.MutationResult, error) {
				if in.Status == nil || *in.Status != entities.ZoneStatusScoped {
					t.Fatalf("expected status update, got %+v", in.Status)
				}
				if in.Name != nil || in.Dimensions != nil || in.Type != nil {
					t.Fatalf("unexpected fields in update: %+v", in)
				}
				return sampleMutation("zone-1"), nil
			})

		if w := serve(r, http.MethodPatch, "/v1/estimates/est-1/zones/zone-1", `{"status":"scoped"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete and recalc", func(t *testing.T) {
		uc.EXPECT().DeleteZone(gomock.Any(), "est-1", "zone-1").Return(sampleMutation(""), nil)
		uc.EXPECT().RecalcZoneDimensions(gomock.Any(), "est-1", "zone-2").
			Return(usecase.MutationResult{}, entities.NewValidationError("dimensions", "zone has no measurements"))

		if w := serve(r, http.MethodDelete, "/v1/estimates/est-1/zones/zone-1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := serve(r, http.MethodPost, "/v1/estimates/est-1/zones/zone-2/recalculate", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestHierarchyHandler_OpeningsAndSubrooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIHierarchyUseCase(ctrl)
	h := NewHierarchyHandler(uc)

	r := newRouter(t)
	r.POST("/v1/estimates/:estimate_id/zones/:zone_id/missing-walls", h.CreateMissingWall)
	r.DELETE("/v1/estimates/:estimate_id/missing-walls/:missing_wall_id", h.DeleteMissingWall)
	r.POST("/v1/estimates/:estimate_id/zones/:zone_id/subrooms", h.CreateSubroom)
	r.DELETE("/v1/estimates/:estimate_id/subrooms/:subroom_id", h.DeleteSubroom)

	if w := serve(r, http.MethodPost, "/v1/estimates/est-1/zones/zone-1/missing-walls", `{"width":0,"height":7}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero width, got %d", w.Code)
	}

	res := sampleMutation("mw-1")
	res.Warnings = []entities.ConsistencyWarning{{Code: entities.WarningOpeningsExceedWallArea, ZoneID: "zone-1"}}
	uc.EXPECT().CreateMissingWall(gomock.Any(), "est-1", "zone-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, in usecase.MissingWallInput) (usecase.MutationResult, error) {
			if in.Type != entities.OpeningTypeDoorway || in.Quantity != 2 || in.OpensInto == nil || *in.OpensInto != "zone-2" {
				t.Fatalf("unexpected opening: %+v", in)
			}
			return res, nil
		})
	w := serve(r, http.MethodPost, "/v1/estimates/est-1/zones/zone-1/missing-walls", `{"type":"doorway","width":3,"height":7,"quantity":2,"opens_into":"zone-2"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	warnings := decodeBody(t, w)["warnings"].([]any)
	if len(warnings) != 1 || warnings[0].(map[string]any)["code"] != entities.WarningOpeningsExceedWallArea {
		t.Fatalf("unexpected warnings: %s", w.Body.String())
	}

	uc.EXPECT().DeleteMissingWall(gomock.Any(), "est-1", "mw-1").Return(sampleMutation(""), nil)
	if w := serve(r, http.MethodDelete, "/v1/estimates/est-1/missing-walls/mw-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().CreateSubroom(gomock.Any(), "est-1", "zone-1", gomock.Any()).Return(sampleMutation("sr-1"), nil)
	if w := serve(r, http.MethodPost, "/v1/estimates/est-1/zones/zone-1/subrooms", `{"name":"Closet","length":2,"width":3}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	uc.EXPECT().DeleteSubroom(gomock.Any(), "est-1", "sr-9").Return(usecase.MutationResult{}, entities.NewNotFoundError(entities.KindSubroom, "sr-9"))
	w = serve(r, http.MethodDelete, "/v1/estimates/est-1/subrooms/sr-9", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != "SUBROOM_NOT_FOUND" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
