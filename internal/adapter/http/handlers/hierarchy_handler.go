package handlers

import (
	"net/http"

	request "claimscope/internal/adapter/http/dto/request"
	"claimscope/internal/usecase"

	"github.com/gin-gonic/gin"
)

// HierarchyHandler serves the structure, area, zone, missing wall and subroom routes.
type HierarchyHandler struct {
	usecase usecase.IHierarchyUseCase
}

func NewHierarchyHandler(uc usecase.IHierarchyUseCase) *HierarchyHandler {
	return &HierarchyHandler{usecase: uc}
}

// InitializeHierarchy godoc
// @Summary      Seed a structure with default interior, exterior and roofing areas
// @Tags         hierarchy
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                              true  "Estimate ID"
// @Param        payload      body      request.InitializeHierarchyRequest  true  "Areas to seed"
// @Success      201          {object}  response.MutationResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/initialize [post]
func (h *HierarchyHandler) InitializeHierarchy(c *gin.Context) {
	var payload request.InitializeHierarchyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResultStatus(c, "initialize", http.StatusCreated, func() (usecase.MutationResult, error) {
		return h.usecase.InitializeHierarchy(c.Request.Context(), c.Param("estimate_id"), payload.ToInput())
	})
}

// CreateStructure godoc
// @Summary      Add a structure
// @Tags         hierarchy
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                    true  "Estimate ID"
// @Param        payload      body      request.StructureRequest  true  "Structure"
// @Success      201          {object}  response.MutationResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/structures [post]
func (h *HierarchyHandler) CreateStructure(c *gin.Context) {
	var payload request.StructureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResultStatus(c, "create-structure", http.StatusCreated, func() (usecase.MutationResult, error) {
		return h.usecase.CreateStructure(c.Request.Context(), c.Param("estimate_id"), payload.Name)
	})
}

// UpdateStructure godoc
// @Summary      Rename a structure
// @Tags         hierarchy
// @Accept       json
// @Produce      json
// @Param        estimate_id   path      string                    true  "Estimate ID"
// @Param        structure_id  path      string                    true  "Structure ID"
// @Param        payload       body      request.StructureRequest  true  "Structure"
// @Success      200           {object}  response.MutationResponse
// @Failure      404           {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/structures/{structure_id} [patch]
func (h *HierarchyHandler) UpdateStructure(c *gin.Context) {
	var payload request.StructureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResult(c, "update-structure", func() (usecase.MutationResult, error) {
		return h.usecase.UpdateStructure(c.Request.Context(), c.Param("estimate_id"), c.Param("structure_id"), payload.Name)
	})
}

// DeleteStructure godoc
// @Summary      Delete a structure and everything under it
// @Tags         hierarchy
// @Produce      json
// @Param        estimate_id   path      string  true  "Estimate ID"
// @Param        structure_id  path      string  true  "Structure ID"
// @Success      200           {object}  response.MutationResponse
// @Failure      404           {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/structures/{structure_id} [delete]
func (h *HierarchyHandler) DeleteStructure(c *gin.Context) {
	mutationResult(c, "delete-structure", func() (usecase.MutationResult, error) {
		return h.usecase.DeleteStructure(c.Request.Context(), c.Param("estimate_id"), c.Param("structure_id"))
	})
}

// CreateArea godoc
// @Summary      Add an area to a structure
// @Tags         hierarchy
// @Accept       json
// @Produce      json
// @Param        estimate_id   path      string               true  "Estimate ID"
// @Param        structure_id  path      string               true  "Structure ID"
// @Param        payload       body      request.AreaRequest  true  "Area"
// @Success      201           {object}  response.MutationResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      404           {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/structures/{structure_id}/areas [post]
func (h *HierarchyHandler) CreateArea(c *gin.Context) {
	var payload request.AreaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResultStatus(c, "create-area", http.StatusCreated, func() (usecase.MutationResult, error) {
		return h.usecase.CreateArea(c.Request.Context(), c.Param("estimate_id"), c.Param("structure_id"), payload.Name, payload.Kind)
	})
}

// DeleteArea godoc
// @Summary      Delete an area and its zones
// @Tags         hierarchy
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Param        area_id      path      string  true  "Area ID"
// @Success      200          {object}  response.MutationResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/areas/{area_id} [delete]
func (h *HierarchyHandler) DeleteArea(c *gin.Context) {
	mutationResult(c, "delete-area", func() (usecase.MutationResult, error) {
		return h.usecase.DeleteArea(c.Request.Context(), c.Param("estimate_id"), c.Param("area_id"))
	})
}

// CreateZone godoc
// @Summary      Add a zone to an area
// @Description  Derived dimensions are computed from the zone type, raw dimensions, pitch and footprint.
// @Tags         hierarchy
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string               true  "Estimate ID"
// @Param        area_id      path      string               true  "Area ID"
// @Param        payload      body      request.ZoneRequest  true  "Zone"
// @Success      201          {object}  response.MutationResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/areas/{area_id}/zones [post]
func (h *HierarchyHandler) CreateZone(c *gin.Context) {
	var payload request.ZoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResultStatus(c, "create-zone", http.StatusCreated, func() (usecase.MutationResult, error) {
		return h.usecase.CreateZone(c.Request.Context(), c.Param("estimate_id"), c.Param("area_id"), payload.ToInput())
	})
}

// UpdateZone godoc
// @Summary      Update a zone
// @Tags         hierarchy
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                    true  "Estimate ID"
// @Param        zone_id      path      string                    true  "Zone ID"
// @Param        payload      body      request.ZonePatchRequest  true  "Fields to change"
// @Success      200          {object}  response.MutationResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/zones/{zone_id} [patch]
func (h *HierarchyHandler) UpdateZone(c *gin.Context) {
	var payload request.ZonePatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResult(c, "update-zone", func() (usecase.MutationResult, error) {
		return h.usecase.UpdateZone(c.Request.Context(), c.Param("estimate_id"), c.Param("zone_id"), payload.ToUpdate())
	})
}

// DeleteZone godoc
// @Summary      Delete a zone
// @Tags         hierarchy
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Param        zone_id      path      string  true  "Zone ID"
// @Success      200          {object}  response.MutationResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/zones/{zone_id} [delete]
func (h *HierarchyHandler) DeleteZone(c *gin.Context) {
	mutationResult(c, "delete-zone", func() (usecase.MutationResult, error) {
		return h.usecase.DeleteZone(c.Request.Context(), c.Param("estimate_id"), c.Param("zone_id"))
	})
}

// RecalcZoneDimensions godoc
// @Summary      Re-derive a zone's dimensions and reprice its dimension-driven items
// @Tags         hierarchy
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Param        zone_id      path      string  true  "Zone ID"
// @Success      200          {object}  response.MutationResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/zones/{zone_id}/recalculate [post]
func (h *HierarchyHandler) RecalcZoneDimensions(c *gin.Context) {
	mutationResult(c, "recalc-zone", func() (usecase.MutationResult, error) {
		return h.usecase.RecalcZoneDimensions(c.Request.Context(), c.Param("estimate_id"), c.Param("zone_id"))
	})
}

// CreateMissingWall godoc
// @Summary      Add an opening to a zone
// @Tags         hierarchy
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                      true  "Estimate ID"
// @Param        zone_id      path      string                      true  "Zone ID"
// @Param        payload      body      request.MissingWallRequest  true  "Opening"
// @Success      201          {object}  response.MutationResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/zones/{zone_id}/missing-walls [post]
func (h *HierarchyHandler) CreateMissingWall(c *gin.Context) {
	var payload request.MissingWallRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResultStatus(c, "create-missing-wall", http.StatusCreated, func() (usecase.MutationResult, error) {
		return h.usecase.CreateMissingWall(c.Request.Context(), c.Param("estimate_id"), c.Param("zone_id"), payload.ToInput())
	})
}

// DeleteMissingWall godoc
// @Summary      Remove an opening
// @Tags         hierarchy
// @Produce      json
// @Param        estimate_id      path      string  true  "Estimate ID"
// @Param        missing_wall_id  path      string  true  "Missing wall ID"
// @Success      200              {object}  response.MutationResponse
// @Failure      404              {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/missing-walls/{missing_wall_id} [delete]
func (h *HierarchyHandler) DeleteMissingWall(c *gin.Context) {
	mutationResult(c, "delete-missing-wall", func() (usecase.MutationResult, error) {
		return h.usecase.DeleteMissingWall(c.Request.Context(), c.Param("estimate_id"), c.Param("missing_wall_id"))
	})
}

// CreateSubroom godoc
// @Summary      Add a subroom to a room zone
// @Tags         hierarchy
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                  true  "Estimate ID"
// @Param        zone_id      path      string                  true  "Zone ID"
// @Param        payload      body      request.SubroomRequest  true  "Subroom"
// @Success      201          {object}  response.MutationResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/zones/{zone_id}/subrooms [post]
func (h *HierarchyHandler) CreateSubroom(c *gin.Context) {
	var payload request.SubroomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResultStatus(c, "create-subroom", http.StatusCreated, func() (usecase.MutationResult, error) {
		return h.usecase.CreateSubroom(c.Request.Context(), c.Param("estimate_id"), c.Param("zone_id"), payload.ToInput())
	})
}

// DeleteSubroom godoc
// @Summary      Remove a subroom
// @Tags         hierarchy
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Param        subroom_id   path      string  true  "Subroom ID"
// @Success      200          {object}  response.MutationResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/subrooms/{subroom_id} [delete]
func (h *HierarchyHandler) DeleteSubroom(c *gin.Context) {
	mutationResult(c, "delete-subroom", func() (usecase.MutationResult, error) {
		return h.usecase.DeleteSubroom(c.Request.Context(), c.Param("estimate_id"), c.Param("subroom_id"))
	})
}
