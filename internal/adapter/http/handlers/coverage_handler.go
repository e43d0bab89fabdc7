package handlers

import (
	"net/http"

	request "claimscope/internal/adapter/http/dto/request"
	response "claimscope/internal/adapter/http/dto/response"
	"claimscope/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CoverageHandler struct {
	usecase usecase.ICoverageUseCase
}

func NewCoverageHandler(uc usecase.ICoverageUseCase) *CoverageHandler {
	return &CoverageHandler{usecase: uc}
}

// CreateCoverage godoc
// @Summary      Add a policy coverage to an estimate
// @Tags         coverages
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                   true  "Estimate ID"
// @Param        payload      body      request.CoverageRequest  true  "Coverage"
// @Success      201          {object}  response.MutationResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/coverages [post]
func (h *CoverageHandler) CreateCoverage(c *gin.Context) {
	var payload request.CoverageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResultStatus(c, "create-coverage", http.StatusCreated, func() (usecase.MutationResult, error) {
		return h.usecase.CreateCoverage(c.Request.Context(), c.Param("estimate_id"), payload.ToInput())
	})
}

// UpdateLineItemCoverage godoc
// @Summary      Assign a line item to a coverage, or unassign it with a null coverage_id
// @Tags         coverages
// @Accept       json
// @Produce      json
// @Param        estimate_id   path      string                           true  "Estimate ID"
// @Param        line_item_id  path      string                           true  "Line item ID"
// @Param        payload       body      request.LineItemCoverageRequest  true  "Coverage"
// @Success      200           {object}  response.MutationResponse
// @Failure      404           {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/line-items/{line_item_id}/coverage [patch]
func (h *CoverageHandler) UpdateLineItemCoverage(c *gin.Context) {
	var payload request.LineItemCoverageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResult(c, "update-line-item-coverage", func() (usecase.MutationResult, error) {
		return h.usecase.UpdateLineItemCoverage(c.Request.Context(), c.Param("estimate_id"), c.Param("line_item_id"), payload.CoverageID)
	})
}

// GetLineItemsByCoverage godoc
// @Summary      Line items and payable ACV grouped by coverage
// @Tags         coverages
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {object}  response.CoverageAllocationResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      500          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/coverages/line-items [get]
func (h *CoverageHandler) GetLineItemsByCoverage(c *gin.Context) {
	alloc, err := h.usecase.GetLineItemsByCoverage(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCoverageAllocation(alloc))
}
