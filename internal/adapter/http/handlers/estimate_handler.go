package handlers

import (
	"net/http"

	request "claimscope/internal/adapter/http/dto/request"
	response "claimscope/internal/adapter/http/dto/response"
	"claimscope/internal/infrastructure/logger"
	"claimscope/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler serves the estimate-level routes.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary      Create an estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateEstimateRequest  true  "Estimate"
// @Success      201      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}

	est, err := h.usecase.CreateEstimate(c.Request.Context(), payload.ToInput())
	if err != nil {
		logger.Errorf(c.Request.Context(), "[estimate][handler] create failed claim_number=%s err=%v", payload.ClaimNumber, err)
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(est))
}

// GetEstimate godoc
// @Summary      Get the full estimate hierarchy with fresh totals
// @Tags         estimates
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {object}  response.EstimateResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	est, err := h.usecase.GetEstimateHierarchy(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(est))
}

// DeleteEstimate godoc
// @Summary      Delete an estimate
// @Tags         estimates
// @Param        estimate_id  path  string  true  "Estimate ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	if err := h.usecase.DeleteEstimate(c.Request.Context(), estimateID); err != nil {
		logger.Errorf(c.Request.Context(), "[estimate][handler] delete failed estimate_id=%s err=%v", estimateID, err)
		writeError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateStatus godoc
// @Summary      Move an estimate through its workflow
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                       true  "Estimate ID"
// @Param        payload      body      request.UpdateStatusRequest  true  "Status"
// @Success      200          {object}  response.EstimateResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/status [patch]
func (h *EstimateHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}

	est, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("estimate_id"), payload.Status)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(est))
}

// RecalculateEstimate godoc
// @Summary      Re-derive every zone and reprice every line item
// @Tags         estimates
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {object}  response.MutationResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/recalculate [post]
func (h *EstimateHandler) RecalculateEstimate(c *gin.Context) {
	mutationResult(c, "recalculate", func() (usecase.MutationResult, error) {
		return h.usecase.RecalculateEstimate(c.Request.Context(), c.Param("estimate_id"))
	})
}

// RepriceEstimate godoc
// @Summary      Refresh unit prices from the regional catalog
// @Tags         estimates
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {object}  response.MutationResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/reprice [post]
func (h *EstimateHandler) RepriceEstimate(c *gin.Context) {
	mutationResult(c, "reprice", func() (usecase.MutationResult, error) {
		return h.usecase.RepriceEstimate(c.Request.Context(), c.Param("estimate_id"))
	})
}

// mutationResult writes the outcome of a tree mutation: 200 with the refreshed estimate,
// or the mapped error.
func mutationResult(c *gin.Context, op string, run func() (usecase.MutationResult, error)) {
	mutationResultStatus(c, op, http.StatusOK, run)
}

func mutationResultStatus(c *gin.Context, op string, status int, run func() (usecase.MutationResult, error)) {
	res, err := run()
	if err != nil {
		logger.Warnf(c.Request.Context(), "[estimate][handler] %s failed estimate_id=%s err=%v", op, c.Param("estimate_id"), err)
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(status, response.FromMutation(res))
}
