package handlers

import (
	"net/http"

	request "claimscope/internal/adapter/http/dto/request"
	"claimscope/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LineItemHandler struct {
	usecase usecase.ILineItemUseCase
}

func NewLineItemHandler(uc usecase.ILineItemUseCase) *LineItemHandler {
	return &LineItemHandler{usecase: uc}
}

// AddLineItem godoc
// @Summary      Add a priced line item to a zone
// @Description  Unit price, unit and tax rate come from the catalog for the estimate's region. Adjust them afterwards with PATCH on the line item.
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                   true  "Estimate ID"
// @Param        zone_id      path      string                   true  "Zone ID"
// @Param        payload      body      request.LineItemRequest  true  "Line item"
// @Success      201          {object}  response.MutationResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/zones/{zone_id}/line-items [post]
func (h *LineItemHandler) AddLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResultStatus(c, "add-line-item", http.StatusCreated, func() (usecase.MutationResult, error) {
		return h.usecase.AddLineItem(c.Request.Context(), c.Param("estimate_id"), c.Param("zone_id"), payload.ToInput())
	})
}

// AddLineItemFromDimension godoc
// @Summary      Add a line item whose quantity tracks a derived zone dimension
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                                true  "Estimate ID"
// @Param        zone_id      path      string                                true  "Zone ID"
// @Param        payload      body      request.LineItemFromDimensionRequest  true  "Line item"
// @Success      201          {object}  response.MutationResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/zones/{zone_id}/line-items/from-dimension [post]
func (h *LineItemHandler) AddLineItemFromDimension(c *gin.Context) {
	var payload request.LineItemFromDimensionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResultStatus(c, "add-line-item-from-dimension", http.StatusCreated, func() (usecase.MutationResult, error) {
		return h.usecase.AddLineItemFromDimension(c.Request.Context(), c.Param("estimate_id"), c.Param("zone_id"), payload.DimensionKey, payload.ToInput())
	})
}

// UpdateLineItem godoc
// @Summary      Update a line item
// @Description  Changing the quantity detaches the item from its dimension.
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        estimate_id   path      string                        true  "Estimate ID"
// @Param        line_item_id  path      string                        true  "Line item ID"
// @Param        payload       body      request.LineItemPatchRequest  true  "Fields to change"
// @Success      200           {object}  response.MutationResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      404           {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/line-items/{line_item_id} [patch]
func (h *LineItemHandler) UpdateLineItem(c *gin.Context) {
	var payload request.LineItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindError(err))
		return
	}
	mutationResult(c, "update-line-item", func() (usecase.MutationResult, error) {
		return h.usecase.UpdateLineItem(c.Request.Context(), c.Param("estimate_id"), c.Param("line_item_id"), payload.ToUpdate())
	})
}

// DeleteLineItem godoc
// @Summary      Delete a line item
// @Tags         line-items
// @Produce      json
// @Param        estimate_id   path      string  true  "Estimate ID"
// @Param        line_item_id  path      string  true  "Line item ID"
// @Success      200           {object}  response.MutationResponse
// @Failure      404           {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/line-items/{line_item_id} [delete]
func (h *LineItemHandler) DeleteLineItem(c *gin.Context) {
	mutationResult(c, "delete-line-item", func() (usecase.MutationResult, error) {
		return h.usecase.DeleteLineItem(c.Request.Context(), c.Param("estimate_id"), c.Param("line_item_id"))
	})
}
