package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "claimscope/internal/adapter/http/dto/request"
	response "claimscope/internal/adapter/http/dto/response"
	"claimscope/internal/infrastructure/logger"
	"claimscope/internal/usecase"
	"claimscope/pkg"

	"github.com/gin-gonic/gin"
)

// ClaimPaymentHandler handles coverage payments of approved estimates.
type ClaimPaymentHandler struct {
	usecase  usecase.IClaimPaymentUseCase
	mockMode bool
}

func NewClaimPaymentHandler(uc usecase.IClaimPaymentUseCase, mockMode bool) *ClaimPaymentHandler {
	return &ClaimPaymentHandler{usecase: uc, mockMode: mockMode}
}

// IssueCoveragePayment godoc
// @Summary      Pay the remaining payable ACV of a coverage through Mercado Pago
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                             true   "Estimate ID"
// @Param        coverage_id  path      string                             true   "Coverage ID"
// @Param        payload      body      request.ClaimPaymentCreateRequest  false  "Mercado Pago payload"
// @Success      200          {object}  response.ClaimPaymentResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/coverages/{coverage_id}/payments [post]
func (h *ClaimPaymentHandler) IssueCoveragePayment(c *gin.Context) {
	ctx := c.Request.Context()
	estimateID := c.Param("estimate_id")
	coverageID := c.Param("coverage_id")
	logger.Infof(ctx, "[payment][handler] create start estimate_id=%s coverage_id=%s", estimateID, coverageID)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			logger.Warnf(ctx, "[payment][handler] invalid payload estimate_id=%s err=%v", estimateID, err)
			writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
			return
		}
		logger.Warnf(ctx, "[payment][handler] payload invalid in mock mode; fallback to empty payload estimate_id=%s err=%v", estimateID, err)
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.IssueCoveragePayment(ctx, estimateID, coverageID, mpPayload)
	if err != nil {
		logger.Errorf(ctx, "[payment][handler] create failed estimate_id=%s coverage_id=%s err=%v", estimateID, coverageID, err)
		writeError(c, mapEstimateError(err))
		return
	}
	logger.Infof(ctx, "[payment][handler] create success estimate_id=%s payment_id=%s status=%s amount=%s",
		estimateID, created.ID, created.Status, created.Amount.StringFixed(2))

	c.JSON(http.StatusOK, response.FromClaimPayment(created))
}

// ListPayments godoc
// @Summary      List the payments issued for an estimate
// @Tags         payments
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {array}   response.ClaimPaymentResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/payments [get]
func (h *ClaimPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByEstimateID(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClaimPayments(payments))
}

// GetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      200         {object}  response.ClaimPaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *ClaimPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClaimPayment(p))
}

// readMPPayload accepts either {"mp_payload": {...}} or a bare Mercado Pago body.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.ClaimPaymentCreateRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.MPPayload != nil {
		wrapped := strings.TrimSpace(string(envelope.MPPayload))
		if wrapped == "" || wrapped == "null" {
			return nil, errors.New("mp_payload cannot be empty")
		}
		return envelope.MPPayload, nil
	}

	return json.RawMessage(raw), nil
}
