package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"claimscope/internal/domain/entities"
	"claimscope/internal/infrastructure/logger"
	"claimscope/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrClaimPaymentNotFound           = errors.New("claim payment not found")
	ErrInvalidPaymentEstimateID       = errors.New("invalid estimate_id")
	ErrInvalidCoverageID              = errors.New("invalid coverage_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrEstimateNotApproved            = errors.New("estimate not approved")
	ErrNothingPayable                 = errors.New("coverage has no payable amount left")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions carries the provider settings the payload enrichment depends on.
type PaymentOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IClaimPaymentUseCase issues ACV payments for the coverages of approved estimates.
type IClaimPaymentUseCase interface {
	IssueCoveragePayment(ctx context.Context, estimateID, coverageID string, mpPayload json.RawMessage) (entities.ClaimPayment, error)
	GetByID(ctx context.Context, id string) (entities.ClaimPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.ClaimPayment, error)
}

type ClaimPaymentUseCase struct {
	repo         interfaces.IClaimPaymentRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
	opts         PaymentOptions
}

var _ IClaimPaymentUseCase = (*ClaimPaymentUseCase)(nil)

func NewClaimPaymentUseCase(repo interfaces.IClaimPaymentRepository, estimateRepo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *ClaimPaymentUseCase {
	return &ClaimPaymentUseCase{repo: repo, estimateRepo: estimateRepo, gateway: gateway, opts: opts}
}

// IssueCoveragePayment pays what is left of a coverage bucket's payable ACV.
//
// The amount always comes from the stored estimate, never from the caller's payload.
func (u *ClaimPaymentUseCase) IssueCoveragePayment(ctx context.Context, estimateID, coverageID string, mpPayload json.RawMessage) (entities.ClaimPayment, error) {
	logger.Infof(ctx, "[payment][usecase] issue start raw_estimate_id=%q raw_coverage_id=%q payload_len=%d", estimateID, coverageID, len(mpPayload))
	estimateID = strings.TrimSpace(estimateID)
	coverageID = strings.TrimSpace(coverageID)
	if estimateID == "" {
		return entities.ClaimPayment{}, ErrInvalidPaymentEstimateID
	}
	if coverageID == "" {
		return entities.ClaimPayment{}, ErrInvalidCoverageID
	}
	if len(mpPayload) == 0 {
		mpPayload = json.RawMessage("{}")
	}
	if !json.Valid(mpPayload) {
		logger.Warnf(ctx, "[payment][usecase] invalid payload (not-json) estimate_id=%s", estimateID)
		return entities.ClaimPayment{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		logger.Errorf(ctx, "[payment][usecase] gateway not configured estimate_id=%s", estimateID)
		return entities.ClaimPayment{}, errors.New("payment gateway not configured")
	}
	if u.estimateRepo == nil {
		logger.Errorf(ctx, "[payment][usecase] estimate repository not configured estimate_id=%s", estimateID)
		return entities.ClaimPayment{}, errors.New("estimate repository not configured")
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		logger.Errorf(ctx, "[payment][usecase] failed loading estimate estimate_id=%s err=%v", estimateID, err)
		return entities.ClaimPayment{}, err
	}
	if est.ID == "" {
		return entities.ClaimPayment{}, ErrEstimateNotFound
	}
	if est.Status != entities.EstimateStatusApproved {
		logger.Warnf(ctx, "[payment][usecase] estimate not approved estimate_id=%s status=%s", estimateID, est.Status)
		return entities.ClaimPayment{}, ErrEstimateNotApproved
	}

	alloc, err := allocate(ctx, &est)
	if err != nil {
		return entities.ClaimPayment{}, err
	}
	bucket, ok := alloc.Buckets[coverageID]
	if !ok {
		return entities.ClaimPayment{}, entities.NewNotFoundError(entities.KindCoverage, coverageID)
	}

	previous, err := u.repo.ListByEstimateID(ctx, estimateID)
	if err != nil {
		return entities.ClaimPayment{}, err
	}
	amount := bucket.Payable
	for _, p := range previous {
		if p.CoverageID == coverageID && p.Status != entities.PaymentStatusDenied {
			amount = amount.Sub(p.Amount)
		}
	}
	if !amount.IsPositive() {
		logger.Warnf(ctx, "[payment][usecase] nothing payable estimate_id=%s coverage_id=%s payable=%s", estimateID, coverageID, bucket.Payable.StringFixed(2))
		return entities.ClaimPayment{}, ErrNothingPayable
	}
	logger.Infof(ctx, "[payment][usecase] coverage payable estimate_id=%s coverage_id=%s amount=%s", estimateID, coverageID, amount.StringFixed(2))

	mpPayload, err = u.enrichPayload(ctx, mpPayload, est, bucket.Coverage, amount)
	if err != nil {
		return entities.ClaimPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		logger.Errorf(ctx, "[payment][usecase] payment gateway failed estimate_id=%s err=%v", estimateID, err)
		return entities.ClaimPayment{}, classifyGatewayError(err)
	}
	logger.Infof(ctx, "[payment][usecase] payment gateway success estimate_id=%s provider_payment_id=%s provider_status=%s", estimateID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		logger.Warnf(ctx, "[payment][usecase] provider response unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	p := entities.ClaimPayment{
		ID:           providerPaymentID,
		EstimateID:   estimateID,
		CoverageID:   coverageID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logger.Errorf(ctx, "[payment][usecase] payment repository create failed estimate_id=%s payment_id=%s err=%v", estimateID, p.ID, err)
		return entities.ClaimPayment{}, err
	}
	logger.Infof(ctx, "[payment][usecase] issue success estimate_id=%s payment_id=%s status=%s", estimateID, created.ID, created.Status)
	return created, nil
}

// enrichPayload links the provider payment to the estimate and coverage and sets the amount.
func (u *ClaimPaymentUseCase) enrichPayload(ctx context.Context, mpPayload json.RawMessage, est entities.Estimate, cov *entities.Coverage, amount decimal.Decimal) (json.RawMessage, error) {
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return nil, ErrInvalidMPPayload
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			logger.Warnf(ctx, "[payment][usecase] missing payment_method_id estimate_id=%s", est.ID)
			return nil, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(ctx, reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			logger.Warnf(ctx, "[payment][usecase] missing/invalid payer estimate_id=%s", est.ID)
			return nil, ErrInvalidMPPayload
		}
	}

	reqMap["external_reference"] = est.ID + ":" + cov.ID
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Claim %s %s coverage", est.ClaimNumber, cov.Name)
	}
	reqMap["transaction_amount"] = amount.InexactFloat64()

	b, err := json.Marshal(reqMap)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "[payment][usecase] payload enriched estimate_id=%s payload_len=%d", est.ID, len(b))
	return b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *ClaimPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email may be used; email is filled only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.opts.TestPayerEmail != "" {
			payer["email"] = u.opts.TestPayerEmail
		} else if strings.HasPrefix(u.opts.AccessToken, "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

// normalizeSandboxPayerFromUserID swaps the configured sandbox test user id for its email.
func (u *ClaimPaymentUseCase) normalizeSandboxPayerFromUserID(ctx context.Context, m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(u.opts.AccessToken, "TEST-") || u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.TestPayerUserID {
		return
	}
	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
	logger.Infof(ctx, "[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func (u *ClaimPaymentUseCase) GetByID(ctx context.Context, id string) (entities.ClaimPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ClaimPayment{}, errors.New("invalid payment id")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ClaimPayment{}, err
	}
	if p.ID == "" {
		return entities.ClaimPayment{}, ErrClaimPaymentNotFound
	}
	return p, nil
}

func (u *ClaimPaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.ClaimPayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidPaymentEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}
