package handlers

import (
	"errors"
	"net/http"
	"strings"

	"claimscope/internal/domain/entities"
	"claimscope/internal/domain/rollup"
	"claimscope/internal/usecase"
	"claimscope/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type fieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func mapEstimateError(err error) *pkg.AppError {
	var validationErr *entities.ValidationError
	var notFoundErr *entities.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).
			WithDetails(fieldError{Field: validationErr.Field, Reason: validationErr.Reason})
	case errors.As(err, &notFoundErr):
		code := strings.ToUpper(notFoundErr.Kind) + "_NOT_FOUND"
		return pkg.NewDomainError(code, notFoundMessage(notFoundErr.Kind), err, http.StatusNotFound).
			WithDetails(map[string]string{"id": notFoundErr.ID})
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidPaymentEstimateID),
		errors.Is(err, usecase.ErrInvalidCoverageID), errors.Is(err, usecase.ErrInvalidMPPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainError("ESTIMATE_NOT_FOUND", "Estimate not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrClaimPaymentNotFound):
		return pkg.NewDomainError("PAYMENT_NOT_FOUND", "Payment not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotApproved):
		return pkg.NewDomainError("ESTIMATE_NOT_APPROVED", "Estimate not approved", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingPayable):
		return pkg.NewDomainError("NOTHING_PAYABLE", "Coverage has no payable amount left", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainError("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusUnauthorized)
	case errors.Is(err, rollup.ErrAllocationMismatch):
		return pkg.NewDomainError("ALLOCATION_MISMATCH", "Coverage allocation does not reconcile with the estimate", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func notFoundMessage(kind string) string {
	label := strings.ReplaceAll(kind, "_", " ")
	if label == "" {
		return "Not found"
	}
	return strings.ToUpper(label[:1]) + label[1:] + " not found"
}

// mapBindError turns a gin binding failure into a 400 listing the offending fields.
func mapBindError(err error) *pkg.AppError {
	appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return appErr
	}
	details := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldError{Field: fieldPath(fe), Reason: fe.Tag()})
	}
	return appErr.WithDetails(details)
}

// fieldPath renders a namespace like "ZoneRequest.dimensions.length" as "dimensions.length".
// Embedded request types keep their Go name in the namespace and are skipped.
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts[1:] {
		if p != strings.ToLower(p) {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, ".")
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
