package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError rejects an input before any state is touched.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// Kinds reported by NotFoundError.
const (
	KindEstimate    = "estimate"
	KindStructure   = "structure"
	KindArea        = "area"
	KindZone        = "zone"
	KindMissingWall = "missing_wall"
	KindSubroom     = "subroom"
	KindLineItem    = "line_item"
	KindCoverage    = "coverage"
	KindCatalogItem = "catalog_item"
)

// NotFoundError reports an unknown identifier or catalog code.
type NotFoundError struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

const (
	WarningOpeningsExceedWallArea = "openings_exceed_wall_area"
	WarningZoneNotMeasured        = "zone_not_measured"
)

// ConsistencyWarning is reported next to a successful result; it never blocks a write.
type ConsistencyWarning struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	ZoneID  string          `json:"zone_id,omitempty"`
	Excess  decimal.Decimal `json:"excess"`
}
