package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialResult is the priced outcome of a line item. It is never written by callers.
type FinancialResult struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	RCV          decimal.Decimal `json:"rcv"`
	Depreciation decimal.Decimal `json:"depreciation"`
	ACV          decimal.Decimal `json:"acv"`
}

// LineItem is one scoped repair task inside a zone.
//
// When DimensionKey is set the quantity follows the zone's derived dimension and is re-derived
// whenever the zone geometry changes. DepreciationExplicit marks a percentage the user entered,
// which later age or life expectancy edits leave alone.
type LineItem struct {
	ID                   string          `json:"id"`
	Code                 string          `json:"code"`
	Description          string          `json:"description,omitempty"`
	Quantity             decimal.Decimal `json:"quantity"`
	Unit                 string          `json:"unit"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	TaxRate              decimal.Decimal `json:"tax_rate"`
	DepreciationPct      decimal.Decimal `json:"depreciation_pct"`
	DepreciationExplicit bool            `json:"depreciation_explicit,omitempty"`
	Age                  *int            `json:"age,omitempty"`
	LifeExpectancy       *int            `json:"life_expectancy,omitempty"`
	Recoverable          bool            `json:"recoverable"`
	CoverageID           *string         `json:"coverage_id,omitempty"`
	DimensionKey         *DimensionKey   `json:"dimension_key,omitempty"`
	Financials           FinancialResult `json:"financials"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// CatalogPrice is what the price list returns for a repair code in a region.
type CatalogPrice struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}
