package request

import (
	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"

	"github.com/shopspring/decimal"
)

type LineItemRequest struct {
	Code            string           `json:"code" binding:"required"`
	Description     string           `json:"description"`
	Quantity        decimal.Decimal  `json:"quantity" binding:"decimal_nonneg"`
	DepreciationPct *decimal.Decimal `json:"depreciation_pct" binding:"omitempty,decimal_nonneg"`
	Age             *int             `json:"age" binding:"omitempty,min=0"`
	LifeExpectancy  *int             `json:"life_expectancy" binding:"omitempty,min=1"`
	Recoverable     bool             `json:"recoverable"`
	CoverageID      *string          `json:"coverage_id"`
}

func (r LineItemRequest) ToInput() usecase.LineItemInput {
	return usecase.LineItemInput{
		Code:            r.Code,
		Description:     r.Description,
		Quantity:        r.Quantity,
		DepreciationPct: r.DepreciationPct,
		Age:             r.Age,
		LifeExpectancy:  r.LifeExpectancy,
		Recoverable:     r.Recoverable,
		CoverageID:      r.CoverageID,
	}
}

// LineItemFromDimensionRequest takes its quantity from the zone's derived DimensionKey.
type LineItemFromDimensionRequest struct {
	LineItemRequest
	DimensionKey entities.DimensionKey `json:"dimension_key" binding:"required"`
}

type LineItemPatchRequest struct {
	Description     *string          `json:"description"`
	Quantity        *decimal.Decimal `json:"quantity" binding:"omitempty,decimal_pos"`
	UnitPrice       *decimal.Decimal `json:"unit_price" binding:"omitempty,decimal_nonneg"`
	TaxRate         *decimal.Decimal `json:"tax_rate" binding:"omitempty,decimal_nonneg"`
	DepreciationPct *decimal.Decimal `json:"depreciation_pct" binding:"omitempty,decimal_nonneg"`
	Age             *int             `json:"age" binding:"omitempty,min=0"`
	LifeExpectancy  *int             `json:"life_expectancy" binding:"omitempty,min=1"`
	Recoverable     *bool            `json:"recoverable"`
}

func (r LineItemPatchRequest) ToUpdate() usecase.LineItemUpdate {
	return usecase.LineItemUpdate{
		Description:     r.Description,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		TaxRate:         r.TaxRate,
		DepreciationPct: r.DepreciationPct,
		Age:             r.Age,
		LifeExpectancy:  r.LifeExpectancy,
		Recoverable:     r.Recoverable,
	}
}

// LineItemCoverageRequest moves a line item to a coverage; a null coverage_id unassigns it.
type LineItemCoverageRequest struct {
	CoverageID *string `json:"coverage_id"`
}
