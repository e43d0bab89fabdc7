// Package pricing turns a line item's quantity and catalog price into its financial result.
package pricing

import (
	"claimscope/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Input represents the line item values that drive pricing.
type Input struct {
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	TaxRate         decimal.Decimal
	DepreciationPct decimal.Decimal
}

func InputFromLineItem(li entities.LineItem) Input {
	return Input{
		Quantity:        li.Quantity,
		UnitPrice:       li.UnitPrice,
		TaxRate:         li.TaxRate,
		DepreciationPct: li.DepreciationPct,
	}
}

// Validate rejects a user supplied input before anything is computed.
func Validate(in Input) error {
	if !in.Quantity.IsPositive() {
		return entities.NewValidationError("quantity", "must be greater than zero")
	}
	return validateRates(in)
}

func validateRates(in Input) error {
	if in.UnitPrice.IsNegative() {
		return entities.NewValidationError("unit_price", "must not be negative")
	}
	if in.TaxRate.IsNegative() {
		return entities.NewValidationError("tax_rate", "must not be negative")
	}
	if in.DepreciationPct.IsNegative() || in.DepreciationPct.GreaterThan(hundred) {
		return entities.NewValidationError("depreciation_pct", "must be between 0 and 100")
	}
	return nil
}

// Price validates and prices an input.
func Price(in Input) (entities.FinancialResult, error) {
	if err := Validate(in); err != nil {
		return entities.FinancialResult{}, err
	}
	return compute(in), nil
}

// compute rounds each step to cents so RCV - ACV equals the depreciation exactly.
func compute(in Input) entities.FinancialResult {
	subtotal := in.Quantity.Mul(in.UnitPrice).Round(2)
	tax := subtotal.Mul(in.TaxRate).Round(2)
	rcv := subtotal.Add(tax)
	depreciation := rcv.Mul(in.DepreciationPct).Div(hundred).Round(2)
	return entities.FinancialResult{
		Subtotal:     subtotal,
		Tax:          tax,
		RCV:          rcv,
		Depreciation: depreciation,
		ACV:          rcv.Sub(depreciation),
	}
}

// Apply recomputes the stored financials of an item.
//
// A dimension driven item may carry a zero quantity after its zone was re-measured; that prices
// to zero instead of failing.
func Apply(item *entities.LineItem) error {
	in := InputFromLineItem(*item)
	if item.DimensionKey != nil {
		if in.Quantity.IsNegative() {
			return entities.NewValidationError("quantity", "must not be negative")
		}
		if err := validateRates(in); err != nil {
			return err
		}
	} else if err := Validate(in); err != nil {
		return err
	}
	item.Financials = compute(in)
	return nil
}

// SuggestDepreciationPct is the straight-line depreciation for an item of the given age,
// capped at 100 percent.
func SuggestDepreciationPct(age, lifeExpectancy int) (decimal.Decimal, error) {
	if age < 0 {
		return decimal.Zero, entities.NewValidationError("age", "must not be negative")
	}
	if lifeExpectancy <= 0 {
		return decimal.Zero, entities.NewValidationError("life_expectancy", "must be greater than zero")
	}
	pct := decimal.NewFromInt(int64(age)).Div(decimal.NewFromInt(int64(lifeExpectancy))).Mul(hundred)
	return decimal.Min(pct, hundred).Round(2), nil
}
