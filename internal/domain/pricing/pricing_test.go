package pricing

import (
	"errors"
	"testing"

	"claimscope/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestPrice(t *testing.T) {
	t.Run("reference line item", func(t *testing.T) {
		res, err := Price(Input{Quantity: dec("100"), UnitPrice: dec("2.50"), TaxRate: dec("0.08"), DepreciationPct: dec("20")})
		require.NoError(t, err)
		assert.Equal(t, "250.00", res.Subtotal.StringFixed(2))
		assert.Equal(t, "20.00", res.Tax.StringFixed(2))
		assert.Equal(t, "270.00", res.RCV.StringFixed(2))
		assert.Equal(t, "54.00", res.Depreciation.StringFixed(2))
		assert.Equal(t, "216.00", res.ACV.StringFixed(2))
	})

	t.Run("no tax no depreciation", func(t *testing.T) {
		res, err := Price(Input{Quantity: dec("3"), UnitPrice: dec("10")})
		require.NoError(t, err)
		assert.True(t, res.RCV.Equal(dec("30")))
		assert.True(t, res.ACV.Equal(dec("30")))
		assert.True(t, res.Depreciation.IsZero())
	})

	t.Run("rcv minus acv equals depreciation exactly", func(t *testing.T) {
		inputs := []Input{
			{Quantity: dec("331"), UnitPrice: dec("1.17"), TaxRate: dec("0.0725"), DepreciationPct: dec("33.33")},
			{Quantity: dec("13.42"), UnitPrice: dec("287.61"), TaxRate: dec("0.06"), DepreciationPct: dec("47")},
			{Quantity: dec("0.01"), UnitPrice: dec("0.01"), TaxRate: dec("0.5"), DepreciationPct: dec("99.99")},
		}
		for _, in := range inputs {
			res, err := Price(in)
			require.NoError(t, err)
			assert.True(t, res.RCV.Sub(res.ACV).Equal(res.Depreciation), "%+v", res)
		}
	})

	t.Run("full depreciation leaves zero acv", func(t *testing.T) {
		res, err := Price(Input{Quantity: dec("1"), UnitPrice: dec("50"), DepreciationPct: dec("100")})
		require.NoError(t, err)
		assert.True(t, res.ACV.IsZero())
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		in    Input
		field string
	}{
		{name: "zero quantity", in: Input{Quantity: dec("0"), UnitPrice: dec("1")}, field: "quantity"},
		{name: "negative quantity", in: Input{Quantity: dec("-1"), UnitPrice: dec("1")}, field: "quantity"},
		{name: "negative price", in: Input{Quantity: dec("1"), UnitPrice: dec("-0.01")}, field: "unit_price"},
		{name: "negative tax", in: Input{Quantity: dec("1"), TaxRate: dec("-0.1")}, field: "tax_rate"},
		{name: "depreciation over 100", in: Input{Quantity: dec("1"), DepreciationPct: dec("100.01")}, field: "depreciation_pct"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Price(tc.in)
			var ve *entities.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
		})
	}

	t.Run("zero price is allowed", func(t *testing.T) {
		require.NoError(t, Validate(Input{Quantity: dec("1")}))
	})
}

func TestApply(t *testing.T) {
	t.Run("manual item", func(t *testing.T) {
		item := entities.LineItem{Quantity: dec("100"), UnitPrice: dec("2.50"), TaxRate: dec("0.08"), DepreciationPct: dec("20")}
		require.NoError(t, Apply(&item))
		assert.True(t, item.Financials.ACV.Equal(dec("216")))
	})

	t.Run("dimension driven item may drop to zero", func(t *testing.T) {
		key := entities.DimWallArea
		item := entities.LineItem{Quantity: decimal.Zero, UnitPrice: dec("2.50"), DimensionKey: &key, Financials: entities.FinancialResult{RCV: dec("5")}}
		require.NoError(t, Apply(&item))
		assert.True(t, item.Financials.RCV.IsZero())
	})

	t.Run("manual item with zero quantity fails", func(t *testing.T) {
		item := entities.LineItem{Quantity: decimal.Zero, UnitPrice: dec("2.50")}
		var ve *entities.ValidationError
		assert.True(t, errors.As(Apply(&item), &ve))
	})
}

func TestSuggestDepreciationPct(t *testing.T) {
	pct, err := SuggestDepreciationPct(5, 20)
	require.NoError(t, err)
	assert.True(t, pct.Equal(dec("25")))

	pct, err = SuggestDepreciationPct(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "33.33", pct.StringFixed(2))

	pct, err = SuggestDepreciationPct(40, 20)
	require.NoError(t, err)
	assert.True(t, pct.Equal(dec("100")))

	_, err = SuggestDepreciationPct(1, 0)
	assert.Error(t, err)
	_, err = SuggestDepreciationPct(-1, 10)
	assert.Error(t, err)
}
