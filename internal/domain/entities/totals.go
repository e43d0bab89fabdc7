package entities

import "github.com/shopspring/decimal"

// Totals is the aggregated financial shape reported at every tree level and per coverage bucket.
type Totals struct {
	Subtotal                   decimal.Decimal `json:"subtotal"`
	Tax                        decimal.Decimal `json:"tax"`
	RCV                        decimal.Decimal `json:"rcv"`
	ACV                        decimal.Decimal `json:"acv"`
	Depreciation               decimal.Decimal `json:"depreciation"`
	RecoverableDepreciation    decimal.Decimal `json:"recoverable_depreciation"`
	NonRecoverableDepreciation decimal.Decimal `json:"non_recoverable_depreciation"`
	LineItemCount              int             `json:"line_item_count"`
}

func (t Totals) Add(o Totals) Totals {
	return Totals{
		Subtotal:                   t.Subtotal.Add(o.Subtotal),
		Tax:                        t.Tax.Add(o.Tax),
		RCV:                        t.RCV.Add(o.RCV),
		ACV:                        t.ACV.Add(o.ACV),
		Depreciation:               t.Depreciation.Add(o.Depreciation),
		RecoverableDepreciation:    t.RecoverableDepreciation.Add(o.RecoverableDepreciation),
		NonRecoverableDepreciation: t.NonRecoverableDepreciation.Add(o.NonRecoverableDepreciation),
		LineItemCount:              t.LineItemCount + o.LineItemCount,
	}
}

// AddLineItem folds one priced line item into t.
func (t Totals) AddLineItem(li LineItem) Totals {
	f := li.Financials
	item := Totals{
		Subtotal:      f.Subtotal,
		Tax:           f.Tax,
		RCV:           f.RCV,
		ACV:           f.ACV,
		Depreciation:  f.Depreciation,
		LineItemCount: 1,
	}
	if li.Recoverable {
		item.RecoverableDepreciation = f.Depreciation
	} else {
		item.NonRecoverableDepreciation = f.Depreciation
	}
	return t.Add(item)
}

// Equal compares values numerically, so 270 and 270.00 are equal.
func (t Totals) Equal(o Totals) bool {
	return t.Subtotal.Equal(o.Subtotal) &&
		t.Tax.Equal(o.Tax) &&
		t.RCV.Equal(o.RCV) &&
		t.ACV.Equal(o.ACV) &&
		t.Depreciation.Equal(o.Depreciation) &&
		t.RecoverableDepreciation.Equal(o.RecoverableDepreciation) &&
		t.NonRecoverableDepreciation.Equal(o.NonRecoverableDepreciation) &&
		t.LineItemCount == o.LineItemCount
}

// Sub returns t minus o, used to report the contribution removed by a delete.
func (t Totals) Sub(o Totals) Totals {
	return Totals{
		Subtotal:                   t.Subtotal.Sub(o.Subtotal),
		Tax:                        t.Tax.Sub(o.Tax),
		RCV:                        t.RCV.Sub(o.RCV),
		ACV:                        t.ACV.Sub(o.ACV),
		Depreciation:               t.Depreciation.Sub(o.Depreciation),
		RecoverableDepreciation:    t.RecoverableDepreciation.Sub(o.RecoverableDepreciation),
		NonRecoverableDepreciation: t.NonRecoverableDepreciation.Sub(o.NonRecoverableDepreciation),
		LineItemCount:              t.LineItemCount - o.LineItemCount,
	}
}
