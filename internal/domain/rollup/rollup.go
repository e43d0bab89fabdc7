// Package rollup folds line item financials up the estimate tree and groups them by coverage.
package rollup

import "claimscope/internal/domain/entities"

// ZoneTotals sums the line items owned by the zone. Subrooms carry no items of their own.
func ZoneTotals(z entities.Zone) entities.Totals {
	var t entities.Totals
	for _, li := range z.LineItems {
		t = t.AddLineItem(li)
	}
	return t
}

// Rollup writes Totals on every zone, area and structure and on the estimate itself, always from
// the current line item financials. Stored totals are never read.
func Rollup(est *entities.Estimate) entities.Totals {
	var estimateTotals entities.Totals
	for i := range est.Structures {
		s := &est.Structures[i]
		var structureTotals entities.Totals
		for j := range s.Areas {
			a := &s.Areas[j]
			var areaTotals entities.Totals
			for k := range a.Zones {
				z := &a.Zones[k]
				z.Totals = ZoneTotals(*z)
				areaTotals = areaTotals.Add(z.Totals)
			}
			a.Totals = areaTotals
			structureTotals = structureTotals.Add(areaTotals)
		}
		s.Totals = structureTotals
		estimateTotals = estimateTotals.Add(structureTotals)
	}
	est.Totals = estimateTotals
	return estimateTotals
}
