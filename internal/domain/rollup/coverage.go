package rollup

import (
	"errors"
	"fmt"

	"claimscope/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrAllocationMismatch = errors.New("coverage allocation does not match estimate totals")

// LineItemRef locates an allocated line item in the tree.
type LineItemRef struct {
	StructureID string            `json:"structure_id"`
	AreaID      string            `json:"area_id"`
	ZoneID      string            `json:"zone_id"`
	ZoneName    string            `json:"zone_name"`
	Item        entities.LineItem `json:"item"`
}

// CoverageBucket groups the items billed against one coverage. Coverage is nil for the
// unassigned bucket.
type CoverageBucket struct {
	Coverage *entities.Coverage `json:"coverage,omitempty"`
	Items    []LineItemRef      `json:"items"`
	Totals   entities.Totals    `json:"totals"`
	Payable  decimal.Decimal    `json:"payable"`
}

type CoverageAllocation struct {
	Buckets    map[string]*CoverageBucket `json:"buckets"`
	Unassigned *CoverageBucket            `json:"unassigned"`
}

// AllocateByCoverage groups the same line items the rollup sums by their coverage reference.
// Items without a coverage, or referencing one the estimate does not define, land in Unassigned.
func AllocateByCoverage(est entities.Estimate) CoverageAllocation {
	alloc := CoverageAllocation{
		Buckets:    make(map[string]*CoverageBucket, len(est.Coverages)),
		Unassigned: &CoverageBucket{Items: []LineItemRef{}},
	}
	for i := range est.Coverages {
		c := est.Coverages[i]
		alloc.Buckets[c.ID] = &CoverageBucket{Coverage: &c, Items: []LineItemRef{}}
	}

	for _, s := range est.Structures {
		for _, a := range s.Areas {
			for _, z := range a.Zones {
				for _, li := range z.LineItems {
					bucket := alloc.Unassigned
					if li.CoverageID != nil {
						if b, ok := alloc.Buckets[*li.CoverageID]; ok {
							bucket = b
						}
					}
					bucket.Items = append(bucket.Items, LineItemRef{
						StructureID: s.ID,
						AreaID:      a.ID,
						ZoneID:      z.ID,
						ZoneName:    z.Name,
						Item:        li,
					})
					bucket.Totals = bucket.Totals.AddLineItem(li)
				}
			}
		}
	}

	for _, b := range alloc.Buckets {
		b.Payable = Payable(*b.Coverage, b.Totals)
	}
	return alloc
}

// Payable is the ACV of a bucket net of the deductible, capped at the policy limit.
// A zero limit is uncapped.
func Payable(c entities.Coverage, t entities.Totals) decimal.Decimal {
	amount := decimal.Max(t.ACV.Sub(c.Deductible), decimal.Zero)
	if c.PolicyLimit.IsPositive() {
		amount = decimal.Min(amount, c.PolicyLimit)
	}
	return amount
}

// Total sums every bucket including Unassigned.
func (a CoverageAllocation) Total() entities.Totals {
	var t entities.Totals
	for _, b := range a.Buckets {
		t = t.Add(b.Totals)
	}
	if a.Unassigned != nil {
		t = t.Add(a.Unassigned.Totals)
	}
	return t
}

// Reconcile checks that the buckets add up to the estimate rollup exactly.
func (a CoverageAllocation) Reconcile(estimateTotals entities.Totals) error {
	got := a.Total()
	if !got.Equal(estimateTotals) {
		return fmt.Errorf("%w: buckets rcv=%s acv=%s count=%d, estimate rcv=%s acv=%s count=%d",
			ErrAllocationMismatch,
			got.RCV.StringFixed(2), got.ACV.StringFixed(2), got.LineItemCount,
			estimateTotals.RCV.StringFixed(2), estimateTotals.ACV.StringFixed(2), estimateTotals.LineItemCount)
	}
	return nil
}
