package response

import (
	"sort"

	"claimscope/internal/domain/rollup"

	"github.com/shopspring/decimal"
)

type AllocatedLineItemResponse struct {
	StructureID string           `json:"structure_id"`
	AreaID      string           `json:"area_id"`
	ZoneID      string           `json:"zone_id"`
	ZoneName    string           `json:"zone_name"`
	Item        LineItemResponse `json:"item"`
}

type CoverageBucketResponse struct {
	Coverage *CoverageResponse          `json:"coverage,omitempty"`
	Items    []AllocatedLineItemResponse `json:"items"`
	Totals   TotalsResponse              `json:"totals"`
	Payable  string                      `json:"payable"`
}

type CoverageAllocationResponse struct {
	Coverages  []CoverageBucketResponse `json:"coverages"`
	Unassigned CoverageBucketResponse   `json:"unassigned"`
	Totals     TotalsResponse           `json:"totals"`
}

func fromBucket(b *rollup.CoverageBucket) CoverageBucketResponse {
	out := CoverageBucketResponse{Items: []AllocatedLineItemResponse{}, Payable: money(b.Payable)}
	if b.Coverage != nil {
		c := FromCoverage(*b.Coverage)
		out.Coverage = &c
	}
	for _, ref := range b.Items {
		out.Items = append(out.Items, AllocatedLineItemResponse{
			StructureID: ref.StructureID,
			AreaID:      ref.AreaID,
			ZoneID:      ref.ZoneID,
			ZoneName:    ref.ZoneName,
			Item:        FromLineItem(ref.Item),
		})
	}
	out.Totals = FromTotals(b.Totals)
	return out
}

// FromCoverageAllocation lists buckets ordered by coverage name then id.
func FromCoverageAllocation(a rollup.CoverageAllocation) CoverageAllocationResponse {
	out := CoverageAllocationResponse{
		Coverages: make([]CoverageBucketResponse, 0, len(a.Buckets)),
		Totals:    FromTotals(a.Total()),
	}
	for _, b := range a.Buckets {
		out.Coverages = append(out.Coverages, fromBucket(b))
	}
	sort.Slice(out.Coverages, func(i, j int) bool {
		ci, cj := out.Coverages[i].Coverage, out.Coverages[j].Coverage
		if ci.Name != cj.Name {
			return ci.Name < cj.Name
		}
		return ci.ID < cj.ID
	})
	if a.Unassigned != nil {
		out.Unassigned = fromBucket(a.Unassigned)
	} else {
		out.Unassigned = CoverageBucketResponse{Items: []AllocatedLineItemResponse{}, Payable: money(decimal.Zero)}
	}
	return out
}
