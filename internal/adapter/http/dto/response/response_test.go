package response

import (
	"encoding/json"
	"testing"
	"time"

	"claimscope/internal/domain/entities"
	"claimscope/internal/domain/rollup"
	"claimscope/internal/usecase"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleEstimate() entities.Estimate {
	length, width, height := d("10"), d("12"), d("8")
	cov := "cov-1"
	key := entities.DimensionKey("wall_area")
	into := "zone-2"
	item := entities.LineItem{
		ID:           "li-1",
		Code:         "DRY-HANG",
		Quantity:     d("100"),
		Unit:         "SF",
		UnitPrice:    d("2.5"),
		TaxRate:      d("0.08"),
		Recoverable:  true,
		CoverageID:   &cov,
		DimensionKey: &key,
		Financials:   entities.FinancialResult{
			Subtotal: d("250"), Tax: d("20"), RCV: d("270"), Depreciation: d("54"), ACV: d("216"),
		},
	}
	z := entities.Zone{
		ID:         "zone-1",
		Name:       "Kitchen",
		Type:       entities.ZoneTypeRoom,
		Status:     entities.ZoneStatusMeasured,
		Dimensions: entities.RawDimensions{Length: &length, Width: &width, Height: &height},
		Derived:    entities.DerivedDimensions{"floor_area": d("120"), "wall_area": d("352")},
		MissingWalls: []entities.MissingWall{
			{ID: "mw-1", Type: entities.OpeningTypeDoorway, Width: d("3"), Height: d("7"), Quantity: 2, OpensInto: &into},
		},
		LineItems: []entities.LineItem{item},
	}
	z.Totals = rollup.ZoneTotals(z)
	est := entities.Estimate{
		ID:          "est-1",
		ClaimNumber: "CLM-1",
		RegionID:    "default",
		Status:      entities.EstimateStatusDraft,
		Structures: []entities.Structure{{
			ID: "st-1", Name: "Main",
			Areas: []entities.Area{{ID: "ar-1", Name: "Interior", Kind: entities.AreaKindInterior, Zones: []entities.Zone{z}}},
		}},
		Coverages: []entities.Coverage{{ID: "cov-1", Type: entities.CoverageTypeDwelling, Name: "Dwelling", Deductible: d("50")}},
	}
	rollup.Rollup(&est)
	return est
}

func TestFromEstimate(t *testing.T) {
	res := FromEstimate(sampleEstimate())

	if res.ID != "est-1" || res.Status != "draft" {
		t.Fatalf("unexpected estimate fields: %+v", res)
	}
	if res.Totals.RCV != "270.00" || res.Totals.ACV != "216.00" || res.Totals.LineItemCount != 1 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
	if res.Totals.RecoverableDepreciation != "54.00" || res.Totals.NonRecoverableDepreciation != "0.00" {
		t.Fatalf("unexpected depreciation split: %+v", res.Totals)
	}
	if len(res.Structures) != 1 || len(res.Structures[0].Areas) != 1 || len(res.Structures[0].Areas[0].Zones) != 1 {
		t.Fatalf("unexpected tree shape: %+v", res.Structures)
	}

	zone := res.Structures[0].Areas[0].Zones[0]
	if zone.Derived["wall_area"] != "352" || zone.Derived["floor_area"] != "120" {
		t.Fatalf("unexpected derived: %+v", zone.Derived)
	}
	if _, ok := zone.Derived["roof_area"]; ok {
		t.Fatalf("roof_area must not be rendered for a room")
	}
	if *zone.Dimensions.Length != "10" || zone.Dimensions.Height == nil {
		t.Fatalf("unexpected dimensions: %+v", zone.Dimensions)
	}
	if zone.MissingWalls[0].Area != "42" || *zone.MissingWalls[0].OpensInto != "zone-2" {
		t.Fatalf("unexpected missing wall: %+v", zone.MissingWalls[0])
	}
	li := zone.LineItems[0]
	if li.UnitPrice != "2.50" || li.TaxRate != "0.08" || li.Financials.Tax != "20.00" {
		t.Fatalf("unexpected line item: %+v", li)
	}
	if li.DimensionKey == nil || *li.DimensionKey != "wall_area" {
		t.Fatalf("expected dimension key, got %+v", li.DimensionKey)
	}
	if res.Coverages[0].Deductible != "50.00" || res.Coverages[0].PolicyLimit != "0.00" {
		t.Fatalf("unexpected coverage: %+v", res.Coverages[0])
	}
}

func TestFromEstimateEmptyCollectionsRenderAsArrays(t *testing.T) {
	res := FromEstimate(entities.Estimate{ID: "est-1"})

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := body["structures"].([]interface{}); !ok {
		t.Fatalf("structures should be an array, got %T", body["structures"])
	}
	if _, ok := body["coverages"].([]interface{}); !ok {
		t.Fatalf("coverages should be an array, got %T", body["coverages"])
	}
}

func TestFromMutation(t *testing.T) {
	res := FromMutation(usecase.MutationResult{
		Estimate: sampleEstimate(),
		NodeID:   "zone-1",
		Warnings: []entities.ConsistencyWarning{{Code: entities.WarningOpeningsExceedWallArea, ZoneID: "zone-1", Excess: d("48")}},
	})

	if res.NodeID != "zone-1" || res.Estimate.ID != "est-1" {
		t.Fatalf("unexpected mutation: %+v", res)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Excess != "48.00" {
		t.Fatalf("unexpected warnings: %+v", res.Warnings)
	}

	empty := FromMutation(usecase.MutationResult{})
	if empty.Warnings == nil {
		t.Fatalf("warnings should render as an empty array")
	}
}

func TestFromCoverageAllocation(t *testing.T) {
	est := sampleEstimate()
	est.Coverages = append(est.Coverages, entities.Coverage{ID: "cov-0", Type: entities.CoverageTypeContents, Name: "Contents"})

	res := FromCoverageAllocation(rollup.AllocateByCoverage(est))

	if len(res.Coverages) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(res.Coverages))
	}
	if res.Coverages[0].Coverage.Name != "Contents" || res.Coverages[1].Coverage.Name != "Dwelling" {
		t.Fatalf("buckets not ordered by name: %+v", res.Coverages)
	}
	dwelling := res.Coverages[1]
	if dwelling.Payable != "166.00" || len(dwelling.Items) != 1 || dwelling.Items[0].ZoneName != "Kitchen" {
		t.Fatalf("unexpected dwelling bucket: %+v", dwelling)
	}
	if res.Unassigned.Coverage != nil || len(res.Unassigned.Items) != 0 || res.Unassigned.Payable != "0.00" {
		t.Fatalf("unexpected unassigned bucket: %+v", res.Unassigned)
	}
	if res.Totals.RCV != "270.00" {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
}

func TestFromClaimPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.ClaimPayment{
		ID:           "pay-1",
		EstimateID:   "est-1",
		CoverageID:   "cov-1",
		Amount:       d("166"),
		Date:         now,
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: raw,
		MPPayload:    payload,
	}

	res := FromClaimPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.EstimateID != "est-1" || res.CoverageID != "cov-1" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != "166.00" {
		t.Fatalf("unexpected amount: %s", res.Amount)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}

	list := FromClaimPayments(nil)
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}
