package response

import (
	"time"

	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"

	"github.com/shopspring/decimal"
)

// Money is rendered with two decimals, measurements as plain decimal strings.

type TotalsResponse struct {
	Subtotal                   string `json:"subtotal"`
	Tax                        string `json:"tax"`
	RCV                        string `json:"rcv"`
	Depreciation               string `json:"depreciation"`
	RecoverableDepreciation    string `json:"recoverable_depreciation"`
	NonRecoverableDepreciation string `json:"non_recoverable_depreciation"`
	ACV                        string `json:"acv"`
	LineItemCount              int    `json:"line_item_count"`
}

type WarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	ZoneID  string `json:"zone_id,omitempty"`
	Excess  string `json:"excess"`
}

type FinancialsResponse struct {
	Subtotal     string `json:"subtotal"`
	Tax          string `json:"tax"`
	RCV          string `json:"rcv"`
	Depreciation string `json:"depreciation"`
	ACV          string `json:"acv"`
}

type LineItemResponse struct {
	ID              string             `json:"id"`
	Code            string             `json:"code"`
	Description     string             `json:"description"`
	Quantity        string             `json:"quantity"`
	Unit            string             `json:"unit"`
	UnitPrice       string             `json:"unit_price"`
	TaxRate         string             `json:"tax_rate"`
	DepreciationPct string             `json:"depreciation_pct"`
	Age             *int               `json:"age,omitempty"`
	LifeExpectancy  *int               `json:"life_expectancy,omitempty"`
	Recoverable     bool               `json:"recoverable"`
	CoverageID      *string            `json:"coverage_id"`
	DimensionKey    *string            `json:"dimension_key,omitempty"`
	Financials      FinancialsResponse `json:"financials"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type MissingWallResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Type      string  `json:"type"`
	Width     string  `json:"width"`
	Height    string  `json:"height"`
	Quantity  int     `json:"quantity"`
	Area      string  `json:"area"`
	OpensInto *string `json:"opens_into,omitempty"`
}

type SubroomResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Length string  `json:"length"`
	Width  string  `json:"width"`
	Height *string `json:"height,omitempty"`
}

type DimensionsResponse struct {
	Length *string `json:"length,omitempty"`
	Width  *string `json:"width,omitempty"`
	Height *string `json:"height,omitempty"`
}

type ZoneResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Type         string                `json:"type"`
	Status       string                `json:"status"`
	Dimensions   DimensionsResponse    `json:"dimensions"`
	Pitch        *string               `json:"pitch,omitempty"`
	Footprint    [][2]float64          `json:"footprint,omitempty"`
	Derived      map[string]string     `json:"derived"`
	Warnings     []WarningResponse     `json:"warnings"`
	MissingWalls []MissingWallResponse `json:"missing_walls"`
	Subrooms     []SubroomResponse     `json:"subrooms"`
	LineItems    []LineItemResponse    `json:"line_items"`
	Totals       TotalsResponse        `json:"totals"`
}

type AreaResponse struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Kind   string         `json:"kind"`
	Zones  []ZoneResponse `json:"zones"`
	Totals TotalsResponse `json:"totals"`
}

type StructureResponse struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Areas  []AreaResponse `json:"areas"`
	Totals TotalsResponse `json:"totals"`
}

type CoverageResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	PolicyLimit string `json:"policy_limit"`
	Deductible  string `json:"deductible"`
}

type EstimateResponse struct {
	ID               string              `json:"id"`
	ClaimNumber      string              `json:"claim_number"`
	InsuredName      string              `json:"insured_name,omitempty"`
	RegionID         string              `json:"region_id"`
	CarrierProfileID *string             `json:"carrier_profile_id,omitempty"`
	Status           string              `json:"status"`
	Structures       []StructureResponse `json:"structures"`
	Coverages        []CoverageResponse  `json:"coverages"`
	Totals           TotalsResponse      `json:"totals"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// MutationResponse is returned by every write on the estimate tree.
type MutationResponse struct {
	Estimate EstimateResponse  `json:"estimate"`
	NodeID   string            `json:"node_id,omitempty"`
	Warnings []WarningResponse `json:"warnings"`
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func optional(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func FromTotals(t entities.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:                   money(t.Subtotal),
		Tax:                        money(t.Tax),
		RCV:                        money(t.RCV),
		Depreciation:               money(t.Depreciation),
		RecoverableDepreciation:    money(t.RecoverableDepreciation),
		NonRecoverableDepreciation: money(t.NonRecoverableDepreciation),
		ACV:                        money(t.ACV),
		LineItemCount:              t.LineItemCount,
	}
}

func FromWarnings(ws []entities.ConsistencyWarning) []WarningResponse {
	out := make([]WarningResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, WarningResponse{Code: w.Code, Message: w.Message, ZoneID: w.ZoneID, Excess: money(w.Excess)})
	}
	return out
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	r := LineItemResponse{
		ID:              li.ID,
		Code:            li.Code,
		Description:     li.Description,
		Quantity:        li.Quantity.String(),
		Unit:            li.Unit,
		UnitPrice:       money(li.UnitPrice),
		TaxRate:         li.TaxRate.String(),
		DepreciationPct: li.DepreciationPct.String(),
		Age:             li.Age,
		LifeExpectancy:  li.LifeExpectancy,
		Recoverable:     li.Recoverable,
		CoverageID:      li.CoverageID,
		Financials: FinancialsResponse{
			Subtotal:     money(li.Financials.Subtotal),
			Tax:          money(li.Financials.Tax),
			RCV:          money(li.Financials.RCV),
			Depreciation: money(li.Financials.Depreciation),
			ACV:          money(li.Financials.ACV),
		},
		CreatedAt: li.CreatedAt,
		UpdatedAt: li.UpdatedAt,
	}
	if li.DimensionKey != nil {
		k := string(*li.DimensionKey)
		r.DimensionKey = &k
	}
	return r
}

func FromZone(z entities.Zone) ZoneResponse {
	r := ZoneResponse{
		ID:     z.ID,
		Name:   z.Name,
		Type:   string(z.Type),
		Status: string(z.Status),
		Dimensions: DimensionsResponse{
			Length: optional(z.Dimensions.Length),
			Width:  optional(z.Dimensions.Width),
			Height: optional(z.Dimensions.Height),
		},
		Pitch:        optional(z.Pitch),
		Footprint:    z.Footprint,
		Derived:      make(map[string]string, len(z.Derived)),
		Warnings:     FromWarnings(z.Warnings),
		MissingWalls: make([]MissingWallResponse, 0, len(z.MissingWalls)),
		Subrooms:     make([]SubroomResponse, 0, len(z.Subrooms)),
		LineItems:    make([]LineItemResponse, 0, len(z.LineItems)),
		Totals:       FromTotals(z.Totals),
	}
	for k, v := range z.Derived {
		r.Derived[string(k)] = v.String()
	}
	for _, m := range z.MissingWalls {
		r.MissingWalls = append(r.MissingWalls, MissingWallResponse{
			ID:        m.ID,
			Name:      m.Name,
			Type:      string(m.Type),
			Width:     m.Width.String(),
			Height:    m.Height.String(),
			Quantity:  m.Quantity,
			Area:      m.Area().String(),
			OpensInto: m.OpensInto,
		})
	}
	for _, s := range z.Subrooms {
		r.Subrooms = append(r.Subrooms, SubroomResponse{
			ID: s.ID, Name: s.Name, Length: s.Length.String(), Width: s.Width.String(), Height: optional(s.Height),
		})
	}
	for _, li := range z.LineItems {
		r.LineItems = append(r.LineItems, FromLineItem(li))
	}
	return r
}

func FromCoverage(c entities.Coverage) CoverageResponse {
	return CoverageResponse{
		ID:          c.ID,
		Type:        string(c.Type),
		Name:        c.Name,
		PolicyLimit: money(c.PolicyLimit),
		Deductible:  money(c.Deductible),
	}
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	r := EstimateResponse{
		ID:               e.ID,
		ClaimNumber:      e.ClaimNumber,
		InsuredName:      e.InsuredName,
		RegionID:         e.RegionID,
		CarrierProfileID: e.CarrierProfileID,
		Status:           string(e.Status),
		Structures:       make([]StructureResponse, 0, len(e.Structures)),
		Coverages:        make([]CoverageResponse, 0, len(e.Coverages)),
		Totals:           FromTotals(e.Totals),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	for _, s := range e.Structures {
		sr := StructureResponse{ID: s.ID, Name: s.Name, Areas: make([]AreaResponse, 0, len(s.Areas)), Totals: FromTotals(s.Totals)}
		for _, a := range s.Areas {
			ar := AreaResponse{ID: a.ID, Name: a.Name, Kind: string(a.Kind), Zones: make([]ZoneResponse, 0, len(a.Zones)), Totals: FromTotals(a.Totals)}
			for _, z := range a.Zones {
				ar.Zones = append(ar.Zones, FromZone(z))
			}
			sr.Areas = append(sr.Areas, ar)
		}
		r.Structures = append(r.Structures, sr)
	}
	for _, c := range e.Coverages {
		r.Coverages = append(r.Coverages, FromCoverage(c))
	}
	return r
}

func FromMutation(m usecase.MutationResult) MutationResponse {
	return MutationResponse{
		Estimate: FromEstimate(m.Estimate),
		NodeID:   m.NodeID,
		Warnings: FromWarnings(m.Warnings),
	}
}
