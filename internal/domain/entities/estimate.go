package entities

import "time"

// EstimateStatus is the workflow label of a claim estimate.
//
// Transitions are user driven; the engine never infers a status from the tree contents.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusInReview EstimateStatus = "in_review"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusClosed   EstimateStatus = "closed"
)

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusInReview, EstimateStatusApproved, EstimateStatusClosed:
		return true
	}
	return false
}

// Estimate is the root of a claim estimate tree.
//
// Storage model (DynamoDB):
//   - PK: id
//   - claim_number, status and rcv are copied to top-level attributes for console queries
//   - the whole tree is persisted as a single document, so every mutation is an atomic replace.
//
// Totals on every level are output only: they are recomputed from line item financials on each write.
type Estimate struct {
	ID               string         `json:"id"`
	ClaimNumber      string         `json:"claim_number"`
	InsuredName      string         `json:"insured_name,omitempty"`
	RegionID         string         `json:"region_id"`
	CarrierProfileID *string        `json:"carrier_profile_id,omitempty"`
	Status           EstimateStatus `json:"status"`
	Structures       []Structure    `json:"structures"`
	Coverages        []Coverage     `json:"coverages"`
	Totals           Totals         `json:"totals"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Structure is a building on the insured property (main dwelling, detached garage, shed...).
type Structure struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Areas  []Area `json:"areas"`
	Totals Totals `json:"totals"`
}

type AreaKind string

const (
	AreaKindInterior AreaKind = "interior"
	AreaKindExterior AreaKind = "exterior"
	AreaKindRoofing  AreaKind = "roofing"
	AreaKindOther    AreaKind = "other"
)

func (k AreaKind) Valid() bool {
	switch k {
	case AreaKindInterior, AreaKindExterior, AreaKindRoofing, AreaKindOther:
		return true
	}
	return false
}

// Area groups zones of a structure, e.g. "Interior" or "Roofing".
type Area struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Kind   AreaKind `json:"kind"`
	Zones  []Zone   `json:"zones"`
	Totals Totals   `json:"totals"`
}
