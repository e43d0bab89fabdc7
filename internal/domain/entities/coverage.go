package entities

import "github.com/shopspring/decimal"

type CoverageType string

const (
	CoverageTypeDwelling        CoverageType = "dwelling"
	CoverageTypeOtherStructures CoverageType = "other_structures"
	CoverageTypeContents        CoverageType = "contents"
	CoverageTypeLossOfUse       CoverageType = "loss_of_use"
)

func (t CoverageType) Valid() bool {
	switch t {
	case CoverageTypeDwelling, CoverageTypeOtherStructures, CoverageTypeContents, CoverageTypeLossOfUse:
		return true
	}
	return false
}

// Coverage is a policy section line items are billed against.
// A zero PolicyLimit means the section is not capped.
type Coverage struct {
	ID          string          `json:"id"`
	Type        CoverageType    `json:"type"`
	Name        string          `json:"name"`
	PolicyLimit decimal.Decimal `json:"policy_limit"`
	Deductible  decimal.Decimal `json:"deductible"`
}
