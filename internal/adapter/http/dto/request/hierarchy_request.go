package request

import (
	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase"

	"github.com/shopspring/decimal"
)

type InitializeHierarchyRequest struct {
	IncludeInterior bool   `json:"include_interior"`
	IncludeExterior bool   `json:"include_exterior"`
	IncludeRoofing  bool   `json:"include_roofing"`
	StructureName   string `json:"structure_name"`
}

func (r InitializeHierarchyRequest) ToInput() usecase.InitializeHierarchyInput {
	return usecase.InitializeHierarchyInput{
		IncludeInterior: r.IncludeInterior,
		IncludeExterior: r.IncludeExterior,
		IncludeRoofing:  r.IncludeRoofing,
		StructureName:   r.StructureName,
	}
}

type StructureRequest struct {
	Name string `json:"name" binding:"required"`
}

type AreaRequest struct {
	Name string            `json:"name" binding:"required"`
	Kind entities.AreaKind `json:"kind" binding:"omitempty,area_kind"`
}

type DimensionsRequest struct {
	Length *decimal.Decimal `json:"length" binding:"omitempty,decimal_nonneg"`
	Width  *decimal.Decimal `json:"width" binding:"omitempty,decimal_nonneg"`
	Height *decimal.Decimal `json:"height" binding:"omitempty,decimal_nonneg"`
}

func (r DimensionsRequest) ToRaw() entities.RawDimensions {
	return entities.RawDimensions{Length: r.Length, Width: r.Width, Height: r.Height}
}

type ZoneRequest struct {
	Name       string              `json:"name" binding:"required"`
	Type       entities.ZoneType   `json:"type" binding:"required,zonetype"`
	Status     entities.ZoneStatus `json:"status" binding:"omitempty,zonestatus"`
	Dimensions DimensionsRequest   `json:"dimensions"`
	Pitch      *decimal.Decimal    `json:"pitch" binding:"omitempty,decimal_nonneg"`
	Footprint  [][2]float64        `json:"footprint" binding:"omitempty,min=3"`
}

func (r ZoneRequest) ToInput() usecase.ZoneInput {
	return usecase.ZoneInput{
		Name:       r.Name,
		Type:       r.Type,
		Status:     r.Status,
		Dimensions: r.Dimensions.ToRaw(),
		Pitch:      r.Pitch,
		Footprint:  r.Footprint,
	}
}

// ZonePatchRequest changes only the fields present in the body.
type ZonePatchRequest struct {
	Name       *string              `json:"name"`
	Type       *entities.ZoneType   `json:"type" binding:"omitempty,zonetype"`
	Status     *entities.ZoneStatus `json:"status" binding:"omitempty,zonestatus"`
	Dimensions *DimensionsRequest   `json:"dimensions"`
	Pitch      *decimal.Decimal     `json:"pitch" binding:"omitempty,decimal_nonneg"`
	Footprint  *[][2]float64        `json:"footprint"`
}

func (r ZonePatchRequest) ToUpdate() usecase.ZoneUpdate {
	u := usecase.ZoneUpdate{
		Name:      r.Name,
		Type:      r.Type,
		Status:    r.Status,
		Pitch:     r.Pitch,
		Footprint: r.Footprint,
	}
	if r.Dimensions != nil {
		raw := r.Dimensions.ToRaw()
		u.Dimensions = &raw
	}
	return u
}

type MissingWallRequest struct {
	Name      string               `json:"name"`
	Type      entities.OpeningType `json:"type" binding:"omitempty,opening_type"`
	Width     decimal.Decimal      `json:"width" binding:"decimal_pos"`
	Height    decimal.Decimal      `json:"height" binding:"decimal_pos"`
	Quantity  int                  `json:"quantity" binding:"omitempty,min=1"`
	OpensInto *string              `json:"opens_into"`
}

func (r MissingWallRequest) ToInput() usecase.MissingWallInput {
	return usecase.MissingWallInput{
		Name:      r.Name,
		Type:      r.Type,
		Width:     r.Width,
		Height:    r.Height,
		Quantity:  r.Quantity,
		OpensInto: r.OpensInto,
	}
}

type SubroomRequest struct {
	Name   string           `json:"name" binding:"required"`
	Length decimal.Decimal  `json:"length" binding:"decimal_nonneg"`
	Width  decimal.Decimal  `json:"width" binding:"decimal_nonneg"`
	Height *decimal.Decimal `json:"height" binding:"omitempty,decimal_nonneg"`
}

func (r SubroomRequest) ToInput() usecase.SubroomInput {
	return usecase.SubroomInput{Name: r.Name, Length: r.Length, Width: r.Width, Height: r.Height}
}
