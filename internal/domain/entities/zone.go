package entities

import "github.com/shopspring/decimal"

type ZoneType string

const (
	ZoneTypeRoom      ZoneType = "room"
	ZoneTypeElevation ZoneType = "elevation"
	ZoneTypeRoof      ZoneType = "roof"
	ZoneTypeDeck      ZoneType = "deck"
	ZoneTypeLinear    ZoneType = "linear"
	ZoneTypeCustom    ZoneType = "custom"
)

func (t ZoneType) Valid() bool {
	switch t {
	case ZoneTypeRoom, ZoneTypeElevation, ZoneTypeRoof, ZoneTypeDeck, ZoneTypeLinear, ZoneTypeCustom:
		return true
	}
	return false
}

// ZoneStatus is a workflow label set by the adjuster.
type ZoneStatus string

const (
	ZoneStatusPending  ZoneStatus = "pending"
	ZoneStatusMeasured ZoneStatus = "measured"
	ZoneStatusScoped   ZoneStatus = "scoped"
	ZoneStatusComplete ZoneStatus = "complete"
)

func (s ZoneStatus) Valid() bool {
	switch s {
	case ZoneStatusPending, ZoneStatusMeasured, ZoneStatusScoped, ZoneStatusComplete:
		return true
	}
	return false
}

// DimensionKey names a derived zone quantity a line item can be driven by.
type DimensionKey string

const (
	DimFloorArea       DimensionKey = "floor_area"
	DimCeilingArea     DimensionKey = "ceiling_area"
	DimPerimeter       DimensionKey = "perimeter"
	DimGrossWallArea   DimensionKey = "gross_wall_area"
	DimOpeningArea     DimensionKey = "opening_area"
	DimWallArea        DimensionKey = "wall_area"
	DimWallCeilingArea DimensionKey = "wall_ceiling_area"
	DimVolume          DimensionKey = "volume"
	DimRoofArea        DimensionKey = "roof_area"
	DimRoofSquares     DimensionKey = "roof_squares"
	DimRidgeLength     DimensionKey = "ridge_length"
	DimEaveLength      DimensionKey = "eave_length"
	DimRakeLength      DimensionKey = "rake_length"
	DimLinearLength    DimensionKey = "linear_length"
)

// RawDimensions are the measurements entered for a zone. A nil field was not supplied.
type RawDimensions struct {
	Length *decimal.Decimal `json:"length,omitempty"`
	Width  *decimal.Decimal `json:"width,omitempty"`
	Height *decimal.Decimal `json:"height,omitempty"`
}

func (d RawDimensions) Empty() bool {
	return d.Length == nil && d.Width == nil && d.Height == nil
}

// DerivedDimensions only ever holds the keys applicable to the zone type.
// An absent key means "not applicable", which is different from a measured zero.
type DerivedDimensions map[DimensionKey]decimal.Decimal

func (d DerivedDimensions) Get(key DimensionKey) (decimal.Decimal, bool) {
	v, ok := d[key]
	return v, ok
}

// Zone is the atomic measurement and scoping unit of an estimate.
type Zone struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Type         ZoneType             `json:"type"`
	Status       ZoneStatus           `json:"status"`
	Dimensions   RawDimensions        `json:"dimensions"`
	Pitch        *decimal.Decimal     `json:"pitch,omitempty"`
	Footprint    [][2]float64         `json:"footprint,omitempty"`
	Derived      DerivedDimensions    `json:"derived"`
	Warnings     []ConsistencyWarning `json:"warnings,omitempty"`
	MissingWalls []MissingWall        `json:"missing_walls"`
	Subrooms     []Subroom            `json:"subrooms"`
	LineItems    []LineItem           `json:"line_items"`
	Totals       Totals               `json:"totals"`
}

// Measured reports whether the zone carries any geometry to derive from.
func (z Zone) Measured() bool {
	return !z.Dimensions.Empty() || len(z.Footprint) > 0
}

type OpeningType string

const (
	OpeningTypeOpening     OpeningType = "opening"
	OpeningTypeDoorway     OpeningType = "doorway"
	OpeningTypeArchway     OpeningType = "archway"
	OpeningTypePassThrough OpeningType = "pass_through"
	OpeningTypeWindow      OpeningType = "window"
	OpeningTypeMissingWall OpeningType = "missing_wall"
)

func (t OpeningType) Valid() bool {
	switch t {
	case OpeningTypeOpening, OpeningTypeDoorway, OpeningTypeArchway, OpeningTypePassThrough, OpeningTypeWindow, OpeningTypeMissingWall:
		return true
	}
	return false
}

// MissingWall is an opening deducted from the wall area of its zone.
//
// OpensInto is a plain reference to a neighbouring zone; it is never followed when the tree is
// traversed or deleted.
type MissingWall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name,omitempty"`
	Type      OpeningType     `json:"type"`
	Width     decimal.Decimal `json:"width"`
	Height    decimal.Decimal `json:"height"`
	Quantity  int             `json:"quantity"`
	OpensInto *string         `json:"opens_into,omitempty"`
}

func (m MissingWall) Area() decimal.Decimal {
	return m.Width.Mul(m.Height).Mul(decimal.NewFromInt(int64(m.Quantity)))
}

// Subroom is a closet or alcove whose geometry folds into the parent zone.
// A nil Height inherits the parent zone height.
type Subroom struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Length decimal.Decimal  `json:"length"`
	Width  decimal.Decimal  `json:"width"`
	Height *decimal.Decimal `json:"height,omitempty"`
}
