// Package dimension derives zone quantities from raw measurements, subrooms and openings.
//
// Derive is a pure function: the same zone always yields the same result, and it is re-run in
// full whenever any of its inputs change.
package dimension

import (
	"fmt"
	"math"
	"slices"

	"claimscope/internal/domain/entities"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/shopspring/decimal"
)

var (
	DefaultHeight = decimal.NewFromInt(8)

	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
	twelve  = decimal.NewFromInt(12)
)

// applicableKeys is the only place deciding which derived keys a zone type populates.
var applicableKeys = map[entities.ZoneType][]entities.DimensionKey{
	entities.ZoneTypeRoom: {
		entities.DimFloorArea, entities.DimCeilingArea, entities.DimPerimeter, entities.DimGrossWallArea,
		entities.DimOpeningArea, entities.DimWallArea, entities.DimWallCeilingArea, entities.DimVolume,
	},
	entities.ZoneTypeElevation: {
		entities.DimGrossWallArea, entities.DimOpeningArea, entities.DimWallArea, entities.DimPerimeter,
	},
	entities.ZoneTypeRoof: {
		entities.DimRoofArea, entities.DimRoofSquares, entities.DimRidgeLength, entities.DimEaveLength, entities.DimRakeLength,
	},
	entities.ZoneTypeDeck: {
		entities.DimFloorArea, entities.DimPerimeter,
	},
	entities.ZoneTypeLinear: {
		entities.DimLinearLength,
	},
	entities.ZoneTypeCustom: {
		entities.DimFloorArea, entities.DimCeilingArea, entities.DimPerimeter, entities.DimGrossWallArea,
		entities.DimOpeningArea, entities.DimWallArea, entities.DimVolume,
	},
}

// ApplicableKeys returns the derived keys a zone type populates, in display order.
func ApplicableKeys(t entities.ZoneType) []entities.DimensionKey {
	return slices.Clone(applicableKeys[t])
}

func Applies(t entities.ZoneType, key entities.DimensionKey) bool {
	return slices.Contains(applicableKeys[t], key)
}

// SupportsOpenings reports whether the zone type has a wall area openings can be deducted from.
func SupportsOpenings(t entities.ZoneType) bool {
	return Applies(t, entities.DimWallArea)
}

func SupportsSubrooms(t entities.ZoneType) bool {
	return t == entities.ZoneTypeRoom || t == entities.ZoneTypeCustom
}

// Derive computes the derived dimensions of a zone.
//
// A missing required dimension, a negative measurement or a malformed opening is a
// *entities.ValidationError. Openings larger than the gross wall area clamp the wall area to zero
// and are reported as a ConsistencyWarning.
func Derive(z entities.Zone) (entities.DerivedDimensions, []entities.ConsistencyWarning, error) {
	if !z.Type.Valid() {
		return nil, nil, entities.NewValidationError("type", fmt.Sprintf("unknown zone type %q", z.Type))
	}
	if err := validateRaw(z); err != nil {
		return nil, nil, err
	}
	if len(z.Subrooms) > 0 && !SupportsSubrooms(z.Type) {
		return nil, nil, entities.NewValidationError("subrooms", fmt.Sprintf("not allowed on %s zones", z.Type))
	}
	if len(z.MissingWalls) > 0 && !SupportsOpenings(z.Type) {
		return nil, nil, entities.NewValidationError("missing_walls", fmt.Sprintf("not allowed on %s zones", z.Type))
	}

	var (
		out      entities.DerivedDimensions
		warnings []entities.ConsistencyWarning
		err      error
	)
	switch z.Type {
	case entities.ZoneTypeRoom, entities.ZoneTypeCustom:
		out, warnings, err = deriveRoom(z)
	case entities.ZoneTypeElevation:
		out, warnings, err = deriveElevation(z)
	case entities.ZoneTypeRoof:
		out, err = deriveRoof(z)
	case entities.ZoneTypeDeck:
		out, err = deriveDeck(z)
	case entities.ZoneTypeLinear:
		out, err = deriveLinear(z)
	}
	if err != nil {
		return nil, nil, err
	}

	result := make(entities.DerivedDimensions, len(applicableKeys[z.Type]))
	for _, key := range applicableKeys[z.Type] {
		if v, ok := out[key]; ok {
			result[key] = v.Round(2)
		}
	}
	return result, warnings, nil
}

func validateRaw(z entities.Zone) error {
	for field, v := range map[string]*decimal.Decimal{
		"length": z.Dimensions.Length,
		"width":  z.Dimensions.Width,
		"height": z.Dimensions.Height,
		"pitch":  z.Pitch,
	} {
		if v != nil && v.IsNegative() {
			return entities.NewValidationError(field, "must not be negative")
		}
	}
	for _, s := range z.Subrooms {
		if err := ValidateSubroom(s); err != nil {
			return err
		}
	}
	for _, m := range z.MissingWalls {
		if err := ValidateMissingWall(m); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMissingWall rejects malformed openings.
func ValidateMissingWall(m entities.MissingWall) error {
	if !m.Type.Valid() {
		return entities.NewValidationError("missing_wall.type", fmt.Sprintf("unknown opening type %q", m.Type))
	}
	if !m.Width.IsPositive() {
		return entities.NewValidationError("missing_wall.width", "must be greater than zero")
	}
	if !m.Height.IsPositive() {
		return entities.NewValidationError("missing_wall.height", "must be greater than zero")
	}
	if m.Quantity < 1 {
		return entities.NewValidationError("missing_wall.quantity", "must be at least 1")
	}
	return nil
}

func ValidateSubroom(s entities.Subroom) error {
	if s.Length.IsNegative() {
		return entities.NewValidationError("subroom.length", "must not be negative")
	}
	if s.Width.IsNegative() {
		return entities.NewValidationError("subroom.width", "must not be negative")
	}
	if s.Height != nil && s.Height.IsNegative() {
		return entities.NewValidationError("subroom.height", "must not be negative")
	}
	return nil
}

func requireDim(v *decimal.Decimal, field string, t entities.ZoneType) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, entities.NewValidationError(field, fmt.Sprintf("is required for %s zones", t))
	}
	return *v, nil
}

func heightOrDefault(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return DefaultHeight
	}
	return *v
}

func openingArea(z entities.Zone) decimal.Decimal {
	total := decimal.Zero
	for _, m := range z.MissingWalls {
		total = total.Add(m.Area())
	}
	return total
}

// netWall deducts openings from the gross wall area, flooring at zero.
func netWall(z entities.Zone, gross, openings decimal.Decimal) (decimal.Decimal, []entities.ConsistencyWarning) {
	net := gross.Sub(openings)
	if !net.IsNegative() {
		return net, nil
	}
	excess := net.Neg().Round(2)
	return decimal.Zero, []entities.ConsistencyWarning{{
		Code:    entities.WarningOpeningsExceedWallArea,
		Message: fmt.Sprintf("openings exceed gross wall area by %s", excess.StringFixed(2)),
		ZoneID:  z.ID,
		Excess:  excess,
	}}
}

func deriveRoom(z entities.Zone) (entities.DerivedDimensions, []entities.ConsistencyWarning, error) {
	height := heightOrDefault(z.Dimensions.Height)

	floor, perimeter, err := baseOutline(z)
	if err != nil {
		return nil, nil, err
	}
	gross := perimeter.Mul(height)
	volume := floor.Mul(height)

	// Subroom geometry is folded in before openings are deducted.
	for _, s := range z.Subrooms {
		sh := height
		if s.Height != nil {
			sh = *s.Height
		}
		sFloor := s.Length.Mul(s.Width)
		sPerimeter := two.Mul(s.Length.Add(s.Width))
		floor = floor.Add(sFloor)
		perimeter = perimeter.Add(sPerimeter)
		gross = gross.Add(sPerimeter.Mul(sh))
		volume = volume.Add(sFloor.Mul(sh))
	}

	openings := openingArea(z)
	wall, warnings := netWall(z, gross, openings)

	return entities.DerivedDimensions{
		entities.DimFloorArea:       floor,
		entities.DimCeilingArea:     floor,
		entities.DimPerimeter:       perimeter,
		entities.DimGrossWallArea:   gross,
		entities.DimOpeningArea:     openings,
		entities.DimWallArea:        wall,
		entities.DimWallCeilingArea: wall.Add(floor),
		entities.DimVolume:          volume,
	}, warnings, nil
}

// baseOutline returns floor area and perimeter from length × width, or from the footprint
// polygon of a custom zone.
func baseOutline(z entities.Zone) (decimal.Decimal, decimal.Decimal, error) {
	if z.Type == entities.ZoneTypeCustom && len(z.Footprint) > 0 {
		return footprintOutline(z.Footprint)
	}
	length, err := requireDim(z.Dimensions.Length, "length", z.Type)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	width, err := requireDim(z.Dimensions.Width, "width", z.Type)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return length.Mul(width), two.Mul(length.Add(width)), nil
}

func footprintOutline(points [][2]float64) (decimal.Decimal, decimal.Decimal, error) {
	if len(points) < 3 {
		return decimal.Zero, decimal.Zero, entities.NewValidationError("footprint", "needs at least 3 points")
	}
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, orb.Point{p[0], p[1]})
	}
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}
	area := math.Abs(planar.Area(orb.Polygon{ring}))
	if area == 0 {
		return decimal.Zero, decimal.Zero, entities.NewValidationError("footprint", "must enclose an area")
	}
	return decimal.NewFromFloat(area).Round(2), decimal.NewFromFloat(planar.Length(ring)).Round(2), nil
}

func deriveElevation(z entities.Zone) (entities.DerivedDimensions, []entities.ConsistencyWarning, error) {
	length, err := requireDim(z.Dimensions.Length, "length", z.Type)
	if err != nil {
		return nil, nil, err
	}
	gross := length.Mul(heightOrDefault(z.Dimensions.Height))
	openings := openingArea(z)
	wall, warnings := netWall(z, gross, openings)

	return entities.DerivedDimensions{
		entities.DimGrossWallArea: gross,
		entities.DimOpeningArea:   openings,
		entities.DimWallArea:      wall,
		entities.DimPerimeter:     length,
	}, warnings, nil
}

// PitchFactor converts a rise-per-12 pitch to the slope multiplier applied to plan area,
// rounded to 4 decimal places.
func PitchFactor(pitch decimal.Decimal) decimal.Decimal {
	ratio := pitch.Div(twelve).InexactFloat64()
	return decimal.NewFromFloat(math.Sqrt(1 + ratio*ratio)).Round(4)
}

func deriveRoof(z entities.Zone) (entities.DerivedDimensions, error) {
	length, err := requireDim(z.Dimensions.Length, "length", z.Type)
	if err != nil {
		return nil, err
	}
	width, err := requireDim(z.Dimensions.Width, "width", z.Type)
	if err != nil {
		return nil, err
	}
	pitch := decimal.Zero
	if z.Pitch != nil {
		pitch = *z.Pitch
	}
	pf := PitchFactor(pitch)
	area := length.Mul(width).Mul(pf).Round(2)

	return entities.DerivedDimensions{
		entities.DimRoofArea:    area,
		entities.DimRoofSquares: area.Div(hundred),
		entities.DimRidgeLength: length,
		entities.DimEaveLength:  two.Mul(length),
		entities.DimRakeLength:  two.Mul(width).Mul(pf),
	}, nil
}

func deriveDeck(z entities.Zone) (entities.DerivedDimensions, error) {
	length, err := requireDim(z.Dimensions.Length, "length", z.Type)
	if err != nil {
		return nil, err
	}
	width, err := requireDim(z.Dimensions.Width, "width", z.Type)
	if err != nil {
		return nil, err
	}
	return entities.DerivedDimensions{
		entities.DimFloorArea: length.Mul(width),
		entities.DimPerimeter: two.Mul(length.Add(width)),
	}, nil
}

func deriveLinear(z entities.Zone) (entities.DerivedDimensions, error) {
	length, err := requireDim(z.Dimensions.Length, "length", z.Type)
	if err != nil {
		return nil, err
	}
	return entities.DerivedDimensions{entities.DimLinearLength: length}, nil
}
