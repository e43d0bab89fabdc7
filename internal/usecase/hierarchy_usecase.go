package usecase

import (
	"context"
	"fmt"

	"claimscope/internal/domain/dimension"
	"claimscope/internal/domain/entities"
	"claimscope/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultStructureName = "Main Building"

type InitializeHierarchyInput struct {
	IncludeInterior bool
	IncludeExterior bool
	IncludeRoofing  bool
	StructureName   string
}

type ZoneInput struct {
	Name       string
	Type       entities.ZoneType
	Status     entities.ZoneStatus
	Dimensions entities.RawDimensions
	Pitch      *decimal.Decimal
	Footprint  [][2]float64
}

// ZoneUpdate changes only the non-nil fields. Dimensions, when present, replaces all raw
// measurements at once.
type ZoneUpdate struct {
	Name       *string
	Type       *entities.ZoneType
	Status     *entities.ZoneStatus
	Dimensions *entities.RawDimensions
	Pitch      *decimal.Decimal
	Footprint  *[][2]float64
}

type MissingWallInput struct {
	Name      string
	Type      entities.OpeningType
	Width     decimal.Decimal
	Height    decimal.Decimal
	Quantity  int
	OpensInto *string
}

type SubroomInput struct {
	Name   string
	Length decimal.Decimal
	Width  decimal.Decimal
	Height *decimal.Decimal
}

// IHierarchyUseCase edits the Structure → Area → Zone skeleton and zone geometry.
// Every geometry change re-derives the affected zone before the estimate is saved.
type IHierarchyUseCase interface {
	InitializeHierarchy(ctx context.Context, estimateID string, in InitializeHierarchyInput) (MutationResult, error)

	CreateStructure(ctx context.Context, estimateID, name string) (MutationResult, error)
	UpdateStructure(ctx context.Context, estimateID, structureID, name string) (MutationResult, error)
	DeleteStructure(ctx context.Context, estimateID, structureID string) (MutationResult, error)

	CreateArea(ctx context.Context, estimateID, structureID, name string, kind entities.AreaKind) (MutationResult, error)
	DeleteArea(ctx context.Context, estimateID, areaID string) (MutationResult, error)

	CreateZone(ctx context.Context, estimateID, areaID string, in ZoneInput) (MutationResult, error)
	UpdateZone(ctx context.Context, estimateID, zoneID string, in ZoneUpdate) (MutationResult, error)
	DeleteZone(ctx context.Context, estimateID, zoneID string) (MutationResult, error)
	RecalcZoneDimensions(ctx context.Context, estimateID, zoneID string) (MutationResult, error)

	CreateMissingWall(ctx context.Context, estimateID, zoneID string, in MissingWallInput) (MutationResult, error)
	DeleteMissingWall(ctx context.Context, estimateID, missingWallID string) (MutationResult, error)

	CreateSubroom(ctx context.Context, estimateID, zoneID string, in SubroomInput) (MutationResult, error)
	DeleteSubroom(ctx context.Context, estimateID, subroomID string) (MutationResult, error)
}

type HierarchyUseCase struct {
	store estimateStore
}

var _ IHierarchyUseCase = (*HierarchyUseCase)(nil)

func NewHierarchyUseCase(repo interfaces.IEstimateRepository) *HierarchyUseCase {
	return &HierarchyUseCase{store: newEstimateStore(repo)}
}

// InitializeHierarchy seeds a structure with the requested default areas and zones.
func (u *HierarchyUseCase) InitializeHierarchy(ctx context.Context, estimateID string, in InitializeHierarchyInput) (MutationResult, error) {
	if !in.IncludeInterior && !in.IncludeExterior && !in.IncludeRoofing {
		return MutationResult{}, entities.NewValidationError("flags", "at least one of interior, exterior or roofing must be included")
	}
	name := trimmed(in.StructureName)
	if name == "" {
		name = DefaultStructureName
	}

	return u.store.mutate(ctx, estimateID, "initialize-hierarchy", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		st := entities.Structure{ID: uuid.NewString(), Name: name, Areas: []entities.Area{}}
		if in.IncludeInterior {
			st.Areas = append(st.Areas, newArea("Interior", entities.AreaKindInterior,
				newZone("Living Room", entities.ZoneTypeRoom, entities.RawDimensions{
					Length: decPtr(12), Width: decPtr(12), Height: decPtr(8),
				}),
			))
		}
		if in.IncludeExterior {
			st.Areas = append(st.Areas, newArea("Exterior", entities.AreaKindExterior,
				newZone("Front Elevation", entities.ZoneTypeElevation, entities.RawDimensions{}),
				newZone("Rear Elevation", entities.ZoneTypeElevation, entities.RawDimensions{}),
				newZone("Left Elevation", entities.ZoneTypeElevation, entities.RawDimensions{}),
				newZone("Right Elevation", entities.ZoneTypeElevation, entities.RawDimensions{}),
			))
		}
		if in.IncludeRoofing {
			st.Areas = append(st.Areas, newArea("Roofing", entities.AreaKindRoofing,
				newZone("Main Roof", entities.ZoneTypeRoof, entities.RawDimensions{}),
			))
		}

		var warnings []entities.ConsistencyWarning
		for i := range st.Areas {
			for j := range st.Areas[i].Zones {
				w, err := refreshZone(&st.Areas[i].Zones[j])
				if err != nil {
					return "", nil, err
				}
				warnings = append(warnings, w...)
			}
		}
		est.Structures = append(est.Structures, st)
		return st.ID, warnings, nil
	})
}

func newArea(name string, kind entities.AreaKind, zones ...entities.Zone) entities.Area {
	return entities.Area{ID: uuid.NewString(), Name: name, Kind: kind, Zones: zones}
}

func newZone(name string, t entities.ZoneType, dims entities.RawDimensions) entities.Zone {
	return entities.Zone{
		ID:           uuid.NewString(),
		Name:         name,
		Type:         t,
		Status:       entities.ZoneStatusPending,
		Dimensions:   dims,
		Derived:      entities.DerivedDimensions{},
		MissingWalls: []entities.MissingWall{},
		Subrooms:     []entities.Subroom{},
		LineItems:    []entities.LineItem{},
	}
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func (u *HierarchyUseCase) CreateStructure(ctx context.Context, estimateID, name string) (MutationResult, error) {
	name = trimmed(name)
	if name == "" {
		return MutationResult{}, entities.NewValidationError("name", "is required")
	}
	return u.store.mutate(ctx, estimateID, "create-structure", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		st := entities.Structure{ID: uuid.NewString(), Name: name, Areas: []entities.Area{}}
		est.Structures = append(est.Structures, st)
		return st.ID, nil, nil
	})
}

func (u *HierarchyUseCase) UpdateStructure(ctx context.Context, estimateID, structureID, name string) (MutationResult, error) {
	name = trimmed(name)
	if name == "" {
		return MutationResult{}, entities.NewValidationError("name", "is required")
	}
	return u.store.mutate(ctx, estimateID, "update-structure", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		st, err := est.FindStructure(trimmed(structureID))
		if err != nil {
			return "", nil, err
		}
		st.Name = name
		return st.ID, nil, nil
	})
}

// DeleteStructure removes the structure with all its areas, zones and line items.
func (u *HierarchyUseCase) DeleteStructure(ctx context.Context, estimateID, structureID string) (MutationResult, error) {
	return u.store.mutate(ctx, estimateID, "delete-structure", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		return "", nil, est.RemoveStructure(trimmed(structureID))
	})
}

func (u *HierarchyUseCase) CreateArea(ctx context.Context, estimateID, structureID, name string, kind entities.AreaKind) (MutationResult, error) {
	name = trimmed(name)
	if name == "" {
		return MutationResult{}, entities.NewValidationError("name", "is required")
	}
	if kind == "" {
		kind = entities.AreaKindOther
	}
	if !kind.Valid() {
		return MutationResult{}, entities.NewValidationError("kind", fmt.Sprintf("unknown area kind %q", kind))
	}
	return u.store.mutate(ctx, estimateID, "create-area", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		st, err := est.FindStructure(trimmed(structureID))
		if err != nil {
			return "", nil, err
		}
		a := newArea(name, kind)
		a.Zones = []entities.Zone{}
		st.Areas = append(st.Areas, a)
		return a.ID, nil, nil
	})
}

func (u *HierarchyUseCase) DeleteArea(ctx context.Context, estimateID, areaID string) (MutationResult, error) {
	return u.store.mutate(ctx, estimateID, "delete-area", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		return "", nil, est.RemoveArea(trimmed(areaID))
	})
}

func (u *HierarchyUseCase) CreateZone(ctx context.Context, estimateID, areaID string, in ZoneInput) (MutationResult, error) {
	name := trimmed(in.Name)
	if name == "" {
		return MutationResult{}, entities.NewValidationError("name", "is required")
	}
	if in.Status == "" {
		in.Status = entities.ZoneStatusPending
	}
	if !in.Status.Valid() {
		return MutationResult{}, entities.NewValidationError("status", fmt.Sprintf("unknown zone status %q", in.Status))
	}

	z := newZone(name, in.Type, in.Dimensions)
	z.Status = in.Status
	z.Pitch = in.Pitch
	z.Footprint = in.Footprint
	if err := checkZoneShape(z); err != nil {
		return MutationResult{}, err
	}

	return u.store.mutate(ctx, estimateID, "create-zone", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		area, err := est.FindArea(trimmed(areaID))
		if err != nil {
			return "", nil, err
		}
		warnings, err := refreshZone(&z)
		if err != nil {
			return "", nil, err
		}
		area.Zones = append(area.Zones, z)
		return z.ID, warnings, nil
	})
}

// UpdateZone applies the changed fields and re-derives the zone when its geometry changed.
func (u *HierarchyUseCase) UpdateZone(ctx context.Context, estimateID, zoneID string, in ZoneUpdate) (MutationResult, error) {
	if in.Name != nil && trimmed(*in.Name) == "" {
		return MutationResult{}, entities.NewValidationError("name", "must not be blank")
	}
	if in.Status != nil && !in.Status.Valid() {
		return MutationResult{}, entities.NewValidationError("status", fmt.Sprintf("unknown zone status %q", *in.Status))
	}

	return u.store.mutate(ctx, estimateID, "update-zone", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		z, err := est.FindZone(trimmed(zoneID))
		if err != nil {
			return "", nil, err
		}
		if in.Name != nil {
			z.Name = trimmed(*in.Name)
		}
		if in.Status != nil {
			z.Status = *in.Status
		}
		geometryChanged := false
		if in.Type != nil && *in.Type != z.Type {
			z.Type = *in.Type
			geometryChanged = true
		}
		if in.Dimensions != nil {
			z.Dimensions = *in.Dimensions
			geometryChanged = true
		}
		if in.Pitch != nil {
			z.Pitch = in.Pitch
			geometryChanged = true
		}
		if in.Footprint != nil {
			z.Footprint = *in.Footprint
			geometryChanged = true
		}
		if !geometryChanged {
			return z.ID, z.Warnings, nil
		}
		if err := checkZoneShape(*z); err != nil {
			return "", nil, err
		}
		warnings, err := refreshZone(z)
		if err != nil {
			return "", nil, err
		}
		return z.ID, warnings, nil
	})
}

// checkZoneShape enforces the zone type rules that do not depend on measurements.
func checkZoneShape(z entities.Zone) error {
	if !z.Type.Valid() {
		return entities.NewValidationError("type", fmt.Sprintf("unknown zone type %q", z.Type))
	}
	if z.Pitch != nil && z.Type != entities.ZoneTypeRoof {
		return entities.NewValidationError("pitch", "only applies to roof zones")
	}
	if len(z.Footprint) > 0 && z.Type != entities.ZoneTypeCustom {
		return entities.NewValidationError("footprint", "only applies to custom zones")
	}
	if len(z.Subrooms) > 0 && !dimension.SupportsSubrooms(z.Type) {
		return entities.NewValidationError("type", fmt.Sprintf("%s zones cannot hold subrooms", z.Type))
	}
	if len(z.MissingWalls) > 0 && !dimension.SupportsOpenings(z.Type) {
		return entities.NewValidationError("type", fmt.Sprintf("%s zones cannot hold missing walls", z.Type))
	}
	for _, li := range z.LineItems {
		if li.DimensionKey != nil && !dimension.Applies(z.Type, *li.DimensionKey) {
			return entities.NewValidationError("type", fmt.Sprintf("line item %s follows %s which %s zones do not derive", li.ID, *li.DimensionKey, z.Type))
		}
	}
	return nil
}

// DeleteZone removes the zone with everything it owns. Openings elsewhere that open into it keep
// their reference.
func (u *HierarchyUseCase) DeleteZone(ctx context.Context, estimateID, zoneID string) (MutationResult, error) {
	return u.store.mutate(ctx, estimateID, "delete-zone", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		return "", nil, est.RemoveZone(trimmed(zoneID))
	})
}

// RecalcZoneDimensions explicitly re-derives a zone; it fails when the zone has no measurements.
func (u *HierarchyUseCase) RecalcZoneDimensions(ctx context.Context, estimateID, zoneID string) (MutationResult, error) {
	return u.store.mutate(ctx, estimateID, "recalc-zone", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		z, err := est.FindZone(trimmed(zoneID))
		if err != nil {
			return "", nil, err
		}
		if !z.Measured() {
			return "", nil, entities.NewValidationError("dimensions", fmt.Sprintf("are required to derive a %s zone", z.Type))
		}
		warnings, err := refreshZone(z)
		if err != nil {
			return "", nil, err
		}
		return z.ID, warnings, nil
	})
}

func (u *HierarchyUseCase) CreateMissingWall(ctx context.Context, estimateID, zoneID string, in MissingWallInput) (MutationResult, error) {
	m := entities.MissingWall{
		ID:       uuid.NewString(),
		Name:     trimmed(in.Name),
		Type:     in.Type,
		Width:    in.Width,
		Height:   in.Height,
		Quantity: in.Quantity,
	}
	if m.Type == "" {
		m.Type = entities.OpeningTypeOpening
	}
	if m.Quantity == 0 {
		m.Quantity = 1
	}
	if err := dimension.ValidateMissingWall(m); err != nil {
		return MutationResult{}, err
	}

	zoneID = trimmed(zoneID)
	return u.store.mutate(ctx, estimateID, "create-missing-wall", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		z, err := est.FindZone(zoneID)
		if err != nil {
			return "", nil, err
		}
		if !dimension.SupportsOpenings(z.Type) {
			return "", nil, entities.NewValidationError("zone", fmt.Sprintf("%s zones have no wall area to deduct openings from", z.Type))
		}
		if in.OpensInto != nil && trimmed(*in.OpensInto) != "" {
			target := trimmed(*in.OpensInto)
			if target == zoneID {
				return "", nil, entities.NewValidationError("opens_into", "must reference another zone")
			}
			if _, err := est.FindZone(target); err != nil {
				return "", nil, err
			}
			m.OpensInto = &target
		}
		z.MissingWalls = append(z.MissingWalls, m)
		warnings, err := refreshZone(z)
		if err != nil {
			return "", nil, err
		}
		return m.ID, warnings, nil
	})
}

func (u *HierarchyUseCase) DeleteMissingWall(ctx context.Context, estimateID, missingWallID string) (MutationResult, error) {
	return u.store.mutate(ctx, estimateID, "delete-missing-wall", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		z, err := est.RemoveMissingWall(trimmed(missingWallID))
		if err != nil {
			return "", nil, err
		}
		warnings, err := refreshZone(z)
		if err != nil {
			return "", nil, err
		}
		return z.ID, warnings, nil
	})
}

func (u *HierarchyUseCase) CreateSubroom(ctx context.Context, estimateID, zoneID string, in SubroomInput) (MutationResult, error) {
	s := entities.Subroom{
		ID:     uuid.NewString(),
		Name:   trimmed(in.Name),
		Length: in.Length,
		Width:  in.Width,
		Height: in.Height,
	}
	if s.Name == "" {
		return MutationResult{}, entities.NewValidationError("name", "is required")
	}
	if err := dimension.ValidateSubroom(s); err != nil {
		return MutationResult{}, err
	}

	return u.store.mutate(ctx, estimateID, "create-subroom", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		z, err := est.FindZone(trimmed(zoneID))
		if err != nil {
			return "", nil, err
		}
		if !dimension.SupportsSubrooms(z.Type) {
			return "", nil, entities.NewValidationError("zone", fmt.Sprintf("%s zones cannot hold subrooms", z.Type))
		}
		z.Subrooms = append(z.Subrooms, s)
		warnings, err := refreshZone(z)
		if err != nil {
			return "", nil, err
		}
		return s.ID, warnings, nil
	})
}

func (u *HierarchyUseCase) DeleteSubroom(ctx context.Context, estimateID, subroomID string) (MutationResult, error) {
	return u.store.mutate(ctx, estimateID, "delete-subroom", func(est *entities.Estimate) (string, []entities.ConsistencyWarning, error) {
		z, err := est.RemoveSubroom(trimmed(subroomID))
		if err != nil {
			return "", nil, err
		}
		warnings, err := refreshZone(z)
		if err != nil {
			return "", nil, err
		}
		return z.ID, warnings, nil
	})
}
