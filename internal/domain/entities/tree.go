package entities

import "slices"

// Clone returns a deep copy of the estimate so a mutation can be validated and applied on a
// private snapshot before anything is saved.
func (e Estimate) Clone() Estimate {
	out := e
	out.CarrierProfileID = clonePtr(e.CarrierProfileID)
	out.Coverages = slices.Clone(e.Coverages)
	out.Structures = make([]Structure, len(e.Structures))
	for i, s := range e.Structures {
		out.Structures[i] = s.clone()
	}
	return out
}

func (s Structure) clone() Structure {
	out := s
	out.Areas = make([]Area, len(s.Areas))
	for i, a := range s.Areas {
		out.Areas[i] = a.clone()
	}
	return out
}

func (a Area) clone() Area {
	out := a
	out.Zones = make([]Zone, len(a.Zones))
	for i, z := range a.Zones {
		out.Zones[i] = z.Clone()
	}
	return out
}

func (z Zone) Clone() Zone {
	out := z
	out.Dimensions = RawDimensions{
		Length: clonePtr(z.Dimensions.Length),
		Width:  clonePtr(z.Dimensions.Width),
		Height: clonePtr(z.Dimensions.Height),
	}
	out.Pitch = clonePtr(z.Pitch)
	out.Footprint = slices.Clone(z.Footprint)
	if z.Derived != nil {
		out.Derived = make(DerivedDimensions, len(z.Derived))
		for k, v := range z.Derived {
			out.Derived[k] = v
		}
	}
	out.Warnings = slices.Clone(z.Warnings)
	out.MissingWalls = make([]MissingWall, len(z.MissingWalls))
	for i, m := range z.MissingWalls {
		m.OpensInto = clonePtr(m.OpensInto)
		out.MissingWalls[i] = m
	}
	out.Subrooms = make([]Subroom, len(z.Subrooms))
	for i, s := range z.Subrooms {
		s.Height = clonePtr(s.Height)
		out.Subrooms[i] = s
	}
	out.LineItems = make([]LineItem, len(z.LineItems))
	for i, li := range z.LineItems {
		li.Age = clonePtr(li.Age)
		li.LifeExpectancy = clonePtr(li.LifeExpectancy)
		li.CoverageID = clonePtr(li.CoverageID)
		li.DimensionKey = clonePtr(li.DimensionKey)
		out.LineItems[i] = li
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Lookups return pointers into the receiver so callers can mutate the node in place.

func (e *Estimate) FindStructure(id string) (*Structure, error) {
	for i := range e.Structures {
		if e.Structures[i].ID == id {
			return &e.Structures[i], nil
		}
	}
	return nil, NewNotFoundError(KindStructure, id)
}

func (e *Estimate) FindArea(id string) (*Area, error) {
	for i := range e.Structures {
		for j := range e.Structures[i].Areas {
			if e.Structures[i].Areas[j].ID == id {
				return &e.Structures[i].Areas[j], nil
			}
		}
	}
	return nil, NewNotFoundError(KindArea, id)
}

func (e *Estimate) FindZone(id string) (*Zone, error) {
	var found *Zone
	e.WalkZones(func(z *Zone) bool {
		if z.ID == id {
			found = z
			return false
		}
		return true
	})
	if found == nil {
		return nil, NewNotFoundError(KindZone, id)
	}
	return found, nil
}

// FindLineItem returns the item and the zone that owns it.
func (e *Estimate) FindLineItem(id string) (*Zone, *LineItem, error) {
	var zone *Zone
	var item *LineItem
	e.WalkZones(func(z *Zone) bool {
		for i := range z.LineItems {
			if z.LineItems[i].ID == id {
				zone, item = z, &z.LineItems[i]
				return false
			}
		}
		return true
	})
	if item == nil {
		return nil, nil, NewNotFoundError(KindLineItem, id)
	}
	return zone, item, nil
}

func (e *Estimate) FindMissingWallZone(id string) (*Zone, error) {
	var zone *Zone
	e.WalkZones(func(z *Zone) bool {
		if slices.ContainsFunc(z.MissingWalls, func(m MissingWall) bool { return m.ID == id }) {
			zone = z
			return false
		}
		return true
	})
	if zone == nil {
		return nil, NewNotFoundError(KindMissingWall, id)
	}
	return zone, nil
}

func (e *Estimate) FindSubroomZone(id string) (*Zone, error) {
	var zone *Zone
	e.WalkZones(func(z *Zone) bool {
		if slices.ContainsFunc(z.Subrooms, func(s Subroom) bool { return s.ID == id }) {
			zone = z
			return false
		}
		return true
	})
	if zone == nil {
		return nil, NewNotFoundError(KindSubroom, id)
	}
	return zone, nil
}

func (e *Estimate) FindCoverage(id string) (*Coverage, error) {
	for i := range e.Coverages {
		if e.Coverages[i].ID == id {
			return &e.Coverages[i], nil
		}
	}
	return nil, NewNotFoundError(KindCoverage, id)
}

// WalkZones visits zones in tree order until fn returns false.
// Only ownership edges are followed; MissingWall.OpensInto is never traversed.
func (e *Estimate) WalkZones(fn func(z *Zone) bool) {
	for i := range e.Structures {
		for j := range e.Structures[i].Areas {
			zones := e.Structures[i].Areas[j].Zones
			for k := range zones {
				if !fn(&zones[k]) {
					return
				}
			}
		}
	}
}

func (e *Estimate) RemoveStructure(id string) error {
	n := len(e.Structures)
	e.Structures = slices.DeleteFunc(e.Structures, func(s Structure) bool { return s.ID == id })
	if len(e.Structures) == n {
		return NewNotFoundError(KindStructure, id)
	}
	return nil
}

func (e *Estimate) RemoveArea(id string) error {
	for i := range e.Structures {
		s := &e.Structures[i]
		n := len(s.Areas)
		s.Areas = slices.DeleteFunc(s.Areas, func(a Area) bool { return a.ID == id })
		if len(s.Areas) != n {
			return nil
		}
	}
	return NewNotFoundError(KindArea, id)
}

func (e *Estimate) RemoveZone(id string) error {
	for i := range e.Structures {
		for j := range e.Structures[i].Areas {
			a := &e.Structures[i].Areas[j]
			n := len(a.Zones)
			a.Zones = slices.DeleteFunc(a.Zones, func(z Zone) bool { return z.ID == id })
			if len(a.Zones) != n {
				return nil
			}
		}
	}
	return NewNotFoundError(KindZone, id)
}

// RemoveLineItem deletes the item and returns the zone that owned it.
func (e *Estimate) RemoveLineItem(id string) (*Zone, error) {
	zone, _, err := e.FindLineItem(id)
	if err != nil {
		return nil, err
	}
	zone.LineItems = slices.DeleteFunc(zone.LineItems, func(li LineItem) bool { return li.ID == id })
	return zone, nil
}

func (e *Estimate) RemoveMissingWall(id string) (*Zone, error) {
	zone, err := e.FindMissingWallZone(id)
	if err != nil {
		return nil, err
	}
	zone.MissingWalls = slices.DeleteFunc(zone.MissingWalls, func(m MissingWall) bool { return m.ID == id })
	return zone, nil
}

func (e *Estimate) RemoveSubroom(id string) (*Zone, error) {
	zone, err := e.FindSubroomZone(id)
	if err != nil {
		return nil, err
	}
	zone.Subrooms = slices.DeleteFunc(zone.Subrooms, func(s Subroom) bool { return s.ID == id })
	return zone, nil
}

// LineItems returns every line item of the estimate in tree order.
func (e *Estimate) LineItems() []LineItem {
	var out []LineItem
	e.WalkZones(func(z *Zone) bool {
		out = append(out, z.LineItems...)
		return true
	})
	return out
}
