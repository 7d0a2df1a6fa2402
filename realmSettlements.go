package genrealmvoronoi

import (
	"fmt"

	"github.com/calvras/genrealmvoronoi/geom"
	"github.com/calvras/genrealmvoronoi/terrain"
)

// SettlementKind distinguishes the settlement types on the map.
type SettlementKind int

const (
	SettlementCapital SettlementKind = iota
	SettlementCity
	SettlementRuin
)

func (k SettlementKind) String() string {
	switch k {
	case SettlementCapital:
		return "capital"
	case SettlementCity:
		return "city"
	case SettlementRuin:
		return "ruin"
	}
	return "unknown"
}

// Settlement is a named site bound to a cell. Ruins are detached from
// the cell graph and only kept for display.
type Settlement struct {
	ID       int
	Name     string
	Kind     SettlementKind
	Cell     int // cell id, -1 for ruins
	Position geom.Point
	Kingdom  int // owning kingdom id, -1 for ruins
	Biome    terrain.Biome
	Climate  terrain.Climate
}

func (s *Settlement) String() string {
	return fmt.Sprintf("%s of %s", s.Kind, s.Name)
}

// placeSettlementAt founds a settlement on the given cell, claims the
// cell for the kingdom and registers the settlement.
func (r *Realm) placeSettlementAt(cell int, kind SettlementKind, k *Kingdom) *Settlement {
	s := &Settlement{
		ID:       r.nextSettlementID,
		Name:     k.Language.MakeCityName(),
		Kind:     kind,
		Cell:     cell,
		Position: r.Centers[cell],
		Kingdom:  k.ID,
		Biome:    r.Biomes[cell],
		Climate:  r.Climates[cell],
	}
	r.nextSettlementID++
	r.CellToKingdom[cell] = k.ID
	r.Settlements = append(r.Settlements, s)
	return s
}

// placeCities founds the configured number of cities per kingdom on
// owned land cells, preferring cells far from existing settlements.
// Kingdoms too small to host all their cities get fewer.
func (r *Realm) placeCities() {
	for _, k := range r.Kingdoms {
		for i := 0; i < r.CitiesPerKingdom; i++ {
			cell := r.selectCityCell(k)
			if cell == -1 {
				break
			}
			k.Cities = append(k.Cities, r.placeSettlementAt(cell, SettlementCity, k))
		}
	}
}

// selectCityCell picks the owned cell farthest from the kingdom's
// existing settlements, or -1 if no free cell is left.
func (r *Realm) selectCityCell(k *Kingdom) int {
	occupied := []int{k.Capital.Cell}
	for _, c := range k.Cities {
		occupied = append(occupied, c.Cell)
	}

	best := -1
	bestDist := -1.0
	for _, cell := range k.Cells {
		if isInIntList(occupied, cell) {
			continue
		}
		dist := r.minDistToCells(cell, occupied)
		if dist > bestDist {
			best, bestDist = cell, dist
		}
	}
	return best
}

// settlementsOnCell returns all settlements bound to the given cell.
func (r *Realm) settlementsOnCell(cell int) []*Settlement {
	var res []*Settlement
	for _, s := range r.Settlements {
		if s.Cell == cell {
			res = append(res, s)
		}
	}
	return res
}

// reassignSettlement hands a settlement over to a new owner, removing
// it from the old owner's city list. Captured capitals are demoted to
// plain cities.
func (r *Realm) reassignSettlement(s *Settlement, newKingdom int) {
	if old := r.GetKingdom(s.Kingdom); old != nil {
		old.Cities = removeSettlement(old.Cities, s)
	}
	s.Kingdom = newKingdom
	if s.Kind == SettlementCapital {
		s.Kind = SettlementCity
	}
	if k := r.GetKingdom(newKingdom); k != nil {
		k.Cities = append(k.Cities, s)
	}
}

func removeSettlement(list []*Settlement, s *Settlement) []*Settlement {
	for i, v := range list {
		if v == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// ruinSettlement turns a settlement into a ruin marker: renamed,
// owned by nobody, detached from the cell graph and moved off the
// canvas so renderers drop it by default.
func (r *Realm) ruinSettlement(s *Settlement) {
	s.Name = "Ruins of " + s.Name
	s.Kind = SettlementRuin
	s.Kingdom = -1
	s.Cell = -1
	s.Position = geom.Point{X: -100, Y: -100}
}
