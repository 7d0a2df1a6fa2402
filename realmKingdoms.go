package genrealmvoronoi

import (
	"fmt"
	"image/color"
	"log"

	"github.com/Flokey82/go_gens/genlanguage"
	"github.com/mazznoer/colorgrad"

	"github.com/calvras/genrealmvoronoi/geom"
	"github.com/calvras/genrealmvoronoi/terrain"
)

// Kingdom is a competing territory on the map. Geometry-derived fields
// (boundary, stats) are recomputed whenever the owned cell set changes.
type Kingdom struct {
	ID        int
	Name      string
	Color     color.NRGBA // primary banner color
	Accent    color.NRGBA // secondary banner color
	Language  *genlanguage.Language
	Capital   *Settlement
	Cities    []*Settlement
	Cells     []int        // owned cell ids
	Boundary  geom.Outline // merged outline of all owned cells (derived)
	Destroyed bool

	// Aggregate geography, derived from the owned cells.
	Centroid         geom.Point
	BoundsMin        geom.Point
	BoundsMax        geom.Point
	Area             float64
	MinElevation     float64
	MaxElevation     float64
	NeighborKingdoms []int
	Coastal          bool
	DominantBiome    terrain.Biome
	ClimateZone      terrain.Climate
}

// String returns a string representation of the kingdom.
func (k *Kingdom) String() string {
	return fmt.Sprintf("Kingdom of %s", k.Name)
}

// Log prints a summary of the kingdom.
func (k *Kingdom) Log() {
	log.Printf("The Kingdom of %s: %d cells, %d cities, capital: %s", k.Name, len(k.Cells), len(k.Cities), k.Capital.Name)
}

// placeKingdoms selects the capital cells and founds one kingdom per
// capital, with a name, a language, and a banner color pair.
func (r *Realm) placeKingdoms() {
	capitals := r.selectCapitalCells(r.NumKingdoms)

	grad := colorgrad.Rainbow()
	cols := grad.Colors(uint(len(capitals)))
	for i, cell := range capitals {
		lang := GenLanguage(r.Seed + int64(i))
		k := &Kingdom{
			ID:       i,
			Name:     lang.MakeName(),
			Language: lang,
			Color:    genColor(cols[i], 1.0),
			Accent:   genColor(cols[i], 0.6),
		}
		k.Capital = r.placeSettlementAt(cell, SettlementCapital, k)
		r.Kingdoms = append(r.Kingdoms, k)
	}
}
