package genrealmvoronoi

import (
	"github.com/calvras/genrealmvoronoi/geom"
)

// assignBoundaries recomputes the merged boundary outline of the given
// kingdoms from their owned cell polygons. Only the listed kingdoms
// are touched, so a territory transfer recomputes just the two
// affected outlines instead of the whole map.
func (r *Realm) assignBoundaries(ids ...int) {
	for _, id := range ids {
		k := r.GetKingdom(id)
		if k == nil {
			continue
		}
		polys := make([]geom.Polygon, 0, len(k.Cells))
		for _, cell := range k.Cells {
			polys = append(polys, r.Polygons[cell])
		}
		k.Boundary = r.merger.Merge(polys)
	}
}
