package genrealmvoronoi

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/calvras/genrealmvoronoi/geom"
)

// The exports read realm fields that territory transfers rewrite in
// place (cell ownership, kingdom cell sets, boundaries), so they hold
// the sim's read lock for the duration of the read.

// GetGeoJSONSettlements returns all settlements as GeoJSON point
// features. Ruins are included so a UI can show battlefield history.
func (m *Map) GetGeoJSONSettlements() ([]byte, error) {
	m.Sim.mu.RLock()
	defer m.Sim.mu.RUnlock()
	geoJSON := geojson.NewFeatureCollection()
	for _, s := range m.Realm.Settlements {
		f := geojson.NewPointFeature([]float64{s.Position.X, s.Position.Y})
		f.SetProperty("id", s.ID)
		f.SetProperty("name", s.Name)
		f.SetProperty("kind", s.Kind.String())
		f.SetProperty("biome", s.Biome.String())
		if k := m.Realm.GetKingdom(s.Kingdom); k != nil {
			f.SetProperty("kingdom", k.Name)
		}
		if ls := m.Sim.GetLocationState(s.ID); ls != nil {
			f.SetProperty("condition", ls.Condition.String())
			f.SetProperty("population", ls.Population)
			f.SetProperty("defense", ls.Defense)
		}
		geoJSON.AddFeature(f)
	}
	return geoJSON.MarshalJSON()
}

// GetGeoJSONBorders returns the kingdom boundary outlines as GeoJSON
// line string features, one feature per outline ring. Destroyed
// kingdoms are skipped.
func (m *Map) GetGeoJSONBorders() ([]byte, error) {
	m.Sim.mu.RLock()
	defer m.Sim.mu.RUnlock()
	geoJSON := geojson.NewFeatureCollection()
	for _, k := range m.Realm.Kingdoms {
		if k.Destroyed {
			continue
		}
		for _, ring := range k.Boundary {
			f := geojson.NewLineStringFeature(closedRing(ring))
			f.ID = k.ID
			f.SetProperty("kingdom", k.Name)
			geoJSON.AddFeature(f)
		}
	}
	return geoJSON.MarshalJSON()
}

// GetGeoJSONCoastline returns the continent coastline as GeoJSON line
// string features.
func (m *Map) GetGeoJSONCoastline() ([]byte, error) {
	m.Sim.mu.RLock()
	defer m.Sim.mu.RUnlock()
	geoJSON := geojson.NewFeatureCollection()
	for i, ring := range m.Realm.Coastline {
		f := geojson.NewLineStringFeature(closedRing(ring))
		f.ID = i
		geoJSON.AddFeature(f)
	}
	return geoJSON.MarshalJSON()
}

// GetGeoJSONCells returns the full cell graph as GeoJSON polygon
// features with elevation, biome and ownership properties.
func (m *Map) GetGeoJSONCells() ([]byte, error) {
	m.Sim.mu.RLock()
	defer m.Sim.mu.RUnlock()
	geoJSON := geojson.NewFeatureCollection()
	for i, p := range m.Realm.Polygons {
		if !p.Valid() {
			continue
		}
		f := geojson.NewPolygonFeature([][][]float64{closedRing(p)})
		f.ID = i
		f.SetProperty("elevation", m.Realm.Elevation[i])
		f.SetProperty("biome", m.Realm.Biomes[i].String())
		f.SetProperty("water", m.Realm.IsCellWater(i))
		if k := m.Realm.GetKingdom(m.Realm.CellToKingdom[i]); k != nil {
			f.SetProperty("kingdom", k.Name)
		}
		geoJSON.AddFeature(f)
	}
	return geoJSON.MarshalJSON()
}

// GetGeoJSONTradeRoutes returns the trade routes as GeoJSON line
// string features tracing the cell centers along each route.
func (m *Map) GetGeoJSONTradeRoutes() ([]byte, error) {
	m.Sim.mu.RLock()
	defer m.Sim.mu.RUnlock()
	geoJSON := geojson.NewFeatureCollection()
	for i, route := range m.Realm.TradeRoutes {
		var coords [][]float64
		for _, cell := range route {
			c := m.Realm.Centers[cell]
			coords = append(coords, []float64{c.X, c.Y})
		}
		f := geojson.NewLineStringFeature(coords)
		f.ID = i
		geoJSON.AddFeature(f)
	}
	return geoJSON.MarshalJSON()
}

// closedRing converts a polygon to coordinate pairs with the first
// vertex repeated at the end, as GeoJSON rings expect.
func closedRing(p geom.Polygon) [][]float64 {
	coords := make([][]float64, 0, len(p)+1)
	for _, pt := range p {
		coords = append(coords, []float64{pt.X, pt.Y})
	}
	if len(coords) > 0 {
		coords = append(coords, coords[0])
	}
	return coords
}
