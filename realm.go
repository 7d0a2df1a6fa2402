package genrealmvoronoi

import (
	"log"
	"math/rand"
	"time"

	"github.com/calvras/genrealmvoronoi/geom"
	"github.com/calvras/genrealmvoronoi/terrain"
)

// Realm is the political layer on top of the terrain: kingdoms, their
// settlements, and the cell ownership mapping. After generation it is
// only mutated by the sim's territory transfers, which run under the
// sim lock; concurrent readers go through the Map exports, which take
// the matching read lock.
type Realm struct {
	*RealmConfig
	*terrain.Terrain
	rng              *rand.Rand
	merger           geom.Merger
	Kingdoms         []*Kingdom
	CellToKingdom    []int // cell to kingdom id mapping (-1 = unowned)
	Settlements      []*Settlement
	TradeRoutes      [][]int // cell paths between capitals
	nextSettlementID int
}

// NewRealm returns a new political layer for the given terrain.
func NewRealm(t *terrain.Terrain, seed int64, cfg *RealmConfig) *Realm {
	if cfg == nil {
		cfg = NewRealmConfig()
	}
	return &Realm{
		RealmConfig:   cfg,
		Terrain:       t,
		rng:           rand.New(rand.NewSource(seed + 1)),
		merger:        geom.NewClipMerger(),
		CellToKingdom: initCellSlice(t.NumCells),
	}
}

// generateRealm runs the political generation steps in their required
// order: capitals, flood-fill territories, settlements, boundaries.
func (r *Realm) generateRealm() {
	start := time.Now()
	r.placeKingdoms()
	log.Println("Done capitals in ", time.Since(start).String())

	start = time.Now()
	r.expandTerritories()
	log.Println("Done territories in ", time.Since(start).String())

	start = time.Now()
	r.placeCities()
	log.Println("Done cities in ", time.Since(start).String())

	start = time.Now()
	r.assignBoundaries(r.kingdomIDs()...)
	log.Println("Done boundaries in ", time.Since(start).String())

	start = time.Now()
	r.assignKingdomStats(r.kingdomIDs()...)
	log.Println("Done kingdom stats in ", time.Since(start).String())

	if r.EnableTradeRoutes {
		start = time.Now()
		r.assignTradeRoutes()
		log.Println("Done trade routes in ", time.Since(start).String())
	}
}

// GetKingdom returns the kingdom with the given id, or nil.
func (r *Realm) GetKingdom(id int) *Kingdom {
	if id < 0 || id >= len(r.Kingdoms) {
		return nil
	}
	return r.Kingdoms[id]
}

// GetSettlement returns the settlement with the given id, or nil.
func (r *Realm) GetSettlement(id int) *Settlement {
	for _, s := range r.Settlements {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (r *Realm) kingdomIDs() []int {
	ids := make([]int, len(r.Kingdoms))
	for i := range ids {
		ids[i] = i
	}
	return ids
}
