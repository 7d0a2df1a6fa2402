package genrealmvoronoi

import (
	"log"

	goastar "github.com/beefsack/go-astar"

	"github.com/calvras/genrealmvoronoi/terrain"
)

// pathGrid caches one pathfinding node per cell. The pathfinder keys
// its bookkeeping on node identity, so the same cell must always map
// to the same node pointer.
type pathGrid struct {
	r     *Realm
	nodes []*cellNode
}

func newPathGrid(r *Realm) *pathGrid {
	return &pathGrid{r: r, nodes: make([]*cellNode, r.NumCells)}
}

func (g *pathGrid) node(cell int) *cellNode {
	if g.nodes[cell] == nil {
		g.nodes[cell] = &cellNode{grid: g, cell: cell}
	}
	return g.nodes[cell]
}

// cellNode adapts a land cell to the pathfinding interface.
type cellNode struct {
	grid *pathGrid
	cell int
}

// PathNeighbors returns the traversable neighbor cells. Routes stay on
// land.
func (n *cellNode) PathNeighbors() []goastar.Pather {
	r := n.grid.r
	var res []goastar.Pather
	for _, nb := range r.Neighbors[n.cell] {
		if r.IsCellWater(nb) {
			continue
		}
		res = append(res, n.grid.node(nb))
	}
	return res
}

// PathNeighborCost returns the cost of moving to a neighbor cell.
// Rough terrain is passable but expensive, so routes hug the lowlands.
func (n *cellNode) PathNeighborCost(to goastar.Pather) float64 {
	r := n.grid.r
	t := to.(*cellNode)
	cost := r.Centers[n.cell].Dist(r.Centers[t.cell])
	switch r.Biomes[t.cell] {
	case terrain.BiomeMountains:
		cost *= 4
	case terrain.BiomeHills, terrain.BiomeAridHills:
		cost *= 2
	}
	return cost
}

// PathEstimatedCost returns the heuristic cost to the target cell.
func (n *cellNode) PathEstimatedCost(to goastar.Pather) float64 {
	t := to.(*cellNode)
	return n.grid.r.Centers[n.cell].Dist(n.grid.r.Centers[t.cell])
}

// assignTradeRoutes connects every capital to every other capital with
// a shortest land path. Unreachable pairs are skipped.
func (r *Realm) assignTradeRoutes() {
	r.TradeRoutes = nil
	grid := newPathGrid(r)
	for i, a := range r.Kingdoms {
		for _, b := range r.Kingdoms[i+1:] {
			path, _, found := goastar.Path(
				grid.node(a.Capital.Cell),
				grid.node(b.Capital.Cell))
			if !found {
				log.Printf("no trade route between %s and %s", a.Name, b.Name)
				continue
			}
			route := make([]int, 0, len(path))
			for j := len(path) - 1; j >= 0; j-- {
				route = append(route, path[j].(*cellNode).cell)
			}
			r.TradeRoutes = append(r.TradeRoutes, route)
		}
	}
}
