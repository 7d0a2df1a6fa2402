package terrain

import (
	"math"
	"math/rand"

	"github.com/fogleman/delaunay"

	"github.com/calvras/genrealmvoronoi/geom"
)

// Mesh is the planar Voronoi tessellation of the map canvas. Cell
// geometry and adjacency are fixed for the life of a generated world;
// only ownership changes later on.
type Mesh struct {
	Width     float64
	Height    float64
	NumCells  int
	Centers   []geom.Point   // cell site per cell (post relaxation)
	Polygons  []geom.Polygon // cell polygon per cell, clipped to the canvas
	Neighbors [][]int        // symmetric cell adjacency
}

// newMesh samples numPoints sites, runs the requested number of
// centroidal relaxation passes and derives the final diagram.
func newMesh(rng *rand.Rand, width, height float64, numPoints, relaxationPasses int) (*Mesh, error) {
	sites := make([]geom.Point, numPoints)
	for i := range sites {
		sites[i] = geom.Point{X: rng.Float64() * width, Y: rng.Float64() * height}
	}

	// Relax the sites by replacing each with its cell centroid. This
	// evens out the cell sizes and avoids needle-thin cells.
	for pass := 0; pass < relaxationPasses; pass++ {
		tri, err := triangulate(sites, width, height)
		if err != nil {
			return nil, err
		}
		for i, p := range cellPolygons(tri, len(sites), width, height) {
			if p.Valid() {
				sites[i] = p.Centroid()
			}
		}
	}

	tri, err := triangulate(sites, width, height)
	if err != nil {
		return nil, err
	}
	return &Mesh{
		Width:     width,
		Height:    height,
		NumCells:  numPoints,
		Centers:   sites,
		Polygons:  cellPolygons(tri, numPoints, width, height),
		Neighbors: cellNeighbors(tri, numPoints),
	}, nil
}

// triangulate runs a Delaunay triangulation over the sites plus a frame
// of padding points outside the canvas. The frame closes off the convex
// hull so every real cell ends up with a bounded Voronoi polygon.
func triangulate(sites []geom.Point, width, height float64) (*delaunay.Triangulation, error) {
	spacing := math.Sqrt(width * height / float64(len(sites)))
	margin := 2 * spacing

	pts := make([]delaunay.Point, 0, len(sites)+64)
	for _, s := range sites {
		pts = append(pts, delaunay.Point{X: s.X, Y: s.Y})
	}
	for x := -margin; x <= width+margin; x += spacing {
		pts = append(pts,
			delaunay.Point{X: x, Y: -margin},
			delaunay.Point{X: x, Y: height + margin})
	}
	for y := -margin + spacing; y < height+margin-spacing/2; y += spacing {
		pts = append(pts,
			delaunay.Point{X: -margin, Y: y},
			delaunay.Point{X: width + margin, Y: y})
	}
	return delaunay.Triangulate(pts)
}

// nextHalfedge returns the next halfedge within the same triangle.
func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// triangleCircumcenters returns the circumcenter of every triangle,
// which double as the Voronoi cell vertices.
func triangleCircumcenters(tri *delaunay.Triangulation) []geom.Point {
	centers := make([]geom.Point, len(tri.Triangles)/3)
	for t := range centers {
		a := tri.Points[tri.Triangles[3*t]]
		b := tri.Points[tri.Triangles[3*t+1]]
		c := tri.Points[tri.Triangles[3*t+2]]
		centers[t] = circumcenter(a, b, c)
	}
	return centers
}

func circumcenter(a, b, c delaunay.Point) geom.Point {
	ad := a.X*a.X + a.Y*a.Y
	bd := b.X*b.X + b.Y*b.Y
	cd := c.X*c.X + c.Y*c.Y
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		// Degenerate (collinear) triangle, fall back to the vertex mean.
		return geom.Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
	}
	return geom.Point{
		X: (ad*(b.Y-c.Y) + bd*(c.Y-a.Y) + cd*(a.Y-b.Y)) / d,
		Y: (ad*(c.X-b.X) + bd*(a.X-c.X) + cd*(b.X-a.X)) / d,
	}
}

// cellPolygons walks the halfedges around every real site and collects
// the circumcenters of its incident triangles, producing the Voronoi
// cell polygon. Cells that cannot be closed stay empty.
func cellPolygons(tri *delaunay.Triangulation, numCells int, width, height float64) []geom.Polygon {
	circum := triangleCircumcenters(tri)

	// Map each site to one of its incoming halfedges.
	incoming := make([]int, numCells)
	for i := range incoming {
		incoming[i] = -1
	}
	for e := range tri.Triangles {
		endpoint := tri.Triangles[nextHalfedge(e)]
		if endpoint < numCells && (incoming[endpoint] == -1 || tri.Halfedges[e] == -1) {
			incoming[endpoint] = e
		}
	}

	polys := make([]geom.Polygon, numCells)
	for i := 0; i < numCells; i++ {
		start := incoming[i]
		if start == -1 {
			continue
		}
		var ring geom.Polygon
		e := start
		for {
			ring = append(ring, circum[e/3])
			e = tri.Halfedges[nextHalfedge(e)]
			if e == -1 || e == start {
				break
			}
			// Guard against walking a malformed edge loop forever.
			if len(ring) > 64 {
				ring = nil
				break
			}
		}
		if clipped := clipToCanvas(ring, width, height); clipped.Valid() {
			polys[i] = clipped
		}
	}
	return polys
}

// cellNeighbors derives the symmetric adjacency lists from the
// triangulation edges. Every interior Delaunay edge contributes both
// directions, so the relation is symmetric by construction.
func cellNeighbors(tri *delaunay.Triangulation, numCells int) [][]int {
	nbs := make([][]int, numCells)
	for e := range tri.Triangles {
		p := tri.Triangles[e]
		q := tri.Triangles[nextHalfedge(e)]
		if p < numCells && q < numCells && p != q {
			nbs[p] = append(nbs[p], q)
		}
	}
	return nbs
}

// clipToCanvas clips a polygon against the canvas rectangle
// (Sutherland-Hodgman). Frame-adjacent cells get trimmed back to the
// canvas instead of leaking past the border.
func clipToCanvas(p geom.Polygon, width, height float64) geom.Polygon {
	if len(p) == 0 {
		return nil
	}
	type edgeFunc struct {
		inside    func(geom.Point) bool
		intersect func(a, b geom.Point) geom.Point
	}
	edges := []edgeFunc{
		{
			inside: func(pt geom.Point) bool { return pt.X >= 0 },
			intersect: func(a, b geom.Point) geom.Point {
				t := (0 - a.X) / (b.X - a.X)
				return geom.Point{X: 0, Y: a.Y + t*(b.Y-a.Y)}
			},
		},
		{
			inside: func(pt geom.Point) bool { return pt.X <= width },
			intersect: func(a, b geom.Point) geom.Point {
				t := (width - a.X) / (b.X - a.X)
				return geom.Point{X: width, Y: a.Y + t*(b.Y-a.Y)}
			},
		},
		{
			inside: func(pt geom.Point) bool { return pt.Y >= 0 },
			intersect: func(a, b geom.Point) geom.Point {
				t := (0 - a.Y) / (b.Y - a.Y)
				return geom.Point{X: a.X + t*(b.X-a.X), Y: 0}
			},
		},
		{
			inside: func(pt geom.Point) bool { return pt.Y <= height },
			intersect: func(a, b geom.Point) geom.Point {
				t := (height - a.Y) / (b.Y - a.Y)
				return geom.Point{X: a.X + t*(b.X-a.X), Y: height}
			},
		},
	}

	out := p
	for _, edge := range edges {
		in := out
		out = nil
		for i, cur := range in {
			prev := in[(i+len(in)-1)%len(in)]
			curIn := edge.inside(cur)
			prevIn := edge.inside(prev)
			if curIn {
				if !prevIn {
					out = append(out, edge.intersect(prev, cur))
				}
				out = append(out, cur)
			} else if prevIn {
				out = append(out, edge.intersect(prev, cur))
			}
		}
		if len(out) == 0 {
			return nil
		}
	}
	return out
}
