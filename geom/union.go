package geom

import (
	polyclip "github.com/ctessum/polyclip-go"
)

// Outline is the merged boundary of a set of polygons. Non-contiguous
// holdings produce multiple rings.
type Outline []Polygon

// Merger merges a set of cell polygons into one outline. The contract
// is graceful degradation: degenerate input polygons and failed merge
// steps are skipped, the merger never fails the caller.
type Merger interface {
	Merge(polys []Polygon) Outline
}

// ClipMerger implements Merger on top of polygon clipping
// (Martinez-Rueda via polyclip-go).
type ClipMerger struct{}

// NewClipMerger returns the default polygon merger.
func NewClipMerger() *ClipMerger {
	return &ClipMerger{}
}

// Merge unions all valid polygons into a single (possibly multi-ring)
// outline. Polygons with fewer than three vertices are skipped.
func (cm *ClipMerger) Merge(polys []Polygon) Outline {
	var acc polyclip.Polygon
	for _, p := range polys {
		if !p.Valid() {
			continue
		}
		cur := toClipPolygon(p)
		if len(acc) == 0 {
			acc = cur
			continue
		}
		merged := acc.Construct(polyclip.UNION, cur)
		if len(merged) == 0 {
			// A failed union step degrades the outline instead of
			// aborting the whole merge.
			continue
		}
		acc = merged
	}
	return fromClipPolygon(acc)
}

func toClipPolygon(p Polygon) polyclip.Polygon {
	contour := make(polyclip.Contour, 0, len(p))
	for _, pt := range p {
		contour = append(contour, polyclip.Point{X: pt.X, Y: pt.Y})
	}
	return polyclip.Polygon{contour}
}

func fromClipPolygon(p polyclip.Polygon) Outline {
	var out Outline
	for _, contour := range p {
		ring := make(Polygon, 0, len(contour))
		for _, pt := range contour {
			ring = append(ring, Point{X: pt.X, Y: pt.Y})
		}
		if ring.Valid() {
			out = append(out, ring)
		}
	}
	return out
}
