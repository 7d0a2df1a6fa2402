package geom

import (
	"math"
	"testing"
)

func square(x, y, size float64) Polygon {
	return Polygon{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}
}

func TestMergeOverlapping(t *testing.T) {
	out := NewClipMerger().Merge([]Polygon{
		square(0, 0, 10),
		square(5, 5, 10),
	})
	if len(out) != 1 {
		t.Fatalf("got %d outlines, want 1", len(out))
	}
	// Two overlapping 10x10 squares with a 5x5 overlap.
	if area := math.Abs(out[0].Area()); math.Abs(area-175) > 1e-6 {
		t.Fatalf("union area %f, want 175", area)
	}
}

func TestMergeDisjoint(t *testing.T) {
	out := NewClipMerger().Merge([]Polygon{
		square(0, 0, 10),
		square(100, 100, 10),
	})
	if len(out) != 2 {
		t.Fatalf("got %d outlines, want 2", len(out))
	}
}

func TestMergeSkipsDegenerate(t *testing.T) {
	out := NewClipMerger().Merge([]Polygon{
		square(0, 0, 10),
		{{X: 1, Y: 1}, {X: 2, Y: 2}}, // two vertices, not a polygon
		nil,
	})
	if len(out) != 1 {
		t.Fatalf("got %d outlines, want 1", len(out))
	}
	if area := math.Abs(out[0].Area()); math.Abs(area-100) > 1e-6 {
		t.Fatalf("union area %f, want 100", area)
	}
}

func TestMergeEmpty(t *testing.T) {
	if out := NewClipMerger().Merge(nil); len(out) != 0 {
		t.Fatalf("got %d outlines, want 0", len(out))
	}
}

func TestPolygonArea(t *testing.T) {
	if area := math.Abs(square(0, 0, 4).Area()); math.Abs(area-16) > 1e-9 {
		t.Fatalf("area %f, want 16", area)
	}
}

func TestPolygonContains(t *testing.T) {
	p := square(0, 0, 10)
	if !p.Contains(Point{X: 5, Y: 5}) {
		t.Fatal("center should be inside")
	}
	if p.Contains(Point{X: 15, Y: 5}) {
		t.Fatal("outside point should not be inside")
	}
}

func TestPolygonCentroid(t *testing.T) {
	c := square(0, 0, 10).Centroid()
	if math.Abs(c.X-5) > 1e-9 || math.Abs(c.Y-5) > 1e-9 {
		t.Fatalf("centroid %v, want (5, 5)", c)
	}
}
