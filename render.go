package genrealmvoronoi

import (
	"image"
	"image/color"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/calvras/genrealmvoronoi/geom"
	"github.com/calvras/genrealmvoronoi/terrain"
)

// RenderImage draws the full map to an image: terrain-colored cells,
// a kingdom tint over owned territory, kingdom boundary outlines,
// trade routes and settlement markers. It holds the sim's read lock
// so a render never observes a half-applied territory transfer.
func (m *Map) RenderImage(scale float64) image.Image {
	m.Sim.mu.RLock()
	defer m.Sim.mu.RUnlock()
	r := m.Realm
	dest := image.NewRGBA(image.Rect(0, 0, int(r.Width*scale), int(r.Height*scale)))
	gc := draw2dimg.NewGraphicContext(dest)

	// Ocean backdrop, so degenerate cells don't leave holes.
	gc.SetFillColor(terrain.RenderColor(terrain.BiomeDeepOcean, terrain.ClimateCentral, 0, 0))
	gc.MoveTo(0, 0)
	gc.LineTo(r.Width*scale, 0)
	gc.LineTo(r.Width*scale, r.Height*scale)
	gc.LineTo(0, r.Height*scale)
	gc.Close()
	gc.Fill()

	// Terrain cells.
	gc.SetLineWidth(1)
	for i, p := range r.Polygons {
		if !p.Valid() {
			continue
		}
		col := terrain.RenderColor(r.Biomes[i], r.Climates[i], r.Elevation[i], r.Moisture[i])
		if k := r.GetKingdom(r.CellToKingdom[i]); k != nil && !k.Destroyed {
			col = blendColor(col, k.Color, 0.35)
		}
		gc.SetStrokeColor(col)
		gc.SetFillColor(col)
		drawPolygon(gc, p, scale)
		gc.FillStroke()
	}

	// Decorative landmasses near the edges.
	for _, p := range r.DistantLandmasses {
		col := terrain.RenderColor(terrain.BiomePlains, terrain.ClimateCentral, 0.3, 0.5)
		gc.SetStrokeColor(col)
		gc.SetFillColor(col)
		drawPolygon(gc, p, scale)
		gc.FillStroke()
	}

	// Trade routes under the borders.
	gc.SetStrokeColor(color.NRGBA{120, 90, 40, 180})
	gc.SetLineWidth(1.5 * scale)
	for _, route := range r.TradeRoutes {
		if len(route) < 2 {
			continue
		}
		c := r.Centers[route[0]]
		gc.BeginPath()
		gc.MoveTo(c.X*scale, c.Y*scale)
		for _, cell := range route[1:] {
			c = r.Centers[cell]
			gc.LineTo(c.X*scale, c.Y*scale)
		}
		gc.Stroke()
	}

	// Coastline.
	gc.SetStrokeColor(color.NRGBA{30, 30, 60, 255})
	gc.SetLineWidth(1.2 * scale)
	for _, ring := range r.Coastline {
		drawPolygon(gc, ring, scale)
		gc.Stroke()
	}

	// Kingdom boundaries in the kingdom's accent color.
	for _, k := range r.Kingdoms {
		if k.Destroyed {
			continue
		}
		gc.SetStrokeColor(k.Accent)
		gc.SetLineWidth(2 * scale)
		for _, ring := range k.Boundary {
			drawPolygon(gc, ring, scale)
			gc.Stroke()
		}
	}

	// Settlement markers on top. Capitals get the bigger dot.
	for _, s := range r.Settlements {
		if s.Kind == SettlementRuin {
			continue
		}
		radius := 3.0 * scale
		if s.Kind == SettlementCapital {
			radius = 5.0 * scale
		}
		col := color.NRGBA{40, 40, 40, 255}
		if k := r.GetKingdom(s.Kingdom); k != nil {
			col = k.Accent
		}
		gc.SetFillColor(col)
		gc.SetStrokeColor(color.NRGBA{255, 255, 255, 255})
		gc.SetLineWidth(1 * scale)
		gc.BeginPath()
		gc.ArcTo(s.Position.X*scale, s.Position.Y*scale, radius, radius, 0, 2*math.Pi)
		gc.Close()
		gc.FillStroke()
	}

	return dest
}

// drawPolygon traces the polygon as a closed path, scaled.
func drawPolygon(gc *draw2dimg.GraphicContext, p geom.Polygon, scale float64) {
	gc.BeginPath()
	gc.MoveTo(p[0].X*scale, p[0].Y*scale)
	for _, pt := range p[1:] {
		gc.LineTo(pt.X*scale, pt.Y*scale)
	}
	gc.Close()
}

// blendColor mixes t of the overlay color into the base color.
func blendColor(base, overlay color.NRGBA, t float64) color.NRGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t)
	}
	return color.NRGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: 255,
	}
}
