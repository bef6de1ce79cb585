// Package coord implements the geo coordinate system: it projects region
// contours into view space, fits them into the viewport and tracks the
// roam (pan/zoom) state applied by geoRoam actions.
package coord

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"geodraw/internal/action"
	"geodraw/internal/geom"
)

const (
	DefaultScaleMin = 0.2
	DefaultScaleMax = 64
)

// Geo maps lon/lat into a pixel viewport. Projected space is (lon, -lat) so
// north points up on screen; Position and Scale map projected space to
// pixels.
type Geo struct {
	regions   []geom.Region
	projected []geom.Region
	bbox      geom.BBox

	viewport rect.Rect
	zoom     float64
	pan      vec.Vec2

	ScaleMin float64
	ScaleMax float64
}

func New(regions []geom.Region) *Geo {
	g := &Geo{
		zoom:     1,
		ScaleMin: DefaultScaleMin,
		ScaleMax: DefaultScaleMax,
	}
	g.SetRegions(regions)
	return g
}

// SetRegions replaces the region set and resets the roam state.
func (g *Geo) SetRegions(regions []geom.Region) {
	g.regions = regions
	g.bbox, _ = geom.Bounds(regions)
	g.projected = make([]geom.Region, len(regions))
	for i, r := range regions {
		pr := geom.Region{Name: r.Name, Contours: make([][]vec.Vec2, len(r.Contours))}
		for j, c := range r.Contours {
			pc := make([]vec.Vec2, len(c))
			for k, p := range c {
				pc[k] = vec.Vec2{X: p.X, Y: -p.Y}
			}
			pr.Contours[j] = pc
		}
		g.projected[i] = pr
	}
	g.Reset()
}

// Reset restores zoom 1 centred in the viewport.
func (g *Geo) Reset() {
	g.zoom = 1
	g.pan = vec.Vec2{}
}

// SetViewport sets the pixel rectangle the map is fitted into.
func (g *Geo) SetViewport(r rect.Rect) { g.viewport = r }

func (g *Geo) Viewport() rect.Rect { return g.viewport }

// Regions returns the projected regions; the slice must not be modified.
func (g *Geo) Regions() []geom.Region { return g.projected }

// Source returns the regions as loaded, in lon/lat.
func (g *Geo) Source() []geom.Region { return g.regions }

func (g *Geo) BBox() geom.BBox { return g.bbox }

func (g *Geo) Zoom() float64 { return g.zoom }

func (g *Geo) baseScale() float64 {
	bw := g.bbox.MaxX - g.bbox.MinX
	bh := g.bbox.MaxY - g.bbox.MinY
	vw := g.viewport.URx - g.viewport.LLx
	vh := g.viewport.URy - g.viewport.LLy
	if bw <= 0 || bh <= 0 || vw <= 0 || vh <= 0 {
		return 1
	}
	return min(vw/bw, vh/bh)
}

// Scale is the per-axis pixel scale of projected space.
func (g *Geo) Scale() vec.Vec2 {
	s := g.baseScale() * g.zoom
	return vec.Vec2{X: s, Y: s}
}

func (g *Geo) center() vec.Vec2 {
	return vec.Vec2{
		X: (g.bbox.MinX + g.bbox.MaxX) / 2,
		Y: -(g.bbox.MinY + g.bbox.MaxY) / 2,
	}
}

func (g *Geo) viewCenter() vec.Vec2 {
	return vec.Vec2{
		X: (g.viewport.LLx + g.viewport.URx) / 2,
		Y: (g.viewport.LLy + g.viewport.URy) / 2,
	}
}

// Position is the pixel offset of the projected origin.
func (g *Geo) Position() vec.Vec2 {
	s := g.Scale()
	c := g.center()
	vc := g.viewCenter()
	return vec.Vec2{
		X: vc.X + g.pan.X - c.X*s.X,
		Y: vc.Y + g.pan.Y - c.Y*s.Y,
	}
}

// ViewRect is the pixel rectangle currently covered by the map.
func (g *Geo) ViewRect() rect.Rect {
	s := g.Scale()
	p := g.Position()
	return rect.Rect{
		LLx: p.X + g.bbox.MinX*s.X,
		LLy: p.Y - g.bbox.MaxY*s.Y,
		URx: p.X + g.bbox.MaxX*s.X,
		URy: p.Y - g.bbox.MinY*s.Y,
	}
}

// DataToPoint converts lon/lat to pixels.
func (g *Geo) DataToPoint(lonLat vec.Vec2) vec.Vec2 {
	s := g.Scale()
	p := g.Position()
	return vec.Vec2{X: p.X + lonLat.X*s.X, Y: p.Y - lonLat.Y*s.Y}
}

// PointToData converts pixels back to lon/lat.
func (g *Geo) PointToData(pt vec.Vec2) (vec.Vec2, bool) {
	if !g.bbox.Valid() {
		return vec.Vec2{}, false
	}
	s := g.Scale()
	p := g.Position()
	return vec.Vec2{X: (pt.X - p.X) / s.X, Y: -(pt.Y - p.Y) / s.Y}, true
}

// ApplyRoam updates the view from a geoRoam action. Zoom keeps the origin
// pixel fixed and is clamped to [ScaleMin, ScaleMax].
func (g *Geo) ApplyRoam(a action.Action) {
	if a.Type != action.GeoRoam {
		return
	}
	if !a.IsZoom() {
		g.pan.X += a.DX
		g.pan.Y += a.DY
		return
	}
	next := g.zoom * a.Zoom
	if g.ScaleMin > 0 {
		next = max(next, g.ScaleMin)
	}
	if g.ScaleMax > 0 {
		next = min(next, g.ScaleMax)
	}
	if next == g.zoom {
		return
	}
	ratio := next / g.zoom
	o := vec.Vec2{X: a.OriginX, Y: a.OriginY}
	pos := g.Position()
	newPos := o.Add(pos.Sub(o).Mul(ratio))
	g.zoom = next
	s := g.Scale()
	c := g.center()
	vc := g.viewCenter()
	g.pan = vec.Vec2{
		X: newPos.X - vc.X + c.X*s.X,
		Y: newPos.Y - vc.Y + c.Y*s.Y,
	}
}
