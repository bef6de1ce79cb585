// Package graphic is a small retained scene graph: groups carry a
// position/scale transform and event listeners, polygons carry geometry and
// a normal and an emphasis style.
package graphic

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Node is either a *Group or a *Polygon.
type Node interface {
	Parent() *Group
	setParent(*Group)
	setDataIndex(int)
}

type Group struct {
	Name      string
	Position  vec.Vec2
	Scale     vec.Vec2
	DataIndex int

	children  []Node
	parent    *Group
	listeners Listeners

	emphasis       bool
	emphasisLocked bool
	hovered        *Polygon
}

func NewGroup() *Group {
	return &Group{Scale: vec.Vec2{X: 1, Y: 1}, DataIndex: -1}
}

func (g *Group) Parent() *Group       { return g.parent }
func (g *Group) setParent(p *Group)   { g.parent = p }
func (g *Group) Children() []Node     { return g.children }
func (g *Group) setDataIndex(idx int) { g.SetDataIndex(idx) }

func (g *Group) Add(n Node) {
	if old := n.Parent(); old != nil {
		old.remove(n)
	}
	n.setParent(g)
	g.children = append(g.children, n)
}

func (g *Group) remove(n Node) {
	for i, c := range g.children {
		if c == n {
			g.children = append(g.children[:i], g.children[i+1:]...)
			n.setParent(nil)
			return
		}
	}
}

// RemoveAll detaches every child. Detached elements get no further
// pointer events from this group.
func (g *Group) RemoveAll() {
	for _, c := range g.children {
		c.setParent(nil)
	}
	g.children = nil
	g.hovered = nil
}

// SetDataIndex tags the group and all its descendants with a datum index.
func (g *Group) SetDataIndex(idx int) {
	g.DataIndex = idx
	for _, c := range g.children {
		c.setDataIndex(idx)
	}
}

// On adds a listener for typ.
func (g *Group) On(typ EventType, fn func(*Event)) {
	g.listeners.Add(typ, fn)
}

// Off removes every listener for typ.
func (g *Group) Off(typ EventType) {
	g.listeners.Remove(typ)
}

// ListenerCount returns the number of listeners attached for typ.
func (g *Group) ListenerCount(typ EventType) int {
	return g.listeners.Count(typ)
}

// Trigger fires typ on g only, without a target and without bubbling.
func (g *Group) Trigger(typ EventType) {
	g.listeners.Call(&Event{Type: typ})
}

// Polygons returns every polygon below g in paint order.
func (g *Group) Polygons() []*Polygon {
	var out []*Polygon
	var walk func(*Group)
	walk = func(n *Group) {
		for _, c := range n.children {
			switch c := c.(type) {
			case *Polygon:
				out = append(out, c)
			case *Group:
				walk(c)
			}
		}
	}
	walk(g)
	return out
}

// Transform maps g's local space into its parent's space.
func (g *Group) Transform() matrix.Matrix {
	sx, sy := g.Scale.X, g.Scale.Y
	if sx == 0 && sy == 0 {
		sx, sy = 1, 1
	}
	return matrix.Matrix{sx, 0, 0, sy, g.Position.X, g.Position.Y}
}

// GlobalTransform maps g's local space into root space.
func (g *Group) GlobalTransform() matrix.Matrix {
	m := g.Transform()
	for p := g.parent; p != nil; p = p.parent {
		m = concat(m, p.Transform())
	}
	return m
}

// concat returns the transform applying a first, then b.
func concat(a, b matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

func invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return matrix.Matrix{}, false
	}
	a, b, c, d := m[3]/det, -m[1]/det, -m[2]/det, m[0]/det
	return matrix.Matrix{a, b, c, d, -(m[4]*a + m[5]*c), -(m[4]*b + m[5]*d)}, true
}

// InEmphasis reports the group's current visual state.
func (g *Group) InEmphasis() bool { return g.emphasis }

func (g *Group) setEmphasis(on bool) {
	g.emphasis = on
	for _, p := range g.Polygons() {
		p.emphasis = on
	}
}

// Polygon is one closed contour.
type Polygon struct {
	Points    []vec.Vec2
	DataIndex int

	style    Style
	hover    Style
	emphasis bool
	parent   *Group
}

func NewPolygon(points []vec.Vec2) *Polygon {
	return &Polygon{Points: points, DataIndex: -1}
}

func (p *Polygon) Parent() *Group       { return p.parent }
func (p *Polygon) setParent(g *Group)   { p.parent = g }
func (p *Polygon) setDataIndex(idx int) { p.DataIndex = idx }

func (p *Polygon) SetStyle(s Style)  { p.style = s }
func (p *Polygon) Style() Style      { return p.style }
func (p *Polygon) HoverStyle() Style { return p.hover }
func (p *Polygon) InEmphasis() bool  { return p.emphasis }

// CurrentStyle is the style to paint with. In emphasis the hover style is
// layered on the normal one; a missing hover fill lifts the normal fill.
func (p *Polygon) CurrentStyle() Style {
	if !p.emphasis {
		return p.style
	}
	s := p.style.Merge(p.hover)
	if p.hover.Fill == "" {
		s.Fill = Lift(p.style.Fill)
	}
	return s
}

// Path returns the closed outline in local coordinates.
func (p *Polygon) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for i, pt := range p.Points {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			buf[0] = pt
			if !yield(cmd, buf[:]) {
				return
			}
		}
		if len(p.Points) > 0 {
			yield(path.CmdClose, nil)
		}
	}
}

// Bounds is the local bounding box.
func (p *Polygon) Bounds() rect.Rect {
	var r rect.Rect
	for i, pt := range p.Points {
		if i == 0 {
			r = rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
			continue
		}
		r.LLx = min(r.LLx, pt.X)
		r.LLy = min(r.LLy, pt.Y)
		r.URx = max(r.URx, pt.X)
		r.URy = max(r.URy, pt.Y)
	}
	return r
}

// Contains tests a local point with the even-odd rule.
func (p *Polygon) Contains(pt vec.Vec2) bool {
	in := false
	n := len(p.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}
