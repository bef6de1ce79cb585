package tui

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"geodraw/internal/action"
	"geodraw/internal/graphic"
)

// layout computes the map area from the window size; View and Update must
// agree on it.
func (m *Model) layout() {
	headerHeight := 1
	footerHeight := 2
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}
	m.mapX = sw
	m.mapY = headerHeight
	m.mapW = max(10, contentWidth-sw-1)
	m.mapH = contentHeight
	size := graphic.MicroSize(m.mapW, m.mapH)
	m.geo.SetViewport(rect.Rect{URx: size.X, URy: size.Y})
}

// redraw rebuilds the scene from the current model and view.
func (m *Model) redraw() {
	m.draw.Draw(m.gm, m.geo)
}

// cellToMicro returns the micro-pixel centre of a screen cell and whether
// it lies inside the map area.
func (m Model) cellToMicro(x, y int) (vec.Vec2, bool) {
	cx, cy := x-m.mapX, y-m.mapY
	inside := cx >= 0 && cx < m.mapW && cy >= 0 && cy < m.mapH
	return vec.Vec2{X: float64(cx*2) + 1, Y: float64(cy*4) + 2}, inside
}

// applyActions drains the dispatch queue and applies roam actions to the
// coordinate system. It reports whether anything changed.
func (m *Model) applyActions() bool {
	acts := m.queue.Drain()
	for _, a := range acts {
		m.log.Debug("dispatch", "action", a)
		m.geo.ApplyRoam(a)
	}
	if len(acts) > 0 {
		m.redraw()
	}
	return len(acts) > 0
}

// roamKey dispatches a keyboard roam step for the current map, honouring
// the roam option like the pointer gestures do.
func (m *Model) roamKey(a action.Action) {
	pan, zoom := m.gm.RoamEnabled()
	if (a.IsZoom() && !zoom) || (!a.IsZoom() && !pan) {
		return
	}
	a.Type = action.GeoRoam
	a.Component = m.gm.MainType()
	a.Name = m.gm.Name()
	m.queue.Dispatch(a)
}

func (m Model) renderMap() string {
	return graphic.Paint(m.draw.Group(), m.mapW, m.mapH)
}

// updateHover refreshes the footer readout for the pointer at p.
func (m *Model) updateHover(p vec.Vec2, inside bool) {
	m.hoverName = ""
	m.hoverHasGeo = false
	if !inside {
		m.draw.Group().PointerMove(vec.Vec2{X: -1, Y: -1})
		return
	}
	if target := m.draw.Group().PointerMove(p); target != nil && target.Parent() != nil {
		m.hoverName = target.Parent().Name
	}
	if ll, ok := m.geo.PointToData(p); ok {
		m.hoverHasGeo = true
		m.hoverLon, m.hoverLat = ll.X, ll.Y
	}
}
