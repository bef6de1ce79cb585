// Package roam recognises pan (drag) and zoom (wheel) gestures inside a
// rectangle and reports them through two callback slots.
package roam

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ZoomStep is the scale factor of one wheel notch.
const ZoomStep = 1.1

type PanFunc func(dx, dy float64)

// ZoomFunc receives the zoom factor and the pointer position to pivot on.
type ZoomFunc func(zoom, originX, originY float64)

type PointerKind int

const (
	Press PointerKind = iota
	Move
	Release
	WheelUp
	WheelDown
)

// Pointer is one input event in the same space as the controller rect.
type Pointer struct {
	Kind PointerKind
	X, Y float64
	// Left is set when the primary button is involved.
	Left bool
}

// Controller is meant to live as long as the view. Only its callbacks and
// rect change between draws, so a drag in progress survives a redraw.
type Controller struct {
	rect rect.Rect
	pan  PanFunc
	zoom ZoomFunc

	// PanEnabled and ZoomEnabled gate the two channels.
	PanEnabled  bool
	ZoomEnabled bool

	dragging bool
	last     vec.Vec2
}

func New() *Controller {
	return &Controller{PanEnabled: true, ZoomEnabled: true}
}

// SetRect sets the hit-test rectangle.
func (c *Controller) SetRect(r rect.Rect) { c.rect = r }

func (c *Controller) Rect() rect.Rect { return c.rect }

// Rebind detaches any previous pan and zoom callbacks and attaches the
// given ones. A nil callback leaves that channel unbound.
func (c *Controller) Rebind(pan PanFunc, zoom ZoomFunc) {
	c.Off()
	c.pan = pan
	c.zoom = zoom
}

// Off detaches both callbacks.
func (c *Controller) Off() {
	c.pan = nil
	c.zoom = nil
}

// Bound reports which channels have a callback attached.
func (c *Controller) Bound() (pan, zoom bool) {
	return c.pan != nil, c.zoom != nil
}

// Dragging reports whether the pan channel is active.
func (c *Controller) Dragging() bool { return c.dragging }

func (c *Controller) contains(x, y float64) bool {
	return x >= c.rect.LLx && x <= c.rect.URx && y >= c.rect.LLy && y <= c.rect.URy
}

// Handle feeds one pointer event through the recognizer and reports
// whether it was consumed as part of a gesture.
func (c *Controller) Handle(p Pointer) bool {
	switch p.Kind {
	case Press:
		if !p.Left || !c.PanEnabled || !c.contains(p.X, p.Y) {
			return false
		}
		c.dragging = true
		c.last = vec.Vec2{X: p.X, Y: p.Y}
		return true
	case Move:
		if !c.dragging {
			return false
		}
		dx, dy := p.X-c.last.X, p.Y-c.last.Y
		if dx == 0 && dy == 0 {
			return true
		}
		c.last = vec.Vec2{X: p.X, Y: p.Y}
		if c.pan != nil {
			c.pan(dx, dy)
		}
		return true
	case Release:
		was := c.dragging
		c.dragging = false
		return was
	case WheelUp, WheelDown:
		if !c.ZoomEnabled || !c.contains(p.X, p.Y) {
			return false
		}
		z := ZoomStep
		if p.Kind == WheelDown {
			z = 1 / ZoomStep
		}
		if c.zoom != nil {
			c.zoom(z, p.X, p.Y)
		}
		return true
	}
	return false
}
