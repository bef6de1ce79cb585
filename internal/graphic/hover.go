package graphic

import "seehuhn.de/go/geom/vec"

// SetHoverStyle gives every polygon in g the emphasis style hover and wires
// g's state switching. MouseOver/MouseOut toggle emphasis unless the group
// was put into emphasis by Trigger(Emphasis); that stays until
// Trigger(Normal).
func SetHoverStyle(g *Group, hover Style) {
	for _, p := range g.Polygons() {
		p.hover = hover
	}
	for _, typ := range []EventType{MouseOver, MouseOut, Emphasis, Normal} {
		g.Off(typ)
	}
	g.On(MouseOver, func(*Event) {
		if !g.emphasisLocked {
			g.setEmphasis(true)
		}
	})
	g.On(MouseOut, func(*Event) {
		if !g.emphasisLocked {
			g.setEmphasis(false)
		}
	})
	g.On(Emphasis, func(*Event) {
		g.emphasisLocked = true
		g.setEmphasis(true)
	})
	g.On(Normal, func(*Event) {
		g.emphasisLocked = false
		g.setEmphasis(false)
	})
}

// HitTest returns the topmost polygon under pt, given in g's parent space.
func (g *Group) HitTest(pt vec.Vec2) *Polygon {
	inv, ok := invert(g.Transform())
	if !ok {
		return nil
	}
	local := apply(inv, pt)
	for i := len(g.children) - 1; i >= 0; i-- {
		switch c := g.children[i].(type) {
		case *Group:
			if hit := c.HitTest(local); hit != nil {
				return hit
			}
		case *Polygon:
			if c.Contains(local) {
				return c
			}
		}
	}
	return nil
}

// dispatch delivers ev to the target's ancestors, nearest first.
func dispatch(target *Polygon, ev *Event) {
	for g := target.parent; g != nil; g = g.parent {
		g.listeners.Call(ev)
		if ev.IsHandled() {
			return
		}
	}
}

// DispatchAt hit-tests pt (in g's parent space) and bubbles an event of
// type typ from the shape found. It returns the target, or nil when
// nothing was hit.
func (g *Group) DispatchAt(typ EventType, pt vec.Vec2) *Polygon {
	target := g.HitTest(pt)
	if target == nil {
		return nil
	}
	dispatch(target, &Event{Type: typ, Target: target, Point: pt})
	return target
}

// PointerMove tracks the hovered shape under g and sends MouseOut to the
// previous one and MouseOver to the new one when it changes.
func (g *Group) PointerMove(pt vec.Vec2) *Polygon {
	target := g.HitTest(pt)
	if target == g.hovered {
		return target
	}
	if prev := g.hovered; prev != nil && prev.parent != nil {
		dispatch(prev, &Event{Type: MouseOut, Target: prev, Point: pt})
	}
	g.hovered = target
	if target != nil {
		dispatch(target, &Event{Type: MouseOver, Target: target, Point: pt})
	}
	return target
}

// Hovered returns the shape currently under the pointer.
func (g *Group) Hovered() *Polygon { return g.hovered }
