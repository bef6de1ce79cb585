package graphic

import "seehuhn.de/go/geom/vec"

type EventType int

const (
	Click EventType = iota
	MouseOver
	MouseOut
	// Emphasis and Normal switch an element's visual state.
	Emphasis
	Normal
)

func (t EventType) String() string {
	switch t {
	case Click:
		return "click"
	case MouseOver:
		return "mouseover"
	case MouseOut:
		return "mouseout"
	case Emphasis:
		return "emphasis"
	case Normal:
		return "normal"
	}
	return "unknown"
}

// Event is delivered to listeners. Target is the shape under the pointer,
// or nil for events triggered directly on a group.
type Event struct {
	Type    EventType
	Target  *Polygon
	Point   vec.Vec2
	handled bool
}

// SetHandled stops delivery to remaining listeners and ancestors.
func (e *Event) SetHandled() { e.handled = true }

func (e *Event) IsHandled() bool { return e.handled }

// Listeners holds listener functions per event type.
type Listeners map[EventType][]func(*Event)

// Add appends fn for typ.
func (ls *Listeners) Add(typ EventType, fn func(*Event)) {
	if *ls == nil {
		*ls = make(Listeners)
	}
	(*ls)[typ] = append((*ls)[typ], fn)
}

// Remove drops every listener for typ.
func (ls Listeners) Remove(typ EventType) {
	delete(ls, typ)
}

// Call runs the listeners for ev.Type, last added first, and stops once
// the event is handled.
func (ls Listeners) Call(ev *Event) {
	fns := ls[ev.Type]
	for i := len(fns) - 1; i >= 0; i-- {
		if ev.IsHandled() {
			return
		}
		fns[i](ev)
	}
}

func (ls Listeners) Count(typ EventType) int { return len(ls[typ]) }
