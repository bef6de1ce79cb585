// Package action defines the domain actions the map view hands to its host
// and a simple queue the host drains from its update loop.
package action

import "log/slog"

// GeoRoam is the type of pan and zoom actions.
const GeoRoam = "geoRoam"

// Action is a fire-and-forget message for the host. Pan actions carry
// DX/DY; zoom actions carry Zoom (a scale factor, never 0) and the origin
// the zoom pivots about.
type Action struct {
	Type      string
	Component string
	Name      string

	DX float64
	DY float64

	Zoom    float64
	OriginX float64
	OriginY float64
}

// IsZoom reports whether a is a zoom step rather than a pan.
func (a Action) IsZoom() bool { return a.Zoom != 0 }

func (a Action) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", a.Type),
		slog.String("component", a.Component),
		slog.String("name", a.Name),
	}
	if a.IsZoom() {
		attrs = append(attrs,
			slog.Float64("zoom", a.Zoom),
			slog.Float64("originX", a.OriginX),
			slog.Float64("originY", a.OriginY))
	} else {
		attrs = append(attrs, slog.Float64("dx", a.DX), slog.Float64("dy", a.DY))
	}
	return slog.GroupValue(attrs...)
}

// Queue collects dispatched actions until the host drains them.
type Queue struct {
	pending []Action
}

func (q *Queue) Dispatch(a Action) {
	q.pending = append(q.pending, a)
}

// Drain returns the pending actions in dispatch order and empties the queue.
func (q *Queue) Drain() []Action {
	out := q.pending
	q.pending = nil
	return out
}

func (q *Queue) Len() int { return len(q.pending) }
