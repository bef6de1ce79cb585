// Package mapdraw draws map regions into a scene graph, binds their style
// and selection state to a map model and forwards roam gestures as
// geoRoam actions.
package mapdraw

import (
	"log/slog"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"geodraw/internal/action"
	"geodraw/internal/geom"
	"geodraw/internal/graphic"
	"geodraw/internal/model"
	"geodraw/internal/roam"
)

// MapModel is the map or geo model being drawn.
type MapModel interface {
	Name() string
	// Type is the component type, e.g. "geo" or "series.map".
	Type() string
	ItemStyle(kind model.StyleKind) model.ItemStyle
	SelectedMode() model.SelectedMode
	IsSelected(name string) bool
	ToggleSelected(name string)
	// Data returns nil when no per-item dataset is bound.
	Data() *model.List
}

// CoordSys supplies region geometry and the current view.
type CoordSys interface {
	Regions() []geom.Region
	Position() vec.Vec2
	Scale() vec.Vec2
	ViewRect() rect.Rect
}

// Dispatcher receives actions for the host.
type Dispatcher interface {
	Dispatch(a action.Action)
}

// MapDraw owns the root group and the roam controller of one map view.
type MapDraw struct {
	api        Dispatcher
	group      *graphic.Group
	controller *roam.Controller

	// elements maps region name to its group for the current draw only.
	elements map[string]*graphic.Group
	warned   map[string]bool
	log      *slog.Logger
}

func New(api Dispatcher) *MapDraw {
	return &MapDraw{
		api:        api,
		group:      graphic.NewGroup(),
		controller: roam.New(),
		elements:   map[string]*graphic.Group{},
		warned:     map[string]bool{},
		log:        slog.Default().With("component", "mapdraw"),
	}
}

// Group is the root of the rendered scene.
func (d *MapDraw) Group() *graphic.Group { return d.group }

// Controller is the shared pan/zoom recognizer.
func (d *MapDraw) Controller() *roam.Controller { return d.controller }

// Element returns the group rendered for region name by the last draw.
func (d *MapDraw) Element(name string) *graphic.Group { return d.elements[name] }

// fixedStyle converts a configured item style into a paint style. AreaColor
// wins over Color for the fill, and the border width is divided by the
// horizontal view scale so strokes keep their on-screen width.
func fixedStyle(s model.ItemStyle, scale vec.Vec2) graphic.Style {
	st := graphic.Style{
		Fill:      s.Color,
		Stroke:    s.BorderColor,
		LineWidth: s.BorderWidth,
	}
	if s.AreaColor != "" {
		st.Fill = s.AreaColor
	}
	if st.LineWidth != 0 && scale.X != 0 {
		st.LineWidth /= scale.X
	}
	return st
}

// Draw replaces the rendered regions with a fresh set for m and rearms the
// roam controller against the new view.
func (d *MapDraw) Draw(m MapModel, geo CoordSys) {
	data := m.Data()
	scale := geo.Scale()

	group := d.group
	group.RemoveAll()
	group.Position = geo.Position()
	group.Scale = scale
	clear(d.elements)
	if data != nil {
		data.ResetItemGraphicEls()
	}

	// model-level styles: used for every region without data, and as the
	// fallback for regions no datum is named after
	modelNormal, modelHover := m.ItemStyle(model.Normal), m.ItemStyle(model.Emphasis)
	fixedNormal := fixedStyle(modelNormal, scale)
	fixedHover := fixedStyle(modelHover, scale)

	for _, region := range geo.Regions() {
		normal, hover := fixedNormal, fixedHover
		idx := -1
		if data != nil {
			idx = data.IndexOfName(region.Name)
			if idx >= 0 {
				// unset datum fields inherit from the model
				normal = fixedStyle(modelNormal.Merge(data.ItemStyle(idx, model.Normal)), scale)
				hover = fixedStyle(modelHover.Merge(data.ItemStyle(idx, model.Emphasis)), scale)
				if c, ok := data.VisualColor(idx); ok {
					normal.Fill = c
				}
			} else if !d.warned[region.Name] {
				d.warned[region.Name] = true
				d.log.Warn("region has no datum, using default style", "region", region.Name, "map", m.Name())
			}
		}

		regionGroup := graphic.NewGroup()
		regionGroup.Name = region.Name
		for _, contour := range region.Contours {
			poly := graphic.NewPolygon(contour)
			poly.SetStyle(normal)
			regionGroup.Add(poly)
		}
		// bind after every polygon is added so they all carry the index
		if idx >= 0 {
			data.SetItemGraphicEl(idx, regionGroup)
		}
		d.elements[region.Name] = regionGroup

		graphic.SetHoverStyle(regionGroup, hover)
		group.Add(regionGroup)
	}

	d.arm(m, geo)
	d.updateSelectHandler(m)
	d.updateSelected(m)
}

func (d *MapDraw) updateSelectHandler(m MapModel) {
	d.group.Off(graphic.Click)
	if m.SelectedMode() == model.SelectNone {
		return
	}
	data := m.Data()
	d.group.On(graphic.Click, func(ev *graphic.Event) {
		if ev.Target == nil {
			return
		}
		var name string
		if data != nil {
			idx := ev.Target.DataIndex
			if idx < 0 {
				return
			}
			name = data.Name(idx)
		} else if owner := ev.Target.Parent(); owner != nil {
			name = owner.Name
		}
		if name == "" {
			return
		}
		m.ToggleSelected(name)
		d.updateSelected(m)
	})
}

// updateSelected puts every rendered region into emphasis or normal state
// to match the model's selection flags. The region under the pointer keeps
// its hover emphasis.
func (d *MapDraw) updateSelected(m MapModel) {
	for name, el := range d.elements {
		if m.IsSelected(name) {
			el.Trigger(graphic.Emphasis)
		} else {
			el.Trigger(graphic.Normal)
		}
	}
	if h := d.group.Hovered(); h != nil {
		if el := h.Parent(); el != nil && d.elements[el.Name] == el {
			el.Trigger(graphic.MouseOver)
		}
	}
}
