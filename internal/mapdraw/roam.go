package mapdraw

import (
	"strings"

	"geodraw/internal/action"
)

// arm points the roam controller at the current view and replaces its
// callbacks with ones that dispatch geoRoam actions for m.
func (d *MapDraw) arm(m MapModel, geo CoordSys) {
	mainType, _, _ := strings.Cut(m.Type(), ".")
	name := m.Name()
	api := d.api

	if r, ok := m.(interface{ RoamEnabled() (pan, zoom bool) }); ok {
		d.controller.PanEnabled, d.controller.ZoomEnabled = r.RoamEnabled()
	}
	d.controller.SetRect(geo.ViewRect())
	d.controller.Rebind(
		func(dx, dy float64) {
			api.Dispatch(action.Action{
				Type:      action.GeoRoam,
				Component: mainType,
				Name:      name,
				DX:        dx,
				DY:        dy,
			})
		},
		func(zoom, originX, originY float64) {
			api.Dispatch(action.Action{
				Type:      action.GeoRoam,
				Component: mainType,
				Name:      name,
				Zoom:      zoom,
				OriginX:   originX,
				OriginY:   originY,
			})
		},
	)
}
