package tui

import (
	"fmt"
	"path/filepath"

	list "github.com/charmbracelet/bubbles/list"

	"geodraw/internal/geom"
	"geodraw/internal/model"
)

type regionItem struct {
	name     string
	desc     string
	selected bool
}

func (r regionItem) Title() string {
	if r.selected {
		return "● " + r.name
	}
	return "  " + r.name
}
func (r regionItem) Description() string { return r.desc }
func (r regionItem) FilterValue() string { return r.name }

// refreshRegions rebuilds the sidebar items from the loaded regions.
func (m *Model) refreshRegions() {
	data := m.gm.Data()
	var items []list.Item
	for _, r := range m.geo.Source() {
		desc := fmt.Sprintf("%d contours", len(r.Contours))
		if data != nil {
			if idx := data.IndexOfName(r.Name); idx >= 0 && data.HasValue(idx) {
				desc = fmt.Sprintf("value %g", data.Value(idx))
			} else if idx >= 0 {
				desc = "no value"
			} else {
				desc = "no data"
			}
		}
		items = append(items, regionItem{name: r.Name, desc: desc, selected: m.gm.IsSelected(r.Name)})
	}
	m.l.SetItems(items)
}

// loadMap loads a region file and resets the view.
func (m *Model) loadMap(p string) {
	regions, err := geom.LoadRegions(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Error("load map", "path", p, "err", err)
		return
	}
	m.mapPath = p
	m.geo.SetRegions(regions)
	m.status = "loaded: " + filepath.Base(p) + fmt.Sprintf("  regions=%d", len(regions))
	m.log.Info("map loaded", "path", p, "regions", len(regions))
	m.refreshRegions()
	m.redraw()
}

// loadData binds a CSV dataset to a series map. Geo components carry no
// data and ignore it.
func (m *Model) loadData(p string) {
	if m.gm.MainType() != "series" {
		m.status = "data ignored: " + m.gm.Type() + " has no dataset"
		return
	}
	rows, err := geom.LoadValuesCSV(p)
	if err != nil {
		m.status = "data error: " + err.Error()
		m.log.Error("load data", "path", p, "err", err)
		return
	}
	items := make([]model.Item, len(rows))
	for i, r := range rows {
		items[i] = model.Item{Name: r.Name, Value: r.Value, HasValue: r.HasValue}
		items[i].Styles.Normal.AreaColor = r.Color
		if r.Selected && m.gm.SelectedMode() != model.SelectNone {
			m.gm.Select(r.Name)
		}
	}
	l := model.NewList(items)
	if m.cfg.Visual.Enabled {
		m.vmap.Apply(l)
	}
	m.gm.SetData(l)
	m.dataPath = p
	m.status = "data: " + filepath.Base(p) + fmt.Sprintf("  rows=%d", len(rows))
	m.log.Info("data loaded", "path", p, "rows", len(rows))
	m.refreshRegions()
	m.refreshAttrs()
	m.redraw()
}
