// Package model holds the map/geo component model: typed item styles,
// selection state and the optional per-item dataset.
package model

import "strings"

// GeoModel describes one map instance: a "geo" component (no data) or a
// "series.map" series (with a List).
type GeoModel struct {
	name     string
	typ      string
	styles   Styles
	mode     SelectedMode
	selected map[string]bool
	data     *List
	// Roam is the raw roam option: "true", "scale", "move" or "false".
	Roam string
}

func NewGeoModel(typ, name string, styles Styles) *GeoModel {
	return &GeoModel{
		name:     name,
		typ:      typ,
		styles:   styles,
		selected: map[string]bool{},
		Roam:     "true",
	}
}

func (m *GeoModel) Name() string { return m.name }

// Type is the full component type, e.g. "geo" or "series.map".
func (m *GeoModel) Type() string { return m.typ }

// MainType is the type up to the first '.'.
func (m *GeoModel) MainType() string {
	main, _, _ := strings.Cut(m.typ, ".")
	return main
}

func (m *GeoModel) ItemStyle(kind StyleKind) ItemStyle { return m.styles.Of(kind) }

func (m *GeoModel) SetStyles(s Styles) { m.styles = s }

func (m *GeoModel) SelectedMode() SelectedMode { return m.mode }

func (m *GeoModel) SetSelectedMode(mode SelectedMode) { m.mode = mode }

// Data returns the bound dataset, nil for a plain geo component.
func (m *GeoModel) Data() *List { return m.data }

func (m *GeoModel) SetData(l *List) { m.data = l }

func (m *GeoModel) IsSelected(name string) bool { return m.selected[name] }

// Select marks name selected. In single mode every other name is cleared.
func (m *GeoModel) Select(name string) {
	if m.mode == SelectSingle {
		clear(m.selected)
	}
	m.selected[name] = true
}

func (m *GeoModel) Unselect(name string) {
	delete(m.selected, name)
}

func (m *GeoModel) ToggleSelected(name string) {
	if m.selected[name] {
		m.Unselect(name)
		return
	}
	m.Select(name)
}

// Selected returns the selected names in no particular order.
func (m *GeoModel) Selected() []string {
	out := make([]string, 0, len(m.selected))
	for n := range m.selected {
		out = append(out, n)
	}
	return out
}

// RoamEnabled reports which gesture channels the roam option allows.
func (m *GeoModel) RoamEnabled() (pan, zoom bool) {
	switch m.Roam {
	case "true", "":
		return true, true
	case "move":
		return true, false
	case "scale":
		return false, true
	}
	return false, false
}
