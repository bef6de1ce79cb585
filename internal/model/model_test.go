package model

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geodraw/internal/graphic"
)

func TestMainType(t *testing.T) {
	assert.Equal(t, "geo", NewGeoModel("geo", "a", Styles{}).MainType())
	assert.Equal(t, "series", NewGeoModel("series.map", "a", Styles{}).MainType())
}

func TestToggleSelected(t *testing.T) {
	tests := []struct {
		name string
		mode SelectedMode
		want []string
	}{
		{"single", SelectSingle, []string{"B"}},
		{"multiple", SelectMultiple, []string{"A", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewGeoModel("geo", "m", Styles{})
			m.SetSelectedMode(tt.mode)
			m.ToggleSelected("A")
			m.ToggleSelected("B")
			got := m.Selected()
			sort.Strings(got)
			assert.Equal(t, tt.want, got)

			m.ToggleSelected("B")
			assert.False(t, m.IsSelected("B"))
		})
	}
}

func TestParseSelectedMode(t *testing.T) {
	assert.Equal(t, SelectSingle, ParseSelectedMode("single"))
	assert.Equal(t, SelectSingle, ParseSelectedMode("true"))
	assert.Equal(t, SelectMultiple, ParseSelectedMode("multiple"))
	assert.Equal(t, SelectNone, ParseSelectedMode("false"))
	assert.Equal(t, "multiple", SelectMultiple.String())
}

func TestRoamEnabled(t *testing.T) {
	m := NewGeoModel("geo", "m", Styles{})
	for roam, want := range map[string][2]bool{
		"true":  {true, true},
		"move":  {true, false},
		"scale": {false, true},
		"false": {false, false},
	} {
		m.Roam = roam
		pan, zoom := m.RoamEnabled()
		assert.Equal(t, want, [2]bool{pan, zoom}, roam)
	}
}

func TestListLookups(t *testing.T) {
	l := NewList([]Item{
		{Name: "A", Value: 1, HasValue: true, Styles: Styles{Normal: ItemStyle{Color: "#111111"}}},
		{Name: "B"},
		{Name: "A", Value: 3},
	})
	assert.Equal(t, 3, l.Count())
	assert.Equal(t, 0, l.IndexOfName("A"))
	assert.Equal(t, -1, l.IndexOfName("Z"))
	assert.Equal(t, "B", l.Name(1))
	assert.True(t, l.HasValue(0))
	assert.False(t, l.HasValue(1))
	assert.False(t, l.HasValue(9))
	assert.Equal(t, "", l.Name(7))
	assert.Equal(t, "#111111", l.ItemStyle(0, Normal).Color)
	assert.Equal(t, ItemStyle{}, l.ItemStyle(-1, Normal))

	_, ok := l.VisualColor(1)
	assert.False(t, ok)
	l.SetVisualColor(1, "#abcdef")
	c, ok := l.VisualColor(1)
	require.True(t, ok)
	assert.Equal(t, "#abcdef", c)
}

func TestItemStyleMerge(t *testing.T) {
	base := ItemStyle{AreaColor: "#eee", BorderColor: "#333", BorderWidth: 2}
	got := base.Merge(ItemStyle{AreaColor: "#f00"})
	assert.Equal(t, ItemStyle{AreaColor: "#f00", BorderColor: "#333", BorderWidth: 2}, got)
	assert.Equal(t, base, base.Merge(ItemStyle{}))
	assert.Equal(t, "#eee", base.AreaColor)
}

func TestListGraphicEls(t *testing.T) {
	l := NewList([]Item{{Name: "A"}, {Name: "B"}})
	g := graphic.NewGroup()
	l.SetItemGraphicEl(1, g)
	assert.Equal(t, 1, g.DataIndex)
	assert.Same(t, g, l.ItemGraphicEl(1))

	var seen []int
	l.EachItemGraphicEl(func(_ *graphic.Group, idx int) { seen = append(seen, idx) })
	assert.Equal(t, []int{1}, seen)

	l.ResetItemGraphicEls()
	assert.Nil(t, l.ItemGraphicEl(1))
}
