package graphic

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Style is the resolved look of a shape. Empty colours mean "not drawn".
type Style struct {
	Fill      string
	Stroke    string
	LineWidth float64
}

// Merge returns s overridden by the non-zero fields of o.
func (s Style) Merge(o Style) Style {
	if o.Fill != "" {
		s.Fill = o.Fill
	}
	if o.Stroke != "" {
		s.Stroke = o.Stroke
	}
	if o.LineWidth != 0 {
		s.LineWidth = o.LineWidth
	}
	return s
}

// ParseColor accepts "#rgb" and "#rrggbb".
func ParseColor(s string) (colorful.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// Lift brightens a colour for emphasis when no emphasis fill is configured.
// Unparseable colours are returned unchanged.
func Lift(hex string) string {
	c, ok := ParseColor(hex)
	if !ok {
		return hex
	}
	return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.35).Clamped().Hex()
}
