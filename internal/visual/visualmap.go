// Package visual maps datum values to colours.
package visual

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"geodraw/internal/graphic"
	"geodraw/internal/model"
)

// DefaultColors is the in-range gradient used when none is configured.
var DefaultColors = []string{"#e0f3f8", "#abd9e9", "#74add1", "#4575b4", "#313695"}

// Continuous is a linear value→colour gradient. When Min and Max are equal
// the range is taken from the data.
type Continuous struct {
	Min    float64
	Max    float64
	Colors []string
}

// ColorAt returns the colour for v, clamped to the range.
func (c Continuous) ColorAt(v, lo, hi float64) string {
	stops := c.stops()
	if len(stops) == 0 {
		return ""
	}
	if len(stops) == 1 || hi <= lo {
		return stops[0].Hex()
	}
	t := (v - lo) / (hi - lo)
	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(stops)-1)
	i := int(math.Floor(pos))
	if i >= len(stops)-1 {
		return stops[len(stops)-1].Hex()
	}
	return stops[i].BlendLab(stops[i+1], pos-float64(i)).Clamped().Hex()
}

func (c Continuous) stops() []colorful.Color {
	src := c.Colors
	if len(src) == 0 {
		src = DefaultColors
	}
	out := make([]colorful.Color, 0, len(src))
	for _, s := range src {
		if col, ok := graphic.ParseColor(s); ok {
			out = append(out, col)
		}
	}
	return out
}

// Apply assigns a visual colour to every item of l that has a value.
// Items without one get no colour and neither widen the data extent.
func (c Continuous) Apply(l *model.List) {
	if l == nil || l.Count() == 0 {
		return
	}
	lo, hi := c.Min, c.Max
	if lo == hi {
		lo, hi = math.Inf(1), math.Inf(-1)
		for i := 0; i < l.Count(); i++ {
			if !l.HasValue(i) {
				continue
			}
			lo = math.Min(lo, l.Value(i))
			hi = math.Max(hi, l.Value(i))
		}
		if lo > hi {
			return
		}
	}
	for i := 0; i < l.Count(); i++ {
		if l.HasValue(i) {
			l.SetVisualColor(i, c.ColorAt(l.Value(i), lo, hi))
		}
	}
}
