package model

// StyleKind selects which item style variant to read.
type StyleKind int

const (
	Normal StyleKind = iota
	Emphasis
)

func (k StyleKind) String() string {
	if k == Emphasis {
		return "emphasis"
	}
	return "normal"
}

// ItemStyle is the configured look of a region or datum. Zero values mean
// "not set".
type ItemStyle struct {
	Color       string
	AreaColor   string
	BorderColor string
	BorderWidth float64
}

// Merge returns s with the set fields of o layered on top.
func (s ItemStyle) Merge(o ItemStyle) ItemStyle {
	if o.Color != "" {
		s.Color = o.Color
	}
	if o.AreaColor != "" {
		s.AreaColor = o.AreaColor
	}
	if o.BorderColor != "" {
		s.BorderColor = o.BorderColor
	}
	if o.BorderWidth != 0 {
		s.BorderWidth = o.BorderWidth
	}
	return s
}

// Styles holds the normal and emphasis variants.
type Styles struct {
	Normal   ItemStyle
	Emphasis ItemStyle
}

// Of returns the variant for kind.
func (s Styles) Of(kind StyleKind) ItemStyle {
	if kind == Emphasis {
		return s.Emphasis
	}
	return s.Normal
}

// SelectedMode controls click selection.
type SelectedMode int

const (
	SelectNone SelectedMode = iota
	SelectSingle
	SelectMultiple
)

// ParseSelectedMode accepts "single", "multiple", "true" (single) and
// anything else as none.
func ParseSelectedMode(s string) SelectedMode {
	switch s {
	case "single", "true":
		return SelectSingle
	case "multiple":
		return SelectMultiple
	}
	return SelectNone
}

func (m SelectedMode) String() string {
	switch m {
	case SelectSingle:
		return "single"
	case SelectMultiple:
		return "multiple"
	}
	return "none"
}
