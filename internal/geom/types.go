package geom

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// ErrNoRegions is returned by loaders that found no usable polygon.
var ErrNoRegions = errors.New("no regions found")

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Valid reports whether the box has a positive area.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

func (b *BBox) extend(p vec.Vec2, first bool) {
	if first {
		*b = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
		return
	}
	b.MinX = min(b.MinX, p.X)
	b.MinY = min(b.MinY, p.Y)
	b.MaxX = max(b.MaxX, p.X)
	b.MaxY = max(b.MaxY, p.Y)
}

// Region is a named map area made of one or more closed contours
// (outer boundaries and holes alike), in lon/lat.
type Region struct {
	Name     string
	Contours [][]vec.Vec2
}

// Bounds returns the lon/lat box covering every contour point.
func Bounds(regions []Region) (BBox, bool) {
	var bb BBox
	first := true
	for _, r := range regions {
		for _, c := range r.Contours {
			for _, p := range c {
				bb.extend(p, first)
				first = false
			}
		}
	}
	return bb, !first
}

// regionSet collects contours per name, keeping first-seen order.
// Repeated names merge into one region.
type regionSet struct {
	order  []string
	byName map[string]*Region
}

func (s *regionSet) add(name string, contour []vec.Vec2) {
	if s.byName == nil {
		s.byName = map[string]*Region{}
	}
	r, ok := s.byName[name]
	if !ok {
		r = &Region{Name: name}
		s.byName[name] = r
		s.order = append(s.order, name)
	}
	if len(contour) >= 3 {
		r.Contours = append(r.Contours, contour)
	}
}

func (s *regionSet) regions() []Region {
	out := make([]Region, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, *s.byName[n])
	}
	return out
}

func (s *regionSet) empty() bool {
	for _, r := range s.byName {
		if len(r.Contours) > 0 {
			return false
		}
	}
	return true
}

// LoadRegions picks a loader by file extension.
func LoadRegions(path string) ([]Region, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		return LoadWKT(path)
	default:
		return nil, fmt.Errorf("unsupported map file: %s", ext)
	}
}
