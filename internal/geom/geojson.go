package geom

import (
	"encoding/json"
	"fmt"
	"os"

	"seehuhn.de/go/geom/vec"
)

// LoadGeoJSON reads a GeoJSON file and returns one region per distinct
// feature name. Only Polygon and MultiPolygon geometries contribute.
func LoadGeoJSON(path string) ([]Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	regions, err := ParseGeoJSON(data)
	if err != nil {
		return nil, fmt.Errorf("geojson %s: %w", path, err)
	}
	return regions, nil
}

// ParseGeoJSON decodes a Feature, FeatureCollection or bare geometry.
// Features without a "name" property are named "region-<index>".
func ParseGeoJSON(data []byte) ([]Region, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var set regionSet
	parsePoint := func(v any) (vec.Vec2, bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				return vec.Vec2{X: lon, Y: lat}, true
			}
		}
		return vec.Vec2{}, false
	}
	parseRing := func(v any) []vec.Vec2 {
		arr, _ := v.([]any)
		var ring []vec.Vec2
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				ring = append(ring, pt)
			}
		}
		return ring
	}
	addPolygon := func(name string, v any) {
		rings, _ := v.([]any)
		for _, ring := range rings {
			set.add(name, parseRing(ring))
		}
	}
	walkGeom := func(name string, g map[string]any) {
		switch gt, _ := g["type"].(string); gt {
		case "Polygon":
			addPolygon(name, g["coordinates"])
		case "MultiPolygon":
			polys, _ := g["coordinates"].([]any)
			for _, p := range polys {
				addPolygon(name, p)
			}
		}
	}
	featureName := func(fm map[string]any, idx int) string {
		if props, ok := fm["properties"].(map[string]any); ok {
			if n, ok := props["name"].(string); ok && n != "" {
				return n
			}
		}
		return fmt.Sprintf("region-%d", idx)
	}
	switch t, _ := raw["type"].(string); t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(featureName(raw, 0), g)
		}
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for i, f := range fs {
			fm, ok := f.(map[string]any)
			if !ok {
				continue
			}
			if g, ok := fm["geometry"].(map[string]any); ok {
				walkGeom(featureName(fm, i), g)
			}
		}
	case "":
		return nil, fmt.Errorf("missing type")
	default:
		walkGeom("region-0", raw)
	}
	if set.empty() {
		return nil, ErrNoRegions
	}
	return set.regions(), nil
}
