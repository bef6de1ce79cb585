package geom

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

type kmlRing struct {
	Coordinates string `xml:"LinearRing>coordinates"`
}

type kmlPolygon struct {
	Outer kmlRing   `xml:"outerBoundaryIs"`
	Inner []kmlRing `xml:"innerBoundaryIs"`
}

type kmlPlacemark struct {
	Name     string       `xml:"name"`
	Polygons []kmlPolygon `xml:"Polygon"`
	Multi    []kmlPolygon `xml:"MultiGeometry>Polygon"`
}

type kmlDoc struct {
	Placemarks []kmlPlacemark `xml:"Document>Placemark"`
	Bare       []kmlPlacemark `xml:"Placemark"`
}

// LoadKML extracts Placemark polygons from a KML file.
func LoadKML(path string) ([]Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	regions, err := ParseKML(data)
	if err != nil {
		return nil, fmt.Errorf("kml %s: %w", path, err)
	}
	return regions, nil
}

// ParseKML decodes Placemarks found at the root or under Document.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func ParseKML(data []byte) ([]Region, error) {
	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var set regionSet
	for i, pm := range append(doc.Placemarks, doc.Bare...) {
		name := strings.TrimSpace(pm.Name)
		if name == "" {
			name = fmt.Sprintf("region-%d", i)
		}
		for _, poly := range append(pm.Polygons, pm.Multi...) {
			set.add(name, parseKMLCoords(poly.Outer.Coordinates))
			for _, in := range poly.Inner {
				set.add(name, parseKMLCoords(in.Coordinates))
			}
		}
	}
	if set.empty() {
		return nil, ErrNoRegions
	}
	return set.regions(), nil
}

func parseKMLCoords(s string) []vec.Vec2 {
	var ring []vec.Vec2
	// tuples are whitespace separated
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		ring = append(ring, vec.Vec2{X: lon, Y: lat})
	}
	return ring
}
