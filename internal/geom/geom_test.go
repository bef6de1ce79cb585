package geom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

const collection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "A"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1]]]}},
    {"type": "Feature", "properties": {"name": "B"},
     "geometry": {"type": "MultiPolygon", "coordinates": [
        [[[2,0],[3,0],[3,1],[2,1]]],
        [[[4,0],[5,0],[5,1],[4,1]], [[4.2,0.2],[4.8,0.2],[4.8,0.8]]]
     ]}},
    {"type": "Feature", "properties": {"name": "A"},
     "geometry": {"type": "Polygon", "coordinates": [[[6,0],[7,0],[7,1]]]}},
    {"type": "Feature", "properties": {},
     "geometry": {"type": "Polygon", "coordinates": [[[8,0],[9,0],[9,1]]]}},
    {"type": "Feature", "properties": {"name": "P"},
     "geometry": {"type": "Point", "coordinates": [1,1]}}
  ]
}`

func names(regions []Region) []string {
	var out []string
	for _, r := range regions {
		out = append(out, r.Name)
	}
	return out
}

func TestParseGeoJSON(t *testing.T) {
	regions, err := ParseGeoJSON([]byte(collection))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "region-3"}, names(regions), "point features are not regions")
	assert.Len(t, regions[0].Contours, 2, "same-named features merge")
	assert.Len(t, regions[1].Contours, 3)
	assert.Equal(t, vec.Vec2{X: 1, Y: 1}, regions[0].Contours[0][2])
}

func TestParseGeoJSONErrors(t *testing.T) {
	_, err := ParseGeoJSON([]byte(`{"type":"Point","coordinates":[1,2]}`))
	assert.True(t, errors.Is(err, ErrNoRegions))
	_, err = ParseGeoJSON([]byte(`{}`))
	assert.Error(t, err)
	_, err = ParseGeoJSON([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadRegionsByExtension(t *testing.T) {
	p := writeFile(t, "world.geojson", collection)
	regions, err := LoadRegions(p)
	require.NoError(t, err)
	assert.Len(t, regions, 3)

	_, err = LoadRegions(writeFile(t, "x.shp", ""))
	assert.Error(t, err)
}

func TestParseKML(t *testing.T) {
	doc := `<?xml version="1.0"?>
<kml><Document>
  <Placemark><name>Lake</name>
    <Polygon>
      <outerBoundaryIs><LinearRing><coordinates>0,0,0 4,0,0 4,4,0 0,4,0</coordinates></LinearRing></outerBoundaryIs>
      <innerBoundaryIs><LinearRing><coordinates>1,1 2,1 2,2</coordinates></LinearRing></innerBoundaryIs>
    </Polygon>
  </Placemark>
  <Placemark><name>Islands</name>
    <MultiGeometry>
      <Polygon><outerBoundaryIs><LinearRing><coordinates>5,5 6,5 6,6</coordinates></LinearRing></outerBoundaryIs></Polygon>
      <Polygon><outerBoundaryIs><LinearRing><coordinates>7,7 8,7 8,8</coordinates></LinearRing></outerBoundaryIs></Polygon>
    </MultiGeometry>
  </Placemark>
</Document></kml>`
	regions, err := ParseKML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"Lake", "Islands"}, names(regions))
	assert.Len(t, regions[0].Contours, 2)
	assert.Len(t, regions[1].Contours, 2)
	assert.Equal(t, vec.Vec2{X: 4, Y: 4}, regions[0].Contours[0][2])

	_, err = ParseKML([]byte(`<kml><Placemark><Point><coordinates>1,2</coordinates></Point></Placemark></kml>`))
	assert.True(t, errors.Is(err, ErrNoRegions))
}

func TestParseWKTPolygon(t *testing.T) {
	rings, err := ParseWKTPolygon("POLYGON ((0 0, 4 0, 4 4, 0 4), (1 1, 2 1, 2 2))")
	require.NoError(t, err)
	require.Len(t, rings, 2)
	assert.Len(t, rings[0], 4)
	assert.Len(t, rings[1], 3)

	rings, err = ParseWKTPolygon("MULTIPOLYGON (((0 0, 1 0, 1 1)), ((2 2, 3 2, 3 3), (2.2 2.2, 2.8 2.2, 2.8 2.8)))")
	require.NoError(t, err)
	assert.Len(t, rings, 3)

	_, err = ParseWKTPolygon("POINT (1 2)")
	assert.Error(t, err)
	_, err = ParseWKTPolygon("")
	assert.Error(t, err)
}

func TestLoadWKT(t *testing.T) {
	p := writeFile(t, "r.wkt", "# regions\nA\tPOLYGON ((0 0, 1 0, 1 1))\n\nPOLYGON ((2 2, 3 2, 3 3))\n")
	regions, err := LoadWKT(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "region-4"}, names(regions))

	_, err = LoadWKT(writeFile(t, "bad.wkt", "A\tLINESTRING (0 0, 1 1)\n"))
	assert.Error(t, err)
}

func TestLoadValuesCSV(t *testing.T) {
	p := writeFile(t, "v.csv", "Region,Value,Colour,Selected\nA,10,#ff0000,true\nB,x,,\n,3,,\n")
	rows, err := LoadValuesCSV(p)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ValueRow{Name: "A", Value: 10, HasValue: true, Color: "#ff0000", Selected: true}, rows[0])
	assert.Equal(t, ValueRow{Name: "B"}, rows[1])

	_, err = LoadValuesCSV(writeFile(t, "n.csv", "lat,lon\n1,2\n"))
	assert.Error(t, err)
}

func TestBounds(t *testing.T) {
	regions, err := ParseGeoJSON([]byte(collection))
	require.NoError(t, err)
	bb, ok := Bounds(regions)
	require.True(t, ok)
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 9, MaxY: 1}, bb)
	assert.True(t, bb.Valid())

	_, ok = Bounds(nil)
	assert.False(t, ok)
}
