package geom

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// LoadWKT reads a file with one region per line: "name<TAB>WKT".
// Lines without a tab are named "region-<line>". Blank lines and lines
// starting with '#' are skipped.
func LoadWKT(path string) ([]Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	regions, err := ParseWKTRegions(data)
	if err != nil {
		return nil, fmt.Errorf("wkt %s: %w", path, err)
	}
	return regions, nil
}

// ParseWKTRegions parses the line format read by LoadWKT.
func ParseWKTRegions(data []byte) ([]Region, error) {
	var set regionSet
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		name := fmt.Sprintf("region-%d", line)
		if i := strings.IndexByte(s, '\t'); i >= 0 {
			name = strings.TrimSpace(s[:i])
			s = strings.TrimSpace(s[i+1:])
		}
		rings, err := ParseWKTPolygon(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		for _, r := range rings {
			set.add(name, r)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if set.empty() {
		return nil, ErrNoRegions
	}
	return set.regions(), nil
}

// ParseWKTPolygon returns every ring of a POLYGON or MULTIPOLYGON.
func ParseWKTPolygon(wkt string) ([][]vec.Vec2, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	if !strings.HasPrefix(up, "POLYGON") && !strings.HasPrefix(up, "MULTIPOLYGON") {
		return nil, errors.New("unsupported wkt type")
	}
	i := strings.Index(s, "((")
	j := strings.LastIndex(s, "))")
	if i < 0 || j <= i {
		return nil, errors.New("wkt polygon: invalid")
	}
	// every ")" closes a ring or a polygon; empty pieces are polygon closers
	var rings [][]vec.Vec2
	for _, piece := range strings.Split(s[i:j+2], ")") {
		piece = strings.Trim(piece, " ,(\t")
		if piece == "" {
			continue
		}
		if ring := parseWKTTuples(piece); len(ring) > 0 {
			rings = append(rings, ring)
		}
	}
	if len(rings) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return rings, nil
}

func parseWKTTuples(block string) []vec.Vec2 {
	var out []vec.Vec2
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, vec.Vec2{X: x, Y: y})
	}
	return out
}
