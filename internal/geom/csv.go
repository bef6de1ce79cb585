package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ValueRow is one datum bound to a region by name.
type ValueRow struct {
	Name     string
	Value    float64
	HasValue bool
	Color    string
	Selected bool
}

// LoadValuesCSV reads a CSV with a header naming at least a name column.
// Column detection (case-insensitive): name|region, value|val,
// color|colour, selected.
func LoadValuesCSV(path string) ([]ValueRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv %s: %w", path, err)
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idxName, idxVal, idxColor, idxSel := -1, -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "region":
			if idxName == -1 {
				idxName = i
			}
		case "value", "val":
			if idxVal == -1 {
				idxVal = i
			}
		case "color", "colour":
			if idxColor == -1 {
				idxColor = i
			}
		case "selected":
			if idxSel == -1 {
				idxSel = i
			}
		}
	}
	if idxName == -1 {
		return nil, errors.New("csv: name column not found")
	}
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var rows []ValueRow
	for _, row := range recs[1:] {
		name := cell(row, idxName)
		if name == "" {
			continue
		}
		vr := ValueRow{Name: name, Color: cell(row, idxColor)}
		if v, err := strconv.ParseFloat(cell(row, idxVal), 64); err == nil {
			vr.Value, vr.HasValue = v, true
		}
		vr.Selected, _ = strconv.ParseBool(cell(row, idxSel))
		rows = append(rows, vr)
	}
	if len(rows) == 0 {
		return nil, errors.New("csv: no named rows parsed")
	}
	return rows, nil
}
