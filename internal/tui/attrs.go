package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the data table from the bound dataset.
func (m *Model) refreshAttrs() {
	data := m.gm.Data()
	if data == nil || data.Count() == 0 {
		m.showAttrs = false
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "name", Width: 20},
		{Title: "value", Width: 10},
		{Title: "colour", Width: 9},
		{Title: "selected", Width: 8},
	}
	rows := make([]table.Row, 0, data.Count())
	for i := 0; i < data.Count(); i++ {
		name := data.Name(i)
		colour, _ := data.VisualColor(i)
		sel := ""
		if m.gm.IsSelected(name) {
			sel = "yes"
		}
		value := "-"
		if data.HasValue(i) {
			value = fmt.Sprintf("%g", data.Value(i))
		}
		rows = append(rows, table.Row{fmt.Sprintf("%d", i+1), name, value, colour, sel})
	}
	// clear rows before swapping columns so they never disagree in width
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
