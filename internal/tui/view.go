package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" geomap ─ " + m.gm.Type() + " " + m.gm.Name() + " ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	if m.showAttrs {
		// Render data table centered in the map area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(m.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(m.mapH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(m.mapW, m.mapH, lipgloss.Center, lipgloss.Center, box)
	} else {
		// plain map canvas: no border, no background highlight
		mapView = lipgloss.NewStyle().Width(m.mapW).Height(m.mapH).Render(m.renderMap())
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	readout := ""
	if m.hoverName != "" {
		name := m.hoverName
		if m.gm.IsSelected(name) {
			name = selectStyle.Render("● " + name)
		}
		readout = name + "  "
	}
	if m.hoverHasGeo {
		readout += dimStyle.Render(fmt.Sprintf("lon=%.5f lat=%.5f  ", m.hoverLon, m.hoverLat))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(readout))
	right := lipgloss.Place(spacerW+lipgloss.Width(readout), 1, lipgloss.Right, lipgloss.Center, readout)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	for _, b := range m.keys.helpBindings() {
		h := b.Help()
		keys = append(keys, h.Key+" "+h.Desc)
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
