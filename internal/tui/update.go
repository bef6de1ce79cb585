package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"seehuhn.de/go/geom/vec"

	"geodraw/internal/action"
	"geodraw/internal/graphic"
	"geodraw/internal/model"
	"geodraw/internal/roam"
)

// panStep is the keyboard pan distance in micro-pixels.
const panStep = 8

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.redraw()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		// The open sidebar has focus: arrows move through the region list
		// instead of panning the map.
		if m.showSidebar && key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right) {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		handled := true
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Sidebar):
			m.showSidebar = !m.showSidebar
			m.layout()
			m.redraw()
		case key.Matches(msg, m.keys.Attrs):
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
				if !m.showAttrs {
					m.status = "no data bound"
				}
			}
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		case key.Matches(msg, m.keys.ZoomIn):
			c := m.viewCenter()
			m.roamKey(action.Action{Zoom: roam.ZoomStep, OriginX: c.X, OriginY: c.Y})
		case key.Matches(msg, m.keys.ZoomOut):
			c := m.viewCenter()
			m.roamKey(action.Action{Zoom: 1 / roam.ZoomStep, OriginX: c.X, OriginY: c.Y})
		case key.Matches(msg, m.keys.Up):
			m.roamKey(action.Action{DY: -panStep})
		case key.Matches(msg, m.keys.Down):
			m.roamKey(action.Action{DY: panStep})
		case key.Matches(msg, m.keys.Left):
			m.roamKey(action.Action{DX: -panStep})
		case key.Matches(msg, m.keys.Right):
			m.roamKey(action.Action{DX: panStep})
		case key.Matches(msg, m.keys.Reset):
			m.geo.Reset()
			m.redraw()
			m.status = "view reset"
		case key.Matches(msg, m.keys.Mode):
			next := (m.gm.SelectedMode() + 1) % (model.SelectMultiple + 1)
			m.gm.SetSelectedMode(next)
			m.redraw()
			m.status = "select mode: " + next.String()
		case key.Matches(msg, m.keys.Select):
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(regionItem); ok {
					m.toggleRegion(it.name)
				}
			}
		default:
			handled = false
		}
		if m.applyActions() {
			m.status = fmt.Sprintf("zoom: %.2fx", m.geo.Zoom())
		}
		if handled {
			return m, nil
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) viewCenter() vec.Vec2 {
	vp := m.geo.Viewport()
	return vec.Vec2{X: (vp.LLx + vp.URx) / 2, Y: (vp.LLy + vp.URy) / 2}
}

// toggleRegion flips a region's selection from the host side and redraws
// so every element picks up the new state.
func (m *Model) toggleRegion(name string) {
	if m.gm.SelectedMode() == model.SelectNone {
		m.status = "selection disabled (s to change mode)"
		return
	}
	m.gm.ToggleSelected(name)
	m.redraw()
	m.afterSelection()
}

func (m *Model) afterSelection() {
	m.refreshRegions()
	if m.showAttrs {
		m.refreshAttrs()
	}
	m.status = fmt.Sprintf("selected: %d", len(m.gm.Selected()))
}

// handleMouse translates terminal mouse events into pointer events for the
// roam controller and the scene. A press and release without movement in
// between is a click.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	p, inside := m.cellToMicro(msg.X, msg.Y)
	ctrl := m.draw.Controller()
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		ctrl.Handle(roam.Pointer{Kind: roam.WheelUp, X: p.X, Y: p.Y})
	case msg.Button == tea.MouseButtonWheelDown:
		ctrl.Handle(roam.Pointer{Kind: roam.WheelDown, X: p.X, Y: p.Y})
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inside {
			return
		}
		m.pressed, m.moved = true, false
		ctrl.Handle(roam.Pointer{Kind: roam.Press, X: p.X, Y: p.Y, Left: true})
	case msg.Action == tea.MouseActionMotion:
		if m.pressed {
			if ctrl.Handle(roam.Pointer{Kind: roam.Move, X: p.X, Y: p.Y}) && m.queue.Len() > 0 {
				m.moved = true
			}
		} else {
			m.updateHover(p, inside)
		}
	case msg.Action == tea.MouseActionRelease:
		ctrl.Handle(roam.Pointer{Kind: roam.Release, X: p.X, Y: p.Y})
		click := m.pressed && !m.moved && inside
		m.pressed = false
		if click && m.draw.Group().DispatchAt(graphic.Click, p) != nil && m.gm.SelectedMode() != model.SelectNone {
			m.afterSelection()
		}
	}
	if m.applyActions() {
		m.status = fmt.Sprintf("zoom: %.2fx", m.geo.Zoom())
	}
}
