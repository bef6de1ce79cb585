package tui

import (
	"log/slog"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"geodraw/internal/action"
	"geodraw/internal/config"
	"geodraw/internal/coord"
	"geodraw/internal/mapdraw"
	"geodraw/internal/model"
	"geodraw/internal/visual"
)

const sidebarWidth = 28

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool
	showAttrs   bool

	status string
	keys   keyMap
	cfg    config.Config
	log    *slog.Logger

	// map state shared across Model copies
	geo   *coord.Geo
	gm    *model.GeoModel
	draw  *mapdraw.MapDraw
	queue *action.Queue
	vmap  visual.Continuous

	mapPath  string
	dataPath string

	// region sidebar and data table
	l   list.Model
	tbl table.Model

	// last laid out map area, in cells
	mapX int
	mapY int
	mapW int
	mapH int

	// pointer
	pressed bool
	moved   bool

	hoverName   string
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64
}

func New(cfg config.Config) Model {
	m := Model{
		helpVisible: true,
		status:      "geomap ready",
		keys:        defaultKeys(),
		cfg:         cfg,
		log:         slog.Default().With("component", "tui"),
		queue:       &action.Queue{},
		mapPath:     cfg.Map.Path,
		dataPath:    cfg.Data.Path,
		vmap: visual.Continuous{
			Min:    cfg.Visual.Min,
			Max:    cfg.Visual.Max,
			Colors: cfg.Visual.Colors,
		},
	}
	m.geo = coord.New(nil)
	m.geo.ScaleMin, m.geo.ScaleMax = cfg.Roam.ScaleMin, cfg.Roam.ScaleMax
	m.gm = model.NewGeoModel(cfg.Map.Type, cfg.Map.Name, cfg.Styles())
	m.gm.SetSelectedMode(model.ParseSelectedMode(cfg.Map.SelectedMode))
	m.gm.Roam = cfg.Roam.Mode
	m.draw = mapdraw.New(m.queue)

	// region list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Regions"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// data table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	if m.mapPath != "" {
		m.loadMap(m.mapPath)
	}
	if m.dataPath != "" {
		m.loadData(m.dataPath)
	}
	return m
}

// NewWithPath overrides the configured map file.
func NewWithPath(cfg config.Config, path string) Model {
	cfg.Map.Path = path
	return New(cfg)
}

func (m Model) Init() tea.Cmd { return nil }
