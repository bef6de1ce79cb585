package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"geodraw/internal/graphic"
	"geodraw/internal/model"
)

// Config holds application configuration.
type Config struct {
	Map    MapConfig
	Data   DataConfig
	Style  StyleConfig
	Visual VisualConfig
	Roam   RoamConfig
	Log    LogConfig
}

// MapConfig names the map instance and its region file.
type MapConfig struct {
	Path string
	Name string
	// Type is "geo" or "series.map".
	Type         string
	SelectedMode string
}

// DataConfig points at an optional CSV of per-region values.
type DataConfig struct {
	Path string
}

// ItemStyleConfig mirrors model.ItemStyle.
type ItemStyleConfig struct {
	Color       string
	AreaColor   string
	BorderColor string
	BorderWidth float64
}

type StyleConfig struct {
	Normal   ItemStyleConfig
	Emphasis ItemStyleConfig
}

// VisualConfig drives the continuous visual map. Min == Max means the
// range is taken from the data.
type VisualConfig struct {
	Enabled bool
	Min     float64
	Max     float64
	Colors  []string
}

type RoamConfig struct {
	Mode     string
	ScaleMin float64
	ScaleMax float64
}

type LogConfig struct {
	File  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix GEOMAP_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("map.path", "")
	v.SetDefault("map.name", "map")
	v.SetDefault("map.type", "series.map")
	v.SetDefault("map.selected_mode", "multiple")
	v.SetDefault("data.path", "")
	v.SetDefault("style.normal.area_color", "#374151")
	v.SetDefault("style.normal.border_color", "#9CA3AF")
	v.SetDefault("style.normal.border_width", 1.0)
	v.SetDefault("style.emphasis.area_color", "#FFA500")
	v.SetDefault("visual.enabled", true)
	v.SetDefault("visual.min", 0.0)
	v.SetDefault("visual.max", 0.0)
	v.SetDefault("visual.colors", []string{})
	v.SetDefault("roam.mode", "true")
	v.SetDefault("roam.scale_min", 0.2)
	v.SetDefault("roam.scale_max", 64.0)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GEOMAP_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "geomap"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GEOMAP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit GEOMAP_CONFIG must exist; the default location is optional
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	c := Config{
		Map: MapConfig{
			Path:         v.GetString("map.path"),
			Name:         v.GetString("map.name"),
			Type:         v.GetString("map.type"),
			SelectedMode: v.GetString("map.selected_mode"),
		},
		Data: DataConfig{Path: v.GetString("data.path")},
		Style: StyleConfig{
			Normal:   itemStyle(v, "style.normal"),
			Emphasis: itemStyle(v, "style.emphasis"),
		},
		Visual: VisualConfig{
			Enabled: v.GetBool("visual.enabled"),
			Min:     v.GetFloat64("visual.min"),
			Max:     v.GetFloat64("visual.max"),
			Colors:  v.GetStringSlice("visual.colors"),
		},
		Roam: RoamConfig{
			Mode:     v.GetString("roam.mode"),
			ScaleMin: v.GetFloat64("roam.scale_min"),
			ScaleMax: v.GetFloat64("roam.scale_max"),
		},
		Log: LogConfig{
			File:  v.GetString("log.file"),
			Level: v.GetString("log.level"),
		},
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func itemStyle(v *viper.Viper, prefix string) ItemStyleConfig {
	return ItemStyleConfig{
		Color:       v.GetString(prefix + ".color"),
		AreaColor:   v.GetString(prefix + ".area_color"),
		BorderColor: v.GetString(prefix + ".border_color"),
		BorderWidth: v.GetFloat64(prefix + ".border_width"),
	}
}

// Validate checks option values that would otherwise fail silently.
func (c Config) Validate() error {
	switch c.Map.Type {
	case "geo", "series.map":
	default:
		return fmt.Errorf("map.type: unknown component type %q", c.Map.Type)
	}
	switch c.Roam.Mode {
	case "true", "false", "move", "scale":
	default:
		return fmt.Errorf("roam.mode: unknown mode %q", c.Roam.Mode)
	}
	for _, s := range []struct {
		key string
		val ItemStyleConfig
	}{{"style.normal", c.Style.Normal}, {"style.emphasis", c.Style.Emphasis}} {
		for field, col := range map[string]string{
			"color":        s.val.Color,
			"area_color":   s.val.AreaColor,
			"border_color": s.val.BorderColor,
		} {
			if col == "" {
				continue
			}
			if _, ok := graphic.ParseColor(col); !ok {
				return fmt.Errorf("%s.%s: invalid colour %q", s.key, field, col)
			}
		}
	}
	for _, col := range c.Visual.Colors {
		if _, ok := graphic.ParseColor(col); !ok {
			return fmt.Errorf("visual.colors: invalid colour %q", col)
		}
	}
	if c.Roam.ScaleMin > 0 && c.Roam.ScaleMax > 0 && c.Roam.ScaleMin > c.Roam.ScaleMax {
		return fmt.Errorf("roam: scale_min %g > scale_max %g", c.Roam.ScaleMin, c.Roam.ScaleMax)
	}
	return nil
}

// Styles converts the style section into model styles.
func (c Config) Styles() model.Styles {
	conv := func(s ItemStyleConfig) model.ItemStyle {
		return model.ItemStyle{
			Color:       s.Color,
			AreaColor:   s.AreaColor,
			BorderColor: s.BorderColor,
			BorderWidth: s.BorderWidth,
		}
	}
	return model.Styles{Normal: conv(c.Style.Normal), Emphasis: conv(c.Style.Emphasis)}
}

// LogLevel parses Log.Level, defaulting to info.
func (c Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
