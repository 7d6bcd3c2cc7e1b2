// Package config loads optional user settings from a .nadestacked.yaml file.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Jearnest94/NadeStacked/internal/analysis"
	"github.com/Jearnest94/NadeStacked/internal/model"
)

// markerSpec mirrors one marker entry in the config file.
type markerSpec struct {
	Label   string  `mapstructure:"label"`
	Seconds float64 `mapstructure:"seconds"`
	Display string  `mapstructure:"display"`
	Color   string  `mapstructure:"color"`
}

// Config holds the settings the analyze command honors.
type Config struct {
	OutputDir string             // empty → directory derived from the demo path
	Markers   []model.TimeMarker // empty entries in the file fall back to defaults
}

// Load reads the config file. When path is non-empty that exact file is read
// and must exist; otherwise .nadestacked.yaml is searched in the current
// directory and the home directory, and a missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("outputDir", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".nadestacked")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return &Config{Markers: analysis.DefaultMarkers()}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var specs []markerSpec
	if err := v.UnmarshalKey("markers", &specs); err != nil {
		return nil, fmt.Errorf("parse markers: %w", err)
	}

	cfg := &Config{OutputDir: v.GetString("outputDir")}
	for _, s := range specs {
		if s.Label == "" || s.Seconds <= 0 {
			return nil, fmt.Errorf("marker %q: label and positive seconds are required", s.Label)
		}
		display := s.Display
		if display == "" {
			display = s.Label
		}
		color := s.Color
		if color == "" {
			color = "red"
		}
		cfg.Markers = append(cfg.Markers, model.TimeMarker{
			Label:   s.Label,
			Seconds: s.Seconds,
			Display: display,
			Color:   color,
		})
	}
	if len(cfg.Markers) == 0 {
		cfg.Markers = analysis.DefaultMarkers()
	}
	return cfg, nil
}
