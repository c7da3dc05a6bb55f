// Package config holds the application configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DashboardConfig configures the simulated fleet and refresh behaviour.
type DashboardConfig struct {
	FleetSize       int `yaml:"fleetSize"`       // sensor ids 0..FleetSize-1
	RefreshSeconds  int `yaml:"refreshSeconds"`  // websocket push interval
	OverviewHours   int `yaml:"overviewHours"`   // look-back window for current values
	DetailHours     int `yaml:"detailHours"`     // drill-down window
	IntervalMinutes int `yaml:"intervalMinutes"` // sampling interval
}

// LogConfig configures logging output and rotation.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // empty means stdout
	MaxSize    int    `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the built-in configuration: ten simulated sensors per
// category, one-hour overview windows and 24-hour drill-downs sampled
// every ten minutes, refreshed every five seconds.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Dashboard: DashboardConfig{
			FleetSize:       10,
			RefreshSeconds:  5,
			OverviewHours:   1,
			DetailHours:     24,
			IntervalMinutes: 10,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if conf.Dashboard.FleetSize <= 0 {
		return nil, fmt.Errorf("dashboard.fleetSize must be positive, got %d", conf.Dashboard.FleetSize)
	}
	if conf.Dashboard.IntervalMinutes <= 0 {
		return nil, fmt.Errorf("dashboard.intervalMinutes must be positive, got %d", conf.Dashboard.IntervalMinutes)
	}
	if conf.Dashboard.RefreshSeconds <= 0 {
		return nil, fmt.Errorf("dashboard.refreshSeconds must be positive, got %d", conf.Dashboard.RefreshSeconds)
	}
	return conf, nil
}
