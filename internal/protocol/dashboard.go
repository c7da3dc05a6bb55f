// Package protocol defines the payload shapes exchanged with the
// dashboard front-end, over both the HTTP API and the websocket stream.
package protocol

import "github.com/0r3ntal/RigMonitor/internal/sensor"

// CategoryInfo describes one sensor category for chart axes and legends.
type CategoryInfo struct {
	Category string  `json:"category"`
	Unit     string  `json:"unit"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// OverviewResponse carries the current (latest) reading of every sensor
// in the fleet for one category, one row per sensor id.
type OverviewResponse struct {
	Category string           `json:"category"`
	Unit     string           `json:"unit"`
	Min      float64          `json:"min"`
	Max      float64          `json:"max"`
	Hours    int              `json:"hours"`
	Rows     []sensor.Reading `json:"rows"`
}

// DetailResponse carries the full drill-down series for one sensor.
// Mechanisms lists the distinct corrosion mechanisms seen in the window,
// in order of first appearance; it is empty for other categories.
type DetailResponse struct {
	Category   string           `json:"category"`
	SensorID   int              `json:"sensorId"`
	Unit       string           `json:"unit"`
	Min        float64          `json:"min"`
	Max        float64          `json:"max"`
	Hours      int              `json:"hours"`
	Interval   int              `json:"interval"`
	Mechanisms []string         `json:"mechanisms,omitempty"`
	Readings   []sensor.Reading `json:"readings"`
}

// SnapshotFrame is one websocket push: a fresh overview of every
// category, regenerated from scratch for this refresh tick.
type SnapshotFrame struct {
	Type        string              `json:"type"`
	GeneratedAt int64               `json:"generatedAt"` // milliseconds
	Overviews   []*OverviewResponse `json:"overviews"`
}
