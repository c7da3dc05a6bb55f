// Package sensor models the simulated rig sensor fleet: the sensor
// categories, the three-band health classification, and the synthetic
// series generator that stands in for real instrument readings.
package sensor

import (
	"errors"
	"fmt"
)

// Category identifies one class of rig sensor.
type Category string

const (
	Corrosion   Category = "corrosion"
	Pressure    Category = "pressure"
	Temperature Category = "temperature"
	Acoustic    Category = "acoustic"
	FlowRate    Category = "flow_rate"
)

// Categories lists every known category in dashboard display order.
var Categories = []Category{Corrosion, Pressure, Temperature, Acoustic, FlowRate}

// ErrInvalidCategory is returned when an unknown sensor category is requested.
var ErrInvalidCategory = errors.New("invalid sensor category")

// ParseCategory converts a raw category name into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := profiles[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}
