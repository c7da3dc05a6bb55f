package sensor

import (
	"fmt"
	"math"
)

// band is a numeric interval with independently open or closed edges.
type band struct {
	lo, hi         float64
	loOpen, hiOpen bool
}

func (b band) contains(v float64) bool {
	if b.loOpen {
		if v <= b.lo {
			return false
		}
	} else if v < b.lo {
		return false
	}
	if b.hiOpen {
		if v >= b.hi {
			return false
		}
	} else if v > b.hi {
		return false
	}
	return true
}

// Profile describes how one category draws and classifies values: the
// uniform sampling range and the Good/Concern bands. The Concern band
// is a superset of the Good band; anything outside both is Malfunction,
// so the three statuses partition the whole value range.
type Profile struct {
	Unit     string
	Min, Max float64

	good, concern band
}

var profiles = map[Category]Profile{
	Corrosion: {
		Unit: "mm/year", Min: 0, Max: 1,
		good:    band{lo: math.Inf(-1), hi: 0.1, hiOpen: true},
		concern: band{lo: math.Inf(-1), hi: 0.4, hiOpen: true},
	},
	Pressure: {
		Unit: "psi", Min: 0, Max: 100,
		good:    band{lo: math.Inf(-1), hi: 80, hiOpen: true},
		concern: band{lo: math.Inf(-1), hi: 95, hiOpen: true},
	},
	Temperature: {
		Unit: "°C", Min: -50, Max: 150,
		good:    band{lo: -20, hi: 120, loOpen: true, hiOpen: true},
		concern: band{lo: -40, hi: 140, loOpen: true, hiOpen: true},
	},
	Acoustic: {
		Unit: "dB", Min: 40, Max: 120,
		good:    band{lo: 60, hi: 90},
		concern: band{lo: 50, hi: 100},
	},
	FlowRate: {
		Unit: "L/min", Min: 0, Max: 1000,
		good:    band{lo: 100, hi: 900, loOpen: true, hiOpen: true},
		concern: band{lo: 50, hi: 950, loOpen: true, hiOpen: true},
	},
}

// ProfileFor returns the sampling and classification profile for cat.
func ProfileFor(cat Category) (Profile, error) {
	p, ok := profiles[cat]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrInvalidCategory, cat)
	}
	return p, nil
}

// Classify maps a value to its health band. It is a pure function of
// (category, value); no history is consulted.
func Classify(cat Category, v float64) (Status, error) {
	p, ok := profiles[cat]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, cat)
	}
	return p.classify(v), nil
}

func (p Profile) classify(v float64) Status {
	switch {
	case p.good.contains(v):
		return StatusGood
	case p.concern.contains(v):
		return StatusConcern
	default:
		return StatusMalfunction
	}
}
