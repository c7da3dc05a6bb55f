package sensor

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Generator produces synthetic sensor series. Values are drawn
// independently and uniformly within the category range for every
// timestamp; there is no temporal correlation or smoothing. Safe for
// concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a generator with a randomly seeded stream.
func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededGenerator returns a generator with a deterministic stream,
// for reproducible runs and tests.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Generate produces a series for the window ending at the current time.
func (g *Generator) Generate(cat Category, hours, intervalMinutes, sensorID int) (Series, error) {
	return g.GenerateAt(time.Now(), cat, hours, intervalMinutes, sensorID)
}

// GenerateAt produces one reading per grid point over [now-hours, now],
// spaced intervalMinutes apart: floor(hours*60/interval)+1 readings, the
// first at now-hours. The last lands on now exactly when the interval
// divides the window. Unknown categories fail with ErrInvalidCategory.
func (g *Generator) GenerateAt(now time.Time, cat Category, hours, intervalMinutes, sensorID int) (Series, error) {
	p, ok := profiles[cat]
	if !ok {
		return Series{}, fmt.Errorf("%w: %q", ErrInvalidCategory, cat)
	}
	if intervalMinutes <= 0 {
		return Series{}, fmt.Errorf("sampling interval must be positive, got %d", intervalMinutes)
	}

	count := hours*60/intervalMinutes + 1
	start := now.Add(-time.Duration(hours) * time.Hour)
	step := time.Duration(intervalMinutes) * time.Minute

	readings := make([]Reading, 0, count)
	for i := 0; i < count; i++ {
		v := g.uniform(p.Min, p.Max)
		r := Reading{
			Time:     start.Add(time.Duration(i) * step),
			SensorID: sensorID,
			Value:    v,
			Status:   p.classify(v),
		}
		if cat == Corrosion {
			r.Mechanism = g.mechanism()
		}
		readings = append(readings, r)
	}
	return Series{Category: cat, SensorID: sensorID, Readings: readings}, nil
}

func (g *Generator) uniform(lo, hi float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) mechanism() Mechanism {
	g.mu.Lock()
	defer g.mu.Unlock()
	return mechanisms[g.rng.IntN(len(mechanisms))]
}
