package service

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"

	"github.com/0r3ntal/RigMonitor/internal/config"
	"github.com/0r3ntal/RigMonitor/internal/protocol"
	"github.com/0r3ntal/RigMonitor/internal/sensor"
)

// DashboardService builds the dashboard views. Every call regenerates
// its data from scratch; nothing is cached between refreshes.
type DashboardService struct {
	logger *zap.Logger
	gen    *sensor.Generator
	conf   config.DashboardConfig
}

func NewDashboardService(logger *zap.Logger, gen *sensor.Generator, conf config.DashboardConfig) *DashboardService {
	return &DashboardService{
		logger: logger,
		gen:    gen,
		conf:   conf,
	}
}

// Categories returns chart metadata for every known category.
func (s *DashboardService) Categories() []protocol.CategoryInfo {
	infos := make([]protocol.CategoryInfo, 0, len(sensor.Categories))
	for _, cat := range sensor.Categories {
		p, err := sensor.ProfileFor(cat)
		if err != nil {
			continue
		}
		infos = append(infos, protocol.CategoryInfo{
			Category: string(cat),
			Unit:     p.Unit,
			Min:      p.Min,
			Max:      p.Max,
		})
	}
	return infos
}

// Overview generates a short look-back series for every sensor in the
// fleet and reduces each to its chronologically last reading, one row
// per sensor id in id order.
func (s *DashboardService) Overview(ctx context.Context, cat sensor.Category) (*protocol.OverviewResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := sensor.ProfileFor(cat)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ids := make([]int, s.conf.FleetSize)
	for i := range ids {
		ids[i] = i
	}

	// Series generation is pure, so the fleet can be fanned out safely.
	rows, err := iter.MapErr(ids, func(id *int) (sensor.Reading, error) {
		series, err := s.gen.GenerateAt(now, cat, s.conf.OverviewHours, s.conf.IntervalMinutes, *id)
		if err != nil {
			return sensor.Reading{}, err
		}
		last, _ := series.Last()
		return last, nil
	})
	if err != nil {
		return nil, err
	}

	return &protocol.OverviewResponse{
		Category: string(cat),
		Unit:     p.Unit,
		Min:      p.Min,
		Max:      p.Max,
		Hours:    s.conf.OverviewHours,
		Rows:     rows,
	}, nil
}

// Detail generates the drill-down series for one sensor. Zero hours or
// interval fall back to the configured drill-down window.
func (s *DashboardService) Detail(ctx context.Context, cat sensor.Category, sensorID, hours, intervalMinutes int) (*protocol.DetailResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := sensor.ProfileFor(cat)
	if err != nil {
		return nil, err
	}

	if hours == 0 {
		hours = s.conf.DetailHours
	}
	if intervalMinutes == 0 {
		intervalMinutes = s.conf.IntervalMinutes
	}

	series, err := s.gen.Generate(cat, hours, intervalMinutes, sensorID)
	if err != nil {
		return nil, err
	}

	resp := &protocol.DetailResponse{
		Category: string(cat),
		SensorID: sensorID,
		Unit:     p.Unit,
		Min:      p.Min,
		Max:      p.Max,
		Hours:    hours,
		Interval: intervalMinutes,
		Readings: series.Readings,
	}
	if cat == sensor.Corrosion {
		resp.Mechanisms = distinctMechanisms(series.Readings)
	}
	return resp, nil
}

// Snapshot builds a fresh overview of every category for one websocket
// push.
func (s *DashboardService) Snapshot(ctx context.Context) (*protocol.SnapshotFrame, error) {
	overviews := make([]*protocol.OverviewResponse, 0, len(sensor.Categories))
	for _, cat := range sensor.Categories {
		overview, err := s.Overview(ctx, cat)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, overview)
	}
	s.logger.Debug("dashboard snapshot built", zap.Int("categories", len(overviews)))
	return &protocol.SnapshotFrame{
		Type:        "snapshot",
		GeneratedAt: time.Now().UnixMilli(),
		Overviews:   overviews,
	}, nil
}

// distinctMechanisms lists mechanisms in order of first appearance.
func distinctMechanisms(readings []sensor.Reading) []string {
	seen := make(map[sensor.Mechanism]bool, 4)
	var out []string
	for _, r := range readings {
		if r.Mechanism == "" || seen[r.Mechanism] {
			continue
		}
		seen[r.Mechanism] = true
		out = append(out, string(r.Mechanism))
	}
	return out
}
