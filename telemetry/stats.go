package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/vec2/vector"
)

// WindowStats holds aggregated kinematics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	Bodies int `csv:"bodies"`

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Mean position, ignoring toroidal wrap
	CentroidX float64 `csv:"centroid_x"`
	CentroidY float64 `csv:"centroid_y"`

	// Length of the mean unit velocity: 1 when all bodies move the same way, ~0 when random
	Polarization float64 `csv:"polarization"`

	// Mean distance to the attractor (0 when disabled)
	AttractorDist float64 `csv:"attractor_dist"`
}

// Sample is the per-body input to ComputeWindowStats.
type Sample struct {
	Position vector.Vector2
	Velocity vector.Vector2
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeWindowStats aggregates samples taken at the end of a window.
// attractor may be nil.
func ComputeWindowStats(samples []Sample, attractor *vector.Vector2) WindowStats {
	var ws WindowStats
	n := len(samples)
	ws.Bodies = n
	if n == 0 {
		return ws
	}

	speeds := make([]float64, n)
	centroid := vector.Zero()
	heading := vector.Zero()
	var attractorDist float64

	for i := range samples {
		s := &samples[i]
		speeds[i] = s.Velocity.Magnitude()
		centroid.Add(&s.Position)
		heading.Add(s.Velocity.Normalized())
		if d, ok := s.Position.DistanceTo(attractor); ok {
			attractorDist += d
		}
	}

	ws.SpeedMean = stat.Mean(speeds, nil)
	ws.SpeedStd = stat.PopStdDev(speeds, nil)
	sort.Float64s(speeds)
	ws.SpeedP50 = Percentile(speeds, 0.50)
	ws.SpeedP90 = Percentile(speeds, 0.90)

	centroid.Scale(1 / float64(n))
	ws.CentroidX, ws.CentroidY = centroid.X, centroid.Y

	heading.Scale(1 / float64(n))
	ws.Polarization = heading.Magnitude()

	if attractor != nil {
		ws.AttractorDist = attractorDist / float64(n)
	}

	return ws
}

// LogValue implements slog.LogValuer.
func (ws WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("tick", int(ws.WindowEndTick)),
		slog.Int("bodies", ws.Bodies),
		slog.Float64("speed_mean", ws.SpeedMean),
		slog.Float64("speed_p90", ws.SpeedP90),
		slog.String("centroid", vector.New(ws.CentroidX, ws.CentroidY).String()),
		slog.Float64("polarization", ws.Polarization),
	)
}
