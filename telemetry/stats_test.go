package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/vec2/vector"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeWindowStats(t *testing.T) {
	samples := []Sample{
		{Position: vector.Vector2{X: 0, Y: 0}, Velocity: vector.Vector2{X: 3, Y: 4}},
		{Position: vector.Vector2{X: 10, Y: 0}, Velocity: vector.Vector2{X: 6, Y: 8}},
		{Position: vector.Vector2{X: 10, Y: 10}, Velocity: vector.Vector2{X: 0, Y: 0}},
		{Position: vector.Vector2{X: 0, Y: 10}, Velocity: vector.Vector2{X: 0, Y: 0}},
	}
	attractor := vector.New(5, 5)

	ws := ComputeWindowStats(samples, attractor)

	if ws.Bodies != 4 {
		t.Errorf("bodies = %d, want 4", ws.Bodies)
	}
	if math.Abs(ws.SpeedMean-3.75) > 1e-9 {
		t.Errorf("speed mean = %v, want 3.75", ws.SpeedMean)
	}
	// speeds 0, 0, 5, 10: population std = sqrt(((3.75)^2*2 + 1.25^2 + 6.25^2) / 4)
	wantStd := math.Sqrt((3.75*3.75*2 + 1.25*1.25 + 6.25*6.25) / 4)
	if math.Abs(ws.SpeedStd-wantStd) > 1e-9 {
		t.Errorf("speed std = %v, want %v", ws.SpeedStd, wantStd)
	}
	if ws.CentroidX != 5 || ws.CentroidY != 5 {
		t.Errorf("centroid = (%v, %v), want (5, 5)", ws.CentroidX, ws.CentroidY)
	}
	// Two unit vectors along (0.6, 0.8) and two zero vectors
	if math.Abs(ws.Polarization-0.5) > 1e-9 {
		t.Errorf("polarization = %v, want 0.5", ws.Polarization)
	}
	wantDist := math.Sqrt(50)
	if math.Abs(ws.AttractorDist-wantDist) > 1e-9 {
		t.Errorf("attractor dist = %v, want %v", ws.AttractorDist, wantDist)
	}
}

func TestComputeWindowStatsNoAttractor(t *testing.T) {
	samples := []Sample{{Velocity: vector.Vector2{X: 1}}}
	ws := ComputeWindowStats(samples, nil)
	if ws.AttractorDist != 0 {
		t.Errorf("attractor dist = %v, want 0", ws.AttractorDist)
	}
	if ws.Polarization != 1 {
		t.Errorf("polarization = %v, want 1", ws.Polarization)
	}
}

func TestComputeWindowStatsEmpty(t *testing.T) {
	ws := ComputeWindowStats(nil, nil)
	if ws.Bodies != 0 || ws.SpeedMean != 0 || ws.Polarization != 0 {
		t.Error("empty samples should return zero stats")
	}
}
