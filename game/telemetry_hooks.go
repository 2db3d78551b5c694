package game

import (
	"log/slog"

	"github.com/pthm-cable/vec2/components"
	"github.com/pthm-cable/vec2/telemetry"
	"github.com/pthm-cable/vec2/vector"
)

// flushTelemetry closes the stats window once it has run its length.
func (g *Game) flushTelemetry() {
	if g.tick-g.windowStart < g.windowTicks {
		return
	}

	samples := make([]telemetry.Sample, 0, g.bodyCount)
	g.Bodies(func(b BodyView) {
		samples = append(samples, telemetry.Sample{Position: b.Position, Velocity: b.Velocity})
	})

	stats := telemetry.ComputeWindowStats(samples, g.attractor)
	stats.WindowStartTick = g.windowStart
	stats.WindowEndTick = g.tick
	stats.SimTimeSec = float64(g.tick) * g.cfg.Physics.DT
	g.windowStart = g.tick
	g.lastStats = stats

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		slog.Info("stats", "window", stats)
	}

	if err := g.output.WriteStats(stats); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
}

// Snapshot captures the current state.
func (g *Game) Snapshot() *telemetry.Snapshot {
	snapshot := &telemetry.Snapshot{
		Version:     telemetry.SnapshotVersion,
		RunID:       g.runID,
		RNGSeed:     g.seed,
		WorldWidth:  g.cfg.Derived.WorldW,
		WorldHeight: g.cfg.Derived.WorldH,
		Tick:        g.tick,
		Attractor:   g.Attractor(),
		Gravity:     g.gravity,
		Bodies:      make([]telemetry.BodyState, 0, g.bodyCount),
	}

	g.Bodies(func(b BodyView) {
		snapshot.Bodies = append(snapshot.Bodies, telemetry.BodyState{
			ID:       b.ID,
			Position: b.Position,
			Velocity: b.Velocity,
			Radius:   b.Body.Radius,
			Mass:     b.Body.Mass,
		})
	})

	return snapshot
}

// SaveSnapshot writes the current state to the snapshot directory.
func (g *Game) SaveSnapshot() (string, error) {
	path, err := telemetry.SaveSnapshot(g.Snapshot(), g.snapshotDir)
	if err != nil {
		return "", err
	}
	slog.Info("snapshot saved", "run_id", g.runID, "tick", g.tick, "path", path)
	return path, nil
}

// restore replaces spawning with the bodies and settings of a snapshot.
// The run keeps its own ID; the snapshot's run is logged for traceability.
func (g *Game) restore(s *telemetry.Snapshot) {
	g.seed = s.RNGSeed
	g.tick = s.Tick
	g.windowStart = s.Tick
	g.gravity = s.Gravity
	g.attractor = nil
	if s.Attractor != nil {
		g.attractor = s.Attractor.Clone()
	}

	for _, b := range s.Bodies {
		g.addBody(b.Position, b.Velocity,
			components.Body{Radius: b.Radius, Mass: b.Mass},
			components.Tag{ID: b.ID})
		if b.ID >= g.nextID {
			g.nextID = b.ID + 1
		}
	}

	slog.Info("restored snapshot",
		"from_run", s.RunID,
		"tick", s.Tick,
		"bodies", len(s.Bodies),
		"attractor", vectorAttr(g.attractor),
	)
}

func vectorAttr(v *vector.Vector2) string {
	if v == nil {
		return "none"
	}
	return v.String()
}
