// Package game runs the kinematics sandbox: bodies moving under gravity and a
// point attractor in a toroidal world.
package game

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/vec2/components"
	"github.com/pthm-cable/vec2/config"
	"github.com/pthm-cable/vec2/telemetry"
	"github.com/pthm-cable/vec2/vector"
)

// Options configures a Game beyond what the YAML config holds.
type Options struct {
	Seed           int64
	LogStats       bool    // Log window stats via slog
	StatsWindowSec float64 // 0 = use config
	SnapshotDir    string  // Where SaveSnapshot and Unload write snapshots ("" = disabled)
	OutputDir      string  // CSV stats and config copy ("" = disabled)
	RestorePath    string  // Start from this snapshot instead of spawning
	StepsPerUpdate int

	// StatsCallback is called with every completed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// BodyView is a read-only copy of a body handed to callers.
type BodyView struct {
	ID       uint32
	Position vector.Vector2
	Velocity vector.Vector2
	Body     components.Body
}

// Game holds the complete sandbox state.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand
	seed  int64
	runID string

	bodyMapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Body,
		components.Tag,
	]
	bodyFilter *ecs.Filter4[
		components.Position,
		components.Velocity,
		components.Body,
		components.Tag,
	]

	gravity           vector.Vector2
	attractor         *vector.Vector2 // nil when disabled
	attractorStrength float64

	tick           int32
	nextID         uint32
	bodyCount      int
	stepsPerUpdate int
	paused         bool

	// Telemetry
	windowStart   int32
	windowTicks   int32
	logStats      bool
	snapshotDir   string
	output        *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
	lastStats     telemetry.WindowStats
}

// NewGameWithOptions creates a sandbox from cfg. Bodies come from the snapshot
// at opts.RestorePath if set, otherwise from the config's seeds and count.
func NewGameWithOptions(cfg *config.Config, opts Options) (*Game, error) {
	world := ecs.NewWorld()

	g := &Game{
		cfg:   cfg,
		world: world,
		seed:  opts.Seed,
		runID: uuid.NewString(),
		bodyMapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Body,
			components.Tag,
		](world),
		bodyFilter: ecs.NewFilter4[
			components.Position,
			components.Velocity,
			components.Body,
			components.Tag,
		](world),
		gravity:           cfg.Physics.Gravity,
		attractorStrength: cfg.Attractor.Strength,
		stepsPerUpdate:    max(opts.StepsPerUpdate, 1),
		logStats:          opts.LogStats,
		snapshotDir:       opts.SnapshotDir,
		statsCallback:     opts.StatsCallback,
	}
	if cfg.Attractor.Enabled {
		g.attractor = cfg.Attractor.Position.Clone()
	}

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}
	g.windowTicks = int32(max(1, math.Round(statsWindow/cfg.Physics.DT)))

	if opts.RestorePath != "" {
		snapshot, err := telemetry.LoadSnapshot(opts.RestorePath)
		if err != nil {
			return nil, fmt.Errorf("restoring snapshot: %w", err)
		}
		g.restore(snapshot)
	} else {
		g.rng = rand.New(rand.NewSource(g.seed))
		g.spawnInitialBodies()
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		g.output.Close()
		return nil, fmt.Errorf("writing config copy: %w", err)
	}

	slog.Info("sandbox created",
		"run_id", g.runID,
		"seed", g.seed,
		"bodies", g.bodyCount,
		"tick", g.tick,
	)

	return g, nil
}

// spawnInitialBodies creates the configured seeds, then Count random bodies.
func (g *Game) spawnInitialBodies() {
	bc := g.cfg.Bodies
	body := components.Body{Radius: bc.Radius, Mass: bc.Mass}

	for _, seed := range bc.Seeds {
		g.spawnBody(seed.Position, seed.Velocity, body)
	}

	for i := 0; i < bc.Count; i++ {
		pos := vector.New(g.rng.Float64()*g.cfg.Derived.WorldW, g.rng.Float64()*g.cfg.Derived.WorldH)
		heading := g.rng.Float64() * 2 * math.Pi
		vel := vector.New(math.Cos(heading), math.Sin(heading))
		vel.Scale(bc.InitialSpeed)
		g.spawnBody(*pos, *vel, body)
	}
}

// spawnBody creates a body with a fresh ID.
func (g *Game) spawnBody(pos, vel vector.Vector2, body components.Body) ecs.Entity {
	tag := components.Tag{ID: g.nextID}
	g.nextID++
	return g.addBody(pos, vel, body, tag)
}

func (g *Game) addBody(pos, vel vector.Vector2, body components.Body, tag components.Tag) ecs.Entity {
	p := components.Position{Vector2: *g.wrap(pos)}
	v := components.Velocity{Vector2: vel}
	entity := g.bodyMapper.NewEntity(&p, &v, &body, &tag)
	g.bodyCount++
	return entity
}

// Reset removes every body and respawns from the config with the original seed.
func (g *Game) Reset() {
	var all []ecs.Entity
	query := g.bodyFilter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		g.bodyMapper.Remove(e)
	}

	g.bodyCount = 0
	g.nextID = 0
	g.tick = 0
	g.windowStart = 0
	g.rng = rand.New(rand.NewSource(g.seed))
	g.spawnInitialBodies()
	slog.Info("sandbox reset", "run_id", g.runID, "bodies", g.bodyCount)
}

// Bodies calls fn with a copy of every body.
func (g *Game) Bodies(fn func(BodyView)) {
	query := g.bodyFilter.Query()
	for query.Next() {
		pos, vel, body, tag := query.Get()
		fn(BodyView{ID: tag.ID, Position: pos.Vector2, Velocity: vel.Vector2, Body: *body})
	}
}

// Body returns the body with the given ID.
func (g *Game) Body(id uint32) (BodyView, bool) {
	var found BodyView
	ok := false
	g.Bodies(func(b BodyView) {
		if !ok && b.ID == id {
			found, ok = b, true
		}
	})
	return found, ok
}

// BodyAt returns the body closest to p whose radius plus slack covers it.
func (g *Game) BodyAt(p vector.Vector2, slack float64) (BodyView, bool) {
	var found BodyView
	best := math.Inf(1)
	g.Bodies(func(b BodyView) {
		d := g.offset(p, b.Position).Magnitude()
		if d <= b.Body.Radius+slack && d < best {
			found, best = b, d
		}
	})
	return found, !math.IsInf(best, 1)
}

// AttractorRelation reports the shortest distance from a body to the
// attractor and the angle in degrees between its velocity and that
// direction. ok is false when the attractor is disabled; angle is NaN for a
// body at rest or sitting on the attractor.
func (g *Game) AttractorRelation(b BodyView) (distance, angle float64, ok bool) {
	if g.attractor == nil {
		return 0, 0, false
	}
	toward := g.offset(*g.attractor, b.Position)
	target := b.Position.Clone()
	target.Add(toward)
	distance, _ = b.Position.DistanceTo(target)
	angle, _ = b.Velocity.AngleTo(toward)
	return distance, angle, true
}

// offset returns the shortest toroidal displacement from -> to.
func (g *Game) offset(to, from vector.Vector2) *vector.Vector2 {
	return vector.New(
		toroidalDelta(to.X, from.X, g.cfg.Derived.WorldW),
		toroidalDelta(to.Y, from.Y, g.cfg.Derived.WorldH),
	)
}

// BodyCount returns the number of live bodies.
func (g *Game) BodyCount() int { return g.bodyCount }

// Attractor returns a copy of the attractor position, or nil when disabled.
func (g *Game) Attractor() *vector.Vector2 {
	if g.attractor == nil {
		return nil
	}
	return g.attractor.Clone()
}

// SetAttractor moves the attractor; nil disables it.
func (g *Game) SetAttractor(p *vector.Vector2) {
	if p == nil {
		g.attractor = nil
		return
	}
	g.attractor = g.wrap(*p)
}

// AttractorStrength returns the current attractor strength.
func (g *Game) AttractorStrength() float64 { return g.attractorStrength }

// SetAttractorStrength sets the attractor strength.
func (g *Game) SetAttractorStrength(s float64) { g.attractorStrength = s }

// Gravity returns the constant acceleration applied to every body.
func (g *Game) Gravity() vector.Vector2 { return g.gravity }

// SetGravity replaces the constant acceleration. Non-finite components are ignored.
func (g *Game) SetGravity(v vector.Vector2) { g.gravity.Set(v.X, v.Y) }

// Paused reports whether Update is a no-op.
func (g *Game) Paused() bool { return g.paused }

// TogglePause flips the paused state and returns the new state.
func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	return g.paused
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 { return g.tick }

// RunID identifies this run in logs and snapshots.
func (g *Game) RunID() string { return g.runID }

// LastStats returns the most recently completed stats window.
func (g *Game) LastStats() telemetry.WindowStats { return g.lastStats }

// WorldSize returns the world dimensions.
func (g *Game) WorldSize() vector.Vector2 {
	return vector.Vector2{X: g.cfg.Derived.WorldW, Y: g.cfg.Derived.WorldH}
}

// Unload saves a final snapshot (if enabled) and closes output files.
func (g *Game) Unload() {
	if g.snapshotDir != "" {
		if _, err := g.SaveSnapshot(); err != nil {
			slog.Error("failed to save final snapshot", "error", err)
		}
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// wrap maps p into the world on both axes.
func (g *Game) wrap(p vector.Vector2) *vector.Vector2 {
	return vector.New(mod(p.X, g.cfg.Derived.WorldW), mod(p.Y, g.cfg.Derived.WorldH))
}

// mod computes the positive modulo.
func mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// in a toroidal space of the given size.
func toroidalDelta(to, from, size float64) float64 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}
