package game

import (
	"math"

	"github.com/pthm-cable/vec2/vector"
)

// Update runs StepsPerUpdate simulation ticks unless paused.
func (g *Game) Update() {
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
}

// Step advances the simulation by one tick of physics.dt.
func (g *Game) Step() {
	g.integrate(g.cfg.Physics.DT)
	g.tick++
	g.flushTelemetry()
}

// integrate applies semi-implicit Euler: velocity first, then position from
// the new velocity.
func (g *Game) integrate(dt float64) {
	phys := g.cfg.Physics
	damping := math.Max(0, 1-phys.Drag*dt)

	query := g.bodyFilter.Query()
	for query.Next() {
		pos, vel, body, _ := query.Get()

		accel := g.acceleration(pos.Vector2, body.Mass)
		accel.Scale(dt)
		vel.Add(accel)
		vel.Scale(damping)

		if phys.MaxSpeed > 0 && vel.Magnitude() > phys.MaxSpeed {
			vel.Normalize().Scale(phys.MaxSpeed)
		}

		step := vel.Clone()
		step.Scale(dt)
		pos.Add(step)
		pos.Vector2 = *g.wrap(pos.Vector2)
	}
}

// acceleration returns gravity plus the attractor pull at pos. The pull
// follows the shortest path around the world and is zero inside MinDistance.
func (g *Game) acceleration(pos vector.Vector2, mass float64) *vector.Vector2 {
	a := g.gravity.Clone()
	if g.attractor == nil || g.attractorStrength == 0 {
		return a
	}

	toward := g.offset(*g.attractor, pos)
	dist := toward.Magnitude()
	if dist < g.cfg.Attractor.MinDistance || dist == 0 {
		return a
	}

	if mass <= 0 {
		mass = 1
	}
	toward.Normalize().Scale(g.attractorStrength / (dist * dist) / mass)
	a.Add(toward)
	return a
}
