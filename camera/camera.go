// Package camera provides a 2D camera for viewport control over a toroidal world.
package camera

import (
	"math"

	"github.com/pthm-cable/vec2/vector"
)

// Camera controls the viewport into the world.
type Camera struct {
	// Center is the camera center in world coordinates
	Center vector.Vector2

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport is the screen size; World is the wrapping world size
	Viewport vector.Vector2
	World    vector.Vector2

	MinZoom, MaxZoom float64
}

// New creates a camera centered on the world with 1:1 zoom.
func New(viewportW, viewportH, worldW, worldH float64) *Camera {
	c := &Camera{
		Viewport: vector.Vector2{X: viewportW, Y: viewportH},
		World:    vector.Vector2{X: worldW, Y: worldH},
		MaxZoom:  4.0,
	}
	c.MinZoom = c.minZoom()
	c.Reset()
	return c
}

// minZoom keeps the visible area inside the world: at zoom Z the visible
// extent is viewport/Z, which must not exceed the world on either axis.
func (c *Camera) minZoom() float64 {
	return math.Max(c.Viewport.X/c.World.X, c.Viewport.Y/c.World.Y)
}

// delta returns the shortest toroidal offset from the camera center to p.
func (c *Camera) delta(p vector.Vector2) *vector.Vector2 {
	return vector.New(
		toroidalDelta(p.X, c.Center.X, c.World.X),
		toroidalDelta(p.Y, c.Center.Y, c.World.Y),
	)
}

// WorldToScreen converts a world position to screen coordinates, taking the
// shortest way around the world.
func (c *Camera) WorldToScreen(p vector.Vector2) *vector.Vector2 {
	d := c.delta(p)
	d.Scale(c.Zoom)
	d.Add(c.halfViewport())
	return d
}

// ScreenToWorld converts screen coordinates to a wrapped world position.
func (c *Camera) ScreenToWorld(s vector.Vector2) *vector.Vector2 {
	d := s.Clone()
	d.Subtract(c.halfViewport())
	d.Scale(1 / c.Zoom)
	d.Add(&c.Center)
	return c.Wrap(*d)
}

// Wrap maps p into [0, world) on both axes.
func (c *Camera) Wrap(p vector.Vector2) *vector.Vector2 {
	return vector.New(mod(p.X, c.World.X), mod(p.Y, c.World.Y))
}

// IsVisible returns true if a circle at p with the given radius could be on
// screen (conservative check for culling).
func (c *Camera) IsVisible(p vector.Vector2, radius float64) bool {
	d := c.delta(p)
	halfW := c.Viewport.X/(2*c.Zoom) + radius
	halfH := c.Viewport.Y/(2*c.Zoom) + radius
	return math.Abs(d.X) <= halfW && math.Abs(d.Y) <= halfH
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float64) {
	if viewportW == c.Viewport.X && viewportH == c.Viewport.Y {
		return
	}
	c.Viewport.Set(viewportW, viewportH)
	c.MinZoom = c.minZoom()
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
}

// Pan moves the camera by a delta in screen pixels, wrapping at world edges.
func (c *Camera) Pan(screenDelta vector.Vector2) {
	d := screenDelta.Clone()
	d.Scale(1 / c.Zoom)
	c.Center.Add(d)
	c.Center = *c.Wrap(c.Center)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, zoom))
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the world center at zoom 1 (or MinZoom if larger).
func (c *Camera) Reset() {
	c.Center = vector.Vector2{X: c.World.X / 2, Y: c.World.Y / 2}
	c.SetZoom(1.0)
}

func (c *Camera) halfViewport() *vector.Vector2 {
	h := c.Viewport.Clone()
	h.Scale(0.5)
	return h
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

// mod computes the positive modulo (Go's math.Mod can return negative).
func mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
