package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vec2/camera"
	"github.com/pthm-cable/vec2/game"
	"github.com/pthm-cable/vec2/vector"
)

// BodyRenderer draws bodies as circles with velocity arrows.
type BodyRenderer struct {
	// ArrowScale converts velocity (units/s) to arrow length in world units.
	ArrowScale float64
	ShowArrows bool
	MaxSpeed   float64 // Speed mapped to the hottest colour (0 = 200)
}

// NewBodyRenderer creates a body renderer with arrows enabled.
func NewBodyRenderer(maxSpeed float64) *BodyRenderer {
	return &BodyRenderer{
		ArrowScale: 0.25,
		ShowArrows: true,
		MaxSpeed:   maxSpeed,
	}
}

// Draw renders every visible body through the camera.
func (r *BodyRenderer) Draw(g *game.Game, cam *camera.Camera) {
	g.Bodies(func(b game.BodyView) {
		if !cam.IsVisible(b.Position, b.Body.Radius) {
			return
		}
		screen := cam.WorldToScreen(b.Position)
		color := r.speedColor(b.Velocity.Magnitude())

		radius := float32(math.Max(1.5, b.Body.Radius*cam.Zoom))
		rl.DrawCircleV(ToRaylib(*screen), radius, color)

		if r.ShowArrows {
			tip := b.Velocity.Clone()
			tip.Scale(r.ArrowScale * cam.Zoom)
			tip.Add(screen)
			DrawArrow(*screen, *tip, 1.5, rl.Fade(color, 0.7))
		}
	})
}

// speedColor blends from blue (at rest) to orange (at MaxSpeed).
func (r *BodyRenderer) speedColor(speed float64) rl.Color {
	top := r.MaxSpeed
	if top <= 0 {
		top = 200
	}
	t := float32(math.Min(1, speed/top))
	return rl.Color{
		R: uint8(80 + 175*t),
		G: uint8(160 - 20*t),
		B: uint8(230 - 180*t),
		A: 255,
	}
}

// DrawArrow draws a line from -> to with a small head, in screen space.
func DrawArrow(from, to vector.Vector2, thick float32, color rl.Color) {
	dir := to.Clone()
	dir.Subtract(&from)
	length := dir.Magnitude()
	if length < 1 {
		return
	}
	rl.DrawLineEx(ToRaylib(from), ToRaylib(to), thick, color)

	head := math.Min(8, length*0.4)
	dir.Normalize().Scale(head)
	// Two barbs, each rotated 150 degrees from the shaft
	for _, a := range []float64{5 * math.Pi / 6, -5 * math.Pi / 6} {
		sin, cos := math.Sincos(a)
		barb := vector.New(dir.X*cos-dir.Y*sin, dir.X*sin+dir.Y*cos)
		barb.Add(&to)
		rl.DrawLineEx(ToRaylib(to), ToRaylib(*barb), thick, color)
	}
}
