package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vec2/camera"
	"github.com/pthm-cable/vec2/vector"
)

var (
	gridColor      = rl.Color{R: 35, G: 42, B: 50, A: 255}
	seamColor      = rl.Color{R: 70, G: 80, B: 95, A: 255}
	attractorColor = rl.Color{R: 240, G: 200, B: 80, A: 255}
)

// DrawGrid draws world grid lines every spacing units. The wrap seam at
// x = 0 and y = 0 is highlighted.
func DrawGrid(cam *camera.Camera, spacing float64) {
	if spacing <= 0 {
		return
	}
	for x := 0.0; x < cam.World.X; x += spacing {
		s := cam.WorldToScreen(vector.Vector2{X: x, Y: cam.Center.Y})
		if s.X < 0 || s.X > cam.Viewport.X {
			continue
		}
		c := gridColor
		if x == 0 {
			c = seamColor
		}
		rl.DrawLineV(rl.Vector2{X: float32(s.X), Y: 0}, rl.Vector2{X: float32(s.X), Y: float32(cam.Viewport.Y)}, c)
	}
	for y := 0.0; y < cam.World.Y; y += spacing {
		s := cam.WorldToScreen(vector.Vector2{X: cam.Center.X, Y: y})
		if s.Y < 0 || s.Y > cam.Viewport.Y {
			continue
		}
		c := gridColor
		if y == 0 {
			c = seamColor
		}
		rl.DrawLineV(rl.Vector2{X: 0, Y: float32(s.Y)}, rl.Vector2{X: float32(cam.Viewport.X), Y: float32(s.Y)}, c)
	}
}

// DrawAttractor draws the attractor marker and its dead zone.
func DrawAttractor(cam *camera.Camera, p vector.Vector2, minDistance float64, time float32) {
	s := ToRaylib(*cam.WorldToScreen(p))
	pulse := 1 + 0.15*float32(math.Sin(float64(time)*3))

	rl.DrawCircleV(s, 6*pulse, attractorColor)
	if minDistance > 0 {
		rl.DrawCircleLinesV(s, float32(minDistance*cam.Zoom), rl.Fade(attractorColor, 0.4))
	}
}
