package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vec2/vector"
)

// Widget colors
var (
	ColorText        = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim     = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorAngleBg     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorAngleNeedle = rl.Color{R: 255, G: 200, B: 100, A: 255}
)

// DrawLabel renders "name: value" and returns the height used.
func DrawLabel(x, y int32, name, value string) int32 {
	rl.DrawText(fmt.Sprintf("%s: %s", name, value), x, y, 16, ColorText)
	return 20
}

// DrawVector renders a vector in text form followed by its magnitude.
func DrawVector(x, y int32, name string, v vector.Vector2) int32 {
	return DrawLabel(x, y, name, fmt.Sprintf("%s |%.1f|", roundedText(v), v.Magnitude()))
}

// DrawCompass renders a needle pointing along dir. A zero vector draws no needle.
func DrawCompass(x, y int32, name string, dir vector.Vector2) int32 {
	size := int32(40)
	centerX := x + 80 + size/2
	centerY := y + size/2

	rl.DrawText(name, x, y+size/2-7, 14, ColorTextDim)

	rl.DrawCircle(centerX, centerY, float32(size/2), ColorAngleBg)
	rl.DrawCircleLines(centerX, centerY, float32(size/2), ColorTextDim)

	// Heading is measured from +x, which is vector.Right
	heading, _ := dir.AngleTo(vector.Right())
	if math.IsNaN(heading) {
		rl.DrawText("-", x+80+size+5, y+size/2-7, 14, ColorTextDim)
		return size + 4
	}
	if dir.Y < 0 {
		heading = 360 - heading
	}

	needle := dir.Normalized()
	needle.Scale(float64(size/2 - 4))
	rl.DrawLineEx(
		rl.Vector2{X: float32(centerX), Y: float32(centerY)},
		rl.Vector2{X: float32(centerX) + float32(needle.X), Y: float32(centerY) + float32(needle.Y)},
		2,
		ColorAngleNeedle,
	)

	rl.DrawText(fmt.Sprintf("%.0f deg", heading), x+80+size+5, y+size/2-7, 14, ColorTextDim)
	return size + 4
}

func roundedText(v vector.Vector2) string {
	return vector.New(math.Round(v.X*10)/10, math.Round(v.Y*10)/10).String()
}
