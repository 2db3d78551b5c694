package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Bodies       int
	Tick         int32
	FPS          int32
	Paused       bool
	Attractor    string // "[x; y]" or "off"
	Gravity      string
	SpeedMean    float64
	Polarization float64
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	x, y := int32(10), int32(10)

	rl.DrawText(data.Title, x, y, 20, rl.White)
	y += 28

	y = r.DrawLabelValue(x, y, "Bodies", fmt.Sprintf("%d", data.Bodies))
	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%d | FPS %d", data.Tick, data.FPS))
	y = r.DrawLabelValue(x, y, "Attractor", data.Attractor)
	y = r.DrawLabelValue(x, y, "Gravity", data.Gravity)
	y = r.DrawLabelValue(x, y, "Speed", fmt.Sprintf("%.1f", data.SpeedMean))
	y = r.DrawBar(x, y, "Alignment", float32(data.Polarization), 220)

	if data.Paused {
		rl.DrawText("PAUSED", x, y+4, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
