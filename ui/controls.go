package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlValues are the tunables exposed by the controls panel.
type ControlValues struct {
	AttractorStrength float32
	GravityY          float32
}

// ControlActions reports which buttons were pressed this frame.
type ControlActions struct {
	TogglePause     bool
	Reset           bool
	ToggleAttractor bool
	Snapshot        bool
}

// ControlsPanel renders the right-side panel with sliders and buttons.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		width:    width,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Contains reports whether a screen point lies over the panel, so clicks
// there are not forwarded to the world.
func (c *ControlsPanel) Contains(screenW int32, p rl.Vector2) bool {
	return c.visible && p.X >= float32(screenW-c.width-10)
}

// Draw renders the panel, updating vals in place, and returns button presses.
func (c *ControlsPanel) Draw(screenW int32, vals *ControlValues, paused, attractorOn bool) ControlActions {
	var act ControlActions
	if !c.visible {
		return act
	}

	r := c.renderer
	pad := r.Theme.Padding
	x := screenW - c.width - 10
	y := int32(10)
	r.DrawPanel(x, y, c.width, 250)

	y = r.DrawSectionHeader(x+pad, y+pad, "Controls")
	fx := float32(x + pad)
	fw := float32(c.width - 2*pad)

	rl.DrawText(fmt.Sprintf("Attractor strength %.0f", vals.AttractorStrength), x+pad, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += r.Theme.LineHeight
	vals.AttractorStrength = gui.SliderBar(
		rl.Rectangle{X: fx, Y: float32(y), Width: fw, Height: 16},
		"", "",
		vals.AttractorStrength, 0, 200000,
	)
	y += 26

	rl.DrawText(fmt.Sprintf("Gravity y %.1f", vals.GravityY), x+pad, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += r.Theme.LineHeight
	vals.GravityY = gui.SliderBar(
		rl.Rectangle{X: fx, Y: float32(y), Width: fw, Height: 16},
		"", "",
		vals.GravityY, -200, 200,
	)
	y += 30

	half := (fw - float32(pad)) / 2
	act.TogglePause = gui.Button(rl.Rectangle{X: fx, Y: float32(y), Width: half, Height: 26}, toggleText(paused, "Resume", "Pause"))
	act.Reset = gui.Button(rl.Rectangle{X: fx + half + float32(pad), Y: float32(y), Width: half, Height: 26}, "Reset")
	y += 34
	act.ToggleAttractor = gui.Button(rl.Rectangle{X: fx, Y: float32(y), Width: half, Height: 26}, toggleText(attractorOn, "Attractor off", "Attractor on"))
	act.Snapshot = gui.Button(rl.Rectangle{X: fx + half + float32(pad), Y: float32(y), Width: half, Height: 26}, "Snapshot")

	return act
}

func toggleText(on bool, ifOn, ifOff string) string {
	if on {
		return ifOn
	}
	return ifOff
}
