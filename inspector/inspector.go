// Package inspector shows details for a selected body.
package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vec2/game"
	"github.com/pthm-cable/vec2/vector"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 30
	panelHeight  = 250

	// PickSlack is added to a body's radius when picking by click.
	PickSlack = 5
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSelection   = rl.Color{R: 255, G: 255, B: 255, A: 200}
)

// Inspector tracks the selected body by ID and renders its panel.
type Inspector struct {
	selected    uint32
	hasSelected bool
}

// New creates an inspector with nothing selected.
func New() *Inspector {
	return &Inspector{}
}

// Select picks the body under worldPos. Returns false if there is none, in
// which case the current selection is kept.
func (ins *Inspector) Select(g *game.Game, worldPos vector.Vector2, slack float64) bool {
	b, ok := g.BodyAt(worldPos, slack)
	if ok {
		ins.selected = b.ID
		ins.hasSelected = true
	}
	return ok
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the currently selected body ID.
func (ins *Inspector) Selected() (uint32, bool) {
	return ins.selected, ins.hasSelected
}

// panelOrigin places the panel in the bottom-left corner.
func panelOrigin() (int32, int32) {
	return 10, int32(rl.GetScreenHeight()) - panelHeight - 40
}

// HandleClick returns true if the click landed on the panel and was consumed.
func (ins *Inspector) HandleClick(mouse rl.Vector2) bool {
	if !ins.hasSelected {
		return false
	}
	px, py := panelOrigin()
	closeX := px + PanelWidth - 25
	closeY := py + 5
	if int32(mouse.X) >= closeX && int32(mouse.X) <= closeX+20 &&
		int32(mouse.Y) >= closeY && int32(mouse.Y) <= closeY+20 {
		ins.Deselect()
		return true
	}
	return int32(mouse.X) >= px && int32(mouse.X) <= px+PanelWidth &&
		int32(mouse.Y) >= py && int32(mouse.Y) <= py+panelHeight
}

// DrawSelection rings the selected body at its screen position.
func (ins *Inspector) DrawSelection(g *game.Game, toScreen func(vector.Vector2) *vector.Vector2, zoom float64) {
	b, ok := ins.body(g)
	if !ok {
		return
	}
	s := toScreen(b.Position)
	r := float32(math.Max(4, b.Body.Radius*zoom) + 4)
	rl.DrawCircleLinesV(rl.Vector2{X: float32(s.X), Y: float32(s.Y)}, r, ColorSelection)
}

// Draw renders the inspector panel if a body is selected.
func (ins *Inspector) Draw(g *game.Game) {
	b, ok := ins.body(g)
	if !ok {
		return
	}

	px, py := panelOrigin()
	rl.DrawRectangle(px, py, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(px), Y: float32(py), Width: PanelWidth, Height: panelHeight},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(px, py, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(fmt.Sprintf("BODY %d", b.ID), px+PanelPadding, py+7, 16, ColorHeaderText)

	closeX := px + PanelWidth - 25
	closeY := py + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	x := px + PanelPadding
	y := py + HeaderHeight + PanelPadding

	y += DrawVector(x, y, "Position", b.Position)
	y += DrawVector(x, y, "Velocity", b.Velocity)
	y += DrawLabel(x, y, "Radius", fmt.Sprintf("%.1f  Mass: %.2f", b.Body.Radius, b.Body.Mass))
	y += DrawCompass(x, y, "Heading", b.Velocity)

	y += 4
	rl.DrawLine(x, y, px+PanelWidth-PanelPadding, y, ColorPanelBorder)
	y += 8

	dist, angle, ok := g.AttractorRelation(b)
	if !ok {
		rl.DrawText("(attractor off)", x, y, 14, ColorTextDim)
		return
	}
	y += DrawLabel(x, y, "Attractor", fmt.Sprintf("%.1f away", dist))
	if math.IsNaN(angle) {
		DrawLabel(x, y, "Approach", "-")
	} else {
		DrawLabel(x, y, "Approach", fmt.Sprintf("%.0f deg off", angle))
	}
}

// body resolves the selection, dropping it if the body is gone.
func (ins *Inspector) body(g *game.Game) (game.BodyView, bool) {
	if !ins.hasSelected {
		return game.BodyView{}, false
	}
	b, ok := g.Body(ins.selected)
	if !ok {
		ins.Deselect()
	}
	return b, ok
}
