package renderer

import (
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vec2/camera"
	"github.com/pthm-cable/vec2/config"
	"github.com/pthm-cable/vec2/game"
	"github.com/pthm-cable/vec2/inspector"
	"github.com/pthm-cable/vec2/ui"
)

const controlsLegend = "Space: pause | R: reset | A: attractor | S: snapshot | V: arrows | Tab: panel | LMB: select/move attractor | RMB drag: pan | Wheel: zoom | C: recenter"

// View owns the camera and UI for an interactive game session.
type View struct {
	game     *game.Game
	cfg      *config.Config
	cam      *camera.Camera
	bodies   *BodyRenderer
	hud      *ui.HUD
	controls *ui.ControlsPanel
	values   ui.ControlValues
	inspect  *inspector.Inspector
}

// NewView creates a view over g sized to the current window.
func NewView(g *game.Game, cfg *config.Config) *View {
	world := g.WorldSize()
	return &View{
		game:     g,
		cfg:      cfg,
		cam:      camera.New(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()), world.X, world.Y),
		bodies:   NewBodyRenderer(cfg.Physics.MaxSpeed),
		hud:      ui.NewHUD(),
		controls: ui.NewControlsPanel(260),
		inspect:  inspector.New(),
		values: ui.ControlValues{
			AttractorStrength: float32(g.AttractorStrength()),
			GravityY:          float32(g.Gravity().Y),
		},
	}
}

// Update handles input and advances the simulation.
func (v *View) Update() {
	v.cam.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	v.handleKeys()
	v.handleMouse()
	v.game.Update()
}

func (v *View) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		v.game.TogglePause()
	case rl.IsKeyPressed(rl.KeyR):
		v.game.Reset()
	case rl.IsKeyPressed(rl.KeyA):
		v.toggleAttractor()
	case rl.IsKeyPressed(rl.KeyS):
		v.saveSnapshot()
	case rl.IsKeyPressed(rl.KeyV):
		v.bodies.ShowArrows = !v.bodies.ShowArrows
	case rl.IsKeyPressed(rl.KeyTab):
		v.controls.Toggle()
	case rl.IsKeyPressed(rl.KeyC):
		v.cam.Reset()
	}
}

func (v *View) handleMouse() {
	mouse := rl.GetMousePosition()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.cam.ZoomBy(1 + 0.1*float64(wheel))
	}

	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := FromRaylib(rl.GetMouseDelta())
		d.Scale(-1)
		v.cam.Pan(d)
	}

	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	if v.inspect.HandleClick(mouse) || v.controls.Contains(int32(rl.GetScreenWidth()), mouse) {
		return
	}

	// Left click selects a body, or moves the attractor on empty space
	p := v.cam.ScreenToWorld(FromRaylib(mouse))
	if v.inspect.Select(v.game, *p, inspector.PickSlack/v.cam.Zoom) {
		return
	}
	v.game.SetAttractor(p)
	slog.Info("attractor moved", "position", p.String())
}

func (v *View) toggleAttractor() {
	if v.game.Attractor() != nil {
		v.game.SetAttractor(nil)
		return
	}
	v.game.SetAttractor(&v.cfg.Attractor.Position)
}

func (v *View) saveSnapshot() {
	path, err := v.game.SaveSnapshot()
	if err != nil {
		slog.Error("snapshot failed", "error", err)
		return
	}
	slog.Info("snapshot saved", "path", path)
}

// Draw renders the world, HUD and controls.
func (v *View) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 18, G: 22, B: 28, A: 255})

	DrawGrid(v.cam, 100)
	v.bodies.Draw(v.game, v.cam)
	if a := v.game.Attractor(); a != nil {
		DrawAttractor(v.cam, *a, v.cfg.Attractor.MinDistance, float32(rl.GetTime()))
	}

	v.inspect.DrawSelection(v.game, v.cam.WorldToScreen, v.cam.Zoom)

	v.drawHUD()
	v.drawControls()
	v.inspect.Draw(v.game)

	rl.EndDrawing()
}

func (v *View) drawHUD() {
	attractor := "off"
	if a := v.game.Attractor(); a != nil {
		attractor = a.String()
	}
	stats := v.game.LastStats()

	v.hud.Draw(ui.HUDData{
		Title:        "Vector2 Sandbox",
		Bodies:       v.game.BodyCount(),
		Tick:         v.game.Tick(),
		FPS:          rl.GetFPS(),
		Paused:       v.game.Paused(),
		Attractor:    attractor,
		Gravity:      v.game.Gravity().String(),
		SpeedMean:    stats.SpeedMean,
		Polarization: stats.Polarization,
	})
	v.hud.DrawControls(int32(rl.GetScreenHeight()), controlsLegend)
}

func (v *View) drawControls() {
	act := v.controls.Draw(int32(rl.GetScreenWidth()), &v.values, v.game.Paused(), v.game.Attractor() != nil)

	v.game.SetAttractorStrength(float64(v.values.AttractorStrength))
	gravity := v.game.Gravity()
	if float32(gravity.Y) != v.values.GravityY {
		// NaN leaves X untouched
		gravity.Set(math.NaN(), float64(v.values.GravityY))
		v.game.SetGravity(gravity)
	}

	if act.TogglePause {
		v.game.TogglePause()
	}
	if act.Reset {
		v.game.Reset()
	}
	if act.ToggleAttractor {
		v.toggleAttractor()
	}
	if act.Snapshot {
		v.saveSnapshot()
	}
}
