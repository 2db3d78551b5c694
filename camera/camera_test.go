package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/vec2/vector"
)

func near(a, b vector.Vector2) bool {
	d, _ := a.DistanceTo(&b)
	return d < 0.01
}

func TestNew(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Should be centered on world
	if cam.Center != (vector.Vector2{X: 1280, Y: 720}) {
		t.Errorf("expected camera at [1280; 720], got %v", cam.Center)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Camera center should map to screen center
	s := cam.WorldToScreen(vector.Vector2{X: 1280, Y: 720})
	if !near(*s, vector.Vector2{X: 640, Y: 360}) {
		t.Errorf("expected screen center [640; 360], got %v", s)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(1.5)

	testCases := []vector.Vector2{
		{X: 640, Y: 360},  // center
		{X: 100, Y: 100},  // top-left
		{X: 1200, Y: 600}, // near bottom-right
	}

	for _, tc := range testCases {
		w := cam.ScreenToWorld(tc)
		s := cam.WorldToScreen(*w)
		if !near(*s, tc) {
			t.Errorf("roundtrip failed: %v -> %v -> %v", tc, w, s)
		}
	}
}

func TestToroidalWrap(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.Center.X = 100 // Near left edge

	// A point at the world's right edge is closer going left
	s := cam.WorldToScreen(vector.Vector2{X: 2500, Y: 720})
	if s.X >= 640 {
		t.Errorf("expected point on left of screen, got x=%f", s.X)
	}
}

func TestPanWraps(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.Center.X = 100

	cam.Pan(vector.Vector2{X: -200})

	if math.Abs(cam.Center.X-2460) > 0.001 {
		t.Errorf("expected X to wrap to 2460, got %f", cam.Center.X)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(800, 600, 1600, 800)

	// MinZoom should be max(800/1600, 600/800) = 0.75
	if math.Abs(cam.MinZoom-0.75) > 0.001 {
		t.Errorf("expected MinZoom 0.75, got %f", cam.MinZoom)
	}

	cam.SetZoom(0.1)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}

	cam.ZoomBy(100)
	if cam.Zoom != 4.0 {
		t.Errorf("expected zoom clamped to 4.0, got %f", cam.Zoom)
	}
}

func TestResizeRaisesZoom(t *testing.T) {
	cam := New(800, 600, 1600, 1200)
	cam.SetZoom(cam.MinZoom)

	cam.Resize(1200, 600)
	if math.Abs(cam.Zoom-0.75) > 0.001 {
		t.Errorf("expected zoom raised to 0.75, got %f", cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Visible range: (640, 360) to (1920, 1080)
	if !cam.IsVisible(vector.Vector2{X: 1280, Y: 720}, 10) {
		t.Error("camera center should be visible")
	}
	if cam.IsVisible(vector.Vector2{X: 100, Y: 100}, 10) {
		t.Error("far corner should not be visible")
	}
	if !cam.IsVisible(vector.Vector2{X: 635, Y: 720}, 10) {
		t.Error("point just outside the edge should be visible within its radius")
	}
}
