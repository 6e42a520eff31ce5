package sketchpad

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	if cam.Zoom() != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom())
	}
	if cam.MinZoom != defaultMinZoom || cam.MaxZoom != defaultMaxZoom {
		t.Errorf("zoom limits = [%v,%v], want defaults", cam.MinZoom, cam.MaxZoom)
	}
	if cam.Viewport.Width != 800 || cam.Viewport.Height != 600 {
		t.Errorf("Viewport = %v, want 800x600", cam.Viewport)
	}
}

func TestCameraIdentityViewMatrix(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	sx, sy := transformPoint(cam.ViewMatrix(), 0, 0)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 120, -40
	cam.ZoomFactor = 2.5
	cam.Rotation = 0.7
	cam.MarkDirty()

	sx, sy := cam.WorldToScreen(33, 77)
	wx, wy := cam.ScreenToWorld(sx, sy)
	if !approxEqual(wx, 33, 1e-9) || !approxEqual(wy, 77, 1e-9) {
		t.Errorf("round trip = (%v,%v), want (33,77)", wx, wy)
	}
}

func TestCameraSetZoomKeepsFocalPoint(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		focal    Vec2
		zoom     float64
	}{
		{"center", 0, Vec2{400, 300}, 2},
		{"corner", 0, Vec2{10, 20}, 3},
		{"zoom out", 0, Vec2{700, 100}, 0.5},
		{"rotated", math.Pi / 6, Vec2{250, 450}, 1.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(Rect{Width: 800, Height: 600})
			cam.X, cam.Y = 50, 75
			cam.Rotation = tt.rotation
			cam.MarkDirty()

			wx, wy := cam.ScreenToWorld(tt.focal.X, tt.focal.Y)
			cam.SetZoom(tt.zoom, tt.focal)

			if cam.Zoom() != tt.zoom {
				t.Errorf("Zoom = %v, want %v", cam.Zoom(), tt.zoom)
			}
			sx, sy := cam.WorldToScreen(wx, wy)
			if !approxEqual(sx, tt.focal.X, 1e-6) || !approxEqual(sy, tt.focal.Y, 1e-6) {
				t.Errorf("focal world point moved to (%v,%v), want %v", sx, sy, tt.focal)
			}
		})
	}
}

func TestCameraSetZoomClamped(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.MinZoom, cam.MaxZoom = 0.5, 4

	cam.SetZoom(100, Vec2{400, 300})
	if cam.Zoom() != 4 {
		t.Errorf("Zoom = %v, want clamped 4", cam.Zoom())
	}
	cam.SetZoom(0.01, Vec2{400, 300})
	if cam.Zoom() != 0.5 {
		t.Errorf("Zoom = %v, want clamped 0.5", cam.Zoom())
	}
}

func TestCameraRelativePan(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetZoom(2, Vec2{400, 300})

	wx, wy := cam.ScreenToWorld(100, 100)
	cam.RelativePan(30, -20)
	sx, sy := cam.WorldToScreen(wx, wy)
	if !approxEqual(sx, 130, 1e-9) || !approxEqual(sy, 80, 1e-9) {
		t.Errorf("content moved to (%v,%v), want (130,80)", sx, sy)
	}
	if !approxEqual(cam.X, -15, 1e-9) || !approxEqual(cam.Y, 10, 1e-9) {
		t.Errorf("camera at (%v,%v), want (-15,10)", cam.X, cam.Y)
	}
}

func TestCameraRelativePanRotated(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Rotation = math.Pi / 2
	cam.MarkDirty()

	wx, wy := cam.ScreenToWorld(200, 200)
	cam.RelativePan(10, 0)
	sx, sy := cam.WorldToScreen(wx, wy)
	if !approxEqual(sx, 210, 1e-9) || !approxEqual(sy, 200, 1e-9) {
		t.Errorf("content moved to (%v,%v), want (210,200)", sx, sy)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(100, 200, 1.0, ease.Linear)

	cam.update(0.5)
	if !approxEqual(cam.X, 50, 0.01) || !approxEqual(cam.Y, 100, 0.01) {
		t.Errorf("halfway = (%v,%v), want (50,100)", cam.X, cam.Y)
	}
	cam.update(0.5)
	if !approxEqual(cam.X, 100, 0.01) || !approxEqual(cam.Y, 200, 0.01) {
		t.Errorf("end = (%v,%v), want (100,200)", cam.X, cam.Y)
	}
	if cam.Animating() {
		t.Error("scroll tween still active after completion")
	}
}

func TestCameraZoomTo(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	focal := Vec2{600, 150}
	wx, wy := cam.ScreenToWorld(focal.X, focal.Y)

	cam.ZoomTo(3, focal, 1.0, ease.Linear)
	cam.update(0.5)
	if !approxEqual(cam.Zoom(), 2, 0.01) {
		t.Errorf("halfway zoom = %v, want 2", cam.Zoom())
	}
	cam.update(0.5)
	if !approxEqual(cam.Zoom(), 3, 0.01) {
		t.Errorf("final zoom = %v, want 3", cam.Zoom())
	}
	sx, sy := cam.WorldToScreen(wx, wy)
	if !approxEqual(sx, focal.X, 1e-3) || !approxEqual(sy, focal.Y, 1e-3) {
		t.Errorf("focal drifted to (%v,%v)", sx, sy)
	}
	if cam.Animating() {
		t.Error("zoom tween still active after completion")
	}
}

func TestCameraDirectCallsCancelAnimations(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(500, 500, 1.0, ease.Linear)
	cam.RelativePan(1, 1)
	if cam.scrollTween != nil {
		t.Error("RelativePan did not cancel ScrollTo")
	}

	cam.ZoomTo(5, Vec2{}, 1.0, ease.Linear)
	cam.SetZoom(2, Vec2{400, 300})
	if cam.zoomTween != nil {
		t.Error("SetZoom did not cancel ZoomTo")
	}
}

func TestCameraBoundsClamp(t *testing.T) {
	cam := NewCamera(Rect{Width: 200, Height: 100})
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 1000, Height: 1000})
	cam.X, cam.Y = 500, 500
	cam.MarkDirty()

	cam.RelativePan(5000, 5000)
	// Visible half-extent is (100, 50) at zoom 1.
	if cam.X != 100 || cam.Y != 50 {
		t.Errorf("camera at (%v,%v), want clamped to (100,50)", cam.X, cam.Y)
	}

	cam.ClearBounds()
	cam.RelativePan(50, 0)
	if cam.X != 50 {
		t.Errorf("camera X = %v after ClearBounds, want 50", cam.X)
	}
}

func TestCameraBoundsSmallerThanView(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetBounds(Rect{X: 10, Y: 20, Width: 100, Height: 100})
	cam.update(1.0 / 60.0)
	if cam.X != 60 || cam.Y != 70 {
		t.Errorf("camera at (%v,%v), want bounds center (60,70)", cam.X, cam.Y)
	}
}

func TestCameraVisibleBounds(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetZoom(2, Vec2{400, 300})
	b := cam.VisibleBounds()
	if !approxEqual(b.X, -200, 1e-9) || !approxEqual(b.Y, -150, 1e-9) ||
		!approxEqual(b.Width, 400, 1e-9) || !approxEqual(b.Height, 300, 1e-9) {
		t.Errorf("VisibleBounds = %+v, want {-200 -150 400 300}", b)
	}
}

func TestCameraDrivenByController(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	g := NewGestureController(cam, DefaultGestureConfig())

	wx, wy := cam.ScreenToWorld(400, 300)
	start(g, Contact{ID: 1, X: 350, Y: 300}, Contact{ID: 2, X: 450, Y: 300})
	move(g, Contact{ID: 1, X: 300, Y: 300}, Contact{ID: 2, X: 500, Y: 300})

	if !approxEqual(cam.Zoom(), 2, epsilon) {
		t.Fatalf("Zoom = %v, want 2", cam.Zoom())
	}
	sx, sy := cam.WorldToScreen(wx, wy)
	if !approxEqual(sx, 400, 1e-9) || !approxEqual(sy, 300, 1e-9) {
		t.Errorf("pinch center drifted to (%v,%v)", sx, sy)
	}
}
