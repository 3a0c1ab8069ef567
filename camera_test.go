package folio

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraDefaults(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if !cam.CullEnabled {
		t.Error("CullEnabled = false, want true")
	}
	if cam.ScrollOffset() != 0 {
		t.Errorf("ScrollOffset = %f, want 0", cam.ScrollOffset())
	}
	sx, sy := cam.WorldToScreen(0, 0)
	if !approxEqual(sx, 0, epsilon) || !approxEqual(sy, 0, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%f,%f), want (0,0)", sx, sy)
	}
}

func TestCameraScrollBy(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.ScrollBy(250)
	if !approxEqual(cam.ScrollOffset(), 250, epsilon) {
		t.Errorf("ScrollOffset = %f, want 250", cam.ScrollOffset())
	}
	_, sy := cam.WorldToScreen(0, 250)
	if !approxEqual(sy, 0, epsilon) {
		t.Errorf("world y 250 on screen = %f, want 0", sy)
	}
	wx, wy := cam.ScreenToWorld(100, 100)
	if !approxEqual(wx, 100, epsilon) || !approxEqual(wy, 350, epsilon) {
		t.Errorf("ScreenToWorld(100,100) = (%f,%f), want (100,350)", wx, wy)
	}
}

func TestCameraVisibleBounds(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.ScrollBy(1000)
	vb := cam.VisibleBounds()
	if !approxEqual(vb.X, 0, epsilon) || !approxEqual(vb.Y, 1000, epsilon) ||
		!approxEqual(vb.Width, 800, epsilon) || !approxEqual(vb.Height, 600, epsilon) {
		t.Errorf("VisibleBounds = %+v, want {0 1000 800 600}", vb)
	}
}

func TestCameraBoundsClamp(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.SetBounds(Rect{Width: 800, Height: 2000})

	tests := []struct {
		name string
		dy   float64
		want float64
	}{
		{"above top", -500, 0},
		{"inside", 700, 700},
		{"past bottom", 5000, 1400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam.ScrollToOffset(0, 0, nil)
			cam.ScrollBy(tt.dy)
			if !approxEqual(cam.ScrollOffset(), tt.want, epsilon) {
				t.Errorf("ScrollOffset = %f, want %f", cam.ScrollOffset(), tt.want)
			}
		})
	}

	cam.ClearBounds()
	cam.ScrollBy(5000)
	if cam.ScrollOffset() <= 1400 {
		t.Error("ClearBounds should stop clamping")
	}
}

func TestCameraBoundsShorterThanViewport(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.SetBounds(Rect{Width: 800, Height: 300})
	cam.ScrollBy(100)
	if !approxEqual(cam.ScrollOffset(), 0, epsilon) {
		t.Errorf("ScrollOffset = %f, want 0 (pinned to top)", cam.ScrollOffset())
	}
}

func TestCameraScrollToOffsetAnimates(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.ScrollToOffset(1000, 1.0, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("Scrolling = false after ScrollToOffset")
	}

	cam.update(0.5)
	if !approxEqual(cam.ScrollOffset(), 500, 1) {
		t.Errorf("halfway offset = %f, want ~500", cam.ScrollOffset())
	}
	cam.update(0.6)
	if cam.Scrolling() {
		t.Error("Scrolling should be false once the tween finishes")
	}
	if !approxEqual(cam.ScrollOffset(), 1000, 1e-3) {
		t.Errorf("final offset = %f, want 1000", cam.ScrollOffset())
	}
}

func TestCameraScrollToZeroDurationJumps(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.ScrollToOffset(300, 0, nil)
	if cam.Scrolling() {
		t.Error("zero duration should not start a tween")
	}
	if !approxEqual(cam.ScrollOffset(), 300, epsilon) {
		t.Errorf("ScrollOffset = %f, want 300", cam.ScrollOffset())
	}
}

func TestCameraScrollByCancelsTween(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.ScrollToOffset(1000, 1.0, nil)
	cam.ScrollBy(10)
	if cam.Scrolling() {
		t.Error("ScrollBy should cancel the scroll tween")
	}
}

func TestCameraScrollIntoView(t *testing.T) {
	s := NewScene(800, 600)
	section := NewBox("projects", 800, 400, ColorWhite)
	section.SetPosition(0, 1800)
	s.Root().AddChild(section)
	s.refreshTransforms()

	s.Camera().ScrollIntoView(section, 0, nil)
	if !approxEqual(s.Camera().ScrollOffset(), 1800, epsilon) {
		t.Errorf("ScrollOffset = %f, want 1800", s.Camera().ScrollOffset())
	}

	detached := NewBox("detached", 10, 10, ColorWhite)
	s.Camera().ScrollIntoView(detached, 0, nil)
	s.Camera().ScrollIntoView(nil, 0, nil)
	if !approxEqual(s.Camera().ScrollOffset(), 1800, epsilon) {
		t.Error("detached or nil nodes should be ignored")
	}
}

func TestShouldCull(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 800, Height: 600}
	root := NewContainer("root")
	inside := NewBox("inside", 10, 10, ColorWhite)
	inside.SetPosition(100, 100)
	outside := NewBox("outside", 10, 10, ColorWhite)
	outside.SetPosition(100, 2000)
	container := NewContainer("container")
	container.SetPosition(100, 2000)
	root.AddChild(inside)
	root.AddChild(outside)
	root.AddChild(container)
	updateWorldTransform(root, identityTransform, 1, false)

	if shouldCull(inside, bounds) {
		t.Error("visible node culled")
	}
	if !shouldCull(outside, bounds) {
		t.Error("off-screen node not culled")
	}
	if shouldCull(container, bounds) {
		t.Error("containers are never culled")
	}
}
