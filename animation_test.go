package folio

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewContainer("pos")
	node.X = 10
	node.Y = 20

	g := TweenPosition(node, 100, 200, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.X-100) > 0.5 || math.Abs(node.Y-200) > 0.5 {
		t.Errorf("position = (%f, %f), want ~(100, 200)", node.X, node.Y)
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	node := NewContainer("scale")
	g := TweenScale(node, 1.5, 1.5, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.ScaleX-1.5) > 0.01 || math.Abs(node.ScaleY-1.5) > 0.01 {
		t.Errorf("scale = (%f, %f), want ~1.5", node.ScaleX, node.ScaleY)
	}
}

func TestTweenColorAllComponents(t *testing.T) {
	node := NewBox("ring", 32, 32, ColorWhite)
	target := RGB(0x8b, 0x5c, 0xf6).WithAlpha(0.5)

	g := TweenColor(node, target, 1.0, ease.Linear)
	g.Update(0.5)
	if math.Abs(node.Color.A-0.75) > 0.01 {
		t.Errorf("halfway A = %f, want ~0.75", node.Color.A)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	got := []float64{node.Color.R, node.Color.G, node.Color.B, node.Color.A}
	want := []float64{target.R, target.G, target.B, target.A}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 0.01 {
			t.Errorf("component %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestTweenAlphaUpdatesWorldAlpha(t *testing.T) {
	s := NewScene(800, 600)
	node := NewBox("fade", 10, 10, ColorWhite)
	s.Root().AddChild(node)
	s.refreshTransforms()

	g := TweenAlpha(node, 0, 1.0, ease.Linear)
	g.Update(0.5)
	s.refreshTransforms()
	if math.Abs(node.worldAlpha-0.5) > 0.01 {
		t.Errorf("worldAlpha = %f, want ~0.5", node.worldAlpha)
	}
}

func TestTweenBoxSlides(t *testing.T) {
	bar := NewBox("indicator", 40, 2, ColorWhite)
	g := TweenBox(bar, Rect{X: 200, Y: 60, Width: 80, Height: 2}, 0.4, ease.Linear)
	g.Update(0.2)
	if math.Abs(bar.X-100) > 0.5 || math.Abs(bar.Width-60) > 0.5 {
		t.Errorf("halfway = x %f w %f, want ~100, ~60", bar.X, bar.Width)
	}
	g.Update(0.2)
	if !g.Done || math.Abs(bar.X-200) > 0.5 || math.Abs(bar.Width-80) > 0.5 {
		t.Errorf("final = x %f w %f done %v", bar.X, bar.Width, g.Done)
	}
}

func TestTweenGroupDelay(t *testing.T) {
	node := NewContainer("d")
	g := TweenAlpha(node, 0, 0.5, ease.Linear)
	g.Delay = 0.25

	g.Update(0.125)
	if node.Alpha != 1 {
		t.Errorf("Alpha = %f during delay, want 1", node.Alpha)
	}
	// Overshoot past the delay carries into the tween.
	g.Update(0.375)
	if math.Abs(node.Alpha-0.5) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.5", node.Alpha)
	}
}

func TestTweenGroupCancel(t *testing.T) {
	node := NewContainer("c")
	g := TweenPosition(node, 100, 0, 1.0, ease.Linear)
	g.Update(0.5)
	g.Cancel()
	x := node.X
	g.Update(0.5)
	if node.X != x {
		t.Errorf("X moved after Cancel: %f -> %f", x, node.X)
	}
}

func TestTweenGroupStopsOnDisposedNode(t *testing.T) {
	node := NewContainer("gone")
	g := TweenPosition(node, 100, 0, 1.0, ease.Linear)
	node.Dispose()
	g.Update(0.5)
	if !g.Done || node.X != 0 {
		t.Errorf("Done = %v, X = %f; want true and untouched", g.Done, node.X)
	}
}

func TestTweenGroupAsTicker(t *testing.T) {
	s := NewScene(800, 600)
	node := NewBox("t", 10, 10, ColorWhite)
	s.Root().AddChild(node)
	s.AddTicker(TweenScale(node, 2, 2, 0.2, ease.Linear))

	stepFor(s, 0.5)
	if math.Abs(node.ScaleX-2) > 0.01 {
		t.Errorf("ScaleX = %f, want 2", node.ScaleX)
	}
	if s.NumTickers() != 0 {
		t.Errorf("NumTickers = %d, want 0 after completion", s.NumTickers())
	}
}
