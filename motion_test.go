package folio

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// --- Props ---

func TestPropsMerge(t *testing.T) {
	base := Props{}.WithOpacity(1).WithY(0).WithScale(1)
	over := Props{}.WithY(-8)
	got := base.Merge(over)

	if !got.Has(PropOpacity|PropY|PropScale) || got.Has(PropX) {
		t.Errorf("Mask = %b", got.Mask)
	}
	if got.Y != -8 || got.Opacity != 1 || got.Scale != 1 {
		t.Errorf("merged = %+v", got)
	}
}

func TestTransitionChildDelay(t *testing.T) {
	tr := Transition{DelayChildren: 0.3, StaggerChildren: 0.1}
	tests := []struct {
		i    int
		want float64
	}{
		{0, 0.3},
		{1, 0.4},
		{4, 0.7},
	}
	for _, tt := range tests {
		if got := tr.ChildDelay(tt.i); !approxEqual(got, tt.want, 1e-9) {
			t.Errorf("ChildDelay(%d) = %f, want %f", tt.i, got, tt.want)
		}
	}
}

func TestTransitionDefaults(t *testing.T) {
	var tr Transition
	if tr.duration() != DefaultDuration {
		t.Errorf("duration = %f, want %f", tr.duration(), DefaultDuration)
	}
	if tr.easing() == nil {
		t.Error("easing should default")
	}
	if TransitionSpring.String() != "spring" || TransitionTween.String() != "tween" {
		t.Error("TransitionType.String mismatch")
	}
}

// --- Motion ---

func newMotionScene() (*Scene, *Node) {
	s := NewScene(800, 600)
	n := NewBox("card", 100, 50, ColorWhite)
	n.SetPosition(200, 300)
	s.Root().AddChild(n)
	return s, n
}

func TestNewMotionCentersPivot(t *testing.T) {
	s, n := newMotionScene()
	m := NewMotion(s, n)

	if n.PivotX != 50 || n.PivotY != 25 {
		t.Errorf("pivot = (%f, %f), want (50, 25)", n.PivotX, n.PivotY)
	}
	bx, by := m.Base()
	if bx != 200 || by != 300 {
		t.Errorf("Base = (%f, %f), want (200, 300)", bx, by)
	}
	s.refreshTransforms()
	assertRect(t, "bounds", n.WorldBounds(), Rect{X: 200, Y: 300, Width: 100, Height: 50})
}

func TestMotionSetSnaps(t *testing.T) {
	s, n := newMotionScene()
	m := NewMotion(s, n)
	m.Set(Props{}.WithOpacity(0).WithY(50))

	if n.Alpha != 0 {
		t.Errorf("Alpha = %f, want 0", n.Alpha)
	}
	s.refreshTransforms()
	if b := n.WorldBounds(); !approxEqual(b.Y, 350, 1e-9) {
		t.Errorf("bounds Y = %f, want 350", b.Y)
	}
	if m.Animating() {
		t.Error("Set should not start an animation")
	}
}

func TestMotionTweenReachesTarget(t *testing.T) {
	s, n := newMotionScene()
	m := NewMotion(s, n)
	m.Set(Props{}.WithOpacity(0).WithY(50))

	var completed int
	m.OnComplete = func() { completed++ }
	m.Animate(State{
		Props:      Props{}.WithOpacity(1).WithY(0),
		Transition: TweenTransition(0.5, ease.Linear),
	})
	if !m.Animating() {
		t.Fatal("Animating = false after Animate")
	}

	stepFor(s, 0.25)
	cur := m.Current()
	if !approxEqual(cur.Opacity, 0.5, 0.05) {
		t.Errorf("halfway opacity = %f, want ~0.5", cur.Opacity)
	}

	stepFor(s, 0.35)
	cur = m.Current()
	if cur.Opacity != 1 || cur.Y != 0 {
		t.Errorf("final = %+v, want opacity 1 y 0", cur)
	}
	if m.Animating() || completed != 1 {
		t.Errorf("Animating = %v, completed = %d", m.Animating(), completed)
	}
	if n.Alpha != 1 {
		t.Errorf("node Alpha = %f, want 1", n.Alpha)
	}
	if s.NumTickers() != 0 {
		t.Errorf("NumTickers = %d, want 0 once settled", s.NumTickers())
	}
}

func TestMotionSpringReachesTarget(t *testing.T) {
	s, n := newMotionScene()
	m := NewMotion(s, n)
	m.Animate(State{
		Props:      Props{}.WithScale(1.05).WithY(-8),
		Transition: SpringTransition(300, 25),
	})
	stepFor(s, 3)

	cur := m.Current()
	if cur.Scale != 1.05 || cur.Y != -8 {
		t.Errorf("final = %+v, want scale 1.05 y -8", cur)
	}
	if n.ScaleX != 1.05 {
		t.Errorf("node ScaleX = %f, want 1.05", n.ScaleX)
	}
	if m.Animating() {
		t.Error("spring motion should finish")
	}
}

func TestMotionDelay(t *testing.T) {
	s, n := newMotionScene()
	m := NewMotion(s, n)
	m.Set(Props{}.WithOpacity(0))
	m.AnimateAfter(State{
		Props:      Props{}.WithOpacity(1),
		Transition: TweenTransition(0.2, ease.Linear),
	}, 0.3)

	stepFor(s, 0.25)
	if m.Current().Opacity != 0 {
		t.Errorf("opacity = %f during delay, want 0", m.Current().Opacity)
	}
	if !m.Animating() {
		t.Error("a motion waiting out its delay counts as animating")
	}
	stepFor(s, 0.35)
	if m.Current().Opacity != 1 {
		t.Errorf("opacity = %f after delay and duration, want 1", m.Current().Opacity)
	}
}

func TestMotionInterruptContinuesFromCurrent(t *testing.T) {
	s, n := newMotionScene()
	m := NewMotion(s, n)
	m.Set(Props{}.WithY(0))
	var completed int
	m.OnComplete = func() { completed++ }

	m.Animate(State{Props: Props{}.WithY(-100), Transition: TweenTransition(1, ease.Linear)})
	stepFor(s, 0.5)
	mid := m.Current().Y
	if mid > -40 || mid < -60 {
		t.Fatalf("mid Y = %f, want about -50", mid)
	}

	m.Animate(State{Props: Props{}.WithY(0), Transition: TweenTransition(1, ease.Linear)})
	s.Step(frameDT)
	if y := m.Current().Y; y < mid || y > mid+5 {
		t.Errorf("Y after interrupt = %f, want continuing from %f", y, mid)
	}
	stepFor(s, 1.1)
	if m.Current().Y != 0 {
		t.Errorf("Y = %f, want 0", m.Current().Y)
	}
	if completed != 1 {
		t.Errorf("completed = %d, want 1 (cancelled run does not complete)", completed)
	}
}

func TestMotionRepeatYoyo(t *testing.T) {
	s, n := newMotionScene()
	m := NewMotion(s, n)
	tr := TweenTransition(0.5, ease.Linear)
	tr.Repeat = 1
	tr.Yoyo = true
	m.Animate(State{Props: Props{}.WithY(8), Transition: tr})

	stepFor(s, 0.5)
	if !approxEqual(m.Current().Y, 8, 0.2) {
		t.Errorf("after first run Y = %f, want ~8", m.Current().Y)
	}
	stepFor(s, 0.55)
	if m.Current().Y != 0 {
		t.Errorf("after yoyo Y = %f, want 0", m.Current().Y)
	}
	if m.Animating() {
		t.Error("a finite repeat should end")
	}
}

func TestMotionRepeatForever(t *testing.T) {
	s, n := newMotionScene()
	m := NewMotion(s, n)
	tr := TweenTransition(0.2, ease.Linear)
	tr.Repeat = RepeatForever
	tr.Yoyo = true
	m.Animate(State{Props: Props{}.WithScale(1.3), Transition: tr})

	stepFor(s, 5)
	if !m.Animating() {
		t.Error("RepeatForever should keep running")
	}
	m.Stop()
	s.Step(frameDT)
	if s.NumTickers() != 0 {
		t.Errorf("NumTickers = %d after Stop, want 0", s.NumTickers())
	}
}

func TestMotionSetBaseMovesNode(t *testing.T) {
	s, n := newMotionScene()
	m := NewMotion(s, n)
	m.Set(Props{}.WithY(10))
	m.SetBase(0, 0)
	s.refreshTransforms()
	assertRect(t, "bounds", n.WorldBounds(), Rect{X: 0, Y: 10, Width: 100, Height: 50})
}

func TestMotionStopsForDisposedNode(t *testing.T) {
	s, n := newMotionScene()
	m := NewMotion(s, n)
	m.Animate(State{Props: Props{}.WithOpacity(0), Transition: TweenTransition(1, nil)})
	n.Dispose()
	s.Step(frameDT)
	if m.Animating() {
		t.Error("motion should stop once its node is disposed")
	}

	m.Animate(State{Props: Props{}.WithOpacity(1)})
	if m.Animating() {
		t.Error("disposed node should not start animating")
	}
}

func TestMotionEmptyStateIsNoop(t *testing.T) {
	s, n := newMotionScene()
	m := NewMotion(s, n)
	m.Animate(State{})
	if m.Animating() || s.NumTickers() != 0 {
		t.Error("a state with no properties should not animate")
	}
}
