package folio

import "testing"

func TestScrollDirectionString(t *testing.T) {
	if ScrollDown.String() != "down" || ScrollUp.String() != "up" {
		t.Errorf("String = %q, %q", ScrollDown, ScrollUp)
	}
}

func TestScrollTrackerInitialState(t *testing.T) {
	s := NewScene(800, 600)
	s.Camera().ScrollBy(120)
	tr := NewScrollTracker(s)
	defer tr.Close()

	if tr.Offset().Get() != 120 {
		t.Errorf("Offset = %f, want 120", tr.Offset().Get())
	}
	if tr.Direction().Get() != ScrollDown {
		t.Errorf("Direction = %v, want down", tr.Direction().Get())
	}
}

func TestScrollTrackerDirection(t *testing.T) {
	s := NewScene(800, 600)
	tr := NewScrollTracker(s)
	defer tr.Close()

	tests := []struct {
		name   string
		dy     float64
		offset float64
		dir    ScrollDirection
	}{
		{"down", 200, 200, ScrollDown},
		{"up", -50, 150, ScrollUp},
		{"still up after no movement", 0, 150, ScrollUp},
		{"down again", 10, 160, ScrollDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.InjectScroll(tt.dy)
			s.Step(frameDT)
			if got := tr.Offset().Get(); !approxEqual(got, tt.offset, epsilon) {
				t.Errorf("Offset = %f, want %f", got, tt.offset)
			}
			if got := tr.Direction().Get(); got != tt.dir {
				t.Errorf("Direction = %v, want %v", got, tt.dir)
			}
		})
	}
}

func TestScrollTrackerRecomputesOncePerFrame(t *testing.T) {
	s := NewScene(800, 600)
	tr := NewScrollTracker(s)
	defer tr.Close()

	var updates int
	tr.Offset().Subscribe(func(float64) { updates++ })
	for range 5 {
		s.Camera().ScrollBy(10)
	}
	s.Step(frameDT)
	if updates != 1 {
		t.Errorf("updates = %d, want 1", updates)
	}
	if !approxEqual(tr.Offset().Get(), 50, epsilon) {
		t.Errorf("Offset = %f, want 50", tr.Offset().Get())
	}
}

func TestScrollTrackerFollowsSmoothScroll(t *testing.T) {
	s := NewScene(800, 600)
	tr := NewScrollTracker(s)
	defer tr.Close()

	var seen []float64
	tr.Offset().Subscribe(func(v float64) { seen = append(seen, v) })
	s.Camera().ScrollToOffset(600, 0.25, nil)
	stepFor(s, 0.5)

	if len(seen) < 2 {
		t.Fatalf("saw %d offsets, want one per animated frame", len(seen))
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] < seen[i-1] {
			t.Errorf("offset went backwards: %v", seen)
			break
		}
	}
	if !approxEqual(seen[len(seen)-1], 600, 1e-3) {
		t.Errorf("final offset = %f, want 600", seen[len(seen)-1])
	}
	if tr.Direction().Get() != ScrollDown {
		t.Error("direction should be down")
	}
}

func TestScrollTrackerClose(t *testing.T) {
	s := NewScene(800, 600)
	tr := NewScrollTracker(s)
	if s.NumHandlers(EventScroll) != 1 {
		t.Fatalf("NumHandlers(EventScroll) = %d, want 1", s.NumHandlers(EventScroll))
	}
	tr.Close()
	tr.Close()
	if s.NumHandlers(EventScroll) != 0 {
		t.Errorf("NumHandlers(EventScroll) = %d, want 0", s.NumHandlers(EventScroll))
	}
	s.Camera().ScrollBy(100)
	s.Step(frameDT)
	if tr.Offset().Get() != 0 {
		t.Error("closed tracker should not update")
	}
}
