package folio

// ScrollDirection is the direction of the most recent scroll movement.
type ScrollDirection uint8

const (
	ScrollDown ScrollDirection = iota // page content moved up; offset grew
	ScrollUp                          // offset shrank
)

// String returns "down" or "up".
func (d ScrollDirection) String() string {
	if d == ScrollUp {
		return "up"
	}
	return "down"
}

// ScrollTracker exposes the page scroll offset and direction as reactive
// values. It recomputes at most once per frame, from the scene's scroll
// notification, however many wheel or touch events arrived.
type ScrollTracker struct {
	scene     *Scene
	offset    *Value[float64]
	direction *Value[ScrollDirection]
	handle    CallbackHandle
	closed    bool
}

// NewScrollTracker registers one scroll listener on the scene. Call Close on
// teardown to remove it. The initial direction is ScrollDown.
func NewScrollTracker(s *Scene) *ScrollTracker {
	t := &ScrollTracker{
		scene:     s,
		offset:    NewValue(s.camera.ScrollOffset()),
		direction: NewValue(ScrollDown),
	}
	t.handle = s.OnScroll(t.onScroll)
	return t
}

func (t *ScrollTracker) onScroll(ctx ScrollContext) {
	prev := t.offset.Get()
	if ctx.Offset > prev {
		t.direction.Set(ScrollDown)
	} else if ctx.Offset < prev {
		t.direction.Set(ScrollUp)
	}
	t.offset.Set(ctx.Offset)
}

// Offset returns the reactive scroll offset in world pixels.
func (t *ScrollTracker) Offset() ReadOnly[float64] {
	return t.offset
}

// Direction returns the reactive scroll direction.
func (t *ScrollTracker) Direction() ReadOnly[ScrollDirection] {
	return t.direction
}

// Close removes the scroll listener. Safe to call more than once.
func (t *ScrollTracker) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.handle.Remove()
}
