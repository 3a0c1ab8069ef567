package folio

// syntheticKind identifies an injected input event.
type syntheticKind uint8

const (
	synthPointer syntheticKind = iota
	synthScroll
	synthLeaveWindow
	synthEnterWindow
)

// syntheticEvent represents a single injected input event. Screen
// coordinates are used and converted to world coordinates via the camera,
// identical to real mouse input.
type syntheticEvent struct {
	kind             syntheticKind
	screenX, screenY float64
	pressed          bool
	button           MouseButton
	scrollY          float64
}

// InjectMove queues a pointer move (no button held) to the given screen
// coordinates. The event is consumed on the next Step.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthPointer, screenX: x, screenY: y})
}

// InjectPress queues a left button press at the given screen coordinates.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: synthPointer, screenX: x, screenY: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectRelease queues a left button release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: synthPointer, screenX: x, screenY: y, button: MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectScroll queues a scroll of dy world pixels (positive scrolls down).
func (s *Scene) InjectScroll(dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthScroll, scrollY: dy})
}

// InjectLeaveWindow queues the cursor leaving the window.
func (s *Scene) InjectLeaveWindow() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthLeaveWindow})
}

// InjectEnterWindow queues the cursor re-entering the window at (x, y).
func (s *Scene) InjectEnterWindow(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthEnterWindow, screenX: x, screenY: y})
}

// PendingInjected returns the number of queued synthetic events.
func (s *Scene) PendingInjected() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same paths as live input. Returns true if an event was
// consumed (live input is skipped for that frame).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case synthPointer:
		s.setCursorInside(true)
		s.processPointer(mousePointerID, evt.screenX, evt.screenY, evt.pressed, evt.button)
	case synthScroll:
		s.camera.ScrollBy(evt.scrollY)
	case synthLeaveWindow:
		s.setCursorInside(false)
	case synthEnterWindow:
		s.setCursorInside(true)
		s.processPointer(mousePointerID, evt.screenX, evt.screenY, false, MouseButtonLeft)
	}
	return true
}
