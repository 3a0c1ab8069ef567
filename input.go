package folio

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers    = 10   // pointer 0 = mouse, 1-9 = touch
	wheelStep      = 48.0 // world pixels scrolled per wheel notch
	touchDeadZone  = 6.0  // pixels of touch travel before a tap becomes a scroll
	mousePointerID = 0
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	seen      bool // at least one position has been observed
	startX    float64
	startY    float64
	lastX     float64 // screen space
	lastY     float64
	hitNode   *Node
	hoverPath []*Node // hovered node and its ancestors, innermost first
	scrolling bool    // touch gesture turned into a page scroll
	button    MouseButton
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type windowHandler struct {
	id uint32
	fn func()
}

type scrollHandler struct {
	id uint32
	fn func(ScrollContext)
}

type handlerRegistry struct {
	pointerDown  []pointerHandler
	pointerUp    []pointerHandler
	pointerMove  []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	click        []pointerHandler
	windowEnter  []windowHandler
	windowLeave  []windowHandler
	scroll       []scrollHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice is
// a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removeByID(h.reg.pointerDown, h.id, pointerHandlerID)
	case EventPointerUp:
		h.reg.pointerUp = removeByID(h.reg.pointerUp, h.id, pointerHandlerID)
	case EventPointerMove:
		h.reg.pointerMove = removeByID(h.reg.pointerMove, h.id, pointerHandlerID)
	case EventPointerEnter:
		h.reg.pointerEnter = removeByID(h.reg.pointerEnter, h.id, pointerHandlerID)
	case EventPointerLeave:
		h.reg.pointerLeave = removeByID(h.reg.pointerLeave, h.id, pointerHandlerID)
	case EventClick:
		h.reg.click = removeByID(h.reg.click, h.id, pointerHandlerID)
	case EventWindowEnter:
		h.reg.windowEnter = removeByID(h.reg.windowEnter, h.id, windowHandlerID)
	case EventWindowLeave:
		h.reg.windowLeave = removeByID(h.reg.windowLeave, h.id, windowHandlerID)
	case EventScroll:
		h.reg.scroll = removeByID(h.reg.scroll, h.id, scrollHandlerID)
	}
}

func pointerHandlerID(h pointerHandler) uint32 { return h.id }
func windowHandlerID(h windowHandler) uint32   { return h.id }
func scrollHandlerID(h scrollHandler) uint32   { return h.id }

// removeByID removes the entry with the given id, zeroing the vacated slot.
func removeByID[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			copy(s[i:], s[i+1:])
			var zero T
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

func (s *Scene) addPointerHandler(list *[]pointerHandler, event EventType, fn func(PointerContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	*list = append(*list, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: event}
}

// --- Scene-level event registration ---

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return s.addPointerHandler(&s.handlers.pointerDown, EventPointerDown, fn)
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return s.addPointerHandler(&s.handlers.pointerUp, EventPointerUp, fn)
}

// OnPointerMove registers a scene-level callback fired whenever the mouse
// moves, whether or not it is over a node.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.addPointerHandler(&s.handlers.pointerMove, EventPointerMove, fn)
}

// OnPointerEnter registers a scene-level callback fired once for every node
// the pointer enters.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return s.addPointerHandler(&s.handlers.pointerEnter, EventPointerEnter, fn)
}

// OnPointerLeave registers a scene-level callback fired once for every node
// the pointer leaves.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return s.addPointerHandler(&s.handlers.pointerLeave, EventPointerLeave, fn)
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(PointerContext)) CallbackHandle {
	return s.addPointerHandler(&s.handlers.click, EventClick, fn)
}

// OnWindowEnter registers a callback fired when the cursor re-enters the window.
func (s *Scene) OnWindowEnter(fn func()) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.windowEnter = append(s.handlers.windowEnter, windowHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventWindowEnter}
}

// OnWindowLeave registers a callback fired when the cursor leaves the window.
func (s *Scene) OnWindowLeave(fn func()) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.windowLeave = append(s.handlers.windowLeave, windowHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventWindowLeave}
}

// OnScroll registers a callback fired at most once per frame when the page
// scroll offset changed.
func (s *Scene) OnScroll(fn func(ScrollContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.scroll = append(s.handlers.scroll, scrollHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventScroll}
}

// NumHandlers returns how many scene-level callbacks are registered for event.
func (s *Scene) NumHandlers(event EventType) int {
	switch event {
	case EventPointerDown:
		return len(s.handlers.pointerDown)
	case EventPointerUp:
		return len(s.handlers.pointerUp)
	case EventPointerMove:
		return len(s.handlers.pointerMove)
	case EventPointerEnter:
		return len(s.handlers.pointerEnter)
	case EventPointerLeave:
		return len(s.handlers.pointerLeave)
	case EventClick:
		return len(s.handlers.click)
	case EventWindowEnter:
		return len(s.handlers.windowEnter)
	case EventWindowLeave:
		return len(s.handlers.windowLeave)
	case EventScroll:
		return len(s.handlers.scroll)
	}
	return 0
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise derives the box from node dimensions.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := nodeDimensions(n)
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees. Containers are hit-testable only with a
// HitShape.
func (s *Scene) collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	if len(n.children) == 0 {
		return buf
	}
	if !n.childrenSorted {
		s.rebuildSortedChildren(n)
	}
	children := n.children
	if n.sortedChildren != nil {
		children = n.sortedChildren
	}
	for _, child := range children {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// hitTestTree finds the topmost interactable node under (x, y) in the
// tree's own coordinate space.
func (s *Scene) hitTestTree(root *Node, x, y float64) *Node {
	s.hitBuf = s.collectInteractable(root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(x, y)
		if nodeContainsLocal(n, lx, ly) {
			clear(s.hitBuf)
			return n
		}
	}
	clear(s.hitBuf)
	return nil
}

// hitTest checks the overlay (screen space) before the page (world space).
func (s *Scene) hitTest(sx, sy float64) *Node {
	if n := s.hitTestTree(s.overlay, sx, sy); n != nil {
		return n
	}
	wx, wy := s.camera.ScreenToWorld(sx, sy)
	return s.hitTestTree(s.root, wx, wy)
}

// globalCoords returns the coordinates of a screen point in the space of the
// tree that n belongs to.
func (s *Scene) globalCoords(n *Node, sx, sy float64) (float64, float64) {
	if n != nil && isAncestor(s.overlay, n) {
		return sx, sy
	}
	return s.camera.ScreenToWorld(sx, sy)
}

// --- Input processing ---

// processInput is called from Scene.Step to handle one injected event, or
// live mouse, wheel and touch input when running inside the game loop.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.liveInput {
		return
	}
	s.processMouse()
	s.processWheel()
	s.processTouchPointers()
}

// processMouse handles mouse input (pointer 0), including leaving and
// re-entering the window.
func (s *Scene) processMouse() {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	vp := s.camera.Viewport
	inside := sx >= vp.X && sy >= vp.Y && sx < vp.X+vp.Width && sy < vp.Y+vp.Height
	if !inside {
		s.setCursorInside(false)
		return
	}
	s.setCursorInside(true)

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}
	s.processPointer(mousePointerID, sx, sy, pressed, button)
}

// processWheel converts wheel notches into page scrolling.
func (s *Scene) processWheel() {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	s.camera.ScrollBy(-dy * wheelStep)
}

// processTouchPointers handles touch input (pointers 1-9). A touch that
// travels past the dead zone scrolls the page instead of clicking.
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processTouch(slot, float64(tx), float64(ty), true)
	}

	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processTouch(i, ps.lastX, ps.lastY, false)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

func (s *Scene) processTouch(slot int, sx, sy float64, pressed bool) {
	ps := &s.pointers[slot]
	if pressed && ps.down {
		dy := sy - ps.lastY
		if !ps.scrolling {
			tx, ty := sx-ps.startX, sy-ps.startY
			ps.scrolling = tx*tx+ty*ty > touchDeadZone*touchDeadZone
		}
		if ps.scrolling && dy != 0 {
			s.camera.ScrollBy(-dy)
		}
		ps.lastX, ps.lastY = sx, sy
		return
	}
	if !pressed && ps.scrolling {
		ps.down = false
		ps.scrolling = false
		ps.hitNode = nil
		return
	}
	s.processPointer(slot, sx, sy, pressed, MouseButtonLeft)
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// setCursorInside tracks the mouse entering and leaving the window. Leaving
// also leaves every hovered node.
func (s *Scene) setCursorInside(inside bool) {
	if s.cursorKnown && s.cursorInside == inside {
		return
	}
	wasKnown := s.cursorKnown
	s.cursorKnown = true
	s.cursorInside = inside

	ps := &s.pointers[mousePointerID]
	if !inside {
		s.updateHoverPath(mousePointerID, nil, ps.lastX, ps.lastY, ps.button)
		for _, h := range s.handlers.windowLeave {
			h.fn()
		}
		return
	}
	if wasKnown {
		for _, h := range s.handlers.windowEnter {
			h.fn()
		}
	}
}

// CursorInside reports whether the mouse is currently inside the window.
func (s *Scene) CursorInside() bool {
	return s.cursorInside
}

// processPointer runs the pointer state machine for a single pointer at
// screen position (sx, sy).
func (s *Scene) processPointer(pointerID int, sx, sy float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]
	target := s.hitTest(sx, sy)

	s.updateHoverPath(pointerID, target, sx, sy, button)

	moved := !ps.seen || sx != ps.lastX || sy != ps.lastY
	ps.seen = true

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = sx, sy
		ps.hitNode = target
		s.firePointer(EventPointerDown, s.handlers.pointerDown, target, pointerID, sx, sy, button)
	case !pressed && ps.down:
		if ps.hitNode != nil && ps.hitNode == target {
			s.firePointer(EventClick, s.handlers.click, target, pointerID, sx, sy, ps.button)
		}
		s.firePointer(EventPointerUp, s.handlers.pointerUp, target, pointerID, sx, sy, ps.button)
		ps.down = false
		ps.hitNode = nil
	case moved:
		s.firePointer(EventPointerMove, s.handlers.pointerMove, target, pointerID, sx, sy, button)
	}
	ps.lastX, ps.lastY = sx, sy
}

// updateHoverPath fires leave events for nodes no longer under the pointer
// (innermost first) and enter events for newly hovered nodes (outermost
// first). Moving between a node and its own descendant does not leave the
// ancestor.
func (s *Scene) updateHoverPath(pointerID int, target *Node, sx, sy float64, button MouseButton) {
	ps := &s.pointers[pointerID]
	var next []*Node
	for p := target; p != nil; p = p.Parent {
		if p == s.root || p == s.overlay {
			break
		}
		next = append(next, p)
	}

	for _, old := range ps.hoverPath {
		if !containsNode(next, old) && !old.IsDisposed() {
			s.firePointer(EventPointerLeave, s.handlers.pointerLeave, old, pointerID, sx, sy, button)
		}
	}
	for i := len(next) - 1; i >= 0; i-- {
		if !containsNode(ps.hoverPath, next[i]) {
			s.firePointer(EventPointerEnter, s.handlers.pointerEnter, next[i], pointerID, sx, sy, button)
		}
	}
	ps.hoverPath = next
}

func containsNode(list []*Node, n *Node) bool {
	for _, c := range list {
		if c == n {
			return true
		}
	}
	return false
}

// HoveredNodes returns the nodes under the mouse, innermost first. The
// returned slice MUST NOT be mutated.
func (s *Scene) HoveredNodes() []*Node {
	return s.pointers[mousePointerID].hoverPath
}

// --- Event dispatch ---

// firePointer builds a context and runs scene-level handlers, then the
// node's own callbacks and listeners.
func (s *Scene) firePointer(event EventType, handlers []pointerHandler, node *Node, pointerID int, sx, sy float64, button MouseButton) {
	gx, gy := s.globalCoords(node, sx, sy)
	ctx := PointerContext{
		Node: node, GlobalX: gx, GlobalY: gy,
		ScreenX: sx, ScreenY: sy,
		Button: button, PointerID: pointerID,
	}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(gx, gy)
		ctx.UserData = node.UserData
	}
	for _, h := range handlers {
		h.fn(ctx)
	}
	if node != nil {
		node.dispatch(event, ctx)
	}
}

func (s *Scene) fireScroll(ctx ScrollContext) {
	for _, h := range s.handlers.scroll {
		h.fn(ctx)
	}
}
