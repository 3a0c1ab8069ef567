package folio

import "testing"

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// --- nodeContainsLocal tests ---

func TestNodeContainsLocal_WithHitShape(t *testing.T) {
	n := NewBox("test", 64, 64, ColorWhite)
	n.HitShape = HitCircle{CenterX: 32, CenterY: 32, Radius: 16}

	if !nodeContainsLocal(n, 32, 32) {
		t.Error("should contain center of circle")
	}
	if nodeContainsLocal(n, 0, 0) {
		t.Error("should not contain corner outside circle")
	}
}

func TestNodeContainsLocal_DefaultBox(t *testing.T) {
	n := NewBox("test", 100, 50, ColorWhite)
	if !nodeContainsLocal(n, 50, 25) {
		t.Error("should contain center")
	}
	if nodeContainsLocal(n, 101, 25) {
		t.Error("should not contain point right of the box")
	}
}

func TestNodeContainsLocal_ContainerNoHitShape(t *testing.T) {
	n := NewContainer("c")
	if nodeContainsLocal(n, 0, 0) {
		t.Error("unsized container should not be hit")
	}
}

// --- Hit test traversal tests ---

func interactiveBox(name string, x, y, w, h float64) *Node {
	n := NewBox(name, w, h, ColorWhite)
	n.SetPosition(x, y)
	n.Interactable = true
	return n
}

func TestHitTest_TopmostNode(t *testing.T) {
	s := NewScene(800, 600)
	bottom := interactiveBox("bottom", 0, 0, 100, 100)
	top := interactiveBox("top", 0, 0, 100, 100)
	s.Root().AddChild(bottom)
	s.Root().AddChild(top)
	s.refreshTransforms()

	if got := s.hitTest(50, 50); got != top {
		t.Errorf("hitTest = %v, want top", got)
	}
}

func TestHitTest_SkipsInvisible(t *testing.T) {
	s := NewScene(800, 600)
	bottom := interactiveBox("bottom", 0, 0, 100, 100)
	top := interactiveBox("top", 0, 0, 100, 100)
	top.Visible = false
	s.Root().AddChild(bottom)
	s.Root().AddChild(top)
	s.refreshTransforms()

	if got := s.hitTest(50, 50); got != bottom {
		t.Errorf("hitTest = %v, want bottom", got)
	}
}

func TestHitTest_SkipsNonInteractableSubtree(t *testing.T) {
	s := NewScene(800, 600)
	group := NewContainer("group")
	group.AddChild(interactiveBox("inner", 0, 0, 100, 100))
	s.Root().AddChild(group)
	s.refreshTransforms()

	if got := s.hitTest(50, 50); got != nil {
		t.Errorf("hitTest = %v, want nil (parent not interactable)", got.Name)
	}
	group.Interactable = true
	if got := s.hitTest(50, 50); got == nil || got.Name != "inner" {
		t.Errorf("hitTest = %v, want inner", got)
	}
}

func TestHitTest_RespectsZIndex(t *testing.T) {
	s := NewScene(800, 600)
	high := interactiveBox("high", 0, 0, 100, 100)
	high.SetZIndex(10)
	low := interactiveBox("low", 0, 0, 100, 100)
	s.Root().AddChild(high)
	s.Root().AddChild(low)
	s.refreshTransforms()

	if got := s.hitTest(50, 50); got != high {
		t.Errorf("hitTest = %v, want high", got.Name)
	}
}

func TestHitTest_OverlayBeforePage(t *testing.T) {
	s := NewScene(800, 600)
	page := interactiveBox("page", 0, 0, 800, 600)
	header := interactiveBox("header", 0, 0, 800, 72)
	s.Root().AddChild(page)
	s.Overlay().AddChild(header)
	s.refreshTransforms()

	if got := s.hitTest(10, 10); got != header {
		t.Errorf("hitTest = %v, want header", got.Name)
	}
	if got := s.hitTest(10, 300); got != page {
		t.Errorf("hitTest = %v, want page", got.Name)
	}
}

func TestHitTest_FollowsScroll(t *testing.T) {
	s := NewScene(800, 600)
	card := interactiveBox("card", 0, 1000, 200, 100)
	s.Root().AddChild(card)
	s.refreshTransforms()

	if got := s.hitTest(50, 50); got != nil {
		t.Errorf("hitTest before scroll = %v, want nil", got.Name)
	}
	s.Camera().ScrollBy(960)
	if got := s.hitTest(50, 50); got != card {
		t.Errorf("hitTest after scroll = %v, want card", got)
	}
}

// --- Callback dispatch tests ---

func TestSceneLevelCallback_PointerDown(t *testing.T) {
	s := NewScene(800, 600)
	box := interactiveBox("box", 0, 0, 100, 100)
	s.Root().AddChild(box)
	s.refreshTransforms()

	var got *Node
	s.OnPointerDown(func(ctx PointerContext) { got = ctx.Node })
	s.processPointer(mousePointerID, 50, 50, true, MouseButtonLeft)
	if got != box {
		t.Errorf("OnPointerDown node = %v, want box", got)
	}
}

func TestCallbackHandle_Remove(t *testing.T) {
	s := NewScene(800, 600)
	var calls int
	h := s.OnPointerDown(func(PointerContext) { calls++ })
	if s.NumHandlers(EventPointerDown) != 1 {
		t.Fatalf("NumHandlers = %d, want 1", s.NumHandlers(EventPointerDown))
	}
	h.Remove()
	h.Remove()
	if s.NumHandlers(EventPointerDown) != 0 {
		t.Errorf("NumHandlers = %d, want 0", s.NumHandlers(EventPointerDown))
	}
	s.processPointer(mousePointerID, 50, 50, true, MouseButtonLeft)
	if calls != 0 {
		t.Errorf("removed handler ran %d times", calls)
	}
}

func TestClickDetection(t *testing.T) {
	s := NewScene(800, 600)
	box := interactiveBox("box", 0, 0, 100, 100)
	box.UserData = "https://example.com"
	s.Root().AddChild(box)
	s.refreshTransforms()

	var clicks int
	var data any
	box.OnClick = func(ctx PointerContext) {
		clicks++
		data = ctx.UserData
	}
	s.processPointer(mousePointerID, 50, 50, true, MouseButtonLeft)
	s.processPointer(mousePointerID, 55, 52, false, MouseButtonLeft)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if data != "https://example.com" {
		t.Errorf("UserData = %v, want the node's url", data)
	}
}

func TestClickNotFiredOnDifferentNode(t *testing.T) {
	s := NewScene(800, 600)
	a := interactiveBox("a", 0, 0, 100, 100)
	b := interactiveBox("b", 200, 0, 100, 100)
	s.Root().AddChild(a)
	s.Root().AddChild(b)
	s.refreshTransforms()

	var clicks int
	s.OnClick(func(PointerContext) { clicks++ })
	s.processPointer(mousePointerID, 50, 50, true, MouseButtonLeft)
	s.processPointer(mousePointerID, 250, 50, false, MouseButtonLeft)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}

func TestContextCoordinates(t *testing.T) {
	s := NewScene(800, 600)
	box := interactiveBox("box", 100, 1100, 100, 100)
	s.Root().AddChild(box)
	s.Camera().ScrollBy(1000)
	s.refreshTransforms()

	var ctx PointerContext
	box.OnPointerMove = func(c PointerContext) { ctx = c }
	s.processPointer(mousePointerID, 120, 130, false, MouseButtonLeft)
	if ctx.ScreenX != 120 || ctx.ScreenY != 130 {
		t.Errorf("screen = (%v, %v), want (120, 130)", ctx.ScreenX, ctx.ScreenY)
	}
	if !approxEqual(ctx.GlobalY, 1130, epsilon) {
		t.Errorf("GlobalY = %v, want 1130", ctx.GlobalY)
	}
	if !approxEqual(ctx.LocalX, 20, epsilon) || !approxEqual(ctx.LocalY, 30, epsilon) {
		t.Errorf("local = (%v, %v), want (20, 30)", ctx.LocalX, ctx.LocalY)
	}
}

// --- Hover tests ---

func TestHoverPathEnterLeaveOrder(t *testing.T) {
	s := NewScene(800, 600)
	card := interactiveBox("card", 0, 0, 300, 300)
	tag := interactiveBox("tag", 10, 10, 50, 20)
	card.AddChild(tag)
	s.Root().AddChild(card)
	s.refreshTransforms()

	var events []string
	record := func(n *Node) {
		n.AddListener(EventPointerEnter, func(PointerContext) { events = append(events, "enter "+n.Name) })
		n.AddListener(EventPointerLeave, func(PointerContext) { events = append(events, "leave "+n.Name) })
	}
	record(card)
	record(tag)

	s.processPointer(mousePointerID, 20, 20, false, MouseButtonLeft)
	want := []string{"enter card", "enter tag"}
	assertEvents(t, "enter tag", events, want)

	events = nil
	s.processPointer(mousePointerID, 200, 200, false, MouseButtonLeft)
	assertEvents(t, "back to card", events, []string{"leave tag"})

	events = nil
	s.processPointer(mousePointerID, 700, 500, false, MouseButtonLeft)
	assertEvents(t, "leave all", events, []string{"leave card"})

	if len(s.HoveredNodes()) != 0 {
		t.Errorf("HoveredNodes = %d, want 0", len(s.HoveredNodes()))
	}
}

func TestHoverLeavesInnermostFirst(t *testing.T) {
	s := NewScene(800, 600)
	card := interactiveBox("card", 0, 0, 300, 300)
	tag := interactiveBox("tag", 10, 10, 50, 20)
	card.AddChild(tag)
	s.Root().AddChild(card)
	s.refreshTransforms()

	var events []string
	s.OnPointerLeave(func(ctx PointerContext) { events = append(events, ctx.Node.Name) })
	s.processPointer(mousePointerID, 20, 20, false, MouseButtonLeft)
	s.processPointer(mousePointerID, 700, 500, false, MouseButtonLeft)
	assertEvents(t, "leave order", events, []string{"tag", "card"})
}

func TestWindowLeaveClearsHover(t *testing.T) {
	s := NewScene(800, 600)
	box := interactiveBox("box", 0, 0, 100, 100)
	s.Root().AddChild(box)
	s.refreshTransforms()

	var left, windowLeft, windowEnter int
	box.OnPointerLeave = func(PointerContext) { left++ }
	s.OnWindowLeave(func() { windowLeft++ })
	s.OnWindowEnter(func() { windowEnter++ })

	s.setCursorInside(true)
	if windowEnter != 0 {
		t.Error("the first observation should not count as re-entering")
	}
	s.processPointer(mousePointerID, 50, 50, false, MouseButtonLeft)
	s.setCursorInside(false)
	if left != 1 || windowLeft != 1 {
		t.Errorf("left = %d, windowLeft = %d, want 1 and 1", left, windowLeft)
	}
	if s.CursorInside() {
		t.Error("CursorInside should be false")
	}
	s.setCursorInside(false)
	if windowLeft != 1 {
		t.Error("repeated leave should not fire again")
	}
	s.setCursorInside(true)
	if windowEnter != 1 {
		t.Errorf("windowEnter = %d, want 1", windowEnter)
	}
}

func assertEvents(t *testing.T, name string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: events = %v, want %v", name, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: events = %v, want %v", name, got, want)
			return
		}
	}
}

// --- collectInteractable tests ---

func TestCollectInteractable_SkipsInvisibleSubtree(t *testing.T) {
	s := NewScene(800, 600)
	group := NewContainer("group")
	group.Interactable = true
	group.Visible = false
	group.AddChild(interactiveBox("child", 0, 0, 10, 10))
	s.Root().AddChild(group)

	buf := s.collectInteractable(s.Root(), nil)
	if len(buf) != 0 {
		t.Errorf("collected %d nodes, want 0", len(buf))
	}
}

func TestCollectInteractable_ContainerWithHitShape(t *testing.T) {
	s := NewScene(800, 600)
	group := NewContainer("group")
	group.Interactable = true
	group.HitShape = HitRect{Width: 100, Height: 100}
	s.Root().AddChild(group)

	buf := s.collectInteractable(s.Root(), nil)
	if len(buf) != 1 || buf[0] != group {
		t.Errorf("collected %v, want [group]", buf)
	}
}
