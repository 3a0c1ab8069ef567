package folio

// InteractiveSelector matches the elements that put the custom cursor into
// its hovering state.
var InteractiveSelector = MustParseSelector(`a, button, [role="button"], .skill-tag, .project-card, .tech-tag, .social-link, .contact-link, .nav-link`)

// CursorStart is where the cursor sits before the first pointer move.
const CursorStart = -100

// CursorOptions configures a custom cursor.
type CursorOptions struct {
	// Interactive selects hover targets. The zero Selector means
	// InteractiveSelector.
	Interactive Selector
	// Touch decides whether the device is touch-driven, in which case the
	// cursor is not mounted at all.
	Touch TouchMode

	DotSize, DotHoverSize   float64
	RingSize, RingHoverSize float64
	RingStroke              float64
	RingOpacity             float64
	RingHoverOpacity        float64

	DotColor   Color
	RingColor  Color
	HoverColor Color

	// Ring spring.
	Stiffness float64
	Damping   float64
	Mass      float64

	// FadeDuration times opacity and size changes.
	FadeDuration float64
}

// DefaultCursorOptions returns the standard dot-and-ring cursor.
func DefaultCursorOptions() CursorOptions {
	return CursorOptions{
		Interactive:      InteractiveSelector,
		DotSize:          8,
		DotHoverSize:     12,
		RingSize:         32,
		RingHoverSize:    48,
		RingStroke:       1.5,
		RingOpacity:      0.5,
		RingHoverOpacity: 0.8,
		DotColor:         ColorWhite,
		RingColor:        ColorWhite,
		HoverColor:       RGB(0x8b, 0x5c, 0xf6),
		Stiffness:        200,
		Damping:          25,
		Mass:             1,
		FadeDuration:     0.2,
	}
}

// Cursor draws a dot that follows the pointer exactly and a ring that
// trails it on a spring. It hides until the pointer first moves, hides
// again when the pointer leaves the window, and grows while the pointer is
// over an interactive element.
//
// Touch devices get an inert Cursor: nothing is drawn and no listeners are
// registered. The decision is made once, at mount.
type Cursor struct {
	scene   *Scene
	opts    CursorOptions
	enabled bool

	layer      *Node
	dot, ring  *Node
	dotMotion  *Motion
	ringMotion *Motion
	ringTint   *TweenGroup

	pos   Vec2
	lag   *Spring2D
	moved bool

	visible  *Value[bool]
	hovering *Value[bool]

	handles   []CallbackHandle
	bound     []ListenerHandle
	mutations *MutationObserver
	subs      []Subscription
	ticking   bool
	closed    bool
}

// MountCursor attaches a cursor to the scene's overlay.
func (s *Scene) MountCursor(opts CursorOptions) *Cursor {
	if len(opts.Interactive.compounds) == 0 {
		opts.Interactive = InteractiveSelector
	}
	c := &Cursor{
		scene:    s,
		opts:     opts,
		pos:      Vec2{X: CursorStart, Y: CursorStart},
		visible:  NewValue(false),
		hovering: NewValue(false),
	}
	if opts.Touch.IsTouch() {
		return c
	}
	c.enabled = true

	c.layer = NewContainer("cursor")
	c.layer.ZIndex = 1 << 20
	c.dot = NewCircle("cursor-dot", opts.DotSize, opts.DotColor)
	c.ring = NewRing("cursor-ring", opts.RingSize, opts.RingStroke, opts.RingColor)
	c.layer.AddChild(c.ring)
	c.layer.AddChild(c.dot)
	s.overlay.AddChild(c.layer)

	c.dotMotion = NewMotion(s, c.dot)
	c.ringMotion = NewMotion(s, c.ring)
	c.dotMotion.Set(Props{}.WithOpacity(0))
	c.ringMotion.Set(Props{}.WithOpacity(0))

	c.lag = NewSpring2D(opts.Stiffness, opts.Damping, opts.Mass)
	c.lag.Jump(CursorStart, CursorStart)
	c.place()

	c.handles = append(c.handles,
		s.OnPointerMove(c.onMove),
		s.OnWindowLeave(func() { c.visible.Set(false) }),
		s.OnWindowEnter(func() { c.visible.Set(true) }),
	)
	c.subs = append(c.subs,
		c.visible.Subscribe(func(bool) { c.restyle() }),
		c.hovering.Subscribe(c.onHover),
	)
	c.bind()
	c.mutations = s.ObserveMutations(func([]Mutation) { c.bind() })
	return c
}

// Enabled reports whether the cursor was mounted (false on touch devices).
func (c *Cursor) Enabled() bool {
	return c.enabled
}

// Visible returns the reactive visibility state.
func (c *Cursor) Visible() ReadOnly[bool] {
	return c.visible
}

// Hovering returns whether the pointer is over an interactive element.
func (c *Cursor) Hovering() ReadOnly[bool] {
	return c.hovering
}

// Position returns the raw pointer position.
func (c *Cursor) Position() Vec2 {
	return c.pos
}

// Lagged returns the ring's spring-driven position.
func (c *Cursor) Lagged() Vec2 {
	if c.lag == nil {
		return c.pos
	}
	x, y := c.lag.Pos()
	return Vec2{X: x, Y: y}
}

// Settled reports whether the ring has caught up with the pointer.
func (c *Cursor) Settled() bool {
	return c.lag == nil || c.lag.AtRest()
}

// Dot and Ring return the drawn nodes, or nil when not mounted.
func (c *Cursor) Dot() *Node  { return c.dot }
func (c *Cursor) Ring() *Node { return c.ring }

// NumBound returns how many interactive elements currently carry hover
// listeners.
func (c *Cursor) NumBound() int {
	return len(c.bound) / 2
}

func (c *Cursor) onMove(ctx PointerContext) {
	if c.closed || ctx.PointerID != mousePointerID {
		return
	}
	c.pos = Vec2{X: ctx.ScreenX, Y: ctx.ScreenY}
	c.lag.SetTarget(c.pos.X, c.pos.Y)
	c.place()
	if !c.moved {
		c.moved = true
		c.visible.Set(true)
	}
	if !c.ticking && !c.lag.AtRest() {
		c.ticking = true
		c.scene.AddTicker(c)
	}
}

// Tick advances the ring's spring. The cursor leaves the ticker list once
// the ring settles and rejoins on the next move.
func (c *Cursor) Tick(dt float64) bool {
	if c.closed {
		c.ticking = false
		return false
	}
	moving := c.lag.Step(dt)
	c.place()
	if !moving {
		c.ticking = false
	}
	return moving
}

// place centers the dot on the pointer and the ring on its lagged point.
func (c *Cursor) place() {
	c.dotMotion.SetBase(c.pos.X-c.opts.DotSize/2, c.pos.Y-c.opts.DotSize/2)
	x, y := c.lag.Pos()
	c.ringMotion.SetBase(x-c.opts.RingSize/2, y-c.opts.RingSize/2)
}

func (c *Cursor) onHover(bool) {
	c.restyle()
	to := c.opts.RingColor
	if c.hovering.Get() {
		to = c.opts.HoverColor
	}
	if c.ringTint != nil {
		c.ringTint.Cancel()
	}
	c.ringTint = TweenColor(c.ring, to, float32(c.opts.FadeDuration), EaseOut)
	c.scene.AddTicker(c.ringTint)
}

// restyle animates opacity and size to match the current visible and
// hovering states.
func (c *Cursor) restyle() {
	o := c.opts
	dotOpacity, ringOpacity := 0.0, 0.0
	if c.visible.Get() {
		dotOpacity, ringOpacity = 1, o.RingOpacity
		if c.hovering.Get() {
			ringOpacity = o.RingHoverOpacity
		}
	}
	dotScale, ringScale := 1.0, 1.0
	if c.hovering.Get() {
		dotScale = o.DotHoverSize / o.DotSize
		ringScale = o.RingHoverSize / o.RingSize
	}
	tr := TweenTransition(o.FadeDuration, EaseOut)
	c.dotMotion.Animate(State{Props: Props{}.WithOpacity(dotOpacity).WithScale(dotScale), Transition: tr})
	c.ringMotion.Animate(State{Props: Props{}.WithOpacity(ringOpacity).WithScale(ringScale), Transition: tr})
}

// bind attaches hover listeners to every interactive element, first
// removing those from the previous pass so rebinding never stacks.
func (c *Cursor) bind() {
	if c.closed {
		return
	}
	c.unbind()
	for _, n := range c.scene.QueryAll(c.opts.Interactive) {
		c.bound = append(c.bound,
			n.AddListener(EventPointerEnter, func(PointerContext) { c.hovering.Set(true) }),
			n.AddListener(EventPointerLeave, func(PointerContext) { c.hovering.Set(false) }),
		)
	}
}

func (c *Cursor) unbind() {
	for _, h := range c.bound {
		h.Remove()
	}
	clear(c.bound)
	c.bound = c.bound[:0]
}

// Close removes every listener, observer and node the cursor registered.
func (c *Cursor) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if !c.enabled {
		return
	}
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = nil
	for i := range c.subs {
		c.subs[i].Remove()
	}
	c.subs = nil
	c.mutations.Disconnect()
	c.unbind()
	if c.ringTint != nil {
		c.ringTint.Cancel()
	}
	c.dotMotion.Stop()
	c.ringMotion.Stop()
	c.layer.Dispose()
}
