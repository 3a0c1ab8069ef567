package folio

// DefaultRevealMargin triggers a reveal once a region is 100px inside the
// viewport vertically.
var DefaultRevealMargin = Margin{Top: Px(-100), Right: Px(0), Bottom: Px(-100), Left: Px(0)}

// RevealOptions configures an entrance animation.
type RevealOptions struct {
	// Container animates the region node itself. Its Visible transition's
	// DelayChildren and StaggerChildren time the children.
	Container Variants
	// Child animates each child.
	Child Variants
	// Children lists the animated children in stagger order. Nil means the
	// region's direct children at the time Reveal is called.
	Children []*Node
	// Continuous replays the entrance every time the region re-enters the
	// viewport and resets it to hidden whenever it leaves. The default plays
	// once per page lifetime.
	Continuous bool
	// Margin adjusts the viewport for the trigger; nil means
	// DefaultRevealMargin.
	Margin *Margin
	// Manual disables viewport observation; call Play to start.
	Manual bool
}

// Reveal runs a staggered hidden-to-visible animation for a region when it
// scrolls into view.
type Reveal struct {
	scene     *Scene
	region    *Node
	opts      RevealOptions
	observer  *IntersectionObserver
	container *Motion
	children  []*Motion
	inView    *Value[bool]
	plays     int
	closed    bool
}

// Reveal prepares region for an entrance animation: the region and its
// children are snapped to their hidden states and observation starts. A nil
// region yields an inert Reveal. A region not yet attached to the scene is
// observed from the frame it is attached.
func (s *Scene) Reveal(region *Node, opts RevealOptions) *Reveal {
	r := &Reveal{
		scene:  s,
		region: region,
		opts:   opts,
		inView: NewValue(false),
	}
	if region == nil {
		return r
	}

	r.container = NewMotion(s, region)
	r.container.Set(opts.Container.Hidden.Props)
	children := opts.Children
	if children == nil {
		children = region.Children()
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		m := NewMotion(s, c)
		m.Set(opts.Child.Hidden.Props)
		r.children = append(r.children, m)
	}

	if opts.Manual {
		return r
	}
	margin := DefaultRevealMargin
	if opts.Margin != nil {
		margin = *opts.Margin
	}
	r.observer = s.NewIntersectionObserver(r.onEntries, IntersectionOptions{RootMargin: margin})
	r.observer.Observe(region)
	return r
}

func (r *Reveal) onEntries(entries []IntersectionEntry) {
	for _, e := range entries {
		if e.Target != r.region {
			continue
		}
		if e.IsIntersecting {
			r.enter()
		} else if r.opts.Continuous {
			r.leave()
		}
	}
}

func (r *Reveal) enter() {
	if r.inView.Get() {
		return
	}
	r.inView.Set(true)
	r.Play()
	if !r.opts.Continuous && r.observer != nil {
		r.observer.Disconnect()
	}
}

func (r *Reveal) leave() {
	if !r.inView.Get() {
		return
	}
	r.inView.Set(false)
	r.Reset()
}

// Play runs the entrance from the hidden state: the region animates to its
// visible state and child i starts after Transition.ChildDelay(i).
func (r *Reveal) Play() {
	if r.closed || r.container == nil {
		return
	}
	r.Reset()
	r.plays++
	visible := r.opts.Container.Visible
	r.container.Animate(visible)
	for i, m := range r.children {
		m.AnimateAfter(r.opts.Child.Visible, visible.Transition.ChildDelay(i))
	}
}

// Reset cancels any running entrance and snaps everything back to hidden.
func (r *Reveal) Reset() {
	if r.container == nil {
		return
	}
	r.container.Set(r.opts.Container.Hidden.Props)
	for _, m := range r.children {
		m.Set(r.opts.Child.Hidden.Props)
	}
}

// InView returns the region's visibility flag. With the default once mode
// it never returns to false after first becoming true.
func (r *Reveal) InView() ReadOnly[bool] {
	return r.inView
}

// Plays returns how many times the entrance has started.
func (r *Reveal) Plays() int {
	return r.plays
}

// Animating reports whether the region or any child is still moving.
func (r *Reveal) Animating() bool {
	if r.container == nil {
		return false
	}
	if r.container.Animating() {
		return true
	}
	for _, m := range r.children {
		if m.Animating() {
			return true
		}
	}
	return false
}

// Children returns the child motions in stagger order.
func (r *Reveal) Children() []*Motion {
	return r.children
}

// Container returns the region's own motion, or nil for an inert Reveal.
func (r *Reveal) Container() *Motion {
	return r.container
}

// Close stops observation. Running animations finish normally.
func (r *Reveal) Close() {
	if r.closed {
		return
	}
	r.closed = true
	if r.observer != nil {
		r.observer.Disconnect()
	}
}
