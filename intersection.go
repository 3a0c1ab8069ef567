package folio

import "math"

// IntersectionEntry describes a change in a target's intersection with an
// observer's root area.
type IntersectionEntry struct {
	Target         *Node
	IsIntersecting bool
	// Ratio is the visible fraction of the target's area, in [0, 1].
	Ratio      float64
	Bounds     Rect
	RootBounds Rect
	// Time is the scene's elapsed time when the change was detected.
	Time float64
}

// IntersectionOptions configures an IntersectionObserver.
type IntersectionOptions struct {
	// RootMargin adjusts the viewport before testing. "-40% 0px -40% 0px"
	// shrinks it to the central fifth of its height.
	RootMargin Margin
	// Threshold is the visible fraction needed to count as intersecting.
	// Zero means any overlap, including touching edges.
	Threshold float64
}

// IntersectionObserver reports when observed nodes start or stop
// intersecting the camera's visible area adjusted by RootMargin. Checks run
// once per frame during Scene.Step; entries for one frame are delivered as a
// single batch in observation order.
type IntersectionObserver struct {
	scene     *Scene
	callback  func([]IntersectionEntry)
	opts      IntersectionOptions
	targets   []observedTarget
	entries   []IntersectionEntry
	connected bool
}

type observedTarget struct {
	node  *Node
	state int8 // -1 not yet reported, 0 outside, 1 intersecting
}

// NewIntersectionObserver creates and connects an observer. The callback
// runs during Step with every entry whose state changed that frame; a
// target's first check always produces an entry.
func (s *Scene) NewIntersectionObserver(callback func([]IntersectionEntry), opts IntersectionOptions) *IntersectionObserver {
	o := &IntersectionObserver{
		scene:     s,
		callback:  callback,
		opts:      opts,
		connected: true,
	}
	s.observers = append(s.observers, o)
	return o
}

// Observe starts watching n. A nil node or one already observed is ignored.
// A node that is not attached to the scene yet is watched silently and
// reported from the first frame it is attached.
func (o *IntersectionObserver) Observe(n *Node) {
	if n == nil || !o.connected {
		return
	}
	for _, t := range o.targets {
		if t.node == n {
			return
		}
	}
	o.targets = append(o.targets, observedTarget{node: n, state: -1})
}

// Unobserve stops watching n.
func (o *IntersectionObserver) Unobserve(n *Node) {
	for i, t := range o.targets {
		if t.node == n {
			copy(o.targets[i:], o.targets[i+1:])
			o.targets[len(o.targets)-1] = observedTarget{}
			o.targets = o.targets[:len(o.targets)-1]
			return
		}
	}
}

// Disconnect stops all observation and unregisters the observer from its
// scene. Safe to call more than once.
func (o *IntersectionObserver) Disconnect() {
	if !o.connected {
		return
	}
	o.connected = false
	clear(o.targets)
	o.targets = nil
	s := o.scene
	for i, other := range s.observers {
		if other == o {
			copy(s.observers[i:], s.observers[i+1:])
			s.observers[len(s.observers)-1] = nil
			s.observers = s.observers[:len(s.observers)-1]
			return
		}
	}
}

// NumTargets returns the number of observed nodes.
func (o *IntersectionObserver) NumTargets() int {
	return len(o.targets)
}

// Connected reports whether the observer is still registered.
func (o *IntersectionObserver) Connected() bool {
	return o.connected
}

// NumIntersectionObservers returns the number of connected observers.
func (s *Scene) NumIntersectionObservers() int {
	return len(s.observers)
}

// checkIntersections runs every observer once. Observers created or
// disconnected by callbacks take effect from the next frame.
func (s *Scene) checkIntersections() {
	if len(s.observers) == 0 {
		return
	}
	observers := append([]*IntersectionObserver(nil), s.observers...)
	pageRoot := s.camera.VisibleBounds()
	screenRoot := s.camera.Viewport
	for _, o := range observers {
		if o.connected {
			o.check(pageRoot, screenRoot)
		}
	}
}

func (o *IntersectionObserver) check(pageRoot, screenRoot Rect) {
	o.entries = o.entries[:0]
	s := o.scene
	kept := o.targets[:0]
	for _, t := range o.targets {
		n := t.node
		if n.IsDisposed() {
			if t.state == 1 {
				o.entries = append(o.entries, IntersectionEntry{Target: n, Time: s.elapsed})
			}
			continue
		}
		if !n.Attached() {
			if t.state == 1 {
				t.state = 0
				o.entries = append(o.entries, IntersectionEntry{Target: n, Time: s.elapsed})
			}
			kept = append(kept, t)
			continue
		}

		base := pageRoot
		if isAncestor(s.overlay, n) {
			base = screenRoot
		}
		root := o.opts.RootMargin.Apply(base)
		bounds := n.WorldBounds()
		ratio := intersectionRatio(bounds, root)
		hit := !root.Empty() && bounds.Intersects(root)
		if o.opts.Threshold > 0 {
			hit = hit && ratio >= o.opts.Threshold
		}

		var state int8
		if hit {
			state = 1
		}
		if state != t.state {
			t.state = state
			o.entries = append(o.entries, IntersectionEntry{
				Target:         n,
				IsIntersecting: hit,
				Ratio:          ratio,
				Bounds:         bounds,
				RootBounds:     root,
				Time:           s.elapsed,
			})
		}
		kept = append(kept, t)
	}
	clear(o.targets[len(kept):])
	o.targets = kept

	if len(o.entries) > 0 && o.callback != nil {
		o.callback(o.entries)
	}
}

// intersectionRatio returns the fraction of target's area inside root.
// Zero-area targets count as fully inside when they touch root.
func intersectionRatio(target, root Rect) float64 {
	ix := math.Min(target.Right(), root.Right()) - math.Max(target.X, root.X)
	iy := math.Min(target.Bottom(), root.Bottom()) - math.Max(target.Y, root.Y)
	if ix < 0 || iy < 0 {
		return 0
	}
	area := target.Width * target.Height
	if area <= 0 {
		return 1
	}
	return math.Min(1, (ix*iy)/area)
}
