package folio

import "github.com/tanema/gween"

var motionProps = [4]PropMask{PropOpacity, PropX, PropY, PropScale}

// Motion animates a node's opacity, offset and scale between states.
//
// The node's position when the Motion is created is its layout position;
// X and Y props are offsets from it. The pivot is moved to the node's
// center so Scale grows it in place.
//
// Starting a new animation cancels the one in flight: properties continue
// from wherever they currently are, and nothing of the cancelled run is
// resumed later.
type Motion struct {
	scene *Scene
	node  *Node

	baseX, baseY float64

	cur    Props
	from   Props
	to     Props
	trans  Transition
	tracks [4]motionTrack

	runsLeft   int
	running    bool
	registered bool

	// OnComplete runs when an animation (including all repeats) finishes.
	// It is not called for cancelled animations.
	OnComplete func()
}

type motionTrack struct {
	active bool
	delay  float64
	tween  *gween.Tween
	spring *Spring
}

// NewMotion binds a Motion to n. Animations advance as scene tickers.
func NewMotion(s *Scene, n *Node) *Motion {
	w, h := nodeDimensions(n)
	m := &Motion{
		scene: s,
		node:  n,
		baseX: n.X - n.PivotX,
		baseY: n.Y - n.PivotY,
	}
	n.PivotX = w / 2
	n.PivotY = h / 2
	m.cur = Props{Opacity: n.Alpha, Scale: n.ScaleX, Mask: PropOpacity | PropX | PropY | PropScale}
	m.apply()
	return m
}

// Node returns the animated node.
func (m *Motion) Node() *Node {
	return m.node
}

// Current returns the current value of every property.
func (m *Motion) Current() Props {
	return m.cur
}

// Animating reports whether an animation is in progress, including one
// still waiting out its delay.
func (m *Motion) Animating() bool {
	return m.running
}

// SetBase moves the layout position the offsets are relative to.
func (m *Motion) SetBase(x, y float64) {
	m.baseX = x
	m.baseY = y
	m.apply()
}

// Base returns the layout position.
func (m *Motion) Base() (x, y float64) {
	return m.baseX, m.baseY
}

// Set cancels any animation and snaps the given properties.
func (m *Motion) Set(p Props) {
	m.Stop()
	m.cur = m.cur.Merge(p)
	m.apply()
}

// Stop cancels the animation in progress, leaving properties where they are.
func (m *Motion) Stop() {
	m.running = false
	for i := range m.tracks {
		m.tracks[i] = motionTrack{}
	}
}

// Animate cancels any animation in progress and moves toward st.
func (m *Motion) Animate(st State) {
	m.AnimateAfter(st, 0)
}

// AnimateAfter is Animate with an extra start delay added to the
// transition's own.
func (m *Motion) AnimateAfter(st State, delay float64) {
	m.Stop()
	if st.Props.Mask == 0 || m.node.IsDisposed() {
		return
	}
	m.from = m.cur
	m.to = m.cur.Merge(st.Props)
	m.from.Mask = st.Props.Mask
	m.to.Mask = st.Props.Mask
	m.trans = st.Transition
	m.runsLeft = st.Transition.Repeat
	m.startTracks(st.Transition.Delay + delay)
	m.running = true
	if !m.registered {
		m.registered = true
		m.scene.AddTicker(m)
	}
}

func (m *Motion) startTracks(delay float64) {
	t := m.trans
	for i, prop := range motionProps {
		if !m.to.Has(prop) {
			m.tracks[i] = motionTrack{}
			continue
		}
		from, to := m.from.get(prop), m.to.get(prop)
		tr := motionTrack{active: true, delay: delay}
		if t.Type == TransitionSpring {
			damping := t.Damping
			if damping <= 0 {
				damping = DefaultDamping
			}
			sp := NewSpring(t.Stiffness, damping, t.Mass)
			sp.Pos = from
			sp.Target = to
			if prop == PropOpacity {
				sp.RestDelta = 0.001
			}
			tr.spring = sp
		} else {
			tr.tween = gween.New(float32(from), float32(to), float32(t.duration()), t.easing())
		}
		m.tracks[i] = tr
	}
}

// Tick advances the animation; the scene drops the Motion once it returns
// false.
func (m *Motion) Tick(dt float64) bool {
	if !m.running || m.node.IsDisposed() {
		m.running = false
		m.registered = false
		return false
	}

	done := true
	for i, prop := range motionProps {
		tr := &m.tracks[i]
		if !tr.active {
			continue
		}
		step := dt
		if tr.delay > 0 {
			tr.delay -= dt
			if tr.delay > 0 {
				done = false
				continue
			}
			step = -tr.delay
			tr.delay = 0
		}
		var v float64
		finished := false
		if tr.spring != nil {
			finished = !tr.spring.Step(step)
			v = tr.spring.Pos
		} else {
			fv, fin := tr.tween.Update(float32(step))
			v = float64(fv)
			finished = fin
		}
		m.cur = m.cur.Merge(Props{Mask: prop}.with(prop, v))
		if finished {
			tr.active = false
		} else {
			done = false
		}
	}
	m.apply()
	if !done {
		return true
	}

	if m.runsLeft != 0 {
		if m.runsLeft > 0 {
			m.runsLeft--
		}
		if m.trans.Yoyo {
			m.from, m.to = m.to, m.from
		} else {
			m.cur = m.cur.Merge(m.from)
		}
		m.startTracks(0)
		return true
	}

	m.running = false
	m.registered = false
	if m.OnComplete != nil {
		// A follow-up Animate re-registers the Motion itself.
		m.OnComplete()
	}
	return false
}

func (p Props) with(prop PropMask, v float64) Props {
	switch prop {
	case PropOpacity:
		p.Opacity = v
	case PropX:
		p.X = v
	case PropY:
		p.Y = v
	case PropScale:
		p.Scale = v
	}
	return p
}

// apply writes the current properties to the node.
func (m *Motion) apply() {
	n := m.node
	if n.IsDisposed() {
		return
	}
	n.SetAlpha(m.cur.Opacity)
	n.SetScale(m.cur.Scale, m.cur.Scale)
	n.SetPosition(m.baseX+n.PivotX+m.cur.X, m.baseY+n.PivotY+m.cur.Y)
}
