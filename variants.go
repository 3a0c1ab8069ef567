package folio

import "github.com/tanema/gween/ease"

// PropMask flags which properties a Props value carries.
type PropMask uint8

const (
	PropOpacity PropMask = 1 << iota
	PropX
	PropY
	PropScale
)

// Props is a partial set of animatable visual properties. X and Y are
// offsets from the node's layout position; Scale is uniform about the
// node's center. Only properties flagged in Mask take part in an animation.
type Props struct {
	Opacity float64
	X, Y    float64
	Scale   float64
	Mask    PropMask
}

// Has reports whether all flags in m are present.
func (p Props) Has(m PropMask) bool {
	return p.Mask&m == m
}

// WithOpacity returns p with opacity set.
func (p Props) WithOpacity(v float64) Props {
	p.Opacity = v
	p.Mask |= PropOpacity
	return p
}

// WithX returns p with the horizontal offset set.
func (p Props) WithX(v float64) Props {
	p.X = v
	p.Mask |= PropX
	return p
}

// WithY returns p with the vertical offset set.
func (p Props) WithY(v float64) Props {
	p.Y = v
	p.Mask |= PropY
	return p
}

// WithScale returns p with the scale set.
func (p Props) WithScale(v float64) Props {
	p.Scale = v
	p.Mask |= PropScale
	return p
}

// Merge returns p overridden by every property present in o.
func (p Props) Merge(o Props) Props {
	if o.Has(PropOpacity) {
		p = p.WithOpacity(o.Opacity)
	}
	if o.Has(PropX) {
		p = p.WithX(o.X)
	}
	if o.Has(PropY) {
		p = p.WithY(o.Y)
	}
	if o.Has(PropScale) {
		p = p.WithScale(o.Scale)
	}
	return p
}

// get returns the value for a single-property mask.
func (p Props) get(m PropMask) float64 {
	switch m {
	case PropOpacity:
		return p.Opacity
	case PropX:
		return p.X
	case PropY:
		return p.Y
	case PropScale:
		return p.Scale
	}
	return 0
}

// TransitionType selects how a property moves to its target.
type TransitionType uint8

const (
	TransitionTween TransitionType = iota
	TransitionSpring
)

// String returns "tween" or "spring".
func (t TransitionType) String() string {
	if t == TransitionSpring {
		return "spring"
	}
	return "tween"
}

// RepeatForever makes a transition loop until the motion is cancelled.
const RepeatForever = -1

// Default tween timing used when a tween transition leaves Duration unset.
const DefaultDuration = 0.3

// Transition describes timing for moving to a State.
type Transition struct {
	Type     TransitionType
	Duration float64        // tween length in seconds
	Ease     ease.TweenFunc // tween curve; nil means EaseOut

	Stiffness float64 // spring parameters; zero means the defaults
	Damping   float64
	Mass      float64

	// Delay postpones the start of this transition.
	Delay float64
	// DelayChildren and StaggerChildren time the children of a revealed
	// region: child i starts DelayChildren + i*StaggerChildren seconds
	// after the region's trigger.
	DelayChildren   float64
	StaggerChildren float64

	// Repeat is the number of extra runs after the first; RepeatForever
	// loops. With Yoyo set, every other run plays backwards.
	Repeat int
	Yoyo   bool
}

// ChildDelay returns the start delay of the i-th child.
func (t Transition) ChildDelay(i int) float64 {
	return t.DelayChildren + float64(i)*t.StaggerChildren
}

func (t Transition) easing() ease.TweenFunc {
	if t.Ease == nil {
		return EaseOut
	}
	return t.Ease
}

func (t Transition) duration() float64 {
	if t.Duration <= 0 {
		return DefaultDuration
	}
	return t.Duration
}

// State is a named target: properties plus how to reach them.
type State struct {
	Props      Props
	Transition Transition
}

// Variants groups the states an element moves between. Hidden and Visible
// drive entrance animations; Rest, Hover and Tap drive pointer feedback.
type Variants struct {
	Hidden  State
	Visible State
	Rest    State
	Hover   State
	Tap     State
}

// SpringTransition returns a spring transition with the given stiffness
// and damping and unit mass.
func SpringTransition(stiffness, damping float64) Transition {
	return Transition{Type: TransitionSpring, Stiffness: stiffness, Damping: damping, Mass: 1}
}

// TweenTransition returns a tween transition.
func TweenTransition(duration float64, fn ease.TweenFunc) Transition {
	return Transition{Type: TransitionTween, Duration: duration, Ease: fn}
}
