package folio

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Default spring parameters and rest thresholds.
const (
	DefaultStiffness = 100
	DefaultDamping   = 10
	DefaultMass      = 1
	DefaultRestDelta = 0.01
	DefaultRestSpeed = 0.01
)

// Spring is a damped harmonic oscillator driving Pos toward Target. It is
// parameterized the way CSS-like motion libraries do (stiffness, damping,
// mass) and integrated with harmonica.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64

	Pos, Vel, Target float64

	// The spring is at rest once |Pos-Target| < RestDelta and
	// |Vel| < RestSpeed.
	RestDelta float64
	RestSpeed float64

	h   harmonica.Spring
	hdt float64
}

// NewSpring returns a spring at rest at 0. Non-positive parameters fall back
// to the defaults.
func NewSpring(stiffness, damping, mass float64) *Spring {
	if stiffness <= 0 {
		stiffness = DefaultStiffness
	}
	if damping < 0 {
		damping = DefaultDamping
	}
	if mass <= 0 {
		mass = DefaultMass
	}
	return &Spring{
		Stiffness: stiffness,
		Damping:   damping,
		Mass:      mass,
		RestDelta: DefaultRestDelta,
		RestSpeed: DefaultRestSpeed,
	}
}

// AngularFrequency is sqrt(k/m).
func (s *Spring) AngularFrequency() float64 {
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio is c / (2*sqrt(k*m)). 1 is critical damping.
func (s *Spring) DampingRatio() float64 {
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// AtRest reports whether the spring has settled on its target.
func (s *Spring) AtRest() bool {
	return math.Abs(s.Pos-s.Target) < s.RestDelta && math.Abs(s.Vel) < s.RestSpeed
}

// Jump places the spring at pos with no velocity.
func (s *Spring) Jump(pos float64) {
	s.Pos = pos
	s.Vel = 0
}

// Step advances the simulation by dt seconds and reports whether the spring
// is still moving. A spring that comes to rest snaps to its target and stays
// there without further work.
func (s *Spring) Step(dt float64) bool {
	if s.AtRest() {
		s.Pos = s.Target
		s.Vel = 0
		return false
	}
	if dt <= 0 {
		return true
	}
	if dt != s.hdt {
		s.h = harmonica.NewSpring(dt, s.AngularFrequency(), s.DampingRatio())
		s.hdt = dt
	}
	s.Pos, s.Vel = s.h.Update(s.Pos, s.Vel, s.Target)
	if s.AtRest() {
		s.Pos = s.Target
		s.Vel = 0
		return false
	}
	return true
}

// Spring2D drives a point toward a target with two independent springs
// sharing the same parameters.
type Spring2D struct {
	X, Y Spring
}

// NewSpring2D returns a 2D spring at rest at (0, 0).
func NewSpring2D(stiffness, damping, mass float64) *Spring2D {
	proto := NewSpring(stiffness, damping, mass)
	return &Spring2D{X: *proto, Y: *proto}
}

// SetTarget moves the target point.
func (s *Spring2D) SetTarget(x, y float64) {
	s.X.Target = x
	s.Y.Target = y
}

// Jump places both springs at (x, y) with no velocity.
func (s *Spring2D) Jump(x, y float64) {
	s.X.Jump(x)
	s.Y.Jump(y)
}

// Pos returns the current simulated point.
func (s *Spring2D) Pos() (x, y float64) {
	return s.X.Pos, s.Y.Pos
}

// Step advances both axes and reports whether either is still moving.
func (s *Spring2D) Step(dt float64) bool {
	mx := s.X.Step(dt)
	my := s.Y.Step(dt)
	return mx || my
}

// AtRest reports whether both axes have settled.
func (s *Spring2D) AtRest() bool {
	return s.X.AtRest() && s.Y.AtRest()
}
