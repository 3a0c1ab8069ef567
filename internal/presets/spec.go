package presets

import (
	"fmt"

	"github.com/phanxgames/folio"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

type fileSpec struct {
	Springs  map[string]springSpec  `yaml:"springs"`
	Variants map[string]variantSpec `yaml:"variants"`
}

type springSpec struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
	Mass      float64 `yaml:"mass"`
}

type variantSpec struct {
	Hidden  *stateSpec `yaml:"hidden"`
	Visible *stateSpec `yaml:"visible"`
	Rest    *stateSpec `yaml:"rest"`
	Hover   *stateSpec `yaml:"hover"`
	Tap     *stateSpec `yaml:"tap"`
}

func (v variantSpec) build(springs map[string]folio.Transition) (folio.Variants, error) {
	var out folio.Variants
	slots := []struct {
		name string
		spec *stateSpec
		dst  *folio.State
	}{
		{"hidden", v.Hidden, &out.Hidden},
		{"visible", v.Visible, &out.Visible},
		{"rest", v.Rest, &out.Rest},
		{"hover", v.Hover, &out.Hover},
		{"tap", v.Tap, &out.Tap},
	}
	for _, slot := range slots {
		if slot.spec == nil {
			continue
		}
		st, err := slot.spec.build(springs)
		if err != nil {
			return out, fmt.Errorf("%s: %w", slot.name, err)
		}
		*slot.dst = st
	}
	return out, nil
}

// stateSpec accepts either a bare property map or {props, transition}.
type stateSpec struct {
	Props      propsSpec       `yaml:"props"`
	Transition *transitionSpec `yaml:"transition"`
}

func (s *stateSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i < len(value.Content); i += 2 {
			k := value.Content[i].Value
			if k == "props" || k == "transition" {
				type plain stateSpec
				return value.Decode((*plain)(s))
			}
		}
	}
	return value.Decode(&s.Props)
}

func (s *stateSpec) build(springs map[string]folio.Transition) (folio.State, error) {
	st := folio.State{Props: s.Props.build()}
	if s.Transition != nil {
		t, err := s.Transition.build(springs)
		if err != nil {
			return st, err
		}
		st.Transition = t
	}
	return st, nil
}

type propsSpec struct {
	Opacity *float64 `yaml:"opacity"`
	X       *float64 `yaml:"x"`
	Y       *float64 `yaml:"y"`
	Scale   *float64 `yaml:"scale"`
}

func (p propsSpec) build() folio.Props {
	var out folio.Props
	if p.Opacity != nil {
		out = out.WithOpacity(*p.Opacity)
	}
	if p.X != nil {
		out = out.WithX(*p.X)
	}
	if p.Y != nil {
		out = out.WithY(*p.Y)
	}
	if p.Scale != nil {
		out = out.WithScale(*p.Scale)
	}
	return out
}

type transitionSpec struct {
	Type            string   `yaml:"type"`
	Spring          string   `yaml:"spring"`
	Duration        float64  `yaml:"duration"`
	Ease            easeSpec `yaml:"ease"`
	Stiffness       float64  `yaml:"stiffness"`
	Damping         float64  `yaml:"damping"`
	Mass            float64  `yaml:"mass"`
	Delay           float64  `yaml:"delay"`
	DelayChildren   float64  `yaml:"delayChildren"`
	StaggerChildren float64  `yaml:"staggerChildren"`
	Repeat          int      `yaml:"repeat"`
	Yoyo            bool     `yaml:"yoyo"`
}

func (t transitionSpec) build(springs map[string]folio.Transition) (folio.Transition, error) {
	var out folio.Transition
	switch {
	case t.Spring != "":
		s, ok := springs[t.Spring]
		if !ok {
			return out, fmt.Errorf("unknown spring %q", t.Spring)
		}
		out = s
	case t.Type == "spring":
		out = folio.SpringTransition(t.Stiffness, t.Damping)
		if t.Mass > 0 {
			out.Mass = t.Mass
		}
	case t.Type == "" || t.Type == "tween":
		out = folio.TweenTransition(t.Duration, t.Ease.fn)
	default:
		return out, fmt.Errorf("unknown transition type %q", t.Type)
	}
	if t.Repeat < folio.RepeatForever {
		return out, fmt.Errorf("repeat %d out of range", t.Repeat)
	}
	out.Delay = t.Delay
	out.DelayChildren = t.DelayChildren
	out.StaggerChildren = t.StaggerChildren
	out.Repeat = t.Repeat
	out.Yoyo = t.Yoyo
	return out, nil
}

// easeSpec is either an easing name or four cubic-bezier control values.
type easeSpec struct {
	fn ease.TweenFunc
}

func (e *easeSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		fn, err := folio.EasingByName(value.Value)
		if err != nil {
			return err
		}
		e.fn = fn
		return nil
	case yaml.SequenceNode:
		var pts []float64
		if err := value.Decode(&pts); err != nil {
			return err
		}
		if len(pts) != 4 {
			return fmt.Errorf("line %d: cubic-bezier needs 4 values, got %d", value.Line, len(pts))
		}
		e.fn = folio.CubicBezier(pts[0], pts[1], pts[2], pts[3])
		return nil
	}
	return fmt.Errorf("line %d: ease must be a name or a list of 4 numbers", value.Line)
}
