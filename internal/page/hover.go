package page

import "github.com/phanxgames/folio"

// feedback plays a variant set's rest, hover and tap states on a node in
// response to the pointer.
type feedback struct {
	motion  *folio.Motion
	v       folio.Variants
	over    bool
	pressed bool
	handles []folio.ListenerHandle
}

func bindFeedback(s *folio.Scene, n *folio.Node, v folio.Variants) *feedback {
	n.Interactable = true
	f := &feedback{motion: folio.NewMotion(s, n), v: v}
	f.handles = append(f.handles,
		n.AddListener(folio.EventPointerEnter, func(folio.PointerContext) {
			f.over = true
			f.settle()
		}),
		n.AddListener(folio.EventPointerLeave, func(folio.PointerContext) {
			f.over = false
			f.pressed = false
			f.settle()
		}),
		n.AddListener(folio.EventPointerDown, func(folio.PointerContext) {
			f.pressed = true
			f.settle()
		}),
		n.AddListener(folio.EventPointerUp, func(folio.PointerContext) {
			f.pressed = false
			f.settle()
		}),
	)
	return f
}

// settle animates toward the state matching the pointer.
func (f *feedback) settle() {
	switch {
	case f.pressed && f.v.Tap.Props.Mask != 0:
		f.motion.Animate(f.v.Tap)
	case f.over:
		f.motion.Animate(f.v.Hover)
	default:
		f.motion.Animate(f.v.Rest)
	}
}

func (f *feedback) close() {
	for _, h := range f.handles {
		h.Remove()
	}
	f.handles = nil
	f.motion.Stop()
}

// enableContainers lets pointer hit testing descend through every container
// under n. Containers without a hit shape never become targets themselves.
func enableContainers(n *folio.Node) {
	n.Walk(func(c *folio.Node) bool {
		if c.Type == folio.NodeTypeContainer {
			c.Interactable = true
		}
		return true
	})
}
