package page

import (
	"github.com/phanxgames/folio"
	"github.com/phanxgames/folio/internal/content"
)

// Nav indicator spring.
const (
	indicatorStiffness = 300
	indicatorDamping   = 25
)

// Header is the fixed navigation bar. Its background fades in once the
// page has scrolled past 50px, and an underline springs to the link of the
// section crossing the middle of the viewport.
type Header struct {
	page *Page

	node      *folio.Node
	bar       *folio.Node
	brand     *folio.Node
	links     []*folio.Node
	ids       []string
	indicator *folio.Node

	motion   *folio.Motion
	barFade  *folio.TweenGroup
	spring   *folio.Spring2D // X is the indicator's left edge, Y its width
	placed   bool
	ticking  bool
	tracker  *folio.ActiveSectionTracker
	scrolled *folio.Value[bool]
	subs     []folio.Subscription
	feedback []*feedback
	closed   bool
}

func newHeader(p *Page, items []content.NavItem) *Header {
	s := p.scene
	h := &Header{page: p, scrolled: folio.NewValue(false)}

	h.node = folio.NewContainer("header")
	h.node.Tag = "header"
	h.node.Width, h.node.Height = p.viewW, headerHeight
	h.node.ZIndex = 1 << 8

	h.bar = folio.NewBox("header-bar", p.viewW, headerHeight, colorHeader)
	h.bar.Alpha = 0
	h.node.AddChild(h.bar)

	h.brand = pill("nav-brand", p.content.Owner.Initials, p.fonts.brand, colorText, colorSurface, 12, 8)
	h.brand.Tag = "button"
	h.brand.Role = "button"
	h.brand.OnClick = func(folio.PointerContext) { p.ScrollToTop() }
	_, bh := size(h.brand)
	h.brand.X, h.brand.Y = p.colX, (headerHeight-bh)/2
	h.node.AddChild(h.brand)

	x := p.colX + p.colW
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		link := text("nav-"+item.ID, item.Label, p.fonts.body, colorMuted, 0)
		link.Tag = "button"
		link.AddClass("nav-link")
		link.Interactable = true
		link.OnClick = func(folio.PointerContext) { p.ScrollTo(item.ID) }
		w, lh := size(link)
		x -= w
		link.X, link.Y = x, (headerHeight-lh)/2
		x -= 32
		h.node.AddChild(link)
		h.links = append([]*folio.Node{link}, h.links...)
		h.ids = append([]string{item.ID}, h.ids...)
	}

	h.indicator = folio.NewBox("nav-indicator", 0, 2, colorAccent)
	h.indicator.Alpha = 0
	if len(h.links) > 0 {
		_, lh := size(h.links[0])
		h.indicator.Y = h.links[0].Y + lh + 6
	}
	h.node.AddChild(h.indicator)
	h.spring = folio.NewSpring2D(indicatorStiffness, indicatorDamping, 1)

	s.Overlay().AddChild(h.node)
	enableContainers(h.node)

	h.motion = folio.NewMotion(s, h.node)
	slide := p.presets.Variant("headerSlide")
	h.motion.Set(slide.Hidden.Props)
	h.motion.Animate(slide.Visible)
	h.feedback = append(h.feedback, bindFeedback(s, h.brand, p.presets.Variant("brandHover")))

	h.tracker = folio.NewActiveSectionTracker(s, h.ids)
	h.scrolled.Set(s.Camera().ScrollOffset() > scrolledAfter)
	h.bar.Alpha = boolAlpha(h.scrolled.Get())
	h.subs = append(h.subs,
		h.tracker.Active().Subscribe(h.onActive),
		p.scroll.Offset().Subscribe(func(off float64) { h.scrolled.Set(off > scrolledAfter) }),
		h.scrolled.Subscribe(h.onScrolled),
	)
	return h
}

func boolAlpha(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (h *Header) onScrolled(scrolled bool) {
	if h.barFade != nil {
		h.barFade.Cancel()
	}
	h.barFade = folio.TweenAlpha(h.bar, boolAlpha(scrolled), 0.3, folio.EaseOut)
	h.page.scene.AddTicker(h.barFade)
}

func (h *Header) onActive(id string) {
	for i, link := range h.links {
		if h.ids[i] == id {
			link.TextBlock.Color = colorText
			w, _ := size(link)
			h.moveIndicator(link.X, w)
		} else {
			link.TextBlock.Color = colorMuted
		}
	}
}

func (h *Header) moveIndicator(x, w float64) {
	if !h.placed {
		h.placed = true
		h.spring.Jump(x, w)
		h.indicator.SetAlpha(1)
		h.placeIndicator()
		return
	}
	h.spring.SetTarget(x, w)
	if !h.ticking {
		h.ticking = true
		h.page.scene.AddTicker(h)
	}
}

func (h *Header) placeIndicator() {
	x, w := h.spring.Pos()
	h.indicator.X = x
	h.indicator.SetSize(max(w, 0), 2)
	h.indicator.MarkDirty()
}

// Tick moves the indicator along its spring until it settles.
func (h *Header) Tick(dt float64) bool {
	if h.closed {
		h.ticking = false
		return false
	}
	moving := h.spring.Step(dt)
	h.placeIndicator()
	if !moving {
		h.ticking = false
	}
	return moving
}

// Active returns the id of the highlighted section.
func (h *Header) Active() folio.ReadOnly[string] {
	return h.tracker.Active()
}

// Scrolled reports whether the header background is shown.
func (h *Header) Scrolled() folio.ReadOnly[bool] {
	return h.scrolled
}

// Indicator returns the underline node.
func (h *Header) Indicator() *folio.Node {
	return h.indicator
}

// Link returns the nav link for a section id, or nil.
func (h *Header) Link(id string) *folio.Node {
	for i, l := range h.links {
		if h.ids[i] == id {
			return l
		}
	}
	return nil
}

// Brand returns the scroll-to-top button.
func (h *Header) Brand() *folio.Node {
	return h.brand
}

func (h *Header) close() {
	if h.closed {
		return
	}
	h.closed = true
	h.tracker.Close()
	for i := range h.subs {
		h.subs[i].Remove()
	}
	h.subs = nil
	for _, f := range h.feedback {
		f.close()
	}
	if h.barFade != nil {
		h.barFade.Cancel()
	}
	h.motion.Stop()
}
