package page

import (
	"github.com/phanxgames/folio"
)

// Hero is the first screen: a staggered introduction that plays on mount,
// two calls to action, a bouncing scroll hint and a pulsing availability dot.
type Hero struct {
	section *folio.Node
	content *folio.Node
	letters *folio.Node

	reveal       *folio.Reveal
	letterReveal *folio.Reveal
	hint         *folio.Motion
	pulse        *folio.Motion
	feedback     []*feedback
}

func buildHero(p *Page, y float64) *Hero {
	owner := p.content.Owner
	h := &Hero{}

	h.section = folio.NewContainer("hero")
	h.section.Tag = "section"
	h.section.Y = y
	h.section.Width = p.viewW

	h.content = folio.NewContainer("hero-content")
	greeting := text("hero-greeting", owner.Greeting, p.fonts.title, colorAccent, 0)

	name := folio.NewContainer("hero-name")
	name.Tag = "h1"
	h.letters = folio.NewContainer("hero-letters")
	lx, lh := 0.0, 0.0
	for _, r := range owner.Name {
		if r == ' ' {
			lx += p.fonts.display.Size() * 0.3
			continue
		}
		letter := text("hero-letter", string(r), p.fonts.display, colorText, 0)
		letter.AddClass("hero-letter")
		letter.X = lx
		w, lheight := size(letter)
		lx += w
		lh = max(lh, lheight)
		h.letters.AddChild(letter)
	}
	h.letters.Width, h.letters.Height = lx, lh
	name.AddChild(h.letters)
	name.Width, name.Height = lx, lh

	subtitle := text("hero-subtitle", owner.Tagline, p.fonts.title, colorMuted, 0)
	description := text("hero-description", owner.Description, p.fonts.body, colorMuted, min(p.colW, 640))

	ctas := folio.NewContainer("hero-cta-group")
	primary := pill("cta-projects", "See What I've Built", p.fonts.body, colorText, colorAccent, 24, 14)
	primary.Tag = "button"
	primary.AddClass("hero-cta")
	primary.OnClick = func(folio.PointerContext) { p.ScrollTo("projects") }

	secondary := pill("cta-contact", "Open to Work", p.fonts.body, colorText, colorSurface, 24, 14)
	secondary.Tag = "button"
	secondary.AddClass("hero-cta")
	secondary.OnClick = func(folio.PointerContext) { p.ScrollTo("contact") }
	// Make room for the availability dot before the label.
	label := secondary.ChildAt(0)
	label.X += 18
	secondary.Width += 18
	_, sh := size(secondary)
	dot := folio.NewCircle("availability-dot", 8, colorAvailable)
	dot.X, dot.Y = 24, (sh-8)/2
	secondary.AddChild(dot)

	pw, ph := size(primary)
	secondary.X = pw + 16
	ctas.AddChild(primary)
	ctas.AddChild(secondary)
	sw, _ := size(secondary)
	ctas.Width, ctas.Height = pw+16+sw, max(ph, sh)

	items := []*folio.Node{greeting, name, subtitle, description, ctas}
	height := stack(h.content, 0, 0, 24, items...)
	h.content.Width, h.content.Height = p.colW, height

	sectionH := max(p.viewH, height+2*headerHeight)
	h.section.Height = sectionH
	h.content.X = p.colX
	h.content.Y = (sectionH - height) / 2
	h.section.AddChild(h.content)

	hint := text("scroll-indicator", "↓", p.fonts.title, colorMuted, 0)
	hw, hh := size(hint)
	hint.X = (p.viewW - hw) / 2
	hint.Y = sectionH - hh - 32
	h.section.AddChild(hint)

	p.scene.Root().AddChild(h.section)

	stagger := p.presets.Variant("heroStagger")
	h.reveal = p.scene.Reveal(h.content, folio.RevealOptions{
		Container: stagger,
		Child:     p.presets.Variant("heroItem"),
		Children:  items,
		Manual:    true,
	})
	// Letters rise together as the name line comes in.
	h.letterReveal = p.scene.Reveal(h.letters, folio.RevealOptions{
		Container: folio.Variants{Visible: folio.State{Transition: folio.Transition{
			DelayChildren: stagger.Visible.Transition.ChildDelay(1),
		}}},
		Child:  p.presets.Variant("letterAnimation"),
		Manual: true,
	})

	button := p.presets.Variant("buttonHover")
	h.feedback = append(h.feedback,
		bindFeedback(p.scene, primary, button),
		bindFeedback(p.scene, secondary, button),
	)

	bounce := p.presets.Variant("scrollIndicator")
	h.hint = folio.NewMotion(p.scene, hint)
	h.hint.Set(bounce.Rest.Props)
	pulse := p.presets.Variant("pulseAnimation")
	h.pulse = folio.NewMotion(p.scene, dot)
	h.pulse.Set(pulse.Rest.Props)
	return h
}

// play starts the entrance and the looping hints.
func (h *Hero) play(p *Page) {
	h.reveal.Play()
	h.letterReveal.Play()
	h.hint.Animate(p.presets.Variant("scrollIndicator").Visible)
	h.pulse.Animate(p.presets.Variant("pulseAnimation").Visible)
}

// Reveal returns the entrance of the hero content.
func (h *Hero) Reveal() *folio.Reveal {
	return h.reveal
}

// Letters returns the entrance of the name letters.
func (h *Hero) Letters() *folio.Reveal {
	return h.letterReveal
}

// Hint returns the looping scroll indicator motion.
func (h *Hero) Hint() *folio.Motion {
	return h.hint
}

func (h *Hero) close() {
	h.reveal.Close()
	h.letterReveal.Close()
	h.hint.Stop()
	h.pulse.Stop()
	for _, f := range h.feedback {
		f.close()
	}
}
