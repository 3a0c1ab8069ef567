package page

import (
	"github.com/phanxgames/folio"
)

// About shows the biography and the skill categories. The section fades in
// once when scrolled into view; each category's tags then pop in with a
// stagger.
type About struct {
	section *folio.Node
	content *folio.Node

	reveal   *folio.Reveal
	grids    []*folio.Reveal
	sub      folio.Subscription
	feedback []*feedback
}

func buildAbout(p *Page, y float64) *About {
	a := &About{}
	c := p.content.About

	a.section = folio.NewContainer("about")
	a.section.Tag = "section"
	a.section.Y = y
	a.section.Width = p.viewW

	a.content = folio.NewContainer("about-content")
	items := []*folio.Node{text("about-title", c.Title, p.fonts.heading, colorText, 0)}
	for _, para := range c.Paragraphs {
		n := text("about-description", para, p.fonts.body, colorMuted, p.colW)
		n.AddClass("about-description")
		items = append(items, n)
	}
	items = append(items, text("skills-title", c.SkillsTitle, p.fonts.title, colorText, 0))

	var grids []*folio.Node
	var tags []*folio.Node
	for _, cat := range p.content.Skills {
		block := folio.NewContainer("skill-category")
		block.AddClass("skill-category")
		label := text("skill-category-label", cat.Label, p.fonts.body, colorAccent, 0)
		grid := folio.NewContainer("skills-grid")
		var slots []*folio.Node
		for _, skill := range cat.Skills {
			tag := pill("skill-tag", skill, p.fonts.small, colorText, colorSurface, tagPaddingX, tagPaddingY)
			tag.AddClass("skill-tag")
			tags = append(tags, tag)
			slots = append(slots, slot("skill-slot", tag))
		}
		gh := flow(grid, p.colW, tagGap, slots...)
		grid.Width, grid.Height = p.colW, gh
		bh := stack(block, 0, 0, 12, label, grid)
		block.Width, block.Height = p.colW, bh
		grids = append(grids, grid)
		items = append(items, block)
	}

	height := stack(a.content, 0, 0, paragraphGap, items...)
	a.content.X, a.content.Y = p.colX, sectionGap/2
	a.content.Width, a.content.Height = p.colW, height
	a.section.Height = height + sectionGap
	a.section.AddChild(a.content)
	p.scene.Root().AddChild(a.section)

	a.reveal = p.scene.Reveal(a.content, folio.RevealOptions{
		Container: p.presets.Variant("staggerContainerSlow"),
		Child:     p.presets.Variant("fadeInUp"),
		Children:  items,
	})
	for _, g := range grids {
		a.grids = append(a.grids, p.scene.Reveal(g, folio.RevealOptions{
			Container: p.presets.Variant("staggerContainer"),
			Child:     p.presets.Variant("skillTagVariant"),
			Manual:    true,
		}))
	}
	a.sub = a.reveal.InView().Subscribe(func(in bool) {
		if !in {
			return
		}
		for _, g := range a.grids {
			g.Play()
		}
	})

	hover := p.presets.Variant("skillTagHover")
	for _, tag := range tags {
		a.feedback = append(a.feedback, bindFeedback(p.scene, tag, hover))
	}
	return a
}

// Reveal returns the section entrance.
func (a *About) Reveal() *folio.Reveal {
	return a.reveal
}

// Grids returns the skill tag entrances, one per category.
func (a *About) Grids() []*folio.Reveal {
	return a.grids
}

func (a *About) close() {
	a.sub.Remove()
	a.reveal.Close()
	for _, g := range a.grids {
		g.Close()
	}
	for _, f := range a.feedback {
		f.close()
	}
}
