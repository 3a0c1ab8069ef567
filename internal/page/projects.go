package page

import (
	"github.com/phanxgames/folio"
	"github.com/phanxgames/folio/internal/content"
)

var projectsMargin = folio.MustParseMargin("-80px 0px")

// Projects lists the featured project full width, then the rest in two
// columns. Cards lift on hover.
type Projects struct {
	section *folio.Node
	content *folio.Node
	cards   []*folio.Node

	reveal     *folio.Reveal
	cardReveal *folio.Reveal
	sub        folio.Subscription
	feedback   []*feedback
}

func buildProjects(p *Page, y float64) *Projects {
	pr := &Projects{}

	pr.section = folio.NewContainer("projects")
	pr.section.Tag = "section"
	pr.section.Y = y
	pr.section.Width = p.viewW

	pr.content = folio.NewContainer("projects-content")
	title := text("projects-title", "What I've Built", p.fonts.heading, colorText, 0)

	list := folio.NewContainer("projects-cards")
	var slots []*folio.Node
	cy := 0.0
	colW := (p.colW - 24) / 2
	var row []*folio.Node
	flushRow := func() {
		rowH := 0.0
		for i, s := range row {
			s.X = float64(i) * (colW + 24)
			s.Y = cy
			_, h := size(s)
			rowH = max(rowH, h)
		}
		if len(row) > 0 {
			cy += rowH + 24
		}
		row = row[:0]
	}
	for _, proj := range p.content.OrderedProjects() {
		w := colW
		if proj.Featured {
			w = p.colW
		}
		card := buildCard(p, pr, proj, w)
		s := slot("project-slot", card)
		slots = append(slots, s)
		list.AddChild(s)
		pr.cards = append(pr.cards, card)
		if proj.Featured {
			flushRow()
			row = append(row, s)
			flushRow()
			continue
		}
		row = append(row, s)
		if len(row) == 2 {
			flushRow()
		}
	}
	flushRow()
	list.Width, list.Height = p.colW, max(cy-24, 0)

	height := stack(pr.content, 0, 0, 40, title, list)
	pr.content.X, pr.content.Y = p.colX, sectionGap/2
	pr.content.Width, pr.content.Height = p.colW, height
	pr.section.Height = height + sectionGap
	pr.section.AddChild(pr.content)
	p.scene.Root().AddChild(pr.section)

	margin := projectsMargin
	pr.reveal = p.scene.Reveal(pr.content, folio.RevealOptions{
		Container: p.presets.Variant("staggerContainer"),
		Child:     p.presets.Variant("fadeInUp"),
		Children:  []*folio.Node{title},
		Margin:    &margin,
	})
	pr.cardReveal = p.scene.Reveal(list, folio.RevealOptions{
		Container: p.presets.Variant("staggerContainer"),
		Child:     p.presets.Variant("projectCardVariant"),
		Children:  slots,
		Manual:    true,
	})
	pr.sub = pr.reveal.InView().Subscribe(func(in bool) {
		if in {
			pr.cardReveal.Play()
		}
	})

	hover := p.presets.Variant("cardHover")
	for _, card := range pr.cards {
		pr.feedback = append(pr.feedback, bindFeedback(p.scene, card, hover))
	}
	return pr
}

func buildCard(p *Page, pr *Projects, proj content.Project, width float64) *folio.Node {
	inner := width - 2*cardPadding
	body := folio.NewContainer("project-content")

	header := folio.NewContainer("project-header")
	title := text("project-title", proj.Title, p.fonts.title, colorText, 0)
	header.AddChild(title)
	tw, th := size(title)
	bx := tw + 12
	badges := []*folio.Node{pill("project-status", proj.StatusLabel(), p.fonts.small, colorMuted, colorBorder, 10, 4)}
	if proj.Featured {
		badges = append(badges, pill("project-featured", "Featured", p.fonts.small, colorText, colorAccent, 10, 4))
	}
	for _, b := range badges {
		w, h := size(b)
		b.X, b.Y = bx, (th-h)/2
		header.AddChild(b)
		bx += w + 8
	}
	header.Width, header.Height = bx, th

	placeholder := folio.NewBox("project-image-placeholder", inner, 140, colorBorder)
	ph := text("project-image-text", "Screenshot", p.fonts.small, colorMuted, 0)
	pw, phh := size(ph)
	ph.X, ph.Y = (inner-pw)/2, (140-phh)/2
	placeholder.AddChild(ph)

	items := []*folio.Node{
		placeholder,
		header,
		text("project-description", proj.Description, p.fonts.body, colorMuted, inner),
	}
	if proj.Problem != "" {
		items = append(items, text("project-problem", proj.Problem, p.fonts.small, colorMuted, inner))
	}

	techs := folio.NewContainer("project-technologies")
	var tags []*folio.Node
	for _, t := range proj.Tech {
		tag := pill("tech-tag", t, p.fonts.small, colorText, colorBorder, 10, 5)
		tag.AddClass("tech-tag")
		tag.Interactable = true
		tags = append(tags, tag)
	}
	techs.Height = flow(techs, inner, 8, tags...)
	techs.Width = inner
	items = append(items, techs)

	links := folio.NewContainer("project-links")
	lx := 0.0
	for _, l := range []struct{ label, url string }{{"GitHub", proj.GitHub}, {"Live Demo", proj.Live}} {
		if l.url == "" {
			continue
		}
		link := text("project-link", l.label, p.fonts.body, colorAccent, 0)
		link.Tag = "a"
		link.AddClass("project-link")
		link.Interactable = true
		link.UserData = l.url
		url := l.url
		link.OnClick = func(folio.PointerContext) { p.qr.Toggle(url) }
		link.X = lx
		w, _ := size(link)
		lx += w + 20
		links.AddChild(link)
	}
	if links.NumChildren() == 0 {
		links.AddChild(text("project-link-private", "Private Repository", p.fonts.small, colorMuted, 0))
	}
	lw, lh := 0.0, 0.0
	for _, c := range links.Children() {
		w, h := size(c)
		lw = max(lw, c.X+w)
		lh = max(lh, h)
	}
	links.Width, links.Height = lw, lh
	items = append(items, links)

	height := stack(body, 0, 0, 14, items...)
	card := folio.NewBox("project-"+proj.ID, width, height+2*cardPadding, colorSurface)
	card.Tag = "article"
	card.AddClass("project-card")
	if proj.Featured {
		card.AddClass("project-card-featured")
	}
	body.X, body.Y = cardPadding, cardPadding
	body.Width, body.Height = inner, height
	card.AddChild(body)
	return card
}

// Cards returns the project cards in display order.
func (pr *Projects) Cards() []*folio.Node {
	return pr.cards
}

// Reveal returns the section entrance.
func (pr *Projects) Reveal() *folio.Reveal {
	return pr.reveal
}

// CardReveal returns the staggered card entrance.
func (pr *Projects) CardReveal() *folio.Reveal {
	return pr.cardReveal
}

func (pr *Projects) close() {
	pr.sub.Remove()
	pr.reveal.Close()
	pr.cardReveal.Close()
	for _, f := range pr.feedback {
		f.close()
	}
}
