package page

import (
	"github.com/phanxgames/folio"
)

// Contact shows the email card, social links and availability. Clicking a
// link toggles its QR code in the corner panel.
type Contact struct {
	section *folio.Node
	content *folio.Node
	email   *folio.Node
	socials []*folio.Node

	reveal   *folio.Reveal
	pulse    *folio.Motion
	feedback []*feedback
}

func buildContact(p *Page, y float64) *Contact {
	c := &Contact{}
	data := p.content.Contact
	owner := p.content.Owner

	c.section = folio.NewContainer("contact")
	c.section.Tag = "section"
	c.section.Y = y
	c.section.Width = p.viewW

	c.content = folio.NewContainer("contact-content")
	title := text("contact-title", data.Title, p.fonts.heading, colorText, 0)
	desc := text("contact-description", data.Text, p.fonts.body, colorMuted, min(p.colW, 720))

	items := []*folio.Node{title, desc}

	if owner.Email != "" {
		mailto := "mailto:" + owner.Email
		c.email = folio.NewBox("contact-email", 0, 0, colorSurface)
		c.email.Tag = "a"
		c.email.AddClass("contact-email")
		c.email.AddClass("contact-link")
		c.email.UserData = mailto
		c.email.OnClick = func(folio.PointerContext) { p.qr.Toggle(mailto) }
		label := text("contact-email-label", "Say hello", p.fonts.small, colorMuted, 0)
		addr := text("contact-email-address", owner.Email, p.fonts.title, colorText, 0)
		h := stack(c.email, 24, 18, 4, label, addr)
		aw, _ := size(addr)
		c.email.Width, c.email.Height = aw+48, h+18
		items = append(items, slot("contact-email-slot", c.email))
	}

	if len(data.Socials) > 0 {
		row := folio.NewContainer("social-links")
		for _, s := range data.Socials {
			link := pill("social-"+s.Name, s.Name+"  "+s.Label, p.fonts.body, colorText, colorSurface, 20, 12)
			link.Tag = "a"
			link.AddClass("social-link")
			link.UserData = s.URL
			url := s.URL
			link.OnClick = func(folio.PointerContext) { p.qr.Toggle(url) }
			c.socials = append(c.socials, link)
		}
		row.Height = flow(row, p.colW, 12, c.socials...)
		row.Width = p.colW
		items = append(items, row)
	}

	if owner.Availability != "" {
		avail := folio.NewContainer("contact-availability")
		dot := folio.NewCircle("availability-indicator", 10, colorAvailable)
		label := text("contact-availability-label", owner.Availability, p.fonts.body, colorMuted, 0)
		lw, lh := size(label)
		dot.Y = (lh - 10) / 2
		label.X = 20
		avail.AddChild(dot)
		avail.AddChild(label)
		avail.Width, avail.Height = 20+lw, lh
		items = append(items, avail)
		pulse := p.presets.Variant("pulseAnimation")
		c.pulse = folio.NewMotion(p.scene, dot)
		c.pulse.Set(pulse.Rest.Props)
	}

	if data.Footer != "" {
		items = append(items, text("footer", data.Footer, p.fonts.small, colorMuted, 0))
	}

	height := stack(c.content, 0, 0, 28, items...)
	c.content.X, c.content.Y = p.colX, sectionGap/2
	c.content.Width, c.content.Height = p.colW, height
	c.section.Height = height + sectionGap
	c.section.AddChild(c.content)
	p.scene.Root().AddChild(c.section)

	c.reveal = p.scene.Reveal(c.content, folio.RevealOptions{
		Container: p.presets.Variant("staggerContainerSlow"),
		Child:     p.presets.Variant("fadeInUp"),
		Children:  items,
	})

	if c.email != nil {
		c.feedback = append(c.feedback, bindFeedback(p.scene, c.email, p.presets.Variant("emailHover")))
	}
	social := p.presets.Variant("socialHover")
	for _, link := range c.socials {
		c.feedback = append(c.feedback, bindFeedback(p.scene, link, social))
	}
	return c
}

// play starts the availability pulse.
func (c *Contact) play(p *Page) {
	if c.pulse != nil {
		c.pulse.Animate(p.presets.Variant("pulseAnimation").Visible)
	}
}

// Socials returns the social link nodes in order.
func (c *Contact) Socials() []*folio.Node {
	return c.socials
}

// Email returns the email card, or nil when no address is set.
func (c *Contact) Email() *folio.Node {
	return c.email
}

// Reveal returns the section entrance.
func (c *Contact) Reveal() *folio.Reveal {
	return c.reveal
}

func (c *Contact) close() {
	c.reveal.Close()
	if c.pulse != nil {
		c.pulse.Stop()
	}
	for _, f := range c.feedback {
		f.close()
	}
}
