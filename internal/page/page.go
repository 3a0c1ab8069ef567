// Package page assembles the portfolio scene: a fixed header, the hero,
// about, projects and contact sections, the QR panel and the custom cursor.
package page

import (
	"context"
	"errors"
	"fmt"

	"github.com/phanxgames/folio"
	"github.com/phanxgames/folio/internal/content"
	"github.com/phanxgames/folio/internal/presets"
)

// Section ids in page order.
var SectionIDs = []string{"hero", "about", "projects", "contact"}

// Scroll timing for nav and button clicks.
const scrollDuration = 0.8

// Options tunes page construction.
type Options struct {
	// Touch decides whether the custom cursor is mounted.
	Touch folio.TouchMode
	// QRSize is the QR code edge length; zero means DefaultQRSize.
	QRSize int
}

// Page owns every component mounted on a scene.
type Page struct {
	scene   *folio.Scene
	content *content.Content
	presets *presets.Presets
	fonts   fonts

	viewW, viewH float64
	colX, colW   float64
	height       float64

	scroll   *folio.ScrollTracker
	qr       *QRPanel
	header   *Header
	hero     *Hero
	about    *About
	projects *Projects
	contact  *Contact
	cursor   *folio.Cursor
	closed   bool
}

// Build lays out the page on s and starts the mount animations. QR codes
// for every link are generated before anything is mounted.
func Build(ctx context.Context, s *folio.Scene, c *content.Content, ps *presets.Presets, opts Options) (*Page, error) {
	if s == nil || c == nil || ps == nil {
		return nil, errors.New("page: Build needs a scene, content and presets")
	}
	codes, err := GenerateQR(ctx, c.Links(), opts.QRSize)
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	f, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}

	vp := s.Camera().Viewport
	p := &Page{
		scene:   s,
		content: c,
		presets: ps,
		fonts:   f,
		viewW:   vp.Width,
		viewH:   vp.Height,
	}
	p.colW = min(maxColumn, p.viewW-2*sidePadding)
	p.colX = (p.viewW - p.colW) / 2
	s.ClearColor = colorBackground

	y := 0.0
	p.hero = buildHero(p, y)
	y += p.hero.section.Height
	p.about = buildAbout(p, y)
	y += p.about.section.Height
	p.projects = buildProjects(p, y)
	y += p.projects.section.Height
	p.contact = buildContact(p, y)
	y += p.contact.section.Height
	p.height = y
	s.Camera().SetBounds(folio.Rect{Width: p.viewW, Height: p.height})

	p.qr = newQRPanel(s, codes, opts.QRSize, f, ps.Variant("scaleIn"))
	enableContainers(s.Root())

	p.scroll = folio.NewScrollTracker(s)
	p.header = newHeader(p, c.Nav)

	cursor := folio.DefaultCursorOptions()
	cursor.Touch = opts.Touch
	cursor.HoverColor = colorAccent
	p.cursor = s.MountCursor(cursor)

	p.hero.play(p)
	p.contact.play(p)
	return p, nil
}

// ScrollTo smoothly scrolls the section with the given id to the top of the
// viewport. Unknown ids are ignored.
func (p *Page) ScrollTo(id string) {
	p.scene.ScrollToSection(id, scrollDuration)
}

// ScrollToTop smoothly scrolls back to the start of the page.
func (p *Page) ScrollToTop() {
	p.scene.Camera().ScrollToOffset(0, scrollDuration, nil)
}

// Height returns the laid-out document height.
func (p *Page) Height() float64 { return p.height }

func (p *Page) Scroll() *folio.ScrollTracker { return p.scroll }
func (p *Page) Header() *Header              { return p.header }
func (p *Page) Hero() *Hero                  { return p.hero }
func (p *Page) About() *About                { return p.about }
func (p *Page) Projects() *Projects          { return p.projects }
func (p *Page) Contact() *Contact            { return p.contact }
func (p *Page) Cursor() *folio.Cursor        { return p.cursor }
func (p *Page) QR() *QRPanel                 { return p.qr }

// Close tears down every listener, observer and running animation the page
// registered. The nodes stay in the scene.
func (p *Page) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.cursor.Close()
	p.header.close()
	p.hero.close()
	p.about.close()
	p.projects.close()
	p.contact.close()
	p.scroll.Close()
	p.qr.Hide()
}
