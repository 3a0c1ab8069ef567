package page

import (
	"fmt"

	"github.com/phanxgames/folio"
)

var (
	colorBackground = folio.RGB(0x0b, 0x0b, 0x12)
	colorSurface    = folio.RGB(0x15, 0x15, 0x22)
	colorBorder     = folio.RGB(0x2a, 0x2a, 0x3c)
	colorText       = folio.RGB(0xf1, 0xf1, 0xf6)
	colorMuted      = folio.RGB(0x9c, 0x9c, 0xb4)
	colorAccent     = folio.RGB(0x8b, 0x5c, 0xf6)
	colorAvailable  = folio.RGB(0x22, 0xc5, 0x5e)
	colorHeader     = folio.RGB(0x0b, 0x0b, 0x12).WithAlpha(0.85)
)

// Layout metrics in pixels.
const (
	headerHeight  = 72
	maxColumn     = 1040.0
	sidePadding   = 48.0
	sectionGap    = 120.0
	paragraphGap  = 20.0
	cardPadding   = 28.0
	tagPaddingX   = 14.0
	tagPaddingY   = 8.0
	tagGap        = 10.0
	scrolledAfter = 50.0
)

type fonts struct {
	display *folio.TTFFont
	heading *folio.TTFFont
	title   *folio.TTFFont
	body    *folio.TTFFont
	small   *folio.TTFFont
	brand   *folio.TTFFont
}

func loadFonts() (fonts, error) {
	var f fonts
	var err error
	load := func(dst **folio.TTFFont, bold bool, size float64) {
		if err != nil {
			return
		}
		if bold {
			*dst, err = folio.BoldFont(size)
		} else {
			*dst, err = folio.RegularFont(size)
		}
	}
	load(&f.display, true, 72)
	load(&f.heading, true, 44)
	load(&f.title, true, 24)
	load(&f.body, false, 18)
	load(&f.small, false, 14)
	load(&f.brand, true, 22)
	if err != nil {
		return f, fmt.Errorf("load fonts: %w", err)
	}
	return f, nil
}

// size returns a node's local box.
func size(n *folio.Node) (w, h float64) {
	if n.TextBlock != nil {
		return n.TextBlock.Size()
	}
	return n.Width, n.Height
}

// text creates a text node tinted c, wrapped at wrap when positive.
func text(name, content string, font *folio.TTFFont, c folio.Color, wrap float64) *folio.Node {
	n := folio.NewText(name, content, font)
	n.TextBlock.Color = c
	if wrap > 0 {
		n.TextBlock.SetWrapWidth(wrap)
	}
	return n
}

// stack places children top to bottom from y, separated by gap, and returns
// the y just past the last one.
func stack(parent *folio.Node, x, y, gap float64, children ...*folio.Node) float64 {
	for i, c := range children {
		if i > 0 {
			y += gap
		}
		c.X, c.Y = x, y
		parent.AddChild(c)
		_, h := size(c)
		y += h
	}
	return y
}

// flow places children left to right, wrapping at width, and returns the
// total height used.
func flow(parent *folio.Node, width, gap float64, children ...*folio.Node) float64 {
	x, y, rowH := 0.0, 0.0, 0.0
	for _, c := range children {
		w, h := size(c)
		if x > 0 && x+w > width {
			x = 0
			y += rowH + gap
			rowH = 0
		}
		c.X, c.Y = x, y
		parent.AddChild(c)
		x += w + gap
		rowH = max(rowH, h)
	}
	return y + rowH
}

// pill builds a padded label with a tinted background, used for tags,
// badges and buttons. The label is a child of the returned box.
func pill(name, label string, font *folio.TTFFont, fg, bg folio.Color, padX, padY float64) *folio.Node {
	t := text(name+"-label", label, font, fg, 0)
	w, h := size(t)
	box := folio.NewBox(name, w+2*padX, h+2*padY, bg)
	t.X, t.Y = padX, padY
	box.AddChild(t)
	return box
}

// slot wraps n in a container of the same size so entrance and hover
// animations can drive different nodes.
func slot(name string, n *folio.Node) *folio.Node {
	w, h := size(n)
	s := folio.NewContainer(name)
	s.Width, s.Height = w, h
	n.X, n.Y = 0, 0
	s.AddChild(n)
	return s
}
