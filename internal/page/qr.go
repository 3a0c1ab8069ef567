package page

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/folio"
	"github.com/skip2/go-qrcode"
	"golang.org/x/sync/errgroup"
)

// DefaultQRSize is the edge length of generated codes in pixels.
const DefaultQRSize = 160

// GenerateQR encodes every link as a QR code in parallel. The result maps
// each link to its image.
func GenerateQR(ctx context.Context, links []string, size int) (map[string]image.Image, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	imgs := make([]image.Image, len(links))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, link := range links {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			q, err := qrcode.New(link, qrcode.Medium)
			if err != nil {
				return fmt.Errorf("qr code for %q: %w", link, err)
			}
			q.ForegroundColor = color.RGBA{0x0b, 0x0b, 0x12, 0xff}
			q.BackgroundColor = color.White
			imgs[i] = q.Image(size)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make(map[string]image.Image, len(links))
	for i, link := range links {
		out[link] = imgs[i]
	}
	return out, nil
}

// QRPanel is a fixed card in the bottom-right corner showing the QR code
// of the last clicked link. Clicking the same link again, or the panel
// itself, hides it.
type QRPanel struct {
	node    *folio.Node
	code    *folio.Node
	caption *folio.Node
	motion  *folio.Motion
	v       folio.Variants
	images  map[string]*ebiten.Image
	current string
}

func newQRPanel(s *folio.Scene, codes map[string]image.Image, size int, f fonts, show folio.Variants) *QRPanel {
	if size <= 0 {
		size = DefaultQRSize
	}
	const pad = 16.0
	vp := s.Camera().Viewport
	w := float64(size) + 2*pad
	h := w + 40

	p := &QRPanel{images: make(map[string]*ebiten.Image, len(codes)), v: show}
	for link, img := range codes {
		p.images[link] = ebiten.NewImageFromImage(img)
	}

	p.node = folio.NewBox("qr-panel", w, h, colorText)
	p.node.X = vp.Width - w - 24
	p.node.Y = vp.Height - h - 24
	p.node.ZIndex = 1 << 10
	p.node.Interactable = true
	p.node.OnClick = func(folio.PointerContext) { p.Hide() }

	p.code = folio.NewSprite("qr-code")
	p.code.X, p.code.Y = pad, pad
	p.node.AddChild(p.code)

	p.caption = text("qr-caption", "", f.small, colorBackground, w-2*pad)
	p.caption.X, p.caption.Y = pad, float64(size)+pad+8
	p.node.AddChild(p.caption)

	s.Overlay().AddChild(p.node)
	p.motion = folio.NewMotion(s, p.node)
	p.motion.Set(show.Hidden.Props)
	p.node.Visible = false
	return p
}

// Toggle shows the code for link, or hides the panel if link is already
// showing. Links without a generated code are ignored.
func (p *QRPanel) Toggle(link string) {
	if p.node.Visible && p.current == link {
		p.Hide()
		return
	}
	img, ok := p.images[link]
	if !ok {
		return
	}
	p.current = link
	p.code.SetCustomImage(img)
	p.caption.TextBlock.SetContent(link)
	if !p.node.Visible {
		p.node.Visible = true
		p.motion.Set(p.v.Hidden.Props)
		p.motion.Animate(p.v.Visible)
	}
}

// Hide hides the panel immediately.
func (p *QRPanel) Hide() {
	p.current = ""
	p.node.Visible = false
	p.motion.Stop()
}

// Showing returns the link on display, or "" when hidden.
func (p *QRPanel) Showing() string {
	if !p.node.Visible {
		return ""
	}
	return p.current
}

// Node returns the panel's root node.
func (p *QRPanel) Node() *folio.Node {
	return p.node
}
