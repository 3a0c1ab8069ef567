package folio

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- TextBlock ---

// TextBlock holds text content, formatting, and cached layout state.
// Change fields through the setters so the cached image is refreshed.
type TextBlock struct {
	Content    string
	Font       Font
	Align      TextAlign
	WrapWidth  float64 // 0 disables wrapping
	Color      Color
	LineHeight float64 // override; 0 = use Font.LineHeight()

	// Cached layout (unexported)
	layoutDirty bool
	wrapped     string
	measuredW   float64
	measuredH   float64

	// Rendering cache (unexported)
	image *ebiten.Image
	dirty bool
}

// SetContent replaces the text.
func (tb *TextBlock) SetContent(s string) {
	if tb.Content == s {
		return
	}
	tb.Content = s
	tb.Invalidate()
}

// SetWrapWidth changes the wrap width.
func (tb *TextBlock) SetWrapWidth(w float64) {
	tb.WrapWidth = w
	tb.Invalidate()
}

// Invalidate forces a new layout and render after direct field changes.
func (tb *TextBlock) Invalidate() {
	tb.layoutDirty = true
	tb.dirty = true
}

// Size returns the measured width and height.
func (tb *TextBlock) Size() (w, h float64) {
	tb.layout()
	return tb.measuredW, tb.measuredH
}

// lineHeight returns the effective line height for this text block.
func (tb *TextBlock) lineHeight() float64 {
	if tb.LineHeight > 0 {
		return tb.LineHeight
	}
	if tb.Font != nil {
		return tb.Font.LineHeight()
	}
	return 0
}

// layout recomputes wrapping and measured size if dirty.
func (tb *TextBlock) layout() {
	if !tb.layoutDirty {
		return
	}
	tb.layoutDirty = false
	tb.dirty = true

	if tb.Font == nil || tb.Content == "" {
		tb.wrapped = ""
		tb.measuredW = 0
		tb.measuredH = 0
		return
	}

	tb.wrapped = tb.Content
	if tb.WrapWidth > 0 {
		tb.wrapped = wrapText(tb.Content, tb.WrapWidth, tb.Font)
	}
	lines := strings.Split(tb.wrapped, "\n")
	var maxW float64
	for _, line := range lines {
		w, _ := tb.Font.MeasureString(line)
		maxW = max(maxW, w)
	}
	tb.measuredW = maxW
	tb.measuredH = float64(len(lines)) * tb.lineHeight()
}

// wrapText breaks content at spaces so no line is wider than width. Words
// wider than width get a line of their own.
func wrapText(content string, width float64, f Font) string {
	var out strings.Builder
	for pi, para := range strings.Split(content, "\n") {
		if pi > 0 {
			out.WriteByte('\n')
		}
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if w, _ := f.MeasureString(candidate); w <= width || line == "" {
				line = candidate
				continue
			}
			out.WriteString(line)
			out.WriteByte('\n')
			line = word
		}
		out.WriteString(line)
	}
	return out.String()
}

// render returns the cached text image, redrawing it when the content or
// layout changed. Glyphs are drawn white; the render command applies Color.
func (tb *TextBlock) render() *ebiten.Image {
	if tb == nil {
		return nil
	}
	tb.layout()
	f, ok := tb.Font.(*TTFFont)
	if !ok || tb.measuredW == 0 || tb.measuredH == 0 {
		return nil
	}
	if !tb.dirty && tb.image != nil {
		return tb.image
	}
	tb.dirty = false

	w := int(tb.measuredW) + 1
	h := int(tb.measuredH) + 1
	if tb.image != nil {
		b := tb.image.Bounds()
		if b.Dx() != w || b.Dy() != h {
			tb.image.Deallocate()
			tb.image = ebiten.NewImage(w, h)
		} else {
			tb.image.Clear()
		}
	} else {
		tb.image = ebiten.NewImage(w, h)
	}

	op := &text.DrawOptions{}
	op.LineSpacing = tb.lineHeight()
	switch tb.Align {
	case TextAlignCenter:
		op.GeoM.Translate(tb.measuredW/2, 0)
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.GeoM.Translate(tb.measuredW, 0)
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(tb.image, tb.wrapped, f.face, op)
	return tb.image
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("folio: failed to parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	// Compute line height from metrics
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// WithSize returns the same typeface at another size.
func (f *TTFFont) WithSize(size float64) *TTFFont {
	return newTTFFont(f.source, size)
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- Bundled Go fonts ---

var (
	goFontsOnce sync.Once
	goRegular   *text.GoTextFaceSource
	goBold      *text.GoTextFaceSource
	goFontsErr  error
)

func loadGoFonts() error {
	goFontsOnce.Do(func() {
		goRegular, goFontsErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if goFontsErr != nil {
			goFontsErr = fmt.Errorf("folio: go regular font: %w", goFontsErr)
			return
		}
		goBold, goFontsErr = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if goFontsErr != nil {
			goFontsErr = fmt.Errorf("folio: go bold font: %w", goFontsErr)
		}
	})
	return goFontsErr
}

// RegularFont returns the bundled Go Regular typeface at size.
func RegularFont(size float64) (*TTFFont, error) {
	if err := loadGoFonts(); err != nil {
		return nil, err
	}
	return newTTFFont(goRegular, size), nil
}

// BoldFont returns the bundled Go Bold typeface at size.
func BoldFont(size float64) (*TTFFont, error) {
	if err := loadGoFonts(); err != nil {
		return nil, err
	}
	return newTTFFont(goBold, size), nil
}
