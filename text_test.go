package folio

import (
	"strings"
	"testing"
)

// monoFont measures every rune as 10 pixels wide and lines as 20 tall.
type monoFont struct{}

func (monoFont) MeasureString(s string) (float64, float64) {
	var w float64
	for _, line := range strings.Split(s, "\n") {
		w = max(w, float64(len([]rune(line)))*10)
	}
	return w, float64(strings.Count(s, "\n")+1) * 20
}

func (monoFont) LineHeight() float64 { return 20 }

func TestWrapText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   float64
		want    string
	}{
		{"fits", "hello world", 200, "hello world"},
		{"breaks at space", "hello world", 80, "hello\nworld"},
		{"packs words", "a bb ccc dddd", 70, "a bb\nccc\ndddd"},
		{"long word alone", "tiny enormousword end", 50, "tiny\nenormousword\nend"},
		{"keeps paragraphs", "one two\nthree", 200, "one two\nthree"},
		{"collapses spaces", "a   b", 200, "a b"},
		{"empty", "", 100, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapText(tt.content, tt.width, monoFont{}); got != tt.want {
				t.Errorf("wrapText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextBlockSize(t *testing.T) {
	n := NewText("t", "hello world", monoFont{})
	w, h := n.TextBlock.Size()
	if w != 110 || h != 20 {
		t.Errorf("Size = (%f, %f), want (110, 20)", w, h)
	}

	n.TextBlock.SetWrapWidth(80)
	w, h = n.TextBlock.Size()
	if w != 50 || h != 40 {
		t.Errorf("wrapped Size = (%f, %f), want (50, 40)", w, h)
	}
}

func TestTextBlockLineHeightOverride(t *testing.T) {
	n := NewText("t", "a\nb\nc", monoFont{})
	n.TextBlock.LineHeight = 30
	n.TextBlock.Invalidate()
	if _, h := n.TextBlock.Size(); h != 90 {
		t.Errorf("height = %f, want 90", h)
	}
}

func TestTextBlockSetContent(t *testing.T) {
	n := NewText("t", "ab", monoFont{})
	n.TextBlock.Size()
	n.TextBlock.SetContent("abcd")
	if w, _ := n.TextBlock.Size(); w != 40 {
		t.Errorf("width = %f after SetContent, want 40", w)
	}
	n.TextBlock.SetContent("")
	if w, h := n.TextBlock.Size(); w != 0 || h != 0 {
		t.Errorf("empty Size = (%f, %f), want zero", w, h)
	}
}

func TestTextNodeBounds(t *testing.T) {
	s := NewScene(800, 600)
	n := NewText("t", "abcde", monoFont{})
	n.SetPosition(10, 20)
	s.Root().AddChild(n)
	s.refreshTransforms()
	assertRect(t, "text", n.WorldBounds(), Rect{X: 10, Y: 20, Width: 50, Height: 20})
}

func TestBundledFonts(t *testing.T) {
	regular, err := RegularFont(16)
	if err != nil {
		t.Fatalf("RegularFont: %v", err)
	}
	bold, err := BoldFont(16)
	if err != nil {
		t.Fatalf("BoldFont: %v", err)
	}
	if regular.LineHeight() <= 0 || regular.Size() != 16 {
		t.Errorf("regular line height %f size %f", regular.LineHeight(), regular.Size())
	}
	rw, _ := regular.MeasureString("Portfolio")
	bw, _ := bold.MeasureString("Portfolio")
	if rw <= 0 || bw < rw {
		t.Errorf("widths regular %f bold %f", rw, bw)
	}
	if big := regular.WithSize(32); big.LineHeight() <= regular.LineHeight() {
		t.Error("WithSize should scale the line height")
	}
}

func TestLoadTTFFontInvalidData(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
}
