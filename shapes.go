package folio

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type shapeKey struct {
	size   int
	stroke float32 // 0 = filled
}

var shapeCache = map[shapeKey]*ebiten.Image{}

// CircleImage returns a white filled circle texture of the given diameter.
// Tint it with the node's Color. Textures are cached per size.
func CircleImage(diameter float64) *ebiten.Image {
	return shapeImage(diameter, 0)
}

// RingImage returns a white circle outline texture of the given diameter
// and stroke width.
func RingImage(diameter, stroke float64) *ebiten.Image {
	if stroke <= 0 {
		stroke = 1
	}
	return shapeImage(diameter, float32(stroke))
}

func shapeImage(diameter float64, stroke float32) *ebiten.Image {
	size := max(int(math.Ceil(diameter)), 1)
	key := shapeKey{size: size, stroke: stroke}
	if img, ok := shapeCache[key]; ok {
		return img
	}
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	white := ColorWhite.toRGBA()
	if stroke == 0 {
		vector.DrawFilledCircle(img, c, c, c, white, true)
	} else {
		vector.StrokeCircle(img, c, c, c-stroke/2, stroke, white, true)
	}
	shapeCache[key] = img
	return img
}

// NewCircle creates a sprite showing a filled circle of the given diameter.
// Its box is the circle's bounding square.
func NewCircle(name string, diameter float64, c Color) *Node {
	n := NewSprite(name)
	n.SetCustomImage(CircleImage(diameter))
	n.Width = diameter
	n.Height = diameter
	n.Color = c
	n.HitShape = HitCircle{CenterX: diameter / 2, CenterY: diameter / 2, Radius: diameter / 2}
	return n
}

// NewRing creates a sprite showing a circle outline.
func NewRing(name string, diameter, stroke float64, c Color) *Node {
	n := NewSprite(name)
	n.SetCustomImage(RingImage(diameter, stroke))
	n.Width = diameter
	n.Height = diameter
	n.Color = c
	return n
}
