package folio

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// submitBatches submits the sorted commands to the target image in order.
func (s *Scene) submitBatches(target *ebiten.Image) {
	if len(s.commands) == 0 {
		return
	}

	var op ebiten.DrawImageOptions

	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.Type {
		case CommandSprite, CommandText:
			submitSprite(target, cmd, &op)
		}
	}
}

// submitSprite draws a single command using DrawImage. Solid boxes stretch
// WhitePixel to the box size; images are drawn at their own size, optionally
// scaled to the node's box.
func submitSprite(target *ebiten.Image, cmd *RenderCommand, op *ebiten.DrawImageOptions) {
	img := cmd.image
	op.GeoM.Reset()
	if img == nil {
		img = WhitePixel
		op.GeoM.Scale(float64(cmd.width), float64(cmd.height))
	} else if cmd.width > 0 && cmd.height > 0 {
		op.GeoM.Scale(float64(cmd.width), float64(cmd.height))
	}
	op.GeoM.Concat(commandGeoM(cmd))

	// Apply premultiplied color scale
	op.ColorScale.Reset()
	a := cmd.Color.A
	op.ColorScale.Scale(cmd.Color.R*a, cmd.Color.G*a, cmd.Color.B*a, a)

	op.Blend = cmd.BlendMode.EbitenBlend()

	target.DrawImage(img, op)
}

// commandGeoM converts a command's affine transform to an ebiten.GeoM.
func commandGeoM(cmd *RenderCommand) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, float64(cmd.Transform[0]))
	m.SetElement(1, 0, float64(cmd.Transform[1]))
	m.SetElement(0, 1, float64(cmd.Transform[2]))
	m.SetElement(1, 1, float64(cmd.Transform[3]))
	m.SetElement(0, 2, float64(cmd.Transform[4]))
	m.SetElement(1, 2, float64(cmd.Transform[5]))
	return m
}
