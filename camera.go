package folio

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into the page: position, zoom and viewport. The
// page scrolls by moving the camera; the scroll offset is the world Y of the
// top edge of the visible area.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom).
	Zoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// CullEnabled skips nodes whose world AABB doesn't intersect the
	// camera's visible bounds.
	CullEnabled bool

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true. For a page this is the full document.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// newCamera creates a Camera with default values and the given viewport,
// positioned so the world origin sits at the viewport's top-left corner.
func newCamera(viewport Rect) *Camera {
	return &Camera{
		X:           viewport.Width / 2,
		Y:           viewport.Height / 2,
		Zoom:        1.0,
		Viewport:    viewport,
		CullEnabled: true,
		dirty:       true,
	}
}

// ScrollTo animates the camera center to the given world position over
// duration seconds. A zero duration jumps immediately.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		c.scrollTween = nil
		c.X, c.Y = x, y
		if c.BoundsEnabled {
			c.clampToBounds()
		}
		c.dirty = true
		return
	}
	if easeFn == nil {
		easeFn = ease.InOutQuad
	}
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ScrollOffset returns the world Y of the top of the visible area.
func (c *Camera) ScrollOffset() float64 {
	return c.Y - c.Viewport.Height/(2*c.Zoom)
}

// ScrollToOffset animates the camera so the visible area starts at world Y
// offset.
func (c *Camera) ScrollToOffset(offset float64, duration float32, easeFn ease.TweenFunc) {
	c.ScrollTo(c.X, offset+c.Viewport.Height/(2*c.Zoom), duration, easeFn)
}

// ScrollBy moves the camera vertically by dy world pixels immediately,
// cancelling any running scroll animation.
func (c *Camera) ScrollBy(dy float64) {
	c.scrollTween = nil
	c.Y += dy
	if c.BoundsEnabled {
		c.clampToBounds()
	}
	c.dirty = true
}

// ScrollIntoView smoothly scrolls so the node's top edge aligns with the top
// of the viewport. A nil or detached node is ignored.
func (c *Camera) ScrollIntoView(n *Node, duration float32, easeFn ease.TweenFunc) {
	if n == nil || n.IsDisposed() || !n.Attached() {
		return
	}
	c.ScrollToOffset(n.WorldBounds().Y, duration, easeFn)
}

// Scrolling reports whether a scroll animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// update advances scroll and bounds clamping. Called from Scene.Update().
func (c *Camera) update(dt float32) {
	prevX, prevY, prevZoom := c.X, c.Y, c.Zoom

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	if c.X != prevX || c.Y != prevY || c.Zoom != prevZoom {
		c.dirty = true
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// Bounds smaller than the visible area pin to the top-left.
	if minX > maxX {
		c.X = minX
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = minY
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom

	c.viewMatrix = [6]float64{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// VisibleBounds returns the camera's visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	x0, y0 := transformPoint(c.invViewMatrix, c.Viewport.X, c.Viewport.Y)
	x1, y1 := transformPoint(c.invViewMatrix, c.Viewport.X+c.Viewport.Width, c.Viewport.Y+c.Viewport.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// shouldCull reports whether a world-space node lies entirely outside the
// cull bounds. Containers are never culled; unsized nodes are never culled.
func shouldCull(n *Node, cullBounds Rect) bool {
	if n.Type == NodeTypeContainer {
		return false
	}
	w, h := nodeDimensions(n)
	if w == 0 && h == 0 {
		return false
	}
	return !worldAABB(n.worldTransform, w, h).Intersects(cullBounds)
}
