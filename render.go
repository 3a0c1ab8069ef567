package folio

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandSprite CommandType = iota // solid box or custom image
	CommandText                      // cached text image
)

// color32 is a compact RGBA color using float32, for render commands only.
type color32 struct {
	R, G, B, A float32
}

// RenderCommand is a single draw instruction emitted during scene traversal.
type RenderCommand struct {
	Type        CommandType
	Transform   [6]float32
	Color       color32
	BlendMode   BlendMode
	RenderLayer uint8
	treeOrder   int // assigned during traversal for stable sort

	// For solid boxes, the box size in local pixels. For images, a scale
	// applied before Transform; zero means unscaled.
	width, height float32

	// image, when non-nil, is drawn instead of a solid box.
	image *ebiten.Image
}

// affine32 converts a [6]float64 affine matrix to [6]float32.
func affine32(m [6]float64) [6]float32 {
	return [6]float32{float32(m[0]), float32(m[1]), float32(m[2]), float32(m[3]), float32(m[4]), float32(m[5])}
}

// traverse walks the node tree depth-first and emits render commands for
// visible, renderable nodes. World transforms are already current (see
// Scene.refreshTransforms); view maps the tree's space to the screen.
func (s *Scene) traverse(n *Node, view [6]float64, treeOrder *int) {
	if !n.Visible {
		return
	}

	// Culling only suppresses this node's own command; children are always
	// visited because they may lie outside the parent's box.
	culled := s.cullActive && n.Renderable && shouldCull(n, s.cullBounds)

	if n.Renderable && !culled && n.worldAlpha > 0 {
		screen := affine32(multiplyAffine(view, n.worldTransform))
		switch n.Type {
		case NodeTypeSprite:
			cmd := RenderCommand{
				Type:        CommandSprite,
				Transform:   screen,
				Color:       color32{float32(n.Color.R), float32(n.Color.G), float32(n.Color.B), float32(n.Color.A * n.worldAlpha)},
				BlendMode:   n.BlendMode,
				RenderLayer: n.RenderLayer,
			}
			if n.customImage != nil {
				cmd.image = n.customImage
				if n.Width > 0 && n.Height > 0 {
					b := n.customImage.Bounds()
					cmd.width = float32(n.Width / float64(b.Dx()))
					cmd.height = float32(n.Height / float64(b.Dy()))
				}
			} else {
				cmd.width = float32(n.Width)
				cmd.height = float32(n.Height)
			}
			if cmd.image != nil || (cmd.width > 0 && cmd.height > 0) {
				*treeOrder++
				cmd.treeOrder = *treeOrder
				s.commands = append(s.commands, cmd)
			}
		case NodeTypeText:
			if img := n.TextBlock.render(); img != nil {
				c := n.TextBlock.Color
				*treeOrder++
				s.commands = append(s.commands, RenderCommand{
					Type:        CommandText,
					Transform:   screen,
					Color:       color32{float32(c.R), float32(c.G), float32(c.B), float32(c.A * n.worldAlpha)},
					BlendMode:   n.BlendMode,
					RenderLayer: n.RenderLayer,
					treeOrder:   *treeOrder,
					image:       img,
				})
			}
			// NodeTypeContainer doesn't emit commands
		}
	}

	if len(n.children) == 0 {
		return
	}
	children := n.children
	if !n.childrenSorted {
		s.rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil {
		children = n.sortedChildren
	}
	for _, child := range children {
		s.traverse(child, view, treeOrder)
	}
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order for a node.
// Uses insertion sort: zero allocations, stable, and optimal for the typical
// case of few children that are nearly sorted (O(n) when already sorted).
func (s *Scene) rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same position as b.
// Using <= for treeOrder ensures stability.
func commandLessOrEqual(a, b RenderCommand) bool {
	if a.RenderLayer != b.RenderLayer {
		return a.RenderLayer < b.RenderLayer
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts s.commands in-place using s.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (s *Scene) mergeSort() {
	n := len(s.commands)
	if n <= 1 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]RenderCommand, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a := s.commands
	b := s.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.commands, s.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []RenderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
