package folio

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// HitShape is used for custom hit testing regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Node      *Node
	UserData  any
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	ScreenX   float64
	ScreenY   float64
	Button    MouseButton
	PointerID int
}

// ScrollContext carries a per-frame scroll notification. Offset is the new
// scroll offset in world pixels; Delta is the change since the previous
// notification (positive when the page moved down).
type ScrollContext struct {
	Offset float64
	Delta  float64
}

// nodeIDCounter is a plain counter (no atomic; folio is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types to avoid interface dispatch on the hot path.
//
// Name doubles as the element id used by anchor lookups and #id selectors.
// Tag, Classes and Role are matched by selectors.
type Node struct {
	// Identity
	ID      uint32
	Name    string
	Tag     string
	Classes []string
	Role    string
	Type    NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Computed during transform refresh
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Renderable   bool
	Interactable bool

	// Ordering
	ZIndex      int
	RenderLayer uint8

	// Metadata
	UserData any

	// Sprite fields (NodeTypeSprite). A sprite without a custom image draws
	// a solid Width x Height box in Color.
	Width, Height float64
	Color         Color
	BlendMode     BlendMode
	customImage   *ebiten.Image

	// Text fields (NodeTypeText)
	TextBlock *TextBlock

	// Hit testing
	HitShape HitShape

	// Per-node callbacks (nil by default; zero cost when unused)
	OnPointerDown  func(PointerContext)
	OnPointerUp    func(PointerContext)
	OnPointerMove  func(PointerContext)
	OnClick        func(PointerContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	// OnUpdate runs once per Scene.Update with the frame delta in seconds.
	OnUpdate func(dt float64)

	// Attached listeners (see AddListener)
	listeners []nodeListener

	// scene is set on scene-owned roots only; descendants find it by walking up.
	scene *Scene

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = Color{1, 1, 1, 1}
	n.Visible = true
	n.Renderable = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node. Without a custom image it renders as a
// solid box; set Width, Height and Color.
func NewSprite(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite}
	nodeDefaults(n)
	return n
}

// NewBox creates a solid color sprite of the given size.
func NewBox(name string, w, h float64, c Color) *Node {
	n := NewSprite(name)
	n.Width = w
	n.Height = h
	n.Color = c
	return n
}

// NewText creates a text node with the given content and font.
func NewText(name string, content string, font Font) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		TextBlock: &TextBlock{
			Content:     content,
			Font:        font,
			Color:       Color{1, 1, 1, 1},
			layoutDirty: true,
			dirty:       true,
		},
	}
	nodeDefaults(n)
	return n
}

// SetCustomImage sets an image to display instead of a solid box.
func (n *Node) SetCustomImage(img *ebiten.Image) {
	n.customImage = img
}

// CustomImage returns the user-provided image, or nil if not set.
func (n *Node) CustomImage() *ebiten.Image {
	return n.customImage
}

// HasClass reports whether the node carries the given class.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.Classes, class)
}

// AddClass adds a class if not already present.
func (n *Node) AddClass(class string) {
	if !n.HasClass(class) {
		n.Classes = append(n.Classes, class)
	}
}

// RemoveClass removes a class if present.
func (n *Node) RemoveClass(class string) {
	n.Classes = slices.DeleteFunc(n.Classes, func(c string) bool { return c == class })
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("folio: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("folio: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.detach(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
	n.recordMutation(child, true)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("folio: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("folio: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.detach(child)
	}
	if index < 0 || index > len(n.children) {
		panic("folio: child index out of range")
	}
	child.Parent = n
	n.children = slices.Insert(n.children, index, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
	n.recordMutation(child, true)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("folio: child's parent is not this node")
	}
	n.detach(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.detach(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		n.recordMutation(child, false)
		child.Parent = nil
		markSubtreeDirty(child)
	}
	clear(n.children)
	n.children = n.children[:0]
	n.childrenSorted = true
}

// detach removes child from n, recording the structural change while the
// child is still reachable from the scene.
func (n *Node) detach(child *Node) {
	n.recordMutation(child, false)
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			break
		}
	}
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// FindByName returns the first node named name in this subtree (depth-first,
// including n itself), or nil.
func (n *Node) FindByName(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.children {
		if found := child.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits n and every descendant depth-first. Returning false from fn
// skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// Scene returns the scene this node is attached to, or nil when detached.
func (n *Node) Scene() *Scene {
	for p := n; p != nil; p = p.Parent {
		if p.scene != nil {
			return p.scene
		}
	}
	return nil
}

// Attached reports whether the node is reachable from a scene root.
func (n *Node) Attached() bool {
	return n.Scene() != nil
}

func (n *Node) recordMutation(child *Node, added bool) {
	if s := n.Scene(); s != nil {
		s.mutations.record(Mutation{Parent: n, Node: child, Added: added})
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.HitShape = nil
	n.customImage = nil
	if n.TextBlock != nil && n.TextBlock.image != nil {
		n.TextBlock.image.Deallocate()
	}
	n.TextBlock = nil
	n.UserData = nil
	n.OnPointerDown = nil
	n.OnPointerUp = nil
	n.OnPointerMove = nil
	n.OnClick = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
	n.OnUpdate = nil
	n.listeners = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
