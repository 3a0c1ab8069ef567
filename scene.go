package folio

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 512

// Ticker is advanced once per frame by the scene until Tick returns false.
// Motions, springs and other continuously running effects register
// themselves as tickers only while they have work to do.
type Ticker interface {
	Tick(dt float64) bool
}

// TickerFunc adapts a function to the Ticker interface.
type TickerFunc func(dt float64) bool

// Tick calls f(dt).
func (f TickerFunc) Tick(dt float64) bool { return f(dt) }

// Scene is the top-level object that owns the page tree, the fixed overlay
// tree, the scrolling camera, input state, observers and render buffers.
//
// The page tree (Root) lives in world space and scrolls with the camera.
// The overlay tree (Overlay) lives in screen space: headers, cursors and
// other fixed elements.
type Scene struct {
	root    *Node
	overlay *Node
	camera  *Camera
	debug   bool

	// ClearColor fills the screen before drawing each frame.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	// Render state
	commands   []RenderCommand
	sortBuf    []RenderCommand
	cullBounds Rect
	cullActive bool

	// Input state
	handlers      handlerRegistry
	pointers      [maxPointers]pointerState
	hitBuf        []*Node
	touchMap      [maxPointers]ebiten.TouchID
	touchUsed     [maxPointers]bool
	prevTouchIDs  []ebiten.TouchID
	liveInput     bool
	cursorInside  bool
	cursorKnown   bool
	injectQueue   []syntheticEvent
	pendingScroll float64

	// Scroll notification state
	lastOffset float64

	// Observers and continuously running effects
	mutations    mutationLog
	observers    []*IntersectionObserver
	tickers      []Ticker
	tickerBuf    []Ticker
	frame        uint64
	elapsed      float64
	lastStepTime time.Duration

	// Tooling
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene creates a new scene with pre-created page and overlay roots and a
// camera whose viewport is w x h screen pixels.
func NewScene(w, h float64) *Scene {
	s := &Scene{
		commands:      make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:       make([]RenderCommand, 0, defaultCommandCap),
		camera:        newCamera(Rect{Width: w, Height: h}),
		ScreenshotDir: "screenshots",
	}
	s.root = NewContainer("root")
	s.root.Interactable = true
	s.root.scene = s
	s.overlay = NewContainer("overlay")
	s.overlay.Interactable = true
	s.overlay.scene = s
	s.lastOffset = s.camera.ScrollOffset()
	return s
}

// Root returns the scene's page root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Overlay returns the scene's screen-space root container node.
func (s *Scene) Overlay() *Node {
	return s.overlay
}

// Camera returns the page camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Frame returns the number of completed Step calls.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Elapsed returns the simulated time in seconds since the scene was created.
func (s *Scene) Elapsed() float64 {
	return s.elapsed
}

// SetViewport resizes the camera viewport, keeping the current scroll offset.
func (s *Scene) SetViewport(w, h float64) {
	cam := s.camera
	if cam.Viewport.Width == w && cam.Viewport.Height == h {
		return
	}
	offset := cam.ScrollOffset()
	cam.Viewport.Width = w
	cam.Viewport.Height = h
	cam.X = w / (2 * cam.Zoom)
	cam.Y = offset + h/(2*cam.Zoom)
	if cam.BoundsEnabled {
		cam.clampToBounds()
	}
	cam.dirty = true
}

// FindByName looks up a node by name in the page tree, then the overlay.
// Returns nil when absent.
func (s *Scene) FindByName(name string) *Node {
	if n := s.root.FindByName(name); n != nil {
		return n
	}
	return s.overlay.FindByName(name)
}

// ScrollToSection smoothly scrolls the page so the named node is at the top
// of the viewport. Unknown names are ignored.
func (s *Scene) ScrollToSection(name string, duration float32) {
	n := s.root.FindByName(name)
	if n == nil {
		return
	}
	s.refreshTransforms()
	s.camera.ScrollIntoView(n, duration, nil)
}

// AddTicker registers t to be advanced every frame until it returns false.
func (s *Scene) AddTicker(t Ticker) {
	s.tickers = append(s.tickers, t)
}

// Update advances the scene by one tick at the current TPS.
func (s *Scene) Update() {
	s.Step(1.0 / float64(ebiten.TPS()))
}

// Step advances the scene by dt seconds: scripted input, pointer input,
// camera scrolling, scroll notifications, per-node updates, structural
// change delivery, intersection checks and tickers, in that order.
func (s *Scene) Step(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	s.refreshTransforms()
	s.processInput()

	s.camera.update(float32(dt))
	s.notifyScroll()

	s.runNodeUpdates(s.root, dt)
	s.runNodeUpdates(s.overlay, dt)

	s.refreshTransforms()
	s.mutations.deliver()
	s.checkIntersections()
	s.runTickers(dt)
	s.refreshTransforms()

	s.frame++
	s.elapsed += dt

	if s.debug {
		s.lastStepTime = time.Since(t0)
	}
}

// refreshTransforms recomputes world transforms for both trees.
func (s *Scene) refreshTransforms() {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	updateWorldTransform(s.overlay, identityTransform, 1.0, false)
}

// notifyScroll fires scroll handlers at most once per frame, only when the
// scroll offset changed since the previous notification.
func (s *Scene) notifyScroll() {
	offset := s.camera.ScrollOffset()
	if offset == s.lastOffset {
		return
	}
	delta := offset - s.lastOffset
	s.lastOffset = offset
	s.fireScroll(ScrollContext{Offset: offset, Delta: delta})
}

func (s *Scene) runNodeUpdates(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for i := 0; i < len(n.children); i++ {
		s.runNodeUpdates(n.children[i], dt)
	}
}

// runTickers advances every registered ticker, dropping those that finish.
// Tickers added during this pass run from the next frame.
func (s *Scene) runTickers(dt float64) {
	if len(s.tickers) == 0 {
		return
	}
	s.tickerBuf = append(s.tickerBuf[:0], s.tickers...)
	s.tickers = s.tickers[:0]
	for _, t := range s.tickerBuf {
		if t.Tick(dt) {
			s.tickers = append(s.tickers, t)
		}
	}
	clear(s.tickerBuf)
}

// NumTickers returns the number of active tickers.
func (s *Scene) NumTickers() int {
	return len(s.tickers)
}

// Draw renders the page through the camera, then the overlay in screen space.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.refreshTransforms()
	s.commands = s.commands[:0]
	treeOrder := 0

	view := s.camera.computeViewMatrix()
	s.cullActive = s.camera.CullEnabled
	if s.cullActive {
		s.cullBounds = s.camera.VisibleBounds()
	}
	s.traverse(s.root, view, &treeOrder)

	s.cullActive = false
	s.traverse(s.overlay, identityTransform, &treeOrder)

	if s.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	s.mergeSort()

	if s.debug {
		stats.sortTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		t0 = time.Now()
	}

	s.submitBatches(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.stepTime = s.lastStepTime
		stats.tickers = len(s.tickers)
		stats.observers = len(s.observers)
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and per-frame timing stats
// are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
