// Package folio is a retained-mode, viewport-driven animation engine for
// single-page portfolio sites, rendered with [Ebitengine].
//
// A [Scene] owns two trees: the page ([Scene.Root]), a tall document in
// world space that scrolls under the [Camera], and the overlay
// ([Scene.Overlay]), fixed in screen space for headers and cursors.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := folio.NewScene(1280, 800)
//	// ... build the page ...
//	folio.Run(scene, folio.RunConfig{Title: "Portfolio"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Scene graph
//
// Every visual element is a [Node]. Create nodes with [NewContainer],
// [NewBox], [NewText], [NewCircle] and [NewRing]. Name doubles as the
// element id used by [Scene.ScrollToSection]; Tag, Classes and Role are
// matched by [Selector].
//
//	about := folio.NewContainer("about")
//	scene.Root().AddChild(about)
//
// # Viewport effects
//
//   - [ScrollTracker] exposes scroll offset and direction, recomputed at
//     most once per frame.
//   - [ActiveSectionTracker] reports which named section crosses the
//     central band of the viewport.
//   - [Scene.Reveal] runs staggered entrance animations when a region
//     scrolls into view, once or continuously.
//   - [Scene.MountCursor] draws a dot and a spring-lagged ring that follow
//     the pointer and grow over interactive elements.
//
// All of them are built on [IntersectionObserver], [MutationObserver],
// reactive [Value] cells and [Motion], which animates opacity, offset and
// scale between [Variants] using tweens (via [gween]) or springs (via
// [harmonica]).
//
// Every effect registers listeners or observers on the scene and removes
// them in its Close method.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
package folio
