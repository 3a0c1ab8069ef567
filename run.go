package folio

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// HideCursor hides the system pointer, for scenes that draw their own.
	HideCursor bool
	// ExitWhenScriptDone ends the loop once an attached TestRunner has run
	// every step and its screenshots are written.
	ExitWhenScriptDone bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	g.scene.Update()
	if g.cfg.ExitWhenScriptDone && g.scene.testRunner != nil &&
		g.scene.testRunner.Done() && g.scene.PendingScreenshots() == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the scene viewport in step with the window size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and drives the scene until the window closes.
// Live mouse, wheel and touch input are enabled for the scene.
func Run(scene *Scene, cfg RunConfig) error {
	if scene == nil {
		return errors.New("folio: Run needs a scene")
	}
	if cfg.Width <= 0 {
		cfg.Width = int(scene.camera.Viewport.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(scene.camera.Viewport.Height)
	}
	scene.liveInput = true
	if cfg.ShowFPS {
		scene.overlay.AddChild(NewFPSWidget())
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.HideCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	err := ebiten.RunGame(&game{scene: scene, cfg: cfg})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
