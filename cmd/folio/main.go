// Folio opens the portfolio in a window. Settings come from FOLIO_*
// environment variables and an optional .env file in the working
// directory.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/phanxgames/folio"
	"github.com/phanxgames/folio/internal/config"
	"github.com/phanxgames/folio/internal/content"
	"github.com/phanxgames/folio/internal/page"
	"github.com/phanxgames/folio/internal/presets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		log.Fatal(err)
	}
	ps, err := presets.Load(cfg.PresetsFile)
	if err != nil {
		log.Fatal(err)
	}

	scene := folio.NewScene(float64(cfg.Width), float64(cfg.Height))
	scene.SetDebugMode(cfg.Debug)
	scene.ScreenshotDir = cfg.ScreenshotDir
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err := folio.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		scene.SetTestRunner(runner)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	touch := folio.ParseTouchMode(cfg.Touch)
	pg, err := page.Build(ctx, scene, c, ps, page.Options{Touch: touch, QRSize: cfg.QRSize})
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	if err := folio.Run(scene, folio.RunConfig{
		Title:              cfg.Title,
		Width:              cfg.Width,
		Height:             cfg.Height,
		ShowFPS:            cfg.ShowFPS,
		HideCursor:         pg.Cursor().Enabled(),
		ExitWhenScriptDone: cfg.ExitAfterScript,
	}); err != nil {
		log.Fatal(err)
	}
}
