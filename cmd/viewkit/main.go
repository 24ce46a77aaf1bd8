package main

import (
	"flag"
	"fmt"
	"os"

	"viewkit/internal/debug"
	"viewkit/internal/engineconfig"
	"viewkit/internal/env"
	"viewkit/internal/fonts"
	"viewkit/internal/graphics"
	"viewkit/internal/host"
	"viewkit/internal/host/memhost"
	"viewkit/internal/logger"
	"viewkit/internal/resource"
	"viewkit/internal/ui"
	"viewkit/internal/units"
	"viewkit/internal/view"
)

func main() {
	configPath := flag.String("config", engineconfig.EngineConfigPath, "engine config file")
	dump := flag.Bool("dump", false, "build the layout without a window and print the resolved geometry")
	flag.Parse()

	if err := env.Load(".env"); err != nil {
		fatal(err)
	}
	prefs, err := engineconfig.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	if prefs, err = engineconfig.ApplyEnv(prefs, os.Getenv); err != nil {
		fatal(err)
	}

	log := logger.New(prefs.LogFile)
	engine := ui.New(view.Env{
		Host:      memhost.New(),
		Units:     units.Density{Scale: prefs.Density},
		Resources: resource.Dir{Root: prefs.AssetsDir},
	}, log)
	if prefs.Stylesheet != "" {
		if err := engine.LoadCSS(prefs.Stylesheet); err != nil {
			fatal(err)
		}
	}
	if err := engine.LoadLayout(prefs.Layout); err != nil {
		fatal(err)
	}

	if *dump {
		for _, line := range ui.NewInspector().Dump(nil, engine.Root()) {
			fmt.Println(line)
		}
		return
	}
	run(prefs, engine, log)
}

func run(prefs engineconfig.Prefs, engine *ui.Engine, log *logger.Logger) {
	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowHitAreas = prefs.ShowHitAreas

	var renderer *graphics.Renderer
	var hovered *memhost.Node
	root := func() *memhost.Node {
		return engine.Root().View.Node().(*memhost.Node)
	}

	update := func() {
		hovered = graphics.HandleInput(root())
		var n host.Node
		if hovered != nil {
			n = hovered
		}
		engine.Hover(n)
		engine.Update()
	}
	draw := func() {
		if renderer == nil {
			renderer = newRenderer(prefs, log)
		}
		renderer.Draw(root(), 0, 0)
		dbg.Draw(root(), hovered)
	}
	graphics.Run(prefs.Window, update, draw)
	if renderer != nil {
		renderer.Unload()
	}
}

// newRenderer needs an open window, so it runs on the first frame.
func newRenderer(prefs engineconfig.Prefs, log *logger.Logger) *graphics.Renderer {
	r := graphics.NewRenderer()
	if prefs.Font == "" {
		return r
	}
	path, err := fonts.Find(fonts.Dir(prefs.AssetsDir), prefs.Font)
	if err == nil {
		err = r.LoadFont(path)
	}
	if err != nil {
		log.Logf("font %q: %v", prefs.Font, err)
	}
	return r
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "viewkit:", err)
	os.Exit(1)
}
