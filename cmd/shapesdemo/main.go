// Command shapesdemo opens a window and draws a scene of shapes with the
// shapes renderer.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/scene"
	"github.com/gogpu/shapes/window"
)

func init() {
	// GLFW must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		sceneFile   = flag.String("scene", "", "TOML scene file (default: built-in demo scene)")
		width       = flag.Int("width", 800, "window width")
		height      = flag.Int("height", 600, "window height")
		title       = flag.String("title", "shapes", "window title")
		iconFile    = flag.String("icon", "", "window icon (PNG or WebP)")
		forceX11    = flag.Bool("force-x11", false, "require the X11 windowing backend on Linux")
		transparent = flag.Bool("transparent", true, "let translucent background and shapes show the desktop")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		shapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	sc := scene.Default()
	if *sceneFile != "" {
		var err error
		if sc, err = scene.LoadFile(*sceneFile); err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	}
	background, err := sc.BackgroundColor()
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	opts := window.Options{
		Title:       *title,
		Width:       *width,
		Height:      *height,
		Resizable:   true,
		Transparent: *transparent,
		ForceX11:    *forceX11,
	}
	if *iconFile != "" {
		if opts.Icon, err = window.LoadIconFile(*iconFile); err != nil {
			log.Fatalf("Failed to load icon: %v", err)
		}
	}

	win, err := window.New(opts)
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}
	defer win.Destroy()

	ctx, err := shapes.New(win,
		shapes.WithClearColor(background),
		shapes.WithTransparent(*transparent),
	)
	if err != nil {
		log.Fatalf("Failed to initialize GPU: %v", err)
	}
	defer ctx.Close()

	// Shapes are registered once; every frame redraws the same set.
	if err := sc.Apply(ctx.Manager()); err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	err = win.Run(window.Handlers{
		OnResize: func(int, int) error { return ctx.Configure() },
		OnRedraw: ctx.Redraw,
	})
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}
