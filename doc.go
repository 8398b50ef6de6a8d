// Package shapes is a small retained-mode 2D shape renderer on top of the
// gogpu/wgpu hardware abstraction layer.
//
// # Overview
//
// A Context owns the GPU device, the window surface and one shared render
// pipeline. Shapes (rectangles, triangles and ellipses) are registered once
// on the Context's Manager and drawn every frame in registration order,
// later shapes over earlier ones, with straight-alpha blending.
//
// # Quick Start
//
//	win, err := window.New(window.Options{Title: "shapes", Width: 800, Height: 600})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer win.Destroy()
//
//	ctx, err := shapes.New(win)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	m := ctx.Manager()
//	m.Rectangle(shapes.White, shapes.Sz(1, 1), shapes.Pt(0, 0))
//	m.Ellipse(shapes.Green.WithAlpha(0.4), shapes.Sz(0.25, 0.5), shapes.Pt(0, 0))
//
//	win.Run(window.Handlers{
//	    OnResize: func(int, int) error { return ctx.Configure() },
//	    OnRedraw: ctx.Redraw,
//	})
//
// # Coordinate System
//
// Geometry is given in normalized device coordinates:
//   - (-1, -1) is the bottom-left corner of the surface, (1, 1) the top-right
//   - Rectangle sizes are full width and height, centered on the position
//   - Ellipse sizes are the two radii
//
// Shapes do not follow the window's aspect ratio.
//
// # Errors
//
// Device, surface and pipeline failures are returned as errors wrapping the
// package's sentinel errors. Invalid geometry, such as a non-positive size,
// is a programming error and panics.
//
// # Logging
//
// The package is silent by default. Use SetLogger to route its log/slog
// output.
package shapes
