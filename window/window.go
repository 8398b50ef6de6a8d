// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window opens a desktop window with GLFW and drives its event loop
// for a shapes.Context.
//
// GLFW must be used from the main OS thread. Callers lock it with
// runtime.LockOSThread in an init function of package main.
package window

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	// ErrUnsupportedPlatform is returned on platforms where no GPU surface
	// handles can be obtained from GLFW.
	ErrUnsupportedPlatform = errors.New("window: platform not supported")

	// ErrX11Unavailable is returned when ForceX11 is set on a build that
	// uses the Wayland GLFW backend.
	ErrX11Unavailable = errors.New("window: X11 not available in this build")
)

// Options configures a new Window.
type Options struct {
	Title         string
	Width, Height int

	// Resizable allows the user to resize the window.
	Resizable bool

	// Transparent requests a framebuffer with an alpha channel. Pair it with
	// shapes.WithTransparent so the surface is composited with the desktop.
	Transparent bool

	// Icon holds candidate icon images, typically from LoadIcon.
	Icon []image.Image

	// ForceX11 requires the X11 windowing backend on Linux.
	ForceX11 bool
}

// Window is a GLFW window without a client graphics API; the GPU surface is
// created from its native handles.
type Window struct {
	glw *glfw.Window
}

// New initializes GLFW and opens a window.
func New(opts Options) (*Window, error) {
	if !nativeSupported {
		return nil, ErrUnsupportedPlatform
	}
	if opts.ForceX11 && !x11Available {
		return nil, ErrX11Unavailable
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("window: invalid size %dx%d", opts.Width, opts.Height)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))
	glfw.WindowHint(glfw.TransparentFramebuffer, glfwBool(opts.Transparent))

	glw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: create: %w", err)
	}
	if len(opts.Icon) > 0 {
		glw.SetIcon(opts.Icon)
	}
	return &Window{glw: glw}, nil
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (width, height int) {
	return w.glw.GetFramebufferSize()
}

// NativeHandles returns the platform display and window handles.
func (w *Window) NativeHandles() (display, window uintptr) {
	return nativeHandles(w.glw)
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.glw.SetTitle(title)
}

// Close asks the event loop to stop after the current iteration.
func (w *Window) Close() {
	w.glw.SetShouldClose(true)
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
	glfw.Terminate()
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
