package window

import "github.com/go-gl/glfw/v3.3/glfw"

// Handlers receive window events during Run. Nil handlers are skipped.
// A handler error stops the loop and is returned by Run.
type Handlers struct {
	// OnResize is called when the framebuffer size changes.
	OnResize func(width, height int) error

	// OnRedraw is called once per loop iteration and when the window
	// system asks for a refresh.
	OnRedraw func() error

	// OnKey is called for every key event. Escape closes the window
	// regardless of OnKey.
	OnKey func(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)

	// OnClose is called once when the window is asked to close.
	OnClose func()
}

// Run processes events and redraws until the window is closed or a handler
// fails. Presentation is paced by the surface, so the loop does not sleep.
func (w *Window) Run(h Handlers) error {
	var loopErr error
	fail := func(err error) {
		if err != nil && loopErr == nil {
			loopErr = err
			w.glw.SetShouldClose(true)
		}
	}

	w.glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if h.OnResize != nil {
			fail(h.OnResize(width, height))
		}
	})
	w.glw.SetRefreshCallback(func(*glfw.Window) {
		if h.OnRedraw != nil {
			fail(h.OnRedraw())
		}
	})
	w.glw.SetKeyCallback(func(gw *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.SetShouldClose(true)
		}
		if h.OnKey != nil {
			h.OnKey(key, action, mods)
		}
	})
	defer func() {
		w.glw.SetFramebufferSizeCallback(nil)
		w.glw.SetRefreshCallback(nil)
		w.glw.SetKeyCallback(nil)
	}()

	for !w.glw.ShouldClose() {
		glfw.PollEvents()
		if w.glw.ShouldClose() {
			break
		}
		if h.OnRedraw != nil {
			fail(h.OnRedraw())
		}
	}

	if h.OnClose != nil {
		h.OnClose()
	}
	return loopErr
}
