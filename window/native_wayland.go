//go:build linux && wayland

package window

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	nativeSupported = true
	x11Available    = false
)

// nativeHandles returns the wl_display and wl_surface pointers.
func nativeHandles(w *glfw.Window) (display, window uintptr) {
	return uintptr(unsafe.Pointer(glfw.GetWaylandDisplay())), uintptr(unsafe.Pointer(w.GetWaylandWindow()))
}
