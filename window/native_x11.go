//go:build linux && !wayland

package window

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	nativeSupported = true
	x11Available    = true
)

// nativeHandles returns the X11 Display pointer and Window id.
func nativeHandles(w *glfw.Window) (display, window uintptr) {
	return uintptr(unsafe.Pointer(glfw.GetX11Display())), uintptr(w.GetX11Window())
}
