//go:build windows

package window

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/sys/windows"
)

const (
	nativeSupported = true
	x11Available    = false
)

// nativeHandles returns the module instance and the HWND.
func nativeHandles(w *glfw.Window) (display, window uintptr) {
	var module windows.Handle
	hwnd := uintptr(unsafe.Pointer(w.GetWin32Window()))
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		return 0, hwnd
	}
	return uintptr(module), hwnd
}
