//go:build !linux && !windows

package window

import "github.com/go-gl/glfw/v3.3/glfw"

const (
	nativeSupported = false
	x11Available    = false
)

func nativeHandles(*glfw.Window) (display, window uintptr) {
	return 0, 0
}
