package shapes

// Window is the windowing surface a Context renders into.
//
// Size reports the framebuffer size in pixels. It may be zero while the
// window is minimized.
//
// NativeHandles returns the platform handles the GPU surface is created
// from: on X11 the Display pointer and the Window id, on Wayland the
// wl_display and wl_surface pointers, on Windows the module instance and
// the HWND.
type Window interface {
	Size() (width, height int)
	NativeHandles() (display, window uintptr)
}
