package shapes

import "github.com/gogpu/gputypes"

// Option configures a Context during creation.
//
// Example:
//
//	ctx, err := shapes.New(win,
//	    shapes.WithClearColor(shapes.Black),
//	    shapes.WithPowerPreference(gputypes.PowerPreferenceLowPower),
//	)
type Option func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	backend         gputypes.Backend
	powerPreference gputypes.PowerPreference
	limits          gputypes.Limits
	clearColor      Color
	surfaceFormat   gputypes.TextureFormat
	transparent     bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		backend:         gputypes.BackendVulkan,
		powerPreference: gputypes.PowerPreferenceHighPerformance,
		limits:          gputypes.DefaultLimits(),
		clearColor:      White,
		surfaceFormat:   gputypes.TextureFormatUndefined, // Picked from surface capabilities
	}
}

// WithBackend selects the HAL backend. The backend must be registered,
// usually by a blank import of its package. Defaults to Vulkan.
func WithBackend(b gputypes.Backend) Option {
	return func(o *contextOptions) {
		o.backend = b
	}
}

// WithPowerPreference chooses between discrete and integrated adapters when
// both can present to the window. Defaults to high performance.
func WithPowerPreference(p gputypes.PowerPreference) Option {
	return func(o *contextOptions) {
		o.powerPreference = p
	}
}

// WithLimits sets the device limits requested when opening the adapter.
func WithLimits(l gputypes.Limits) Option {
	return func(o *contextOptions) {
		o.limits = l
	}
}

// WithClearColor sets the background every frame is cleared to.
// Defaults to opaque white.
func WithClearColor(c Color) Option {
	return func(o *contextOptions) {
		o.clearColor = c
	}
}

// WithSurfaceFormat requests a surface texture format. If the surface does
// not support it, the default choice is used instead.
func WithSurfaceFormat(f gputypes.TextureFormat) Option {
	return func(o *contextOptions) {
		o.surfaceFormat = f
	}
}

// WithTransparent asks for a surface that the compositor blends with what
// is behind the window, so translucent shapes and a translucent clear color
// show the desktop through. The window must have a transparent framebuffer.
// When the surface only supports opaque compositing the request is logged
// and ignored.
func WithTransparent(enabled bool) Option {
	return func(o *contextOptions) {
		o.transparent = enabled
	}
}
