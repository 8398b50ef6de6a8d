package shapes

import "errors"

// Sentinel errors for the shapes package.
var (
	// ErrNoBackend is returned when the requested HAL backend is not
	// compiled in or not registered.
	ErrNoBackend = errors.New("shapes: backend not available")

	// ErrNoAdapter is returned when no adapter can present to the surface.
	ErrNoAdapter = errors.New("shapes: no compatible adapter")

	// ErrSurfaceUnsupported is returned when the surface exposes no usable
	// texture format for the selected adapter.
	ErrSurfaceUnsupported = errors.New("shapes: surface not supported by adapter")

	// ErrShaderCompile is returned when the built-in WGSL program fails to compile.
	ErrShaderCompile = errors.New("shapes: shader compilation failed")

	// ErrClosed is returned by operations on a closed Context.
	ErrClosed = errors.New("shapes: context closed")
)

