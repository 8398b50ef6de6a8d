package shapes

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Context owns the GPU device, the window surface, the shared shape pipeline
// and the shape Manager, and renders every registered shape each frame.
//
// A Context is not safe for concurrent use; create shapes and call Redraw
// from the thread that drives the window.
type Context struct {
	window Window
	opts   contextOptions

	gpu      *gpuDevice // nil when the device is supplied by the caller
	device   hal.Device
	queue    hal.Queue
	target   presentTarget
	pipeline *shapePipeline
	manager  *Manager

	width, height uint32
	closed        bool

	// wrapPass lets tests observe the commands recorded into the pass.
	wrapPass func(hal.RenderPassEncoder) hal.RenderPassEncoder
}

// New bootstraps the GPU for window: it creates an instance and surface,
// opens a device on a compatible adapter, configures the surface to the
// window size and builds the shared pipeline.
//
// Any failure releases what was created and returns the error.
func New(window Window, opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := openGPU(window, o)
	if err != nil {
		return nil, err
	}

	target, err := newSurfaceTarget(g, o.surfaceFormat, o.transparent)
	if err != nil {
		g.destroy()
		return nil, err
	}

	c, err := newContext(window, g.device, g.queue, target, o)
	if err != nil {
		target.destroy()
		g.destroy()
		return nil, err
	}
	c.gpu = g
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(window Window, opts ...Option) *Context {
	c, err := New(window, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// newContext wires a Context onto an open device and a present target.
// The caller keeps ownership of device and target on failure.
func newContext(window Window, device hal.Device, queue hal.Queue, target presentTarget, o contextOptions) (*Context, error) {
	c := &Context{
		window: window,
		opts:   o,
		device: device,
		queue:  queue,
		target: target,
	}
	if err := c.Configure(); err != nil {
		return nil, err
	}

	pipeline, err := newShapePipeline(device, target.format())
	if err != nil {
		return nil, fmt.Errorf("create pipeline: %w", err)
	}
	c.pipeline = pipeline
	c.manager = newManager(device, queue, pipeline.colorLayout)
	return c, nil
}

// Configure reads the window size and reconfigures the surface to it.
// Call it whenever the window may have been resized. Zero or negative
// dimensions are raised to 1.
func (c *Context) Configure() error {
	if c.closed {
		return ErrClosed
	}
	w, h := c.window.Size()
	width, height := uint32(max(1, w)), uint32(max(1, h)) //nolint:gosec // clamped to >= 1
	if err := c.target.configure(width, height); err != nil {
		return err
	}
	c.width, c.height = width, height
	slogger().Info("surface configured", "width", width, "height", height, "format", c.target.format())
	return nil
}

// Redraw renders one frame: it clears to the background color, draws every
// registered shape in registration order with the shared pipeline, waits
// for the GPU and presents. Later shapes are drawn over earlier ones.
func (c *Context) Redraw() error {
	if c.closed {
		return ErrClosed
	}

	view, err := c.target.acquire()
	if err != nil {
		return fmt.Errorf("acquire surface texture: %w", err)
	}
	if err := c.renderFrame(view); err != nil {
		c.target.discard()
		return err
	}
	if err := c.target.present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// renderFrame encodes one render pass into view, submits it and waits for
// completion.
func (c *Context) renderFrame(view hal.TextureView) error {
	encoder, err := c.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "shape_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("shape_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	bg := c.clearValue()
	var rp hal.RenderPassEncoder = encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "shape_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: bg,
		}},
	})
	if c.wrapPass != nil {
		rp = c.wrapPass(rp)
	}

	rp.SetPipeline(c.pipeline.pipeline)
	draws := c.manager.drawAll(rp)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer c.device.FreeCommandBuffer(cmdBuf)

	index, err := c.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if err := c.device.WaitIdle(); err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}

	slogger().Debug("frame submitted", "submission", index, "draws", draws, "width", c.width, "height", c.height)
	return nil
}

// clearValue converts the background for the render pass. A transparent
// surface is composited premultiplied, so the clear color is premultiplied
// to match what the blend state writes.
func (c *Context) clearValue() gputypes.Color {
	bg := c.opts.clearColor
	if c.opts.transparent {
		bg = Color{R: bg.R * bg.A, G: bg.G * bg.A, B: bg.B * bg.A, A: bg.A}
	}
	return gputypes.Color{R: float64(bg.R), G: float64(bg.G), B: float64(bg.B), A: float64(bg.A)}
}

// Manager returns the shape registry. Shapes registered on it are drawn by
// every subsequent Redraw.
func (c *Context) Manager() *Manager { return c.manager }

// Size returns the current surface size in pixels.
func (c *Context) Size() (width, height uint32) { return c.width, c.height }

// ClearColor returns the background color.
func (c *Context) ClearColor() Color { return c.opts.clearColor }

// SetClearColor changes the background color from the next frame on.
func (c *Context) SetClearColor(col Color) { c.opts.clearColor = col }

// Close releases shapes, the pipeline, the surface configuration and, when
// the Context created them, the device and instance. Close is idempotent.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.manager != nil {
		c.manager.Close()
	}
	if c.pipeline != nil {
		c.pipeline.destroy()
		c.pipeline = nil
	}
	if c.target != nil {
		c.target.destroy()
	}
	if c.gpu != nil {
		c.gpu.destroy()
		c.gpu = nil
	}
}
