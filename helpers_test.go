package shapes

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// readBuffer copies size bytes out of a noop buffer.
func readBuffer(t *testing.T, device hal.Device, buf hal.Buffer, size uint64) []byte {
	t.Helper()
	mapping, err := device.MapBuffer(buf, 0, size)
	if err != nil {
		t.Fatalf("MapBuffer failed: %v", err)
	}
	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(mapping.Ptr), size))
	if err := device.UnmapBuffer(buf); err != nil {
		t.Fatalf("UnmapBuffer failed: %v", err)
	}
	return out
}

// fakeWindow reports a fixed size and no native handles.
type fakeWindow struct {
	width, height int
}

func (w *fakeWindow) Size() (int, int)                  { return w.width, w.height }
func (w *fakeWindow) NativeHandles() (uintptr, uintptr) { return 0, 0 }

// textureTarget renders into an offscreen texture instead of a surface.
type textureTarget struct {
	device hal.Device

	tex  hal.Texture
	view hal.TextureView

	width, height uint32
	configures    int
	presents      int
	discards      int
	failAcquire   error
}

func (tt *textureTarget) format() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

func (tt *textureTarget) configure(width, height uint32) error {
	tt.destroy()
	tex, err := tt.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "test_target",
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create target texture: %w", err)
	}
	tt.tex = tex
	tt.width, tt.height = width, height
	tt.configures++
	return nil
}

func (tt *textureTarget) acquire() (hal.TextureView, error) {
	if tt.failAcquire != nil {
		return nil, tt.failAcquire
	}
	view, err := tt.device.CreateTextureView(tt.tex, &hal.TextureViewDescriptor{Label: "test_target_view"})
	if err != nil {
		return nil, err
	}
	tt.view = view
	return view, nil
}

func (tt *textureTarget) present() error {
	tt.releaseView()
	tt.presents++
	return nil
}

func (tt *textureTarget) discard() {
	tt.releaseView()
	tt.discards++
}

func (tt *textureTarget) releaseView() {
	if tt.view != nil {
		tt.device.DestroyTextureView(tt.view)
		tt.view = nil
	}
}

func (tt *textureTarget) destroy() {
	tt.releaseView()
	if tt.tex != nil {
		tt.device.DestroyTexture(tt.tex)
		tt.tex = nil
	}
}

// passRecorder wraps a render pass and records the commands issued on it.
type passRecorder struct {
	hal.RenderPassEncoder

	pipelines     int
	vertexBuffers []hal.Buffer
	bindGroups    []hal.BindGroup
	draws         []uint32
	ended         bool
}

func (r *passRecorder) SetPipeline(p hal.RenderPipeline) {
	r.pipelines++
	r.RenderPassEncoder.SetPipeline(p)
}

func (r *passRecorder) SetBindGroup(index uint32, group hal.BindGroup, offsets []uint32) {
	r.bindGroups = append(r.bindGroups, group)
	r.RenderPassEncoder.SetBindGroup(index, group, offsets)
}

func (r *passRecorder) SetVertexBuffer(slot uint32, buffer hal.Buffer, offset uint64) {
	r.vertexBuffers = append(r.vertexBuffers, buffer)
	r.RenderPassEncoder.SetVertexBuffer(slot, buffer, offset)
}

func (r *passRecorder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	r.draws = append(r.draws, vertexCount)
	r.RenderPassEncoder.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

func (r *passRecorder) End() {
	r.ended = true
	r.RenderPassEncoder.End()
}

// newTestContext builds a Context on the noop device rendering into a
// texture target. Each Redraw appends a recorder of its pass to the
// returned slice.
func newTestContext(t *testing.T, width, height int, opts ...Option) (*Context, *textureTarget, *fakeWindow, *[]*passRecorder) {
	t.Helper()
	device, queue, cleanup := createNoopDevice(t)

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	win := &fakeWindow{width: width, height: height}
	target := &textureTarget{device: device}
	c, err := newContext(win, device, queue, target, o)
	if err != nil {
		target.destroy()
		cleanup()
		if isNagaUnsupported(err) {
			t.Skipf("Skipping: naga limitation: %v", err)
		}
		t.Fatalf("newContext failed: %v", err)
	}

	var passes []*passRecorder
	c.wrapPass = func(rp hal.RenderPassEncoder) hal.RenderPassEncoder {
		rec := &passRecorder{RenderPassEncoder: rp}
		passes = append(passes, rec)
		return rec
	}

	t.Cleanup(func() {
		c.Close()
		target.destroy()
		cleanup()
	})
	return c, target, win, &passes
}
