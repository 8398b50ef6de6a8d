// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shapes

import (
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// presentTarget is what a frame is rendered into and shown from.
//
// acquire returns a view of the next frame's texture. Exactly one of
// present or discard must follow a successful acquire.
type presentTarget interface {
	format() gputypes.TextureFormat
	configure(width, height uint32) error
	acquire() (hal.TextureView, error)
	present() error
	discard()
	destroy()
}

// surfaceTarget presents frames to a window surface.
type surfaceTarget struct {
	device  hal.Device
	queue   hal.Queue
	surface hal.Surface

	texFormat gputypes.TextureFormat
	alphaMode hal.CompositeAlphaMode

	configured bool
	texture    hal.SurfaceTexture
	view       hal.TextureView
}

// newSurfaceTarget negotiates a texture format and alpha mode with the
// adapter. The requested format is used if supported; otherwise BGRA8Unorm,
// then the first supported format.
func newSurfaceTarget(g *gpuDevice, requested gputypes.TextureFormat, transparent bool) (*surfaceTarget, error) {
	caps := g.adapter.Adapter.SurfaceCapabilities(g.surface)
	if caps == nil || len(caps.Formats) == 0 {
		return nil, ErrSurfaceUnsupported
	}

	format := caps.Formats[0]
	switch {
	case requested != gputypes.TextureFormatUndefined && slices.Contains(caps.Formats, requested):
		format = requested
	case slices.Contains(caps.Formats, gputypes.TextureFormatBGRA8Unorm):
		format = gputypes.TextureFormatBGRA8Unorm
	}
	if requested != gputypes.TextureFormatUndefined && format != requested {
		slogger().Warn("requested surface format unsupported", "requested", requested, "using", format)
	}

	alphaMode := chooseAlphaMode(caps.AlphaModes, transparent)

	return &surfaceTarget{
		device:    g.device,
		queue:     g.queue,
		surface:   g.surface,
		texFormat: format,
		alphaMode: alphaMode,
	}, nil
}

// transparentAlphaModes are the modes that let the compositor see through
// the surface, best first. Frames are premultiplied by the alpha-over blend,
// so Premultiplied is exact.
var transparentAlphaModes = []hal.CompositeAlphaMode{
	hal.CompositeAlphaModePremultiplied,
	hal.CompositeAlphaModeInherit,
	hal.CompositeAlphaModeUnpremultiplied,
}

// chooseAlphaMode picks the composite alpha mode from the supported list.
// Opaque is used unless transparent is set and a see-through mode exists;
// an empty list means the surface reported nothing and Opaque is assumed.
func chooseAlphaMode(supported []hal.CompositeAlphaMode, transparent bool) hal.CompositeAlphaMode {
	if transparent {
		for _, m := range transparentAlphaModes {
			if slices.Contains(supported, m) {
				return m
			}
		}
		slogger().Warn("surface cannot composite with transparency, using opaque", "supported", supported)
	}
	if len(supported) == 0 || slices.Contains(supported, hal.CompositeAlphaModeOpaque) {
		return hal.CompositeAlphaModeOpaque
	}
	return supported[0]
}

func (s *surfaceTarget) format() gputypes.TextureFormat { return s.texFormat }

func (s *surfaceTarget) configure(width, height uint32) error {
	err := s.surface.Configure(s.device, &hal.SurfaceConfiguration{
		Width:       width,
		Height:      height,
		Format:      s.texFormat,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: hal.PresentModeFifo,
		AlphaMode:   s.alphaMode,
	})
	if err != nil {
		return fmt.Errorf("configure surface %dx%d: %w", width, height, err)
	}
	s.configured = true
	return nil
}

func (s *surfaceTarget) acquire() (hal.TextureView, error) {
	acquired, err := s.surface.AcquireTexture(nil)
	if err != nil {
		return nil, err
	}
	if acquired.Suboptimal {
		slogger().Debug("surface texture suboptimal")
	}

	view, err := s.device.CreateTextureView(acquired.Texture, &hal.TextureViewDescriptor{
		Label: "shape_surface_view",
	})
	if err != nil {
		s.surface.DiscardTexture(acquired.Texture)
		return nil, fmt.Errorf("create surface view: %w", err)
	}
	s.texture = acquired.Texture
	s.view = view
	return view, nil
}

func (s *surfaceTarget) present() error {
	defer s.releaseView()
	texture := s.texture
	s.texture = nil
	return s.queue.Present(s.surface, texture, nil)
}

func (s *surfaceTarget) discard() {
	s.releaseView()
	if s.texture != nil {
		s.surface.DiscardTexture(s.texture)
		s.texture = nil
	}
}

func (s *surfaceTarget) releaseView() {
	if s.view != nil {
		s.device.DestroyTextureView(s.view)
		s.view = nil
	}
}

// destroy unconfigures the surface. The surface itself belongs to the
// gpuDevice chain.
func (s *surfaceTarget) destroy() {
	s.discard()
	if s.configured {
		s.surface.Unconfigure(s.device)
		s.configured = false
	}
}
