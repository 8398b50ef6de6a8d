// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shapes

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Context exposes its device so other gogpu renderers can draw with it.
var _ gpucontext.DeviceProvider = (*Context)(nil)

// Device returns the HAL device, or nil once closed. The Context owns it;
// callers must not destroy it.
func (c *Context) Device() gpucontext.Device {
	if c.closed || c.device == nil {
		return nil
	}
	return c.device
}

// Queue returns the HAL queue, or nil once closed.
func (c *Context) Queue() gpucontext.Queue {
	if c.closed || c.queue == nil {
		return nil
	}
	return c.queue
}

// Adapter returns the HAL adapter, or nil when the Context did not open the
// device itself.
func (c *Context) Adapter() gpucontext.Adapter {
	if c.closed || c.gpu == nil || c.gpu.adapter == nil {
		return nil
	}
	return c.gpu.adapter.Adapter
}

// AdapterInfo describes the adapter the Context opened. It reports
// AdapterTypeUnknown when the device was supplied by the caller.
func (c *Context) AdapterInfo() gpucontext.AdapterInfo {
	if c.gpu == nil || c.gpu.adapter == nil {
		return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
	}
	info := c.gpu.adapter.Info
	return gpucontext.AdapterInfo{Name: info.Name, Type: adapterType(info.DeviceType)}
}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}

// SurfaceFormat returns the format the surface was configured with.
func (c *Context) SurfaceFormat() gputypes.TextureFormat {
	if c.target == nil {
		return gputypes.TextureFormatUndefined
	}
	return c.target.format()
}

// HalDevice returns the underlying hal.Device for renderers that record
// their own commands.
func (c *Context) HalDevice() any {
	if c.closed {
		return nil
	}
	return c.device
}

// HalQueue returns the underlying hal.Queue.
func (c *Context) HalQueue() any {
	if c.closed {
		return nil
	}
	return c.queue
}
