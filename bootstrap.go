// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shapes

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// gpuDevice is the instance-to-queue chain opened for one window.
type gpuDevice struct {
	instance hal.Instance
	surface  hal.Surface
	adapter  *hal.ExposedAdapter
	device   hal.Device
	queue    hal.Queue
}

// openGPU creates an instance of the selected backend, a surface for the
// window and a device on the best adapter that can present to it.
// On failure everything created so far is released.
func openGPU(window Window, o contextOptions) (*gpuDevice, error) {
	backend, ok := hal.GetBackend(o.backend)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoBackend, o.backend)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	g := &gpuDevice{instance: instance}

	display, handle := window.NativeHandles()
	surface, err := instance.CreateSurface(display, handle)
	if err != nil {
		g.destroy()
		return nil, fmt.Errorf("create surface: %w", err)
	}
	g.surface = surface

	adapters := instance.EnumerateAdapters(surface)
	selected := selectAdapter(adapters, o.powerPreference)
	if selected == nil {
		g.destroy()
		return nil, ErrNoAdapter
	}
	g.adapter = selected

	openDev, err := selected.Adapter.Open(gputypes.Features(0), o.limits)
	if err != nil {
		g.destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}
	g.device = openDev.Device
	g.queue = openDev.Queue

	slogger().Info("adapter selected",
		"name", selected.Info.Name,
		"type", selected.Info.DeviceType,
		"backend", o.backend)
	return g, nil
}

// selectAdapter picks the adapter matching the power preference, falling
// back to any hardware adapter and then to the first one listed.
func selectAdapter(adapters []hal.ExposedAdapter, pref gputypes.PowerPreference) *hal.ExposedAdapter {
	if len(adapters) == 0 {
		return nil
	}

	preferred, other := gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU
	if pref == gputypes.PowerPreferenceLowPower {
		preferred, other = other, preferred
	}
	for _, want := range []gputypes.DeviceType{preferred, other} {
		for i := range adapters {
			if adapters[i].Info.DeviceType == want {
				return &adapters[i]
			}
		}
	}

	slogger().Warn("no hardware adapter found, using fallback",
		"name", adapters[0].Info.Name,
		"type", adapters[0].Info.DeviceType)
	return &adapters[0]
}

// destroy releases the chain in reverse creation order.
func (g *gpuDevice) destroy() {
	if g.device != nil {
		g.device.Destroy()
		g.device = nil
		g.queue = nil
	}
	if g.surface != nil {
		g.surface.Destroy()
		g.surface = nil
	}
	if g.instance != nil {
		g.instance.Destroy()
		g.instance = nil
	}
	g.adapter = nil
}
