//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the integration point between frost and GPU frameworks
// like gogpu. The host application (e.g., gogpu.App) implements DeviceHandle
// and passes it to frost via gpu.SetDeviceProvider, allowing the blur
// accelerator to reuse the shared GPU device instead of creating its own.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// frost-specific name for the interface while maintaining full compatibility
// with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only hosts where no GPU is available; the accelerator
// rejects it and keeps its own device.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// halProvider is the device-sharing contract: a provider whose concrete
// type exposes the underlying wgpu/hal device and queue.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// halFromProvider extracts the hal device and queue from a shared provider.
// A DeviceHandle that reports no device (such as NullDeviceHandle) is
// rejected before the HAL assertion, so CPU-only hosts get a clear error.
func halFromProvider(provider any) (hal.Device, hal.Queue, error) {
	if dh, ok := provider.(DeviceHandle); ok && dh.Device() == nil {
		return nil, nil, fmt.Errorf("gpu-blur: provider has no GPU device")
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, fmt.Errorf("gpu-blur: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("gpu-blur: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("gpu-blur: provider HalQueue is not hal.Queue")
	}
	return device, queue, nil
}
