//go:build !nogpu

// Package gpu registers the GPU blur accelerator for hardware-accelerated
// effect evaluation.
//
// Import this package to run blur and fade-mask effects on the GPU via
// wgpu/hal compute shaders. Controllers created by frost.New switch to the
// effect-graph strategy when the accelerator registers successfully.
//
// If GPU initialization fails (no Vulkan available), the registration is
// skipped with a warning and controllers stay on the CPU snapshot strategy.
//
// Usage:
//
//	import _ "github.com/gogpu/frost/gpu" // enable GPU blur acceleration
package gpu

import (
	"github.com/gogpu/frost"
	gpuimpl "github.com/gogpu/frost/internal/gpu"
)

func init() {
	accel := &gpuimpl.BlurAccelerator{}
	if err := frost.RegisterAccelerator(accel); err != nil {
		frost.Logger().Warn("GPU accelerator not available", "err", err)
	}
}

// SetDeviceProvider configures the GPU accelerator to use a shared GPU device
// from an external provider (e.g., gogpu). This avoids creating a separate
// GPU instance and enables efficient device sharing.
//
// The provider should be a gpucontext.DeviceProvider that also implements
// gpucontext.HalProvider for direct HAL access.
//
// Call this after importing the package and before drawing operations.
func SetDeviceProvider(provider any) error {
	return frost.SetAcceleratorDeviceProvider(provider)
}
