package frost

import (
	"errors"
	"sync"
)

// ErrFallbackToCPU indicates the GPU accelerator cannot handle this operation.
// The caller should transparently fall back to CPU compositing.
var ErrFallbackToCPU = errors.New("frost: falling back to CPU compositing")

// AcceleratedOp describes operation types for GPU capability checking.
type AcceleratedOp uint32

const (
	// AccelBlur represents Gaussian blur of a raster buffer.
	AccelBlur AcceleratedOp = 1 << iota

	// AccelGradientMask represents directional alpha-mask evaluation.
	AccelGradientMask

	// AccelEffectGraph represents composed effect graphs (blur combined with
	// mask and blend stages). Controllers use this capability to choose the
	// effect-graph strategy at construction time.
	AccelEffectGraph
)

// GPURenderTarget provides pixel buffer access for GPU output.
// The Data slice is straight-alpha RGBA, 4 bytes per pixel, laid out row by
// row with the given Stride, matching the Pixmap convention. Accelerators
// that need premultiplied input convert on upload.
type GPURenderTarget struct {
	Data          []uint8
	Width, Height int
	Stride        int // bytes per row
}

// GPUAccelerator is an optional GPU acceleration provider.
//
// When registered via RegisterAccelerator, effect-graph evaluation tries GPU
// acceleration first. If the accelerator returns ErrFallbackToCPU or any
// error, evaluation transparently falls back to the CPU.
//
// Implementations should be provided by GPU backend packages (frost/gpu).
// Users opt in to GPU acceleration via blank import:
//
//	import _ "github.com/gogpu/frost/gpu" // enables GPU acceleration
type GPUAccelerator interface {
	// Name returns the accelerator name (e.g., "wgpu", "vulkan").
	Name() string

	// Init initializes GPU resources. Called once during registration.
	Init() error

	// Close releases GPU resources.
	Close()

	// CanAccelerate reports whether the accelerator supports the given operation.
	// This is a fast check used to skip GPU entirely for unsupported operations.
	CanAccelerate(op AcceleratedOp) bool

	// ApplyEffect evaluates the effect over src and writes the result to dst.
	// dst and src have identical dimensions and may share backing memory only
	// if the accelerator copies internally.
	// Returns ErrFallbackToCPU if the graph cannot be GPU-evaluated.
	ApplyEffect(dst, src GPURenderTarget, e Effect) error
}

// DeviceProviderAware is an optional interface for accelerators that can share
// GPU resources with an external provider (e.g., gogpu window).
// When SetDeviceProvider is called, the accelerator reuses the provided GPU
// device instead of creating its own.
type DeviceProviderAware interface {
	SetDeviceProvider(provider any) error
}

// EffectReapplyAware is an optional interface for accelerators on which a
// retained effect is not re-evaluated after a transform-only property change.
// The node controller queries it once at construction and, when it reports
// true, reattaches the composed effect every frame even if blur parameters
// did not change.
type EffectReapplyAware interface {
	RequiresEffectReapply() bool
}

var (
	accelMu sync.RWMutex
	accel   GPUAccelerator
)

// RegisterAccelerator registers a GPU accelerator for optional GPU evaluation.
//
// Only one accelerator can be registered. Subsequent calls replace the previous one.
// The accelerator's Init() method is called during registration.
// If Init() fails, the accelerator is not registered and the error is returned.
//
// Typical usage via blank import in GPU backend packages:
//
//	func init() {
//	    frost.RegisterAccelerator(NewWGPUAccelerator())
//	}
func RegisterAccelerator(a GPUAccelerator) error {
	if a == nil {
		return errors.New("frost: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	propagateLogger(a, Logger())
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	return nil
}

// UnregisterAccelerator removes the registered accelerator, if any, and
// closes it. Controllers created while it was registered keep working; their
// effect evaluation falls back to the CPU.
func UnregisterAccelerator() {
	accelMu.Lock()
	old := accel
	accel = nil
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
}

// HasAccelerator reports whether a GPU accelerator is registered.
func HasAccelerator() bool {
	return Accelerator() != nil
}

// Accelerator returns the currently registered GPU accelerator, or nil if none.
func Accelerator() GPUAccelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}

// SetAcceleratorDeviceProvider passes a device provider to the registered
// accelerator, enabling GPU device sharing. If no accelerator is registered
// or it doesn't support device sharing, this is a no-op.
//
// The provider should implement HalDevice() any and HalQueue() any methods
// that return wgpu/hal types.
func SetAcceleratorDeviceProvider(provider any) error {
	a := Accelerator()
	if a == nil {
		return nil
	}
	if dpa, ok := a.(DeviceProviderAware); ok {
		return dpa.SetDeviceProvider(provider)
	}
	return nil
}
