//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unsafe"

	"github.com/gogpu/frost"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// BlurAccelerator evaluates frost effect graphs with wgpu/hal compute
// shaders. It implements the frost.GPUAccelerator interface.
//
// A blur dispatch runs the separable Gaussian as two compute passes
// (horizontal then vertical) ping-ponging between a pair of storage
// buffers; a masked blur appends a destination-in mask pass. The result is
// read back into the caller's buffer, so the accelerator composes with the
// CPU raster pipeline without the host managing GPU memory.
type BlurAccelerator struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	blurShader     hal.ShaderModule
	blurBindLayout hal.BindGroupLayout
	blurPipeLayout hal.PipelineLayout
	blurPipeline   hal.ComputePipeline

	maskShader     hal.ShaderModule
	maskBindLayout hal.BindGroupLayout
	maskPipeLayout hal.PipelineLayout
	maskPipeline   hal.ComputePipeline

	gpuReady       bool
	externalDevice bool // true when using shared device (don't destroy on Close)
}

// Interface compliance checks.
var _ frost.GPUAccelerator = (*BlurAccelerator)(nil)
var _ frost.DeviceProviderAware = (*BlurAccelerator)(nil)
var _ frost.EffectReapplyAware = (*BlurAccelerator)(nil)

// blurParams configures one blur pass.
// Must match BlurParams in blur.wgsl.
type blurParams struct {
	Width    uint32
	Height   uint32
	Axis     uint32 // 0 = horizontal, 1 = vertical
	Padding1 uint32 // Padding for alignment
	Radius   float32
	Padding2 float32 // Padding for alignment
	Padding3 float32 // Padding for alignment
	Padding4 float32 // Padding for alignment
}

// maskParams configures the destination-in mask pass.
// Must match MaskParams in mask.wgsl.
type maskParams struct {
	Width    uint32
	Height   uint32
	Padding1 uint32 // Padding for alignment
	Padding2 uint32 // Padding for alignment
}

// computePass pairs a pipeline with its bindings for one encoder pass.
type computePass struct {
	pipeline hal.ComputePipeline
	group    hal.BindGroup
}

func (a *BlurAccelerator) Name() string { return "wgpu-blur" }

func (a *BlurAccelerator) CanAccelerate(op frost.AcceleratedOp) bool {
	return op&(frost.AccelBlur|frost.AccelGradientMask|frost.AccelEffectGraph) != 0
}

// Init implements frost.GPUAccelerator. An error means no usable GPU; the
// registry skips registration and controllers stay on the snapshot
// strategy.
func (a *BlurAccelerator) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.initGPU(); err != nil {
		a.releaseLocked()
		return err
	}
	return nil
}

func (a *BlurAccelerator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.releaseLocked()
}

// releaseLocked destroys pipelines and any owned device resources.
func (a *BlurAccelerator) releaseLocked() {
	a.destroyPipelines()
	if !a.externalDevice {
		if a.device != nil {
			a.device.Destroy()
			a.device = nil
		}
		if a.instance != nil {
			a.instance.Destroy()
			a.instance = nil
		}
	} else {
		// Don't destroy shared resources — we don't own them.
		a.device = nil
		a.instance = nil
	}
	a.queue = nil
	a.gpuReady = false
	a.externalDevice = false
}

// SetLogger receives the logger propagated from frost.SetLogger.
func (a *BlurAccelerator) SetLogger(l *slog.Logger) { setLogger(l) }

// RequiresEffectReapply implements frost.EffectReapplyAware. Every dispatch
// re-evaluates the effect from the submitted pixels, so a retained result
// cannot go stale and no per-frame reapply is needed.
func (a *BlurAccelerator) RequiresEffectReapply() bool { return false }

// SetDeviceProvider switches the accelerator to a shared GPU device from an
// external provider (e.g., gogpu). Pipelines are recreated on the shared
// device; the previously owned device, if any, is destroyed.
func (a *BlurAccelerator) SetDeviceProvider(provider any) error {
	device, queue, err := halFromProvider(provider)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.destroyPipelines()
	if !a.externalDevice && a.device != nil {
		a.device.Destroy()
	}
	if a.instance != nil {
		a.instance.Destroy()
		a.instance = nil
	}

	a.device = device
	a.queue = queue
	a.externalDevice = true

	if err := a.createPipelines(); err != nil {
		a.gpuReady = false
		return fmt.Errorf("gpu-blur: create pipelines with shared device: %w", err)
	}
	a.gpuReady = true
	slogger().Debug("gpu-blur: switched to shared GPU device")
	return nil
}

// ApplyEffect implements frost.GPUAccelerator. It runs plain blurs and the
// composed blur+fade-mask graph; any other graph, and any buffer the
// compute path cannot address, falls back to the CPU evaluator.
func (a *BlurAccelerator) ApplyEffect(dst, src frost.GPURenderTarget, e frost.Effect) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.gpuReady {
		return frost.ErrFallbackToCPU
	}
	if src.Width <= 0 || src.Height <= 0 ||
		dst.Width != src.Width || dst.Height != src.Height {
		return frost.ErrFallbackToCPU
	}
	if src.Stride != src.Width*4 || dst.Stride != dst.Width*4 {
		// Row-padded buffers would need per-row repacking.
		return frost.ErrFallbackToCPU
	}

	switch e := e.(type) {
	case *frost.BlurEffect:
		return a.dispatch(dst, src, e.RadiusX, e.RadiusY, nil)
	case *frost.BlendEffect:
		blur, shader, ok := maskedBlurGraph(e)
		if !ok {
			return frost.ErrFallbackToCPU
		}
		mask := rasterizeMask(shader.Brush, src.Width, src.Height)
		return a.dispatch(dst, src, blur.RadiusX, blur.RadiusY, mask)
	default:
		return frost.ErrFallbackToCPU
	}
}

// maskedBlurGraph destructures the one composed graph the GPU runs: a blur
// masked by a fade gradient, combined destination-in.
func maskedBlurGraph(e *frost.BlendEffect) (*frost.BlurEffect, *frost.ShaderEffect, bool) {
	if e.Mode != frost.BlendDestinationIn {
		return nil, nil, false
	}
	blur, ok := e.Dst.(*frost.BlurEffect)
	if !ok {
		return nil, nil, false
	}
	shader, ok := e.Src.(*frost.ShaderEffect)
	if !ok || shader.Brush == nil {
		return nil, nil, false
	}
	return blur, shader, true
}

// rasterizeMask evaluates the mask brush at pixel centers into an RGBA8
// buffer for upload. Only the alpha channel participates in the mask pass,
// but the full color keeps the buffer layout uniform with the pixel data.
func rasterizeMask(b frost.Brush, width, height int) []byte {
	out := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := b.ColorAt(float64(x)+0.5, float64(y)+0.5)
			i := (y*width + x) * 4
			out[i+0] = colorByte(c.R)
			out[i+1] = colorByte(c.G)
			out[i+2] = colorByte(c.B)
			out[i+3] = colorByte(c.A)
		}
	}
	return out
}

func colorByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// dispatch uploads the source pixels, runs the blur passes (and the mask
// pass when mask is non-nil), and reads the result back into dst.
func (a *BlurAccelerator) dispatch(dst, src frost.GPURenderTarget, radiusX, radiusY float64, mask []byte) error {
	w, h := uint32(src.Width), uint32(src.Height) //nolint:gosec // dimensions always fit uint32
	pixelCount := src.Width * src.Height
	pixelBufSize := uint64(pixelCount * 4) //nolint:gosec // non-negative

	pixelsA, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "frost_pixels_a", Size: pixelBufSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create pixel buffer: %w", err)
	}
	defer a.device.DestroyBuffer(pixelsA)

	pixelsB, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "frost_pixels_b", Size: pixelBufSize,
		Usage: gputypes.BufferUsageStorage,
	})
	if err != nil {
		return fmt.Errorf("create intermediate buffer: %w", err)
	}
	defer a.device.DestroyBuffer(pixelsB)

	staging, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "frost_staging", Size: pixelBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer a.device.DestroyBuffer(staging)

	a.queue.WriteBuffer(pixelsA, 0, packPixels(src.Data, pixelCount))

	var maskBuf hal.Buffer
	if mask != nil {
		maskBuf, err = a.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "frost_mask", Size: pixelBufSize,
			Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create mask buffer: %w", err)
		}
		defer a.device.DestroyBuffer(maskBuf)
		a.queue.WriteBuffer(maskBuf, 0, packPixels(mask, pixelCount))
	}

	passes, uniforms, err := a.createPassBindings(w, h, radiusX, radiusY, pixelsA, pixelsB, maskBuf, pixelBufSize)
	if err != nil {
		a.cleanupBindings(uniforms, passes)
		return err
	}
	defer a.cleanupBindings(uniforms, passes)

	if err := a.encodePasses(passes, pixelsA, staging, w, h, pixelBufSize); err != nil {
		return err
	}

	readback := make([]byte, pixelBufSize)
	if err := a.queue.ReadBuffer(staging, 0, readback); err != nil {
		// No readback path on this device; let the CPU evaluator take over.
		return fmt.Errorf("gpu-blur: readback unavailable (%v): %w", err, frost.ErrFallbackToCPU)
	}
	unpackPixels(readback, dst.Data, pixelCount)
	return nil
}

// createPassBindings builds the uniform buffers and bind groups for the two
// blur passes and, when maskBuf is non-nil, the mask pass. The blur passes
// ping-pong between the pixel buffers so the final result lands back in
// pixelsA.
func (a *BlurAccelerator) createPassBindings(
	w, h uint32, radiusX, radiusY float64,
	pixelsA, pixelsB, maskBuf hal.Buffer, pixelBufSize uint64,
) ([]computePass, []hal.Buffer, error) {
	var passes []computePass
	var uniforms []hal.Buffer

	blurParamSize := uint64(unsafe.Sizeof(blurParams{}))
	blurPasses := []struct {
		label   string
		params  blurParams
		in, out hal.Buffer
	}{
		{"frost_blur_h", blurParams{Width: w, Height: h, Axis: 0, Radius: float32(radiusX)}, pixelsA, pixelsB},
		{"frost_blur_v", blurParams{Width: w, Height: h, Axis: 1, Radius: float32(radiusY)}, pixelsB, pixelsA},
	}
	for _, p := range blurPasses {
		ub, err := a.device.CreateBuffer(&hal.BufferDescriptor{
			Label: p.label + "_params", Size: blurParamSize,
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return passes, uniforms, fmt.Errorf("create %s params: %w", p.label, err)
		}
		uniforms = append(uniforms, ub)
		a.queue.WriteBuffer(ub, 0, structToBytes(unsafe.Pointer(&p.params), unsafe.Sizeof(p.params))) //nolint:gosec // safe struct access

		bg, err := a.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label: p.label + "_bind", Layout: a.blurBindLayout,
			Entries: []gputypes.BindGroupEntry{
				{Binding: 0, Resource: gputypes.BufferBinding{Buffer: ub.NativeHandle(), Offset: 0, Size: blurParamSize}},
				{Binding: 1, Resource: gputypes.BufferBinding{Buffer: p.in.NativeHandle(), Offset: 0, Size: pixelBufSize}},
				{Binding: 2, Resource: gputypes.BufferBinding{Buffer: p.out.NativeHandle(), Offset: 0, Size: pixelBufSize}},
			},
		})
		if err != nil {
			return passes, uniforms, fmt.Errorf("create %s bind group: %w", p.label, err)
		}
		passes = append(passes, computePass{pipeline: a.blurPipeline, group: bg})
	}

	if maskBuf == nil {
		return passes, uniforms, nil
	}

	maskParamSize := uint64(unsafe.Sizeof(maskParams{}))
	params := maskParams{Width: w, Height: h}
	ub, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "frost_mask_params", Size: maskParamSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return passes, uniforms, fmt.Errorf("create mask params: %w", err)
	}
	uniforms = append(uniforms, ub)
	a.queue.WriteBuffer(ub, 0, structToBytes(unsafe.Pointer(&params), unsafe.Sizeof(params))) //nolint:gosec // safe struct access

	bg, err := a.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: "frost_mask_bind", Layout: a.maskBindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: ub.NativeHandle(), Offset: 0, Size: maskParamSize}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: pixelsA.NativeHandle(), Offset: 0, Size: pixelBufSize}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: maskBuf.NativeHandle(), Offset: 0, Size: pixelBufSize}},
		},
	})
	if err != nil {
		return passes, uniforms, fmt.Errorf("create mask bind group: %w", err)
	}
	passes = append(passes, computePass{pipeline: a.maskPipeline, group: bg})
	return passes, uniforms, nil
}

// cleanupBindings destroys uniform buffers and bind groups.
func (a *BlurAccelerator) cleanupBindings(uniforms []hal.Buffer, passes []computePass) {
	for _, p := range passes {
		if p.group != nil {
			a.device.DestroyBindGroup(p.group)
		}
	}
	for _, ub := range uniforms {
		if ub != nil {
			a.device.DestroyBuffer(ub)
		}
	}
}

// encodePasses records the compute passes in a single command encoder and
// waits for completion. Passes run in order with implicit storage buffer
// barriers between them, then the result buffer is copied out for readback.
func (a *BlurAccelerator) encodePasses(passes []computePass, resultBuf, stagingBuf hal.Buffer, w, h uint32, pixelBufSize uint64) error {
	encoder, err := a.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "frost_blur_encoder"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("frost_blur"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	for _, p := range passes {
		pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "frost_pass"})
		pass.SetPipeline(p.pipeline)
		pass.SetBindGroup(0, p.group, nil)
		pass.Dispatch((w+7)/8, (h+7)/8, 1)
		pass.End()
	}

	encoder.CopyBufferToBuffer(resultBuf, stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: pixelBufSize},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer a.device.FreeCommandBuffer(cmdBuf)

	fence, err := a.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer a.device.DestroyFence(fence)
	if err := a.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := a.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

func (a *BlurAccelerator) initGPU() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	a.instance = instance
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	a.device = openDev.Device
	a.queue = openDev.Queue
	if err := a.createPipelines(); err != nil {
		a.device.Destroy()
		a.device = nil
		a.queue = nil
		return fmt.Errorf("create pipelines: %w", err)
	}
	a.gpuReady = true
	slogger().Info("gpu-blur: GPU initialized", "adapter", selected.Info.Name)
	return nil
}

func (a *BlurAccelerator) createPipelines() error {
	var err error
	a.blurShader, a.blurBindLayout, a.blurPipeLayout, a.blurPipeline, err = a.buildPipeline(
		"frost_blur", blurShaderWGSL, []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		})
	if err != nil {
		return err
	}
	a.maskShader, a.maskBindLayout, a.maskPipeLayout, a.maskPipeline, err = a.buildPipeline(
		"frost_mask", maskShaderWGSL, []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
		})
	return err
}

// buildPipeline compiles one WGSL compute shader to SPIR-V and assembles
// its bind group layout, pipeline layout, and compute pipeline.
func (a *BlurAccelerator) buildPipeline(label, source string, entries []gputypes.BindGroupLayoutEntry) (hal.ShaderModule, hal.BindGroupLayout, hal.PipelineLayout, hal.ComputePipeline, error) {
	code, err := compileWGSL(source)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("compile %s: %w", label, err)
	}
	shader, err := a.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: code},
	})
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("create %s shader module: %w", label, err)
	}
	bindLayout, err := a.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   label + "_bind_layout",
		Entries: entries,
	})
	if err != nil {
		return shader, nil, nil, nil, fmt.Errorf("create %s bind group layout: %w", label, err)
	}
	pipeLayout, err := a.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: label + "_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{bindLayout},
	})
	if err != nil {
		return shader, bindLayout, nil, nil, fmt.Errorf("create %s pipeline layout: %w", label, err)
	}
	pipeline, err := a.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: label + "_pipeline", Layout: pipeLayout,
		Compute: hal.ComputeState{Module: shader, EntryPoint: "main"},
	})
	if err != nil {
		return shader, bindLayout, pipeLayout, nil, fmt.Errorf("create %s compute pipeline: %w", label, err)
	}
	return shader, bindLayout, pipeLayout, pipeline, nil
}

func (a *BlurAccelerator) destroyPipelines() {
	if a.device == nil {
		return
	}
	if a.blurPipeline != nil {
		a.device.DestroyComputePipeline(a.blurPipeline)
		a.blurPipeline = nil
	}
	if a.blurPipeLayout != nil {
		a.device.DestroyPipelineLayout(a.blurPipeLayout)
		a.blurPipeLayout = nil
	}
	if a.blurBindLayout != nil {
		a.device.DestroyBindGroupLayout(a.blurBindLayout)
		a.blurBindLayout = nil
	}
	if a.blurShader != nil {
		a.device.DestroyShaderModule(a.blurShader)
		a.blurShader = nil
	}
	if a.maskPipeline != nil {
		a.device.DestroyComputePipeline(a.maskPipeline)
		a.maskPipeline = nil
	}
	if a.maskPipeLayout != nil {
		a.device.DestroyPipelineLayout(a.maskPipeLayout)
		a.maskPipeLayout = nil
	}
	if a.maskBindLayout != nil {
		a.device.DestroyBindGroupLayout(a.maskBindLayout)
		a.maskBindLayout = nil
	}
	if a.maskShader != nil {
		a.device.DestroyShaderModule(a.maskShader)
		a.maskShader = nil
	}
}

func structToBytes(ptr unsafe.Pointer, size uintptr) []byte {
	return unsafe.Slice((*byte)(ptr), size) //nolint:gosec // safe struct serialization
}

// packPixels serializes RGBA bytes into little-endian u32 texels for GPU
// upload regardless of host byte order.
func packPixels(data []uint8, pixelCount int) []byte {
	out := make([]byte, pixelCount*4)
	for i := 0; i < pixelCount; i++ {
		srcIdx := i * 4
		r := uint32(data[srcIdx+0])
		g := uint32(data[srcIdx+1])
		b := uint32(data[srcIdx+2])
		a := uint32(data[srcIdx+3])
		packed := r | (g << 8) | (b << 16) | (a << 24)
		binary.LittleEndian.PutUint32(out[i*4:], packed)
	}
	return out
}

// unpackPixels writes little-endian u32 texels back into RGBA bytes.
func unpackPixels(packed []byte, dst []uint8, pixelCount int) {
	for i := 0; i < pixelCount; i++ {
		val := binary.LittleEndian.Uint32(packed[i*4:])
		dstIdx := i * 4
		dst[dstIdx+0] = uint8(val & 0xFF)         //nolint:gosec // masked to 8 bits
		dst[dstIdx+1] = uint8((val >> 8) & 0xFF)  //nolint:gosec // masked to 8 bits
		dst[dstIdx+2] = uint8((val >> 16) & 0xFF) //nolint:gosec // masked to 8 bits
		dst[dstIdx+3] = uint8((val >> 24) & 0xFF) //nolint:gosec // masked to 8 bits
	}
}
