//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// Embedded WGSL shader sources, compiled to SPIR-V when the accelerator
// initializes.

//go:embed shaders/blur.wgsl
var blurShaderWGSL string

//go:embed shaders/mask.wgsl
var maskShaderWGSL string

// compileWGSL compiles WGSL source to SPIR-V words for hal shader modules.
// SPIR-V is little-endian 32-bit words.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}

	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}
