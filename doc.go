// Package frost blurs the content behind a region of the screen, the
// frosted-glass effect used for toolbars, dialogs, and overlays.
//
// # Overview
//
// frost is a pure Go compositing library designed to integrate with the
// GoGPU ecosystem. The host application exposes two regions: a Target
// (the content being blurred) and an Output (where the blurred result is
// shown). A Controller captures the content behind the output each frame,
// blurs it, and composites the result with optional noise and overlay
// tinting.
//
// # Quick Start
//
//	import "github.com/gogpu/frost"
//
//	// target and output implement frost.Target and frost.Output.
//	ctrl := frost.New(target, output,
//		frost.WithBlurRadius(12),
//		frost.WithOverlayColor(frost.ARGBOf(0x40, 0xff, 0xff, 0xff)),
//	)
//	defer ctrl.Destroy()
//
//	// In the output's draw pass:
//	ctrl.Draw(canvas)
//
// # Strategies
//
// New picks between two strategies. SnapshotController downscales the
// captured content into a buffer, blurs it on the CPU with a pluggable
// Algorithm, and stretches the result back up. NodeController keeps a
// persistent retained Node carrying a blur effect graph, evaluated by a
// registered GPU accelerator when one supports it. Register an
// accelerator by blank-importing the gpu subpackage:
//
//	import _ "github.com/gogpu/frost/gpu"
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// Controllers track the output region's position relative to the target
// every frame, so independently scrolling or animated regions stay in
// registration without help from the host.
package frost

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
