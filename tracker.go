package frost

// locationTracker records the on-screen locations of the target and output
// regions and derives the offset between them. The offset is how far the
// output's origin has drifted from the target's origin in the containing
// coordinate space, which is exactly the translation to undo when mapping
// captured content into the output's local space.
//
// Locations are re-read every frame; nothing here is assumed stable across
// frames.
type locationTracker struct {
	targetX, targetY int
	outputX, outputY int
}

// refresh records the current screen locations of both regions.
func (t *locationTracker) refresh(target, output Region) {
	t.targetX, t.targetY = target.ScreenLocation()
	t.outputX, t.outputY = output.ScreenLocation()
}

// offset returns (output − target) component-wise.
func (t *locationTracker) offset() (dx, dy int) {
	return t.outputX - t.targetX, t.outputY - t.targetY
}
