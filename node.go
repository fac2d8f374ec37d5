package frost

// Node is a retained drawing element: a content pixmap that is re-recorded
// each frame, transform properties applied at composite time, and an
// optional Effect evaluated lazily over the content.
//
// Filtered output is memoized by (content version, effect version), so a
// transform-only change recomposites the already-filtered pixels without
// re-running the effect. Re-recording or attaching a different effect
// invalidates the memo.
//
// Nodes are not safe for concurrent use; like the controllers that own
// them, they belong to a single rendering goroutine.
type Node struct {
	width, height int
	content       *Pixmap
	recording     *Canvas

	translationX, translationY float64
	pivotX, pivotY             float64
	scaleX, scaleY             float64
	rotation                   float64

	effect Effect

	contentVersion uint64
	effectVersion  uint64

	filtered           *Pixmap
	filteredForContent uint64
	filteredForEffect  uint64
}

// NewNode creates a node with a content buffer of the given size.
// Dimensions are clamped to >= 1. The initial scale is 1 and the pivot sits
// at the content center.
func NewNode(width, height int) *Node {
	n := &Node{scaleX: 1, scaleY: 1}
	n.allocate(width, height)
	n.pivotX = float64(n.width) / 2
	n.pivotY = float64(n.height) / 2
	return n
}

func (n *Node) allocate(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	n.width, n.height = width, height
	n.content = NewPixmap(width, height)
	n.recording = newCaptureCanvas(n.content)
}

// Size returns the content buffer dimensions.
func (n *Node) Size() (width, height int) {
	return n.width, n.height
}

// Resize reallocates the content buffer. A call with the current size is a
// no-op; otherwise the recorded content is lost and must be re-recorded.
func (n *Node) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == n.width && height == n.height {
		return
	}
	n.allocate(width, height)
	n.contentVersion++
	n.filtered = nil
}

// BeginRecording clears the content buffer and returns the recording canvas.
// The canvas is capture-marked: blur controllers refuse to draw into it,
// which keeps one blurred region from recursively capturing another.
// Finish with EndRecording.
func (n *Node) BeginRecording() *Canvas {
	n.content.Clear(Transparent)
	n.recording.Identity()
	n.recording.ResetClip()
	return n.recording
}

// EndRecording publishes the recorded content, invalidating the filtered
// memo.
func (n *Node) EndRecording() {
	n.contentVersion++
}

// SetTranslation sets the translation applied when the node is composited.
func (n *Node) SetTranslation(x, y float64) {
	n.translationX, n.translationY = x, y
}

// Translation returns the current translation.
func (n *Node) Translation() (x, y float64) {
	return n.translationX, n.translationY
}

// SetPivot sets the point, in content coordinates, about which rotation and
// scale are applied.
func (n *Node) SetPivot(x, y float64) {
	n.pivotX, n.pivotY = x, y
}

// SetScale sets the scale applied about the pivot.
func (n *Node) SetScale(sx, sy float64) {
	n.scaleX, n.scaleY = sx, sy
}

// SetScaleX sets only the horizontal scale.
func (n *Node) SetScaleX(sx float64) {
	n.scaleX = sx
}

// SetScaleY sets only the vertical scale.
func (n *Node) SetScaleY(sy float64) {
	n.scaleY = sy
}

// SetRotation sets the rotation about the pivot, in radians.
func (n *Node) SetRotation(radians float64) {
	n.rotation = radians
}

// SetEffect attaches an effect graph to the node. Attaching a graph
// equivalent to the current one is a detected no-op that preserves the
// filtered memo.
func (n *Node) SetEffect(e Effect) {
	if effectEqual(n.effect, e) {
		return
	}
	n.effect = e
	n.effectVersion++
}

// ReapplyEffect forces the next composite to re-evaluate the attached
// effect even though it did not change. Controllers call this every frame
// on accelerators that report RequiresEffectReapply, where a retained
// result would not reflect transform-only changes.
func (n *Node) ReapplyEffect() {
	n.effectVersion++
}

// transform returns the property matrix: translation, then rotation and
// scale about the pivot.
func (n *Node) transform() Matrix {
	m := Translate(n.translationX, n.translationY)
	if n.rotation == 0 && n.scaleX == 1 && n.scaleY == 1 {
		return m
	}
	m = m.Multiply(Translate(n.pivotX, n.pivotY))
	if n.rotation != 0 {
		m = m.Multiply(Rotate(n.rotation))
	}
	m = m.Multiply(Scale(n.scaleX, n.scaleY))
	return m.Multiply(Translate(-n.pivotX, -n.pivotY))
}

// filteredOutput returns the content with the attached effect applied,
// re-evaluating only when the memo key changed.
func (n *Node) filteredOutput() *Pixmap {
	if n.effect == nil {
		return n.content
	}
	if n.filtered != nil &&
		n.filteredForContent == n.contentVersion &&
		n.filteredForEffect == n.effectVersion {
		return n.filtered
	}
	n.filtered = applyEffect(n.content, n.effect)
	n.filteredForContent = n.contentVersion
	n.filteredForEffect = n.effectVersion
	Logger().Debug("evaluated node effect",
		"width", n.width, "height", n.height,
		"contentVersion", n.contentVersion, "effectVersion", n.effectVersion)
	return n.filtered
}

// DrawNode composites a node's filtered output under its transform
// properties. The canvas transform and clip are preserved.
func (c *Canvas) DrawNode(n *Node) {
	if n == nil || n.content == nil {
		return
	}
	out := n.filteredOutput()
	c.Push()
	c.Transform(n.transform())
	c.DrawPixmap(out, 0, 0)
	c.Pop()
}
