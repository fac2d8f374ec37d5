package frost

// GradientDirection selects the axis along which a fade mask or overlay
// gradient transitions.
type GradientDirection int

const (
	// DirectionNone disables the directional gradient.
	DirectionNone GradientDirection = iota
	// DirectionTopToBottom transitions from the top edge down.
	DirectionTopToBottom
	// DirectionBottomToTop transitions from the bottom edge up.
	DirectionBottomToTop
	// DirectionLeftToRight transitions from the left edge across.
	DirectionLeftToRight
	// DirectionRightToLeft transitions from the right edge across.
	DirectionRightToLeft
)

// String returns the direction name.
func (d GradientDirection) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionTopToBottom:
		return "top-to-bottom"
	case DirectionBottomToTop:
		return "bottom-to-top"
	case DirectionLeftToRight:
		return "left-to-right"
	case DirectionRightToLeft:
		return "right-to-left"
	default:
		return "unknown"
	}
}

// line returns the gradient segment for a w x h region whose origin sits at
// (left, top). Each direction is an explicit reversed-axis endpoint pair
// rather than a rotation of a single base segment. Unknown directions fall
// back to top-to-bottom.
func (d GradientDirection) line(w, h, left, top float64) (x0, y0, x1, y1 float64) {
	switch d {
	case DirectionBottomToTop:
		return left, top + h, left, top
	case DirectionLeftToRight:
		return left, top, left + w, top
	case DirectionRightToLeft:
		return left + w, top, left, top
	default: // DirectionTopToBottom
		return left, top, left, top + h
	}
}
