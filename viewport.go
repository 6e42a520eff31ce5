package sketchpad

// Viewport is the pan/zoom engine the gesture controller drives. Camera is
// the stock implementation; hosts with their own renderer can supply theirs.
type Viewport interface {
	// Zoom returns the current zoom factor.
	Zoom() float64
	// SetZoom sets the zoom factor, keeping the content under the
	// canvas-local focal point fixed on screen.
	SetZoom(zoom float64, focal Vec2)
	// RelativePan moves the content by a screen-space delta.
	RelativePan(dx, dy float64)
}

var _ Viewport = (*Camera)(nil)
