package sketchpad

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultMinZoom = 0.05
	defaultMaxZoom = 40.0
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// zoomAnim holds an active zoom-to tween and the point it zooms around.
type zoomAnim struct {
	tween *gween.Tween
	focal Vec2
}

// Camera controls the view onto the drawing: position, zoom, rotation and
// viewport. It implements Viewport.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// ZoomFactor is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	// Use SetZoom to change it around a focal point.
	ZoomFactor float64
	// MinZoom and MaxZoom clamp every zoom change made through SetZoom.
	MinZoom, MaxZoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the canvas-local rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
	zoomTween   *zoomAnim
}

// NewCamera creates a Camera with default values and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		ZoomFactor: 1.0,
		MinZoom:    defaultMinZoom,
		MaxZoom:    defaultMaxZoom,
		Viewport:   viewport,
		dirty:      true,
	}
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 {
	return c.ZoomFactor
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom], keeping the
// world point under the canvas-local focal point where it was on screen.
// Cancels a running ZoomTo.
func (c *Camera) SetZoom(zoom float64, focal Vec2) {
	c.zoomTween = nil
	c.zoomAround(zoom, focal)
}

func (c *Camera) zoomAround(zoom float64, focal Vec2) {
	zoom = math.Max(c.MinZoom, math.Min(zoom, c.MaxZoom))
	if zoom == c.ZoomFactor {
		return
	}
	wx, wy := c.ScreenToWorld(focal.X, focal.Y)
	c.ZoomFactor = zoom
	c.dirty = true
	nx, ny := c.ScreenToWorld(focal.X, focal.Y)
	c.X += wx - nx
	c.Y += wy - ny
	c.dirty = true
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// RelativePan moves the content by (dx, dy) screen pixels. The camera moves
// the opposite way in world units, accounting for zoom and rotation.
// Cancels a running ScrollTo.
func (c *Camera) RelativePan(dx, dy float64) {
	c.scrollTween = nil
	c.computeViewMatrix()
	inv := c.invViewMatrix
	c.X -= inv[0]*dx + inv[2]*dy
	c.Y -= inv[1]*dx + inv[3]*dy
	c.dirty = true
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ZoomTo animates the zoom factor to zoom over duration seconds, keeping
// the canvas-local focal point fixed.
func (c *Camera) ZoomTo(zoom float64, focal Vec2, duration float32, easeFn ease.TweenFunc) {
	c.zoomTween = &zoomAnim{
		tween: gween.New(float32(c.ZoomFactor), float32(zoom), duration, easeFn),
		focal: focal,
	}
}

// Animating reports whether a ScrollTo or ZoomTo is in progress.
func (c *Camera) Animating() bool {
	return c.scrollTween != nil || c.zoomTween != nil
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// update advances scroll and zoom tweens and bounds clamping. Called from Canvas.Update().
func (c *Camera) update(dt float32) {
	prevX, prevY := c.X, c.Y
	prevZoom, prevRot := c.ZoomFactor, c.Rotation

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
		c.dirty = true
	}

	if c.zoomTween != nil {
		val, done := c.zoomTween.tween.Update(dt)
		c.zoomAround(float64(val), c.zoomTween.focal)
		if done {
			c.zoomTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	if c.X != prevX || c.Y != prevY || c.ZoomFactor != prevZoom || c.Rotation != prevRot {
		c.dirty = true
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.ZoomFactor)
	halfH := c.Viewport.Height / (2 * c.ZoomFactor)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// Bounds smaller than the visible area: center on them.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
	c.dirty = true
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	sin, cos := math.Sincos(-c.Rotation)
	z := c.ZoomFactor

	// [a b tx]   [z*cos  -z*sin  cx + z*(- cos*X + sin*Y)]
	// [c d ty] = [z*sin   z*cos  cy + z*(-sin*X - cos*Y)]
	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to canvas-local screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts canvas-local screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ViewMatrix returns the world-to-screen affine matrix as [a, b, c, d, tx, ty].
func (c *Camera) ViewMatrix() [6]float64 {
	return c.computeViewMatrix()
}

// MarkDirty forces a recomputation of the view matrix. Call it after
// assigning X, Y, ZoomFactor, Rotation or Viewport directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
