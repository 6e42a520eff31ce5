package sketchpad

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	defaultGridSpacing = 50.0
	minGridPixels      = 6.0 // grid lines closer than this on screen are skipped
)

// Canvas is the top-level object that owns the camera, the gesture
// controller, input state and the draw hook.
type Canvas struct {
	// ClearColor fills the canvas before anything else is drawn.
	ClearColor Color
	// GridEnabled draws a world-space grid under OnDraw output.
	GridEnabled bool
	// GridSpacing is the world distance between grid lines.
	GridSpacing float64
	// GridColor is the color of grid lines.
	GridColor Color
	// OnDraw renders the drawing content. Use cam.WorldToScreen plus
	// Canvas.Offset to place world-space content.
	OnDraw func(screen *ebiten.Image, cam *Camera)
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	camera   *Camera
	gestures *GestureController
	offset   Vec2
	debug    bool

	// Input state
	prevContacts map[int]Contact
	pollBuf      []Contact
	touchIDs     []ebiten.TouchID
	injectQueue  []ContactEvent
	testRunner   *TestRunner

	screenshotQueue []string

	epoch time.Time
	now   func() time.Time
}

// NewCanvas creates a canvas of the given size with its own camera and
// gesture controller.
func NewCanvas(width, height int, cfg GestureConfig) *Canvas {
	cam := NewCamera(Rect{Width: float64(width), Height: float64(height)})
	cam.X = float64(width) / 2
	cam.Y = float64(height) / 2
	c := &Canvas{
		ClearColor:    Color{R: 0.96, G: 0.96, B: 0.94, A: 1},
		GridSpacing:   defaultGridSpacing,
		GridColor:     Color{R: 0.8, G: 0.8, B: 0.8, A: 1},
		ScreenshotDir: "screenshots",
		camera:        cam,
		gestures:      NewGestureController(cam, cfg),
		prevContacts:  make(map[int]Contact),
		now:           time.Now,
	}
	c.epoch = c.now()
	return c
}

// Camera returns the canvas camera.
func (c *Canvas) Camera() *Camera {
	return c.camera
}

// Gestures returns the gesture controller. Register tool callbacks on it.
func (c *Canvas) Gestures() *GestureController {
	return c.gestures
}

// Offset returns the canvas position on screen.
func (c *Canvas) Offset() Vec2 {
	return c.offset
}

// SetOffset sets the canvas position on screen. Input coordinates are
// translated by it before reaching the camera or gesture callbacks.
func (c *Canvas) SetOffset(x, y float64) {
	c.offset = Vec2{x, y}
	c.gestures.UpdateOffset(x, y)
}

// Resize updates the camera viewport to the new canvas size.
func (c *Canvas) Resize(width, height int) {
	w, h := float64(width), float64(height)
	if c.camera.Viewport.Width == w && c.camera.Viewport.Height == h {
		return
	}
	c.camera.Viewport.Width = w
	c.camera.Viewport.Height = h
	c.camera.MarkDirty()
}

// SetGestureStore sets the optional ECS bridge.
func (c *Canvas) SetGestureStore(store GestureStore) {
	c.gestures.SetGestureStore(store)
}

// SetDebugMode enables or disables debug mode. When enabled, gesture mode
// transitions and emitted events are logged to stderr.
func (c *Canvas) SetDebugMode(enabled bool) {
	c.debug = enabled
	c.gestures.SetDebugMode(enabled)
}

// SetTestRunner attaches a TestRunner. Its step method is called from
// Update before input is processed each frame.
func (c *Canvas) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// WorldToScreen converts world coordinates to absolute screen coordinates,
// including the canvas offset.
func (c *Canvas) WorldToScreen(wx, wy float64) (sx, sy float64) {
	sx, sy = c.camera.WorldToScreen(wx, wy)
	return sx + c.offset.X, sy + c.offset.Y
}

// ScreenToWorld converts absolute screen coordinates to world coordinates.
func (c *Canvas) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return c.camera.ScreenToWorld(sx-c.offset.X, sy-c.offset.Y)
}

// timestamp returns milliseconds since the canvas was created.
func (c *Canvas) timestamp() int64 {
	return c.now().Sub(c.epoch).Milliseconds()
}

// Update advances camera animations and processes input.
func (c *Canvas) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	c.camera.update(dt)
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.processInput()
}

// Draw fills the canvas, draws the grid, then calls OnDraw.
func (c *Canvas) Draw(screen *ebiten.Image) {
	screen.Fill(c.ClearColor.toRGBA())
	if c.GridEnabled {
		c.drawGrid(screen)
	}
	if c.OnDraw != nil {
		c.OnDraw(screen, c.camera)
	}
	c.flushScreenshots(screen)
}

// gridLines returns the world coordinates of the vertical and horizontal
// grid lines inside the visible area, or nil when they would be too dense.
func (c *Canvas) gridLines() (xs, ys []float64, vis Rect) {
	spacing := c.GridSpacing
	if spacing <= 0 || spacing*c.camera.ZoomFactor < minGridPixels {
		return nil, nil, Rect{}
	}
	vis = c.camera.VisibleBounds()
	for x := math.Floor(vis.X/spacing) * spacing; x <= vis.X+vis.Width; x += spacing {
		xs = append(xs, x)
	}
	for y := math.Floor(vis.Y/spacing) * spacing; y <= vis.Y+vis.Height; y += spacing {
		ys = append(ys, y)
	}
	return xs, ys, vis
}

func (c *Canvas) drawGrid(screen *ebiten.Image) {
	xs, ys, vis := c.gridLines()
	clr := c.GridColor.toRGBA()
	for _, x := range xs {
		c.strokeWorldLine(screen, x, vis.Y, x, vis.Y+vis.Height, clr)
	}
	for _, y := range ys {
		c.strokeWorldLine(screen, vis.X, y, vis.X+vis.Width, y, clr)
	}
}

func (c *Canvas) strokeWorldLine(screen *ebiten.Image, x0, y0, x1, y1 float64, clr color.RGBA) {
	sx0, sy0 := c.WorldToScreen(x0, y0)
	sx1, sy1 := c.WorldToScreen(x1, y1)
	vector.StrokeLine(screen, float32(sx0), float32(sy0), float32(sx1), float32(sy1), 1, clr, true)
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}
