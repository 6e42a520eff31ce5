// Package sketchpad turns raw multi-touch and mouse input into drawing
// gestures for a zoomable, pannable canvas on [Ebitengine].
//
// # Quick start
//
//	canvas := sketchpad.NewCanvas(800, 600, sketchpad.DefaultGestureConfig())
//	canvas.Gestures().OnTap(func(ctx sketchpad.TapContext) {
//		wx, wy := canvas.Camera().ScreenToWorld(ctx.X, ctx.Y)
//		// place something at (wx, wy)
//	})
//	sketchpad.Run(canvas, sketchpad.RunConfig{Title: "Sketch", Width: 800, Height: 600})
//
// # Gestures
//
// A [GestureController] consumes [ContactEvent]s. While exactly one contact
// is down it is owned by a [ContactClassifier], which reports it as a tap or
// as a drag (drag-start, drag-move, drag-end). As soon as a second contact
// appears any drag is closed and a [PanZoomSynthesizer] takes over, turning
// the first two contacts into pinch scale and pan deltas that are applied
// to the [Viewport]. Pinch zoom is always baseZoom * scale, where baseZoom
// is the zoom when the multi-contact session began.
//
// All tap and drag coordinates are canvas-local: the screen position minus
// the offset passed to [Canvas.SetOffset].
//
// # Viewport
//
// [Camera] implements [Viewport] with focal-point zoom, rotation-aware
// panning, bounds clamping and animated ScrollTo/ZoomTo via [gween]. Hosts
// with another renderer can implement [Viewport] themselves and drive a
// [GestureController] directly.
//
// # Testing
//
// [Canvas.InjectTap], [Canvas.InjectDrag] and [Canvas.InjectPinch] queue
// synthetic input consumed one event per frame. [LoadTestScript] builds a
// [TestRunner] that sequences them from JSON.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sketchpad
