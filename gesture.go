package sketchpad

import (
	"math"
	"slices"
)

// ContactEvent is one raw event from the host: a phase and the samples of
// every contact that changed in it.
type ContactEvent struct {
	Phase    ContactPhase
	Contacts []Contact
}

// GestureStore is the interface for optional ECS integration.
// When set, every gesture event is forwarded to it.
type GestureStore interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries gesture data for the ECS bridge. Coordinates are
// canvas-local except the pan delta, which is in screen space.
type GestureEvent struct {
	Type      EventType
	ContactID int
	X, Y      float64
	// Drag fields (valid for EventDragStart, EventDragMove, EventDragEnd).
	StartX, StartY float64
	// Drag and pan delta.
	DeltaX, DeltaY float64
	// Pinch fields (valid for EventPinch). X, Y hold the pinch center.
	Scale           float64
	InitialDistance float64
	CurrentDistance float64
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerList[T any] []handler[T]

func (l *handlerList[T]) add(id uint32, fn func(T)) {
	*l = append(*l, handler[T]{id: id, fn: fn})
}

// remove never writes to the current backing array, so a fire already
// ranging over it sees every handler registered when it began.
func (l *handlerList[T]) remove(id uint32) {
	s := *l
	for i := range s {
		if s[i].id == id {
			*l = slices.Delete(slices.Clone(s), i, i+1)
			return
		}
	}
}

func (l handlerList[T]) fire(v T) {
	for _, h := range l {
		h.fn(v)
	}
}

type handlerRegistry struct {
	tap        handlerList[TapContext]
	dragStart  handlerList[DragContext]
	dragMove   handlerList[DragContext]
	dragEnd    handlerList[DragContext]
	pan        handlerList[PanContext]
	pinch      handlerList[PinchContext]
	gestureEnd handlerList[struct{}]
	nextID     uint32
}

// CallbackHandle allows removing a registered gesture callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventTap:
		h.reg.tap.remove(h.id)
	case EventDragStart:
		h.reg.dragStart.remove(h.id)
	case EventDragMove:
		h.reg.dragMove.remove(h.id)
	case EventDragEnd:
		h.reg.dragEnd.remove(h.id)
	case EventPan:
		h.reg.pan.remove(h.id)
	case EventPinch:
		h.reg.pinch.remove(h.id)
	case EventGestureEnd:
		h.reg.gestureEnd.remove(h.id)
	}
}

func (r *handlerRegistry) handle(event EventType) CallbackHandle {
	return CallbackHandle{id: r.nextID, reg: r, event: event}
}

// --- Controller ---

// GestureController is the sole consumer of raw contact events. It routes a
// single contact to the classifier and two or more to the pan/zoom
// synthesizer, and applies pan and pinch to the viewport.
type GestureController struct {
	cfg        GestureConfig
	viewport   Viewport
	classifier *ContactClassifier
	synth      *PanZoomSynthesizer
	live       *ContactTracker

	mode     GestureMode
	baseZoom float64
	offset   Vec2

	handlers handlerRegistry
	store    GestureStore
	debug    bool
}

// NewGestureController creates a controller driving viewport.
func NewGestureController(viewport Viewport, cfg GestureConfig) *GestureController {
	g := &GestureController{
		cfg:      cfg,
		viewport: viewport,
		live:     NewContactTracker(),
		baseZoom: viewport.Zoom(),
	}
	g.classifier = NewContactClassifier(cfg, ClassifierHandlers{
		OnTap:       g.fireTap,
		OnDragStart: g.fireDragStart,
		OnDragMove:  g.fireDragMove,
		OnDragEnd:   g.fireDragEnd,
	})
	g.synth = NewPanZoomSynthesizer(cfg, PanZoomHandlers{
		OnPinch:      g.applyPinch,
		OnPan:        g.applyPan,
		OnGestureEnd: g.fireGestureEnd,
	})
	return g
}

// Mode returns the current top-level gesture state.
func (g *GestureController) Mode() GestureMode {
	return g.mode
}

// BaseZoom returns the zoom snapshot pinch scales are applied to.
func (g *GestureController) BaseZoom() float64 {
	return g.baseZoom
}

// Config returns the thresholds the controller was built with.
func (g *GestureController) Config() GestureConfig {
	return g.cfg
}

// ActiveContacts returns the number of contacts currently down.
func (g *GestureController) ActiveContacts() int {
	return g.live.Count()
}

// UpdateOffset sets the hosting element's screen position. Screen
// coordinates are translated to canvas-local by subtracting it.
func (g *GestureController) UpdateOffset(x, y float64) {
	g.offset = Vec2{x, y}
	g.classifier.SetOffset(x, y)
}

// SetGestureStore sets the optional ECS bridge.
func (g *GestureController) SetGestureStore(store GestureStore) {
	g.store = store
}

// SetDebugMode enables transition logging to stderr.
func (g *GestureController) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// Handle processes one raw contact event to completion.
func (g *GestureController) Handle(ev ContactEvent) {
	g.debugLogEvent(ev)
	switch ev.Phase {
	case ContactStart:
		g.handleStart(ev.Contacts)
	case ContactMove:
		g.handleMove(ev.Contacts)
	case ContactEnd:
		g.handleEnd(ev.Contacts)
	case ContactCancel:
		g.Reset()
	}
}

// Reset cancels both sub-components and forgets every contact. Any open
// drag or pinch receives its end callback first.
func (g *GestureController) Reset() {
	g.classifier.Cancel()
	g.synth.Cancel()
	g.live.Clear()
	g.setMode(ModeIdle)
}

// HandleWheel zooms by WheelZoomBase^delta around the screen point (x, y).
// Ignored while a multi-contact gesture owns the viewport.
func (g *GestureController) HandleWheel(delta, x, y float64) {
	if delta == 0 || g.mode == ModeMulti {
		return
	}
	zoom := g.viewport.Zoom() * math.Pow(g.cfg.WheelZoomBase, delta)
	g.viewport.SetZoom(zoom, Vec2{x - g.offset.X, y - g.offset.Y})
}

func (g *GestureController) handleStart(contacts []Contact) {
	for _, c := range contacts {
		g.live.Add(c)
	}
	n := g.live.Count()
	switch {
	case n >= 2:
		// A second contact ends single-contact classification outright,
		// dropping a pending tap as well as closing a drag.
		if g.classifier.Tracking() {
			g.classifier.Cancel()
		}
		g.setMode(ModeMulti)
		g.baseZoom = g.viewport.Zoom()
		g.synth.Begin(g.live.All())
	case n == 1 && g.mode != ModeMulti:
		g.setMode(ModeSingle)
		g.classifier.Start(g.live.All()[0])
	}
}

func (g *GestureController) handleMove(contacts []Contact) {
	for _, c := range contacts {
		if !g.live.Update(c) {
			g.debugLogf("move for untracked contact %d ignored", c.ID)
		}
	}
	switch g.mode {
	case ModeIdle:
	case ModeSingle:
		for _, c := range contacts {
			g.classifier.Move(c)
		}
	case ModeMulti:
		g.synth.Update(contacts)
	}
}

func (g *GestureController) handleEnd(contacts []Contact) {
	for _, c := range contacts {
		if !g.live.Remove(c.ID) {
			g.debugLogf("end for untracked contact %d ignored", c.ID)
		}
	}
	switch g.mode {
	case ModeIdle:
	case ModeSingle:
		for _, c := range contacts {
			g.classifier.End(c)
		}
	case ModeMulti:
		g.synth.End(contacts)
	}
	if g.live.Count() == 0 {
		g.setMode(ModeIdle)
	}
}

func (g *GestureController) setMode(m GestureMode) {
	if g.mode == m {
		return
	}
	g.debugLogf("mode %s -> %s", g.mode, m)
	g.mode = m
}

// --- Viewport application ---

func (g *GestureController) applyPan(ctx PanContext) {
	g.viewport.RelativePan(ctx.DeltaX, ctx.DeltaY)
	g.handlers.pan.fire(ctx)
	g.emit(GestureEvent{Type: EventPan, DeltaX: ctx.DeltaX, DeltaY: ctx.DeltaY})
}

func (g *GestureController) applyPinch(ctx PinchContext) {
	local := Vec2{ctx.CenterX - g.offset.X, ctx.CenterY - g.offset.Y}
	g.viewport.SetZoom(g.baseZoom*ctx.Scale, local)

	ctx.CenterX, ctx.CenterY = local.X, local.Y
	g.handlers.pinch.fire(ctx)
	g.emit(GestureEvent{
		Type: EventPinch, X: local.X, Y: local.Y,
		Scale: ctx.Scale, InitialDistance: ctx.InitialDistance, CurrentDistance: ctx.CurrentDistance,
	})
}

// --- Event dispatch ---

func (g *GestureController) fireTap(ctx TapContext) {
	g.handlers.tap.fire(ctx)
	g.emit(GestureEvent{Type: EventTap, ContactID: ctx.ContactID, X: ctx.X, Y: ctx.Y})
}

func (g *GestureController) fireDragStart(ctx DragContext) {
	g.handlers.dragStart.fire(ctx)
	g.emit(dragEvent(EventDragStart, ctx))
}

func (g *GestureController) fireDragMove(ctx DragContext) {
	g.handlers.dragMove.fire(ctx)
	g.emit(dragEvent(EventDragMove, ctx))
}

func (g *GestureController) fireDragEnd(ctx DragContext) {
	g.handlers.dragEnd.fire(ctx)
	g.emit(dragEvent(EventDragEnd, ctx))
}

func (g *GestureController) fireGestureEnd() {
	g.baseZoom = g.viewport.Zoom()
	g.handlers.gestureEnd.fire(struct{}{})
	g.emit(GestureEvent{Type: EventGestureEnd})
}

func dragEvent(t EventType, ctx DragContext) GestureEvent {
	return GestureEvent{
		Type: t, ContactID: ctx.ContactID,
		X: ctx.X, Y: ctx.Y, StartX: ctx.StartX, StartY: ctx.StartY,
		DeltaX: ctx.DeltaX, DeltaY: ctx.DeltaY,
	}
}

func (g *GestureController) emit(ev GestureEvent) {
	g.debugLogf("%s %+v", ev.Type, ev)
	if g.store != nil {
		g.store.EmitEvent(ev)
	}
}

// --- Registration ---

// OnTap registers a callback for taps.
func (g *GestureController) OnTap(fn func(TapContext)) CallbackHandle {
	g.handlers.nextID++
	g.handlers.tap.add(g.handlers.nextID, fn)
	return g.handlers.handle(EventTap)
}

// OnDragStart registers a callback for the start of a single-contact drag.
func (g *GestureController) OnDragStart(fn func(DragContext)) CallbackHandle {
	g.handlers.nextID++
	g.handlers.dragStart.add(g.handlers.nextID, fn)
	return g.handlers.handle(EventDragStart)
}

// OnDragMove registers a callback for every sample of a drag.
func (g *GestureController) OnDragMove(fn func(DragContext)) CallbackHandle {
	g.handlers.nextID++
	g.handlers.dragMove.add(g.handlers.nextID, fn)
	return g.handlers.handle(EventDragMove)
}

// OnDragEnd registers a callback for the end of a drag. It fires for every
// drag-start, including drags interrupted by a second contact or a cancel.
func (g *GestureController) OnDragEnd(fn func(DragContext)) CallbackHandle {
	g.handlers.nextID++
	g.handlers.dragEnd.add(g.handlers.nextID, fn)
	return g.handlers.handle(EventDragEnd)
}

// OnPan registers a callback for multi-contact pan samples. The viewport
// has already been panned when it fires.
func (g *GestureController) OnPan(fn func(PanContext)) CallbackHandle {
	g.handlers.nextID++
	g.handlers.pan.add(g.handlers.nextID, fn)
	return g.handlers.handle(EventPan)
}

// OnPinch registers a callback for pinch samples. The center is
// canvas-local and the viewport has already been zoomed when it fires.
func (g *GestureController) OnPinch(fn func(PinchContext)) CallbackHandle {
	g.handlers.nextID++
	g.handlers.pinch.add(g.handlers.nextID, fn)
	return g.handlers.handle(EventPinch)
}

// OnGestureEnd registers a callback for the end of a multi-contact session.
func (g *GestureController) OnGestureEnd(fn func()) CallbackHandle {
	g.handlers.nextID++
	g.handlers.gestureEnd.add(g.handlers.nextID, func(struct{}) { fn() })
	return g.handlers.handle(EventGestureEnd)
}
