package sketchpad

import "math"

// PinchContext carries one pinch sample. Scale is relative to the distance
// between the first two contacts when the session began.
type PinchContext struct {
	CenterX, CenterY float64
	Scale            float64
	InitialDistance  float64
	CurrentDistance  float64
}

// PanContext carries the centroid shift between two consecutive samples in
// screen space. Velocity fields are reserved and always zero.
type PanContext struct {
	DeltaX, DeltaY       float64
	VelocityX, VelocityY float64
}

// PanZoomHandlers receives synthesizer output. Nil fields are skipped.
type PanZoomHandlers struct {
	OnPinch      func(PinchContext)
	OnPan        func(PanContext)
	OnGestureEnd func()
}

// panZoomState is one of panZoomIdle or *panZoomActive.
type panZoomState interface {
	isPanZoomState()
}

type panZoomIdle struct{}

type panZoomActive struct {
	initialDistance float64
	lastCentroid    Vec2
}

func (panZoomIdle) isPanZoomState()     {}
func (*panZoomActive) isPanZoomState() {}

// PanZoomSynthesizer derives pinch scale and pan deltas from two or more
// simultaneous contacts.
type PanZoomSynthesizer struct {
	cfg      GestureConfig
	handlers PanZoomHandlers
	tracker  *ContactTracker
	state    panZoomState
}

// NewPanZoomSynthesizer creates an idle synthesizer with its own tracker.
func NewPanZoomSynthesizer(cfg GestureConfig, handlers PanZoomHandlers) *PanZoomSynthesizer {
	return &PanZoomSynthesizer{
		cfg:      cfg,
		handlers: handlers,
		tracker:  NewContactTracker(),
		state:    panZoomIdle{},
	}
}

// Active reports whether a pan/zoom session is running.
func (p *PanZoomSynthesizer) Active() bool {
	_, ok := p.state.(*panZoomActive)
	return ok
}

// ContactCount returns the number of contacts in the session.
func (p *PanZoomSynthesizer) ContactCount() int {
	return p.tracker.Count()
}

// Begin replaces the tracked set with contacts and, when at least two are
// present, starts a session measured from their current geometry.
func (p *PanZoomSynthesizer) Begin(contacts []Contact) {
	p.tracker.Clear()
	for _, c := range contacts {
		p.tracker.Add(c)
	}
	if p.tracker.Count() < 2 {
		p.state = panZoomIdle{}
		return
	}
	p.state = &panZoomActive{
		initialDistance: p.tracker.Distance(),
		lastCentroid:    p.tracker.Centroid(),
	}
}

// Update feeds new samples and emits pinch and pan for the frame. Pan is
// emitted even when the pinch is skipped by the minimum-distance guard.
func (p *PanZoomSynthesizer) Update(contacts []Contact) {
	switch st := p.state.(type) {
	case panZoomIdle:
		return
	case *panZoomActive:
		for _, c := range contacts {
			p.tracker.Update(c)
		}
		if p.tracker.Count() < 2 {
			return
		}
		centroid := p.tracker.Centroid()
		if st.initialDistance > p.cfg.PinchMinDistance && p.handlers.OnPinch != nil {
			current := p.tracker.Distance()
			p.handlers.OnPinch(PinchContext{
				CenterX:         centroid.X,
				CenterY:         centroid.Y,
				Scale:           clampScale(current/st.initialDistance, p.cfg.ZoomMin, p.cfg.ZoomMax),
				InitialDistance: st.initialDistance,
				CurrentDistance: current,
			})
		}
		if p.handlers.OnPan != nil {
			p.handlers.OnPan(PanContext{
				DeltaX: centroid.X - st.lastCentroid.X,
				DeltaY: centroid.Y - st.lastCentroid.Y,
			})
		}
		st.lastCentroid = centroid
	}
}

// End removes the lifted contacts. The session survives while two or more
// remain; otherwise it ends and the tracker is cleared. Reports whether
// the session ended.
func (p *PanZoomSynthesizer) End(changed []Contact) bool {
	for _, c := range changed {
		p.tracker.Remove(c.ID)
	}
	if p.tracker.Count() >= 2 {
		return false
	}
	wasActive := p.Active()
	p.state = panZoomIdle{}
	p.tracker.Clear()
	if wasActive && p.handlers.OnGestureEnd != nil {
		p.handlers.OnGestureEnd()
	}
	return wasActive
}

// Cancel terminates any session, emitting gesture-end if one was running.
func (p *PanZoomSynthesizer) Cancel() {
	wasActive := p.Active()
	p.state = panZoomIdle{}
	p.tracker.Clear()
	if wasActive && p.handlers.OnGestureEnd != nil {
		p.handlers.OnGestureEnd()
	}
}

func clampScale(s, lo, hi float64) float64 {
	return math.Max(lo, math.Min(s, hi))
}
