package sketchpad

import (
	"math"
	"time"
)

// Classification is the single-contact verdict so far. It moves from
// ClassNone to ClassDrag at most once per contact and never back.
type Classification uint8

const (
	ClassNone Classification = iota // not yet a drag; may still become a tap
	ClassDrag                       // displacement exceeded the drag threshold
)

// TapContext carries a tap in canvas-local coordinates.
type TapContext struct {
	ContactID int
	X, Y      float64
	Duration  time.Duration
}

// DragContext carries a drag sample in canvas-local coordinates.
// DeltaX/DeltaY is the increment since the previously reported sample, so
// the deltas of one drag sum to the end point minus the start point.
type DragContext struct {
	ContactID      int
	X, Y           float64
	StartX, StartY float64
	DeltaX, DeltaY float64
}

// ClassifierHandlers receives classifier output. Nil fields are skipped.
type ClassifierHandlers struct {
	OnTap       func(TapContext)
	OnDragStart func(DragContext)
	OnDragMove  func(DragContext)
	OnDragEnd   func(DragContext)
}

// classifierState is one of classifierIdle or *classifierTracking.
type classifierState interface {
	isClassifierState()
}

type classifierIdle struct{}

type classifierTracking struct {
	start   Contact
	current Contact
	class   Classification
}

func (classifierIdle) isClassifierState()      {}
func (*classifierTracking) isClassifierState() {}

// ContactClassifier disambiguates a single contact into a tap or a drag.
type ContactClassifier struct {
	cfg      GestureConfig
	offset   Vec2
	handlers ClassifierHandlers
	state    classifierState
}

// NewContactClassifier creates an idle classifier.
func NewContactClassifier(cfg GestureConfig, handlers ClassifierHandlers) *ContactClassifier {
	return &ContactClassifier{
		cfg:      cfg,
		handlers: handlers,
		state:    classifierIdle{},
	}
}

// SetOffset sets the canvas element's screen position. It is subtracted from
// every coordinate handed to callbacks.
func (c *ContactClassifier) SetOffset(x, y float64) {
	c.offset = Vec2{x, y}
}

// Tracking reports whether a contact is being classified.
func (c *ContactClassifier) Tracking() bool {
	_, ok := c.state.(*classifierTracking)
	return ok
}

// Dragging reports whether the tracked contact has become a drag.
func (c *ContactClassifier) Dragging() bool {
	t, ok := c.state.(*classifierTracking)
	return ok && t.class == ClassDrag
}

// Start begins tracking contact. A contact already being tracked is
// cancelled first.
func (c *ContactClassifier) Start(contact Contact) {
	if c.Tracking() {
		c.Cancel()
	}
	c.state = &classifierTracking{start: contact, current: contact, class: ClassNone}
}

// Move feeds a new sample for the tracked contact. Samples for other
// contacts are ignored.
func (c *ContactClassifier) Move(contact Contact) {
	switch st := c.state.(type) {
	case classifierIdle:
		return
	case *classifierTracking:
		if contact.ID != st.start.ID {
			return
		}
		prev := st.current
		st.current = contact
		switch st.class {
		case ClassNone:
			if distance(st.start, contact) > c.cfg.DragThreshold {
				st.class = ClassDrag
				c.emitDrag(c.handlers.OnDragStart, st, st.start, contact.X-st.start.X, contact.Y-st.start.Y)
			}
		case ClassDrag:
			c.emitDrag(c.handlers.OnDragMove, st, contact, contact.X-prev.X, contact.Y-prev.Y)
		}
	}
}

// End finishes the tracked contact, emitting a tap or drag-end as earned.
// A contact that was neither a tap nor a drag produces nothing.
func (c *ContactClassifier) End(contact Contact) {
	st, ok := c.state.(*classifierTracking)
	if !ok || contact.ID != st.start.ID {
		return
	}
	prev := st.current
	c.state = classifierIdle{}

	switch st.class {
	case ClassNone:
		elapsed := time.Duration(contact.Timestamp-st.start.Timestamp) * time.Millisecond
		if elapsed < c.cfg.TapMaxDuration && distance(st.start, contact) < c.cfg.TapMaxDistance {
			if c.handlers.OnTap != nil {
				c.handlers.OnTap(TapContext{
					ContactID: contact.ID,
					X:         contact.X - c.offset.X,
					Y:         contact.Y - c.offset.Y,
					Duration:  elapsed,
				})
			}
		}
	case ClassDrag:
		c.emitDrag(c.handlers.OnDragEnd, st, contact, contact.X-prev.X, contact.Y-prev.Y)
	}
}

// Cancel abandons the tracked contact. An active drag is closed with a
// drag-end at the last known point so every drag-start gets its drag-end.
func (c *ContactClassifier) Cancel() {
	if st, ok := c.state.(*classifierTracking); ok && st.class == ClassDrag {
		c.emitDrag(c.handlers.OnDragEnd, st, st.current, 0, 0)
	}
	c.state = classifierIdle{}
}

func (c *ContactClassifier) emitDrag(fn func(DragContext), st *classifierTracking, at Contact, dx, dy float64) {
	if fn == nil {
		return
	}
	fn(DragContext{
		ContactID: st.start.ID,
		X:         at.X - c.offset.X,
		Y:         at.Y - c.offset.Y,
		StartX:    st.start.X - c.offset.X,
		StartY:    st.start.Y - c.offset.Y,
		DeltaX:    dx,
		DeltaY:    dy,
	})
}

func distance(a, b Contact) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
