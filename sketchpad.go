package sketchpad

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D vector used for positions, offsets and deltas throughout the API.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// ContactPhase identifies the lifecycle step a raw contact event reports.
type ContactPhase uint8

const (
	ContactStart  ContactPhase = iota // one or more contacts touched down
	ContactMove                       // one or more active contacts moved
	ContactEnd                        // one or more contacts lifted
	ContactCancel                     // the host aborted the whole input stream
)

// String returns the phase name used in debug output.
func (p ContactPhase) String() string {
	switch p {
	case ContactStart:
		return "start"
	case ContactMove:
		return "move"
	case ContactEnd:
		return "end"
	case ContactCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventTap        EventType = iota // fires when a short, still contact lifts
	EventDragStart                   // fires when movement exceeds the drag threshold
	EventDragMove                    // fires for every sample while dragging
	EventDragEnd                     // fires when a drag lifts or is cancelled
	EventPan                         // fires for every multi-contact sample
	EventPinch                       // fires for every multi-contact sample with valid geometry
	EventGestureEnd                  // fires when a multi-contact session terminates
)

// String returns the event name used in debug output.
func (e EventType) String() string {
	switch e {
	case EventTap:
		return "tap"
	case EventDragStart:
		return "dragstart"
	case EventDragMove:
		return "dragmove"
	case EventDragEnd:
		return "dragend"
	case EventPan:
		return "pan"
	case EventPinch:
		return "pinch"
	case EventGestureEnd:
		return "gestureend"
	default:
		return "unknown"
	}
}

// GestureMode is the controller's top-level state. Exactly one mode holds
// at any instant.
type GestureMode uint8

const (
	ModeIdle   GestureMode = iota // no contacts are down
	ModeSingle                    // one contact owned by the classifier
	ModeMulti                     // two or more contacts owned by the synthesizer
)

// String returns the mode name used in debug output.
func (m GestureMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	default:
		return "unknown"
	}
}
