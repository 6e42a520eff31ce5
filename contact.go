package sketchpad

import "math"

// Contact is one physical point of input. ID is assigned by the host and is
// stable for the lifetime of the touch. Timestamp is in milliseconds.
type Contact struct {
	ID        int
	X, Y      float64
	Timestamp int64
}

// Pos returns the contact position as a vector.
func (c Contact) Pos() Vec2 {
	return Vec2{c.X, c.Y}
}

// ContactTracker is pure bookkeeping for the set of active contacts, keyed
// by contact ID. The "first two" contacts used for distance and centroid
// are the two oldest still tracked.
type ContactTracker struct {
	contacts map[int]Contact
	order    []int
}

// NewContactTracker creates an empty tracker.
func NewContactTracker() *ContactTracker {
	return &ContactTracker{contacts: make(map[int]Contact)}
}

// Add starts tracking c. Adding an ID that is already tracked replaces its
// sample without changing its position in the order.
func (t *ContactTracker) Add(c Contact) {
	if _, ok := t.contacts[c.ID]; !ok {
		t.order = append(t.order, c.ID)
	}
	t.contacts[c.ID] = c
}

// Update replaces the sample for an already tracked contact. Unknown IDs
// are ignored and reported with false.
func (t *ContactTracker) Update(c Contact) bool {
	if _, ok := t.contacts[c.ID]; !ok {
		return false
	}
	t.contacts[c.ID] = c
	return true
}

// Remove stops tracking id. Reports whether id was tracked.
func (t *ContactTracker) Remove(id int) bool {
	if _, ok := t.contacts[id]; !ok {
		return false
	}
	delete(t.contacts, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the tracked sample for id.
func (t *ContactTracker) Get(id int) (Contact, bool) {
	c, ok := t.contacts[id]
	return c, ok
}

// Count returns the number of tracked contacts.
func (t *ContactTracker) Count() int {
	return len(t.order)
}

// All returns the tracked contacts, oldest first. The slice is a copy.
func (t *ContactTracker) All() []Contact {
	out := make([]Contact, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.contacts[id])
	}
	return out
}

// Distance returns the Euclidean distance between the first two contacts,
// or 0 when fewer than two are tracked.
func (t *ContactTracker) Distance() float64 {
	if len(t.order) < 2 {
		return 0
	}
	a := t.contacts[t.order[0]]
	b := t.contacts[t.order[1]]
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Centroid returns the midpoint of the first two contacts, the position of
// the only contact when one is tracked, and the origin when none are.
func (t *ContactTracker) Centroid() Vec2 {
	switch len(t.order) {
	case 0:
		return Vec2{}
	case 1:
		return t.contacts[t.order[0]].Pos()
	}
	a := t.contacts[t.order[0]]
	b := t.contacts[t.order[1]]
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Clear drops every tracked contact.
func (t *ContactTracker) Clear() {
	clear(t.contacts)
	t.order = t.order[:0]
}
