package sketchpad

// Contact IDs used by the injection helpers. They are far from the small
// IDs platforms hand out for real touches.
const (
	injectContactA = 1001
	injectContactB = 1002
)

// InjectStart queues a contact-start for id at the given screen coordinates.
// Injected events are consumed one per frame and stamped with the frame
// time, replacing real input for that frame.
func (c *Canvas) InjectStart(id int, x, y float64) {
	c.injectQueue = append(c.injectQueue, ContactEvent{
		Phase:    ContactStart,
		Contacts: []Contact{{ID: id, X: x, Y: y}},
	})
}

// InjectMove queues a contact-move for id.
func (c *Canvas) InjectMove(id int, x, y float64) {
	c.injectQueue = append(c.injectQueue, ContactEvent{
		Phase:    ContactMove,
		Contacts: []Contact{{ID: id, X: x, Y: y}},
	})
}

// InjectEnd queues a contact-end for id.
func (c *Canvas) InjectEnd(id int, x, y float64) {
	c.injectQueue = append(c.injectQueue, ContactEvent{
		Phase:    ContactEnd,
		Contacts: []Contact{{ID: id, X: x, Y: y}},
	})
}

// InjectCancel queues a cancel of the whole input stream.
func (c *Canvas) InjectCancel() {
	c.injectQueue = append(c.injectQueue, ContactEvent{Phase: ContactCancel})
}

// InjectTap queues a start followed by an end at the same screen
// coordinates. Consumes two frames.
func (c *Canvas) InjectTap(x, y float64) {
	c.InjectStart(injectContactA, x, y)
	c.InjectEnd(injectContactA, x, y)
}

// InjectDrag queues a full drag: start at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and end at
// (toX, toY). Minimum frames is 2.
func (c *Canvas) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectStart(injectContactA, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(injectContactA, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectEnd(injectContactA, toX, toY)
}

// InjectPinch queues a two-contact pinch centered on (cx, cy). The contacts
// sit on a horizontal line, starting fromDist apart and ending toDist apart
// after frames-2 interpolated moves. Both contacts start and end together.
// Minimum frames is 2.
func (c *Canvas) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	pair := func(dist float64) []Contact {
		return []Contact{
			{ID: injectContactA, X: cx - dist/2, Y: cy},
			{ID: injectContactB, X: cx + dist/2, Y: cy},
		}
	}
	c.injectQueue = append(c.injectQueue, ContactEvent{Phase: ContactStart, Contacts: pair(fromDist)})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.injectQueue = append(c.injectQueue, ContactEvent{
			Phase:    ContactMove,
			Contacts: pair(fromDist + (toDist-fromDist)*t),
		})
	}
	c.injectQueue = append(c.injectQueue, ContactEvent{Phase: ContactEnd, Contacts: pair(toDist)})
}

// processInjectedInput pops one event from the inject queue, stamps it and
// feeds it to the gesture controller. Returns true if an event was consumed.
func (c *Canvas) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	ev := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	ts := c.timestamp()
	for i := range ev.Contacts {
		ev.Contacts[i].Timestamp = ts
	}
	c.gestures.Handle(ev)
	return true
}
