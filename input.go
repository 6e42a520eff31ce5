package sketchpad

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// MouseContactID is the contact ID used for the left mouse button.
// Touch contacts use their ebiten.TouchID.
const MouseContactID = -1

// processInput is called from Canvas.Update() to turn the current mouse and
// touch state into contact events. Injected events take precedence.
func (c *Canvas) processInput() {
	if c.processInjectedInput() {
		return
	}
	c.feedContacts(c.pollContacts(), ebiten.IsFocused())

	if _, wy := ebiten.Wheel(); wy != 0 {
		mx, my := ebiten.CursorPosition()
		c.gestures.HandleWheel(wy, float64(mx), float64(my))
	}
}

// pollContacts reads every pressed pointer. The mouse is only reported
// while no touches are down, since some platforms mirror touches onto it.
func (c *Canvas) pollContacts() []Contact {
	ts := c.timestamp()
	c.pollBuf = c.pollBuf[:0]

	c.touchIDs = ebiten.AppendTouchIDs(c.touchIDs[:0])
	for _, tid := range c.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		c.pollBuf = append(c.pollBuf, Contact{ID: int(tid), X: float64(tx), Y: float64(ty), Timestamp: ts})
	}
	if len(c.touchIDs) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		c.pollBuf = append(c.pollBuf, Contact{ID: MouseContactID, X: float64(mx), Y: float64(my), Timestamp: ts})
	}
	return c.pollBuf
}

// feedContacts diffs cur against the previous frame and sends move, end
// and start events to the gesture controller, in that order. Ends go before
// starts so a lift and a touch-down in the same frame never overlap. Losing
// focus with contacts down cancels the whole stream.
func (c *Canvas) feedContacts(cur []Contact, focused bool) {
	if !focused {
		if len(c.prevContacts) > 0 {
			c.gestures.Handle(ContactEvent{Phase: ContactCancel})
			clear(c.prevContacts)
		}
		return
	}

	starts, moves, ends := diffContacts(c.prevContacts, cur, c.timestamp())
	if len(moves) > 0 {
		c.gestures.Handle(ContactEvent{Phase: ContactMove, Contacts: moves})
	}
	if len(ends) > 0 {
		c.gestures.Handle(ContactEvent{Phase: ContactEnd, Contacts: ends})
	}
	if len(starts) > 0 {
		c.gestures.Handle(ContactEvent{Phase: ContactStart, Contacts: starts})
	}

	clear(c.prevContacts)
	for _, ct := range cur {
		c.prevContacts[ct.ID] = ct
	}
}

// diffContacts classifies the current samples against the previous frame.
// Ended contacts keep their last position and take the timestamp ts.
// Each result is sorted by contact ID.
func diffContacts(prev map[int]Contact, cur []Contact, ts int64) (starts, moves, ends []Contact) {
	seen := make(map[int]struct{}, len(cur))
	for _, ct := range cur {
		seen[ct.ID] = struct{}{}
		old, ok := prev[ct.ID]
		switch {
		case !ok:
			starts = append(starts, ct)
		case old.X != ct.X || old.Y != ct.Y:
			moves = append(moves, ct)
		}
	}
	for id, old := range prev {
		if _, ok := seen[id]; ok {
			continue
		}
		old.Timestamp = ts
		ends = append(ends, old)
	}

	byID := func(a, b Contact) int { return cmp.Compare(a.ID, b.ID) }
	slices.SortFunc(starts, byID)
	slices.SortFunc(moves, byID)
	slices.SortFunc(ends, byID)
	return starts, moves, ends
}
