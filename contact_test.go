package sketchpad

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestContactTrackerEmpty(t *testing.T) {
	tr := NewContactTracker()
	if tr.Count() != 0 {
		t.Errorf("Count = %d, want 0", tr.Count())
	}
	if d := tr.Distance(); d != 0 {
		t.Errorf("Distance = %v, want 0", d)
	}
	if c := tr.Centroid(); c != (Vec2{}) {
		t.Errorf("Centroid = %v, want origin", c)
	}
	if len(tr.All()) != 0 {
		t.Errorf("All = %v, want empty", tr.All())
	}
}

func TestContactTrackerSingle(t *testing.T) {
	tr := NewContactTracker()
	tr.Add(Contact{ID: 3, X: 12, Y: 34})
	if d := tr.Distance(); d != 0 {
		t.Errorf("Distance with one contact = %v, want 0", d)
	}
	if c := tr.Centroid(); c != (Vec2{12, 34}) {
		t.Errorf("Centroid = %v, want (12,34)", c)
	}
}

func TestContactTrackerDistanceAndCentroid(t *testing.T) {
	tr := NewContactTracker()
	tr.Add(Contact{ID: 1, X: 0, Y: 0})
	tr.Add(Contact{ID: 2, X: 30, Y: 40})
	if d := tr.Distance(); !approxEqual(d, 50, epsilon) {
		t.Errorf("Distance = %v, want 50", d)
	}
	if c := tr.Centroid(); !approxEqual(c.X, 15, epsilon) || !approxEqual(c.Y, 20, epsilon) {
		t.Errorf("Centroid = %v, want (15,20)", c)
	}
}

func TestContactTrackerUsesOldestTwo(t *testing.T) {
	tr := NewContactTracker()
	tr.Add(Contact{ID: 9, X: 0, Y: 0})
	tr.Add(Contact{ID: 2, X: 10, Y: 0})
	tr.Add(Contact{ID: 5, X: 1000, Y: 1000})
	if d := tr.Distance(); !approxEqual(d, 10, epsilon) {
		t.Errorf("Distance = %v, want 10 (third contact ignored)", d)
	}

	// Removing the oldest promotes the third contact.
	tr.Remove(9)
	want := math.Hypot(990, 1000)
	if d := tr.Distance(); !approxEqual(d, want, epsilon) {
		t.Errorf("Distance after remove = %v, want %v", d, want)
	}
}

func TestContactTrackerUpdate(t *testing.T) {
	tr := NewContactTracker()
	tr.Add(Contact{ID: 1, X: 0, Y: 0})
	if !tr.Update(Contact{ID: 1, X: 5, Y: 6}) {
		t.Fatal("Update of tracked contact reported false")
	}
	if c, _ := tr.Get(1); c.X != 5 || c.Y != 6 {
		t.Errorf("Get(1) = %+v, want (5,6)", c)
	}
	if tr.Update(Contact{ID: 2, X: 1, Y: 1}) {
		t.Error("Update of unknown contact reported true")
	}
	if tr.Count() != 1 {
		t.Errorf("Update of unknown contact added it; Count = %d", tr.Count())
	}
}

func TestContactTrackerAddReplaces(t *testing.T) {
	tr := NewContactTracker()
	tr.Add(Contact{ID: 1, X: 0, Y: 0})
	tr.Add(Contact{ID: 2, X: 10, Y: 0})
	tr.Add(Contact{ID: 1, X: 4, Y: 0})
	if tr.Count() != 2 {
		t.Fatalf("Count = %d, want 2", tr.Count())
	}
	all := tr.All()
	if all[0].ID != 1 || all[0].X != 4 {
		t.Errorf("All[0] = %+v, want id 1 at x=4 keeping its order", all[0])
	}
}

func TestContactTrackerRemoveUnknown(t *testing.T) {
	tr := NewContactTracker()
	if tr.Remove(42) {
		t.Error("Remove of unknown contact reported true")
	}
	if _, ok := tr.Get(42); ok {
		t.Error("Get of unknown contact reported ok")
	}
}

func TestContactTrackerClear(t *testing.T) {
	tr := NewContactTracker()
	tr.Add(Contact{ID: 1})
	tr.Add(Contact{ID: 2})
	tr.Clear()
	if tr.Count() != 0 {
		t.Errorf("Count after Clear = %d, want 0", tr.Count())
	}
	tr.Add(Contact{ID: 1, X: 1})
	if tr.Count() != 1 {
		t.Errorf("Count after re-add = %d, want 1", tr.Count())
	}
}

func TestContactTrackerAllIsCopy(t *testing.T) {
	tr := NewContactTracker()
	tr.Add(Contact{ID: 1, X: 1})
	all := tr.All()
	all[0].X = 99
	if c, _ := tr.Get(1); c.X != 1 {
		t.Error("mutating All() result changed tracker state")
	}
}
