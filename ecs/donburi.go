// Package ecs provides ECS adapters for sketchpad.
package ecs

import (
	"github.com/phanxgames/sketchpad"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for sketchpad gesture events.
// Subscribe to this in your ECS systems to receive tap, drag, pan and pinch events.
var GestureEventType = events.NewEventType[sketchpad.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a GestureStore backed by a Donburi world.
// Gesture events are published to GestureEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) sketchpad.GestureStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sketchpad.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
