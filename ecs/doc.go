// Package ecs provides ECS adapters for sketchpad's gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges gesture events
// (tap, drag, pan, pinch, gesture-end) into a [Donburi] world as typed
// events. Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	canvas.SetGestureStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
