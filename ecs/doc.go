// Package ecs provides ECS adapters for pickergrid's intent system.
//
// The primary adapter is [NewDonburiSink], which bridges grid intents (item
// activation, group clear, group expand) into a [Donburi] world as typed
// events. Subscribe to [IntentEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	grid.SetIntentSink(sink)
//	grid.OnVisibleTopGroupChanged(ecs.TopGroupPublisher(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
