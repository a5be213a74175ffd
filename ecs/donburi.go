// Package ecs provides ECS adapters for pickergrid.
package ecs

import (
	"github.com/phanxgames/pickergrid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// IntentEventType is the Donburi event type for grid intents.
// Subscribe to this in your ECS systems to receive activations, clears and
// expand requests.
var IntentEventType = events.NewEventType[pickergrid.Intent]()

// TopGroupEvent reports the group now at the top of the viewport. GroupID is
// empty when nothing is visible.
type TopGroupEvent struct {
	GroupID pickergrid.GroupID
}

// TopGroupEventType is the Donburi event type for top-group changes.
var TopGroupEventType = events.NewEventType[TopGroupEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an IntentSink backed by a Donburi world.
// Intents are published to IntentEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) pickergrid.IntentSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitIntent(intent pickergrid.Intent) {
	IntentEventType.Publish(s.world, intent)
}

// TopGroupPublisher returns a callback for GridView.OnVisibleTopGroupChanged
// that publishes TopGroupEvent into world.
func TopGroupPublisher(world donburi.World) func(pickergrid.GroupID) {
	return func(id pickergrid.GroupID) {
		TopGroupEventType.Publish(world, TopGroupEvent{GroupID: id})
	}
}
