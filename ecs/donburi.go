// Package ecs provides ECS adapters for goban.
package ecs

import (
	"github.com/phanxgames/goban"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BoardEventType is the Donburi event type for goban board events. Subscribe
// to this in your ECS systems to receive click, hover, and keyboard events.
var BoardEventType = events.NewEventType[goban.BoardEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Board
// events are published to BoardEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) goban.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event goban.BoardEvent) {
	BoardEventType.Publish(s.world, event)
}
