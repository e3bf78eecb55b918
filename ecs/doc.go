// Package ecs provides ECS adapters for goban's board event system.
//
// The primary adapter is [NewDonburiStore], which bridges goban board events
// (clicks, hover changes, keyboard navigation) into a [Donburi] world as
// typed events. Subscribe to [BoardEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	board.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
