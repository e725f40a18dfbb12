// Package ecs provides ECS adapters for gameforge's clocks, processes and
// state machines.
//
// Clocks and motions are stored as [Donburi] components and advanced by
// [TickClocks] and [UpdateMotions]. Completion and state transitions are
// published as typed Donburi events:
//
//	ecs.BridgeStateMachine(world, "player", machine)
//	ecs.StateChangedEventType.Subscribe(world, onStateChanged)
//
//	// each frame
//	ecs.UpdateMotions(world, dt)
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
