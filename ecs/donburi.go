package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/gameforge"
)

// Clock is a component holding a gameforge.Clock.
var Clock = donburi.NewComponentType[gameforge.Clock]()

// MotionData moves Target with Process. Target may be nil, in which case the
// process is only advanced.
type MotionData struct {
	Process *gameforge.TransformProcess
	Target  *gameforge.GameObject

	reported bool
}

// Motion is a component holding a MotionData.
var Motion = donburi.NewComponentType[MotionData]()

// MotionFinishedEvent is published once when a motion completes.
type MotionFinishedEvent struct {
	Entity donburi.Entity
	Final  gameforge.Transform2
}

// MotionFinishedEventType is the Donburi event type for finished motions.
var MotionFinishedEventType = events.NewEventType[MotionFinishedEvent]()

// StateChangedEvent is published for every switch of a bridged state machine.
type StateChangedEvent struct {
	Machine string
	From    gameforge.StateID
	To      gameforge.StateID
}

// StateChangedEventType is the Donburi event type for state machine switches.
var StateChangedEventType = events.NewEventType[StateChangedEvent]()

var (
	clockQuery  = donburi.NewQuery(filter.Contains(Clock))
	motionQuery = donburi.NewQuery(filter.Contains(Motion))
)

// NewClockEntity creates an entity with a Clock component of the given length.
func NewClockEntity(world donburi.World, length gameforge.Time) donburi.Entity {
	e := world.Create(Clock)
	Clock.Get(world.Entry(e)).Reset(length)
	return e
}

// NewMotionEntity creates an entity with a Motion component.
func NewMotionEntity(world donburi.World, process *gameforge.TransformProcess, target *gameforge.GameObject) donburi.Entity {
	e := world.Create(Motion)
	Motion.SetValue(world.Entry(e), MotionData{Process: process, Target: target})
	return e
}

// TickClocks advances every Clock component by dt.
func TickClocks(world donburi.World, dt gameforge.Time) {
	clockQuery.Each(world, func(entry *donburi.Entry) {
		Clock.Get(entry).Tick(dt)
	})
}

// UpdateMotions advances every Motion component by dt, writes the position
// and rotation into its target, and publishes a MotionFinishedEvent the
// first time a motion is found finished.
func UpdateMotions(world donburi.World, dt gameforge.Time) {
	motionQuery.Each(world, func(entry *donburi.Entry) {
		m := Motion.Get(entry)
		if m.Process == nil {
			return
		}
		m.Process.Update(dt)
		v := m.Process.Value()
		if m.Target != nil {
			m.Target.Transform.Position = v.Position
			m.Target.Transform.Rotation = v.Rotation
		}
		if m.Process.Finished() && !m.reported {
			m.reported = true
			MotionFinishedEventType.Publish(world, MotionFinishedEvent{Entity: entry.Entity(), Final: v})
		}
	})
}

// BridgeStateMachine publishes a StateChangedEvent to world for every switch
// of m, tagged with name. It replaces any transition observer already set on
// m.
func BridgeStateMachine(world donburi.World, name string, m *gameforge.StateMachine) {
	m.OnTransition(func(from, to gameforge.StateID) {
		StateChangedEventType.Publish(world, StateChangedEvent{Machine: name, From: from, To: to})
	})
}
