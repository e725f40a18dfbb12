package ecs

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/gameforge"
)

func TestNewClockEntity(t *testing.T) {
	world := donburi.NewWorld()
	e := NewClockEntity(world, 100)

	c := Clock.Get(world.Entry(e))
	if c.Length() != 100 || c.Elapsed() != 0 {
		t.Errorf("clock = %v/%v, want 0/100", c.Elapsed(), c.Length())
	}
}

func TestTickClocks(t *testing.T) {
	world := donburi.NewWorld()
	a := NewClockEntity(world, 100)
	b := NewClockEntity(world, 30)

	TickClocks(world, 40)

	if got := Clock.Get(world.Entry(a)).Elapsed(); got != 40 {
		t.Errorf("a elapsed = %v, want 40", got)
	}
	if !Clock.Get(world.Entry(b)).Finished() {
		t.Error("b should be finished")
	}
}

func TestUpdateMotionsMovesTarget(t *testing.T) {
	world := donburi.NewWorld()
	obj := gameforge.NewGameObject("obj")
	obj.Transform.Scale = gameforge.V2(3, 3)
	p := gameforge.NewTransformProcess(
		gameforge.IdentityTransform(),
		gameforge.NewTransform(gameforge.V2(10, 20), gameforge.Pi),
		100, nil)
	NewMotionEntity(world, p, obj)

	UpdateMotions(world, 50)

	if !obj.Transform.Position.ApproxEqual(gameforge.V2(5, 10), 1e-9) {
		t.Errorf("position = %v, want (5, 10)", obj.Transform.Position)
	}
	if obj.Transform.Scale != gameforge.V2(3, 3) {
		t.Errorf("scale = %v, should be untouched", obj.Transform.Scale)
	}
}

func TestUpdateMotionsPublishesOnce(t *testing.T) {
	world := donburi.NewWorld()
	p := gameforge.NewTransformProcess(
		gameforge.IdentityTransform(),
		gameforge.NewTransform(gameforge.V2(1, 0), 0),
		10, nil)
	e := NewMotionEntity(world, p, nil)

	var received []MotionFinishedEvent
	MotionFinishedEventType.Subscribe(world, func(w donburi.World, ev MotionFinishedEvent) {
		received = append(received, ev)
	})

	for range 3 {
		UpdateMotions(world, 10)
		// Events are queued until processed.
		MotionFinishedEventType.ProcessEvents(world)
	}

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if received[0].Entity != e {
		t.Errorf("event entity = %v, want %v", received[0].Entity, e)
	}
	if !received[0].Final.Position.ApproxEqual(gameforge.V2(1, 0), 1e-9) {
		t.Errorf("final = %v", received[0].Final)
	}
}

func TestUpdateMotionsNilProcess(t *testing.T) {
	world := donburi.NewWorld()
	NewMotionEntity(world, nil, gameforge.NewGameObject("obj"))
	UpdateMotions(world, 10) // must not panic
}

func TestBridgeStateMachine(t *testing.T) {
	world := donburi.NewWorld()
	m := gameforge.NewStateMachine()
	m.Push(0, gameforge.StateFunc(func() gameforge.StateID { return 1 }))
	m.Push(1, gameforge.StateFunc(func() gameforge.StateID { return gameforge.NoState }))
	BridgeStateMachine(world, "player", m)

	var received []StateChangedEvent
	StateChangedEventType.Subscribe(world, func(w donburi.World, ev StateChangedEvent) {
		received = append(received, ev)
	})

	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	StateChangedEventType.ProcessEvents(world)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if got := received[0]; got.Machine != "player" || got.From != 0 || got.To != 1 {
		t.Errorf("event = %+v", got)
	}
}
