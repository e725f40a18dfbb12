package gameforge

import (
	"errors"
	"testing"
)

// recState records hook calls into a shared log and returns next from Update.
type recState struct {
	name    string
	log     *[]string
	next    StateID
	updates int
}

func (s *recState) Enter() { *s.log = append(*s.log, s.name+".enter") }
func (s *recState) Exit()  { *s.log = append(*s.log, s.name+".exit") }

func (s *recState) Update() StateID {
	s.updates++
	*s.log = append(*s.log, s.name+".update")
	next := s.next
	s.next = NoState
	return next
}

const (
	idleID StateID = iota
	walkID
	jumpID
)

func newRecMachine() (*StateMachine, map[StateID]*recState, *[]string) {
	var log []string
	states := map[StateID]*recState{
		idleID: {name: "idle", log: &log, next: NoState},
		walkID: {name: "walk", log: &log, next: NoState},
		jumpID: {name: "jump", log: &log, next: NoState},
	}
	m := NewStateMachine()
	m.Push(idleID, states[idleID])
	m.Push(walkID, states[walkID])
	m.Push(jumpID, states[jumpID])
	return m, states, &log
}

func assertLog(t *testing.T, got *[]string, want ...string) {
	t.Helper()
	diff(t, want, *got)
	*got = (*got)[:0]
}

func TestPushFirstStateBecomesCurrent(t *testing.T) {
	m := NewStateMachine()
	if _, ok := m.Current(); ok {
		t.Fatal("empty machine should have no current state")
	}
	if m.CurrentID() != NoState {
		t.Errorf("CurrentID = %d, want NoState", m.CurrentID())
	}

	var log []string
	m.Push(idleID, &recState{name: "idle", log: &log, next: NoState})
	m.Push(walkID, &recState{name: "walk", log: &log, next: NoState})

	if id, ok := m.Current(); !ok || id != idleID {
		t.Errorf("Current = %d, %v; want idle", id, ok)
	}
	assertLog(t, &log, "idle.enter")
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
}

func TestSetStateExitsThenEnters(t *testing.T) {
	m, _, log := newRecMachine()
	*log = (*log)[:0]

	if err := m.SetState(walkID); err != nil {
		t.Fatal(err)
	}
	assertLog(t, log, "idle.exit", "walk.enter")
	if m.CurrentID() != walkID {
		t.Errorf("CurrentID = %d, want walk", m.CurrentID())
	}
}

func TestSetStateUnknown(t *testing.T) {
	m, _, _ := newRecMachine()
	err := m.SetState(42)
	if !errors.Is(err, ErrUnknownState) {
		t.Errorf("err = %v, want ErrUnknownState", err)
	}
	if m.CurrentID() != idleID {
		t.Error("failed SetState should not change the current state")
	}
}

func TestUpdateEmptyMachineIsNoop(t *testing.T) {
	m := NewStateMachine()
	fired := false
	m.AddTrigger(0, func() bool { fired = true; return true })
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	if fired {
		t.Error("triggers should not be evaluated on an empty machine")
	}
}

func TestSelfRequestedTransition(t *testing.T) {
	m, states, log := newRecMachine()
	*log = (*log)[:0]

	states[idleID].next = jumpID
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	assertLog(t, log, "idle.update", "idle.exit", "jump.enter")
	if m.CurrentID() != jumpID {
		t.Errorf("CurrentID = %d, want jump", m.CurrentID())
	}

	// The request is consumed: the next update stays in jump.
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	assertLog(t, log, "jump.update")
}

func TestSelfRequestedUnknownState(t *testing.T) {
	m := NewStateMachine()
	m.Push(idleID, StateFunc(func() StateID { return 99 }))
	if err := m.Update(); !errors.Is(err, ErrUnknownState) {
		t.Errorf("err = %v, want ErrUnknownState", err)
	}
	if m.CurrentID() != idleID {
		t.Error("current state should not change")
	}
}

func TestTriggerFiresBeforeStateUpdate(t *testing.T) {
	m, _, log := newRecMachine()
	*log = (*log)[:0]

	m.AddTrigger(walkID, func() bool { return true })
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	// The new state is the one that updates this tick.
	assertLog(t, log, "idle.exit", "walk.enter", "walk.update")
}

func TestTriggersEvaluatedInOrderFirstWins(t *testing.T) {
	m, _, _ := newRecMachine()
	var evaluated []StateID
	m.AddTrigger(walkID, func() bool { evaluated = append(evaluated, walkID); return false })
	m.AddTrigger(jumpID, func() bool { evaluated = append(evaluated, jumpID); return true })
	m.AddTrigger(walkID, func() bool { evaluated = append(evaluated, -100); return true })

	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	diff(t, []StateID{walkID, jumpID}, evaluated)
	if m.CurrentID() != jumpID {
		t.Errorf("CurrentID = %d, want jump", m.CurrentID())
	}
}

func TestTriggerTargetingCurrentNeverFires(t *testing.T) {
	m, states, log := newRecMachine()
	*log = (*log)[:0]

	evaluated := false
	m.AddTrigger(idleID, func() bool { evaluated = true; return true })
	for i := 0; i < 3; i++ {
		if err := m.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if evaluated {
		t.Error("self-targeting trigger predicate should not be evaluated")
	}
	if states[idleID].updates != 3 {
		t.Errorf("idle updates = %d, want 3", states[idleID].updates)
	}
	assertLog(t, log, "idle.update", "idle.update", "idle.update")
}

func TestBlockedTriggerNeverFires(t *testing.T) {
	m, _, _ := newRecMachine()
	if err := m.Block(idleID, jumpID); err != nil {
		t.Fatal(err)
	}
	m.AddTrigger(jumpID, func() bool { return true })

	for i := 0; i < 3; i++ {
		if err := m.Update(); err != nil {
			t.Fatal(err)
		}
		if m.CurrentID() != idleID {
			t.Fatalf("blocked trigger fired on update %d", i)
		}
	}
	if !m.IsBlocked(jumpID) || m.IsBlocked(walkID) {
		t.Error("IsBlocked mismatch")
	}

	// Blocking is per state: from walk the trigger fires.
	if err := m.SetState(walkID); err != nil {
		t.Fatal(err)
	}
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	if m.CurrentID() != jumpID {
		t.Errorf("CurrentID = %d, want jump", m.CurrentID())
	}
}

func TestSetStateIgnoresBlocking(t *testing.T) {
	m, _, _ := newRecMachine()
	_ = m.Block(idleID, jumpID)
	if err := m.SetState(jumpID); err != nil {
		t.Fatal(err)
	}
	if m.CurrentID() != jumpID {
		t.Error("SetState should ignore the blocked list")
	}
}

func TestBlockUnknownState(t *testing.T) {
	m := NewStateMachine()
	if err := m.Block(5, 1); !errors.Is(err, ErrUnknownState) {
		t.Errorf("err = %v, want ErrUnknownState", err)
	}
	if m.IsBlocked(1) {
		t.Error("empty machine should block nothing")
	}
}

func TestOnTransition(t *testing.T) {
	m, _, _ := newRecMachine()
	type edge struct{ From, To StateID }
	var edges []edge
	m.OnTransition(func(from, to StateID) { edges = append(edges, edge{from, to}) })

	_ = m.SetState(walkID)
	m.AddTrigger(jumpID, func() bool { return true })
	_ = m.Update()
	diff(t, []edge{{idleID, walkID}, {walkID, jumpID}}, edges)
}

func TestStateFuncHasNoHooks(t *testing.T) {
	m := NewStateMachine()
	calls := 0
	m.Push(0, StateFunc(func() StateID { calls++; return NoState }))
	m.Push(1, StateFunc(func() StateID { return NoState }))
	_ = m.Update()
	_ = m.SetState(1)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if s, ok := m.State(0); !ok || s == nil {
		t.Error("State(0) should return the pushed state")
	}
}

func TestPushReservedIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for NoState id")
		}
	}()
	NewStateMachine().Push(NoState, StateFunc(func() StateID { return NoState }))
}
