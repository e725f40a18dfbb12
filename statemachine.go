package gameforge

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

// StateID identifies a state within a StateMachine.
type StateID int

// NoState is returned by State.Update when the state wants to stay current,
// and by StateMachine.CurrentID when the machine is empty.
const NoState StateID = -1

// ErrUnknownState is returned when switching to an id that was never pushed.
var ErrUnknownState = errors.New("gameforge: unknown state")

// State is one state of a StateMachine. Update runs once per machine update
// while the state is current and returns the id to switch to, or NoState.
//
// A state may also implement Enterer and Exiter to hook transitions.
type State interface {
	Update() StateID
}

// Enterer is implemented by states that run code when they become current.
type Enterer interface {
	Enter()
}

// Exiter is implemented by states that run code when they stop being current.
type Exiter interface {
	Exit()
}

// StateFunc adapts an ordinary function to the State interface.
type StateFunc func() StateID

func (f StateFunc) Update() StateID { return f() }

type stateEntry struct {
	state   State
	blocked []StateID
}

type trigger struct {
	target StateID
	cond   func() bool
}

// StateMachine is a push-based finite state machine. States are owned by the
// machine once pushed, keyed by id.
type StateMachine struct {
	states       map[StateID]*stateEntry
	current      StateID
	triggers     []trigger
	onTransition func(from, to StateID)
	debug        bool
}

// NewStateMachine returns an empty machine.
func NewStateMachine() *StateMachine {
	return &StateMachine{
		states:  make(map[StateID]*stateEntry),
		current: NoState,
	}
}

// Push adds s under id, replacing any state already stored there. The first
// state pushed becomes current and is entered immediately.
func (m *StateMachine) Push(id StateID, s State) {
	if s == nil {
		panic("gameforge: cannot push nil state")
	}
	if id == NoState {
		panic(fmt.Sprintf("gameforge: state id %d is reserved", NoState))
	}
	if e, ok := m.states[id]; ok {
		e.state = s
	} else {
		m.states[id] = &stateEntry{state: s}
	}
	if m.current == NoState {
		m.current = id
		m.logf("enter %d", id)
		enter(s)
	}
}

// Block stops the triggers targeting any of triggerIDs from firing while
// state id is current. The state must already be pushed.
func (m *StateMachine) Block(id StateID, triggerIDs ...StateID) error {
	e, ok := m.states[id]
	if !ok {
		return fmt.Errorf("block triggers on state %d: %w", id, ErrUnknownState)
	}
	e.blocked = append(e.blocked, triggerIDs...)
	return nil
}

// IsBlocked reports whether the current state blocks triggers targeting id.
// An empty machine blocks nothing.
func (m *StateMachine) IsBlocked(id StateID) bool {
	e, ok := m.states[m.current]
	if !ok {
		return false
	}
	return slices.Contains(e.blocked, id)
}

// AddTrigger registers a condition that switches the machine to target when
// it returns true. Triggers are evaluated in registration order.
func (m *StateMachine) AddTrigger(target StateID, cond func() bool) {
	m.triggers = append(m.triggers, trigger{target: target, cond: cond})
}

// OnTransition registers fn to observe every state switch, after the old
// state has exited and before the new one is entered.
func (m *StateMachine) OnTransition(fn func(from, to StateID)) {
	m.onTransition = fn
}

// SetDebug enables transition logging on stderr for this machine.
func (m *StateMachine) SetDebug(enabled bool) {
	m.debug = enabled
}

// SetState switches to state id unconditionally: the current state exits,
// then the new state enters. Blocking does not apply.
func (m *StateMachine) SetState(id StateID) error {
	next, ok := m.states[id]
	if !ok {
		return fmt.Errorf("set state %d: %w", id, ErrUnknownState)
	}
	from := m.current
	if cur, ok := m.states[from]; ok {
		exit(cur.state)
	}
	m.current = id
	m.logf("%d -> %d", from, id)
	if m.onTransition != nil {
		m.onTransition(from, id)
	}
	enter(next.state)
	return nil
}

// Current returns the current state's id, or false if nothing was pushed.
func (m *StateMachine) Current() (StateID, bool) {
	return m.current, m.current != NoState
}

// CurrentID returns the current state's id, or NoState.
func (m *StateMachine) CurrentID() StateID {
	return m.current
}

// State returns the state stored under id.
func (m *StateMachine) State(id StateID) (State, bool) {
	e, ok := m.states[id]
	if !ok {
		return nil, false
	}
	return e.state, true
}

// Len returns the number of pushed states.
func (m *StateMachine) Len() int {
	return len(m.states)
}

// Update runs one step. The first trigger whose target is not the current
// state, is not blocked by it, and whose condition holds switches the
// machine; no further triggers are checked. Then the current state updates,
// and if it returns an id other than NoState the machine switches to it.
// Update does nothing on an empty machine.
func (m *StateMachine) Update() error {
	if m.current == NoState {
		return nil
	}
	for _, t := range m.triggers {
		if t.target == m.current || m.IsBlocked(t.target) || !t.cond() {
			continue
		}
		if err := m.SetState(t.target); err != nil {
			return fmt.Errorf("trigger: %w", err)
		}
		break
	}

	next := m.states[m.current].state.Update()
	if next == NoState {
		return nil
	}
	if _, ok := m.states[next]; !ok {
		log.Printf("gameforge: state %d requested unknown state %d", m.current, next)
		return fmt.Errorf("state %d: set state %d: %w", m.current, next, ErrUnknownState)
	}
	return m.SetState(next)
}

func (m *StateMachine) logf(format string, args ...any) {
	if m.debug || globalDebug {
		debugf("state machine: "+format, args...)
	}
}

func enter(s State) {
	if e, ok := s.(Enterer); ok {
		e.Enter()
	}
}

func exit(s State) {
	if e, ok := s.(Exiter); ok {
		e.Exit()
	}
}
