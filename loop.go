package gameforge

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameTime returns the length of one Ebitengine tick at the current TPS.
// Under ebiten.SyncWithFPS the TPS is not fixed and FrameTime falls back to
// 60 ticks per second.
func FrameTime() Time {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return Second / Time(tps)
}

// Loop ticks an object tree and a set of state machines once per frame.
// Embed it in your ebiten.Game, or call Update from Game.Update:
//
//	func (g *Game) Update() error { return g.loop.Update() }
type Loop struct {
	Root     *GameObject
	Machines []*StateMachine

	// Step, when non-zero, replaces FrameTime as the per-frame delta.
	Step Time

	// Paused skips updates entirely.
	Paused bool

	elapsed Time
	frames  int
}

// Update advances the tree by one frame, then each state machine in order.
// It stops at the first state machine error.
func (l *Loop) Update() error {
	if l.Paused {
		return nil
	}
	dt := l.Step
	if dt == 0 {
		dt = FrameTime()
	}
	if l.Root != nil {
		l.Root.Update(dt)
	}
	for i, m := range l.Machines {
		if err := m.Update(); err != nil {
			return fmt.Errorf("loop frame %d: machine %d: %w", l.frames, i, err)
		}
	}
	l.elapsed += dt
	l.frames++
	return nil
}

// Elapsed returns the total game time Update has advanced.
func (l *Loop) Elapsed() Time { return l.elapsed }

// Frames returns the number of frames Update has run.
func (l *Loop) Frames() int { return l.frames }
