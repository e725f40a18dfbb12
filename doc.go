// Package gameforge is a small 2D game-math and timing toolkit for
// [Ebitengine] games.
//
// Gameforge provides the value types (time, angle, vector, transform, box),
// eased interpolation processes driven by clocks, a minimal state machine,
// and an object/component tree that most 2D games end up writing by hand.
// It does no rendering of its own.
//
// # Quick start
//
// Every process is ticked by the caller with a frame delta. The simplest
// driver is [Loop], which ticks a tree and a set of state machines from
// inside your [ebiten.Game] Update method:
//
//	root := gameforge.NewGameObject("root")
//	loop := &gameforge.Loop{Root: root}
//
//	func (g *Game) Update() error { return g.loop.Update() }
//
// # Processes
//
// A [Clock] counts elapsed [Time] against a length. A [LinearProcess] reads
// the clock's normalized progress, shapes it with an easing function from
// the [easing] package, and interpolates between two values:
//
//	p := gameforge.NewLinearProcess(gameforge.V2(0, 0), gameforge.V2(100, 0),
//		500*gameforge.Millisecond, easing.OutCubic)
//	p.Update(dt)
//	pos := p.Value()
//
// [AngularProcess] always sweeps the shorter arc between two angles, and
// [TransformProcess] interpolates position and rotation of a [Transform2]
// together.
//
// # State machines
//
// A [StateMachine] holds states keyed by [StateID]. A state's Update returns
// the id it wants to switch to, or [NoState]. Triggers registered with
// [StateMachine.AddTrigger] force transitions when their predicate holds.
//
// # Object tree
//
// A [GameObject] owns components and children. [GameObject.Update]
// recomputes global transforms for the whole subtree before any component
// runs, so components always see the current frame's placement.
// [PositionSolver] is a component that moves its owner with a
// [TransformProcess].
//
// ECS integration (via [Donburi]) lives in the gameforge/ecs module.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package gameforge
