package gameforge

import "github.com/phanxgames/gameforge/easing"

// PositionSolver is a component that moves its owner toward a target
// transform. Position and rotation are eased; the owner's scale is left
// alone.
//
//	solver := &gameforge.PositionSolver{}
//	obj.AddComponent(solver)
//	solver.SetTarget(gameforge.NewTransform(gameforge.V2(200, 80), 0), gameforge.Second, easing.OutQuad)
type PositionSolver struct {
	owner    *GameObject
	process  *TransformProcess
	onArrive func()
}

// Attach implements Attacher.
func (s *PositionSolver) Attach(owner *GameObject) {
	s.owner = owner
}

// SetTarget starts a move from the owner's current transform to target over
// duration, replacing any move in progress. A nil fn is linear.
func (s *PositionSolver) SetTarget(target Transform2, duration Time, fn easing.Func) {
	if s.owner == nil {
		panic("gameforge: PositionSolver used before being added to a GameObject")
	}
	s.process = NewTransformProcess(s.owner.Transform, target, duration, fn)
	if s.onArrive != nil {
		s.process.OnFinish(s.onArrive)
	}
}

// OnArrive registers fn to run once each time a move completes.
func (s *PositionSolver) OnArrive(fn func()) {
	s.onArrive = fn
	if s.process != nil {
		s.process.OnFinish(fn)
	}
}

// Done reports whether there is no move in progress.
func (s *PositionSolver) Done() bool {
	return s.process == nil || s.process.Finished()
}

// Update implements Component.
func (s *PositionSolver) Update(dt Time) {
	if s.process == nil {
		return
	}
	s.process.Update(dt)
	v := s.process.Value()
	s.owner.Transform.Position = v.Position
	s.owner.Transform.Rotation = v.Rotation
}
