package gameforge

import "github.com/phanxgames/gameforge/easing"

// LinearProcess interpolates from a start value to an end value over the
// length of its clock, shaped by an easing function. Call Update each frame
// and read Value.
type LinearProcess[T Lerpable[T]] struct {
	start T
	end   T
	clock Clock
	ease  easing.Func
}

// NewLinearProcess returns a process from start to end over length. A nil
// fn is linear.
func NewLinearProcess[T Lerpable[T]](start, end T, length Time, fn easing.Func) *LinearProcess[T] {
	p := &LinearProcess[T]{}
	p.init(start, end, length, fn)
	return p
}

func (p *LinearProcess[T]) init(start, end T, length Time, fn easing.Func) {
	if fn == nil {
		fn = easing.Linear
	}
	p.start = start
	p.end = end
	p.clock = Clock{length: length}
	p.ease = fn
}

// Reset restarts the process from the beginning.
func (p *LinearProcess[T]) Reset() { p.clock.Restart() }

// ResetLength restarts the process with a new length.
func (p *LinearProcess[T]) ResetLength(length Time) { p.clock.Reset(length) }

func (p *LinearProcess[T]) SetStart(v T)          { p.start = v }
func (p *LinearProcess[T]) SetEnd(v T)            { p.end = v }
func (p *LinearProcess[T]) SetLength(length Time) { p.clock.SetLength(length) }

// OnFinish registers fn to run when the process completes.
func (p *LinearProcess[T]) OnFinish(fn func()) { p.clock.OnFinish(fn) }

// Update advances the process by dt.
func (p *LinearProcess[T]) Update(dt Time) { p.clock.Tick(dt) }

// Finish jumps to the end. The finish callback fires if it has not already.
func (p *LinearProcess[T]) Finish() {
	p.clock.Tick(max(p.clock.Remaining(), 0))
}

func (p *LinearProcess[T]) Finished() bool    { return p.clock.Finished() }
func (p *LinearProcess[T]) Progress() float64 { return p.clock.Progress() }
func (p *LinearProcess[T]) Length() Time      { return p.clock.Length() }
func (p *LinearProcess[T]) Start() T          { return p.start }
func (p *LinearProcess[T]) End() T            { return p.end }

// Value returns the interpolated value for the current progress. Once the
// process has finished it returns End exactly.
func (p *LinearProcess[T]) Value() T {
	if p.clock.Finished() {
		return p.end
	}
	return lerp(p.start, p.end, p.clock.Progress(), p.ease)
}

// AngularProcess interpolates between two angles along the shorter arc.
type AngularProcess struct {
	LinearProcess[Angle]
}

// NewAngularProcess returns a process from start to end over length. Both
// angles are normalized into [0, 2π) and end is shifted by a full turn when
// that makes the sweep shorter, so the process never turns more than π.
// At exactly π apart the direction is left as given.
func NewAngularProcess(start, end Angle, length Time, fn easing.Func) *AngularProcess {
	p := &AngularProcess{}
	p.init(start, end, length, fn)
	return p
}

func (p *AngularProcess) init(start, end Angle, length Time, fn easing.Func) {
	start, end = start.Normalized(), end.Normalized()
	switch d := start - end; {
	case d > Pi:
		end += TwoPi
	case d < -Pi:
		end -= TwoPi
	}
	p.LinearProcess.init(start, end, length, fn)
}

// TransformProcess moves a Transform2 from start to end: position linearly,
// rotation along the shorter arc. Scale is not interpolated; Value carries
// the start transform's scale.
type TransformProcess struct {
	position LinearProcess[Vec2f]
	rotation AngularProcess
	scale    Vec2f
}

// NewTransformProcess returns a process from start to end over length.
func NewTransformProcess(start, end Transform2, length Time, fn easing.Func) *TransformProcess {
	p := &TransformProcess{scale: start.Scale}
	p.position.init(start.Position, end.Position, length, fn)
	p.rotation.init(start.Rotation, end.Rotation, length, fn)
	return p
}

func (p *TransformProcess) Reset() {
	p.position.Reset()
	p.rotation.Reset()
}

func (p *TransformProcess) ResetLength(length Time) {
	p.position.ResetLength(length)
	p.rotation.ResetLength(length)
}

// SetStart replaces the start transform, including the scale Value reports.
func (p *TransformProcess) SetStart(t Transform2) {
	p.position.SetStart(t.Position)
	p.rotation.SetStart(t.Rotation)
	p.scale = t.Scale
}

func (p *TransformProcess) SetEnd(t Transform2) {
	p.position.SetEnd(t.Position)
	p.rotation.SetEnd(t.Rotation)
}

func (p *TransformProcess) SetLength(length Time) {
	p.position.SetLength(length)
	p.rotation.SetLength(length)
}

// OnFinish registers fn to run once when the process completes. Both halves
// share a length, so the position clock decides.
func (p *TransformProcess) OnFinish(fn func()) {
	p.position.OnFinish(fn)
}

func (p *TransformProcess) Update(dt Time) {
	p.position.Update(dt)
	p.rotation.Update(dt)
}

func (p *TransformProcess) Finish() {
	p.position.Finish()
	p.rotation.Finish()
}

func (p *TransformProcess) Finished() bool {
	return p.position.Finished() && p.rotation.Finished()
}

func (p *TransformProcess) Progress() float64 { return p.position.Progress() }
func (p *TransformProcess) Length() Time      { return p.position.Length() }

func (p *TransformProcess) Start() Transform2 {
	return Transform2{Position: p.position.Start(), Rotation: p.rotation.Start(), Scale: p.scale}
}

func (p *TransformProcess) End() Transform2 {
	return Transform2{Position: p.position.End(), Rotation: p.rotation.End(), Scale: p.scale}
}

func (p *TransformProcess) Value() Transform2 {
	return Transform2{Position: p.position.Value(), Rotation: p.rotation.Value(), Scale: p.scale}
}
