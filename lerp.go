package gameforge

import (
	"errors"
	"fmt"

	"github.com/phanxgames/gameforge/easing"
)

// ErrProgressOutOfRange is returned by Lerp when the normalized time is
// outside [0, 1].
var ErrProgressOutOfRange = errors.New("gameforge: normalized time must be between 0 and 1")

// Lerpable is implemented by types that can be interpolated: Time, Angle,
// Vec2 and Float.
type Lerpable[T any] interface {
	Add(T) T
	Sub(T) T
	Scale(float64) T
}

// Float is a float64 that satisfies Lerpable, for interpolating plain
// numbers.
type Float float64

func (f Float) Add(o Float) Float     { return f + o }
func (f Float) Sub(o Float) Float     { return f - o }
func (f Float) Scale(s float64) Float { return Float(float64(f) * s) }

// Lerp interpolates from start to end at normalized time t, shaped by fn.
// A nil fn is linear.
func Lerp[T Lerpable[T]](start, end T, t float64, fn easing.Func) (T, error) {
	if !(t >= 0 && t <= 1) {
		var zero T
		return zero, fmt.Errorf("lerp at %v: %w", t, ErrProgressOutOfRange)
	}
	return lerp(start, end, t, fn), nil
}

// lerp is Lerp without the range check.
func lerp[T Lerpable[T]](start, end T, t float64, fn easing.Func) T {
	if fn == nil {
		fn = easing.Linear
	}
	return start.Add(end.Sub(start).Scale(fn(t)))
}
