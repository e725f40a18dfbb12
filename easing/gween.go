package easing

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Curves with overshoot or bounce come from gween's ease package.
var (
	InBack       = FromTween(ease.InBack)
	OutBack      = FromTween(ease.OutBack)
	InOutBack    = FromTween(ease.InOutBack)
	InElastic    = FromTween(ease.InElastic)
	OutElastic   = FromTween(ease.OutElastic)
	InOutElastic = FromTween(ease.InOutElastic)
	InBounce     = FromTween(ease.InBounce)
	OutBounce    = FromTween(ease.OutBounce)
	InOutBounce  = FromTween(ease.InOutBounce)
)

// FromTween adapts a gween easing function, which works on
// (time, begin, change, duration) in float32, to a Func.
func FromTween(fn ease.TweenFunc) Func {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// TweenFunc adapts f for use with gween. A non-positive duration yields the
// end value.
func (f Func) TweenFunc() ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(f(float64(t/d)))
	}
}

// Tween creates a gween tween from begin to end over duration seconds,
// shaped by f.
func (f Func) Tween(begin, end, duration float32) *gween.Tween {
	return gween.New(begin, end, duration, f.TweenFunc())
}
