// Package easing provides shaping functions for interpolation.
//
// Each function maps normalized time t in [0, 1] to a factor. Most curves
// stay within [0, 1]; Back and Elastic overshoot. All of them return 0 at
// t=0 and 1 at t=1.
package easing

import "math"

// Func maps normalized time to an interpolation factor.
type Func func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

func InQuad(t float64) float64  { return t * t }
func OutQuad(t float64) float64 { return t * (2 - t) }

func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func InCubic(t float64) float64 { return t * t * t }

func OutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return (t-1)*(2*t-2)*(2*t-2) + 1
}

func InQuart(t float64) float64 { return t * t * t * t }

func OutQuart(t float64) float64 {
	t--
	return 1 - t*t*t*t
}

func InOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	t--
	return 1 - 8*t*t*t*t
}

func InQuint(t float64) float64 { return t * t * t * t * t }

func OutQuint(t float64) float64 {
	t--
	return 1 + t*t*t*t*t
}

func InOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	t--
	return 1 + 16*t*t*t*t*t
}

func InSine(t float64) float64    { return 1 - math.Cos(t*math.Pi/2) }
func OutSine(t float64) float64   { return math.Sin(t * math.Pi / 2) }
func InOutSine(t float64) float64 { return 0.5 * (1 - math.Cos(t*math.Pi)) }

// InExpo is exactly 0 at t=0; the formula alone would give 2^-10.
func InExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

// OutExpo is exactly 1 at t=1.
func OutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func InOutExpo(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return 0.5 * math.Pow(2, 20*t-10)
	default:
		return 1 - 0.5*math.Pow(2, -20*t+10)
	}
}

func InCirc(t float64) float64  { return 1 - math.Sqrt(1-t*t) }
func OutCirc(t float64) float64 { return math.Sqrt((2 - t) * t) }

func InOutCirc(t float64) float64 {
	if t < 0.5 {
		return 0.5 * (1 - math.Sqrt(1-4*t*t))
	}
	return 0.5 * (math.Sqrt(-((2*t-3)*(2*t-1))) + 1)
}
