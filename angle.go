package gameforge

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Angle is an angle in radians.
type Angle float64

const (
	Pi    Angle = math.Pi
	TwoPi Angle = 2 * math.Pi
)

// Degrees returns an Angle of deg degrees.
func Degrees(deg float64) Angle { return Angle(deg * math.Pi / 180) }

// Radians returns an Angle of rad radians.
func Radians(rad float64) Angle { return Angle(rad) }

// Degrees returns a in degrees.
func (a Angle) Degrees() float64 { return float64(a) * 180 / math.Pi }

// Radians returns a in radians.
func (a Angle) Radians() float64 { return float64(a) }

func (a Angle) Sin() float64 { return math.Sin(float64(a)) }
func (a Angle) Cos() float64 { return math.Cos(float64(a)) }
func (a Angle) Tan() float64 { return math.Tan(float64(a)) }

// Mod returns the floating-point remainder of a/m. The result has the sign
// of a, so Mod never lifts a negative angle into the positive range; use
// Normalized for that.
func (a Angle) Mod(m Angle) Angle {
	return Angle(math.Mod(float64(a), float64(m)))
}

// Normalized reduces a into [0, 2π).
func (a Angle) Normalized() Angle {
	r := a.Mod(TwoPi)
	if r < 0 {
		r += TwoPi
	}
	// -tiny + 2π can round up to exactly 2π.
	if r >= TwoPi {
		r = 0
	}
	return r
}

// Add returns a+o.
func (a Angle) Add(o Angle) Angle { return a + o }

// Sub returns a-o.
func (a Angle) Sub(o Angle) Angle { return a - o }

// Scale returns a multiplied by f.
func (a Angle) Scale(f float64) Angle { return Angle(float64(a) * f) }

// ApproxEqual reports whether a and o differ by at most tol radians.
func (a Angle) ApproxEqual(o Angle, tol float64) bool {
	return scalar.EqualWithinAbs(float64(a), float64(o), tol)
}

// String formats a in degrees, e.g. "90deg".
func (a Angle) String() string {
	return strconv.FormatFloat(a.Degrees(), 'f', -1, 64) + "deg"
}
