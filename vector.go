package gameforge

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/floats/scalar"
)

// Number is the set of element types a Vec2 can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Vec2 is a 2D vector. Operations that need real numbers (length, rotation,
// scaling) compute in float64 and convert back to T, so integer vectors
// truncate toward zero.
type Vec2[T Number] struct {
	X, Y T
}

// Vec2f is the float vector used for positions, scales and anchors.
type Vec2f = Vec2[float64]

// Vec2i is an integer vector, typically pixel or tile coordinates.
type Vec2i = Vec2[int]

// V2 returns the float vector (x, y).
func V2(x, y float64) Vec2f {
	return Vec2f{X: x, Y: y}
}

// FromAngle returns the unit vector pointing along a.
func FromAngle(a Angle) Vec2f {
	sin, cos := math.Sincos(float64(a))
	return Vec2f{X: cos, Y: sin}
}

// ConvertVec converts the elements of v to U.
func ConvertVec[U, T Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{X: U(v.X), Y: U(v.Y)}
}

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[T]) Neg() Vec2[T]          { return Vec2[T]{-v.X, -v.Y} }

// Scale multiplies both components by f.
func (v Vec2[T]) Scale(f float64) Vec2[T] {
	return Vec2[T]{T(float64(v.X) * f), T(float64(v.Y) * f)}
}

// Mul multiplies component-wise.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X * o.X, v.Y * o.Y} }

// Div divides component-wise. Integer division by a zero component panics.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X / o.X, v.Y / o.Y} }

// DivScalar divides both components by f.
func (v Vec2[T]) DivScalar(f float64) Vec2[T] {
	return Vec2[T]{T(float64(v.X) / f), T(float64(v.Y) / f)}
}

// Length returns the Euclidean length of v.
func (v Vec2[T]) Length() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2[T]) Normalized() Vec2[T] {
	l := v.Length()
	if l == 0 {
		return Vec2[T]{}
	}
	return v.DivScalar(l)
}

// Rotated returns v rotated by a about the origin.
func (v Vec2[T]) Rotated(a Angle) Vec2[T] {
	sin, cos := math.Sincos(float64(a))
	x, y := float64(v.X), float64(v.Y)
	return Vec2[T]{T(x*cos - y*sin), T(x*sin + y*cos)}
}

// Angle returns the direction of v, measured from the positive X axis.
func (v Vec2[T]) Angle() Angle {
	return Angle(math.Atan2(float64(v.Y), float64(v.X)))
}

// Abs returns v with both components made non-negative.
func (v Vec2[T]) Abs() Vec2[T] {
	x, y := v.X, v.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return Vec2[T]{x, y}
}

func (v Vec2[T]) Dot(o Vec2[T]) T   { return v.X*o.X + v.Y*o.Y }
func (v Vec2[T]) Cross(o Vec2[T]) T { return v.X*o.Y - v.Y*o.X }

// IsZero reports whether both components are zero.
func (v Vec2[T]) IsZero() bool { return v.X == 0 && v.Y == 0 }

// ApproxEqual reports whether each component of v is within tol of o's.
func (v Vec2[T]) ApproxEqual(o Vec2[T], tol float64) bool {
	return scalar.EqualWithinAbs(float64(v.X), float64(o.X), tol) &&
		scalar.EqualWithinAbs(float64(v.Y), float64(o.Y), tol)
}

// Point truncates v to an image.Point.
func (v Vec2[T]) Point() image.Point {
	return image.Pt(int(v.X), int(v.Y))
}

// Fixed converts v to 26.6 fixed point, rounding to the nearest 1/64.
func (v Vec2[T]) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(float64(v.X)), Y: toFixed(float64(v.Y))}
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("Vec2(%v, %v)", v.X, v.Y)
}

// VecFromPoint converts an image.Point.
func VecFromPoint(p image.Point) Vec2f {
	return Vec2f{X: float64(p.X), Y: float64(p.Y)}
}

// VecFromFixed converts a 26.6 fixed point.
func VecFromFixed(p fixed.Point26_6) Vec2f {
	return Vec2f{X: fromFixed(p.X), Y: fromFixed(p.Y)}
}

func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}

func fromFixed(i fixed.Int26_6) float64 {
	return float64(i) / 64
}
