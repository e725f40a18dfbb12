package gameforge

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transform2 places an object in 2D: a position, a rotation and a scale.
//
// The zero value has a zero scale and collapses everything to a point; start
// from [IdentityTransform] instead.
type Transform2 struct {
	Position Vec2f
	Rotation Angle
	Scale    Vec2f
}

// identityMatrix is the identity affine matrix.
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// IdentityTransform returns the transform at the origin with no rotation and
// unit scale.
func IdentityTransform() Transform2 {
	return Transform2{Scale: Vec2f{X: 1, Y: 1}}
}

// NewTransform returns a transform at pos rotated by rot, with unit scale.
func NewTransform(pos Vec2f, rot Angle) Transform2 {
	return Transform2{Position: pos, Rotation: rot, Scale: Vec2f{X: 1, Y: 1}}
}

// Mul composes t with o: positions and rotations add, scales multiply
// component-wise. This is not an affine product; a child's position is not
// rotated or scaled by its parent. Use Matrix for real affine math.
//
// IdentityTransform is the identity for Mul; the zero Transform2 is not,
// because its zero scale wipes out o's scale.
func (t Transform2) Mul(o Transform2) Transform2 {
	return Transform2{
		Position: t.Position.Add(o.Position),
		Rotation: t.Rotation + o.Rotation,
		Scale:    t.Scale.Mul(o.Scale),
	}
}

// Translate returns t moved by offset.
func (t Transform2) Translate(offset Vec2f) Transform2 {
	t.Position = t.Position.Add(offset)
	return t
}

// Rotate returns t with a added to its rotation.
func (t Transform2) Rotate(a Angle) Transform2 {
	t.Rotation += a
	return t
}

// ScaleBy returns t with its scale multiplied component-wise by factors.
func (t Transform2) ScaleBy(factors Vec2f) Transform2 {
	t.Scale = t.Scale.Mul(factors)
	return t
}

// GloballyRotated returns t with its position rotated by a about the origin.
// Rotation and scale are unchanged.
func (t Transform2) GloballyRotated(a Angle) Transform2 {
	t.Position = t.Position.Rotated(a)
	return t
}

// ApproxEqual reports whether every component of t is within tol of o's.
func (t Transform2) ApproxEqual(o Transform2, tol float64) bool {
	return t.Position.ApproxEqual(o.Position, tol) &&
		t.Rotation.ApproxEqual(o.Rotation, tol) &&
		t.Scale.ApproxEqual(o.Scale, tol)
}

// Matrix returns the affine matrix [a, b, c, d, tx, ty] that scales, then
// rotates, then translates.
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func (t Transform2) Matrix() [6]float64 {
	sin, cos := math.Sincos(float64(t.Rotation))
	sx, sy := t.Scale.X, t.Scale.Y
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, t.Position.X, t.Position.Y}
}

// TransformPoint maps a local point through t's matrix.
func (t Transform2) TransformPoint(p Vec2f) Vec2f {
	x, y := transformPoint(t.Matrix(), p.X, p.Y)
	return Vec2f{X: x, Y: y}
}

// InverseTransformPoint maps a point back into t's local space. A singular
// transform (zero scale) maps through the identity.
func (t Transform2) InverseTransformPoint(p Vec2f) Vec2f {
	x, y := transformPoint(invertAffine(t.Matrix()), p.X, p.Y)
	return Vec2f{X: x, Y: y}
}

// GeoM returns t as an ebiten.GeoM, ready for DrawImageOptions.
func (t Transform2) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(t.Scale.X, t.Scale.Y)
	g.Rotate(float64(t.Rotation))
	g.Translate(t.Position.X, t.Position.Y)
	return g
}

func (t Transform2) String() string {
	return fmt.Sprintf("Transform(Position: %v, Rotation: %v, Scale: %v)", t.Position, t.Rotation, t.Scale)
}

// multiplyAffine multiplies two 2D affine matrices: result = p * c.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
