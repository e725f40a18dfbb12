package gameforge

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/math/fixed"
)

// Aabb is an axis-aligned box stored as a center and a size. Y grows
// downward, so Top is the smaller Y.
type Aabb struct {
	Center Vec2f
	Size   Vec2f
}

// NewAabb returns a box centered on (x, y) with the given width and height.
func NewAabb(x, y, w, h float64) Aabb {
	return Aabb{Center: Vec2f{X: x, Y: y}, Size: Vec2f{X: w, Y: h}}
}

// AabbFromRectangle converts an image.Rectangle.
func AabbFromRectangle(r image.Rectangle) Aabb {
	w, h := float64(r.Dx()), float64(r.Dy())
	return NewAabb(float64(r.Min.X)+w/2, float64(r.Min.Y)+h/2, w, h)
}

func (b Aabb) Left() float64   { return b.Center.X - b.Size.X/2 }
func (b Aabb) Right() float64  { return b.Center.X + b.Size.X/2 }
func (b Aabb) Top() float64    { return b.Center.Y - b.Size.Y/2 }
func (b Aabb) Bottom() float64 { return b.Center.Y + b.Size.Y/2 }
func (b Aabb) Width() float64  { return b.Size.X }
func (b Aabb) Height() float64 { return b.Size.Y }

// SetLeft moves the box horizontally so its left edge is at x.
func (b *Aabb) SetLeft(x float64) { b.Center.X = x + b.Size.X/2 }

// SetRight moves the box horizontally so its right edge is at x.
func (b *Aabb) SetRight(x float64) { b.Center.X = x - b.Size.X/2 }

// SetTop moves the box vertically so its top edge is at y.
func (b *Aabb) SetTop(y float64) { b.Center.Y = y + b.Size.Y/2 }

// SetBottom moves the box vertically so its bottom edge is at y.
func (b *Aabb) SetBottom(y float64) { b.Center.Y = y - b.Size.Y/2 }

// Intersects reports whether b and o overlap. Boxes that only share an edge
// do not intersect.
func (b Aabb) Intersects(o Aabb) bool {
	return b.Left() < o.Right() && b.Right() > o.Left() &&
		b.Top() < o.Bottom() && b.Bottom() > o.Top()
}

// Contains reports whether p lies inside b. Points on the edge are inside.
func (b Aabb) Contains(p Vec2f) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Rectangle converts b to an image.Rectangle, flooring the min corner and
// ceiling the max corner so the result covers b.
func (b Aabb) Rectangle() image.Rectangle {
	return image.Rect(
		int(math.Floor(b.Left())), int(math.Floor(b.Top())),
		int(math.Ceil(b.Right())), int(math.Ceil(b.Bottom())),
	)
}

// Fixed converts b to a 26.6 fixed-point rectangle.
func (b Aabb) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: toFixed(b.Left()), Y: toFixed(b.Top())},
		Max: fixed.Point26_6{X: toFixed(b.Right()), Y: toFixed(b.Bottom())},
	}
}

func (b Aabb) String() string {
	return fmt.Sprintf("AABB(Position: %v, Dimensions: %v)", b.Center, b.Size)
}
