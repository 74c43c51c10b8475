package pivotset

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Corners holds the eight corners of a box. The enumeration order is fixed:
//
//	0 (min, min, min)  4 (max, min, min)
//	1 (min, min, max)  5 (max, min, max)
//	2 (min, max, max)  6 (max, max, max)
//	3 (min, max, min)  7 (max, max, min)
//
// Tie breaks between corners always favour the lower index.
type Corners [8]mgl32.Vec3

// Bounds is an axis-aligned box in an object's local space.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyBounds returns a box that any point expands.
func EmptyBounds() Bounds {
	inf := float32(math.Inf(1))
	return Bounds{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// BoundsOf returns the bounds enclosing points, or an empty box if there are none.
func BoundsOf(points []mgl32.Vec3) Bounds {
	b := EmptyBounds()
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

func (b Bounds) IsEmpty() bool {
	return b.Max.X() < b.Min.X() || b.Max.Y() < b.Min.Y() || b.Max.Z() < b.Min.Z()
}

func (b Bounds) Extend(p mgl32.Vec3) Bounds {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
	return b
}

func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Corners enumerates the box corners in the canonical order.
func (b Bounds) Corners() Corners {
	lo, hi := b.Min, b.Max
	return Corners{
		{lo.X(), lo.Y(), lo.Z()},
		{lo.X(), lo.Y(), hi.Z()},
		{lo.X(), hi.Y(), hi.Z()},
		{lo.X(), hi.Y(), lo.Z()},
		{hi.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), hi.Z()},
		{hi.X(), hi.Y(), hi.Z()},
		{hi.X(), hi.Y(), lo.Z()},
	}
}

// Transform maps every corner through m, keeping the enumeration order.
func (c Corners) Transform(m mgl32.Mat4) Corners {
	var out Corners
	for i, p := range c {
		out[i] = m.Mul4x1(p.Vec4(1)).Vec3()
	}
	return out
}

// Center is the arithmetic mean of the corners.
func (c Corners) Center() mgl32.Vec3 {
	var sum mgl32.Vec3
	for _, p := range c {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / 8)
}

// Extent returns the smallest and largest coordinate on axis.
func (c Corners) Extent(axis int) (lo, hi float32) {
	lo, hi = c[0][axis], c[0][axis]
	for _, p := range c[1:] {
		lo = min(lo, p[axis])
		hi = max(hi, p[axis])
	}
	return lo, hi
}

// minCorner returns the first corner holding the smallest coordinate on axis.
func (c Corners) minCorner(axis int) mgl32.Vec3 {
	best := 0
	for i := 1; i < len(c); i++ {
		if c[i][axis] < c[best][axis] {
			best = i
		}
	}
	return c[best]
}

// maxCorner returns the first corner holding the largest coordinate on axis.
func (c Corners) maxCorner(axis int) mgl32.Vec3 {
	best := 0
	for i := 1; i < len(c); i++ {
		if c[i][axis] > c[best][axis] {
			best = i
		}
	}
	return c[best]
}
