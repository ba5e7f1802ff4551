package geometry

import "math"

// Point represents a 3D point as an immutable coordinate triple
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new 3D point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return Point{
		X: p.X + other.X,
		Y: p.Y + other.Y,
		Z: p.Z + other.Z,
	}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{
		X: p.X - other.X,
		Y: p.Y - other.Y,
		Z: p.Z - other.Z,
	}
}

// Mul multiplies the point by a scalar
func (p Point) Mul(scalar float64) Point {
	return Point{
		X: p.X * scalar,
		Y: p.Y * scalar,
		Z: p.Z * scalar,
	}
}

// Length returns the distance from the origin
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Min returns a point with the minimum components of two points
func (p Point) Min(other Point) Point {
	return Point{
		X: math.Min(p.X, other.X),
		Y: math.Min(p.Y, other.Y),
		Z: math.Min(p.Z, other.Z),
	}
}

// Max returns a point with the maximum components of two points
func (p Point) Max(other Point) Point {
	return Point{
		X: math.Max(p.X, other.X),
		Y: math.Max(p.Y, other.Y),
		Z: math.Max(p.Z, other.Z),
	}
}

// TriangleArea returns the area of the triangle spanned by a, b and c,
// computed from the three side lengths with Heron's formula. The argument
// of the square root is taken as an absolute value: near-degenerate
// triangles can produce a tiny negative value through floating-point
// rounding, and those must yield an area of roughly zero rather than NaN.
func TriangleArea(a, b, c Point) float64 {
	ab := a.Distance(b)
	bc := b.Distance(c)
	ca := c.Distance(a)
	s := (ab + bc + ca) / 2.0
	return math.Sqrt(math.Abs(s * (s - ab) * (s - bc) * (s - ca)))
}
