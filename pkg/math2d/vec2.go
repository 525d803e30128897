// Package math2d provides 2D math primitives for pixmap.
package math2d

import "math"

// MaxCoord bounds the integer coordinates produced by Truncate.
// Anything further out is far off any realistic canvas.
const MaxCoord = 1 << 24

// Vec2 represents a 2D point or direction.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Splat returns a vector with both components set to v.
func Splat(v float64) Vec2 {
	return Vec2{v, v}
}

// Zero2 returns the zero vector.
func Zero2() Vec2 {
	return Vec2{}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Div returns the scalar division a / s.
func (a Vec2) Div(s float64) Vec2 {
	return Vec2{a.X / s, a.Y / s}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length (magnitude) of the vector.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.Dot(a))
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec2) LenSq() float64 {
	return a.Dot(a)
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to itself.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return a.Div(l)
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
	}
}

// Floor returns the component-wise floor.
func (a Vec2) Floor() Vec2 {
	return Vec2{math.Floor(a.X), math.Floor(a.Y)}
}

// Trunc truncates both components toward zero, see Truncate.
func (a Vec2) Trunc() (x, y int) {
	return Truncate(a.X), Truncate(a.Y)
}

// Truncate converts f to an int by truncating toward zero.
// Values beyond ±MaxCoord saturate and NaN becomes 0, so the result is
// always safe to use as a pixel coordinate or loop bound.
func Truncate(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= MaxCoord:
		return MaxCoord
	case f <= -MaxCoord:
		return -MaxCoord
	}
	return int(f)
}
