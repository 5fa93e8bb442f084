// Package geom provides the 2D vector and angle primitives used by the
// fence layout engine. All functions are pure; coordinates are in mm.
package geom

import "math"

// Point represents a 2D point or vector in mm.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a convenience constructor.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the scalar 2D cross product.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the magnitude of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector; this is a defined
// degenerate case, not an error.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// RotateAround rotates p about center by angleRad (counter-clockwise).
func RotateAround(p, center Point, angleRad float64) Point {
	sin, cos := math.Sincos(angleRad)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// AngleAtVertex returns the unsigned interior angle in degrees at vertex i
// of the polygon. The acos argument is clamped to [-1, 1] to guard against
// floating-point domain errors on near-collinear vertices.
func AngleAtVertex(polygon []Point, i int) float64 {
	n := len(polygon)
	if n < 3 {
		return 0
	}
	prev := polygon[(i-1+n)%n]
	curr := polygon[i%n]
	next := polygon[(i+1)%n]

	v1 := prev.Sub(curr).Normalize()
	v2 := next.Sub(curr).Normalize()

	d := v1.Dot(v2)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d) * 180 / math.Pi
}

// DirectionAngle returns the angle of the vector from a to b, normalized
// to [0, 2π).
func DirectionAngle(a, b Point) float64 {
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// AngularDifference reduces the absolute difference between two direction
// angles to [0, π].
func AngularDifference(a1, a2 float64) float64 {
	diff := math.Abs(a1 - a2)
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	return diff
}

// Lerp linearly interpolates between a and b at parameter t.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
