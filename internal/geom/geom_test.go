package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalize(t *testing.T) {
	v := Pt(3, 4).Normalize()
	if !almostEqual(v.X, 0.6) || !almostEqual(v.Y, 0.8) {
		t.Errorf("expected (0.6, 0.8), got (%v, %v)", v.X, v.Y)
	}
	if !almostEqual(v.Length(), 1) {
		t.Errorf("expected unit length, got %v", v.Length())
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	v := Pt(0, 0).Normalize()
	if v.X != 0 || v.Y != 0 {
		t.Errorf("zero vector must normalize to zero, got (%v, %v)", v.X, v.Y)
	}
}

func TestDotCross(t *testing.T) {
	a := Pt(1, 0)
	b := Pt(0, 1)
	if a.Dot(b) != 0 {
		t.Errorf("perpendicular dot should be 0, got %v", a.Dot(b))
	}
	if a.Cross(b) != 1 {
		t.Errorf("unit cross should be 1, got %v", a.Cross(b))
	}
}

func TestRotateAround(t *testing.T) {
	p := RotateAround(Pt(1, 0), Pt(0, 0), math.Pi/2)
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-1) > 1e-9 {
		t.Errorf("expected (0, 1), got (%v, %v)", p.X, p.Y)
	}

	// Rotation about a non-origin center.
	q := RotateAround(Pt(2, 1), Pt(1, 1), math.Pi)
	if math.Abs(q.X) > 1e-9 || math.Abs(q.Y-1) > 1e-9 {
		t.Errorf("expected (0, 1), got (%v, %v)", q.X, q.Y)
	}
}

func TestAngleAtVertex(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100)}
	for i := range square {
		angle := AngleAtVertex(square, i)
		if math.Abs(angle-90) > 1e-6 {
			t.Errorf("square corner %d: expected 90, got %v", i, angle)
		}
	}
}

func TestAngleAtVertexCollinearClamped(t *testing.T) {
	// Collinear points can push the dot product past 1 by rounding; acos
	// must not produce NaN.
	tri := []Point{Pt(0, 0), Pt(100, 0), Pt(200, 0)}
	angle := AngleAtVertex(tri, 1)
	if math.IsNaN(angle) {
		t.Fatal("angle at collinear vertex must not be NaN")
	}
	if math.Abs(angle-180) > 1e-6 {
		t.Errorf("expected 180, got %v", angle)
	}
}

func TestDirectionAngleNormalized(t *testing.T) {
	// Direction into the lower half plane comes back in [0, 2π).
	a := DirectionAngle(Pt(0, 0), Pt(1, -1))
	if a < 0 || a >= 2*math.Pi {
		t.Errorf("angle %v outside [0, 2pi)", a)
	}
	if math.Abs(a-7*math.Pi/4) > 1e-9 {
		t.Errorf("expected 7pi/4, got %v", a)
	}
}

func TestAngularDifference(t *testing.T) {
	cases := []struct {
		a1, a2, want float64
	}{
		{0, math.Pi / 2, math.Pi / 2},
		{0.1, 2*math.Pi - 0.1, 0.2},
		{0, math.Pi, math.Pi},
	}
	for _, c := range cases {
		got := AngularDifference(c.a1, c.a2)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("AngularDifference(%v, %v) = %v, want %v", c.a1, c.a2, got, c.want)
		}
	}
}

func TestLerp(t *testing.T) {
	mid := Lerp(Pt(0, 0), Pt(10, 20), 0.5)
	if mid.X != 5 || mid.Y != 10 {
		t.Errorf("expected (5, 10), got (%v, %v)", mid.X, mid.Y)
	}
}

func TestIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("finite point reported non-finite")
	}
	if Pt(math.NaN(), 0).IsFinite() || Pt(0, math.Inf(1)).IsFinite() {
		t.Error("non-finite point reported finite")
	}
}
