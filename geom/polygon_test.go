package geom

import (
	"math"
	"testing"
)

func square(side float64) []Point {
	return []Point{
		{0, 0},
		{side, 0},
		{side, side},
		{0, side},
	}
}

func TestNewSPolygonRejectsDegenerate(t *testing.T) {
	if _, err := NewSPolygon([]Point{{0, 0}, {1, 1}}, nil); err != ErrDegeneratePolygon {
		t.Errorf("too few vertices: got %v, want ErrDegeneratePolygon", err)
	}
	if _, err := NewSPolygon([]Point{{0, 0}, {1, 1}, {0, 0}}, nil); err != ErrDegeneratePolygon {
		t.Errorf("duplicate vertex: got %v, want ErrDegeneratePolygon", err)
	}
	collinear := []Point{{0, 0}, {1, 0}, {2, 0}}
	if _, err := NewSPolygon(collinear, nil); err != ErrDegeneratePolygon {
		t.Errorf("zero-area polygon: got %v, want ErrDegeneratePolygon", err)
	}
}

func TestNewSPolygonReversesClockwise(t *testing.T) {
	cw := []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	poly, err := NewSPolygon(cw, nil)
	if err != nil {
		t.Fatal(err)
	}
	if poly.Area <= 0 {
		t.Errorf("Area = %v, want positive", poly.Area)
	}
	if signedArea(poly.Vertices) <= 0 {
		t.Error("expected vertices to be reordered counter-clockwise")
	}
}

func TestSPolygonAreaAndBbox(t *testing.T) {
	poly, err := NewSPolygon(square(10), nil)
	if err != nil {
		t.Fatal(err)
	}
	if poly.Area != 100 {
		t.Errorf("Area = %v, want 100", poly.Area)
	}
	want, _ := NewRect(0, 0, 10, 10)
	if poly.Bbox != want {
		t.Errorf("Bbox = %+v, want %+v", poly.Bbox, want)
	}
}

func TestSPolygonCollidesWithPoint(t *testing.T) {
	poly, err := NewSPolygon(square(10), nil)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		p    Point
		want bool
	}{
		{NewPoint(5, 5), true},
		{NewPoint(0, 0), true},
		{NewPoint(10, 5), true},
		{NewPoint(-1, 5), false},
		{NewPoint(11, 5), false},
		{NewPoint(5, -1), false},
	}
	for _, c := range cases {
		if got := poly.CollidesWithPoint(c.p); got != c.want {
			t.Errorf("CollidesWithPoint(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestSPolygonCollidesWithPointVertexGrazing(t *testing.T) {
	// an L-shape whose concave vertex sits exactly on the test ray's height
	points := []Point{
		{0, 0}, {10, 0}, {10, 5}, {5, 5}, {5, 10}, {0, 10},
	}
	poly, err := NewSPolygon(points, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !poly.CollidesWithPoint(NewPoint(2, 5)) {
		t.Error("point inside the L at the notch height should collide")
	}
	if poly.CollidesWithPoint(NewPoint(7, 7)) {
		t.Error("point in the cut-out corner should not collide")
	}
}

func TestSPolygonCentroidOfSquareIsCenter(t *testing.T) {
	poly, err := NewSPolygon(square(10), nil)
	if err != nil {
		t.Fatal(err)
	}
	c := poly.Centroid()
	if math.Abs(c.X-5) > 1e-9 || math.Abs(c.Y-5) > 1e-9 {
		t.Errorf("Centroid() = %v, want (5, 5)", c)
	}
}

func TestSPolygonTransformPreservesArea(t *testing.T) {
	poly, err := NewSPolygon(square(10), nil)
	if err != nil {
		t.Fatal(err)
	}
	moved := poly.Transform(FromDTransformation(NewDTransformation(math.Pi/4, 3, -2)))
	if math.Abs(moved.Area-poly.Area) > 1e-9 {
		t.Errorf("Transform() changed area: got %v, want %v", moved.Area, poly.Area)
	}
}

func TestFromRect(t *testing.T) {
	r, _ := NewRect(0, 0, 4, 6)
	poly := FromRect(r)
	if poly.Area != 24 {
		t.Errorf("Area = %v, want 24", poly.Area)
	}
	if !poly.CollidesWithPoint(NewPoint(2, 3)) {
		t.Error("center of rect should be inside its polygon form")
	}
}
