package geom

import "testing"

func TestNewEdgeDegenerate(t *testing.T) {
	if _, err := NewEdge(NewPoint(1, 1), NewPoint(1, 1)); err != ErrDegenerateEdge {
		t.Errorf("got %v, want ErrDegenerateEdge", err)
	}
}

func TestEdgeIntersectEdge(t *testing.T) {
	a, _ := NewEdge(NewPoint(0, 0), NewPoint(10, 10))
	b, _ := NewEdge(NewPoint(0, 10), NewPoint(10, 0))

	p, ok := a.IntersectEdge(b)
	if !ok {
		t.Fatal("expected intersection")
	}
	if p != (Point{5, 5}) {
		t.Errorf("IntersectEdge() = %v, want (5, 5)", p)
	}
}

func TestEdgeIntersectParallel(t *testing.T) {
	a, _ := NewEdge(NewPoint(0, 0), NewPoint(10, 0))
	b, _ := NewEdge(NewPoint(0, 1), NewPoint(10, 1))
	if _, ok := a.IntersectEdge(b); ok {
		t.Error("parallel edges should not intersect")
	}
}

func TestEdgeDistanceTo(t *testing.T) {
	e, _ := NewEdge(NewPoint(0, 0), NewPoint(10, 0))
	if got := e.DistanceTo(NewPoint(5, 5)); got != 5 {
		t.Errorf("DistanceTo() = %v, want 5", got)
	}
	if got := e.DistanceTo(NewPoint(-3, 0)); got != 3 {
		t.Errorf("DistanceTo() beyond start = %v, want 3", got)
	}
}

func TestEdgeExtend(t *testing.T) {
	e, _ := NewEdge(NewPoint(0, 0), NewPoint(10, 0))
	front := e.ExtendAtFront(5)
	if front.Start != (Point{-5, 0}) {
		t.Errorf("ExtendAtFront() start = %v, want (-5, 0)", front.Start)
	}
	back := e.ExtendAtBack(5)
	if back.End != (Point{15, 0}) {
		t.Errorf("ExtendAtBack() end = %v, want (15, 0)", back.End)
	}
	shrunk := e.ExtendAtFront(-3).ExtendAtBack(-3)
	if shrunk.Length() >= e.Length() {
		t.Errorf("shrinking with negative extend should shorten the edge")
	}
}
