package geom

import "testing"

func TestCircleCollidesWithCircle(t *testing.T) {
	a := NewCircle(NewPoint(0, 0), 5)
	b := NewCircle(NewPoint(8, 0), 5)
	c := NewCircle(NewPoint(20, 0), 5)

	if !a.CollidesWithCircle(b) {
		t.Error("overlapping circles should collide")
	}
	if a.CollidesWithCircle(c) {
		t.Error("far circles should not collide")
	}
}

func TestCircleCollidesWithRect(t *testing.T) {
	c := NewCircle(NewPoint(0, 0), 3)
	inside, _ := NewRect(-1, -1, 1, 1)
	outside, _ := NewRect(10, 10, 20, 20)

	if !c.CollidesWithRect(inside) {
		t.Error("rect inside circle should collide")
	}
	if c.CollidesWithRect(outside) {
		t.Error("far rect should not collide with circle")
	}
}

func TestBoundingCircleContainsAll(t *testing.T) {
	circles := []Circle{
		NewCircle(NewPoint(0, 0), 2),
		NewCircle(NewPoint(10, 0), 1),
		NewCircle(NewPoint(5, 8), 3),
	}
	bounding := BoundingCircle(circles)
	for i, c := range circles {
		d := bounding.Center.Distance(c.Center)
		if d+c.Radius > bounding.Radius+1e-9 {
			t.Errorf("circle %d (center=%v r=%v) not contained in bounding circle %v", i, c.Center, c.Radius, bounding)
		}
	}
}

func TestBoundingCircleSingle(t *testing.T) {
	c := NewCircle(NewPoint(1, 1), 4)
	if got := BoundingCircle([]Circle{c}); got != c {
		t.Errorf("BoundingCircle of a single circle = %v, want %v", got, c)
	}
}
