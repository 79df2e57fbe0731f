package geom

import "testing"

func TestConvexHullDropsInteriorPoints(t *testing.T) {
	points := []Point{
		{0, 0}, {10, 0}, {10, 10}, {0, 10}, // the square
		{5, 5}, // interior, must be dropped
	}
	hull := ConvexHull(points)
	if len(hull) != 4 {
		t.Fatalf("ConvexHull() returned %d points, want 4: %v", len(hull), hull)
	}
	for _, p := range hull {
		if p == (Point{5, 5}) {
			t.Error("interior point should not be on the hull")
		}
	}
}

func TestConvexHullTriangle(t *testing.T) {
	points := []Point{{0, 0}, {4, 0}, {2, 4}}
	hull := ConvexHull(points)
	if len(hull) != 3 {
		t.Fatalf("ConvexHull() returned %d points, want 3", len(hull))
	}
}
