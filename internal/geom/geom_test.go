package geom

import (
	"math"
	"math/rand"
	"testing"
)

func TestPointInPolygon(t *testing.T) {
	square := Polygon{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	lshape := Polygon{{0, 0}, {60, 0}, {60, 30}, {30, 30}, {30, 60}, {0, 60}}
	triangle := Polygon{{0, 0}, {50, 100}, {100, 0}}

	tests := []struct {
		name     string
		poly     Polygon
		x, y     float64
		expected bool
	}{
		{name: "square center", poly: square, x: 50, y: 50, expected: true},
		{name: "square outside right", poly: square, x: 150, y: 50, expected: false},
		{name: "square outside above", poly: square, x: 50, y: -10, expected: false},
		{name: "square near corner inside", poly: square, x: 1, y: 1, expected: true},
		{name: "L-shape inside arm", poly: lshape, x: 45, y: 15, expected: true},
		{name: "L-shape inside leg", poly: lshape, x: 15, y: 45, expected: true},
		{name: "L-shape in notch", poly: lshape, x: 45, y: 45, expected: false},
		{name: "triangle inside", poly: triangle, x: 50, y: 40, expected: true},
		{name: "triangle outside left slope", poly: triangle, x: 5, y: 80, expected: false},
		{name: "degenerate two points", poly: Polygon{{0, 0}, {10, 10}}, x: 5, y: 5, expected: false},
		{name: "empty polygon", poly: Polygon{}, x: 0, y: 0, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointInPolygon(tc.x, tc.y, tc.poly); got != tc.expected {
				t.Errorf("PointInPolygon(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

// crossingNumber is a brute-force reference implementation used to verify
// PointInPolygon over random points and polygons.
func crossingNumber(x, y float64, poly Polygon) bool {
	crossings := 0
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if (a.Y <= y && b.Y > y) || (a.Y > y && b.Y <= y) {
			t := (y - a.Y) / (b.Y - a.Y)
			if x < a.X+t*(b.X-a.X) {
				crossings++
			}
		}
	}
	return crossings%2 == 1
}

func TestPointInPolygonAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	polys := []Polygon{
		{{0, 0}, {100, 0}, {100, 100}, {0, 100}},
		{{0, 0}, {50, 100}, {100, 0}},
		{{0, 0}, {60, 0}, {60, 30}, {30, 30}, {30, 60}, {0, 60}},
		// Non-convex star-ish shape
		{{50, 0}, {65, 35}, {100, 35}, {72, 57}, {82, 95}, {50, 72}, {18, 95}, {28, 57}, {0, 35}, {35, 35}},
	}

	for _, poly := range polys {
		for i := 0; i < 500; i++ {
			x := rng.Float64()*140 - 20
			y := rng.Float64()*140 - 20
			got := PointInPolygon(x, y, poly)
			want := crossingNumber(x, y, poly)
			if got != want {
				t.Fatalf("PointInPolygon(%v, %v, %v) = %v, reference = %v", x, y, poly, got, want)
			}
		}
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	tests := []struct {
		name     string
		p, a, b  Point
		expected Point
	}{
		{name: "projects onto middle", p: Point{5, 5}, a: Point{0, 0}, b: Point{10, 0}, expected: Point{5, 0}},
		{name: "clamps to start", p: Point{-5, 3}, a: Point{0, 0}, b: Point{10, 0}, expected: Point{0, 0}},
		{name: "clamps to end", p: Point{15, 3}, a: Point{0, 0}, b: Point{10, 0}, expected: Point{10, 0}},
		{name: "degenerate segment", p: Point{3, 3}, a: Point{1, 1}, b: Point{1, 1}, expected: Point{1, 1}},
		{name: "diagonal", p: Point{0, 10}, a: Point{0, 0}, b: Point{10, 10}, expected: Point{5, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClosestPointOnSegment(tc.p, tc.a, tc.b)
			if Dist(got, tc.expected) > 1e-9 {
				t.Errorf("ClosestPointOnSegment() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClosestWalkablePoint(t *testing.T) {
	square := Polygon{{0, 0}, {100, 0}, {100, 100}, {0, 100}}

	t.Run("walkable point is returned unchanged", func(t *testing.T) {
		got := ClosestWalkablePoint(Point{50, 50}, []Polygon{square})
		if got != (Point{50, 50}) {
			t.Errorf("expected identity for walkable point, got %v", got)
		}
	})

	t.Run("outside point projects onto nearest edge", func(t *testing.T) {
		got := ClosestWalkablePoint(Point{150, 50}, []Polygon{square})
		if Dist(got, Point{100, 50}) > 1e-9 {
			t.Errorf("expected (100,50), got %v", got)
		}
	})

	t.Run("no polygons returns target", func(t *testing.T) {
		got := ClosestWalkablePoint(Point{42, 7}, nil)
		if got != (Point{42, 7}) {
			t.Errorf("expected identity with no polygons, got %v", got)
		}
	})

	t.Run("picks globally nearest box", func(t *testing.T) {
		far := Polygon{{500, 500}, {600, 500}, {600, 600}, {500, 600}}
		got := ClosestWalkablePoint(Point{120, 50}, []Polygon{far, square})
		if Dist(got, Point{100, 50}) > 1e-9 {
			t.Errorf("expected projection on near box edge, got %v", got)
		}
	})
}

// Projected points for random outside targets must land on (or within
// epsilon of) a walkbox boundary.
func TestClosestWalkablePointOnBoundary(t *testing.T) {
	boxes := []Polygon{
		{{10, 10}, {90, 10}, {90, 90}, {10, 90}},
		{{120, 40}, {180, 40}, {150, 100}},
	}
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 300; i++ {
		target := Point{X: rng.Float64()*300 - 50, Y: rng.Float64()*300 - 50}
		if InAnyPolygon(target.X, target.Y, boxes) {
			continue
		}
		got := ClosestWalkablePoint(target, boxes)

		// The result must sit on some edge of some box.
		onEdge := math.Inf(1)
		for _, poly := range boxes {
			j := len(poly) - 1
			for k := 0; k < len(poly); k++ {
				proj := ClosestPointOnSegment(got, poly[j], poly[k])
				if d := Dist(got, proj); d < onEdge {
					onEdge = d
				}
				j = k
			}
		}
		if onEdge > 1e-6 {
			t.Fatalf("projection %v for target %v is %v away from every edge", got, target, onEdge)
		}
	}
}
