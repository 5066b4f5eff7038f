// Package geom provides the 2D primitives the scene runtime is built on:
// point-in-polygon containment and nearest-point projection onto walkable
// area. It contains no external dependencies to keep runtime logic pure and
// testable.
package geom

import "math"

// Point is a position in scene coordinates.
type Point struct {
	X, Y float64
}

// Polygon is an ordered list of vertices. Walkboxes are simple polygons
// with at least 3 vertices; no winding order is assumed.
type Polygon []Point

// Rect represents an axis-aligned rectangle in scene coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PointInPolygon reports whether (x, y) lies inside the polygon using the
// standard even-odd ray casting test over the ordered vertex list.
// Polygons with fewer than 3 vertices contain nothing.
func PointInPolygon(x, y float64, poly Polygon) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > y) != (pj.Y > y) {
			crossX := (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if x < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// InAnyPolygon reports whether the point lies inside at least one of the
// polygons. The polygons are treated as a union, not intersected.
func InAnyPolygon(x, y float64, polys []Polygon) bool {
	for _, p := range polys {
		if PointInPolygon(x, y, p) {
			return true
		}
	}
	return false
}

// ClosestPointOnSegment projects p onto the segment [a, b] and returns the
// nearest point on the segment.
func ClosestPointOnSegment(p, a, b Point) Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a // Degenerate segment
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Point{X: a.X + t*dx, Y: a.Y + t*dy}
}

// ClosestWalkablePoint returns the target point itself when it already lies
// inside one of the polygons. Otherwise it projects the target onto every
// edge of every polygon and returns the globally nearest projection, so a
// click outside all walkable area still yields a reachable destination.
// With no polygons at all the target is returned unchanged.
func ClosestWalkablePoint(target Point, polys []Polygon) Point {
	if len(polys) == 0 || InAnyPolygon(target.X, target.Y, polys) {
		return target
	}

	best := target
	bestDist := math.Inf(1)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		j := len(poly) - 1
		for i := 0; i < len(poly); i++ {
			cand := ClosestPointOnSegment(target, poly[j], poly[i])
			if d := Dist(target, cand); d < bestDist {
				bestDist = d
				best = cand
			}
			j = i
		}
	}
	return best
}
