package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Point2 is an integer point on a plane.
type Point2 struct {
	X, Y int
}

// Origin2 is the point (0, 0).
var Origin2 = Point2{}

// Add returns p + q.
func (p Point2) Add(q Point2) Point2 { return Point2{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point2) Sub(q Point2) Point2 { return Point2{p.X - q.X, p.Y - q.Y} }

// Scale returns p multiplied component-wise by k.
func (p Point2) Scale(k int) Point2 { return Point2{p.X * k, p.Y * k} }

// Manhattan returns |dx| + |dy| between p and q.
func (p Point2) Manhattan(q Point2) int { return abs(p.X-q.X) + abs(p.Y-q.Y) }

// Step moves one unit in direction c.
func (p Point2) Step(c Cardinal) Point2 { return p.Add(c.Delta()) }

// Orthogonals returns the four neighbours of p in Cardinals() order.
func (p Point2) Orthogonals() [4]Point2 {
	var out [4]Point2
	for i, c := range Cardinals() {
		out[i] = p.Step(c)
	}

	return out
}

// String renders p as "x,y".
func (p Point2) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// ParsePoint2 parses "x,y" with optional spaces around the numbers.
func ParsePoint2(s string) (Point2, error) {
	v, err := parseInts(s, 2)
	if err != nil {
		return Point2{}, err
	}

	return Point2{v[0], v[1]}, nil
}

// BoundsOf returns the smallest inclusive range holding every point.
// ok is false when pts is empty.
func BoundsOf(pts ...Point2) (r Range2, ok bool) {
	if len(pts) == 0 {
		return Range2{}, false
	}
	r = Range2{X: Span{pts[0].X, pts[0].X}, Y: Span{pts[0].Y, pts[0].Y}}
	for _, p := range pts[1:] {
		r.X = r.X.extend(p.X)
		r.Y = r.Y.extend(p.Y)
	}

	return r, true
}

// Point3 is an integer point in space.
type Point3 struct {
	X, Y, Z int
}

// Add returns p + q.
func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns p - q.
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Manhattan returns |dx| + |dy| + |dz| between p and q.
func (p Point3) Manhattan(q Point3) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y) + abs(p.Z-q.Z)
}

// String renders p as "x,y,z".
func (p Point3) String() string { return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z) }

// ParsePoint3 parses "x,y,z".
func ParsePoint3(s string) (Point3, error) {
	v, err := parseInts(s, 3)
	if err != nil {
		return Point3{}, err
	}

	return Point3{v[0], v[1], v[2]}, nil
}

func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: %q: want %d components", ErrBadPoint, s, n)
	}
	out := make([]int, n)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
		}
		out[i] = v
	}

	return out, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
