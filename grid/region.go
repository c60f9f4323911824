package grid

import "github.com/katalvlaran/advent/geom"

// Area is the number of cells in r.
func (r Region) Area() int { return len(r.Cells) }

// Perimeter counts cell edges that do not touch another cell of r.
func (r Region) Perimeter() int {
	members := r.members()
	perimeter := 0
	for _, p := range r.Cells {
		for _, q := range p.Orthogonals() {
			if _, in := members[q]; !in {
				perimeter++
			}
		}
	}

	return perimeter
}

// Sides counts straight fence runs around r. A polygon has as many sides as
// corners, so each cell contributes its convex and concave corners.
func (r Region) Sides() int {
	members := r.members()
	in := func(p geom.Point2) bool {
		_, ok := members[p]
		return ok
	}
	corners := 0
	for _, p := range r.Cells {
		for _, d := range geom.Cardinals() {
			a := p.Step(d)
			b := p.Step(d.Turn(geom.Right))
			switch {
			case !in(a) && !in(b):
				corners++ // convex
			case in(a) && in(b) && !in(a.Step(d.Turn(geom.Right))):
				corners++ // concave
			}
		}
	}

	return corners
}

func (r Region) members() map[geom.Point2]struct{} {
	set := make(map[geom.Point2]struct{}, len(r.Cells))
	for _, p := range r.Cells {
		set[p] = struct{}{}
	}

	return set
}
