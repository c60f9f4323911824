package geom

// Span is an inclusive interval [Lo, Hi] on one axis.
type Span struct {
	Lo, Hi int
}

// Contains reports Lo <= v <= Hi.
func (s Span) Contains(v int) bool { return s.Lo <= v && v <= s.Hi }

// ContainsExclusive reports Lo <= v < Hi.
func (s Span) ContainsExclusive(v int) bool { return s.Lo <= v && v < s.Hi }

// Len is the number of integers in the span, 0 if Hi < Lo.
func (s Span) Len() int {
	if s.Hi < s.Lo {
		return 0
	}

	return s.Hi - s.Lo + 1
}

// width is |Hi - Lo|, the extent under half-open semantics.
func (s Span) width() uint64 { return uint64(abs(s.Hi - s.Lo)) }

func (s Span) extend(v int) Span {
	return Span{min(s.Lo, v), max(s.Hi, v)}
}

// Range2 is an axis-aligned rectangle.
type Range2 struct {
	X, Y Span
}

// Contains reports whether p lies inside r, edges included.
func (r Range2) Contains(p Point2) bool { return r.X.Contains(p.X) && r.Y.Contains(p.Y) }

// ContainsExclusive treats the upper bounds as open.
func (r Range2) ContainsExclusive(p Point2) bool {
	return r.X.ContainsExclusive(p.X) && r.Y.ContainsExclusive(p.Y)
}

// Area counts the integer points inside r.
func (r Range2) Area() int { return r.X.Len() * r.Y.Len() }

// AreaExclusive is the area of r with open upper bounds.
func (r Range2) AreaExclusive() uint64 { return r.X.width() * r.Y.width() }

// Range3 is an axis-aligned box.
type Range3 struct {
	X, Y, Z Span
}

// Contains reports whether p lies inside r, faces included.
func (r Range3) Contains(p Point3) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y) && r.Z.Contains(p.Z)
}

// ContainsExclusive treats the upper bounds as open.
func (r Range3) ContainsExclusive(p Point3) bool {
	return r.X.ContainsExclusive(p.X) && r.Y.ContainsExclusive(p.Y) && r.Z.ContainsExclusive(p.Z)
}

// VolumeExclusive is the volume of r with open upper bounds.
func (r Range3) VolumeExclusive() uint64 { return r.X.width() * r.Y.width() * r.Z.width() }
