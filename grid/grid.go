package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/geom"
)

// Parse builds a Grid from newline-separated rows. Trailing blank lines and
// carriage returns are ignored.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(text, "\r\n"), "\n")
	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []rune(strings.TrimRight(line, "\r")))
	}

	return New(rows)
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func New(rows [][]rune) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]rune, h)
	for y := range rows {
		cells[y] = make([]rune, w)
		copy(cells[y], rows[y])
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// Bounds returns the inclusive range of valid coordinates.
func (g *Grid) Bounds() geom.Range2 {
	return geom.Range2{X: geom.Span{Lo: 0, Hi: g.Width - 1}, Y: geom.Span{Lo: 0, Hi: g.Height - 1}}
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p geom.Point2) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the tile at p; ok is false outside the grid.
func (g *Grid) At(p geom.Point2) (tile rune, ok bool) {
	if !g.InBounds(p) {
		return 0, false
	}

	return g.cells[p.Y][p.X], true
}

// Neighbors returns the in-bounds orthogonal neighbours of p.
func (g *Grid) Neighbors(p geom.Point2) []geom.Point2 {
	out := make([]geom.Point2, 0, 4)
	for _, q := range p.Orthogonals() {
		if g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// String renders the grid back as text, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps p to a row-major index: y*Width + x.
func (g *Grid) index(p geom.Point2) int {
	return p.Y*g.Width + p.X
}

// Regions finds all regions of equal tiles under 4-connectivity.
// Regions are returned in row-major order of their first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() []Region {
	seen := make([]bool, g.Width*g.Height)
	var regions []Region

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			start := geom.Point2{X: x, Y: y}
			if seen[g.index(start)] {
				continue
			}
			tile := g.cells[y][x]
			// BFS to collect region
			queue := []geom.Point2{start}
			seen[g.index(start)] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, q := range g.Neighbors(queue[qi]) {
					if seen[g.index(q)] || g.cells[q.Y][q.X] != tile {
						continue
					}
					seen[g.index(q)] = true
					queue = append(queue, q)
				}
			}
			regions = append(regions, Region{Tile: tile, Cells: queue})
		}
	}

	return regions
}

// FencePrice sums area×perimeter over all regions, or area×sides when bulk
// is set.
func (g *Grid) FencePrice(bulk bool) int {
	total := 0
	for _, r := range g.Regions() {
		if bulk {
			total += r.Area() * r.Sides()
		} else {
			total += r.Area() * r.Perimeter()
		}
	}

	return total
}
