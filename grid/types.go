package grid

import (
	"errors"

	"github.com/katalvlaran/advent/geom"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Grid is a rectangular, immutable block of tiles.
// Rows are indexed by Y and columns by X.
type Grid struct {
	Width, Height int
	cells         [][]rune
}

// Region is a maximal set of orthogonally connected cells sharing one tile.
// Cells are listed in breadth-first discovery order.
type Region struct {
	Tile  rune
	Cells []geom.Point2
}
