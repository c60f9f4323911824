// Package grid treats a rectangular block of text as a grid of tiles and
// groups equal, orthogonally touching tiles into regions.
//
// What:
//
//   - Grid holds one rune per cell; it is immutable once built.
//   - Regions finds every maximal group of equal runes under 4-connectivity.
//   - Region reports Area, Perimeter (exposed cell edges) and Sides
//     (straight fence runs, counted as corners).
//   - FencePrice sums area×perimeter, or area×sides for the bulk discount.
//
// Complexity:
//
//   - Parse / New:  O(W×H) time and memory.
//   - Regions:      O(W×H) time, O(W×H) memory.
//   - Perimeter, Sides: O(area) per region.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
