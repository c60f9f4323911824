// Package geom holds the small value types shared by grid puzzles:
// integer points in two and three dimensions, inclusive ranges over them,
// and the four cardinal directions with left/right turns.
//
// Conventions:
//
//   - Y grows downward, matching the row order of text input. North is
//     therefore (0, -1).
//   - Ranges are inclusive on both ends unless a method says otherwise
//     (ContainsExclusive, AreaExclusive, VolumeExclusive).
//   - Cardinals are ordered clockwise (North, East, South, West) so a turn
//     is a rotation modulo 4.
//
// Errors:
//
//   - ErrBadPoint: text is not "x,y" or "x,y,z".
//   - ErrBadDirection: unknown arrow, compass letter or turn letter.
package geom
