// Package advent is a small toolbox of puzzle-solving building blocks and
// the solvers built on top of them.
//
// What is in the box?
//
//	ring/     — arena-backed circular doubly-linked list with one cursor
//	marble/   — the marble game, driven entirely by ring.Ring
//	modular/  — sign-correct remainder and overflow-safe modular arithmetic
//	geom/     — 2D/3D points, inclusive/exclusive ranges, cardinal directions
//	grid/     — rectangular tile maps, connected regions and fence pricing
//
// The command in cmd/advent wires these packages to input files:
//
//	advent marble --input day09.txt --part 2
//	advent garden --input day12.txt --part 2 --expect 1206
//	advent answers
//
// Settings come from an optional advent.toml and ADVENT_* environment
// variables (see internal/config). Logs are written with zerolog.
//
// Quick example:
//
//	r := ring.New(0)
//	r.InsertRelative(1, 1)   // 0 (1)
//	r.InsertRelative(2, 2)   // 0 (2) 1
//	r.InsertRelative(3, 2)   // 0 2 1 (3)
//
//	go get github.com/katalvlaran/advent/ring
package advent
