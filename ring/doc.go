// Package ring implements a circular doubly-linked sequence with a single
// movable cursor, built for simulations that perform millions of small
// relative moves (the "marble game").
//
// What:
//
//   - Ring[T] holds values arranged in a circle; there is no head or tail,
//     only relative order. A stable first node is remembered so that
//     Snapshot and All have a deterministic starting point.
//   - The cursor is the node touched by the last insert or remove. Every
//     mutation is expressed as a signed offset from it.
//   - Nodes live in an arena (a slice) and link to each other by index.
//     Removed slots go onto a free list and are reused by later inserts,
//     so a steady insert/remove workload stops allocating.
//
// Offsets:
//
//	A positive offset walks "next" links, a negative offset walks "prev"
//	links. The magnitude is reduced modulo the current size before walking,
//	so InsertRelative(v, o) and InsertRelative(v, o+k*Len()) are identical.
//	Walking is link-by-link: a call costs |offset mod size| steps no matter
//	how large the ring is.
//
// Operations:
//
//	New(seed, opts...)          O(1)
//	InsertRelative(v, offset)   O(|offset| mod size), amortised O(1) alloc
//	RemoveRelative(offset)      O(|offset| mod size)
//	Snapshot()                  O(size)
//	All()                       O(size), no allocation
//	Len(), Current(), Steps()   O(1)
//
// Errors:
//
//   - ErrUnderflow: RemoveRelative on a ring holding a single value. The
//     ring is left untouched.
//
// A Ring is not safe for concurrent use.
package ring
