package ring

import "errors"

// Sentinel errors for ring operations.
var (
	// ErrUnderflow indicates a remove that would leave the ring empty.
	ErrUnderflow = errors.New("ring: cannot remove the last remaining value")
)

// nilIndex marks an empty free list.
const nilIndex = -1

// node is one arena slot. For live nodes prev/next are arena indices of the
// neighbours; for free slots next chains the free list and prev is nilIndex.
type node[T any] struct {
	prev, next int
	value      T
}

// Ring is a circular doubly-linked sequence with a single cursor.
//
// The zero value is not usable; construct with New.
type Ring[T any] struct {
	nodes  []node[T]
	free   int    // head of the free-slot list, or nilIndex
	cursor int    // last inserted node, or successor of the last removed one
	head   int    // first node reported by Snapshot/All
	size   int    // live nodes
	steps  uint64 // link traversals performed by walks
}

// Option configures a Ring at construction time.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity preallocates arena room for n values.
// Non-positive n leaves the default growth behaviour.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
