package ring

import (
	"fmt"
	"iter"
	"strings"
)

// New returns a ring holding only seed. The seed node is both the cursor
// and the first node of every snapshot until it is removed.
func New[T any](seed T, opts ...Option) *Ring[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	r := &Ring[T]{
		nodes: make([]node[T], 1, max(o.capacity, 1)),
		free:  nilIndex,
		size:  1,
	}
	r.nodes[0] = node[T]{prev: 0, next: 0, value: seed}

	return r
}

// Len returns the number of values in the ring.
func (r *Ring[T]) Len() int { return r.size }

// Current returns the value at the cursor.
func (r *Ring[T]) Current() T { return r.nodes[r.cursor].value }

// Steps returns the total number of single-link moves performed by
// InsertRelative and RemoveRelative since construction.
func (r *Ring[T]) Steps() uint64 { return r.steps }

// InsertRelative places value so that it sits offset positions away from
// the cursor: the walk lands on some node and the new value is spliced in
// immediately before it. With offset 1 the value follows the cursor; with
// offset 2 one value separates them. The new node becomes the cursor.
func (r *Ring[T]) InsertRelative(value T, offset int) {
	target := r.walk(offset)
	before := r.nodes[target].prev

	idx := r.alloc(value)
	r.nodes[idx].prev = before
	r.nodes[idx].next = target
	r.nodes[before].next = idx
	r.nodes[target].prev = idx

	r.cursor = idx
	r.size++
}

// RemoveRelative unlinks the value offset positions away from the cursor
// and returns it. The value that followed it becomes the cursor.
// Returns ErrUnderflow, leaving the ring unchanged, when only one value
// remains.
func (r *Ring[T]) RemoveRelative(offset int) (T, error) {
	if r.size == 1 {
		var zero T
		return zero, ErrUnderflow
	}

	target := r.walk(offset)
	n := r.nodes[target]
	r.nodes[n.prev].next = n.next
	r.nodes[n.next].prev = n.prev

	if target == r.head {
		r.head = n.next
	}
	r.cursor = n.next
	r.size--
	r.release(target)

	return n.value, nil
}

// Snapshot returns the values in ring order starting at the first node.
// It does not move the cursor.
func (r *Ring[T]) Snapshot() []T {
	out := make([]T, 0, r.size)
	for v := range r.All() {
		out = append(out, v)
	}

	return out
}

// All yields the values in ring order starting at the first node.
// The ring must not be mutated while iterating.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		idx := r.head
		for i := 0; i < r.size; i++ {
			if !yield(r.nodes[idx].value) {
				return
			}
			idx = r.nodes[idx].next
		}
	}
}

// Clone returns an independent copy, including cursor, first node and
// step counter.
func (r *Ring[T]) Clone() *Ring[T] {
	c := *r
	c.nodes = make([]node[T], len(r.nodes), cap(r.nodes))
	copy(c.nodes, r.nodes)

	return &c
}

// String renders the ring in order with the cursor value in parentheses,
// e.g. "0 4 2 (5) 1 3".
func (r *Ring[T]) String() string {
	var sb strings.Builder
	idx := r.head
	for i := 0; i < r.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if idx == r.cursor {
			fmt.Fprintf(&sb, "(%v)", r.nodes[idx].value)
		} else {
			fmt.Fprintf(&sb, "%v", r.nodes[idx].value)
		}
		idx = r.nodes[idx].next
	}

	return sb.String()
}

// walk returns the arena index offset links away from the cursor.
// The offset is reduced modulo size first; direction follows its sign.
func (r *Ring[T]) walk(offset int) int {
	n := offset % r.size
	idx := r.cursor
	if n >= 0 {
		for ; n > 0; n-- {
			idx = r.nodes[idx].next
			r.steps++
		}

		return idx
	}
	for ; n < 0; n++ {
		idx = r.nodes[idx].prev
		r.steps++
	}

	return idx
}

// alloc stores value in a free slot, reusing released ones first.
// Links of the returned slot are left for the caller to set.
func (r *Ring[T]) alloc(value T) int {
	if r.free != nilIndex {
		idx := r.free
		r.free = r.nodes[idx].next
		r.nodes[idx] = node[T]{value: value}

		return idx
	}
	r.nodes = append(r.nodes, node[T]{value: value})

	return len(r.nodes) - 1
}

// release pushes idx onto the free list and drops its value.
func (r *Ring[T]) release(idx int) {
	r.nodes[idx] = node[T]{prev: nilIndex, next: r.free}
	r.free = idx
}
