package ecs

import "iter"

// Bag is a dense, index-addressable array that grows on demand. RemoveAt
// is O(1) via swap-with-last; it does not preserve order. Not thread-safe.
type Bag[T any] struct {
	items []T
}

// NewBag returns an empty Bag pre-sized to hold at least capacity items.
func NewBag[T any](capacity int) Bag[T] {
	return Bag[T]{items: make([]T, 0, capacity)}
}

// Add appends t and returns its index.
func (b *Bag[T]) Add(t T) int {
	b.items = append(b.items, t)
	return len(b.items) - 1
}

// Set installs t at index i, growing the backing array if needed. Growth
// at least doubles the previous capacity, matching ComponentMapper's
// grow-on-access contract.
func (b *Bag[T]) Set(i int, t T) {
	b.growTo(i + 1)
	b.items[i] = t
}

func (b *Bag[T]) growTo(n int) {
	if n <= len(b.items) {
		return
	}
	if n <= cap(b.items) {
		b.items = b.items[:n]
		return
	}
	newCap := cap(b.items)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < n {
		newCap *= 2
	}
	grown := make([]T, n, newCap)
	copy(grown, b.items)
	b.items = grown
}

// Get returns the item at index i. Panics if i is out of range, matching
// ordinary slice semantics.
func (b *Bag[T]) Get(i int) T {
	return b.items[i]
}

// GetPtr returns a pointer to the item at index i, allowing in-place
// mutation without a copy.
func (b *Bag[T]) GetPtr(i int) *T {
	return &b.items[i]
}

// RemoveAt removes the item at index i by swapping it with the last item
// and shrinking by one. Order is not preserved.
func (b *Bag[T]) RemoveAt(i int) T {
	removed := b.items[i]
	last := len(b.items) - 1
	b.items[i] = b.items[last]
	var zero T
	b.items[last] = zero
	b.items = b.items[:last]
	return removed
}

// Size returns the number of items currently held.
func (b *Bag[T]) Size() int { return len(b.items) }

// All returns an iterator over the items in index order.
func (b *Bag[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range b.items {
			if !yield(item) {
				return
			}
		}
	}
}

// PushStack appends t to the end of the bag, treated as a LIFO stack.
func (b *Bag[T]) PushStack(t T) { b.Add(t) }

// PopStack removes and returns the last item. ok is false if the bag is
// empty.
func (b *Bag[T]) PopStack() (t T, ok bool) {
	if len(b.items) == 0 {
		return t, false
	}
	last := len(b.items) - 1
	t = b.items[last]
	var zero T
	b.items[last] = zero
	b.items = b.items[:last]
	return t, true
}
