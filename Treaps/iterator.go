package Treaps

import "golang.org/x/exp/constraints"

// Iterator addresses an element by its rank and re-derives the node from it
// on every move, costing O(log n) a step. It stays usable across mutations
// elsewhere in the tree: the rank simply resolves to whatever holds it now.
// Iterators of one tree compare == when they address the same node at the
// same rank.
type Iterator[T any, S constraints.Unsigned] struct {
	value *T
	t     *base[T, S]
	index S
}

// Valid reports whether the Iterator addresses an element; false once it
// reaches one past the last.
func (u *Iterator[T, S]) Valid() bool {
	return u.value != nil
}

// Value reads the element. The Iterator must be Valid.
func (u *Iterator[T, S]) Value() T {
	return *u.value
}

// Index is the rank addressed, 0 based; Size for the end position.
func (u *Iterator[T, S]) Index() S {
	return u.index
}

// Next moves one rank up. Moving past the end position panics with
// BoundsError. Time: O(log n).
func (u *Iterator[T, S]) Next() {
	u.index++
	u.reseat()
}

// Prev moves one rank down. Moving below rank 0 wraps the unsigned rank and
// panics with BoundsError. Time: O(log n).
func (u *Iterator[T, S]) Prev() {
	u.index--
	u.reseat()
}

func (u *Iterator[T, S]) reseat() {
	if n := u.t.nodeOfOrder(u.index); n != nil {
		u.value = &n.v
	} else {
		u.value = nil
	}
}
