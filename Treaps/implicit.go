package Treaps

import (
	"golang.org/x/exp/constraints"
)

// Implicit is a random access list on treap structure. An element's key is
// its current rank, so nothing is stored or compared and duplicates are
// naturally fine; inserting or removing anywhere costs expected O(log n),
// against O(n) for a slice. Not thread safe.
type Implicit[V any, S constraints.Unsigned] struct {
	base[V, S]
}

// NewImplicit returns an empty list backed by plain heap allocation.
func NewImplicit[V any, S constraints.Unsigned]() *Implicit[V, S] {
	return NewImplicitIn[V, S](Heap[V, S]{})
}

// NewImplicitIn returns an empty list drawing nodes from a.
func NewImplicitIn[V any, S constraints.Unsigned](a Allocator[V, S]) *Implicit[V, S] {
	return &Implicit[V, S]{base[V, S]{nil, a}}
}

// ImplicitFrom builds the list holding vs in slice order, in O(n).
func ImplicitFrom[V any, S constraints.Unsigned](vs []V) *Implicit[V, S] {
	a := Heap[V, S]{}
	return &Implicit[V, S]{base[V, S]{buildSpine[V, S](a, vs), a}}
}

// splitAt cuts the tree under n into its first k elements and the rest,
// recursing by cached sizes; k clamps to [0, size]. One child link is
// rewired per level on the way back up.
func splitAt[V any, S constraints.Unsigned](n *Node[V, S], k S) (*Node[V, S], *Node[V, S]) {
	if n == nil {
		return nil, nil
	}
	if k == 0 {
		return nil, n
	}
	if k >= n.sz {
		return n, nil
	}
	if ls := n.leftSize(); k <= ls {
		l, r := splitAt(n.l, k)
		n.setLeft(r)
		return l, n
	} else {
		l, r := splitAt(n.r, k-ls-1)
		n.setRight(l)
		return n, r
	}
}

// Insert places v before the current k-th element, or appends when k is at
// or past Size. Returns the new element's position.
func (u *Implicit[V, S]) Insert(v V, k S) Iterator[V, S] {
	if sz := u.Size(); k > sz {
		k = sz
	}
	n := allocNode(u.alloc, v)
	l, r := splitAt(u.root, k)
	u.root = merge(merge(l, n), r)
	return u.iter(n, k)
}

// PushBack appends v and returns its position.
func (u *Implicit[V, S]) PushBack(v V) Iterator[V, S] {
	return u.Insert(v, u.Size())
}

// PushFront prepends v, shifting everything one rank up.
func (u *Implicit[V, S]) PushFront(v V) Iterator[V, S] {
	return u.Insert(v, 0)
}

// PushAll appends every value in turn.
func (u *Implicit[V, S]) PushAll(vs ...V) {
	for i := range vs {
		u.PushBack(vs[i])
	}
}

// Del removes the k-th element, shifting the ranks behind it down; at or
// past Size it is a no-op.
func (u *Implicit[V, S]) Del(k S) {
	if k >= u.Size() {
		return
	}
	l, rest := splitAt(u.root, k)
	mid, r := splitAt(rest, 1)
	u.root = merge(l, r)
	u.alloc.Free(mid)
}

// PopBack removes and returns the last element, false when empty.
func (u *Implicit[V, S]) PopBack() (V, bool) {
	sz := u.Size()
	if sz == 0 {
		return *new(V), false
	}
	l, last := splitAt(u.root, sz-1)
	u.root = l
	v := last.v
	u.alloc.Free(last)
	return v, true
}

// PopFront removes and returns the first element, false when empty.
func (u *Implicit[V, S]) PopFront() (V, bool) {
	if u.root == nil {
		return *new(V), false
	}
	first, r := splitAt(u.root, 1)
	u.root = r
	v := first.v
	u.alloc.Free(first)
	return v, true
}

// At is a pointer to the k-th element, nil at or past Size. The pointer
// stays good until that element is removed; writing through it is fine,
// ranks don't depend on payloads. Time: O(log n).
func (u *Implicit[V, S]) At(k S) *V {
	if k >= u.Size() {
		return nil
	}
	return &u.nodeOfOrder(k).v
}

// Set stores v at rank k, false at or past Size.
func (u *Implicit[V, S]) Set(k S, v V) bool {
	p := u.At(k)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// SplitOff detaches ranks [k, Size) into a new list sharing u's allocator;
// k at or past Size yields an empty one.
func (u *Implicit[V, S]) SplitOff(k S) *Implicit[V, S] {
	l, r := splitAt(u.root, k)
	u.root = l
	return &Implicit[V, S]{base[V, S]{r, u.alloc}}
}

// Concat appends o's elements and leaves o empty, in O(log n). The lists
// should share an allocator.
func (u *Implicit[V, S]) Concat(o *Implicit[V, S]) {
	u.root = merge(u.root, o.root)
	o.root = nil
}

// Clone copies the elements one by one into a fresh list on the same
// allocator. Time: O(n log n).
func (u *Implicit[V, S]) Clone() *Implicit[V, S] {
	c := NewImplicitIn[V, S](u.alloc)
	u.InOrder(func(v *V) bool {
		c.PushBack(*v)
		return true
	}, nil)
	return c
}

// Move transfers the whole list into a fresh one, leaving u empty but
// usable. No node is copied or freed.
func (u *Implicit[V, S]) Move() *Implicit[V, S] {
	t := &Implicit[V, S]{u.base}
	u.root = nil
	return t
}

// Swap exchanges the contents of u and o in O(1).
func (u *Implicit[V, S]) Swap(o *Implicit[V, S]) {
	u.base, o.base = o.base, u.base
}

// Corrupt reports a violated heap or size invariant. Time: O(n).
func (u *Implicit[V, S]) Corrupt() bool {
	return corruptShape(u.root)
}
