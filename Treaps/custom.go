package Treaps

import (
	"golang.org/x/exp/constraints"
)

// CTreap is Treap for element types without a natural order, or ordered by
// something else than their whole value, like a field of a struct. All
// methods behave exactly as on Treap with Cmp supplying the comparisons.
type CTreap[T any, S constraints.Unsigned] struct {
	base[T, S]
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	Cmp func(T, T) int
}

// NewC returns an empty CTreap ordered by cmp, backed by plain heap
// allocation.
func NewC[T any, S constraints.Unsigned](cmp func(T, T) int) *CTreap[T, S] {
	return NewCIn[T, S](cmp, Heap[T, S]{})
}

// NewCIn returns an empty CTreap ordered by cmp, drawing nodes from a.
func NewCIn[T any, S constraints.Unsigned](cmp func(T, T) int, a Allocator[T, S]) *CTreap[T, S] {
	return &CTreap[T, S]{base[T, S]{nil, a}, cmp}
}

// FromC builds a CTreap over vs, which must be strictly ascending under
// cmp, in O(n). If safe==true the order is verified first, panicking with
// InvalidSliceError.
func FromC[T any, S constraints.Unsigned](vs []T, cmp func(T, T) int, safe bool) *CTreap[T, S] {
	if safe {
		for i := 1; i < len(vs); i++ {
			if cmp(vs[i-1], vs[i]) >= 0 {
				panic(InvalidSliceError{vs[i-1], vs[i]})
			}
		}
	}
	a := Heap[T, S]{}
	return &CTreap[T, S]{base[T, S]{buildSpine[T, S](a, vs), a}, cmp}
}

func (u *CTreap[T, S]) split(n *Node[T, S], key T, keyIncluded bool) (*Node[T, S], *Node[T, S]) {
	var (
		st    []*Node[T, S]
		lefts []bool
	)
	for cur := n; cur != nil; {
		var left bool
		if keyIncluded {
			left = u.Cmp(key, cur.v) >= 0
		} else {
			left = u.Cmp(cur.v, key) < 0
		}
		st, lefts = append(st, cur), append(lefts, left)
		if left {
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	var first, second *Node[T, S]
	for i := len(st) - 1; i > -1; i-- {
		if lefts[i] {
			st[i].setRight(first)
			first = st[i]
		} else {
			st[i].setLeft(second)
			second = st[i]
		}
	}
	return first, second
}

func (u *CTreap[T, S]) lowerBound(v T) (*Node[T, S], S) {
	var (
		n      *Node[T, S]
		ra     S
		passed S
	)
	for cur := u.root; cur != nil; {
		if u.Cmp(cur.v, v) < 0 {
			passed += cur.leftSize() + 1
			cur = cur.r
		} else {
			n, ra = cur, passed+cur.leftSize()
			cur = cur.l
		}
	}
	if n == nil {
		return nil, passed
	}
	return n, ra
}

func (u *CTreap[T, S]) upperBound(v T) (*Node[T, S], S) {
	var (
		n      *Node[T, S]
		ra     S
		passed S
	)
	for cur := u.root; cur != nil; {
		if u.Cmp(v, cur.v) >= 0 {
			passed += cur.leftSize() + 1
			cur = cur.r
		} else {
			n, ra = cur, passed+cur.leftSize()
			cur = cur.l
		}
	}
	if n == nil {
		return nil, passed
	}
	return n, ra
}

// Add inserts v, returning its position and whether it was new. A present
// v is left alone and nothing is allocated for it. If Cmp panics the tree
// is unchanged and the prepared node goes back to the allocator.
func (u *CTreap[T, S]) Add(v T) (Iterator[T, S], bool) {
	if n, ra := u.lowerBound(v); n != nil && u.Cmp(v, n.v) == 0 {
		return u.iter(n, ra), false
	}
	h := newHolder(u.alloc, v)
	defer h.release()
	l, r := u.split(u.root, v, false)
	n := h.keep()
	u.root = merge(merge(l, n), r)
	_, ra := u.lowerBound(v)
	return u.iter(n, ra), true
}

// AddAll inserts every value in turn.
func (u *CTreap[T, S]) AddAll(vs ...T) {
	for i := range vs {
		u.Add(vs[i])
	}
}

// Has reports whether v is present. Time: O(log n); Space: O(1).
func (u *CTreap[T, S]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if order := u.Cmp(v, cur.v); order < 0 {
			cur = cur.l
		} else if order > 0 {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Find is the position of v, End when absent.
func (u *CTreap[T, S]) Find(v T) Iterator[T, S] {
	if n, ra := u.lowerBound(v); n != nil && u.Cmp(v, n.v) == 0 {
		return u.iter(n, ra)
	}
	return u.End()
}

// LowerBound is the position of the first element not less than v.
func (u *CTreap[T, S]) LowerBound(v T) Iterator[T, S] {
	return u.iter(u.lowerBound(v))
}

// UpperBound is the position of the first element greater than v.
func (u *CTreap[T, S]) UpperBound(v T) Iterator[T, S] {
	return u.iter(u.upperBound(v))
}

// Min is the least element under Cmp, false when empty.
func (u *CTreap[T, S]) Min() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	cur := u.root
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Max is the greatest element under Cmp, false when empty.
func (u *CTreap[T, S]) Max() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	cur := u.root
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Del removes v if present and returns the position its successor holds
// afterwards, which is also where an absent v would have been. A panicking
// Cmp leaves a valid tree, though elements ordered before v may be dropped
// with it.
func (u *CTreap[T, S]) Del(v T) Iterator[T, S] {
	l, rest := u.split(u.root, v, false)
	u.root = rest
	mid, r := u.split(rest, v, true)
	u.root = merge(l, r)
	u.destroy(mid)
	return u.LowerBound(v)
}

// DelRange removes every element in [lo, hi) under Cmp and returns the
// position after the removed run. An empty interval removes nothing.
func (u *CTreap[T, S]) DelRange(lo, hi T) Iterator[T, S] {
	l, rest := u.split(u.root, lo, false)
	u.root = rest
	mid, r := u.split(rest, hi, false)
	u.root = merge(l, r)
	u.destroy(mid)
	return u.LowerBound(hi)
}

// DelRangeIncl is DelRange over [lo, hi]: an element matching hi goes too.
func (u *CTreap[T, S]) DelRangeIncl(lo, hi T) Iterator[T, S] {
	l, rest := u.split(u.root, lo, false)
	u.root = rest
	mid, r := u.split(rest, hi, true)
	u.root = merge(l, r)
	u.destroy(mid)
	return u.UpperBound(hi)
}

// KthKey is the element of rank k, 0 based. k at or past Size panics with
// BoundsError. Time: O(log n).
func (u *CTreap[T, S]) KthKey(k S) T {
	if k >= u.Size() {
		panic(BoundsError{uint(k), uint(u.Size())})
	}
	return u.nodeOfOrder(k).v
}

// OrderOf is the rank v holds, 0 based. An absent v yields the rank it
// would hold once inserted, and false.
func (u *CTreap[T, S]) OrderOf(v T) (S, bool) {
	n, ra := u.lowerBound(v)
	return ra, n != nil && u.Cmp(v, n.v) == 0
}

// Split detaches every element not less than v into a new CTreap sharing
// u's allocator and Cmp.
func (u *CTreap[T, S]) Split(v T) *CTreap[T, S] {
	l, r := u.split(u.root, v, false)
	u.root = l
	return &CTreap[T, S]{base[T, S]{r, u.alloc}, u.Cmp}
}

// Concat moves o's elements into u and leaves o empty, in O(log n). Every
// element of u must order before every element of o; this isn't checked.
func (u *CTreap[T, S]) Concat(o *CTreap[T, S]) {
	u.root = merge(u.root, o.root)
	o.root = nil
}

// Clone copies the elements one by one into a fresh CTreap on the same
// allocator. Time: O(n log n).
func (u *CTreap[T, S]) Clone() *CTreap[T, S] {
	c := NewCIn[T, S](u.Cmp, u.alloc)
	u.InOrder(func(v *T) bool {
		c.Add(*v)
		return true
	}, nil)
	return c
}

// Move transfers the whole tree into a fresh CTreap, leaving u empty but
// usable. No node is copied or freed.
func (u *CTreap[T, S]) Move() *CTreap[T, S] {
	t := &CTreap[T, S]{u.base, u.Cmp}
	u.root = nil
	return t
}

// Swap exchanges the contents and comparators of u and o in O(1).
func (u *CTreap[T, S]) Swap(o *CTreap[T, S]) {
	u.base, o.base = o.base, u.base
	u.Cmp, o.Cmp = o.Cmp, u.Cmp
}

// Corrupt reports any violated invariant: a child outranking its parent's
// priority, a stale cached size, or elements out of order. Time: O(n).
func (u *CTreap[T, S]) Corrupt() bool {
	if corruptShape(u.root) {
		return true
	}
	bad := false
	var prev *T
	u.InOrder(func(v *T) bool {
		if prev != nil && u.Cmp(*prev, *v) >= 0 {
			bad = true
			return false
		}
		prev = v
		return true
	}, nil)
	return bad
}
