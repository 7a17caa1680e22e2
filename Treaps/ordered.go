package Treaps

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// Treap is a sorted set of T under its natural order. Balance is expected
// O(log n) and comes from random heap priorities on the nodes; split and
// merge are the only structural operations, there are no rebalancing rules.
// Not thread safe.
type Treap[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// New returns an empty Treap backed by plain heap allocation.
func New[T cmp.Ordered, S constraints.Unsigned]() *Treap[T, S] {
	return NewIn[T, S](Heap[T, S]{})
}

// NewIn returns an empty Treap drawing nodes from a.
func NewIn[T cmp.Ordered, S constraints.Unsigned](a Allocator[T, S]) *Treap[T, S] {
	return &Treap[T, S]{base[T, S]{nil, a}}
}

// From builds a Treap over a strictly ascending vs in O(n), copying the
// values into fresh nodes. If safe==true the order is verified first,
// panicking with InvalidSliceError.
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, safe bool) *Treap[T, S] {
	if safe {
		for i := 1; i < len(vs); i++ {
			if vs[i] <= vs[i-1] {
				panic(InvalidSliceError{vs[i-1], vs[i]})
			}
		}
	}
	a := Heap[T, S]{}
	return &Treap[T, S]{base[T, S]{buildSpine[T, S](a, vs), a}}
}

// split cuts the tree under n around key: left part before it, right part
// after, an exact match going left when keyIncluded and right otherwise.
// All comparisons happen while gathering the path; links move only on the
// bottom up replay, so a panicking comparison leaves n untouched.
func (u *Treap[T, S]) split(n *Node[T, S], key T, keyIncluded bool) (*Node[T, S], *Node[T, S]) {
	var (
		st    []*Node[T, S]
		lefts []bool
	)
	for cur := n; cur != nil; {
		var left bool
		if keyIncluded {
			left = !(key < cur.v)
		} else {
			left = cur.v < key
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

// lowerBound is the leftmost node not less than v along with its rank; nil
// and Size when every element is less.
func (u *Treap[T, S]) lowerBound(v T) (*Node[T, S], S) {
	var (
		n      *Node[T, S]
		ra     S
		passed S
	)
	for cur := u.root; cur != nil; {
		if cur.v < v {
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

func (u *Treap[T, S]) upperBound(v T) (*Node[T, S], S) {
	var (
		n      *Node[T, S]
		ra     S
		passed S
	)
	for cur := u.root; cur != nil; {
		if !(v < cur.v) {
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
// v is left alone and nothing is allocated for it.
func (u *Treap[T, S]) Add(v T) (Iterator[T, S], bool) {
	if n, ra := u.lowerBound(v); n != nil && !(v < n.v) {
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
func (u *Treap[T, S]) AddAll(vs ...T) {
	for i := range vs {
		u.Add(vs[i])
	}
}

// Has reports whether v is present. Time: O(log n); Space: O(1).
func (u *Treap[T, S]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if cur.v < v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Find is the position of v, End when absent.
func (u *Treap[T, S]) Find(v T) Iterator[T, S] {
	if n, ra := u.lowerBound(v); n != nil && !(v < n.v) {
		return u.iter(n, ra)
	}
	return u.End()
}

// LowerBound is the position of the first element not less than v.
func (u *Treap[T, S]) LowerBound(v T) Iterator[T, S] {
	return u.iter(u.lowerBound(v))
}

// UpperBound is the position of the first element greater than v.
func (u *Treap[T, S]) UpperBound(v T) Iterator[T, S] {
	return u.iter(u.upperBound(v))
}

// Min is the smallest element, false when empty.
func (u *Treap[T, S]) Min() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	cur := u.root
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Max is the greatest element, false when empty.
func (u *Treap[T, S]) Max() (T, bool) {
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
// afterwards, which is also where an absent v would have been.
func (u *Treap[T, S]) Del(v T) Iterator[T, S] {
	l, rest := u.split(u.root, v, false)
	u.root = rest
	mid, r := u.split(rest, v, true)
	u.root = merge(l, r)
	u.destroy(mid)
	return u.LowerBound(v)
}

// DelRange removes every element in [lo, hi) and returns the position after
// the removed run. An empty interval removes nothing.
func (u *Treap[T, S]) DelRange(lo, hi T) Iterator[T, S] {
	l, rest := u.split(u.root, lo, false)
	u.root = rest
	mid, r := u.split(rest, hi, false)
	u.root = merge(l, r)
	u.destroy(mid)
	return u.LowerBound(hi)
}

// DelRangeIncl is DelRange over [lo, hi]: an element matching hi goes too.
func (u *Treap[T, S]) DelRangeIncl(lo, hi T) Iterator[T, S] {
	l, rest := u.split(u.root, lo, false)
	u.root = rest
	mid, r := u.split(rest, hi, true)
	u.root = merge(l, r)
	u.destroy(mid)
	return u.UpperBound(hi)
}

// KthKey is the element of rank k, 0 based. k at or past Size panics with
// BoundsError. Time: O(log n).
func (u *Treap[T, S]) KthKey(k S) T {
	if k >= u.Size() {
		panic(BoundsError{uint(k), uint(u.Size())})
	}
	return u.nodeOfOrder(k).v
}

// OrderOf is the rank v holds, 0 based. An absent v yields the rank it
// would hold once inserted, and false.
func (u *Treap[T, S]) OrderOf(v T) (S, bool) {
	n, ra := u.lowerBound(v)
	return ra, n != nil && !(v < n.v)
}

// Split detaches every element not less than v into a new Treap sharing
// u's allocator.
func (u *Treap[T, S]) Split(v T) *Treap[T, S] {
	l, r := u.split(u.root, v, false)
	u.root = l
	return &Treap[T, S]{base[T, S]{r, u.alloc}}
}

// Concat moves o's elements into u and leaves o empty, in O(log n). Every
// element of u must be less than every element of o; this isn't checked.
func (u *Treap[T, S]) Concat(o *Treap[T, S]) {
	u.root = merge(u.root, o.root)
	o.root = nil
}

// Clone copies the elements one by one into a fresh Treap on the same
// allocator. Time: O(n log n).
func (u *Treap[T, S]) Clone() *Treap[T, S] {
	c := NewIn[T, S](u.alloc)
	u.InOrder(func(v *T) bool {
		c.Add(*v)
		return true
	}, nil)
	return c
}

// Move transfers the whole tree into a fresh Treap, leaving u empty but
// usable. No node is copied or freed.
func (u *Treap[T, S]) Move() *Treap[T, S] {
	t := &Treap[T, S]{u.base}
	u.root = nil
	return t
}

// Swap exchanges the contents of u and o in O(1).
func (u *Treap[T, S]) Swap(o *Treap[T, S]) {
	u.base, o.base = o.base, u.base
}

// Corrupt reports any violated invariant: a child outranking its parent's
// priority, a stale cached size, or elements out of order. Time: O(n).
func (u *Treap[T, S]) Corrupt() bool {
	if corruptShape(u.root) {
		return true
	}
	bad := false
	var prev *T
	u.InOrder(func(v *T) bool {
		if prev != nil && !(*prev < *v) {
			bad = true
			return false
		}
		prev = v
		return true
	}, nil)
	return bad
}
