package Treaps

import (
	Go_Treaps "github.com/g-m-twostay/go-treaps"
	"golang.org/x/exp/constraints"
)

// Node is the building block shared by every tree in this package: payload,
// two child links, a heap priority drawn once at allocation, and the cached
// size of the subtree below it (itself included). Contents are reachable
// only through the owning tree; Allocators move whole nodes around without
// looking inside.
type Node[T any, S constraints.Unsigned] struct {
	v    T
	l, r *Node[T, S]
	pri  uint64
	sz   S
}

func (u *Node[T, S]) leftSize() S {
	if u.l == nil {
		return 0
	}
	return u.l.sz
}

func (u *Node[T, S]) rightSize() S {
	if u.r == nil {
		return 0
	}
	return u.r.sz
}

func (u *Node[T, S]) update() {
	u.sz = u.leftSize() + u.rightSize() + 1
}

// All link changes go through setLeft/setRight/setMembers so sz never goes
// stale; rank lookups count nothing.
func (u *Node[T, S]) setLeft(c *Node[T, S]) {
	u.l = c
	u.update()
}

func (u *Node[T, S]) setRight(c *Node[T, S]) {
	u.r = c
	u.update()
}

func (u *Node[T, S]) setMembers(l, r *Node[T, S]) {
	u.l, u.r = l, r
	u.update()
}

func allocNode[T any, S constraints.Unsigned](a Allocator[T, S], v T) *Node[T, S] {
	n := a.New()
	n.v, n.l, n.r, n.pri, n.sz = v, nil, nil, Go_Treaps.CheapRand64(), 1
	return n
}

// holder pins a node that is allocated but not yet linked anywhere. keep
// hands the node over; the deferred release returns it to the allocator on
// every other exit, panicking comparisons included.
type holder[T any, S constraints.Unsigned] struct {
	n *Node[T, S]
	a Allocator[T, S]
}

func newHolder[T any, S constraints.Unsigned](a Allocator[T, S], v T) holder[T, S] {
	return holder[T, S]{allocNode(a, v), a}
}

func (h *holder[T, S]) keep() *Node[T, S] {
	n := h.n
	h.n = nil
	return n
}

func (h *holder[T, S]) release() {
	if h.n != nil {
		h.a.Free(h.n)
	}
}
