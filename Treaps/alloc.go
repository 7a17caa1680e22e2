package Treaps

import "golang.org/x/exp/constraints"

// Allocator supplies and takes back the nodes of a tree. A tree calls its
// allocator only from whichever goroutine is mutating the tree, so
// implementations don't need to be thread safe. Trees created from one
// another (Move, Split, Clone) share the allocator, and Concat adopts the
// argument's nodes, so related trees should draw from the same one.
type Allocator[T any, S constraints.Unsigned] interface {
	New() *Node[T, S]
	// Free takes back a detached node. The payload is gone after the call.
	Free(*Node[T, S])
}

// Heap is the default Allocator: a plain allocation per node, freed nodes
// are left to the collector.
type Heap[T any, S constraints.Unsigned] struct{}

func (Heap[T, S]) New() *Node[T, S] {
	return new(Node[T, S])
}

func (Heap[T, S]) Free(n *Node[T, S]) {
	n.v, n.l, n.r = *new(T), nil, nil
}

// FreeList recycles freed nodes through an intrusive list threaded over
// their left links, falling back to the heap when empty. Payloads are
// zeroed on Free so the collector can reclaim whatever they referenced.
type FreeList[T any, S constraints.Unsigned] struct {
	head *Node[T, S]
	n    uint
}

func (u *FreeList[T, S]) New() *Node[T, S] {
	if u.head == nil {
		return new(Node[T, S])
	}
	n := u.head
	u.head, n.l = n.l, nil
	u.n--
	return n
}

func (u *FreeList[T, S]) Free(n *Node[T, S]) {
	n.v, n.r = *new(T), nil
	n.l = u.head
	u.head = n
	u.n++
}

// Len is the number of nodes waiting on the list.
func (u *FreeList[T, S]) Len() uint {
	return u.n
}
