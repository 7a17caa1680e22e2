package Treaps

import (
	Go_Treaps "github.com/g-m-twostay/go-treaps"
	"golang.org/x/exp/constraints"
)

// base is everything the variants share: the root link, the node source,
// and the operations that need ranks but no key comparisons.
type base[T any, S constraints.Unsigned] struct {
	root  *Node[T, S]
	alloc Allocator[T, S]
}

// Size of the whole tree. Time: O(1).
func (u *base[T, S]) Size() S {
	if u.root == nil {
		return 0
	}
	return u.root.sz
}

func (u *base[T, S]) Empty() bool {
	return u.root == nil
}

// Clear detaches every node and hands it back to the allocator.
func (u *base[T, S]) Clear() {
	u.destroy(u.root)
	u.root = nil
}

// destroy frees the subtree under n in preorder; children are saved before
// each Free since allocators may reuse the links.
func (u *base[T, S]) destroy(n *Node[T, S]) {
	if n == nil {
		return
	}
	st := append(make([]*Node[T, S], 0, 32), n)
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if cur.l != nil {
			st = append(st, cur.l)
		}
		if cur.r != nil {
			st = append(st, cur.r)
		}
		u.alloc.Free(cur)
	}
}

// nodeOfOrder descends to the k-th node in ascending order, 0 based, by
// cached subtree sizes. k==Size yields nil, the one past the end sentinel;
// anything further panics with BoundsError. Time: O(log n); Space: O(1).
func (u *base[T, S]) nodeOfOrder(k S) *Node[T, S] {
	sz := u.Size()
	if k == sz {
		return nil
	}
	if k > sz {
		panic(BoundsError{uint(k), uint(sz)})
	}
	cur := u.root
	for {
		if ls := cur.leftSize(); k < ls {
			cur = cur.l
		} else if k > ls {
			k -= ls + 1
			cur = cur.r
		} else {
			return cur
		}
	}
}

func (u *base[T, S]) iter(n *Node[T, S], k S) Iterator[T, S] {
	if n == nil {
		return Iterator[T, S]{nil, u, k}
	}
	return Iterator[T, S]{&n.v, u, k}
}

func (u *base[T, S]) iterAt(k S) Iterator[T, S] {
	return u.iter(u.nodeOfOrder(k), k)
}

// Begin is the position of rank 0; equal to End when the tree is empty.
func (u *base[T, S]) Begin() Iterator[T, S] {
	return u.iterAt(0)
}

// End is the position one past the last element.
func (u *base[T, S]) End() Iterator[T, S] {
	return Iterator[T, S]{nil, u, u.Size()}
}

// merge joins two trees where everything under a precedes everything under
// b; the caller guarantees that, nothing is compared but priorities. The
// winning roots are gathered top down and relinked bottom up, so no link
// moves before the shape is settled. Time: O(log n); Space: O(log n).
func merge[T any, S constraints.Unsigned](a, b *Node[T, S]) *Node[T, S] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	var (
		st    []*Node[T, S]
		tookA []bool
	)
	for a != nil && b != nil {
		if a.pri >= b.pri {
			st, tookA = append(st, a), append(tookA, true)
			a = a.r
		} else {
			st, tookA = append(st, b), append(tookA, false)
			b = b.l
		}
	}
	cur := a
	if cur == nil {
		cur = b
	}
	for i := len(st) - 1; i > -1; i-- {
		if tookA[i] {
			st[i].setRight(cur)
		} else {
			st[i].setLeft(cur)
		}
		cur = st[i]
	}
	return cur
}

// buildSpine assembles a tree holding vs in slice order in O(n): each new
// rightmost node pops the spine while its priority wins, then hangs the
// popped chain off its left. Sizes settle when a node leaves the spine.
func buildSpine[T any, S constraints.Unsigned](a Allocator[T, S], vs []T) *Node[T, S] {
	if len(vs) == 0 {
		return nil
	}
	st := make([]*Node[T, S], 0, 64)
	for i := range vs {
		n := a.New()
		n.v, n.l, n.r, n.pri, n.sz = vs[i], nil, nil, Go_Treaps.CheapRand64(), 1
		var last *Node[T, S]
		for len(st) > 0 && st[len(st)-1].pri < n.pri {
			last = st[len(st)-1]
			last.update()
			st = st[:len(st)-1]
		}
		n.l = last
		if len(st) > 0 {
			st[len(st)-1].r = n
		}
		st = append(st, n)
	}
	for i := len(st) - 1; i > -1; i-- {
		st[i].update()
	}
	return st[0]
}

// corruptShape checks the structural invariants under n: cached sizes
// adding up and no child outranking its parent's priority.
func corruptShape[T any, S constraints.Unsigned](n *Node[T, S]) bool {
	if n == nil {
		return false
	}
	if n.sz != n.leftSize()+n.rightSize()+1 {
		return true
	}
	if n.l != nil && n.l.pri > n.pri || n.r != nil && n.r.pri > n.pri {
		return true
	}
	return corruptShape(n.l) || corruptShape(n.r)
}

// InOrder traversal, ascending. If f returns false the traversal stops. When
// st==nil, uses morris traversal, which threads and restores right links on
// the way, so the tree must not be touched until InOrder returns; otherwise
// st backs an iterative traversal and is returned for reuse.
func (u *base[T, S]) InOrder(f func(*T) bool, st []*Node[T, S]) []*Node[T, S] {
	if cur := u.root; st == nil {
	iter1:
		for cur != nil {
			if cur.l == nil {
				if !f(&cur.v) {
					break
				}
				cur = cur.r
			} else {
				for next := cur.l; ; next = next.r {
					if next.r == nil {
						next.r = cur
						cur = cur.l
						break
					} else if next.r == cur {
						next.r = nil
						if !f(&cur.v) {
							break iter1
						}
						cur = cur.r
						break
					}
				}
			}
		}
		for cur != nil { //deplete the remaining traversal.
			if cur.l == nil {
				cur = cur.r
			} else {
				for next := cur.l; ; next = next.r {
					if next.r == nil {
						next.r = cur
						cur = cur.l
						break
					} else if next.r == cur {
						next.r = nil
						cur = cur.r
						break
					}
				}
			}
		}
	} else {
		for st = st[:0]; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		for len(st) > 0 {
			cur, st = st[len(st)-1], st[:len(st)-1]
			if !f(&cur.v) {
				break
			}
			for cur = cur.r; cur != nil; cur = cur.l {
				st = append(st, cur)
			}
		}
	}
	return st
}

// InOrderR is InOrder mirrored, descending; morris threading goes through
// left links instead.
func (u *base[T, S]) InOrderR(f func(*T) bool, st []*Node[T, S]) []*Node[T, S] {
	if cur := u.root; st == nil {
	iter1:
		for cur != nil {
			if cur.r == nil {
				if !f(&cur.v) {
					break
				}
				cur = cur.l
			} else {
				for next := cur.r; ; next = next.l {
					if next.l == nil {
						next.l = cur
						cur = cur.r
						break
					} else if next.l == cur {
						next.l = nil
						if !f(&cur.v) {
							break iter1
						}
						cur = cur.l
						break
					}
				}
			}
		}
		for cur != nil { //deplete the remaining traversal.
			if cur.r == nil {
				cur = cur.l
			} else {
				for next := cur.r; ; next = next.l {
					if next.l == nil {
						next.l = cur
						cur = cur.r
						break
					} else if next.l == cur {
						next.l = nil
						cur = cur.l
						break
					}
				}
			}
		}
	} else {
		for st = st[:0]; cur != nil; cur = cur.r {
			st = append(st, cur)
		}
		for len(st) > 0 {
			cur, st = st[len(st)-1], st[:len(st)-1]
			if !f(&cur.v) {
				break
			}
			for cur = cur.l; cur != nil; cur = cur.r {
				st = append(st, cur)
			}
		}
	}
	return st
}
