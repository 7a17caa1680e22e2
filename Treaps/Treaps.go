package Treaps

import "golang.org/x/exp/constraints"

// Tree is the contract of the key ordered variants, Treap and CTreap.
// Receivers with a bool second return value use it to say whether the first
// one is defined; for example Min on an empty tree returns (x, false) and x
// shouldn't be used. Rank arguments are 0 based and panic with BoundsError
// past their allowed range instead of returning an undefined value.
// Mutating operations invalidate nothing: existing Iterators keep working
// through their ranks.
type Tree[T any, S constraints.Unsigned] interface {
	//Add v, reporting its position and whether it wasn't already there.
	Add(v T) (Iterator[T, S], bool)
	AddAll(vs ...T)
	//Del v if present, returning the position after it.
	Del(v T) Iterator[T, S]
	//DelRange removes [lo, hi).
	DelRange(lo, hi T) Iterator[T, S]
	//DelRangeIncl removes [lo, hi].
	DelRangeIncl(lo, hi T) Iterator[T, S]
	Has(v T) bool
	Find(v T) Iterator[T, S]
	LowerBound(v T) Iterator[T, S]
	UpperBound(v T) Iterator[T, S]
	Min() (T, bool)
	Max() (T, bool)
	//KthKey is the element of rank k.
	KthKey(k S) T
	//OrderOf is the rank of v, or the rank v would take, and whether it's there.
	OrderOf(v T) (S, bool)
	Size() S
	Empty() bool
	Clear()
	Begin() Iterator[T, S]
	End() Iterator[T, S]
	InOrder(f func(*T) bool, st []*Node[T, S]) []*Node[T, S]
	InOrderR(f func(*T) bool, st []*Node[T, S]) []*Node[T, S]
	//Corrupt is the invariant oracle, true when any structural rule is broken.
	Corrupt() bool
}

// List is the contract of the positional variant, Implicit. Ranks shift
// with every insertion and removal before them; operations taking a rank
// clamp it or no-op past the end as documented rather than panicking.
type List[V any, S constraints.Unsigned] interface {
	//Insert v before rank k, clamping k to Size.
	Insert(v V, k S) Iterator[V, S]
	PushBack(v V) Iterator[V, S]
	PushFront(v V) Iterator[V, S]
	PushAll(vs ...V)
	PopBack() (V, bool)
	PopFront() (V, bool)
	//Del rank k, a no-op past the end.
	Del(k S)
	//At is the k-th element, nil past the end.
	At(k S) *V
	Set(k S, v V) bool
	Size() S
	Empty() bool
	Clear()
	Begin() Iterator[V, S]
	End() Iterator[V, S]
	InOrder(f func(*V) bool, st []*Node[V, S]) []*Node[V, S]
	InOrderR(f func(*V) bool, st []*Node[V, S]) []*Node[V, S]
	Corrupt() bool
}
