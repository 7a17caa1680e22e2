package Treaps

import (
	"testing"
)

var (
	bAddN uint32 = 1000000
	bQryN uint32 = bAddN / 2
)

func createTreap(b *testing.B) *Treap[int, uint32] {
	b.Helper()
	all := make([]int, bAddN)
	for i := range all {
		all[i] = i * 2
	}
	return From[int, uint32](all, false)
}

func shuffled(n uint32) []int {
	all := make([]int, n)
	for i := range all {
		all[i] = i * 2
	}
	rg.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	return all
}

func BenchmarkTreap_Add(b *testing.B) {
	for range b.N {
		tree := New[int, uint32]()
		for range bAddN {
			tree.Add(rg.Int())
		}
	}
}

func BenchmarkTreap_From(b *testing.B) {
	all := make([]int, bAddN)
	for i := range all {
		all[i] = i * 2
	}
	b.ResetTimer()
	for range b.N {
		sideEff = int(From[int, uint32](all, false).Size())
	}
}

func BenchmarkTreap_Del(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := createTreap(b)
		all := shuffled(bAddN)
		b.StartTimer()
		for _, v := range all {
			tree.Del(v)
		}
	}
}

var sideEff int

func BenchmarkTreap_Has(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := createTreap(b)
		all := shuffled(bQryN)
		b.StartTimer()
		for _, v := range all {
			if !tree.Has(v) {
				b.Fail()
			}
		}
		for _, v := range all[:bAddN-bQryN] {
			if tree.Has(v + 1) { //odd, never present.
				b.Fail()
			}
		}
	}
}

func BenchmarkTreap_KthKey(b *testing.B) {
	tree := createTreap(b)
	b.ResetTimer()
	for range b.N {
		for k := uint32(0); k < bQryN; k++ {
			sideEff = tree.KthKey(k)
		}
	}
}

func BenchmarkTreap_InOrder0(b *testing.B) {
	tree := createTreap(b)
	b.ResetTimer()
	for range b.N {
		sum := 0
		tree.InOrder(func(v *int) bool {
			sum += *v
			return true
		}, nil)
		sideEff = sum
	}
}

func BenchmarkTreap_InOrder1(b *testing.B) {
	tree := createTreap(b)
	st := make([]*Node[int, uint32], 0, 64)
	b.ResetTimer()
	for range b.N {
		sum := 0
		st = tree.InOrder(func(v *int) bool {
			sum += *v
			return true
		}, st)
		sideEff = sum
	}
}

func BenchmarkImplicit_PushBack(b *testing.B) {
	for range b.N {
		u := NewImplicit[int, uint32]()
		for i := range bAddN {
			u.PushBack(int(i))
		}
	}
}

func BenchmarkImplicit_Insert(b *testing.B) {
	for range b.N {
		u := NewImplicit[int, uint32]()
		for i := range bAddN {
			u.Insert(int(i), rg.Uint32()%(u.Size()+1))
		}
	}
}

func BenchmarkImplicit_At(b *testing.B) {
	u := NewImplicit[int, uint32]()
	for i := range bAddN {
		u.PushBack(int(i))
	}
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			sideEff = *u.At(rg.Uint32() % bAddN)
		}
	}
}

func BenchmarkImplicit_Del(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		u := NewImplicit[int, uint32]()
		for i := range bAddN {
			u.PushBack(int(i))
		}
		b.StartTimer()
		for u.Size() > 0 {
			u.Del(rg.Uint32() % u.Size())
		}
	}
}
